package composer

import (
	"regexp"
	"strings"

	"notebookGenerator/worker/models"
)

// Marker grammar: "image - [" + description + "]", descriptions contain no
// closing bracket.
var markerPattern = regexp.MustCompile(`image - \[([^\]]*)\]`)

// ExtractQueries returns every marker description in first-occurrence order,
// duplicates included.
func ExtractQueries(text string) []string {
	matches := markerPattern.FindAllStringSubmatch(text, -1)

	queries := make([]string, 0, len(matches))
	for _, match := range matches {
		queries = append(queries, match[1])
	}

	return queries
}

// Marker rebuilds the literal marker text for a query.
func Marker(query string) string {
	return "image - [" + query + "]"
}

// Assemble replaces the first occurrence of each validated request's marker
// with a markdown image reference. Markers without a validated image stay
// verbatim in the output.
func Assemble(text string, requests []models.ImageRequest) string {
	for _, req := range requests {
		if req.Status != models.ImageStatusValidated || req.ValidatedURL == "" {
			continue
		}
		embed := "![" + req.Query + "](" + req.ValidatedURL + ")"
		text = strings.Replace(text, Marker(req.Query), embed, 1)
	}

	return text
}
