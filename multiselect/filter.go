package multiselect

import (
	"slices"
	"strings"
)

// visibleOptions returns the candidates still on offer: every option not
// already selected whose text contains the query as a case-insensitive
// substring. Candidate order is preserved. No fuzzy matching, no ranking.
func visibleOptions(options, selected []string, query string) []string {
	q := strings.ToLower(query)
	visible := make([]string, 0, len(options))
	for _, option := range options {
		if slices.Contains(selected, option) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(option), q) {
			continue
		}
		visible = append(visible, option)
	}
	return visible
}

// removeValue returns values with every occurrence of v removed. Matching
// is by value equality, so duplicate entries disappear together.
func removeValue(values []string, v string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if value != v {
			out = append(out, value)
		}
	}
	return out
}
