package dispatchers

import (
	"cmp"
	"slices"
	"strings"
)

// maxSuggestionDistance bounds how far a name may be from the input to be
// suggested.
const maxSuggestionDistance = 3

// editDistance is the case-insensitive Levenshtein distance of a and b,
// computed over a single row.
func editDistance(a, b string) int {
	src := []rune(strings.ToLower(a))
	dst := []rune(strings.ToLower(b))

	row := make([]int, len(dst)+1)
	for j := range row {
		row[j] = j
	}
	for i, sr := range src {
		diag := row[0]
		row[0] = i + 1
		for j, dr := range dst {
			up := row[j+1]
			sub := diag
			if sr != dr {
				sub++
			}
			row[j+1] = min(up+1, row[j]+1, sub)
			diag = up
		}
	}
	return row[len(dst)]
}

// FindSimilarCommands returns up to maxResults names within a small edit
// distance of input, closest first and then alphabetically. Distance
// ignores case, so a name differing only in case ranks first; the exact
// input is never suggested and duplicate names count once.
func FindSimilarCommands(input string, names []string, maxResults int) []string {
	if input == "" || len(names) == 0 {
		return nil
	}

	type candidate struct {
		name string
		dist int
	}
	var found []candidate
	for _, name := range names {
		if slices.ContainsFunc(found, func(c candidate) bool { return c.name == name }) {
			continue
		}
		if name == input {
			continue
		}
		if d := editDistance(input, name); d <= maxSuggestionDistance {
			found = append(found, candidate{name, d})
		}
	}

	slices.SortFunc(found, func(x, y candidate) int {
		return cmp.Or(cmp.Compare(x.dist, y.dist), strings.Compare(x.name, y.name))
	})

	out := make([]string, 0, min(len(found), maxResults))
	for _, c := range found[:min(len(found), maxResults)] {
		out = append(out, c.name)
	}
	return out
}
