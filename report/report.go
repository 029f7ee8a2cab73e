package report

import "sort"

// Entry is one line of the contacts-per-group report.
type Entry struct {
	Group        string `json:"group"`
	ContactCount int    `json:"contact_count"`
}

// Rank orders entries by contact count, highest first. Entries with the same
// count keep the order they were retrieved in.
func Rank(entries []Entry) []Entry {
	ranked := make([]Entry, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ContactCount > ranked[j].ContactCount
	})
	return ranked
}
