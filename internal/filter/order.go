package filter

import (
	"sort"
	"strings"

	"applaunch/internal/apps"
)

// sortShown orders by score descending, then name case-insensitively,
// then name byte-wise, then inventory position.
func sortShown(shown []Scored, order map[*apps.Application]int) {
	sort.SliceStable(shown, func(i, j int) bool {
		return less(shown[i], shown[j], order)
	})
}

func less(a, b Scored, order map[*apps.Application]int) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	nameA := strings.ToLower(a.Item.Name)
	nameB := strings.ToLower(b.Item.Name)
	if nameA != nameB {
		return nameA < nameB
	}
	if a.Item.Name != b.Item.Name {
		return a.Item.Name < b.Item.Name
	}
	return order[a.Item] < order[b.Item]
}
