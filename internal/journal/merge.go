package journal

import (
	"sort"

	"github.com/julianstephens/praxis/internal/models"
)

// Merge puts imported before existing, drops entries without an id, keeps
// the first entry seen for each id (so the imported copy wins) and sorts by
// CreatedAt descending.
//
// CreatedAt is compared as a plain string. That is chronological for the
// uniform UTC timestamps this tool writes, but entries from other sources
// with a different offset or precision may land out of order.
func Merge(imported, existing []models.Entry) []models.Entry {
	seen := make(map[string]struct{}, len(imported)+len(existing))
	merged := make([]models.Entry, 0, len(imported)+len(existing))

	for _, list := range [][]models.Entry{imported, existing} {
		for _, e := range list {
			if e.ID == "" {
				continue
			}
			if _, dup := seen[e.ID]; dup {
				continue
			}
			seen[e.ID] = struct{}{}
			merged = append(merged, e)
		}
	}

	sort.SliceStable(merged, func(a, b int) bool {
		return merged[a].CreatedAt > merged[b].CreatedAt
	})
	return merged
}
