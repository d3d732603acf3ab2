package engine

import "sort"

// rank orders scored tasks in place: total score descending, then earlier
// due date, then lower identifier (numeric when both ids were supplied
// numeric, lexical otherwise). The sort is stable beyond those tie-breaks.
func rank(tasks []ScoredTask) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.Breakdown.Total != b.Breakdown.Total {
			return a.Breakdown.Total > b.Breakdown.Total
		}
		if !a.Task.Due.Equal(b.Task.Due) {
			return a.Task.Due.Before(b.Task.Due)
		}
		return a.Task.ID.Less(b.Task.ID)
	})
}
