package engine

import "triage/internal/task"

// MaxSuggestions is the fixed shortlist length for Suggest.
const MaxSuggestions = 3

// Factor names the sub-score that contributed most to a task's total.
type Factor string

const (
	FactorUrgency    Factor = "urgency"
	FactorImportance Factor = "importance"
	FactorEffort     Factor = "effort"
	FactorDependency Factor = "dependency"
)

// Suggestion annotates one shortlisted task with its rank and the
// human-readable justification derived from its score breakdown.
type Suggestion struct {
	Rank        int     `json:"rank"`
	TaskID      task.ID `json:"id"`
	Title       string  `json:"title"`
	Score       float64 `json:"priority_score"`
	Factor      Factor  `json:"dominant_factor"`
	Explanation string  `json:"explanation"`
	WhyToday    string  `json:"why_today"`
}

// buildSuggestions takes the ranked list and produces the top-N shortlist.
// Everything in the output is derived from the breakdowns already computed;
// no re-scoring happens here. The result is always a prefix of the ranked
// input, at most MaxSuggestions long.
func buildSuggestions(ranked []ScoredTask, w Weights) []Suggestion {
	n := min(MaxSuggestions, len(ranked))
	out := make([]Suggestion, 0, n)
	for i := 0; i < n; i++ {
		st := ranked[i]
		factor := dominantFactor(st.Breakdown, w)
		out = append(out, Suggestion{
			Rank:        i + 1,
			TaskID:      st.Task.ID,
			Title:       st.Task.Title,
			Score:       st.Breakdown.Total,
			Factor:      factor,
			Explanation: explanation(st.Breakdown, factor),
			WhyToday:    whyToday(i+1, st.Breakdown, factor),
		})
	}
	return out
}

// dominantFactor picks the sub-score with the largest weighted contribution
// to the total. Ties resolve in urgency, importance, effort, dependency
// order so output is deterministic.
func dominantFactor(b Breakdown, w Weights) Factor {
	contributions := []struct {
		factor Factor
		value  float64
	}{
		{FactorUrgency, b.Urgency * w.Urgency},
		{FactorImportance, b.Importance * w.Importance},
		{FactorEffort, b.Effort * w.Effort},
		{FactorDependency, b.Dependency * w.Dependency},
	}
	best := contributions[0]
	for _, c := range contributions[1:] {
		if c.value > best.value {
			best = c
		}
	}
	return best.factor
}

// overdue reports whether the breakdown belongs to an overdue task. The
// urgency bands only exceed 100 on the overdue branch, so this needs no
// data beyond the breakdown itself.
func overdue(b Breakdown) bool {
	return b.Urgency > 100
}

// explanation renders the short categorical phrase for a suggestion.
func explanation(b Breakdown, factor Factor) string {
	switch factor {
	case FactorUrgency:
		if overdue(b) {
			if b.Importance >= 80 {
				return "Overdue task with high importance"
			}
			return "Overdue and needs attention"
		}
		if b.Urgency >= 85 {
			return "Due very soon"
		}
		return "Deadline approaching"
	case FactorImportance:
		if overdue(b) {
			return "High importance and already overdue"
		}
		if b.Importance >= 80 {
			return "High impact on your goals"
		}
		return "Important task"
	case FactorEffort:
		return "Quick win with low effort"
	default: // FactorDependency
		return "Unblocks other tasks"
	}
}

var rankLabels = map[int]string{
	1: "This is your highest priority task.",
	2: "This is your second priority.",
	3: "This is your third priority.",
}

// whyToday renders the one-sentence justification referencing rank and the
// dominant reason.
func whyToday(rank int, b Breakdown, factor Factor) string {
	reason := ""
	switch {
	case factor == FactorUrgency && overdue(b):
		reason = "It's overdue and needs immediate attention."
	case factor == FactorUrgency:
		reason = "Its deadline is coming up fast."
	case factor == FactorImportance:
		reason = "It carries one of the highest importance ratings in your list."
	case factor == FactorEffort:
		reason = "It's a small task you can clear quickly."
	default:
		reason = "Finishing it unblocks tasks that depend on it."
	}
	return rankLabels[rank] + " " + reason
}
