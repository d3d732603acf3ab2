package engine

import (
	"math"

	"triage/internal/task"
)

// Per-dependent increment for the dependency sub-score.
const fanInIncrement = 15

// Breakdown holds the four sub-scores and their weighted total for one task.
// Urgency has no upper bound for overdue tasks, so the total can exceed 100;
// that escalation is deliberate and is not clamped.
type Breakdown struct {
	Urgency    float64 `json:"urgency_score"`
	Importance float64 `json:"importance_score"`
	Effort     float64 `json:"effort_score"`
	Dependency float64 `json:"dependency_score"`
	Total      float64 `json:"priority_score"`
}

// Score computes the full breakdown for a task: the four sub-scores from the
// task fields, the reference date, and the graph-derived fan-in, combined
// under the given weights. It is a pure function; scoring the same inputs
// always yields the same breakdown.
func Score(t task.Task, ref task.Date, fanIn int, w Weights) Breakdown {
	b := Breakdown{
		Urgency:    urgencyScore(t.Due.DaysUntil(ref)),
		Importance: importanceScore(t.Importance),
		Effort:     effortScore(t.EstimatedHours),
		Dependency: dependencyScore(fanIn),
	}
	b.Total = round2(b.Urgency*w.Urgency +
		b.Importance*w.Importance +
		b.Effort*w.Effort +
		b.Dependency*w.Dependency)
	return b
}

// urgencyScore maps days-until-due onto fixed urgency bands. Overdue tasks
// escalate 5 points per day past due with no upper bound.
func urgencyScore(days int) float64 {
	switch {
	case days < 0:
		return float64(100 + (-days)*5)
	case days == 0:
		return 95
	case days == 1:
		return 85
	case days <= 3:
		return 70
	case days <= 7:
		return 50
	case days <= 14:
		return 30
	default:
		return 10
	}
}

// importanceScore maps the 1–10 importance rating onto 10–100.
func importanceScore(rating int) float64 {
	return float64(rating * 10)
}

// effortScore rewards small tasks: 100 minus 10 points per estimated hour,
// floored at zero once a task reaches ten hours.
func effortScore(hours float64) float64 {
	return round2(math.Max(0, 100-hours*10))
}

// dependencyScore grows linearly with fan-in: 15 points per task in the
// batch that depends on this one.
func dependencyScore(fanIn int) float64 {
	return float64(fanIn * fanInIncrement)
}

// round2 rounds to two decimal places, matching the wire precision of the
// scores everywhere they are reported.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
