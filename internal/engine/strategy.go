package engine

import (
	"errors"
	"fmt"
)

// ErrUnknownStrategy is returned when a strategy name has no weight vector.
// An unrecognized strategy aborts the whole operation; nothing silently
// falls back to a default.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Weights is the immutable weight vector of a strategy. The built-in
// vectors each sum to 1.0 over sub-scores individually bounded to [0,100],
// so totals stay within [0,100] except for overdue urgency escalation.
type Weights struct {
	Urgency    float64 `json:"urgency"`
	Importance float64 `json:"importance"`
	Effort     float64 `json:"effort"`
	Dependency float64 `json:"dependencies"`
}

// Built-in strategy names.
const (
	StrategySmartBalance   = "smart_balance"
	StrategyFastestWins    = "fastest_wins"
	StrategyHighImpact     = "high_impact"
	StrategyDeadlineDriven = "deadline_driven"
)

// DefaultStrategy is the strategy callers get when they express no
// preference at the configuration layer. The engine itself never defaults.
const DefaultStrategy = StrategySmartBalance

var strategyWeights = map[string]Weights{
	StrategySmartBalance:   {Urgency: 0.35, Importance: 0.30, Effort: 0.20, Dependency: 0.15},
	StrategyFastestWins:    {Urgency: 0.10, Importance: 0.20, Effort: 0.70, Dependency: 0.00},
	StrategyHighImpact:     {Urgency: 0.15, Importance: 0.80, Effort: 0.05, Dependency: 0.00},
	StrategyDeadlineDriven: {Urgency: 0.80, Importance: 0.15, Effort: 0.05, Dependency: 0.00},
}

// strategyOrder fixes the presentation order of the catalog.
var strategyOrder = []string{
	StrategySmartBalance,
	StrategyFastestWins,
	StrategyHighImpact,
	StrategyDeadlineDriven,
}

// strategyDescriptions are one-line summaries for catalog listings.
var strategyDescriptions = map[string]string{
	StrategySmartBalance:   "balanced weighting across all four factors",
	StrategyFastestWins:    "favor small tasks you can finish quickly",
	StrategyHighImpact:     "favor tasks with the highest importance rating",
	StrategyDeadlineDriven: "favor tasks closest to (or past) their due date",
}

// StrategyWeights resolves a strategy name to its weight vector. Unknown
// names return ErrUnknownStrategy.
func StrategyWeights(name string) (Weights, error) {
	w, ok := strategyWeights[name]
	if !ok {
		return Weights{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return w, nil
}

// Strategy describes one entry of the strategy catalog.
type Strategy struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Weights     Weights `json:"weights"`
}

// Strategies returns the built-in strategy catalog in presentation order.
func Strategies() []Strategy {
	out := make([]Strategy, 0, len(strategyOrder))
	for _, name := range strategyOrder {
		out = append(out, Strategy{
			Name:        name,
			Description: strategyDescriptions[name],
			Weights:     strategyWeights[name],
		})
	}
	return out
}
