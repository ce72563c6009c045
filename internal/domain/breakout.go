package domain

type BreakoutType string

const (
	BreakoutSpendIncrease    BreakoutType = "spend_increase"
	BreakoutThresholdCrossed BreakoutType = "threshold_crossed"
)

// BreakoutEvent sinaliza um aumento brusco de investimento em um anúncio
type BreakoutEvent struct {
	AdID            string       `json:"ad_id"`
	AdName          string       `json:"ad_name,omitempty"`
	Type            BreakoutType `json:"type"`
	PreviousSpend   float64      `json:"previous_spend"`
	CurrentSpend    float64      `json:"current_spend"`
	PercentIncrease *float64     `json:"percent_increase,omitempty"`
}
