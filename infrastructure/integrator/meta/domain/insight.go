package metadomain

// Tipos de ação que representam compra, em ordem de prioridade
var PurchaseActionTypes = []string{
	"purchase",
	"offsite_conversion.fb_pixel_purchase",
}

type Action struct {
	ActionType string  `json:"action_type"`
	Value      Numeric `json:"value"`
}

// AdInsight é o bloco de métricas de um anúncio em um período
type AdInsight struct {
	AdID              string   `json:"ad_id"`
	DateStart         string   `json:"date_start"`
	DateStop          string   `json:"date_stop"`
	Spend             Numeric  `json:"spend"`
	Impressions       Numeric  `json:"impressions"`
	Clicks            Numeric  `json:"clicks"`
	CTR               Numeric  `json:"ctr"`
	CPM               Numeric  `json:"cpm"`
	CPC               Numeric  `json:"cpc"`
	Actions           []Action `json:"actions"`
	ActionValues      []Action `json:"action_values"`
	CostPerActionType []Action `json:"cost_per_action_type"`
}

// PurchaseActionType retorna o primeiro tipo de compra presente em actions
func (i *AdInsight) PurchaseActionType() (string, bool) {
	for _, t := range PurchaseActionTypes {
		if _, ok := findAction(i.Actions, t); ok {
			return t, true
		}
	}
	return "", false
}

// ActionValue procura o valor de um tipo de ação em uma das listas paralelas
func ActionValue(actions []Action, actionType string) float64 {
	v, _ := findAction(actions, actionType)
	return v
}

func findAction(actions []Action, actionType string) (float64, bool) {
	for _, a := range actions {
		if a.ActionType == actionType {
			return a.Value.Float(), true
		}
	}
	return 0, false
}
