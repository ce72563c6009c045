package breakout

import (
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/pkg/utils"
)

const (
	// SpendFloor é o gasto mínimo para um anúncio ser avaliado
	SpendFloor = 1000.0
	// IncreaseThreshold é o aumento percentual que caracteriza spend_increase
	IncreaseThreshold = 300.0
	// AbsoluteThreshold é o gasto que, ao ser cruzado, caracteriza threshold_crossed
	AbsoluteThreshold = 5000.0
)

// DetectBreakouts compara o gasto atual com o retrato anterior à sincronização.
// Um anúncio pode gerar os dois tipos de evento. Sem valor anterior não há evento.
func DetectBreakouts(previous map[string]float64, current []*domain.AdRecord) []domain.BreakoutEvent {
	events := make([]domain.BreakoutEvent, 0)

	for _, ad := range current {
		if ad.Spend <= SpendFloor {
			continue
		}

		prev, ok := previous[ad.FbAdID]
		if !ok {
			continue
		}

		var increase *float64
		crossedIncrease := false
		if prev > 0 {
			raw := (ad.Spend - prev) / prev * 100
			crossedIncrease = raw >= IncreaseThreshold
			pct := utils.RoundWithTwoDecimalPlace(raw)
			increase = &pct
		}

		// O arredondamento vale só para o valor publicado, nunca para a comparação
		if crossedIncrease {
			events = append(events, newEvent(ad, domain.BreakoutSpendIncrease, prev, increase))
		}

		if prev < AbsoluteThreshold && ad.Spend >= AbsoluteThreshold {
			events = append(events, newEvent(ad, domain.BreakoutThresholdCrossed, prev, increase))
		}
	}

	return events
}

func newEvent(ad *domain.AdRecord, kind domain.BreakoutType, prev float64, increase *float64) domain.BreakoutEvent {
	return domain.BreakoutEvent{
		AdID:            ad.FbAdID,
		AdName:          ad.Name,
		Type:            kind,
		PreviousSpend:   prev,
		CurrentSpend:    ad.Spend,
		PercentIncrease: increase,
	}
}
