package ranking

import (
	"sort"

	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/pkg/utils"
)

// Piso de significância: abaixo disso CPA e ROAS são ruído
const (
	minPurchases = 1
	minSpend     = 10.0
)

func meetsFloor(ad *domain.AdRecord) bool {
	return ad.Purchases >= minPurchases && ad.Spend >= minSpend
}

// CalculateBenchmarks calcula a linha de base da conta sobre os anúncios que passam do piso.
// Mediana para gasto e CPA, média dos valores positivos para CTR e ROAS.
func CalculateBenchmarks(ads []*domain.AdRecord) domain.Benchmark {
	var spends, cpas, ctrs, roases []float64

	for _, ad := range ads {
		if !meetsFloor(ad) {
			continue
		}
		spends = append(spends, ad.Spend)
		cpas = append(cpas, ad.CPA)
		if ad.CTR > 0 {
			ctrs = append(ctrs, ad.CTR)
		}
		if ad.ROAS > 0 {
			roases = append(roases, ad.ROAS)
		}
	}

	if len(spends) == 0 {
		return domain.Benchmark{}
	}

	return domain.Benchmark{
		MedianSpend: utils.RoundWithTwoDecimalPlace(median(spends)),
		MedianCPA:   utils.RoundWithTwoDecimalPlace(median(cpas)),
		AvgCTR:      utils.RoundWithTwoDecimalPlace(mean(ctrs)),
		AvgROAS:     utils.RoundWithTwoDecimalPlace(mean(roases)),
		TotalAds:    len(spends),
	}
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var total float64
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}
