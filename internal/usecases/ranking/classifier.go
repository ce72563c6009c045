package ranking

import (
	"sort"
	"time"

	"github.com/vfg2006/ad-performance-api/internal/domain"
)

// newAdWindow é o período após o lançamento em que o anúncio é sempre "new"
const newAdWindow = 7 * 24 * time.Hour

// neutralROAS é o piso usado quando a marca define apenas o CPA alvo
const neutralROAS = 1.0

// ResolveGoal decide a meta efetiva da marca. Sem metas definidas usa a linha de base da
// conta. Com apenas uma definida a outra é neutralizada: CPA zero significa sem teto.
func ResolveGoal(goal domain.ClassificationGoal, benchmark domain.Benchmark) domain.ClassificationGoal {
	hasROAS := goal.TargetROAS > 0
	hasCPA := goal.TargetCPA > 0

	switch {
	case hasROAS && hasCPA:
		return goal
	case hasROAS:
		return domain.ClassificationGoal{TargetROAS: goal.TargetROAS}
	case hasCPA:
		return domain.ClassificationGoal{TargetROAS: neutralROAS, TargetCPA: goal.TargetCPA}
	default:
		return domain.ClassificationGoal{
			TargetROAS: benchmark.AvgROAS,
			TargetCPA:  benchmark.MedianCPA,
		}
	}
}

func meetsGoal(ad *domain.AdRecord, goal domain.ClassificationGoal) bool {
	if ad.ROAS < goal.TargetROAS {
		return false
	}
	return goal.TargetCPA <= 0 || ad.CPA <= goal.TargetCPA
}

func isNew(ad *domain.AdRecord, now time.Time) bool {
	if ad.CreatedAt == nil {
		return false
	}
	return now.Sub(*ad.CreatedAt) < newAdWindow
}

// Classify recalcula do zero o tier de cada anúncio. Todo anúncio recebe exatamente um tier.
func Classify(ads []*domain.AdRecord, goal domain.ClassificationGoal, window domain.DateWindow, now time.Time) *domain.ClassificationSummary {
	benchmark := CalculateBenchmarks(ads)
	resolved := ResolveGoal(goal, benchmark)
	maxWinners, maxPotential := window.TierLimits()

	tiers := make(map[string]domain.Tier, len(ads))
	var active, paused []*domain.AdRecord

	for _, ad := range ads {
		if isNew(ad, now) {
			tiers[ad.FbAdID] = domain.TierNew
			continue
		}

		tiers[ad.FbAdID] = domain.TierLoser

		if !meetsFloor(ad) {
			continue
		}
		switch {
		case ad.IsActive():
			active = append(active, ad)
		case ad.IsPaused():
			paused = append(paused, ad)
		}
	}

	sortBySpend(active)
	sortBySpend(paused)

	winners, potentials := 0, 0
	for _, ad := range active {
		if !meetsGoal(ad, resolved) {
			continue
		}
		switch {
		case winners < maxWinners:
			tiers[ad.FbAdID] = domain.TierWinner
			winners++
		case potentials < maxPotential:
			tiers[ad.FbAdID] = domain.TierPotential
			potentials++
		}
	}

	// Pausados que bateram a meta continuam sendo referência, sem limite
	for _, ad := range paused {
		if meetsGoal(ad, resolved) {
			tiers[ad.FbAdID] = domain.TierPotential
		}
	}

	var counts domain.TierCounts
	for _, tier := range tiers {
		counts.Add(tier)
	}

	return &domain.ClassificationSummary{
		Window:       window,
		Benchmarks:   benchmark,
		Goals:        resolved,
		Counts:       counts,
		Tiers:        tiers,
		ClassifiedAt: now,
	}
}

// sortBySpend ordena por gasto decrescente mantendo a ordem de entrada nos empates
func sortBySpend(ads []*domain.AdRecord) {
	sort.SliceStable(ads, func(i, j int) bool {
		return ads[i].Spend > ads[j].Spend
	})
}
