package ranking

import (
	"fmt"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-performance-api/internal/domain"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

var goal = domain.ClassificationGoal{TargetROAS: 2, TargetCPA: 20}

// rankedAds gera n anúncios ativos que batem a meta, com gasto decrescente a partir de 5000
func rankedAds(n int) []*domain.AdRecord {
	ads := make([]*domain.AdRecord, 0, n)
	for i := 0; i < n; i++ {
		ads = append(ads, newAd(fmt.Sprintf("ad%02d", i+1), domain.StatusActive, float64(5000-i*100), 3, 10, 5))
	}
	return ads
}

func TestResolveGoal(t *testing.T) {
	benchmark := domain.Benchmark{AvgROAS: 2.0, MedianCPA: 18}

	tests := []struct {
		name     string
		goal     domain.ClassificationGoal
		expected domain.ClassificationGoal
	}{
		{
			name:     "Sem metas usa a linha de base da conta",
			goal:     domain.ClassificationGoal{},
			expected: domain.ClassificationGoal{TargetROAS: 2.0, TargetCPA: 18},
		},
		{
			name:     "Metas explícitas têm prioridade",
			goal:     domain.ClassificationGoal{TargetROAS: 3, TargetCPA: 25},
			expected: domain.ClassificationGoal{TargetROAS: 3, TargetCPA: 25},
		},
		{
			name:     "Apenas ROAS definido remove o teto de CPA",
			goal:     domain.ClassificationGoal{TargetROAS: 3},
			expected: domain.ClassificationGoal{TargetROAS: 3},
		},
		{
			name:     "Apenas CPA definido usa ROAS neutro",
			goal:     domain.ClassificationGoal{TargetCPA: 25},
			expected: domain.ClassificationGoal{TargetROAS: 1, TargetCPA: 25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveGoal(tt.goal, benchmark))
		})
	}
}

func TestClassify_Limites(t *testing.T) {
	tests := []struct {
		name      string
		ads       int
		window    domain.DateWindow
		winners   int
		potential int
		losers    int
	}{
		{name: "11 anúncios em lifetime", ads: 11, window: domain.WindowLifetime, winners: 10, potential: 1, losers: 0},
		{name: "21 anúncios em lifetime", ads: 21, window: domain.WindowLifetime, winners: 10, potential: 10, losers: 1},
		{name: "21 anúncios em last_90d", ads: 21, window: domain.WindowLast90Days, winners: 10, potential: 10, losers: 1},
		{name: "21 anúncios em last_30d", ads: 21, window: domain.WindowLast30Days, winners: 5, potential: 15, losers: 1},
		{name: "7 anúncios em last_30d", ads: 7, window: domain.WindowLast30Days, winners: 5, potential: 2, losers: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ads := rankedAds(tt.ads)

			summary := Classify(ads, goal, tt.window, now)

			assert.Equal(t, domain.TierCounts{Winner: tt.winners, Potential: tt.potential, Loser: tt.losers}, summary.Counts)

			// Winners são sempre os de maior gasto
			for i, ad := range ads {
				expected := domain.TierLoser
				switch {
				case i < tt.winners:
					expected = domain.TierWinner
				case i < tt.winners+tt.potential:
					expected = domain.TierPotential
				}
				assert.Equal(t, expected, summary.Tiers[ad.FbAdID], ad.FbAdID)
			}
		})
	}
}

func TestClassify_EmpateMantemOrdemDeEntrada(t *testing.T) {
	ads := []*domain.AdRecord{
		newAd("low", domain.StatusActive, 100, 3, 10, 1),
		newAd("a", domain.StatusActive, 900, 3, 10, 1),
		newAd("b", domain.StatusActive, 800, 3, 10, 1),
		newAd("c", domain.StatusActive, 700, 3, 10, 1),
		newAd("d", domain.StatusActive, 600, 3, 10, 1),
		newAd("tie-first", domain.StatusActive, 500, 3, 10, 1),
		newAd("tie-second", domain.StatusActive, 500, 3, 10, 1),
	}

	summary := Classify(ads, goal, domain.WindowLast30Days, now)

	for _, id := range []string{"a", "b", "c", "d", "tie-first"} {
		assert.Equal(t, domain.TierWinner, summary.Tiers[id], id)
	}
	assert.Equal(t, domain.TierPotential, summary.Tiers["tie-second"])
	assert.Equal(t, domain.TierPotential, summary.Tiers["low"])
	assert.Equal(t, 5, summary.Counts.Winner)
}

func TestClassify_Regras(t *testing.T) {
	recent := now.Add(-48 * time.Hour)
	old := now.Add(-8 * 24 * time.Hour)

	launched := func(ad *domain.AdRecord, at time.Time) *domain.AdRecord {
		ad.CreatedAt = &at
		return ad
	}

	tests := []struct {
		name     string
		ads      []*domain.AdRecord
		goal     domain.ClassificationGoal
		expected map[string]domain.Tier
	}{
		{
			name: "Anúncio recente é new mesmo com desempenho de winner",
			ads: []*domain.AdRecord{
				launched(newAd("recent", domain.StatusActive, 9000, 10, 5, 50), recent),
				launched(newAd("old", domain.StatusActive, 9000, 10, 5, 50), old),
			},
			goal: goal,
			expected: map[string]domain.Tier{
				"recent": domain.TierNew,
				"old":    domain.TierWinner,
			},
		},
		{
			name: "Anúncio recente abaixo do piso continua new",
			ads: []*domain.AdRecord{
				launched(newAd("recent", domain.StatusPaused, 0, 0, 0, 0), recent),
			},
			goal:     goal,
			expected: map[string]domain.Tier{"recent": domain.TierNew},
		},
		{
			name: "Pausado que bate a meta vira potential sem limite",
			ads: append(rankedAds(20),
				newAd("paused-ok", domain.StatusPaused, 50, 4, 10, 2),
				newAd("paused-bad", domain.StatusPaused, 5000, 1, 10, 2),
			),
			goal: goal,
			expected: map[string]domain.Tier{
				"paused-ok":  domain.TierPotential,
				"paused-bad": domain.TierLoser,
			},
		},
		{
			name: "Ativo abaixo do piso de significância é loser",
			ads: []*domain.AdRecord{
				newAd("no-purchase", domain.StatusActive, 3000, 5, 0, 0),
				newAd("low-spend", domain.StatusActive, 9, 5, 9, 1),
			},
			goal: goal,
			expected: map[string]domain.Tier{
				"no-purchase": domain.TierLoser,
				"low-spend":   domain.TierLoser,
			},
		},
		{
			name: "CPA acima do teto bloqueia a qualificação",
			ads: []*domain.AdRecord{
				newAd("expensive", domain.StatusActive, 3000, 5, 45, 3),
			},
			goal:     goal,
			expected: map[string]domain.Tier{"expensive": domain.TierLoser},
		},
		{
			name: "Meta apenas de ROAS ignora o CPA",
			ads: []*domain.AdRecord{
				newAd("expensive", domain.StatusActive, 3000, 5, 45, 3),
			},
			goal:     domain.ClassificationGoal{TargetROAS: 2},
			expected: map[string]domain.Tier{"expensive": domain.TierWinner},
		},
		{
			name: "Status diferente de ativo ou pausado é loser",
			ads: []*domain.AdRecord{
				newAd("archived", "ARCHIVED", 3000, 5, 10, 3),
			},
			goal:     goal,
			expected: map[string]domain.Tier{"archived": domain.TierLoser},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Classify(tt.ads, tt.goal, domain.WindowLast30Days, now)

			for id, tier := range tt.expected {
				assert.Equal(t, tier, summary.Tiers[id], id)
			}
		})
	}
}

func TestClassify_MetaPelaLinhaDeBase(t *testing.T) {
	ads := []*domain.AdRecord{
		newAd("a1", domain.StatusActive, 1000, 3, 10, 10),
		newAd("a2", domain.StatusActive, 800, 1, 30, 10),
	}

	summary := Classify(ads, domain.ClassificationGoal{}, domain.WindowLifetime, now)

	assert.Equal(t, domain.ClassificationGoal{TargetROAS: 2, TargetCPA: 20}, summary.Goals)
	assert.Equal(t, domain.TierWinner, summary.Tiers["a1"])
	assert.Equal(t, domain.TierLoser, summary.Tiers["a2"])
	assert.Equal(t, now, summary.ClassifiedAt)
	assert.Equal(t, domain.WindowLifetime, summary.Window)
}

func TestClassify_TodoAnuncioRecebeUmTier(t *testing.T) {
	statuses := []string{domain.StatusActive, domain.StatusPaused, "ARCHIVED"}
	windows := []domain.DateWindow{domain.WindowLast30Days, domain.WindowLast90Days, domain.WindowLifetime}

	properties := gopter.NewProperties(nil)

	properties.Property("classify é total e cada anúncio tem exatamente um tier", prop.ForAll(
		func(spends []int, seeds []int, windowIdx int) bool {
			ads := make([]*domain.AdRecord, 0, len(spends))
			for i, spend := range spends {
				seed := 0
				if len(seeds) > 0 {
					seed = seeds[i%len(seeds)]
				}

				ad := newAd(fmt.Sprintf("ad%d", i), statuses[seed%len(statuses)],
					float64(spend), float64(seed%5), float64(seed%40), int64(seed%3))
				if seed%4 == 0 {
					launch := now.Add(-time.Duration(seed) * time.Hour)
					ad.CreatedAt = &launch
				}
				ads = append(ads, ad)
			}

			window := windows[windowIdx]
			summary := Classify(ads, domain.ClassificationGoal{}, window, now)
			if len(summary.Tiers) != len(ads) || summary.Counts.Total() != len(ads) {
				return false
			}

			maxWinners, _ := window.TierLimits()
			if summary.Counts.Winner > maxWinners {
				return false
			}

			for _, ad := range ads {
				tier, ok := summary.Tiers[ad.FbAdID]
				if !ok || !tier.Valid() {
					return false
				}
				if isNew(ad, now) && tier != domain.TierNew {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 5000)),
		gen.SliceOf(gen.IntRange(0, 400)),
		gen.IntRange(0, 2),
	))

	properties.TestingRun(t)
}

func TestClassify_SemAnuncios(t *testing.T) {
	summary := Classify(nil, goal, domain.WindowLast30Days, now)

	require.NotNil(t, summary)
	assert.Empty(t, summary.Tiers)
	assert.Zero(t, summary.Counts.Total())
	assert.Equal(t, domain.Benchmark{}, summary.Benchmarks)
}
