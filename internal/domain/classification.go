package domain

import (
	"fmt"
	"time"
)

type Tier string

const (
	TierWinner    Tier = "winner"
	TierPotential Tier = "potential"
	TierLoser     Tier = "loser"
	TierNew       Tier = "new"
)

// Priority define a ordem de envio para enriquecimento (menor primeiro)
func (t Tier) Priority() int {
	switch t {
	case TierWinner:
		return 0
	case TierPotential:
		return 1
	case TierNew:
		return 2
	default:
		return 3
	}
}

func (t Tier) Valid() bool {
	switch t {
	case TierWinner, TierPotential, TierLoser, TierNew:
		return true
	}
	return false
}

// DateWindow é o modo de janela usado na sincronização e classificação
type DateWindow string

const (
	WindowLast30Days DateWindow = "last_30d"
	WindowLast90Days DateWindow = "last_90d"
	WindowLifetime   DateWindow = "lifetime"
)

func ParseDateWindow(s string) (DateWindow, error) {
	switch w := DateWindow(s); w {
	case WindowLast30Days, WindowLast90Days, WindowLifetime:
		return w, nil
	case "":
		return WindowLast30Days, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDateWindow, s)
}

// DatePreset traduz a janela para o date_preset da Graph API
func (w DateWindow) DatePreset() string {
	switch w {
	case WindowLast90Days:
		return "last_90d"
	case WindowLifetime:
		return "maximum"
	default:
		return "last_30d"
	}
}

// TierLimits retorna o máximo de winners e potentials para a janela
func (w DateWindow) TierLimits() (maxWinners, maxPotential int) {
	if w == WindowLast30Days {
		return 5, 15
	}
	return 10, 10
}

// Benchmark é a linha de base estatística da conta; não é persistido isoladamente
type Benchmark struct {
	MedianSpend float64 `json:"median_spend"`
	MedianCPA   float64 `json:"median_cpa"`
	AvgCTR      float64 `json:"avg_ctr"`
	AvgROAS     float64 `json:"avg_roas"`
	TotalAds    int     `json:"total_ads"`
}

// ClassificationGoal é a meta por marca; zero significa "não definida"
type ClassificationGoal struct {
	TargetROAS float64 `json:"target_roas"`
	TargetCPA  float64 `json:"target_cpa"`
}

type TierCounts struct {
	Winner    int `json:"winner"`
	Potential int `json:"potential"`
	Loser     int `json:"loser"`
	New       int `json:"new"`
}

func (c *TierCounts) Add(t Tier) {
	switch t {
	case TierWinner:
		c.Winner++
	case TierPotential:
		c.Potential++
	case TierNew:
		c.New++
	default:
		c.Loser++
	}
}

func (c TierCounts) Total() int {
	return c.Winner + c.Potential + c.Loser + c.New
}

// ClassificationSummary é o resultado de uma rodada de classificação
type ClassificationSummary struct {
	BrandID      string             `json:"brand_id"`
	Window       DateWindow         `json:"window"`
	Benchmarks   Benchmark          `json:"benchmarks"`
	Goals        ClassificationGoal `json:"goals"`
	Counts       TierCounts         `json:"counts"`
	Tiers        map[string]Tier    `json:"tiers"` // fb_ad_id -> tier
	ClassifiedAt time.Time          `json:"classified_at"`
}
