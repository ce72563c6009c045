package domain

import "time"

// SyncSummary é o retorno agregado de uma sincronização de anúncios
type SyncSummary struct {
	TotalAds            int `json:"total_ads"`
	Synced              int `json:"synced"`
	Parsed              int `json:"parsed"` // Nomes que seguiram a convenção
	Errors              int `json:"errors"`
	UnprocessedVideoAds int `json:"unprocessed_video_ads"`
}

// DailySyncSummary é o retorno da sincronização diária de insights
type DailySyncSummary struct {
	Date     string `json:"date"`
	TotalAds int    `json:"total_ads"`
	Synced   int    `json:"synced"`
	Errors   int    `json:"errors"`
}

// CycleSummary agrega as etapas de um ciclo agendado para uma marca
type CycleSummary struct {
	BrandID        string                 `json:"brand_id"`
	RunID          string                 `json:"run_id"`
	Sync           *SyncSummary           `json:"sync,omitempty"`
	Classification *ClassificationSummary `json:"classification,omitempty"`
	Breakouts      []BreakoutEvent        `json:"breakouts"`
	EnrichmentSent int                    `json:"enrichment_sent"`
	StartedAt      time.Time              `json:"started_at"`
	CompletedAt    time.Time              `json:"completed_at"`
}
