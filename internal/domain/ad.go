package domain

import "time"

const (
	StatusActive = "ACTIVE"
	StatusPaused = "PAUSED"
)

// PerformanceMetrics representa as métricas normalizadas de um anúncio em um período
type PerformanceMetrics struct {
	Spend       float64 `json:"spend"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CTR         float64 `json:"ctr"`
	CPM         float64 `json:"cpm"`
	CPC         float64 `json:"cpc"`
	Purchases   int64   `json:"purchases"`
	CPA         float64 `json:"cpa"`
	Revenue     float64 `json:"revenue"`
	ROAS        float64 `json:"roas"`
}

// Creative é o retrato do criativo no momento da sincronização
type Creative struct {
	Headline     *string `json:"headline,omitempty"`
	Body         *string `json:"body,omitempty"`
	ImageURL     *string `json:"image_url,omitempty"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`
	VideoID      *string `json:"video_id,omitempty"`
	CallToAction *string `json:"call_to_action,omitempty"`
	StoryID      *string `json:"story_id,omitempty"` // Post usado para buscar comentários
}

// AdRecord representa um anúncio persistido, único por (brand_id, fb_ad_id)
type AdRecord struct {
	ID         string `json:"id"`
	BrandID    string `json:"brand_id"`
	FbAdID     string `json:"fb_ad_id"`
	AdsetID    string `json:"adset_id"`
	CampaignID string `json:"campaign_id"`
	Name       string `json:"name"`
	Status     string `json:"status"`

	Creative
	PerformanceMetrics

	// Preenchidos apenas pelos colaboradores de enriquecimento
	VideoTranscript  *string `json:"video_transcript,omitempty"`
	VideoDescription *string `json:"video_description,omitempty"`

	Tags           *NamingTags `json:"tags,omitempty"`
	Classification *Tier       `json:"classification,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"` // Data de lançamento na plataforma
	UpdatedAt time.Time  `json:"updated_at"`
}

func (a *AdRecord) IsActive() bool {
	return a.Status == StatusActive
}

func (a *AdRecord) IsPaused() bool {
	return a.Status == StatusPaused
}

// NeedsEnrichment indica que nenhum colaborador processou o anúncio ainda
func (a *AdRecord) NeedsEnrichment() bool {
	return a.VideoTranscript == nil && a.VideoDescription == nil
}

// InsightSnapshot é uma linha de histórico diário, única por (brand_id, fb_ad_id, date)
type InsightSnapshot struct {
	BrandID string    `json:"brand_id"`
	FbAdID  string    `json:"fb_ad_id"`
	Date    time.Time `json:"date"`
	PerformanceMetrics
}

// AdComment é um comentário público de um anúncio, usado no enriquecimento
type AdComment struct {
	ID          string    `json:"id"`
	Message     string    `json:"message"`
	LikeCount   int       `json:"like_count"`
	CreatedTime time.Time `json:"created_time"`
}
