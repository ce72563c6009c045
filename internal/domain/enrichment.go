package domain

import "time"

// EnrichmentRequest é o anúncio entregue aos colaboradores de transcrição e visão
type EnrichmentRequest struct {
	BrandID      string      `json:"brand_id"`
	FbAdID       string      `json:"fb_ad_id"`
	Name         string      `json:"name"`
	Tier         Tier        `json:"tier"`
	Spend        float64     `json:"spend"`
	VideoID      *string     `json:"video_id,omitempty"`
	ImageURL     *string     `json:"image_url,omitempty"`
	ThumbnailURL *string     `json:"thumbnail_url,omitempty"`
	Comments     []AdComment `json:"comments"`
	RequestedAt  time.Time   `json:"requested_at"`
}

// TierOrLoser retorna o tier gravado, tratando anúncio sem classificação como loser
func (a *AdRecord) TierOrLoser() Tier {
	if a.Classification == nil {
		return TierLoser
	}
	return *a.Classification
}
