package metadomain

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// Paging carrega o cursor opaco "next" usado na paginação
type Paging struct {
	Cursors  Cursors `json:"cursors"`
	Next     string  `json:"next,omitempty"`
	Previous string  `json:"previous,omitempty"`
}

type Creative struct {
	ID                     string `json:"id"`
	Title                  string `json:"title"`
	Body                   string `json:"body"`
	ImageURL               string `json:"image_url"`
	ThumbnailURL           string `json:"thumbnail_url"`
	VideoID                string `json:"video_id"`
	CallToActionType       string `json:"call_to_action_type"`
	EffectiveObjectStoryID string `json:"effective_object_story_id"`
}

type InsightsEdge struct {
	Data []AdInsight `json:"data"`
}

// Ad é o anúncio retornado por act_{id}/ads com criativo e insights embutidos
type Ad struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Status      string        `json:"status"`
	AdsetID     string        `json:"adset_id"`
	CampaignID  string        `json:"campaign_id"`
	CreatedTime string        `json:"created_time"`
	Creative    *Creative     `json:"creative"`
	Insights    *InsightsEdge `json:"insights"`
}

// Insight retorna o primeiro bloco de insights do anúncio ou nil
func (a *Ad) Insight() *AdInsight {
	if a.Insights == nil || len(a.Insights.Data) == 0 {
		return nil
	}
	return &a.Insights.Data[0]
}

type Comment struct {
	ID          string  `json:"id"`
	Message     string  `json:"message"`
	LikeCount   Numeric `json:"like_count"`
	CreatedTime string  `json:"created_time"`
}
