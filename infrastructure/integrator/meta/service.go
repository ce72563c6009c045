package meta

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/pkg/utils"
)

const metaTimeLayout = "2006-01-02T15:04:05-0700"

// Integrator é a fonte de anúncios usada pelo pipeline de sincronização
type Integrator interface {
	// GetAdRecords devolve os registros e, à parte, os itens descartados por erro de dados
	GetAdRecords(ctx context.Context, brandID, accountID string, window domain.DateWindow) ([]*domain.AdRecord, []*domain.Error, error)
	GetDailyInsight(ctx context.Context, fbAdID string, date time.Time) (*domain.PerformanceMetrics, error)
	GetComments(ctx context.Context, storyID string, limit int) ([]domain.AdComment, error)
}

// Factory cria um integrador com cliente e limitador próprios para um token
type Factory interface {
	ForToken(accessToken string) Integrator
}

type MetaIntegrator struct {
	Client metaclient.Client
}

func New(client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		Client: client,
	}
}

type factory struct {
	clients metaclient.Factory
}

func NewFactory(clients metaclient.Factory) Factory {
	return &factory{clients: clients}
}

func (f *factory) ForToken(accessToken string) Integrator {
	return New(f.clients.NewClient(accessToken))
}

func (s *MetaIntegrator) GetAdRecords(ctx context.Context, brandID, accountID string, window domain.DateWindow) ([]*domain.AdRecord, []*domain.Error, error) {
	ads, skipped, err := s.Client.GetAdsByAccountID(ctx, accountID, window)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("sync: failed to get ads from API")
		return nil, nil, err
	}

	records := make([]*domain.AdRecord, 0, len(ads))
	for i := range ads {
		records = append(records, FactoryAdRecord(brandID, &ads[i]))
	}

	return records, skipped, nil
}

func (s *MetaIntegrator) GetDailyInsight(ctx context.Context, fbAdID string, date time.Time) (*domain.PerformanceMetrics, error) {
	insight, err := s.Client.GetAdInsightsByDate(ctx, fbAdID, date)
	if err != nil {
		return nil, err
	}

	metrics := NormalizeInsight(insight)
	return &metrics, nil
}

func (s *MetaIntegrator) GetComments(ctx context.Context, storyID string, limit int) ([]domain.AdComment, error) {
	comments, err := s.Client.GetAdComments(ctx, storyID, limit)
	if err != nil {
		return nil, err
	}

	result := make([]domain.AdComment, 0, len(comments))
	for _, c := range comments {
		if strings.TrimSpace(c.Message) == "" {
			continue
		}

		comment := domain.AdComment{
			ID:        c.ID,
			Message:   c.Message,
			LikeCount: int(c.LikeCount.Int()),
		}
		if t := parseMetaTime(c.CreatedTime); t != nil {
			comment.CreatedTime = *t
		}
		result = append(result, comment)
	}

	return result, nil
}

// FactoryAdRecord converte o anúncio da Graph API no registro persistido
func FactoryAdRecord(brandID string, ad *metadomain.Ad) *domain.AdRecord {
	record := &domain.AdRecord{
		BrandID:            brandID,
		FbAdID:             ad.ID,
		AdsetID:            ad.AdsetID,
		CampaignID:         ad.CampaignID,
		Name:               ad.Name,
		Status:             ad.Status,
		Tags:               domain.ParseAdName(ad.Name),
		CreatedAt:          parseMetaTime(ad.CreatedTime),
		PerformanceMetrics: NormalizeInsight(ad.Insight()),
	}

	if c := ad.Creative; c != nil {
		record.Creative = domain.Creative{
			Headline:     optional(c.Title),
			Body:         optional(c.Body),
			ImageURL:     optional(c.ImageURL),
			ThumbnailURL: optional(c.ThumbnailURL),
			VideoID:      optional(c.VideoID),
			CallToAction: optional(c.CallToActionType),
			StoryID:      optional(c.EffectiveObjectStoryID),
		}
	}

	return record
}

// NormalizeInsight extrai as métricas de um bloco de insights. Nunca falha:
// entradas ausentes ou inválidas resultam em zero.
func NormalizeInsight(insight *metadomain.AdInsight) domain.PerformanceMetrics {
	if insight == nil {
		return domain.PerformanceMetrics{}
	}

	metrics := domain.PerformanceMetrics{
		Spend:       utils.RoundWithTwoDecimalPlace(insight.Spend.Float()),
		Impressions: insight.Impressions.Int(),
		Clicks:      insight.Clicks.Int(),
		CTR:         insight.CTR.Float(),
		CPM:         utils.RoundWithTwoDecimalPlace(insight.CPM.Float()),
		CPC:         utils.RoundWithTwoDecimalPlace(insight.CPC.Float()),
	}

	var providerCPA float64
	if actionType, ok := insight.PurchaseActionType(); ok {
		metrics.Purchases = int64(math.Round(metadomain.ActionValue(insight.Actions, actionType)))
		metrics.Revenue = utils.RoundWithTwoDecimalPlace(metadomain.ActionValue(insight.ActionValues, actionType))
		providerCPA = metadomain.ActionValue(insight.CostPerActionType, actionType)
	}

	switch {
	case providerCPA > 0:
		metrics.CPA = utils.RoundWithTwoDecimalPlace(providerCPA)
	case metrics.Purchases > 0:
		metrics.CPA = utils.RoundWithTwoDecimalPlace(metrics.Spend / float64(metrics.Purchases))
	}

	if metrics.Spend > 0 {
		metrics.ROAS = utils.RoundWithTwoDecimalPlace(metrics.Revenue / metrics.Spend)
	}

	return metrics
}

func parseMetaTime(value string) *time.Time {
	if value == "" {
		return nil
	}

	for _, layout := range []string{metaTimeLayout, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}

	logrus.WithField("value", value).Warn("sync: unparseable created_time")
	return nil
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
