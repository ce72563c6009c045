package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/pkg/utils"
)

const (
	adsTable = "ads"

	adColumns = "id, brand_id, fb_ad_id, COALESCE(adset_id, ''), COALESCE(campaign_id, ''), name, status, " +
		"headline, body, image_url, thumbnail_url, video_id, call_to_action, story_id, " +
		"spend, impressions, clicks, ctr, cpm, cpc, purchases, cpa, revenue, roas, " +
		"video_transcript, video_description, " +
		"tag_brand, tag_batch, tag_angle, tag_audience, tag_creator, tag_editor, tag_version, " +
		"classification, created_at, updated_at"
)

// Colunas vindas da plataforma são sempre sobrescritas. Enriquecimento e data de
// lançamento mantêm o valor anterior quando o novo vem vazio. classification não é tocada.
const adUpsertSuffix = `
	ON CONFLICT (brand_id, fb_ad_id) DO UPDATE SET
		adset_id = EXCLUDED.adset_id,
		campaign_id = EXCLUDED.campaign_id,
		name = EXCLUDED.name,
		status = EXCLUDED.status,
		headline = EXCLUDED.headline,
		body = EXCLUDED.body,
		image_url = EXCLUDED.image_url,
		thumbnail_url = EXCLUDED.thumbnail_url,
		video_id = EXCLUDED.video_id,
		call_to_action = EXCLUDED.call_to_action,
		story_id = EXCLUDED.story_id,
		spend = EXCLUDED.spend,
		impressions = EXCLUDED.impressions,
		clicks = EXCLUDED.clicks,
		ctr = EXCLUDED.ctr,
		cpm = EXCLUDED.cpm,
		cpc = EXCLUDED.cpc,
		purchases = EXCLUDED.purchases,
		cpa = EXCLUDED.cpa,
		revenue = EXCLUDED.revenue,
		roas = EXCLUDED.roas,
		video_transcript = COALESCE(EXCLUDED.video_transcript, ads.video_transcript),
		video_description = COALESCE(EXCLUDED.video_description, ads.video_description),
		tag_brand = EXCLUDED.tag_brand,
		tag_batch = EXCLUDED.tag_batch,
		tag_angle = EXCLUDED.tag_angle,
		tag_audience = EXCLUDED.tag_audience,
		tag_creator = EXCLUDED.tag_creator,
		tag_editor = EXCLUDED.tag_editor,
		tag_version = EXCLUDED.tag_version,
		created_at = COALESCE(EXCLUDED.created_at, ads.created_at),
		updated_at = NOW()
`

type AdRepository interface {
	UpsertAds(ctx context.Context, ads []*domain.AdRecord) (*UpsertResult, error)
	ListByBrand(ctx context.Context, brandID string) ([]*domain.AdRecord, error)
	ListNeedingEnrichment(ctx context.Context, brandID string) ([]*domain.AdRecord, error)
	ListActiveAdIDs(ctx context.Context, brandID string) ([]string, error)
	SpendSnapshot(ctx context.Context, brandID string) (map[string]float64, error)
	CountUnprocessedVideoAds(ctx context.Context, brandID string) (int, error)
	UpdateClassifications(ctx context.Context, brandID string, tiers map[string]domain.Tier) error
}

type adRepository struct {
	conn *postgres.Connection
}

func NewAdRepository(conn *postgres.Connection) AdRepository {
	return &adRepository{
		conn: conn,
	}
}

// UpsertAds grava o lote inteiro em uma transação. Cada registro roda dentro de um
// savepoint: uma falha desfaz só aquele registro, é contada e o lote continua.
func (r *adRepository) UpsertAds(ctx context.Context, ads []*domain.AdRecord) (*UpsertResult, error) {
	result := &UpsertResult{}
	if len(ads) == 0 {
		return result, nil
	}

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, ad := range ads {
			err := postgres.Savepoint(ctx, tx, "ad_upsert", func() error {
				return r.upsertAd(ctx, tx, ad)
			})
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"brand_id": ad.BrandID,
					"fb_ad_id": ad.FbAdID,
					"error":    err.Error(),
				}).Warn("sync: failed to upsert ad")

				result.Failed++
				result.Errors = append(result.Errors, domain.NewError(domain.KindData, "upsert_ad", 0, err))
				continue
			}
			result.Upserted++
		}
		return nil
	})
	if err != nil {
		return nil, wrapDBError(err)
	}

	return result, nil
}

func (r *adRepository) upsertAd(ctx context.Context, q postgres.Queryer, ad *domain.AdRecord) error {
	id := ad.ID
	if id == "" {
		generated, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id: %w", err)
		}
		id = generated
	}

	tags := ad.Tags
	if tags == nil {
		tags = &domain.NamingTags{}
	}

	query := squirrel.StatementBuilder.
		Insert(adsTable).
		Columns(
			"id", "brand_id", "fb_ad_id", "adset_id", "campaign_id", "name", "status",
			"headline", "body", "image_url", "thumbnail_url", "video_id", "call_to_action", "story_id",
			"spend", "impressions", "clicks", "ctr", "cpm", "cpc", "purchases", "cpa", "revenue", "roas",
			"video_transcript", "video_description",
			"tag_brand", "tag_batch", "tag_angle", "tag_audience", "tag_creator", "tag_editor", "tag_version",
			"created_at", "updated_at",
		).
		Values(
			id, ad.BrandID, ad.FbAdID, ad.AdsetID, ad.CampaignID, ad.Name, ad.Status,
			ad.Headline, ad.Body, ad.ImageURL, ad.ThumbnailURL, ad.VideoID, ad.CallToAction, ad.StoryID,
			ad.Spend, ad.Impressions, ad.Clicks, ad.CTR, ad.CPM, ad.CPC, ad.Purchases, ad.CPA, ad.Revenue, ad.ROAS,
			ad.VideoTranscript, ad.VideoDescription,
			emptyToNil(tags.Brand), emptyToNil(tags.Batch), emptyToNil(tags.Angle), emptyToNil(tags.Audience),
			emptyToNil(tags.Creator), tags.Editor, tags.Version,
			ad.CreatedAt,
			squirrel.Expr("NOW()"),
		).
		Suffix(adUpsertSuffix).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.ExecContext(ctx, sqlQuery, args...); err != nil {
		return wrapDBError(err)
	}

	return nil
}

func (r *adRepository) ListByBrand(ctx context.Context, brandID string) ([]*domain.AdRecord, error) {
	return r.list(ctx, squirrel.Eq{"brand_id": brandID})
}

// ListNeedingEnrichment retorna anúncios ainda não processados pelos colaboradores de transcrição/visão
func (r *adRepository) ListNeedingEnrichment(ctx context.Context, brandID string) ([]*domain.AdRecord, error) {
	return r.list(ctx, squirrel.And{
		squirrel.Eq{"brand_id": brandID},
		squirrel.Eq{"video_transcript": nil},
		squirrel.Eq{"video_description": nil},
	})
}

func (r *adRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*domain.AdRecord, error) {
	query, args, err := squirrel.
		Select(adColumns).
		From(adsTable).
		Where(where).
		OrderBy("created_at ASC", "fb_ad_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	ads := make([]*domain.AdRecord, 0)
	for rows.Next() {
		ad, err := scanAd(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear anúncio: %w", err)
		}
		ads = append(ads, ad)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ads, nil
}

func (r *adRepository) ListActiveAdIDs(ctx context.Context, brandID string) ([]string, error) {
	query, args, err := squirrel.
		Select("fb_ad_id").
		From(adsTable).
		Where(squirrel.Eq{"brand_id": brandID, "status": domain.StatusActive}).
		OrderBy("fb_ad_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao escanear id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// SpendSnapshot retorna o gasto atual por fb_ad_id, usado como "antes" na detecção de breakouts
func (r *adRepository) SpendSnapshot(ctx context.Context, brandID string) (map[string]float64, error) {
	query, args, err := squirrel.
		Select("fb_ad_id", "spend").
		From(adsTable).
		Where(squirrel.Eq{"brand_id": brandID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	snapshot := make(map[string]float64)
	for rows.Next() {
		var id string
		var spend float64
		if err := rows.Scan(&id, &spend); err != nil {
			return nil, fmt.Errorf("erro ao escanear gasto: %w", err)
		}
		snapshot[id] = spend
	}

	return snapshot, rows.Err()
}

func (r *adRepository) CountUnprocessedVideoAds(ctx context.Context, brandID string) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(adsTable).
		Where(squirrel.And{
			squirrel.Eq{"brand_id": brandID},
			squirrel.NotEq{"video_id": nil},
			squirrel.Eq{"video_transcript": nil},
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, wrapDBError(err)
	}

	return count, nil
}

// UpdateClassifications grava todos os tiers de uma rodada em uma única transação
func (r *adRepository) UpdateClassifications(ctx context.Context, brandID string, tiers map[string]domain.Tier) error {
	if len(tiers) == 0 {
		return nil
	}

	ids := make([]string, 0, len(tiers))
	for id := range tiers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, fbAdID := range ids {
			tier := tiers[fbAdID]
			query, args, err := squirrel.
				Update(adsTable).
				Set("classification", string(tier)).
				Where(squirrel.Eq{"brand_id": brandID, "fb_ad_id": fbAdID}).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return wrapDBError(err)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAd(row scanner) (*domain.AdRecord, error) {
	ad := &domain.AdRecord{}

	var (
		headline, body, imageURL, thumbnailURL, videoID, callToAction, storyID sql.NullString
		transcript, description                                                sql.NullString
		tagBrand, tagBatch, tagAngle, tagAudience, tagCreator                  sql.NullString
		tagEditor, tagVersion, classification                                  sql.NullString
		createdAt                                                              sql.NullTime
	)

	err := row.Scan(
		&ad.ID, &ad.BrandID, &ad.FbAdID, &ad.AdsetID, &ad.CampaignID, &ad.Name, &ad.Status,
		&headline, &body, &imageURL, &thumbnailURL, &videoID, &callToAction, &storyID,
		&ad.Spend, &ad.Impressions, &ad.Clicks, &ad.CTR, &ad.CPM, &ad.CPC, &ad.Purchases, &ad.CPA, &ad.Revenue, &ad.ROAS,
		&transcript, &description,
		&tagBrand, &tagBatch, &tagAngle, &tagAudience, &tagCreator, &tagEditor, &tagVersion,
		&classification, &createdAt, &ad.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	ad.Creative = domain.Creative{
		Headline:     nullString(headline),
		Body:         nullString(body),
		ImageURL:     nullString(imageURL),
		ThumbnailURL: nullString(thumbnailURL),
		VideoID:      nullString(videoID),
		CallToAction: nullString(callToAction),
		StoryID:      nullString(storyID),
	}
	ad.VideoTranscript = nullString(transcript)
	ad.VideoDescription = nullString(description)
	ad.CreatedAt = nullTime(createdAt)

	if tagBrand.Valid && tagBatch.Valid {
		ad.Tags = &domain.NamingTags{
			Brand:    tagBrand.String,
			Batch:    tagBatch.String,
			Angle:    tagAngle.String,
			Audience: tagAudience.String,
			Creator:  tagCreator.String,
			Editor:   nullString(tagEditor),
			Version:  nullString(tagVersion),
		}
	}

	if classification.Valid {
		tier := domain.Tier(classification.String)
		ad.Classification = &tier
	}

	return ad, nil
}

func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
