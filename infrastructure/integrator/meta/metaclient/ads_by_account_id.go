package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-performance-api/internal/domain"
)

const (
	adFields       = "id,name,status,adset_id,campaign_id,created_time"
	creativeFields = "id,title,body,image_url,thumbnail_url,video_id,call_to_action_type,effective_object_story_id"
	insightFields  = "spend,impressions,clicks,ctr,cpm,cpc,actions,action_values,cost_per_action_type"
)

// GetAdsByAccountID busca todos os anúncios da conta com criativo e insights da janela em uma única listagem paginada.
// Itens que não decodificam voltam como erros de dados, sem interromper a listagem.
func (c *MetaClient) GetAdsByAccountID(ctx context.Context, accountID string, window domain.DateWindow) ([]metadomain.Ad, []*domain.Error, error) {
	endpoint := fmt.Sprintf("%s/ads", accountNode(accountID))

	params := url.Values{}
	params.Add("fields", fmt.Sprintf("%s,creative{%s},insights.date_preset(%s){%s}",
		adFields, creativeFields, window.DatePreset(), insightFields))

	raw, err := c.FetchAllPages(ctx, endpoint, params, c.cfg.MaxPages)
	if err != nil {
		return nil, nil, err
	}

	var skipped []*domain.Error
	ads := make([]metadomain.Ad, 0, len(raw))
	for _, item := range raw {
		var ad metadomain.Ad
		if err := json.Unmarshal(item, &ad); err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Warn("meta: skipping undecodable ad")
			skipped = append(skipped, domain.NewError(domain.KindData, "decode_ad", 0, err))
			continue
		}
		ads = append(ads, ad)
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"window":     window,
		"total":      len(ads),
		"skipped":    len(skipped),
	}).Debug("meta: ads fetched")

	return ads, skipped, nil
}

// accountNode garante o prefixo act_ exigido pela Graph API
func accountNode(accountID string) string {
	if strings.HasPrefix(accountID, "act_") {
		return accountID
	}
	return "act_" + accountID
}
