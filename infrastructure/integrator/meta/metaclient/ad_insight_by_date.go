package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"time"

	metadomain "github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-performance-api/internal/domain"
)

type ResponseAdInsight struct {
	Data   []metadomain.AdInsight `json:"data"`
	Paging metadomain.Paging      `json:"paging"`
}

// GetAdInsightsByDate retorna os insights de um único dia; nil quando o anúncio não teve entrega
func (c *MetaClient) GetAdInsightsByDate(ctx context.Context, adID string, date time.Time) (*metadomain.AdInsight, error) {
	endpoint := fmt.Sprintf("%s/insights", adID)

	day := date.Format(time.DateOnly)
	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", day, day)

	params := url.Values{}
	params.Add("fields", "ad_id,"+insightFields)
	params.Add("time_range", timeRange)

	body, err := c.Request(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	var response ResponseAdInsight
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, domain.NewError(domain.KindData, endpoint, 0, fmt.Errorf("erro ao decodificar JSON: %w", err))
	}

	if len(response.Data) == 0 {
		return nil, nil
	}

	return &response.Data[0], nil
}
