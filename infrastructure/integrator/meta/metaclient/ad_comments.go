package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	metadomain "github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-performance-api/internal/domain"
)

type ResponseComments struct {
	Data []metadomain.Comment `json:"data"`
}

// GetAdComments busca os comentários mais relevantes do post associado ao anúncio
func (c *MetaClient) GetAdComments(ctx context.Context, storyID string, limit int) ([]metadomain.Comment, error) {
	endpoint := fmt.Sprintf("%s/comments", storyID)

	params := url.Values{}
	params.Add("fields", "id,message,like_count,created_time")
	params.Add("filter", "toplevel")
	params.Add("order", "reverse_chronological")
	params.Add("limit", strconv.Itoa(limit))

	body, err := c.Request(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	var response ResponseComments
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, domain.NewError(domain.KindData, endpoint, 0, fmt.Errorf("erro ao decodificar JSON: %w", err))
	}

	return response.Data, nil
}
