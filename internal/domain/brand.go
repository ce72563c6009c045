package domain

import "time"

type ConnectionStatus string

const (
	ConnectionActive  ConnectionStatus = "active"
	ConnectionExpired ConnectionStatus = "expired"
)

type Brand struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	TargetROAS float64   `json:"target_roas"`
	TargetCPA  float64   `json:"target_cpa"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (b *Brand) Goal() ClassificationGoal {
	return ClassificationGoal{TargetROAS: b.TargetROAS, TargetCPA: b.TargetCPA}
}

// Connection é a conexão da marca com a plataforma, com o token já decifrado
type Connection struct {
	ID             string           `json:"id"`
	BrandID        string           `json:"brand_id"`
	AdAccountID    *string          `json:"ad_account_id,omitempty"`
	AccessToken    string           `json:"-"`
	TokenExpiresAt *time.Time       `json:"token_expires_at,omitempty"`
	Status         ConnectionStatus `json:"status"`
}

// IsExpired verifica a validade do token antes de iniciar uma sincronização
func (c *Connection) IsExpired(now time.Time) bool {
	if c.Status == ConnectionExpired {
		return true
	}
	return c.TokenExpiresAt != nil && !now.Before(*c.TokenExpiresAt)
}

// Handle monta o par {token, conta} consumido pelo pipeline
func (c *Connection) Handle() (AccountHandle, error) {
	if c.AdAccountID == nil || *c.AdAccountID == "" {
		return AccountHandle{}, ErrNoAccountSelected
	}
	return AccountHandle{
		BrandID:     c.BrandID,
		AccountID:   *c.AdAccountID,
		AccessToken: c.AccessToken,
	}, nil
}

// AccountHandle identifica a conta de anúncios a sincronizar
type AccountHandle struct {
	BrandID     string
	AccountID   string
	AccessToken string
}
