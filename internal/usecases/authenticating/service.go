package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-performance-api/internal/config"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/pkg/apiErrors"
)

const defaultTokenTTL = 24 * time.Hour

type Authenticator interface {
	IssueToken(userID int, userName string, roleID int) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		secret: []byte(cfg.Auth.Secret),
		ttl:    defaultTokenTTL,
		now:    time.Now,
	}
}

// IssueToken assina um token HS256 para operadores da API
func (s *Service) IssueToken(userID int, userName string, roleID int) (string, error) {
	if roleID < domain.RoleAdmin || roleID > domain.RoleViewer {
		return "", NewAuthError(ErrInvalidRole, apiErrors.ErrInvalidRequest, fmt.Sprintf("role_id=%d", roleID))
	}

	now := s.now()
	claims := domain.Claims{
		UserID:     userID,
		UserName:   userName,
		UserRoleID: roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		logrus.WithError(err).Debug("auth: token rejected")
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}
