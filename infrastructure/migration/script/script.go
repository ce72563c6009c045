// Script de manutenção do banco: migrations e cadastro inicial de marcas.
//
// Uso:
//
//	go run ./infrastructure/migration/script -cmd up
//	go run ./infrastructure/migration/script -cmd down
//	go run ./infrastructure/migration/script -cmd seed -brand "Minha Marca" -account act_123 -token EAAB...
package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-performance-api/internal/config"
	"github.com/vfg2006/ad-performance-api/pkg/utils"
)

type seedBrand struct {
	Name      string
	AccountID string
	Token     string
	ExpiresAt *time.Time
	TargetCPA float64
}

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")
}

func insertBrand(ctx context.Context, tx *sql.Tx, secretKey string, b seedBrand) (string, error) {
	brandID, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO brands (id, name, target_cpa) VALUES ($1, $2, $3)`,
		brandID, b.Name, b.TargetCPA,
	)
	if err != nil {
		return "", err
	}

	encrypted, err := utils.EncryptToken(secretKey, b.Token)
	if err != nil {
		return "", err
	}

	connectionID, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	var accountID any
	if b.AccountID != "" {
		accountID = b.AccountID
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO meta_connections (id, brand_id, ad_account_id, encrypted_token, token_expires_at, status)
		 VALUES ($1, $2, $3, $4, $5, 'active')`,
		connectionID, brandID, accountID, encrypted, b.ExpiresAt,
	)
	if err != nil {
		return "", err
	}

	return brandID, nil
}

func seed(ctx context.Context, cfg *config.Config, b seedBrand) error {
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()

	startTime := time.Now()
	var brandID string
	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		var err error
		brandID, err = insertBrand(ctx, tx, cfg.SecretKey, b)
		return err
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"brand_id": brandID,
		"name":     b.Name,
		"elapsed":  time.Since(startTime).String(),
	}).Info("Marca e conexão cadastradas")

	return nil
}

func main() {
	setupLogger()

	cmd := flag.String("cmd", "up", "up | down | seed")
	name := flag.String("brand", "", "nome da marca (seed)")
	account := flag.String("account", "", "ID da conta de anúncios, ex.: act_123 (seed)")
	token := flag.String("token", "", "token de acesso do Meta (seed)")
	expiresIn := flag.Duration("expires-in", 0, "validade do token a partir de agora (seed, 0 = sem expiração)")
	targetCPA := flag.Float64("target-cpa", 0, "CPA alvo da marca (seed)")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	switch *cmd {
	case "up":
		err = postgres.RunMigrations(cfg.Database.DSN)
	case "down":
		err = postgres.RollbackMigration(cfg.Database.DSN)
	case "seed":
		if *name == "" || *token == "" {
			logrus.Fatal("seed exige -brand e -token")
		}
		b := seedBrand{Name: *name, AccountID: *account, Token: *token, TargetCPA: *targetCPA}
		if *expiresIn > 0 {
			expiresAt := time.Now().Add(*expiresIn)
			b.ExpiresAt = &expiresAt
		}
		err = seed(context.Background(), cfg, b)
	default:
		logrus.Errorf("Comando desconhecido: %s", *cmd)
		os.Exit(2)
	}

	if err != nil {
		logrus.WithError(err).Fatal("Script finalizado com erro")
	}
	logrus.Infof("Comando %s concluído", *cmd)
}
