package main

import (
	"flag"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-performance-api/internal/config"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/internal/usecases/authenticating"
)

// Emite um token de acesso para operadores da API
func main() {
	userID := flag.Int("user-id", 1, "ID do operador")
	userName := flag.String("name", "admin", "nome do operador")
	roleID := flag.Int("role", domain.RoleAdmin, "1=admin, 2=operador, 3=leitura")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	token, err := authenticating.NewService(cfg).IssueToken(*userID, *userName, *roleID)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao emitir token")
	}

	fmt.Println(token)
}
