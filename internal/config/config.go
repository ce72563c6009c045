package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Meta              Meta              `mapstructure:",squash"`
	Redis             Redis             `mapstructure:",squash"`
	Auth              Auth              `mapstructure:",squash"`
	PerformanceSync   PerformanceSync   `mapstructure:",squash"`
	DailyInsightsSync DailyInsightsSync `mapstructure:",squash"`
	SecretKey         string            `mapstructure:"secret_key"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN           string `mapstructure:"-"`
	Driver        string `mapstructure:"database_driver"`
	Password      string `mapstructure:"database_password"`
	URL           string `mapstructure:"database_url"`
	User          string `mapstructure:"database_user"`
	RunMigrations bool   `mapstructure:"database_run_migrations"`
}

type Meta struct {
	BaseURL         string        `mapstructure:"meta_base_url"`
	URL             string        `mapstructure:"meta_url"`
	Version         string        `mapstructure:"meta_version"`
	MaxCallsPerHour int           `mapstructure:"meta_max_calls_per_hour"`
	MinCallDelay    time.Duration `mapstructure:"meta_min_call_delay"`
	MaxRetries      int           `mapstructure:"meta_max_retries"`
	RetryBaseDelay  time.Duration `mapstructure:"meta_retry_base_delay"`
	PageSize        int           `mapstructure:"meta_page_size"`
	MaxPages        int           `mapstructure:"meta_max_pages"`
	HTTPTimeout     time.Duration `mapstructure:"meta_http_timeout"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type PerformanceSync struct {
	CronSchedule       string `mapstructure:"performance_sync_cron"`
	DateWindow         string `mapstructure:"performance_sync_date_window"`
	EnrichmentBatch    int    `mapstructure:"performance_sync_enrichment_batch"`
	CommentConcurrency int    `mapstructure:"performance_sync_comment_concurrency"`
	Enabled            bool   `mapstructure:"performance_sync_enabled"`
}

type DailyInsightsSync struct {
	CronSchedule  string `mapstructure:"daily_insights_sync_cron"`
	LookbackDays  int    `mapstructure:"daily_insights_sync_lookback_days"`
	RetentionDays int    `mapstructure:"daily_insights_sync_retention_days"`
	Enabled       bool   `mapstructure:"daily_insights_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_RUN_MIGRATIONS", true)

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_MAX_CALLS_PER_HOUR", 180) // Orçamento conservador do tier padrão
	viper.SetDefault("META_MIN_CALL_DELAY", "1s")    // Intervalo mínimo entre chamadas
	viper.SetDefault("META_MAX_RETRIES", 3)          // Tentativas extras em erros transitórios
	viper.SetDefault("META_RETRY_BASE_DELAY", "2s")  // Base do backoff exponencial
	viper.SetDefault("META_PAGE_SIZE", 25)           // Tamanho da primeira página
	viper.SetDefault("META_MAX_PAGES", 40)           // Limite de páginas por listagem
	viper.SetDefault("META_HTTP_TIMEOUT", "60s")

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("PERFORMANCE_SYNC_CRON", "0 */6 * * *")     // A cada 6 horas
	viper.SetDefault("PERFORMANCE_SYNC_DATE_WINDOW", "last_30d") // Janela usada na classificação
	viper.SetDefault("PERFORMANCE_SYNC_ENRICHMENT_BATCH", 10)    // Anúncios enviados para enriquecimento por ciclo
	viper.SetDefault("PERFORMANCE_SYNC_COMMENT_CONCURRENCY", 3)  // Requisições de comentários simultâneas
	viper.SetDefault("PERFORMANCE_SYNC_ENABLED", false)

	viper.SetDefault("DAILY_INSIGHTS_SYNC_CRON", "0 4 * * *")  // Todos os dias às 4h da manhã
	viper.SetDefault("DAILY_INSIGHTS_SYNC_LOOKBACK_DAYS", 1)   // Apenas ontem
	viper.SetDefault("DAILY_INSIGHTS_SYNC_RETENTION_DAYS", 90) // Histórico diário mantido
	viper.SetDefault("DAILY_INSIGHTS_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile tenta carregar o .env a partir do diretório atual ou dos diretórios acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
