package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Meta            Meta            `mapstructure:",squash"`
	Kommo           Kommo           `mapstructure:",squash"`
	Gemini          Gemini          `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Evolution       Evolution       `mapstructure:",squash"`
	MetaInsightSync MetaInsightSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL string `mapstructure:"meta_base_url"`
	Version string `mapstructure:"meta_version"`
	URL     string `mapstructure:"-"`
}

type Kommo struct {
	BaseURL        string `mapstructure:"kommo_base_url"`
	TimeoutSeconds int    `mapstructure:"kommo_timeout_seconds"`
}

type Gemini struct {
	APIKey  string `mapstructure:"gemini_api_key"`
	BaseURL string `mapstructure:"gemini_base_url"`
	Model   string `mapstructure:"gemini_model"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Evolution struct {
	DefaultDays         int `mapstructure:"evolution_default_days"`
	KommoFetchBatchSize int `mapstructure:"kommo_fetch_batch_size"`
}

type MetaInsightSync struct {
	CronSchedule        string `mapstructure:"meta_insight_sync_cron"`
	LookbackDays        int    `mapstructure:"meta_insight_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"meta_insight_sync_request_delay_seconds"`
	RetentionDays       int    `mapstructure:"meta_insight_sync_retention_days"`
	Enabled             bool   `mapstructure:"meta_insight_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v19.0")

	viper.SetDefault("KOMMO_BASE_URL", "https://aiatende.dev.br/kommo/api")
	viper.SetDefault("KOMMO_TIMEOUT_SECONDS", 30)

	viper.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("GEMINI_API_KEY", "")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Janela padrão do dashboard e tamanho do lote de chamadas ao Kommo.
	// O lote limita as requisições simultâneas para respeitar o rate limit.
	viper.SetDefault("EVOLUTION_DEFAULT_DAYS", 7)
	viper.SetDefault("KOMMO_FETCH_BATCH_SIZE", 5)

	viper.SetDefault("META_INSIGHT_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("META_INSIGHT_SYNC_LOOKBACK_DAYS", 7)
	viper.SetDefault("META_INSIGHT_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("META_INSIGHT_SYNC_RETENTION_DAYS", 395)
	viper.SetDefault("META_INSIGHT_SYNC_ENABLED", false)

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
		logrus.Info("Usando variáveis de ambiente (viper não conseguiu ler .env):", err)
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

// loadEnvFile tenta carregar o arquivo .env de localizações conhecidas
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
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
