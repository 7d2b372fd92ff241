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
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Meta        Meta        `mapstructure:",squash"`
	GA          GA          `mapstructure:",squash"`
	Decision    Decision    `mapstructure:",squash"`
	FullSync    FullSync    `mapstructure:",squash"`
	AlertSync   AlertSync   `mapstructure:",squash"`
	GASync      GASync      `mapstructure:",squash"`
	SecretKey   string      `mapstructure:"secret_key"`
	CryptoKey   string      `mapstructure:"crypto_secret_key"`
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
	BaseURL   string `mapstructure:"meta_base_url"`
	URL       string `mapstructure:"-"`
	Version   string `mapstructure:"meta_version"`
	AppID     string `mapstructure:"meta_app_id"`
	AppSecret string `mapstructure:"meta_app_secret"`

	// Janela antes da expiração em que o token é renovado proativamente
	TokenRefreshWindowDays int `mapstructure:"meta_token_refresh_window_days"`

	// Tamanho de página da paginação por cursor
	PageSize int `mapstructure:"meta_page_size"`

	// Teto de tentativas para erros de rate limit
	MaxRetries int `mapstructure:"meta_max_retries"`
}

type GA struct {
	BaseURL    string `mapstructure:"ga_base_url"`
	PropertyID string `mapstructure:"ga_property_id"`
	APISecret  string `mapstructure:"ga_api_secret"`
}

// Decision carrega os limiares do motor de decisão
type Decision struct {
	TargetCPA           float64 `mapstructure:"decision_target_cpa"`
	TargetCPL           float64 `mapstructure:"decision_target_cpl"`
	CTRBenchmarkSeed    float64 `mapstructure:"decision_ctr_benchmark_seed"`
	MinSpendForDecision float64 `mapstructure:"decision_min_spend"`
	FrequencyWarn       float64 `mapstructure:"decision_frequency_warn"`
	FrequencyKill       float64 `mapstructure:"decision_frequency_kill"`
	CostKillMultiplier  float64 `mapstructure:"decision_cost_kill_multiplier"`
}

type FullSync struct {
	CronSchedule        string `mapstructure:"full_sync_cron"`
	LookbackDays        int    `mapstructure:"full_sync_lookback_days"`
	ChunkDays           int    `mapstructure:"full_sync_chunk_days"`
	RequestDelaySeconds int    `mapstructure:"full_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"full_sync_max_concurrent_jobs"`
	UpsertBatchSize     int    `mapstructure:"full_sync_upsert_batch_size"`
	Enabled             bool   `mapstructure:"full_sync_enabled"`
}

// AlertSync carrega o agendamento e os limiares da detecção de alertas
type AlertSync struct {
	CronSchedule    string  `mapstructure:"alert_sync_cron"`
	SpendThreshold  float64 `mapstructure:"alert_spend_threshold"`
	MinImpressions  int     `mapstructure:"alert_min_impressions"`
	CTRDropWarn     float64 `mapstructure:"alert_ctr_drop_warn"`
	CTRDropCritical float64 `mapstructure:"alert_ctr_drop_critical"`
	Enabled         bool    `mapstructure:"alert_sync_enabled"`
}

type GASync struct {
	CronSchedule string `mapstructure:"ga_sync_cron"`
	LookbackDays int    `mapstructure:"ga_sync_lookback_days"`
	Enabled      bool   `mapstructure:"ga_sync_enabled"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/creative")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")
	viper.SetDefault("META_TOKEN_REFRESH_WINDOW_DAYS", 7)
	viper.SetDefault("META_PAGE_SIZE", 100)
	viper.SetDefault("META_MAX_RETRIES", 5)

	viper.SetDefault("GA_BASE_URL", "https://analyticsdata.googleapis.com/v1beta")
	viper.SetDefault("GA_PROPERTY_ID", "")
	viper.SetDefault("GA_API_SECRET", "")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("CRYPTO_SECRET_KEY", "") // 32 bytes, obrigatório em produção

	// Limiares padrão do motor de decisão
	viper.SetDefault("DECISION_TARGET_CPA", 50.0)
	viper.SetDefault("DECISION_TARGET_CPL", 15.0)
	viper.SetDefault("DECISION_CTR_BENCHMARK_SEED", 1.0)
	viper.SetDefault("DECISION_MIN_SPEND", 20.0)
	viper.SetDefault("DECISION_FREQUENCY_WARN", 2.2)
	viper.SetDefault("DECISION_FREQUENCY_KILL", 2.8)
	viper.SetDefault("DECISION_COST_KILL_MULTIPLIER", 1.3)

	// Defaults da sincronização completa
	viper.SetDefault("FULL_SYNC_CRON", "0 3 * * *")        // Todos os dias às 3h da manhã
	viper.SetDefault("FULL_SYNC_LOOKBACK_DAYS", 7)         // 7 dias para buscar dados
	viper.SetDefault("FULL_SYNC_CHUNK_DAYS", 30)           // Tamanho grosso do chunk de datas
	viper.SetDefault("FULL_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições
	viper.SetDefault("FULL_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 contas em paralelo
	viper.SetDefault("FULL_SYNC_UPSERT_BATCH_SIZE", 500)   // Limite de linhas por escrita
	viper.SetDefault("FULL_SYNC_ENABLED", false)

	// Defaults da detecção de alertas
	viper.SetDefault("ALERT_SYNC_CRON", "30 6 * * *") // Após a sincronização completa
	viper.SetDefault("ALERT_SPEND_THRESHOLD", 30.0)   // Gasto diário sem conversão que gera alerta
	viper.SetDefault("ALERT_MIN_IMPRESSIONS", 1000)   // Volume mínimo para avaliar fadiga de CTR
	viper.SetDefault("ALERT_CTR_DROP_WARN", 0.30)     // Queda relativa de CTR que gera WARNING
	viper.SetDefault("ALERT_CTR_DROP_CRITICAL", 0.50) // Queda relativa de CTR que gera CRITICAL
	viper.SetDefault("ALERT_SYNC_ENABLED", false)

	// Defaults da sincronização do Google Analytics
	viper.SetDefault("GA_SYNC_CRON", "0 5 * * *")
	viper.SetDefault("GA_SYNC_LOOKBACK_DAYS", 7)
	viper.SetDefault("GA_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

// loadEnvFile carrega o arquivo .env procurando em localizações conhecidas
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
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
