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
	"golang.org/x/crypto/bcrypt"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	PeriodRollover PeriodRollover `mapstructure:",squash"`
	Metrics        Metrics        `mapstructure:",squash"`
	Cors           Cors           `mapstructure:",squash"`
	SecretKey      string         `mapstructure:"secret_key"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	SQLitePath   string `mapstructure:"database_sqlite_path"`
	AutoMigrate  bool   `mapstructure:"database_auto_migrate"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
}

type Auth struct {
	TokenTTL      time.Duration `mapstructure:"auth_token_ttl"`
	AdminUsername string        `mapstructure:"auth_admin_username"`
	AdminPassword string        `mapstructure:"auth_admin_password"`
	BcryptCost    int           `mapstructure:"auth_bcrypt_cost"`
}

type PeriodRollover struct {
	CronSchedule string `mapstructure:"period_rollover_cron"`
	Enabled      bool   `mapstructure:"period_rollover_enabled"`
}

type Metrics struct {
	Enabled bool `mapstructure:"metrics_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", DriverPostgres)
	viper.SetDefault("DATABASE_URL", "localhost:5432/performance_hub?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SQLITE_PATH", "performance_hub.db")
	viper.SetDefault("DATABASE_AUTO_MIGRATE", true)
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)

	viper.SetDefault("SECRET_KEY", "change_me")

	viper.SetDefault("AUTH_TOKEN_TTL", "24h")
	viper.SetDefault("AUTH_ADMIN_USERNAME", "admin")
	viper.SetDefault("AUTH_ADMIN_PASSWORD", "")
	viper.SetDefault("AUTH_BCRYPT_COST", bcrypt.DefaultCost)

	viper.SetDefault("PERIOD_ROLLOVER_CRON", "0 1 1 * *") // Primeiro dia de cada mês à 1h
	viper.SetDefault("PERIOD_ROLLOVER_ENABLED", false)

	viper.SetDefault("METRICS_ENABLED", true)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
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

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize completa os campos derivados e valida combinações inválidas
func (c *Config) normalize() error {
	switch c.Database.Driver {
	case DriverPostgres:
		c.Database.DSN = fmt.Sprintf(
			"%s://%s:%s@%s",
			c.Database.Driver,
			c.Database.User,
			c.Database.Password,
			c.Database.URL,
		)
	case DriverSQLite:
		c.Database.DSN = c.Database.SQLitePath
	default:
		return fmt.Errorf("config: driver de banco de dados não suportado: %q", c.Database.Driver)
	}

	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		c.Auth.BcryptCost = bcrypt.DefaultCost
	}

	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = 24 * time.Hour
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
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
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado; usando apenas variáveis de ambiente")
}
