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
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Classifier    Classifier    `mapstructure:",squash"`
	SentimentSync SentimentSync `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	Dataset       Dataset       `mapstructure:",squash"`
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

type Classifier struct {
	// Mode selects the classification capability: "remote" calls the
	// inference endpoint, "lexicon" uses the in-process model.
	Mode           string `mapstructure:"classifier_mode"`
	URL            string `mapstructure:"classifier_url"`
	APIKey         string `mapstructure:"classifier_api_key"`
	ModelVersion   string `mapstructure:"classifier_model_version"`
	TimeoutSeconds int    `mapstructure:"classifier_timeout_seconds"`
	MaxConcurrency int    `mapstructure:"classifier_max_concurrency"`
}

type SentimentSync struct {
	CronSchedule string `mapstructure:"sentiment_sync_cron"`
	Enabled      bool   `mapstructure:"sentiment_sync_enabled"`
}

type Auth struct {
	Secret           string `mapstructure:"auth_secret"`
	OperatorUsername string `mapstructure:"auth_operator_username"`
	// Bcrypt hash of the single operator's password.
	OperatorPasswordHash string `mapstructure:"auth_operator_password_hash"`
	TokenTTLMinutes      int    `mapstructure:"auth_token_ttl_minutes"`
}

type Dataset struct {
	// Optional CSV loaded at startup when the sales table is empty.
	SeedPath string `mapstructure:"dataset_seed_path"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales_insights")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("CLASSIFIER_MODE", "lexicon")
	viper.SetDefault("CLASSIFIER_URL", "http://localhost:8501/v1/sentiment")
	viper.SetDefault("CLASSIFIER_API_KEY", "")
	viper.SetDefault("CLASSIFIER_MODEL_VERSION", "distil-sentiment-v2")
	viper.SetDefault("CLASSIFIER_TIMEOUT_SECONDS", 10)
	viper.SetDefault("CLASSIFIER_MAX_CONCURRENCY", 4)

	viper.SetDefault("SENTIMENT_SYNC_CRON", "0 5 * * *") // every day at 5am
	viper.SetDefault("SENTIMENT_SYNC_ENABLED", false)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("AUTH_OPERATOR_USERNAME", "operator")
	viper.SetDefault("AUTH_OPERATOR_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL_MINUTES", 480)

	viper.SetDefault("DATASET_SEED_PATH", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env):", err)
	} else {
		logrus.Info(".env file read by viper")
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile loads the .env file via godotenv, trying a few locations
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not resolve current directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info(".env file loaded from:", location)
			return
		}
	}

	logrus.Warn("no .env file found in any known location")
}
