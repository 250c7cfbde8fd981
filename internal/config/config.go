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

	"github.com/280205/Mgnrega-Website/pkg/utils"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Redis          Redis          `mapstructure:",squash"`
	DataGov        DataGov        `mapstructure:",squash"`
	EmploymentSync EmploymentSync `mapstructure:",squash"`
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

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

type DataGov struct {
	BaseURL    string `mapstructure:"data_gov_base_url"`
	ResourceID string `mapstructure:"data_gov_resource_id"`
	APIKey     string `mapstructure:"data_gov_api_key"`
}

type EmploymentSync struct {
	CronSchedule  string `mapstructure:"employment_sync_cron"`
	Enabled       bool   `mapstructure:"employment_sync_enabled"`
	StateName     string `mapstructure:"employment_sync_state_name"`
	FinancialYear string `mapstructure:"employment_sync_financial_year"`
	RecordLimit   int    `mapstructure:"employment_sync_record_limit"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 5000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/mgnrega?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("DATA_GOV_BASE_URL", "https://api.data.gov.in/resource")
	viper.SetDefault("DATA_GOV_RESOURCE_ID", "ee03643a-ee4c-48c2-ac30-9f2ff26ab722")
	viper.SetDefault("DATA_GOV_API_KEY", "")

	viper.SetDefault("EMPLOYMENT_SYNC_CRON", "0 */6 * * *") // Every 6 hours
	viper.SetDefault("EMPLOYMENT_SYNC_ENABLED", true)
	viper.SetDefault("EMPLOYMENT_SYNC_STATE_NAME", "UTTAR PRADESH")
	viper.SetDefault("EMPLOYMENT_SYNC_FINANCIAL_YEAR", "")
	viper.SetDefault("EMPLOYMENT_SYNC_RECORD_LIMIT", 1000)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using environment variables loaded by godotenv (viper could not read .env): ", err)
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

	// The data.gov.in filter needs a financial year; derive the current
	// one (April to March) when none is configured.
	if config.EmploymentSync.FinancialYear == "" {
		config.EmploymentSync.FinancialYear = utils.CurrentFinancialYear(time.Now())
	}

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine working directory: ", err)
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
			logrus.Info("loaded .env from: ", location)
			return
		}
	}

	logrus.Warn("no .env file found, relying on process environment")
}
