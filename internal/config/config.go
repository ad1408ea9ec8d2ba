package config

import (
	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Database *dbConfig
	Service  *svcConfig
}

type dbConfig struct {
	Type     string `envconfig:"DB_TYPE" default:"pgsql"`
	Hostname string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"statusboard"`
	User     string `envconfig:"DB_USER" default:"admin"`
	Password string `envconfig:"DB_PASS" default:"adminpass"`
}

type svcConfig struct {
	Address        string `envconfig:"STATUS_BOARD_ADDRESS" default:":3443"`
	MetricsAddress string `envconfig:"STATUS_BOARD_METRICS_ADDRESS" default:":8080"`
	BaseUrl        string `envconfig:"STATUS_BOARD_BASE_URL" default:"https://localhost:3443"`
	LogLevel       string `envconfig:"STATUS_BOARD_LOG_LEVEL" default:"info"`
	Tokens         tokenConfig
}

// tokenConfig names the display tokens the board hands to its renderer.
// The aggregation layer only selects among these, it never invents one.
type tokenConfig struct {
	FailureSystem    string `envconfig:"STATUS_BOARD_TOKEN_FAILURE_SYSTEM" default:"failure_system"`
	FailureData      string `envconfig:"STATUS_BOARD_TOKEN_FAILURE_DATA" default:"failure_data"`
	FailureAlgorithm string `envconfig:"STATUS_BOARD_TOKEN_FAILURE_ALGORITHM" default:"failure_algorithm"`
	Inactive         string `envconfig:"STATUS_BOARD_TOKEN_INACTIVE" default:"inactive"`
	Healthy          string `envconfig:"STATUS_BOARD_TOKEN_HEALTHY" default:"healthy"`
}

func New() (*Config, error) {
	if singleConfig == nil {
		singleConfig = new(Config)
		if err := envconfig.Process("", singleConfig); err != nil {
			return nil, err
		}
	}
	return singleConfig, nil
}

// NewDefault returns a config suitable for tests: an in-memory sqlite
// database and the default token names.
func NewDefault() *Config {
	return &Config{
		// file::memory: with a shared cache keeps every pooled
		// connection on the same in-memory database.
		Database: &dbConfig{
			Type: "sqlite",
			Name: "file::memory:?cache=shared",
		},
		Service: &svcConfig{
			Address:        ":3443",
			MetricsAddress: ":8080",
			LogLevel:       "info",
			Tokens: tokenConfig{
				FailureSystem:    "failure_system",
				FailureData:      "failure_data",
				FailureAlgorithm: "failure_algorithm",
				Inactive:         "inactive",
				Healthy:          "healthy",
			},
		},
	}
}
