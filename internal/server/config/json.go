package config

import (
	"fmt"
	"os"

	"github.com/dmitrijs2005/fuelcost/internal/flagx"
	"github.com/dmitrijs2005/fuelcost/internal/timex"
	json "github.com/json-iterator/go"
)

// JsonConfig is the on-disk form of Config. Durations accept "5s" as well
// as integer nanoseconds. Absent or zero fields keep their current value.
type JsonConfig struct {
	EndpointAddrGRPC  string         `json:"endpoint_addr_grpc"`
	DatabaseDSN       string         `json:"database_dsn"`
	SecretKey         string         `json:"secret_key"`
	LogLevel          string         `json:"log_level"`
	ShutdownTimeout   timex.Duration `json:"shutdown_timeout"`
	DBConnectAttempts uint           `json:"db_connect_attempts"`
	StatementTimeout  timex.Duration `json:"statement_timeout"`
	DefaultPageSize   int            `json:"default_page_size"`
	MaxPageSize       int            `json:"max_page_size"`
}

// parseJson overlays the file named by -c/-config, if any, onto config.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.LogLevel, c.LogLevel)
	if c.ShutdownTimeout.Duration != 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.DBConnectAttempts != 0 {
		config.DBConnectAttempts = c.DBConnectAttempts
	}
	if c.StatementTimeout.Duration != 0 {
		config.StatementTimeout = c.StatementTimeout.Duration
	}
	if c.DefaultPageSize != 0 {
		config.DefaultPageSize = c.DefaultPageSize
	}
	if c.MaxPageSize != 0 {
		config.MaxPageSize = c.MaxPageSize
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
