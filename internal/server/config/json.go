package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/flagx"
	"github.com/dmitrijs2005/todokeeper/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "168h" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, its fields are copied into the
// runtime Config struct which uses time.Duration.
type JsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	BcryptCost            int            `json:"bcrypt_cost"`
	DBTimeout             timex.Duration `json:"db_timeout"`
	DBMaxOpenConns        int            `json:"db_max_open_conns"`
	DBMaxIdleConns        int            `json:"db_max_idle_conns"`
	DBConnMaxLifetime     timex.Duration `json:"db_conn_max_lifetime"`
	CORSOrigins           string         `json:"cors_origins"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; if neither is set, no JSON file is loaded. Zero-valued JSON fields
// keep the already-applied defaults. If the file cannot be read or contains
// invalid JSON, the function panics.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.DBTimeout.Duration != 0 {
		config.DBTimeout = time.Duration(c.DBTimeout.Duration)
	}
	if c.DBMaxOpenConns != 0 {
		config.DBMaxOpenConns = c.DBMaxOpenConns
	}
	if c.DBMaxIdleConns != 0 {
		config.DBMaxIdleConns = c.DBMaxIdleConns
	}
	if c.DBConnMaxLifetime.Duration != 0 {
		config.DBConnMaxLifetime = time.Duration(c.DBConnMaxLifetime.Duration)
	}
	if c.CORSOrigins != "" {
		config.CORSOrigins = c.CORSOrigins
	}
}
