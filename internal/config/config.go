package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ConfigFileName = "battleship.cfg.json"
	EnvPrefix      = "BATTLESHIP"
)

const (
	StorageTypeMemory   = "memory"
	StorageTypeSqlite   = "sqlite"
	StorageTypePostgres = "postgres"
)

type SqliteConfig struct {
	Path string `json:"path" mapstructure:"path"`
}

type PostgresConfig struct {
	URL          string `json:"url" mapstructure:"url"`
	MigrationDir string `json:"migrationDir" mapstructure:"migrationDir"`
}

type StorageConfig struct {
	Type     string         `json:"type" mapstructure:"type"`
	Sqlite   SqliteConfig   `json:"sqlite" mapstructure:"sqlite"`
	Postgres PostgresConfig `json:"postgres" mapstructure:"postgres"`
}

type AIConfig struct {
	Policy         string `json:"policy" mapstructure:"policy"`
	OpponentPolicy string `json:"opponentPolicy" mapstructure:"opponentPolicy"`
	Seed           int64  `json:"seed" mapstructure:"seed"`
	// Probes overrides the probe budget of gated policies when positive.
	Probes int `json:"probes" mapstructure:"probes"`
}

// LoadEnv reads a .env file into the process environment. A missing file
// is not an error; production deployments set the variables directly.
func LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading env file: %v", err)
	}
	return nil
}

// Load sets defaults, reads the optional config file from configDir and
// binds BATTLESHIP_* environment variables (storage.type -> BATTLESHIP_STORAGE_TYPE).
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logFile", "")
	viper.SetDefault("boardSize", 10)

	viper.SetDefault("storage.type", StorageTypeMemory)
	viper.SetDefault("storage.sqlite.path", "./battleship.db")
	viper.SetDefault("storage.postgres.url", "")
	viper.SetDefault("storage.postgres.migrationDir", "file://db/migration")

	viper.SetDefault("ai.policy", "largest")
	viper.SetDefault("ai.opponentPolicy", "smallest")
	viper.SetDefault("ai.seed", 0)
	viper.SetDefault("ai.probes", 0)

	viper.SetDefault("bench.games", 100)

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Older deployments export the postgres url as PSQL_URL.
	if url := os.Getenv("PSQL_URL"); url != "" {
		viper.SetDefault("storage.postgres.url", url)
	}

	viper.SetConfigName(ConfigFileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %v", err)
	}

	return nil
}

func GetString(key string) string {
	return viper.GetString(key)
}

func GetInt(key string) int {
	return viper.GetInt(key)
}

func GetBool(key string) bool {
	return viper.GetBool(key)
}

func GetStorageConfig() StorageConfig {
	return StorageConfig{
		Type: strings.ToLower(viper.GetString("storage.type")),
		Sqlite: SqliteConfig{
			Path: viper.GetString("storage.sqlite.path"),
		},
		Postgres: PostgresConfig{
			URL:          viper.GetString("storage.postgres.url"),
			MigrationDir: viper.GetString("storage.postgres.migrationDir"),
		},
	}
}

func GetAIConfig() AIConfig {
	return AIConfig{
		Policy:         viper.GetString("ai.policy"),
		OpponentPolicy: viper.GetString("ai.opponentPolicy"),
		Seed:           viper.GetInt64("ai.seed"),
		Probes:         viper.GetInt("ai.probes"),
	}
}
