package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"notegrid/database"
)

// AppConfig holds the complete configuration for the application
type AppConfig struct {
	Environment string          `mapstructure:"environment"`
	ServiceName string          `mapstructure:"service_name"`
	Log         LogConfig       `mapstructure:"log"`
	Database    database.Config `mapstructure:"database"`
	UI          UIConfig        `mapstructure:"ui"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type UIConfig struct {
	Theme     string `mapstructure:"theme"`
	Ascii     bool   `mapstructure:"ascii"`
	ExportDir string `mapstructure:"export_dir"`
}

// Load reads configuration from defaults, an optional config file and the
// environment (NOTEGRID_ prefix, also fed from a .env file). Environment
// values win over the file, the file wins over defaults.
func Load(path, envFile string) (*AppConfig, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, err
		}
	} else {
		_ = godotenv.Load() // a missing .env is fine
	}

	v := viper.New()

	d := database.DefaultConfig()
	v.SetDefault("environment", "development")
	v.SetDefault("service_name", "notegrid")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "notegrid.log")
	v.SetDefault("database.driver", d.Driver)
	v.SetDefault("database.host", d.Host)
	v.SetDefault("database.port", 0)
	v.SetDefault("database.name", d.Name)
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.table", d.Table)
	v.SetDefault("database.id_column", d.IDColumn)
	v.SetDefault("database.name_column", d.NameColumn)
	v.SetDefault("database.note_column", d.NoteColumn)
	v.SetDefault("database.match_by", d.MatchBy)
	v.SetDefault("database.connect_timeout", d.ConnectTimeout)
	v.SetDefault("ui.theme", "default")
	v.SetDefault("ui.ascii", false)
	v.SetDefault("ui.export_dir", ".")

	v.SetEnvPrefix("notegrid")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var config AppConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *AppConfig) Validate() error {
	if c.ServiceName == "" {
		return errors.New("service_name is required")
	}
	return c.Database.Validate()
}
