package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config keys.
const (
	KeyDataDir     = "data_dir"
	KeyPageSize    = "page_size"
	KeyVerbose     = "verbose"
	KeyLogFile     = "log_file"
	KeyMetricsAddr = "metrics_addr"
)

// Settings is a typed snapshot of the loaded configuration.
type Settings struct {
	DataDir     string
	PageSize    int
	Verbose     bool
	LogFile     string
	MetricsAddr string
}

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault(KeyDataDir, ".")
	viper.SetDefault(KeyPageSize, 5)
	viper.SetDefault(KeyVerbose, false)
	viper.SetDefault(KeyLogFile, "")
	viper.SetDefault(KeyMetricsAddr, "")
}

// Load initializes the configuration from an optional file, a .env file and
// BIKESHARE_* environment variables. Without cfgFile, ./bikeshare.yaml is
// read if it exists. Config files are never written.
func Load(cfgFile string) error {
	// A missing .env is fine.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("bikeshare")
	}

	viper.SetEnvPrefix("BIKESHARE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	return nil
}

// FromViper returns the current configuration values.
func FromViper() Settings {
	return Settings{
		DataDir:     viper.GetString(KeyDataDir),
		PageSize:    viper.GetInt(KeyPageSize),
		Verbose:     viper.GetBool(KeyVerbose),
		LogFile:     viper.GetString(KeyLogFile),
		MetricsAddr: viper.GetString(KeyMetricsAddr),
	}
}
