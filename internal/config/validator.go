package config

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/spf13/viper"
)

// ValidateConfig validates configuration values and returns an error listing
// every problem found. Call it after Load.
func ValidateConfig() error {
	var errors []string

	if viper.IsSet(KeyPageSize) {
		if size := viper.GetInt(KeyPageSize); size <= 0 {
			errors = append(errors, fmt.Sprintf("%s must be positive, got: %d", KeyPageSize, size))
		}
	}

	// The default "." always exists; only check directories the user chose.
	if dir := viper.GetString(KeyDataDir); dir != "" && dir != "." {
		info, err := os.Stat(dir)
		switch {
		case err != nil:
			errors = append(errors, fmt.Sprintf("%s %q is not accessible: %v", KeyDataDir, dir, err))
		case !info.IsDir():
			errors = append(errors, fmt.Sprintf("%s %q is not a directory", KeyDataDir, dir))
		}
	}

	if addr := viper.GetString(KeyMetricsAddr); addr != "" {
		_, port, err := net.SplitHostPort(addr)
		if err != nil {
			errors = append(errors, fmt.Sprintf("%s must be host:port, got: %q", KeyMetricsAddr, addr))
		} else if p, err := strconv.Atoi(port); err != nil || p < 1 || p > 65535 {
			errors = append(errors, fmt.Sprintf("%s port must be between 1 and 65535, got: %q", KeyMetricsAddr, port))
		}
	}

	if len(errors) > 0 {
		errorMsg := errors[0]
		for i := 1; i < len(errors); i++ {
			errorMsg += "\n  " + errors[i]
		}
		return fmt.Errorf("configuration validation failed:\n  %s", errorMsg)
	}

	return nil
}
