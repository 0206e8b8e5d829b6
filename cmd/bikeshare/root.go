package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"bikeshare/internal/config"
	"bikeshare/internal/telemetry"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exit = os.Exit
var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bikeshare",
	Short: "Explore US bikeshare trip data",
	Long: `bikeshare loads the trip logs of Chicago, New York City or Washington,
optionally filtered by month and day of week, and prints statistics on
popular travel times, stations, trip durations and riders. Afterwards you
can page through the raw trip records.

Run without a subcommand for the interactive explorer.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runExplore,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "bikeshare crashed: %v\n\n%s\n", r, debug.Stack())
			exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./bikeshare.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("data-dir", ".", "Directory holding the city datasets")
	rootCmd.PersistentFlags().Int("page-size", 5, "Rows shown per page when browsing trip data")
}

// bindFlags connects persistent flags to their config keys. It runs on every
// initialization so a reset viper instance picks the flags up again.
func bindFlags() {
	viper.BindPFlag(config.KeyVerbose, rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag(config.KeyDataDir, rootCmd.PersistentFlags().Lookup("data-dir"))
	viper.BindPFlag(config.KeyPageSize, rootCmd.PersistentFlags().Lookup("page-size"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	bindFlags()

	if err := config.Load(cfgFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
		return
	}

	// Validate configuration values
	if err := config.ValidateConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
		return
	}

	settings := config.FromViper()
	telemetry.InitLogger(settings.Verbose, settings.LogFile)

	if settings.MetricsAddr != "" {
		go func() {
			if err := telemetry.StartMetricsServer(settings.MetricsAddr); err != nil {
				telemetry.LogError("Metrics server stopped", err, "addr", settings.MetricsAddr)
			}
		}()
	}
}
