package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/harunmuya/gs-app/internal/config"
	"github.com/harunmuya/gs-app/internal/geo"
	"github.com/harunmuya/gs-app/internal/infrastructure/logger"
	"github.com/harunmuya/gs-app/internal/infrastructure/wordpress"
)

var version = "dev"

var (
	flagWPURL   string
	flagTimeout time.Duration
	flagLat     float64
	flagLng     float64
	flagJSON    bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "gsctl",
	Short: "Inspect profiles straight from the content source",
	Long:  "gsctl fetches posts from the WordPress API, runs them through the profile extractor and ranks them with the match scorer.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "warn"
		if flagVerbose {
			level = "debug"
		}
		logger.Setup(level, true)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagWPURL, "wp-url", "", "WordPress REST base URL (defaults to WP_API_URL)")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "request timeout (defaults to WP_TIMEOUT)")
	rootCmd.PersistentFlags().Float64Var(&flagLat, "lat", 0, "viewer latitude")
	rootCmd.PersistentFlags().Float64Var(&flagLng, "lng", 0, "viewer longitude")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "print JSON instead of a table")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(parseCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "gsctl %s\n", version)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newClient() (*wordpress.Client, error) {
	cfg := config.LoadEnv()
	url := cfg.WordPress.APIURL
	if flagWPURL != "" {
		url = flagWPURL
	}
	if url == "" {
		return nil, errors.New("no WordPress URL: set WP_API_URL or --wp-url")
	}
	timeout := cfg.WordPress.Timeout
	if flagTimeout > 0 {
		timeout = flagTimeout
	}
	logrus.WithField("url", url).Debug("Using content source")
	return wordpress.NewClient(url, timeout), nil
}

// viewerFromFlags returns nil unless both --lat and --lng were given.
func viewerFromFlags(cmd *cobra.Command) (*geo.Point, error) {
	flags := cmd.Flags()
	if !flags.Changed("lat") && !flags.Changed("lng") {
		return nil, nil
	}
	if !flags.Changed("lat") || !flags.Changed("lng") {
		return nil, errors.New("--lat and --lng must be given together")
	}
	if flagLat < -90 || flagLat > 90 || flagLng < -180 || flagLng > 180 {
		return nil, errors.New("coordinates out of range")
	}
	return &geo.Point{Lat: flagLat, Lng: flagLng}, nil
}
