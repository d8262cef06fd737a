package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/rightnow/config"
	"github.com/s0up4200/rightnow/filter"
	"github.com/s0up4200/rightnow/internal/telemetry"
	"github.com/s0up4200/rightnow/rightnow"
)

const skipInitAnnotation = "skip-init"

var (
	cfgFile   string
	asUser    string
	debugMode bool
	traceMode bool

	cfg     *config.Config
	logger  = zerolog.Nop()
	client  rightnow.API
	filters *filter.Manager

	shutdownTracer func(context.Context) error

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "rightnow",
	Short: "Command line client for the RightNow Community API",
	Long: `rightnow talks to a RightNow Community (HiveLive) site through its signed
REST endpoint. It searches posts, fetches posts and users, manages comments
and can send any raw API action. Results are printed as JSON.`,
	SilenceUsage:       true,
	PersistentPreRunE:  initializeApp,
	PersistentPostRunE: finalizeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion records build information reported by the version and update commands.
func SetVersion(v, built string) {
	version = v
	buildTime = built
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&asUser, "as", "", "act as this user instead of the configured one")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "log raw API responses")
	rootCmd.PersistentFlags().BoolVar(&traceMode, "trace", false, "print OpenTelemetry spans for API calls to stderr")
}

// initializeApp loads configuration and builds the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	if cmd.Annotations[skipInitAnnotation] == "true" {
		return nil
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if debugMode {
		cfg.RightNow.Debug = true
		cfg.Logging.Level = "debug"
	}
	if traceMode {
		cfg.Telemetry.Enabled = true
	}

	logger = setupLogger(cfg.Logging)

	httpClient := &http.Client{Timeout: cfg.RightNow.Timeout}
	if cfg.Telemetry.Enabled {
		shutdownTracer, err = telemetry.InitTracer("rightnow", version, os.Stderr, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize tracing: %w", err)
		}
		httpClient.Transport = telemetry.Transport(nil)
	}

	client, err = rightnow.NewClient(cfg.RightNow.Host,
		rightnow.WithCredentials(cfg.RightNow.APIKey, cfg.RightNow.SecretKey),
		rightnow.WithUser(cfg.RightNow.User),
		rightnow.WithVersion(cfg.RightNow.Version),
		rightnow.WithHTTPClient(httpClient),
		rightnow.WithLogger(logger.With().Str("component", "rightnow").Logger()),
		rightnow.WithDebug(cfg.RightNow.Debug),
	)
	if err != nil {
		return fmt.Errorf("failed to create RightNow client: %w", err)
	}

	filters = filter.NewManager()
	if err := filters.RegisterFilters(cfg.Filter.Presets); err != nil {
		return fmt.Errorf("invalid filter preset: %w", err)
	}

	logger.Debug().
		Str("host", cfg.RightNow.Host).
		Str("user", cfg.RightNow.User).
		Msg("RightNow client ready")

	return nil
}

// finalizeApp flushes pending spans
func finalizeApp(cmd *cobra.Command, args []string) error {
	if shutdownTracer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return shutdownTracer(ctx)
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// callOptions returns the per-call options derived from global flags
func callOptions() []rightnow.CallOption {
	if asUser == "" {
		return nil
	}
	return []rightnow.CallOption{rightnow.As(asUser)}
}
