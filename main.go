package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"school-meal-api/neis"
)

var (
	configPath string
	officeCode string
	schoolCode string
	port       string
	verbose    bool
	menuDate   string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "schoolmeal",
	Short: "School meal menu and nutrition viewer backed by the NEIS open API",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the meal page and JSON API",
	RunE:  runServe,
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Print the meals and nutrition for one date",
	Long: `Fetches the meals for --date (default: today in the configured time zone)
and prints the dishes followed by a nutrient table for each meal.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addConfigFlags(rootCmd)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	menuCmd.Flags().StringVar(&menuDate, "date", "", "date as YYYY-MM-DD")

	rootCmd.AddCommand(serveCmd, menuCmd)

	// Finalizers also run when RunE fails, unlike PersistentPostRun.
	cobra.OnFinalize(syncLogger)
}

func addConfigFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML config file")
	pf.StringVar(&officeCode, "office", "", "NEIS office of education code (ATPT_OFCDC_SC_CODE)")
	pf.StringVar(&schoolCode, "school", "", "NEIS school code (SD_SCHUL_CODE)")
	pf.StringVar(&port, "port", "", "HTTP listen port")
}

func syncLogger() {
	if logger != nil {
		_ = logger.Sync()
	}
}

func resolveConfig(cmd *cobra.Command) (Config, error) {
	flags := cmd.Flags()
	return loadConfig(configPath, func(cfg *Config) {
		if flags.Changed("office") {
			cfg.OfficeCode = officeCode
		}
		if flags.Changed("school") {
			cfg.SchoolCode = schoolCode
		}
		if flags.Changed("port") {
			cfg.Port = port
		}
	})
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	loc, err := cfg.location()
	if err != nil {
		return err
	}

	client := neis.NewClient(cfg.neisConfig(), neis.WithLogger(logger.Named("neis")))
	srv := newServer(client, loc, cfg.Title, logger.Named("http"))

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("port", cfg.Port),
			zap.String("office", cfg.OfficeCode),
			zap.String("school", cfg.SchoolCode))
		errc <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
