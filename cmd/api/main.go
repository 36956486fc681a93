package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"genotrack/internal/adapters/auth/remote"
	"genotrack/internal/adapters/auth/static"
	mem "genotrack/internal/adapters/storage/memory"
	pg "genotrack/internal/adapters/storage/postgres"
	"genotrack/internal/adapters/storage/sqlite"
	"genotrack/internal/config"
	"genotrack/internal/domain/vocabulary"
	"genotrack/internal/platform/logger"
	"genotrack/internal/ports/auth"
	"genotrack/internal/router"

	"github.com/spf13/cobra"
)

// @title GenoTrack API
// @version 1.0
// @description Registro clínico de pacientes, variantes genómicas y fenotipos HPO.
// @BasePath /
func main() {
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "genotrack",
		Short:         "GenoTrack clinical registry API",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Sin subcomando arranca el servidor.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), configFile)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, json, toml or .env)")

	rootCmd.AddCommand(serveCmd(&configFile))
	rootCmd.AddCommand(migrateCmd(&configFile))
	rootCmd.AddCommand(vocabularyCmd(&configFile))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func serveCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configFile)
		},
	}
}

func migrateCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply (up) or roll back one (down) Postgres migration",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(pg.Up), string(pg.Down)},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := pg.ParseDirection(args[0])
			if err != nil {
				return err
			}

			cfg, err := config.Load(*configFile)
			if err != nil {
				return err
			}
			if cfg.StorageDriver != config.StoragePostgres {
				return fmt.Errorf("migrate requires STORAGE_DRIVER=postgres (got %q)", cfg.StorageDriver)
			}
			log := newLogger(cfg)

			db, err := pg.Open(cmd.Context(), cfg.DBDSN)
			if err != nil {
				return err
			}
			defer db.Close()

			return pg.Migrate(db, dir, log)
		},
	}
}

func vocabularyCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "vocabulary",
		Short: "Validate and print the reference tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configFile)
			if err != nil {
				return err
			}
			vocab, err := loadVocabulary(cfg)
			if err != nil {
				return err
			}
			return printVocabulary(cmd.OutOrStdout(), vocab)
		},
	}
}

func runServer(ctx context.Context, configFile string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	vocab, err := loadVocabulary(cfg)
	if err != nil {
		return err
	}

	verifier, err := newVerifier(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	opts := router.Options{
		AuthVerifier:   verifier,
		Logger:         log,
		Vocabulary:     vocab,
		Storage:        store,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":    srv.Addr,
			"storage": cfg.StorageDriver,
			"auth":    verifier != nil,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info("server stopped", nil)
	return nil
}

func newLogger(cfg *config.Config) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
}

// newVerifier devuelve nil (modo dev, X-Debug-User-ID) si no hay auth configurada.
func newVerifier(cfg *config.Config) (auth.AuthVerifier, error) {
	if cfg.AuthVerifyURL != "" {
		v, err := remote.NewVerifier(remote.Config{
			BaseURL: cfg.AuthVerifyURL,
			APIKey:  cfg.AuthAPIKey,
			Timeout: cfg.AuthTimeout,
		})
		if err != nil {
			return nil, err
		}
		return v, nil
	}
	v, err := static.Parse(cfg.AuthTokens)
	if err != nil || v == nil {
		return nil, err
	}
	return v, nil
}

func loadVocabulary(cfg *config.Config) (*vocabulary.Vocabulary, error) {
	if cfg.VocabularyFile != "" {
		return vocabulary.LoadFile(cfg.VocabularyFile)
	}
	return vocabulary.Default()
}

// openStorage elige el backend según STORAGE_DRIVER. En Postgres aplica las
// migraciones pendientes antes de servir.
func openStorage(ctx context.Context, cfg *config.Config, log logger.Logger) (router.Storage, func(), error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := pg.Open(ctx, cfg.DBDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := pg.Migrate(db, pg.Up, log); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return pg.NewStore(db), closer(db, log), nil

	case config.StorageSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewStore(db), closer(db, log), nil

	default:
		return mem.NewStore(), func() {}, nil
	}
}

func closer(db *sql.DB, log logger.Logger) func() {
	return func() {
		if err := db.Close(); err != nil {
			log.Warn("close database", map[string]any{"err": err.Error()})
		}
	}
}

func printVocabulary(w io.Writer, vocab *vocabulary.Vocabulary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "GENE\tCHROMOSOME\n")
	chromosomes := make(map[string]string)
	for _, gc := range vocab.GeneChromosomes() {
		chromosomes[gc.Gene] = gc.Chromosome
	}
	for _, g := range vocab.Genes() {
		chr := chromosomes[g]
		if chr == "" {
			chr = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\n", g, chr)
	}

	fmt.Fprintf(tw, "\nHPO CODE\tTERM\n")
	for _, t := range vocab.Terms() {
		fmt.Fprintf(tw, "%s\t%s\n", t.Code, t.Name)
	}
	return tw.Flush()
}
