package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iho/payengine/internal/adapter/csvio"
	"github.com/iho/payengine/internal/adapter/repository/memory"
	"github.com/iho/payengine/internal/infrastructure/config"
	"github.com/iho/payengine/internal/infrastructure/logger"
	"github.com/iho/payengine/internal/infrastructure/metrics"
	"github.com/iho/payengine/internal/usecase"
)

const transactionsFileExt = ".csv"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payengine <transactions.csv>",
		Short: "Replays a transaction log and prints final account balances",
		Long: `payengine reads a CSV file of deposits, withdrawals, disputes, resolves
and chargebacks, replays them in order against an in-memory ledger and
writes the resulting account snapshot to stdout as CSV.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return run(args[0], cmd.OutOrStdout())
	}

	return cmd
}

func validateExt(path string) error {
	if ext := filepath.Ext(path); ext != transactionsFileExt {
		return fmt.Errorf("unsupported file extension %q: expected %q", ext, transactionsFileExt)
	}
	return nil
}

func run(path string, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	log := logger.New(os.Stderr, logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log = log.With().Str("run_id", ulid.Make().String()).Logger()

	if err := validateExt(path); err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open transactions file: %w", err)
	}
	defer file.Close()

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr, registry, log)
	}

	engine := usecase.NewEngine(
		usecase.NewProcessor(memory.NewTransactionStore()),
		memory.NewAccountStore(),
		m,
		log,
	)

	reader := csvio.NewReader(file, log, m)
	for {
		tx, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read transactions file: %w", err)
		}
		engine.ProcessTransaction(tx)
	}

	accounts := engine.Accounts()
	m.AccountsCreated.Add(float64(len(accounts)))

	if err := csvio.WriteAccounts(out, accounts); err != nil {
		return fmt.Errorf("write account snapshot: %w", err)
	}

	processed, failed := engine.Summary()
	log.Info().
		Int64("processed", processed).
		Int64("failed", failed).
		Int64("skipped", reader.Skipped()).
		Int("accounts", len(accounts)).
		Msg("run complete")

	return nil
}

func serveMetrics(addr string, registry *prometheus.Registry, log zerolog.Logger) {
	router := chi.NewRouter()
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	log.Info().Str("addr", addr).Msg("serving metrics")
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Error().Err(err).Msg("metrics listener stopped")
	}
}
