package testutil

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/iho/payengine/internal/adapter/csvio"
	"github.com/iho/payengine/internal/adapter/repository/memory"
	"github.com/iho/payengine/internal/infrastructure/metrics"
	"github.com/iho/payengine/internal/usecase"
)

// ReplayCSV feeds an inline CSV document through the full reader/engine
// pipeline and returns the engine for inspection.
func ReplayCSV(t *testing.T, input string) *usecase.Engine {
	t.Helper()

	m := metrics.New(prometheus.NewRegistry())

	engine := usecase.NewEngine(
		usecase.NewProcessor(memory.NewTransactionStore()),
		memory.NewAccountStore(),
		m,
		zerolog.Nop(),
	)

	reader := csvio.NewReader(strings.NewReader(input), zerolog.Nop(), m)
	for {
		tx, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("failed to read transaction: %v", err)
		}
		engine.ProcessTransaction(tx)
	}

	return engine
}

// Rows joins CSV rows with a header into one document.
func Rows(rows ...string) string {
	return "type,client,tx,amount\n" + strings.Join(rows, "\n") + "\n"
}
