package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/payengine/internal/domain"
	"github.com/iho/payengine/internal/infrastructure/metrics"
)

// Reader streams transactions from a CSV document.
//
// The first row is a header; columns are matched by name so their order does
// not matter. Rows are flexible: reference kinds may omit the trailing amount
// column or leave it empty. Malformed rows are skipped with a warn-level
// diagnostic and counted; they never abort the stream.
type Reader struct {
	csv     *csv.Reader
	columns map[string]int
	log     zerolog.Logger
	metrics *metrics.Metrics
	skipped int64
}

func NewReader(r io.Reader, log zerolog.Logger, m *metrics.Metrics) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	return &Reader{
		csv:     cr,
		log:     log,
		metrics: m,
	}
}

// Next returns the next well-formed transaction, or io.EOF when the input is
// exhausted.
func (r *Reader) Next() (*domain.Transaction, error) {
	for {
		record, err := r.csv.Read()
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				r.skip(err, record)
				continue
			}
			// io.EOF or an underlying read failure.
			return nil, err
		}

		if r.columns == nil {
			r.columns = headerIndex(record)
			continue
		}

		tx, err := r.parseRecord(record)
		if err != nil {
			r.skip(err, record)
			continue
		}

		return tx, nil
	}
}

// Skipped returns how many malformed rows were dropped so far.
func (r *Reader) Skipped() int64 {
	return r.skipped
}

func (r *Reader) skip(err error, record []string) {
	r.skipped++
	r.metrics.RecordsSkipped.Inc()
	r.log.Warn().
		Err(err).
		Strs("record", record).
		Msg("skipping malformed record")
}

func headerIndex(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return columns
}

func (r *Reader) parseRecord(record []string) (*domain.Transaction, error) {
	kind, err := parseKind(r.field(record, "type"))
	if err != nil {
		return nil, err
	}

	client, err := strconv.ParseUint(r.field(record, "client"), 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid client id: %w", err)
	}

	txID, err := strconv.ParseUint(r.field(record, "tx"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction id: %w", err)
	}

	// Amount is required for monetary kinds and ignored for reference kinds.
	amount := decimal.Zero
	if kind.Monetary() {
		amount, err = decimal.NewFromString(r.field(record, "amount"))
		if err != nil {
			return nil, fmt.Errorf("invalid amount: %w", err)
		}
	}

	return domain.NewTransaction(kind, domain.TransactionID(txID), domain.ClientID(client), amount), nil
}

func (r *Reader) field(record []string, column string) string {
	idx, ok := r.columns[column]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func parseKind(value string) (domain.TransactionKind, error) {
	kind := domain.TransactionKind(strings.ToLower(value))
	switch kind {
	case domain.KindDeposit, domain.KindWithdrawal, domain.KindDispute,
		domain.KindResolve, domain.KindChargeback:
		return kind, nil
	}
	return "", fmt.Errorf("unknown transaction type %q", value)
}
