package csvio

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"github.com/iho/payengine/internal/domain"
)

// amountPrecision is the number of fractional digits in emitted balances.
// StringFixed rounds half away from zero.
const amountPrecision = 4

// WriteAccounts writes the final account snapshot as CSV. Rows are ordered by
// client id so the output is stable; the order carries no meaning.
func WriteAccounts(w io.Writer, accounts map[domain.ClientID]*domain.Account) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}

	clients := make([]domain.ClientID, 0, len(accounts))
	for clientID := range accounts {
		clients = append(clients, clientID)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i] < clients[j] })

	for _, clientID := range clients {
		account := accounts[clientID]
		record := []string{
			strconv.FormatUint(uint64(account.ClientID), 10),
			account.Available.StringFixed(amountPrecision),
			account.Held.StringFixed(amountPrecision),
			account.Total.StringFixed(amountPrecision),
			strconv.FormatBool(account.Locked),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}
