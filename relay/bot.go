package relay

import (
	"strings"

	"github.com/tarancss/selene/lib/helius/types"
)

// ExplorerURL is where the signature of a relayed transaction links to.
const ExplorerURL = "https://xray.helius.xyz/tx/"

// Format builds the chat message of a batch: the description and explorer link of every transaction, then, after a
// blank line, one "address=name" line per named account.
func Format(txs []types.EnhancedTransaction, names []AccountName) string {
	var b strings.Builder

	for i, tx := range txs {
		if i > 0 {
			b.WriteByte('\n')
		}

		b.WriteString(tx.Description)
		b.WriteByte('\n')
		b.WriteString(ExplorerURL)
		b.WriteString(tx.Signature)
	}

	first := true

	for _, n := range names {
		if !n.Named() {
			continue
		}

		if first {
			b.WriteString("\n\n")

			first = false
		} else {
			b.WriteByte('\n')
		}

		b.WriteString(n.String())
	}

	return b.String()
}
