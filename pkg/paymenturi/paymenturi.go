// Package paymenturi renders wallet payment URIs for display (QR codes, links).
package paymenturi

import (
	"net/url"
	"strings"

	"simplepay/pkg/amount"

	"github.com/shopspring/decimal"
)

// Scheme is the URI scheme understood by Monero wallets.
const Scheme = "monero"

// Build renders scheme:<address>?tx_amount=<amount>[&recipient_name=<label>].
// The label is query-escaped; an empty label is omitted.
func Build(address string, amt decimal.Decimal, label *string) string {
	var b strings.Builder
	b.WriteString(Scheme)
	b.WriteByte(':')
	b.WriteString(address)
	b.WriteString("?tx_amount=")
	b.WriteString(amount.Format(amt))
	if label != nil && *label != "" {
		b.WriteString("&recipient_name=")
		b.WriteString(url.QueryEscape(*label))
	}
	return b.String()
}
