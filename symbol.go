package wizard

import "strings"

// cryptoAliases maps common crypto spellings to the ticker the price
// provider expects.
var cryptoAliases = map[string]string{
	"BTC":      "BTC-USD",
	"BITCOIN":  "BTC-USD",
	"ETH":      "ETH-USD",
	"ETHEREUM": "ETH-USD",
	"DOGE":     "DOGE-USD",
	"XRP":      "XRP-USD",
	"SOL":      "SOL-USD",
	"ADA":      "ADA-USD",
}

// FormatCryptoSymbol rewrites a raw ticker into the identifier the price
// provider expects for cryptocurrencies.
//
// The input is uppercased and trimmed. Known aliases map to their "-USD"
// pair, tickers already carrying the "-USD" suffix are left unchanged, and
// any other ticker of at most 5 characters gets the suffix appended (most
// crypto symbols are 3-5 characters). Longer tickers are returned as is.
func FormatCryptoSymbol(symbol string) string {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if mapped, ok := cryptoAliases[symbol]; ok {
		return mapped
	}
	if strings.HasSuffix(symbol, "-USD") {
		return symbol
	}
	if len(symbol) <= 5 {
		return symbol + "-USD"
	}
	return symbol
}
