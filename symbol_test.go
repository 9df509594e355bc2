package wizard

import "testing"

func TestFormatCryptoSymbol(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"BTC", "BTC-USD"},
		{"btc", "BTC-USD"},
		{" bitcoin ", "BTC-USD"},
		{"ETHEREUM", "ETH-USD"},
		{"BTC-USD", "BTC-USD"},
		{"AAPL-USD", "AAPL-USD"},
		{"SHIB", "SHIB-USD"},
		// 5 characters still gets the suffix, 6 does not.
		{"MATIC", "MATIC-USD"},
		{"GOOGLE", "GOOGLE"},
	}
	for _, tc := range tests {
		if got := FormatCryptoSymbol(tc.in); got != tc.want {
			t.Errorf("FormatCryptoSymbol(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
