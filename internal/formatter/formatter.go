// Package formatter renders snapshots as human-readable post text.
package formatter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/cardanopulse-backend/internal/snapshot"
)

const lovelacePerADA = 1_000_000

// FormatADA renders a lovelace amount in ADA with a B/M/K suffix, or two decimals below one thousand.
func FormatADA(lovelace int64) string {
	if lovelace == 0 {
		return "0"
	}
	ada := float64(lovelace) / lovelacePerADA
	if s, ok := withSuffix(ada); ok {
		return s
	}
	return strconv.FormatFloat(ada, 'f', 2, 64)
}

// FormatNumber renders n with a B/M/K suffix, or as-is below one thousand.
func FormatNumber(n float64) string {
	if n == 0 || math.IsNaN(n) {
		return "0"
	}
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	if s, ok := withSuffix(n); ok {
		return s
	}
	return strconv.FormatFloat(math.Round(n*1000)/1000, 'f', -1, 64)
}

func withSuffix(v float64) (string, bool) {
	switch {
	case v >= 1e9:
		return strconv.FormatFloat(v/1e9, 'f', 1, 64) + "B", true
	case v >= 1e6:
		return strconv.FormatFloat(v/1e6, 'f', 1, 64) + "M", true
	case v >= 1e3:
		return strconv.FormatFloat(v/1e3, 'f', 1, 64) + "K", true
	}
	return "", false
}

func usd(lovelace int64, price float64) string {
	return FormatNumber(float64(lovelace) / lovelacePerADA * price)
}

func share(part, total int64) string {
	if total == 0 {
		return "0.0"
	}
	return strconv.FormatFloat(float64(part)/float64(total)*100, 'f', 1, 64)
}

// Post renders the daily update. Active wallets come from sampled transactions and are a lower bound.
// Transactions are marked as a lower bound too when the scan stopped before the window did.
func Post(s snapshot.Snapshot) string {
	txBound := ""
	if s.Activity.Partial {
		txBound = "+"
	}

	var b strings.Builder
	b.WriteString("🚀 Daily Cardano Metrics Update\n\n")
	fmt.Fprintf(&b, "⏰ Uptime: %s days uninterrupted\n", FormatNumber(float64(s.UptimeDays)))
	fmt.Fprintf(&b, "💰 TVL: ₳%s ($%s)\n", FormatADA(s.TVL), usd(s.TVL, s.AdaPrice))
	fmt.Fprintf(&b, "🔒 Staked $ADA: ₳%s (%s%%)\n", FormatADA(s.StakedAda), share(s.StakedAda, s.TotalSupply))
	fmt.Fprintf(&b, "🪙 Total Supply: ₳%s ($%s)\n", FormatADA(s.TotalSupply), usd(s.TotalSupply, s.AdaPrice))
	fmt.Fprintf(&b, "🏛️ Treasury: ₳%s ($%s)\n", FormatADA(s.TreasuryAda), usd(s.TreasuryAda, s.AdaPrice))
	fmt.Fprintf(&b, "🖥️ Active Pools: %s\n", FormatNumber(float64(s.ActiveStakePools)))
	fmt.Fprintf(&b, "📊 24h Transactions: %s%s\n", FormatNumber(float64(s.Transactions24h)), txBound)
	fmt.Fprintf(&b, "👛 24h Active Wallets: %s+\n", FormatNumber(float64(s.ActiveWallets24h)))
	fmt.Fprintf(&b, "🧱 Block Height: %s", FormatNumber(float64(s.BlockHeight)))
	return b.String()
}
