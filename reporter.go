package lotto

import (
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Korean)

// ProfitRate returns ((totalPrize - amount) / amount) * 100 rounded to one
// decimal place, half away from zero.
func ProfitRate(totalPrize int64, amount PurchaseAmount) float64 {
	if amount <= 0 {
		return 0
	}

	spent := decimal.NewFromInt(int64(amount))
	rate := decimal.NewFromInt(totalPrize).
		Sub(spent).
		Div(spent).
		Mul(decimal.NewFromInt(100)).
		Round(1)

	return rate.InexactFloat64()
}

// FormatTierLine renders one result line, e.g. "3개 일치 (5,000원) - 1개".
// Only the payout gets thousands separators.
func FormatTierLine(tier PrizeTier, count int) string {
	return printer.Sprintf("%s (%d원) - %s개", tier.Description(), tier.Payout(), strconv.Itoa(count))
}

// FormatProfitRate renders the profit rate line. The rate keeps at most one
// fraction digit and drops a trailing ".0".
func FormatProfitRate(rate float64) string {
	return printer.Sprintf("총 수익률은 %v%%입니다.", number.Decimal(rate, number.MaxFractionDigits(1)))
}

// Report returns the result section: header, one line per tier in
// declaration order, then the profit rate.
func Report(tally TierTally, amount PurchaseAmount) []string {
	lines := make([]string, 0, tierCount+3)
	lines = append(lines, MsgResultHeader, MsgResultDivider)
	for _, tier := range AllTiers() {
		lines = append(lines, FormatTierLine(tier, tally.Count(tier)))
	}
	lines = append(lines, FormatProfitRate(ProfitRate(tally.TotalPrize(), amount)))
	return lines
}
