package lotto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GameReport is the outcome of one completed run
type GameReport struct {
	RunID          string         `json:"run_id"`          // Unique ID of the run
	PurchaseAmount int64          `json:"purchase_amount"` // Amount spent
	TicketCount    int            `json:"ticket_count"`    // Number of tickets bought
	Tickets        [][]int        `json:"tickets"`         // Generated tickets, in order
	WinningNumbers []int          `json:"winning_numbers"` // Drawn numbers
	BonusNumber    int            `json:"bonus_number"`    // Drawn bonus number
	Tally          map[string]int `json:"tally"`           // Wins per tier key
	TotalPrize     int64          `json:"total_prize"`     // Summed payout
	ProfitRate     float64        `json:"profit_rate"`     // Percentage, one decimal
	Stats          RunStats       `json:"stats"`           // Run monitor snapshot
	CreatedAt      time.Time      `json:"created_at"`      // When the report was built
}

// NewGameReport builds a report for the given run outcome
func NewGameReport(
	amount PurchaseAmount, tickets []Ticket, draw WinningDraw, tally TierTally, stats RunStats,
) *GameReport {
	numbers := make([][]int, len(tickets))
	for i, t := range tickets {
		numbers[i] = t.Numbers()
	}

	return &GameReport{
		RunID:          uuid.NewString(),
		PurchaseAmount: int64(amount),
		TicketCount:    len(tickets),
		Tickets:        numbers,
		WinningNumbers: draw.Numbers.Numbers(),
		BonusNumber:    draw.Bonus,
		Tally:          tally.Map(),
		TotalPrize:     tally.TotalPrize(),
		ProfitRate:     ProfitRate(tally.TotalPrize(), amount),
		Stats:          stats,
		CreatedAt:      time.Now().UTC(),
	}
}

// Validate validates the report data
func (r *GameReport) Validate() error {
	if r.RunID == "" {
		return ErrSystemError.WithDetails("report without run id")
	}
	if r.PurchaseAmount <= 0 || r.PurchaseAmount > MaxPurchaseAmount || r.PurchaseAmount%TicketPrice != 0 {
		return ErrInvalidAmount
	}
	if r.TicketCount != len(r.Tickets) || int64(r.TicketCount) != r.PurchaseAmount/TicketPrice {
		return ErrInvalidCount.WithDetails(fmt.Sprintf("ticket count %d", r.TicketCount))
	}
	if len(r.WinningNumbers) != NumberCount {
		return ErrWrongLength
	}
	return nil
}

// Marshal serializes a validated report to JSON
func (r *GameReport) Marshal() ([]byte, error) {
	if r == nil {
		return nil, ErrSerialization.WithDetails("nil report")
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	data, err := json.Marshal(r)
	if err != nil {
		return nil, ErrSerialization.WithCause(err)
	}
	if len(data) > MaxReportSize {
		return nil, ErrSerialization.WithDetails(
			fmt.Sprintf("report size %d bytes exceeds %d bytes (run=%s)", len(data), MaxReportSize, r.RunID))
	}
	return data, nil
}
