package lotto

import (
	"strconv"
	"strings"
)

// ValidatePurchaseAmount parses raw as a purchase amount. It fails with
// ErrInvalidAmount unless raw is a positive multiple of TicketPrice no larger
// than MaxPurchaseAmount.
func ValidatePurchaseAmount(raw string) (PurchaseAmount, error) {
	amount, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount.WithDetails(strconv.Quote(raw)).WithCause(err)
	}
	if amount <= 0 || amount > MaxPurchaseAmount || amount%TicketPrice != 0 {
		return 0, ErrInvalidAmount.WithDetails(strconv.FormatInt(amount, 10))
	}
	return PurchaseAmount(amount), nil
}

// ValidateTicketNumbers parses comma separated numbers into a Ticket.
// Checks run in order: token count (ErrWrongLength), range (ErrOutOfRange),
// uniqueness (ErrDuplicateNumber).
func ValidateTicketNumbers(raw string) (Ticket, error) {
	tokens := strings.Split(raw, NumberSeparator)
	if len(tokens) != NumberCount {
		return Ticket{}, ErrWrongLength.WithDetails(strconv.Itoa(len(tokens)) + " numbers")
	}

	numbers := make([]int, 0, NumberCount)
	for _, token := range tokens {
		n, ok := parseNumber(token)
		if !ok {
			return Ticket{}, ErrOutOfRange.WithDetails(strconv.Quote(token))
		}
		numbers = append(numbers, n)
	}

	return NewTicket(numbers)
}

// ValidateBonusNumber parses raw as a bonus number for the given drawn numbers.
func ValidateBonusNumber(raw string, ticket Ticket) (int, error) {
	n, ok := parseNumber(raw)
	if !ok {
		return 0, ErrOutOfRange.WithDetails(strconv.Quote(raw))
	}
	if ticket.Contains(n) {
		return 0, ErrDuplicateNumber.WithDetails(strconv.Itoa(n))
	}
	return n, nil
}

// parseNumber parses a single lottery number, ignoring surrounding spaces.
func parseNumber(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || !InNumberRange(n) {
		return 0, false
	}
	return n, true
}
