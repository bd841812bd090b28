package lotto

import (
	"math/bits"
	"slices"
	"strconv"
	"strings"
)

// Ticket is an immutable set of NumberCount distinct numbers in
// [NumberMin, NumberMax], kept in ascending order.
type Ticket struct {
	numbers [NumberCount]int
	mask    uint64 // bit n set when n is on the ticket
}

// NewTicket validates numbers and returns them as a sorted Ticket.
func NewTicket(numbers []int) (Ticket, error) {
	if len(numbers) != NumberCount {
		return Ticket{}, ErrWrongLength
	}

	var t Ticket
	for _, n := range numbers {
		if !InNumberRange(n) {
			return Ticket{}, ErrOutOfRange
		}
	}
	for i, n := range numbers {
		bit := uint64(1) << uint(n)
		if t.mask&bit != 0 {
			return Ticket{}, ErrDuplicateNumber
		}
		t.mask |= bit
		t.numbers[i] = n
	}
	slices.Sort(t.numbers[:])

	return t, nil
}

// MustTicket is like NewTicket but panics on invalid input.
// It is meant for tests and fixed tables.
func MustTicket(numbers ...int) Ticket {
	t, err := NewTicket(numbers)
	if err != nil {
		panic(err)
	}
	return t
}

// InNumberRange reports whether n may appear on a ticket.
func InNumberRange(n int) bool {
	return n >= NumberMin && n <= NumberMax
}

// Numbers returns a copy of the ticket numbers in ascending order.
func (t Ticket) Numbers() []int {
	out := make([]int, NumberCount)
	copy(out, t.numbers[:])
	return out
}

// Contains reports whether n is on the ticket.
func (t Ticket) Contains(n int) bool {
	if !InNumberRange(n) {
		return false
	}
	return t.mask&(uint64(1)<<uint(n)) != 0
}

// MatchCount returns how many numbers t shares with other.
func (t Ticket) MatchCount(other Ticket) int {
	return bits.OnesCount64(t.mask & other.mask)
}

// IsZero reports whether t is the zero Ticket.
func (t Ticket) IsZero() bool { return t.mask == 0 }

// String renders the ticket as "[n1, n2, n3, n4, n5, n6]".
func (t Ticket) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, n := range t.numbers {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(n))
	}
	sb.WriteByte(']')
	return sb.String()
}

// PurchaseAmount is a validated, positive multiple of TicketPrice.
type PurchaseAmount int64

// TicketCount returns the number of tickets the amount buys.
func (a PurchaseAmount) TicketCount() int {
	return int(int64(a) / TicketPrice)
}
