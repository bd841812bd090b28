package lotto

import "fmt"

// TicketGenerator produces randomized tickets from a UniquePicker
type TicketGenerator struct {
	picker UniquePicker
	logger Logger
}

// NewTicketGenerator creates a generator backed by picker.
// A nil picker falls back to SecureRandomGenerator.
func NewTicketGenerator(picker UniquePicker, logger Logger) *TicketGenerator {
	if picker == nil {
		picker = NewSecureRandomGenerator()
	}
	if logger == nil {
		logger = NewSilentLogger()
	}
	return &TicketGenerator{picker: picker, logger: logger}
}

// Generate returns exactly count sorted tickets. count must be in
// [0, MaxTicketCount].
func (g *TicketGenerator) Generate(count int) ([]Ticket, error) {
	if count < 0 || count > MaxTicketCount {
		return nil, ErrInvalidCount.WithDetails(fmt.Sprintf("ticket count %d", count))
	}

	tickets := make([]Ticket, 0, count)
	for i := 0; i < count; i++ {
		numbers, err := g.picker.PickUnique(NumberMin, NumberMax, NumberCount)
		if err != nil {
			g.logger.Error("Ticket generation failed at %d/%d: %v", i+1, count, err)
			return nil, err
		}

		ticket, err := NewTicket(numbers)
		if err != nil {
			g.logger.Error("Picker returned invalid numbers %v: %v", numbers, err)
			return nil, ErrSystemError.WithDetails(fmt.Sprintf("picker returned %v", numbers)).WithCause(err)
		}
		tickets = append(tickets, ticket)
	}

	g.logger.Debug("Generated %d tickets", len(tickets))
	return tickets, nil
}
