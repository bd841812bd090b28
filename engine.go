package lotto

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"
)

// LotteryEngine runs one game: it prompts for input, generates tickets,
// evaluates them and prints the report. An engine is meant for a single run.
type LotteryEngine struct {
	reader    LineReader
	printer   LinePrinter
	generator *TicketGenerator
	publisher ResultPublisher
	logger    Logger

	monitor *RunMonitor
}

// NewLotteryEngine creates an engine that talks to the player through
// reader and printer and draws tickets with crypto/rand
func NewLotteryEngine(reader LineReader, printer LinePrinter) *LotteryEngine {
	logger := NewSilentLogger()
	return &LotteryEngine{
		reader:    reader,
		printer:   printer,
		generator: NewTicketGenerator(nil, logger),
		logger:    logger,
		monitor:   NewRunMonitor(),
	}
}

// NewLotteryEngineWithLogger creates an engine with a custom logger
func NewLotteryEngineWithLogger(reader LineReader, printer LinePrinter, logger Logger) *LotteryEngine {
	e := NewLotteryEngine(reader, printer)
	e.SetLogger(logger)
	return e
}

// NewConsoleEngine creates an engine over a plain reader/writer pair
func NewConsoleEngine(in io.Reader, out io.Writer) *LotteryEngine {
	console := NewConsole(in, out)
	return NewLotteryEngine(console, console)
}

// SetLogger replaces the engine logger
func (e *LotteryEngine) SetLogger(logger Logger) {
	if logger == nil {
		logger = NewSilentLogger()
	}
	e.logger = logger
	e.generator.logger = logger
}

// GetLogger returns the engine logger
func (e *LotteryEngine) GetLogger() Logger { return e.logger }

// SetPicker replaces the random number source used for tickets
func (e *LotteryEngine) SetPicker(picker UniquePicker) {
	e.generator = NewTicketGenerator(picker, e.logger)
}

// SetPublisher sets where finished reports are sent; nil disables publishing
func (e *LotteryEngine) SetPublisher(publisher ResultPublisher) {
	e.publisher = publisher
}

// Stats returns the run monitor snapshot
func (e *LotteryEngine) Stats() RunStats { return e.monitor.Stats() }

// Run plays one full game. Input errors are reported to the player and
// asked again; Run only fails when input is closed or ctx is done.
func (e *LotteryEngine) Run(ctx context.Context) (*GameReport, error) {
	startTime := time.Now()
	e.monitor.Reset()

	amount, err := e.ReadPurchaseAmount(ctx)
	if err != nil {
		return nil, err
	}

	tickets, err := e.PurchaseTickets(amount)
	if err != nil {
		return nil, err
	}

	winning, err := e.ReadWinningNumbers(ctx)
	if err != nil {
		return nil, err
	}

	bonus, err := e.ReadBonusNumber(ctx, winning)
	if err != nil {
		return nil, err
	}

	draw, err := NewWinningDraw(winning, bonus)
	if err != nil {
		return nil, err
	}

	tally := e.Evaluate(tickets, draw)
	e.PrintResult(tally, amount)

	report := NewGameReport(amount, tickets, draw, tally, e.monitor.Stats())
	e.publish(ctx, report)

	e.logger.Info("Game finished: run=%s, amount=%d, tickets=%d, prize=%d, rate=%.1f%%, elapsed=%v",
		report.RunID, amount, len(tickets), tally.TotalPrize(), report.ProfitRate, time.Since(startTime))
	return report, nil
}

// ReadPurchaseAmount prompts until a valid purchase amount is entered
func (e *LotteryEngine) ReadPurchaseAmount(ctx context.Context) (PurchaseAmount, error) {
	return promptUntilValid(ctx, e, MsgInputPurchaseAmount, ValidatePurchaseAmount)
}

// ReadWinningNumbers prompts until six valid winning numbers are entered
func (e *LotteryEngine) ReadWinningNumbers(ctx context.Context) (Ticket, error) {
	return promptUntilValid(ctx, e, MsgInputWinningNumbers, ValidateTicketNumbers)
}

// ReadBonusNumber prompts until a valid bonus number for winning is entered
func (e *LotteryEngine) ReadBonusNumber(ctx context.Context, winning Ticket) (int, error) {
	return promptUntilValid(ctx, e, MsgInputBonusNumber, func(raw string) (int, error) {
		return ValidateBonusNumber(raw, winning)
	})
}

// PurchaseTickets announces the ticket count, generates the tickets and
// prints each of them
func (e *LotteryEngine) PurchaseTickets(amount PurchaseAmount) ([]Ticket, error) {
	count := amount.TicketCount()
	e.printer.PrintLine("\n" + strconv.Itoa(count) + MsgTicketsPurchased)

	tickets, err := e.generator.Generate(count)
	if err != nil {
		return nil, err
	}
	e.monitor.RecordTicketsGenerated(len(tickets))

	for _, ticket := range tickets {
		e.printer.PrintLine(ticket.String())
	}
	return tickets, nil
}

// Evaluate tallies tickets against draw and records the outcome
func (e *LotteryEngine) Evaluate(tickets []Ticket, draw WinningDraw) TierTally {
	tally := Evaluate(tickets, draw)
	e.monitor.RecordEvaluation(len(tickets), tally.Wins())
	e.logger.Debug("Evaluated %d tickets against %s + %d: %d wins, prize=%d",
		len(tickets), draw.Numbers, draw.Bonus, tally.Wins(), tally.TotalPrize())
	return tally
}

// PrintResult prints the result section for tally
func (e *LotteryEngine) PrintResult(tally TierTally, amount PurchaseAmount) {
	for _, line := range Report(tally, amount) {
		e.printer.PrintLine(line)
	}
}

// publish sends the report if a publisher is set. Failures are logged and
// counted but never end the game.
func (e *LotteryEngine) publish(ctx context.Context, report *GameReport) {
	if e.publisher == nil {
		return
	}

	err := e.publisher.Publish(ctx, report)
	e.monitor.RecordPublish(err == nil)
	if err != nil {
		e.logger.Error("Failed to publish report run=%s: %v", report.RunID, err)
		return
	}
	e.logger.Debug("Published report run=%s", report.RunID)
}

// promptUntilValid reads lines until parse accepts one. Validation errors
// are printed to the player; any other error is returned.
func promptUntilValid[T any](
	ctx context.Context, e *LotteryEngine, prompt string, parse func(string) (T, error),
) (T, error) {
	var zero T
	for {
		if err := ctx.Err(); err != nil {
			return zero, NewError(ErrCodeSystem, "input cancelled").WithCause(err)
		}

		raw, err := e.reader.ReadLine(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return zero, ErrInputClosed.WithCause(err)
			}
			return zero, NewError(ErrCodeSystem, "read input").WithCause(err)
		}

		value, err := parse(raw)
		if err == nil {
			return value, nil
		}

		var lottoErr *LottoError
		if !errors.As(err, &lottoErr) || !IsValidationError(err) {
			return zero, fmt.Errorf("parse input %q: %w", raw, err)
		}

		e.monitor.RecordValidationFailure(lottoErr.Code)
		e.logger.Debug("Rejected input %q: %v", raw, err)
		e.printer.PrintLine(lottoErr.UserMessage())
	}
}
