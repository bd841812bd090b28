package lotto

import "context"

// LineReader reads raw player input one line at a time
type LineReader interface {
	// ReadLine shows prompt and blocks until a line is available.
	// The line is returned as typed, without the trailing newline.
	// io.EOF is returned once input is closed.
	ReadLine(prompt string) (string, error)
}

// LinePrinter writes output lines in call order
type LinePrinter interface {
	PrintLine(text string)
}

// UniquePicker draws distinct random numbers
type UniquePicker interface {
	// PickUnique returns exactly count distinct numbers from [min, max]
	PickUnique(min, max, count int) ([]int, error)
}

// PickerFunc adapts a function to UniquePicker
type PickerFunc func(min, max, count int) ([]int, error)

// PickUnique calls f(min, max, count)
func (f PickerFunc) PickUnique(min, max, count int) ([]int, error) { return f(min, max, count) }

// ResultPublisher delivers a finished game report somewhere outside the process
type ResultPublisher interface {
	Publish(ctx context.Context, report *GameReport) error
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
}
