package lotto

// WinningDraw is the drawn numbers plus a bonus number that is not among them.
type WinningDraw struct {
	Numbers Ticket
	Bonus   int
}

// NewWinningDraw validates the bonus number against the drawn numbers.
func NewWinningDraw(numbers Ticket, bonus int) (WinningDraw, error) {
	if numbers.IsZero() {
		return WinningDraw{}, ErrWrongLength
	}
	if !InNumberRange(bonus) {
		return WinningDraw{}, ErrOutOfRange
	}
	if numbers.Contains(bonus) {
		return WinningDraw{}, ErrDuplicateNumber
	}
	return WinningDraw{Numbers: numbers, Bonus: bonus}, nil
}
