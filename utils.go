package lotto

// ValidateRange validates range parameters
func ValidateRange(min, max int) error {
	if min > max {
		return ErrInvalidRange
	}
	return nil
}

// ValidateCount validates that count unique numbers fit in a range of rangeSize
func ValidateCount(count, rangeSize int) error {
	if count < 0 || count > rangeSize {
		return ErrInvalidCount
	}
	return nil
}
