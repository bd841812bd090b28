package lotto

import (
	"crypto/rand"
	"math/big"
)

// SecureRandomGenerator implements UniquePicker using crypto/rand
type SecureRandomGenerator struct{}

// NewSecureRandomGenerator creates a new secure random generator
func NewSecureRandomGenerator() *SecureRandomGenerator {
	return &SecureRandomGenerator{}
}

// GenerateInRange generates a secure random number within the specified range [min, max] (inclusive)
func (g *SecureRandomGenerator) GenerateInRange(min, max int) (int, error) {
	if err := ValidateRange(min, max); err != nil {
		return 0, err
	}

	// Handle edge case where min == max
	if min == max {
		return min, nil
	}

	randomBig, err := rand.Int(rand.Reader, big.NewInt(int64(max-min+1)))
	if err != nil {
		return 0, err
	}

	return int(randomBig.Int64()) + min, nil
}

// PickUnique returns count distinct numbers drawn uniformly from [min, max].
// The result is in draw order, not sorted.
func (g *SecureRandomGenerator) PickUnique(min, max, count int) ([]int, error) {
	if err := ValidateRange(min, max); err != nil {
		return nil, err
	}
	if err := ValidateCount(count, max-min+1); err != nil {
		return nil, err
	}

	pool := make([]int, max-min+1)
	for i := range pool {
		pool[i] = min + i
	}

	// Partial Fisher-Yates: the first count slots end up holding the picks.
	for i := 0; i < count; i++ {
		j, err := g.GenerateInRange(i, len(pool)-1)
		if err != nil {
			return nil, err
		}
		pool[i], pool[j] = pool[j], pool[i]
	}

	picked := make([]int, count)
	copy(picked, pool[:count])
	return picked, nil
}
