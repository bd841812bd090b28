package lotto

// TierTally counts wins per tier and the prize money they add up to.
// It is a value: Record returns an updated copy and leaves the receiver as is.
type TierTally struct {
	counts     [tierCount]int
	totalPrize int64
}

// Record returns a tally with one more win in tier.
func (t TierTally) Record(tier PrizeTier) TierTally {
	if !tier.Valid() {
		return t
	}
	t.counts[tier]++
	t.totalPrize += tier.Payout()
	return t
}

// Count returns the number of wins recorded for tier.
func (t TierTally) Count(tier PrizeTier) int {
	if !tier.Valid() {
		return 0
	}
	return t.counts[tier]
}

// TotalPrize returns the summed payout of all recorded wins.
func (t TierTally) TotalPrize() int64 { return t.totalPrize }

// Wins returns the number of winning tickets recorded.
func (t TierTally) Wins() int {
	total := 0
	for _, c := range t.counts {
		total += c
	}
	return total
}

// Map returns the counts keyed by tier key, for serialization.
func (t TierTally) Map() map[string]int {
	m := make(map[string]int, tierCount)
	for _, tier := range AllTiers() {
		m[tier.String()] = t.counts[tier]
	}
	return m
}
