package lotto

// PrizeTier is a winning bucket determined by match count and, at five
// matches, by whether the bonus number is on the ticket.
type PrizeTier int

// Tiers in report order.
const (
	TierThree PrizeTier = iota
	TierFour
	TierFive
	TierFiveWithBonus
	TierSix

	tierCount = iota
)

type tierInfo struct {
	matches     int
	payout      int64
	description string
	key         string
}

var tierTable = [tierCount]tierInfo{
	TierThree:         {matches: 3, payout: 5_000, description: "3개 일치", key: "3"},
	TierFour:          {matches: 4, payout: 50_000, description: "4개 일치", key: "4"},
	TierFive:          {matches: 5, payout: 1_500_000, description: "5개 일치", key: "5"},
	TierFiveWithBonus: {matches: 5, payout: 30_000_000, description: "5개 일치, 보너스 일치", key: "5B"},
	TierSix:           {matches: 6, payout: 2_000_000_000, description: "6개 일치", key: "6"},
}

// AllTiers returns every tier in declaration order.
func AllTiers() []PrizeTier {
	return []PrizeTier{TierThree, TierFour, TierFive, TierFiveWithBonus, TierSix}
}

// Valid reports whether t is one of the declared tiers.
func (t PrizeTier) Valid() bool { return t >= 0 && t < tierCount }

// Payout returns the fixed prize money for the tier.
func (t PrizeTier) Payout() int64 { return tierTable[t].payout }

// Matches returns the number of drawn numbers a ticket in this tier matches.
func (t PrizeTier) Matches() int { return tierTable[t].matches }

// Description returns the human readable match description.
func (t PrizeTier) Description() string { return tierTable[t].description }

// String returns a short key: "3", "4", "5", "5B" or "6".
func (t PrizeTier) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return tierTable[t].key
}
