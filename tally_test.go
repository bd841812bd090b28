package lotto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierTally_RecordReturnsCopy(t *testing.T) {
	var empty TierTally
	one := empty.Record(TierFive)
	two := one.Record(TierFive)

	assert.Equal(t, 0, empty.Count(TierFive))
	assert.Equal(t, 1, one.Count(TierFive))
	assert.Equal(t, 2, two.Count(TierFive))
	assert.Equal(t, int64(3_000_000), two.TotalPrize())
	assert.Equal(t, int64(0), empty.TotalPrize())
}

func TestTierTally_InvalidTier(t *testing.T) {
	var tally TierTally
	tally = tally.Record(PrizeTier(99))

	assert.Equal(t, 0, tally.Wins())
	assert.Equal(t, 0, tally.Count(PrizeTier(-1)))
}

func TestTierTally_Map(t *testing.T) {
	tally := TierTally{}.Record(TierThree).Record(TierThree).Record(TierFiveWithBonus)

	assert.Equal(t, map[string]int{"3": 2, "4": 0, "5": 0, "5B": 1, "6": 0}, tally.Map())
}

func TestPrizeTier_Table(t *testing.T) {
	tests := []struct {
		tier        PrizeTier
		matches     int
		payout      int64
		description string
		key         string
	}{
		{TierThree, 3, 5_000, "3개 일치", "3"},
		{TierFour, 4, 50_000, "4개 일치", "4"},
		{TierFive, 5, 1_500_000, "5개 일치", "5"},
		{TierFiveWithBonus, 5, 30_000_000, "5개 일치, 보너스 일치", "5B"},
		{TierSix, 6, 2_000_000_000, "6개 일치", "6"},
	}

	assert.Len(t, AllTiers(), len(tests))
	for i, tt := range tests {
		assert.Equal(t, tt.tier, AllTiers()[i], "declaration order")
		assert.Equal(t, tt.matches, tt.tier.Matches())
		assert.Equal(t, tt.payout, tt.tier.Payout())
		assert.Equal(t, tt.description, tt.tier.Description())
		assert.Equal(t, tt.key, tt.tier.String())
	}

	assert.False(t, PrizeTier(tierCount).Valid())
	assert.Equal(t, "unknown", PrizeTier(tierCount).String())
}
