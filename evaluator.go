package lotto

// ClassifyTier maps a match count to a prize tier. The bonus number only
// matters at exactly five matches. ok is false for losing tickets.
func ClassifyTier(matchCount int, hasBonus bool) (tier PrizeTier, ok bool) {
	switch matchCount {
	case 3:
		return TierThree, true
	case 4:
		return TierFour, true
	case 5:
		if hasBonus {
			return TierFiveWithBonus, true
		}
		return TierFive, true
	case 6:
		return TierSix, true
	}
	return 0, false
}

// EvaluateTicket classifies a single ticket against the draw.
func EvaluateTicket(ticket Ticket, draw WinningDraw) (PrizeTier, bool) {
	return ClassifyTier(ticket.MatchCount(draw.Numbers), ticket.Contains(draw.Bonus))
}

// Evaluate tallies every ticket against the draw, in order.
func Evaluate(tickets []Ticket, draw WinningDraw) TierTally {
	var tally TierTally
	for _, ticket := range tickets {
		if tier, ok := EvaluateTicket(ticket, draw); ok {
			tally = tally.Record(tier)
		}
	}
	return tally
}
