package blackjack

import (
	"github.com/fadedpez/twentyone/pkg/entities"
)

const (
	WinningValue     = 21 // Highest total that is not bust
	DealerStandValue = 17 // Dealer draws while the raw total is below this
	AceBonus         = 10 // Extra points when one ace counts as 11
	InitialHandSize  = 2  // Cards dealt to each hand before play
)

// RawTotal sums the card values with every ace counted as 1
func RawTotal(cards []entities.Card) int {
	total := 0
	for _, card := range cards {
		total += card.Rank.Value()
	}
	return total
}

// ContainsAce reports whether any of the cards is an ace
func ContainsAce(cards []entities.Card) bool {
	for _, card := range cards {
		if card.Rank.IsAce() {
			return true
		}
	}
	return false
}

// SoftTotal is the raw total with a single ace promoted to 11. Promoting a
// second ace would always exceed 21, so one bonus is enough.
func SoftTotal(cards []entities.Card) int {
	raw := RawTotal(cards)
	if ContainsAce(cards) {
		return raw + AceBonus
	}
	return raw
}

// BestTotal returns the larger of the raw and soft totals that does not
// exceed 21, or 0 when both do.
func BestTotal(raw, soft int) int {
	best := 0
	for _, v := range []int{raw, soft} {
		if v <= WinningValue && v > best {
			best = v
		}
	}
	return best
}
