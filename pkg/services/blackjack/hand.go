package blackjack

import (
	"strconv"
	"strings"

	"github.com/fadedpez/twentyone/pkg/entities"
)

// Hand is an evaluated, read-only set of cards. Every derived field is
// computed once by MakeHand; changing a hand means building a new one.
type Hand struct {
	cards       []entities.Card
	rawTotal    int
	softTotal   int
	bestTotal   int
	containsAce bool
	blackjack   bool
	bust        bool
}

// MakeHand evaluates the given cards in order
func MakeHand(cards ...entities.Card) Hand {
	own := make([]entities.Card, len(cards))
	copy(own, cards)

	raw := RawTotal(own)
	soft := SoftTotal(own)

	return Hand{
		cards:       own,
		rawTotal:    raw,
		softTotal:   soft,
		bestTotal:   BestTotal(raw, soft),
		containsAce: ContainsAce(own),
		blackjack:   raw == WinningValue || soft == WinningValue,
		bust:        raw > WinningValue,
	}
}

// AddCard returns a new hand with card appended
func (h Hand) AddCard(card entities.Card) Hand {
	cards := make([]entities.Card, 0, len(h.cards)+1)
	cards = append(cards, h.cards...)
	cards = append(cards, card)
	return MakeHand(cards...)
}

// Cards returns a copy of the cards in the order they were dealt
func (h Hand) Cards() []entities.Card {
	cards := make([]entities.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

// Len returns the number of cards in the hand
func (h Hand) Len() int {
	return len(h.cards)
}

// RawTotal is the sum of card values with aces counted as 1
func (h Hand) RawTotal() int {
	return h.rawTotal
}

// SoftTotal is the raw total with one ace counted as 11
func (h Hand) SoftTotal() int {
	return h.softTotal
}

// BestTotal is the highest total not above 21. It is 0 for a bust hand, so
// check IsBust before comparing hands.
func (h Hand) BestTotal() int {
	return h.bestTotal
}

// ContainsAce reports whether the hand holds an ace
func (h Hand) ContainsAce() bool {
	return h.containsAce
}

// IsBlackjack reports whether the raw or soft total is exactly 21
func (h Hand) IsBlackjack() bool {
	return h.blackjack
}

// IsBust reports whether the raw total exceeds 21
func (h Hand) IsBust() bool {
	return h.bust
}

// WinsOver compares best totals only
func (h Hand) WinsOver(other Hand) bool {
	return h.bestTotal > other.bestTotal
}

// ShowCards renders the rank values of the hand. With hideFirst only the
// first card is revealed and every other card shows as X.
func (h Hand) ShowCards(hideFirst bool) string {
	if len(h.cards) == 0 {
		return ""
	}

	if hideFirst {
		parts := []string{strconv.Itoa(h.cards[0].Rank.Value())}
		for range h.cards[1:] {
			parts = append(parts, "X")
		}
		return strings.Join(parts, " ")
	}

	values := make([]string, 0, len(h.cards))
	for _, card := range h.cards {
		values = append(values, strconv.Itoa(card.Rank.Value()))
	}
	return strings.Join(values, ", ")
}

// String lists the cards with their suits, e.g. "A♥ K♦"
func (h Hand) String() string {
	parts := make([]string, 0, len(h.cards))
	for _, card := range h.cards {
		parts = append(parts, card.String())
	}
	return strings.Join(parts, " ")
}
