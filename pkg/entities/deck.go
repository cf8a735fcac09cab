package entities

import "github.com/fadedpez/twentyone/internal/types"

// ErrEmptyDeck is returned when a card is dealt from a deck with no cards left
var ErrEmptyDeck = types.NewGameError(types.ErrEmptyDeck, "no cards left in deck")

// ShuffleFunc returns a permutation of the given cards. It may reorder its
// argument in place; the deck always hands it a private copy.
type ShuffleFunc func(cards []Card) []Card

// Deck is an ordered, read-only sequence of cards. Dealing and shuffling
// return new decks and never touch the receiver.
type Deck struct {
	cards []Card
}

// NewStandardDeck creates a new deck of 52 cards, one of each suit and rank,
// ordered suit by suit
func NewStandardDeck() Deck {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			cards = append(cards, NewCard(suit, rank))
		}
	}

	return Deck{cards: cards}
}

// NewDeck creates a deck holding the given cards in order
func NewDeck(cards ...Card) Deck {
	return Deck{cards: copyCards(cards)}
}

// Shuffle returns a deck ordered by shuffleFn
func (d Deck) Shuffle(shuffleFn ShuffleFunc) Deck {
	return Deck{cards: copyCards(shuffleFn(copyCards(d.cards)))}
}

// Deal returns the top card and a deck holding the remaining cards
func (d Deck) Deal() (Card, Deck, error) {
	if len(d.cards) == 0 {
		return Card{}, d, ErrEmptyDeck
	}

	// The remainder shares the backing array; nothing ever writes to it.
	return d.cards[0], Deck{cards: d.cards[1:]}, nil
}

// Len returns the number of cards left
func (d Deck) Len() int {
	return len(d.cards)
}

// IsEmpty reports whether the deck has no cards left
func (d Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the cards in deck order
func (d Deck) Cards() []Card {
	return copyCards(d.cards)
}

func copyCards(cards []Card) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	return out
}
