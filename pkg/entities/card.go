package entities

// Suit represents a card suit

type Suit string

const (
	Hearts   Suit = "HEARTS"
	Diamonds Suit = "DIAMONDS"
	Spades   Suit = "SPADES"
	Clubs    Suit = "CLUBS"
)

var suitSymbols = map[Suit]string{
	Hearts:   "♥",
	Diamonds: "♦",
	Spades:   "♠",
	Clubs:    "♣",
}

// Suits returns every suit in deck-building order
func Suits() []Suit {
	return []Suit{Hearts, Diamonds, Spades, Clubs}
}

// Symbol returns the suit's card symbol
func (s Suit) Symbol() string {
	if sym, ok := suitSymbols[s]; ok {
		return sym
	}
	return "?"
}

// Rank represents a card rank

type Rank string

const (
	Ace   Rank = "A"
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
)

var rankValues = map[Rank]int{
	Ace:   1,
	Two:   2,
	Three: 3,
	Four:  4,
	Five:  5,
	Six:   6,
	Seven: 7,
	Eight: 8,
	Nine:  9,
	Ten:   10,
	Jack:  10,
	Queen: 10,
	King:  10,
}

// Ranks returns every rank in deck-building order, King down to Ace
func Ranks() []Rank {
	return []Rank{King, Queen, Jack, Ten, Nine, Eight, Seven, Six, Five, Four, Three, Two, Ace}
}

// Value returns the blackjack point value of the rank. Aces count as 1.
func (r Rank) Value() int {
	return rankValues[r]
}

// IsAce reports whether the rank is an ace
func (r Rank) IsAce() bool {
	return r == Ace
}

// Card represents a playing card

type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card

func NewCard(suit Suit, rank Rank) Card {
	return Card{
		Suit: suit,
		Rank: rank,
	}
}

// String returns the string representation of the card

func (c Card) String() string {
	return string(c.Rank) + c.Suit.Symbol()
}
