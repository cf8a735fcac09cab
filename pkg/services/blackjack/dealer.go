package blackjack

import (
	"fmt"

	"github.com/fadedpez/twentyone/pkg/entities"
)

// DealInitialHands draws four cards in turn: the first and third go to the
// player, the second and fourth to the dealer.
func DealInitialHands(deck entities.Deck) (player Hand, dealer Hand, rest entities.Deck, err error) {
	var playerCards, dealerCards []entities.Card

	rest = deck
	for i := 0; i < InitialHandSize*2; i++ {
		var card entities.Card
		card, rest, err = rest.Deal()
		if err != nil {
			return Hand{}, Hand{}, deck, fmt.Errorf("dealing card %d: %w", i+1, err)
		}

		if i%2 == 0 {
			playerCards = append(playerCards, card)
		} else {
			dealerCards = append(dealerCards, card)
		}
	}

	return MakeHand(playerCards...), MakeHand(dealerCards...), rest, nil
}

// PlayDealer draws for the dealer while the raw total is below 17. Soft
// totals are ignored, so A+6 keeps drawing.
func PlayDealer(dealer Hand, deck entities.Deck) (Hand, entities.Deck, error) {
	for dealer.RawTotal() < DealerStandValue {
		card, rest, err := deck.Deal()
		if err != nil {
			return dealer, deck, fmt.Errorf("dealer draw: %w", err)
		}
		dealer = dealer.AddCard(card)
		deck = rest
	}
	return dealer, deck, nil
}
