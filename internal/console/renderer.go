package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/fadedpez/twentyone/pkg/entities"
	"github.com/fadedpez/twentyone/pkg/services/blackjack"
)

var (
	PromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	HandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4"))

	WinStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	LoseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))
)

// Renderer prints game notifications as plain lines
type Renderer struct {
	out io.Writer
}

var _ blackjack.Renderer = (*Renderer)(nil)

// NewRenderer creates a renderer writing to out
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// ShowHands prints the dealer hand above the player hand
func (r *Renderer) ShowHands(player, dealer blackjack.Hand, hideDealer bool) {
	fmt.Fprintln(r.out, HandStyle.Render("Dealer hand: "+dealer.ShowCards(hideDealer)))
	fmt.Fprintln(r.out, HandStyle.Render("Player hand: "+player.ShowCards(false)))
}

// RoundSummary announces the result and reveals both hands
func (r *Renderer) RoundSummary(won bool, player, dealer blackjack.Hand) {
	if won {
		fmt.Fprintln(r.out, WinStyle.Render("*** You win ***"))
	} else {
		fmt.Fprintln(r.out, LoseStyle.Render("*** You lose ***"))
	}
	r.ShowHands(player, dealer, false)
}

// SessionEnded says goodbye
func (r *Renderer) SessionEnded(outcome blackjack.SessionOutcome, state entities.GameState) {
	switch outcome {
	case blackjack.SessionBankrupt:
		fmt.Fprintln(r.out, LoseStyle.Render("You have no money left"))
	default:
		fmt.Fprintln(r.out, InfoStyle.Render(fmt.Sprintf("Exiting with %d credit", state.Credit)))
	}
}
