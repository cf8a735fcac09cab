package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/fadedpez/twentyone/internal/config"
	"github.com/fadedpez/twentyone/internal/console"
	"github.com/fadedpez/twentyone/internal/logging"
	"github.com/fadedpez/twentyone/internal/rng"
	"github.com/fadedpez/twentyone/pkg/entities"
	gameRepo "github.com/fadedpez/twentyone/pkg/repositories/game"
	walletRepo "github.com/fadedpez/twentyone/pkg/repositories/wallet"
	"github.com/fadedpez/twentyone/pkg/services/blackjack"
	"github.com/fadedpez/twentyone/pkg/services/statistics"
	"github.com/fadedpez/twentyone/pkg/services/wallet"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

type CLI struct {
	Credit   int64  `short:"c" help:"Starting credit, overrides STARTING_CREDIT"`
	Seed     int64  `short:"s" help:"Shuffle seed for a reproducible game, overrides SHUFFLE_SEED"`
	LogLevel string `help:"Log level (debug, info, warn, error), overrides LOG_LEVEL"`
	EnvFile  string `help:"Environment file to load" default:".env" type:"path"`
}

// exitInterrupted is the conventional status for a process stopped by SIGINT
const exitInterrupted = 130

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Single player blackjack against the house."))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, cli, os.Stdin, os.Stdout)
	switch {
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(os.Stderr, "Interrupted")
		kctx.Exit(exitInterrupted)
	case err != nil:
		fmt.Fprintln(os.Stderr, "Error:", err)
		kctx.Exit(1)
	}
	kctx.Exit(0)
}

func run(ctx context.Context, cli CLI, in io.Reader, out io.Writer) error {
	cfg, err := config.Load(cli.EnvFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cli.Credit != 0 {
		cfg.StartingCredit = cli.Credit
	}
	if cli.Seed != 0 {
		cfg.ShuffleSeed = cli.Seed
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	wallets := wallet.NewService(walletRepo.NewMemoryRepository(), logger)
	if _, err := wallets.Open(ctx, cfg.PlayerName, cfg.StartingCredit); err != nil {
		return fmt.Errorf("opening wallet: %w", err)
	}
	stats := statistics.NewService(gameRepo.NewMemoryRepository())

	prompter := console.NewPrompter(ctx, in, out)
	session, err := blackjack.NewSession(blackjack.Collaborators{
		Shuffle:  rng.Shuffler(rng.New(cfg.ShuffleSeed)),
		Bet:      prompter.Bet,
		Stand:    prompter.Stand,
		Continue: prompter.Continue,
		Renderer: console.NewRenderer(out),
		Recorders: []blackjack.RoundRecorder{
			wallet.NewRecorder(wallets, cfg.PlayerName),
			stats.Recorder(cfg.PlayerName),
		},
	}, logger)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, titleStyle.Render(" ♠ ♥ Blackjack ♦ ♣ "))
	fmt.Fprintln(out)
	logger.Info("Starting session %s for %s with %d credit (seed %d)", session.ID, cfg.PlayerName, cfg.StartingCredit, cfg.ShuffleSeed)

	result, err := session.Run(ctx, entities.NewGameState(cfg.StartingCredit))
	if err != nil {
		return err
	}
	if err := printSummary(ctx, out, stats, wallets, cfg.PlayerName, result); err != nil {
		return err
	}

	if err := prompter.Err(); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

func newLogger(cfg *config.Config) (*logging.Logger, func(), error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if cfg.LogFile == "" {
		return logging.NewLogger(level, os.Stderr), func() {}, nil
	}

	file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logging.NewLogger(level, file), func() {
		if err := file.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "Failed to close log file:", err)
		}
	}, nil
}

func printSummary(ctx context.Context, out io.Writer, stats *statistics.Service, wallets *wallet.Service, player string, result blackjack.SessionResult) error {
	summary, err := stats.Summary(ctx, player, statistics.DefaultRecentRounds)
	if err != nil {
		return fmt.Errorf("building summary: %w", err)
	}
	balance, err := wallets.Balance(ctx, player)
	if err != nil {
		return fmt.Errorf("reading balance: %w", err)
	}

	writeSummary(out, summary, balance, result)
	return nil
}

// writeSummary prints the end-of-session report. The win rate is already a percentage.
func writeSummary(out io.Writer, summary *statistics.Summary, balance int64, result blackjack.SessionResult) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, console.InfoStyle.Render(fmt.Sprintf("Session %s: %s after %d rounds", result.ID, result.Outcome, len(result.Rounds))))
	fmt.Fprintf(out, "Wins: %d  Losses: %d  Busts: %d  Blackjacks: %d  Win rate: %.0f%%\n",
		summary.Wins, summary.Losses, summary.Busts, summary.Blackjacks, summary.WinRate)
	fmt.Fprintf(out, "Net: %+d  Biggest win: %d  Balance: %d\n", summary.NetProfit, summary.BiggestWin, balance)
	for _, round := range summary.RecentRounds {
		fmt.Fprintf(out, "  #%d bet %d: %d vs %d (%+d)\n", round.Number, round.Bet, round.PlayerTotal, round.DealerTotal, round.Delta())
	}
}
