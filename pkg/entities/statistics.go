package entities

import "time"

// PlayerStatistics represents aggregated statistics for a player over a session
type PlayerStatistics struct {
	PlayerID     string
	RoundsPlayed int
	Wins         int
	Losses       int
	Busts        int
	Blackjacks   int
	DealerBusts  int
	TotalBet     int64
	NetProfit    int64
	BiggestWin   int64
	LastUpdated  time.Time
}

// WinRate calculates the player's win rate as a percentage
func (s *PlayerStatistics) WinRate() float64 {
	if s.RoundsPlayed == 0 {
		return 0.0
	}
	return float64(s.Wins) / float64(s.RoundsPlayed) * 100.0
}
