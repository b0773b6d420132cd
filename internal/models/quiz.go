package models

import "time"

// QuizStats are aggregate counters over all completed quiz games.
// Totals only ever grow; bests are running maxima.
type QuizStats struct {
	TotalGames     int `json:"totalGames"`
	TotalCorrect   int `json:"totalCorrect"`
	TotalQuestions int `json:"totalQuestions"`
	BestScore      int `json:"bestScore"`
	BestStreak     int `json:"bestStreak"`
}

// Fold merges one completed game into the aggregates.
func (s QuizStats) Fold(g GameResult) QuizStats {
	return QuizStats{
		TotalGames:     s.TotalGames + 1,
		TotalCorrect:   s.TotalCorrect + g.Correct,
		TotalQuestions: s.TotalQuestions + g.Total,
		BestScore:      max(s.BestScore, g.Score),
		BestStreak:     max(s.BestStreak, g.Streak),
	}
}

// GameResult is the outcome of a single completed quiz game.
type GameResult struct {
	ID       string    `json:"id"`
	Score    int       `json:"score"`
	Correct  int       `json:"correct"`
	Total    int       `json:"total"`
	Streak   int       `json:"streak"`
	PlayedAt time.Time `json:"playedAt"`
}

// QuizQuestion is one generated question: the species to guess plus
// four shuffled choices (the correct one among them).
type QuizQuestion struct {
	Correct PokemonSummary
	Choices []PokemonSummary
}
