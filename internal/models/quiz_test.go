package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuizStats_FoldFromZero(t *testing.T) {
	var s QuizStats

	s = s.Fold(GameResult{Score: 80, Correct: 8, Total: 10, Streak: 5})

	assert.Equal(t, QuizStats{
		TotalGames:     1,
		TotalCorrect:   8,
		TotalQuestions: 10,
		BestScore:      80,
		BestStreak:     5,
	}, s)
}

func TestQuizStats_FoldKeepsMaxima(t *testing.T) {
	s := QuizStats{TotalGames: 1, TotalCorrect: 8, TotalQuestions: 10, BestScore: 80, BestStreak: 5}

	s = s.Fold(GameResult{Score: 50, Correct: 5, Total: 10, Streak: 2})

	assert.Equal(t, QuizStats{
		TotalGames:     2,
		TotalCorrect:   13,
		TotalQuestions: 20,
		BestScore:      80,
		BestStreak:     5,
	}, s)
}

func TestTheme_Valid(t *testing.T) {
	assert.True(t, ThemeLight.Valid())
	assert.True(t, ThemeDark.Valid())
	assert.False(t, Theme("sepia").Valid())
}
