package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/LulubuluL/pokedex/internal/dbx"
	"github.com/LulubuluL/pokedex/internal/models"
	"github.com/LulubuluL/pokedex/internal/repositories/games"
	"github.com/LulubuluL/pokedex/internal/repositories/kv"
)

const quizStatsKey = "quiz_statistics"

// QuizChoices is the number of answers per generated question.
const QuizChoices = 4

type QuizService interface {
	// Stats returns the aggregates, zero-valued when none were ever
	// saved.
	Stats(ctx context.Context) (models.QuizStats, error)

	// RecordGame folds one completed game into the aggregates,
	// persists them and appends a history row. It returns the updated
	// aggregates.
	RecordGame(ctx context.Context, score, correct, total, streak int) (models.QuizStats, error)

	// History lists completed games, newest first.
	History(ctx context.Context) ([]models.GameResult, error)

	// GenerateQuestion builds one question from the catalog: a correct
	// species and three distinct decoys, shuffled.
	GenerateQuestion(entries []models.PokemonSummary) (*models.QuizQuestion, error)
}

type quizService struct {
	db    *sql.DB
	store kv.Repository
	games games.Repository
	rand  *rand.Rand
	now   func() time.Time
}

func NewQuizService(db *sql.DB, rng *rand.Rand) QuizService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &quizService{
		db:    db,
		store: kv.NewSQLiteRepository(db),
		games: games.NewSQLiteRepository(db),
		rand:  rng,
		now:   time.Now,
	}
}

func (s *quizService) Stats(ctx context.Context) (models.QuizStats, error) {
	var stats models.QuizStats

	data, err := s.store.Get(ctx, quizStatsKey)
	if err != nil {
		return stats, fmt.Errorf("error reading quiz stats: %w", err)
	}
	if data == nil {
		return stats, nil
	}
	if err := json.Unmarshal(data, &stats); err != nil {
		return models.QuizStats{}, fmt.Errorf("error decoding quiz stats: %w", err)
	}
	return stats, nil
}

func (s *quizService) RecordGame(ctx context.Context, score, correct, total, streak int) (models.QuizStats, error) {
	stats, err := s.Stats(ctx)
	if err != nil {
		return models.QuizStats{}, err
	}

	game := models.GameResult{
		ID:       uuid.NewString(),
		Score:    score,
		Correct:  correct,
		Total:    total,
		Streak:   streak,
		PlayedAt: s.now(),
	}

	updated := stats.Fold(game)

	data, err := json.Marshal(updated)
	if err != nil {
		return models.QuizStats{}, fmt.Errorf("error encoding quiz stats: %w", err)
	}

	// aggregates and history row land together or not at all
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := kv.NewSQLiteRepository(tx).Set(ctx, quizStatsKey, data); err != nil {
			return fmt.Errorf("error saving quiz stats: %w", err)
		}
		if err := games.NewSQLiteRepository(tx).Record(ctx, &game); err != nil {
			return fmt.Errorf("error recording game: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.QuizStats{}, err
	}

	return updated, nil
}

func (s *quizService) History(ctx context.Context) ([]models.GameResult, error) {
	return s.games.List(ctx)
}

func (s *quizService) GenerateQuestion(entries []models.PokemonSummary) (*models.QuizQuestion, error) {
	if len(entries) < QuizChoices {
		return nil, fmt.Errorf("need at least %d catalog entries, have %d", QuizChoices, len(entries))
	}

	correct := entries[s.rand.Intn(len(entries))]

	seen := map[int]struct{}{correct.ID: {}}
	choices := []models.PokemonSummary{correct}
	for len(choices) < QuizChoices {
		candidate := entries[s.rand.Intn(len(entries))]
		if _, dup := seen[candidate.ID]; dup {
			continue
		}
		seen[candidate.ID] = struct{}{}
		choices = append(choices, candidate)
	}

	s.rand.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	return &models.QuizQuestion{Correct: correct, Choices: choices}, nil
}
