package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/LulubuluL/pokedex/internal/common"
	"github.com/LulubuluL/pokedex/internal/models"
)

func (a *App) cmdList(ctx context.Context) {
	entries, err := a.catalog.Catalog(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "could not load catalog: %v\n", err)
		return
	}
	for _, e := range entries {
		marks := ""
		if a.team.Contains(e.ID) {
			marks += " [team]"
		}
		if a.favs.IsFavorite(e.ID) {
			marks += " ★"
		}
		fmt.Fprintf(a.out, "#%03d %s%s\n", e.ID, e.Name, marks)
	}
}

func (a *App) cmdRefresh(ctx context.Context) {
	entries, err := a.catalog.Refresh(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "refresh failed: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "catalog refreshed, %d species\n", len(entries))
}

func (a *App) cmdTeam() {
	members := a.team.Members()
	if len(members) == 0 {
		fmt.Fprintln(a.out, "your team is empty")
		return
	}
	for i, m := range members {
		fmt.Fprintf(a.out, "%d. #%03d %s (%s)\n", i+1, m.ID, m.Name, strings.Join(m.Types, ", "))
	}
	fmt.Fprintf(a.out, "%d/%d slots used\n", len(members), models.MaxTeamSize)
}

func (a *App) cmdAdd(ctx context.Context, id int) {
	// the team stores a copy of the detail fields, so fetch them now
	m, err := a.api.FetchPokemon(ctx, id)
	if errors.Is(err, common.ErrorNotFound) {
		fmt.Fprintf(a.out, "no pokemon with id %d\n", id)
		return
	}
	if err != nil {
		fmt.Fprintf(a.out, "could not fetch pokemon %d: %v\n", id, err)
		return
	}

	switch err := a.team.Add(ctx, m); {
	case errors.Is(err, common.ErrTeamFull):
		fmt.Fprintf(a.out, "your team is full (%d max)\n", models.MaxTeamSize)
	case errors.Is(err, common.ErrAlreadyInTeam):
		fmt.Fprintf(a.out, "%s is already in your team\n", m.Name)
	case err != nil:
		fmt.Fprintf(a.out, "could not add %s: %v\n", m.Name, err)
	default:
		fmt.Fprintf(a.out, "%s joined your team\n", m.Name)
	}
}

func (a *App) cmdRemove(ctx context.Context, id int) {
	if err := a.team.Remove(ctx, id); err != nil {
		fmt.Fprintf(a.out, "could not remove %d: %v\n", id, err)
		return
	}
	fmt.Fprintf(a.out, "removed #%03d\n", id)
}

func (a *App) cmdClearTeam(ctx context.Context) {
	if err := a.team.Clear(ctx); err != nil {
		fmt.Fprintf(a.out, "could not clear team: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "team cleared")
}

func (a *App) cmdToggleFavorite(ctx context.Context, id int) {
	favorited, err := a.favs.Toggle(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "could not toggle favorite: %v\n", err)
		return
	}
	if favorited {
		fmt.Fprintf(a.out, "#%03d marked as favorite\n", id)
	} else {
		fmt.Fprintf(a.out, "#%03d unfavorited\n", id)
	}
}

func (a *App) cmdFavorites() {
	ids := a.favs.IDs()
	if len(ids) == 0 {
		fmt.Fprintln(a.out, "no favorites yet")
		return
	}
	for _, id := range ids {
		fmt.Fprintf(a.out, "#%03d\n", id)
	}
}

func (a *App) cmdTheme(ctx context.Context, args []string) {
	if len(args) == 0 {
		theme, err := a.settings.Theme(ctx)
		if err != nil {
			fmt.Fprintf(a.out, "could not read theme: %v\n", err)
			return
		}
		fmt.Fprintf(a.out, "theme: %s\n", theme)
		return
	}

	if err := a.settings.SetTheme(ctx, models.Theme(args[0])); err != nil {
		fmt.Fprintf(a.out, "could not set theme: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "theme set to %s\n", args[0])
}

func (a *App) cmdStats(ctx context.Context) {
	stats, err := a.quiz.Stats(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "could not read stats: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "games: %d  correct: %d/%d  best score: %d  best streak: %d\n",
		stats.TotalGames, stats.TotalCorrect, stats.TotalQuestions, stats.BestScore, stats.BestStreak)
}

const quizRounds = 5

func (a *App) cmdQuiz(ctx context.Context) {
	entries, err := a.catalog.Catalog(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "could not load catalog: %v\n", err)
		return
	}

	correct, streak, bestStreak := 0, 0, 0
	for round := 1; round <= quizRounds; round++ {
		q, err := a.quiz.GenerateQuestion(entries)
		if err != nil {
			fmt.Fprintf(a.out, "could not build a question: %v\n", err)
			return
		}

		fmt.Fprintf(a.out, "\nround %d/%d — who is #%03d?\n", round, quizRounds, q.Correct.ID)
		for i, choice := range q.Choices {
			fmt.Fprintf(a.out, "  %d) %s\n", i+1, choice.Name)
		}
		fmt.Fprint(a.out, "answer: ")

		line, err := a.in.ReadString('\n')
		if err != nil {
			return
		}
		pick, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && pick >= 1 && pick <= len(q.Choices) && q.Choices[pick-1].ID == q.Correct.ID {
			fmt.Fprintln(a.out, "correct!")
			correct++
			streak++
			bestStreak = max(bestStreak, streak)
		} else {
			fmt.Fprintf(a.out, "wrong — it was %s\n", q.Correct.Name)
			streak = 0
		}
	}

	score := correct * 100 / quizRounds
	stats, err := a.quiz.RecordGame(ctx, score, correct, quizRounds, bestStreak)
	if err != nil {
		fmt.Fprintf(a.out, "could not save the game: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "\nscore: %d (best: %d)\n", score, stats.BestScore)
}
