// Package cli is a small REPL over the pokedex core, wiring the
// catalog, team, favorites, quiz and settings services together the
// way a mobile shell would.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/LulubuluL/pokedex/internal/cache"
	"github.com/LulubuluL/pokedex/internal/config"
	"github.com/LulubuluL/pokedex/internal/logging"
	"github.com/LulubuluL/pokedex/internal/pokeapi"
	"github.com/LulubuluL/pokedex/internal/repositories/favorites"
	"github.com/LulubuluL/pokedex/internal/repositories/kv"
	"github.com/LulubuluL/pokedex/internal/repositories/team"
	"github.com/LulubuluL/pokedex/internal/services"
	"github.com/LulubuluL/pokedex/internal/state"
	"github.com/LulubuluL/pokedex/internal/storage"
)

type App struct {
	config *config.Config
	log    logging.Logger

	db       *storage.LazyDB
	catalog  services.CatalogService
	quiz     services.QuizService
	settings services.SettingsService
	team     *state.TeamState
	favs     *state.FavoritesState
	api      *pokeapi.Client

	in  *bufio.Reader
	out io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	lazy := storage.NewLazyDB(cfg.DatabasePath)
	db, err := lazy.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	store := kv.NewSQLiteRepository(db)
	api := pokeapi.NewClient(
		pokeapi.WithBaseURL(cfg.APIBaseURL),
		pokeapi.WithCatalogLimit(cfg.CatalogLimit),
		pokeapi.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
	)

	catalogCache := cache.New(store, log, cache.WithTTL(cfg.CacheTTL))

	teamState := state.NewTeamState(
		services.NewTeamService(team.NewSQLiteRepository(db)), log)
	favState := state.NewFavoritesState(
		services.NewFavoritesService(favorites.NewSQLiteRepository(db)), log)

	teamState.Reload(ctx)
	favState.Reload(ctx)

	return &App{
		config:   cfg,
		log:      log,
		db:       lazy,
		catalog:  services.NewCatalogService(catalogCache, api),
		quiz:     services.NewQuizService(db, rand.New(rand.NewSource(rand.Int63()))),
		settings: services.NewSettingsService(store),
		team:     teamState,
		favs:     favState,
		api:      api,
		in:       bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "pokedex — type 'help' for commands")

	for {
		fmt.Fprint(a.out, "> ")
		line, err := a.in.ReadString('\n')
		if err != nil {
			return
		}

		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) == 0 {
			continue
		}

		if fields[0] == "exit" || fields[0] == "quit" {
			return
		}
		a.dispatch(ctx, fields[0], fields[1:])
	}
}

func (a *App) dispatch(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "help":
		a.printHelp()
	case "list":
		a.cmdList(ctx)
	case "refresh":
		a.cmdRefresh(ctx)
	case "team":
		a.cmdTeam()
	case "add":
		a.withID(args, func(id int) { a.cmdAdd(ctx, id) })
	case "remove":
		a.withID(args, func(id int) { a.cmdRemove(ctx, id) })
	case "clearteam":
		a.cmdClearTeam(ctx)
	case "fav":
		a.withID(args, func(id int) { a.cmdToggleFavorite(ctx, id) })
	case "favs":
		a.cmdFavorites()
	case "theme":
		a.cmdTheme(ctx, args)
	case "stats":
		a.cmdStats(ctx)
	case "quiz":
		a.cmdQuiz(ctx)
	default:
		fmt.Fprintf(a.out, "unknown command %q\n", cmd)
	}
}

func (a *App) withID(args []string, fn func(id int)) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "usage: <command> <pokemon-id>")
		return
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		fmt.Fprintf(a.out, "invalid pokemon id %q\n", args[0])
		return
	}
	fn(id)
}

func (a *App) printHelp() {
	fmt.Fprint(a.out, `commands:
  list            show the species catalog (cached for 24h)
  refresh         drop the cache and refetch the catalog
  team            show your team
  add <id>        add a species to your team (max 6)
  remove <id>     remove a species from your team
  clearteam       empty the team
  fav <id>        toggle a favorite
  favs            list favorite ids, newest first
  theme [value]   show or set the theme (dark|light)
  stats           show quiz statistics
  quiz            play one quiz game
  exit            quit
`)
}
