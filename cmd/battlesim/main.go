// Command battlesim runs a headless demo match on the combat core. It loads
// match config, optionally persists the replay action log to PostgreSQL,
// and serves health, metrics, and match state over HTTP while a naive
// driver plays both sides.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/nandastone/AncientBeast/internal/config"
	"github.com/nandastone/AncientBeast/internal/db"
	"github.com/nandastone/AncientBeast/internal/game/battle"
	"github.com/nandastone/AncientBeast/internal/game/combat"
	"github.com/nandastone/AncientBeast/internal/game/geo"
	"github.com/nandastone/AncientBeast/internal/model"
)

const defaultConfigPath = "config/match.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := defaultConfigPath
	if p := os.Getenv("BATTLESIM_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadMatch(cfgPath)
	if err != nil {
		slog.Warn("config not loaded, using defaults", "path", cfgPath, "err", err)
		cfg = config.DefaultMatch()
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	var actions battle.ActionLog = battle.NoopActionLog{}
	if cfg.Database.DBName != "" {
		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("migrating replay schema: %w", err)
		}
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()
		actions = db.NewReplayRepository(database)
		slog.Info("replay log connected", "db", cfg.Database.DBName)
	}

	grid := geo.NewGrid(16, 9)
	g := battle.New(cfg, grid, battle.NoopSignals{}, actions)
	if err := setupDemoMatch(g); err != nil {
		return fmt.Errorf("setting up demo match: %w", err)
	}

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: newRouter(g),
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		slog.Info("http listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	eg.Go(func() error {
		driveMatch(ctx, g, grid)
		return nil
	})

	return eg.Wait()
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newRouter(g *battle.Game) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/state", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(snapshot(g))
	})
	return r
}

type creatureState struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Player int    `json:"player"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Health int    `json:"health"`
	Energy int    `json:"energy"`
	Dead   bool   `json:"dead"`
}

type matchState struct {
	MatchID   string                `json:"match_id"`
	Turn      int                   `json:"turn"`
	Creatures []creatureState       `json:"creatures"`
	Scores    []combat.ScoreSummary `json:"scores"`
}

func snapshot(g *battle.Game) matchState {
	st := matchState{
		MatchID: g.MatchID().String(),
		Turn:    g.Turn,
		Scores:  g.ScoreSummaries(),
	}
	for _, c := range g.Creatures() {
		st.Creatures = append(st.Creatures, creatureState{
			ID:     c.ID,
			Name:   c.Name,
			Player: c.Player.ID,
			X:      c.X,
			Y:      c.Y,
			Health: c.Health,
			Energy: c.Energy,
			Dead:   c.Dead,
		})
	}
	return st
}

// setupDemoMatch summons two small teams facing each other across the board.
func setupDemoMatch(g *battle.Game) error {
	red := model.NewPlayer(0, "Red")
	blue := model.NewPlayer(1, "Blue")
	g.AddPlayer(red)
	g.AddPlayer(blue)

	leaderStats := map[model.Stat]float64{
		model.StatHealth: 100, model.StatRegrowth: 1, model.StatEndurance: 60,
		model.StatEnergy: 100, model.StatMeditation: 25, model.StatInitiative: 50,
		model.StatOffense: 5, model.StatDefense: 5, model.StatMovement: 2,
	}
	bruiserStats := map[model.Stat]float64{
		model.StatHealth: 125, model.StatRegrowth: 5, model.StatEndurance: 45,
		model.StatEnergy: 60, model.StatMeditation: 10, model.StatInitiative: 35,
		model.StatOffense: 12, model.StatDefense: 12, model.StatMovement: 3,
		model.StatCrush: 6, model.StatFrost: 3,
	}
	skirmisherStats := map[model.Stat]float64{
		model.StatHealth: 80, model.StatRegrowth: 3, model.StatEndurance: 30,
		model.StatEnergy: 75, model.StatMeditation: 15, model.StatInitiative: 70,
		model.StatOffense: 9, model.StatDefense: 4, model.StatMovement: 5,
		model.StatPierce: 8, model.StatBurn: 2,
	}

	type entry struct {
		p      *model.Player
		name   string
		stats  map[model.Stat]float64
		x, y   int
		size   int
		leader bool
	}
	roster := []entry{
		{red, "Red Priest", leaderStats, 1, 4, 1, true},
		{red, "Red Bruiser", bruiserStats, 3, 2, 2, false},
		{red, "Red Skirmisher", skirmisherStats, 2, 6, 1, false},
		{blue, "Blue Priest", leaderStats, 14, 4, 1, true},
		{blue, "Blue Bruiser", bruiserStats, 13, 6, 2, false},
		{blue, "Blue Skirmisher", skirmisherStats, 13, 2, 1, false},
	}
	for _, e := range roster {
		base := model.NewStatBlock(e.stats, nil)
		_, err := g.Summon(e.p, e.name, base, e.x, e.y, e.size, battle.SummonOptions{
			Active: true,
			Leader: e.leader,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// driveMatch plays both sides naively: attack an adjacent enemy, otherwise
// step toward the nearest one, otherwise skip. Stops when only one team has
// living creatures or the context ends.
func driveMatch(ctx context.Context, g *battle.Game, grid *geo.Grid) {
	g.Start()
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		g.EnforceClocks(time.Now())
		c := g.ActiveCreature()
		if c == nil || g.TimedOut() || matchDecided(g) {
			logScores(g)
			return
		}

		if target := adjacentEnemy(g, c); target != nil {
			dmg := combat.New(c, target, map[model.DamageType]int{
				model.DamageCrush: 10,
				model.DamageFrost: 5,
			}, 1, nil)
			g.TakeDamage(dmg, false)
			g.SkipTurn()
			continue
		}
		if !stepTowardEnemy(g, grid, c) {
			g.SkipTurn()
			continue
		}
		g.SkipTurn()
	}
}

func matchDecided(g *battle.Game) bool {
	alive := map[int]bool{}
	for _, c := range g.Creatures() {
		if !c.Dead && !c.Temp {
			alive[c.Player.ID] = true
		}
	}
	return len(alive) <= 1
}

func adjacentEnemy(g *battle.Game, c *model.Creature) *model.Creature {
	for _, other := range g.Creatures() {
		if other.Dead || other.Temp || other.Player == c.Player {
			continue
		}
		if c.AdjacentTo(other) {
			return other
		}
	}
	return nil
}

func stepTowardEnemy(g *battle.Game, grid *geo.Grid, c *model.Creature) bool {
	var target *model.Creature
	best := 1 << 30
	for _, other := range g.Creatures() {
		if other.Dead || other.Temp || other.Player == c.Player {
			continue
		}
		d := abs(other.X-c.X) + abs(other.Y-c.Y)
		if d < best {
			best = d
			target = other
		}
	}
	if target == nil {
		return false
	}
	// Try the neighbor cell of the target closest to us that we can reach.
	for _, n := range model.NeighborCoords(target.X, target.Y) {
		if !grid.IsWalkable(n[0], n[1], c.Size, c) {
			continue
		}
		if steps, ok := grid.PathLength(c, n[0], n[1]); ok && steps <= c.RemainingMove {
			return g.Move(c, n[0], n[1])
		}
	}
	// Fall back to a single step in the target's direction.
	for _, n := range model.NeighborCoords(c.X, c.Y) {
		if abs(n[0]-target.X)+abs(n[1]-target.Y) < best && grid.IsWalkable(n[0], n[1], c.Size, c) {
			return g.Move(c, n[0], n[1])
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func logScores(g *battle.Game) {
	for _, s := range g.ScoreSummaries() {
		slog.Info("final score", "player", s.PlayerID, "total", s.Total)
	}
}
