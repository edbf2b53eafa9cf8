package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"go.uber.org/zap"

	"github.com/jtestard/go-pong/feed"
	"github.com/jtestard/go-pong/logging"
	"github.com/jtestard/go-pong/pong"
)

// announce a rally on the log every this many paddle hits
const rallyMilestone = 5

// Game is the structure of the game state
type Game struct {
	court    *pong.Court
	hub      *feed.Hub
	log      *zap.Logger
	hud      *hud
	lastTick time.Time
	rally    int
}

// NewGame creates an initializes a new game
func NewGame(cfg pong.Config, rng *rand.Rand, hub *feed.Hub, log *zap.Logger) (*Game, error) {
	court, err := pong.NewCourt(cfg, rng)
	if err != nil {
		return nil, err
	}
	h, err := newHUD()
	if err != nil {
		return nil, err
	}
	return &Game{court: court, hub: hub, log: log, hud: h}, nil
}

func (g *Game) setState(change func()) {
	before := g.court.State
	change()
	if after := g.court.State; after != before {
		g.log.Info("state changed", zap.Stringer("from", before), zap.Stringer("to", after))
		g.publish()
	}
}

func (g *Game) publish() {
	if g.hub != nil {
		g.hub.Publish(g.court.Snapshot())
	}
}

// player1 (left) plays the arrow keys, player2 (right) plays W/S
func readInput() pong.Input {
	return pong.Input{
		P1Up:   ebiten.IsKeyPressed(ebiten.KeyUp),
		P1Down: ebiten.IsKeyPressed(ebiten.KeyDown),
		P2Up:   ebiten.IsKeyPressed(ebiten.KeyW),
		P2Down: ebiten.IsKeyPressed(ebiten.KeyS),
	}
}

// Update updates the game state
func (g *Game) Update(screen *ebiten.Image) error {
	now := time.Now()
	if g.lastTick.IsZero() {
		g.lastTick = now
	}
	delta := now.Sub(g.lastTick)
	g.lastTick = now

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.setState(g.court.Reset)
		g.rally = 0
	}

	switch g.court.State {
	case pong.StartState:
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.setState(g.court.Start)
		}

	case pong.PlayState:
		if inpututil.IsKeyJustPressed(ebiten.KeyP) {
			g.setState(g.court.TogglePause)
			break
		}

		g.court.Tick(delta, readInput())
		if g.court.Rally != g.rally {
			g.rally = g.court.Rally
			g.log.Debug("paddle hit", zap.Int("rally", g.rally))
			if g.rally%rallyMilestone == 0 {
				g.log.Info("rally", zap.Int("hits", g.rally))
			}
		}
		g.publish()

	case pong.PauseState:
		if inpututil.IsKeyJustPressed(ebiten.KeyP) {
			g.setState(g.court.TogglePause)
		}
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	return g.Draw(screen)
}

// Draw updates the game screen elements drawn
func (g *Game) Draw(screen *ebiten.Image) error {
	screen.Fill(pong.BgColor)

	g.court.Draw(&screenRenderer{dst: screen})
	g.hud.drawCaption(g.court.State, screen)
	g.hud.drawRally(g.court.Rally, screen)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.CurrentTPS()))

	return nil
}

// Layout sets the screen layout
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.court.Config()
	return int(cfg.Width), int(cfg.Height)
}

func main() {
	var (
		configPath = flag.String("config", "", "TOML file overriding the default court settings")
		feedAddr   = flag.String("feed", "", "serve a read-only websocket feed of the court on this address")
		debug      = flag.Bool("debug", false, "debug logging")
		seed       = flag.Int64("seed", 0, "random seed for the ball heading (0 picks one)")
	)
	flag.Parse()

	level := "info"
	if *debug {
		level = "debug"
	}
	log, err := logging.New(logging.Options{Level: level, Development: *debug})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg := pong.DefaultConfig()
	if *configPath != "" {
		if cfg, err = pong.LoadConfig(*configPath); err != nil {
			log.Fatal("loading config", zap.Error(err))
		}
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Debug("bootstraping new game", zap.Int64("seed", *seed))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var hub *feed.Hub
	if *feedAddr != "" {
		hub = feed.NewHub(log.Named("feed"))
		go func() {
			log.Info("starting websocket feed", zap.String("addr", *feedAddr))
			if err := feed.ListenAndServe(ctx, *feedAddr, hub); err != nil {
				log.Error("websocket feed stopped", zap.Error(err))
			}
		}()
	}

	g, err := NewGame(cfg, rand.New(rand.NewSource(*seed)), hub, log)
	if err != nil {
		log.Fatal("creating game", zap.Error(err))
	}

	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	ebiten.SetWindowTitle("Pong")
	ebiten.SetRunnableOnUnfocused(true)

	log.Info("starting the game")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal("game loop", zap.Error(err))
	}
}
