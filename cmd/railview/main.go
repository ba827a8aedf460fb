package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/smasonuk/railview"
)

const wheelStep = 24.0

type windowSurface struct {
	w, h int
}

func (s *windowSurface) Size() (int, int) {
	return s.w, s.h
}

// shell is the demo presentation layer: a collapsed strip that expands
// into the rail-driven viewport, scrolled with the mouse wheel.
type shell struct {
	session  *railview.Session
	watcher  *railview.CollapseWatcher
	surface  *windowSurface
	rail     *railview.Rail
	scroll   railview.ScrollState
	expanded bool
	percent  int
}

func (g *shell) expand() {
	g.expanded = true
	g.session.Viewport.Reconcile()
	g.watcher.Register(g.collapse)
}

func (g *shell) collapse() {
	g.expanded = false
	g.watcher.Deregister()
	g.session.Viewport.Stop()
}

func (g *shell) Update() error {
	if !g.expanded && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.expand()
	}
	g.watcher.Poll()

	if g.expanded {
		if _, dy := ebiten.Wheel(); dy != 0 {
			g.scroll.Top -= dy * wheelStep
			if extent := g.scroll.Extent(); extent > 0 {
				g.scroll.Top = math.Max(0, math.Min(g.scroll.Top, extent))
			}
			g.session.Mapper.OnScroll(g.scroll)
		}

		// Content swap demo.
		if inpututil.IsKeyJustPressed(ebiten.Key1) {
			if err := g.session.Loader.Load("proc:cube"); err != nil {
				log.Println(err)
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.Key2) {
			if err := g.session.Loader.Load("proc:terrain"); err != nil {
				log.Println(err)
			}
		}
	}
	return nil
}

func (g *shell) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if !g.expanded {
		ebitenutil.DebugPrint(screen, "press Enter to expand the preview")
		return
	}

	g.session.Viewport.Draw(screen)
	if g.rail.PointCount() == 0 {
		ebitenutil.DebugPrint(screen, "no rail points - nothing to preview")
	}
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("%d%%  (wheel: scroll, 1/2: content, Esc: collapse)", g.percent),
		4, g.surface.h-16)
}

func (g *shell) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.surface.w || outsideHeight != g.surface.h {
		g.surface.w, g.surface.h = outsideWidth, outsideHeight
		g.session.Viewport.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func main() {
	configPath := flag.String("config", "railview.toml", "viewer config file")
	flag.Parse()

	cfg, err := railview.LoadViewerConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	surface := &windowSurface{w: cfg.Width, h: cfg.Height}
	rail := cfg.BuildRail()

	g := &shell{surface: surface, rail: rail}
	g.watcher = railview.NewCollapseWatcher(railview.EscapeKey{})
	g.scroll = railview.ScrollState{Top: 0, Height: 1000, Client: 600}

	g.session, err = railview.NewSession(surface, rail, railview.DefaultDecoder{}, func(p float64) {
		g.percent = int(math.Round(p * 100))
	})
	if err != nil {
		log.Fatal(err)
	}
	defer g.session.Close()

	if err := g.session.Loader.Load(cfg.Content); err != nil {
		log.Fatal(err)
	}
	g.session.Viewport.SetProgress(0)

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("railview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
