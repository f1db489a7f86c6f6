package main

import (
	"fmt"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"poster-wall/assets"
	"poster-wall/canvas"
	"poster-wall/engine"
	"poster-wall/expand"
	"poster-wall/input"
	"poster-wall/pool"
	"poster-wall/tween"
	"poster-wall/ui"
)

// maxFrameStep caps the tween clock so a stalled frame does not skip
// whole transitions.
const maxFrameStep = 0.1

// contentLibrary supplies tile textures and delivers them on Poll. Len is
// the number of content items tiles index into.
type contentLibrary interface {
	pool.Loader
	Len() int
	Poll() int
	Pending() int
}

type Game struct {
	cfg    Config
	layout canvas.Layout
	eases  tween.Eases

	camera  *canvas.Camera
	tiles   *pool.Pool
	library contentLibrary
	titles  *engine.Titles
	machine *expand.Machine
	player  tween.Player

	// Sub-systems
	router *input.Router
	unbind func()
	ui     *ui.UISystem

	uiFont    font.Face
	titleFont font.Face

	screenWidth  int
	screenHeight int

	now       func() time.Time
	lastTick  time.Time
	cursor    ebiten.CursorShapeType
	cursorSet bool
	closed    bool

	screenshotRequested bool
}

// NewGame builds the canvas from cfg, decoding content on background
// workers.
func NewGame(cfg Config, source input.Source) (*Game, error) {
	var decode assets.Decoder
	if len(cfg.Content.Images) > 0 {
		decode = assets.Files(cfg.Content.Images)
	} else {
		decode = assets.Placeholders(cfg.Content.Placeholders, PlaceholderWidth, PlaceholderHeight)
	}
	lib := assets.NewLibrary(cfg.ContentCount(), decode, cfg.Content.Workers)
	return newGame(cfg, source, lib)
}

func newGame(cfg Config, source input.Source, lib contentLibrary) (*Game, error) {
	eases, err := cfg.Eases()
	if err != nil {
		return nil, err
	}
	titles, err := engine.NewTitles(cfg.Title.List, cfg.Title.Script)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:          cfg,
		layout:       cfg.Layout(),
		eases:        eases,
		camera:       canvas.NewCamera(cfg.PanSettings()),
		library:      lib,
		titles:       titles,
		machine:      expand.NewMachine(cfg.ExpandSettings(), titles.Title),
		screenWidth:  cfg.Window.Width,
		screenHeight: cfg.Window.Height,
		now:          time.Now,
	}
	g.tiles = pool.New(g.layout, lib.Len(), lib, g.expandTile)

	g.uiFont = LoadUIFont(14)
	g.titleFont = LoadUIFont(cfg.Title.FontSize)
	g.ui = ui.NewUISystem(
		func() font.Face { return g.uiFont },
		func() font.Face { return g.titleFont },
		func() (int, int) { return g.screenWidth, g.screenHeight },
		DrawTextLines,
		ui.TitleStyle{
			Duration: float32(cfg.Title.Duration),
			Stagger:  float32(cfg.Title.Stagger),
			Ease:     eases.Get(cfg.Title.Ease),
		},
	)
	g.ui.Overlay.Color = ColorOverlay
	g.ui.PanelFallback = ColorPanelFallback
	g.ui.TitleColor = ColorTitle

	g.router = input.NewRouter(cfg.InputSettings(), source)
	g.unbind = g.router.Bind(g)
	return g, nil
}

// Close unbinds input. Further Update calls end the game loop.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	if g.unbind != nil {
		g.unbind()
		g.unbind = nil
	}
	log.Println("closed with", g.tiles.Len(), "tiles")
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.Close()
	}
	if g.closed {
		return ebiten.Termination
	}
	g.tick(g.now())
	g.updateCursor()
	return nil
}

// tick advances one frame: input, texture delivery, tweens, then the pan
// ease and addressing.
func (g *Game) tick(now time.Time) {
	dt := float32(0)
	if !g.lastTick.IsZero() {
		dt = float32(now.Sub(g.lastTick).Seconds())
		if dt > maxFrameStep {
			dt = maxFrameStep
		}
	}
	g.lastTick = now

	g.router.Update(now)
	if g.library.Poll() > 0 {
		g.attachPanelImage()
	}
	g.player.Update(dt)

	if g.camera.Step(now) {
		g.refresh(now)
	}
	g.updateDebug()
}

// refresh materialises every cell in the overscanned window around the
// current offset.
func (g *Game) refresh(now time.Time) {
	r := g.layout.Visible(g.camera.Current, float64(g.screenWidth), float64(g.screenHeight))
	if n := g.tiles.EnsureVisible(r.Cells()); n > 0 && g.ui.Debug.Visible {
		log.Println("refresh: created", n, "tiles, total", g.tiles.Len())
	}
	g.camera.MarkRefreshed(now)
}

// attachPanelImage hands a texture that arrived after expansion to the
// panel.
func (g *Game) attachPanelImage() {
	p := g.ui.Panel
	if p == nil || p.Image != nil {
		return
	}
	if t, ok := g.tiles.Get(p.Cell); ok && t.Ready {
		p.Image = t.Image
	}
}

func (g *Game) updateCursor() {
	shape := ebiten.CursorShapeMove
	if g.machine.Expanded() {
		shape = ebiten.CursorShapeDefault
	}
	if !g.cursorSet || shape != g.cursor {
		ebiten.SetCursorShape(shape)
		g.cursor = shape
		g.cursorSet = true
	}
}

func (g *Game) updateDebug() {
	if !g.ui.Debug.Visible {
		return
	}
	state := "idle"
	if rec, ok := g.machine.Active(); ok {
		state = fmt.Sprintf("expanded %s", rec.Cell.ID())
		if rec.Closing {
			state = fmt.Sprintf("closing %s", rec.Cell.ID())
		}
		if g.panelMoving() {
			state += " (tweening)"
		}
	}
	c := g.camera
	g.ui.Debug.Lines = []string{
		fmt.Sprintf("Offset: (%.1f, %.1f)", c.Current.X, c.Current.Y),
		fmt.Sprintf("Target: (%.1f, %.1f)", c.Target.X, c.Target.Y),
		fmt.Sprintf("Velocity: (%.3f, %.3f) px/ms", c.Velocity.X, c.Velocity.Y),
		fmt.Sprintf("Pan: %s  State: %s", c.Mode(), state),
		fmt.Sprintf("Tiles: %d  Loading: %d  Tweens: %d", g.tiles.Len(), g.library.Pending(), g.player.Len()),
		fmt.Sprintf("TPS: %.0f  FPS: %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
	}
}

// panelMoving reports whether the expanded element is mid-tween.
func (g *Game) panelMoving() bool {
	p := g.ui.Panel
	return p != nil && (g.player.Busy(&p.X) || g.player.Busy(&p.W))
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)
	g.drawBackground(screen)
	g.drawTiles(screen)
	g.ui.Draw(screen)

	// --- Save Screenshot ---
	if g.screenshotRequested {
		g.screenshotRequested = false
		g.saveScreenshot(screen)
	}
}

func (g *Game) saveScreenshot(screen *ebiten.Image) {
	name := fmt.Sprintf("screenshot-%s.png", g.now().Format("20060102-150405"))
	f, err := os.Create(name)
	if err != nil {
		log.Println("screenshot error:", err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, screen); err != nil {
		log.Println("screenshot error:", err)
		return
	}
	log.Println("Screenshot saved as", name)
}

// Layout tracks the window size every frame; the debounced reaction to a
// change arrives through Resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenWidth = outsideWidth
	g.screenHeight = outsideHeight
	g.router.Layout(outsideWidth, outsideHeight, g.now())
	return outsideWidth, outsideHeight
}

func (g *Game) viewport() expand.Viewport {
	return expand.Viewport{W: float64(g.screenWidth), H: float64(g.screenHeight)}
}
