package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"poster-wall/expand"
	"poster-wall/pool"
	"poster-wall/tween"
	"poster-wall/ui"
)

// run applies the side effects of a state transition in order.
func (g *Game) run(cmds []expand.Command) {
	for _, c := range cmds {
		g.apply(c)
	}
}

func (g *Game) apply(c expand.Command) {
	switch c.Kind {
	case expand.FreezePan:
		g.camera.Freeze()
	case expand.UnfreezePan:
		g.camera.Unfreeze()
	case expand.ResetVelocity:
		g.camera.ResetVelocity()

	case expand.HideTile:
		g.tiles.Hide(c.Cell)
	case expand.ShowTile:
		g.tiles.Show(c.Cell)

	case expand.SetTitle:
		g.ui.Title.Set(&g.player, c.Title)
	case expand.TitleIn:
		g.player.DelayedCall(float32(c.Timing.Delay), func() {
			// A collapse inside the delay wins over the reveal.
			if rec, ok := g.machine.Active(); ok && !rec.Closing {
				g.ui.Title.In(&g.player)
			}
		})
	case expand.TitleOut:
		g.ui.Title.Out(&g.player)

	case expand.FadeSiblings:
		g.fadeSiblings(c, 0)
	case expand.RestoreSiblings:
		g.fadeSiblings(c, 1)

	case expand.CreateExpanded:
		g.ui.Panel = ui.NewPanel(c.Cell, c.ContentIndex, g.tileImage(c), c.Rect)
	case expand.TweenExpanded:
		g.tweenPanel(c)
	case expand.RemoveExpanded:
		if p := g.ui.Panel; p != nil {
			g.player.Kill(&p.X)
			g.player.Kill(&p.Y)
			g.player.Kill(&p.W)
			g.player.Kill(&p.H)
			g.ui.Panel = nil
		}

	case expand.ShowOverlay:
		g.ui.Overlay.Active = true
		g.player.Play(g.timed(c.Timing, tween.To(&g.ui.Overlay.Alpha, 1)))
	case expand.HideOverlay:
		g.ui.Overlay.Active = false
		g.player.Play(g.timed(c.Timing, tween.To(&g.ui.Overlay.Alpha, 0)))

	default:
		log.Println("expansion: unhandled command", c.Kind)
	}
}

// timed builds a tween from a duration, delay and named easing.
func (g *Game) timed(t expand.Timing, props ...tween.Prop) *tween.Tween {
	return tween.New(float32(t.Duration), g.eases.Get(t.Ease), props...).Delay(float32(t.Delay))
}

func (g *Game) fadeSiblings(c expand.Command, alpha float64) {
	g.tiles.Each(func(t *pool.Tile) {
		if t.Cell == c.Cell {
			return
		}
		g.player.Play(g.timed(c.Timing, tween.To(&t.Alpha, alpha)))
	})
}

func (g *Game) tileImage(c expand.Command) *ebiten.Image {
	if t, ok := g.tiles.Get(c.Cell); ok {
		return t.Image
	}
	return nil
}

// tweenPanel moves the expanded panel to c.Rect. A notifying tween
// finishes the collapse when it lands, even if the panel is already gone.
func (g *Game) tweenPanel(c expand.Command) {
	p := g.ui.Panel
	if p == nil {
		if c.Notify {
			g.finish()
		}
		return
	}
	tw := g.timed(c.Timing,
		tween.To(&p.X, c.Rect.X),
		tween.To(&p.Y, c.Rect.Y),
		tween.To(&p.W, c.Rect.W),
		tween.To(&p.H, c.Rect.H),
	)
	if c.Notify {
		tw.OnComplete(g.finish)
	}
	g.player.Play(tw)
}

func (g *Game) finish() {
	g.run(g.machine.Finish())
}
