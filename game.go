package main

import (
	"fmt"
	"image/color"

	"github.com/automoto/rocketbox/components"
	cfg "github.com/automoto/rocketbox/config"
	"github.com/automoto/rocketbox/physics"
	"github.com/automoto/rocketbox/scenes"
	"github.com/automoto/rocketbox/systems"
	"github.com/automoto/rocketbox/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
)

type Game struct {
	sandbox *scenes.Sandbox
	cursor  ebiten.CursorModeType
	showMap bool
}

func NewGame(sandbox *scenes.Sandbox) *Game {
	return &Game{
		sandbox: sandbox,
		cursor:  ebiten.CursorModeVisible,
		showMap: cfg.Debug.ShowMap,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showMap = !g.showMap
	}

	g.sandbox.Update()
	g.applyCursor()
	return nil
}

// applyCursor forwards the sandbox cursor request to the window.
func (g *Game) applyCursor() {
	cursor := systems.GetOrCreateCursor(g.sandbox.ECS())

	mode := ebiten.CursorModeVisible
	if cursor.Captured {
		mode = ebiten.CursorModeCaptured
	} else if !cursor.Visible {
		mode = ebiten.CursorModeHidden
	}

	if mode != g.cursor {
		ebiten.SetCursorMode(mode)
		g.cursor = mode
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if g.showMap {
		g.drawMap(screen)
	}

	st := g.sandbox.Stats()
	state := "active"
	if st.Paused {
		state = "paused (Esc to play)"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"%s\npos %.2f %.2f %.2f\nvel %.2f %.2f %.2f\nyaw %.1f pitch %.1f grounded %t\nprops %d blasts %d\nTPS %.0f",
		state,
		st.Position.X(), st.Position.Y(), st.Position.Z(),
		st.Velocity.X(), st.Velocity.Y(), st.Velocity.Z(),
		st.Yaw, st.Pitch, st.Grounded,
		st.LiveProps, st.Blasts,
		ebiten.ActualTPS(),
	))
}

// drawMap renders a top-down view of every body around the player. World X
// runs right and world Z runs down.
func (g *Game) drawMap(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	scale := float32(height) / cfg.Physics.FloorSize
	center, _ := g.sandbox.Engine().Position(g.sandbox.Player())
	originX := float32(width)/2 - center.X()*scale
	originY := float32(height)/2 - center.Z()*scale

	components.Body.Each(g.sandbox.World(), func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		if !body.Collider.Bounded() {
			return
		}
		pos := components.Transform.Get(entry).Position

		var hx, hz float32
		switch body.Collider.Kind {
		case physics.ShapeCuboid:
			hx, hz = body.Collider.HalfExtents.X(), body.Collider.HalfExtents.Z()
		default:
			hx, hz = body.Collider.Radius, body.Collider.Radius
		}

		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		switch {
		case entry.HasComponent(tags.Player):
			c = color.RGBA{0, 0, 255, 255}
		case entry.HasComponent(tags.Blast):
			c = color.RGBA{255, 128, 0, 255}
		case entry.HasComponent(tags.Box):
			c = color.RGBA{100, 100, 100, 255}
		case entry.HasComponent(tags.Prop):
			c = color.RGBA{0, 255, 0, 255}
		}

		x := originX + (pos.X()-hx)*scale
		y := originY + (pos.Z()-hz)*scale
		w := 2 * hx * scale
		h := 2 * hz * scale
		if w < 2 {
			w = 2
		}
		if h < 2 {
			h = 2
		}
		vector.DrawFilledRect(screen, x, y, w, h, c, false)
	})
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.Window.Width, cfg.Window.Height
}
