package scenes

import (
	"fmt"

	"github.com/automoto/rocketbox/components"
	cfg "github.com/automoto/rocketbox/config"
	"github.com/automoto/rocketbox/events"
	"github.com/automoto/rocketbox/physics"
	"github.com/automoto/rocketbox/systems"
	"github.com/automoto/rocketbox/systems/factory"
	"github.com/automoto/rocketbox/tags"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Sandbox owns the ECS world, the physics engine and the player handles.
type Sandbox struct {
	ecs *ecs.ECS
	ctx *systems.Context
}

// Stats is a snapshot of the sandbox for HUDs and logs.
type Stats struct {
	Frame     uint64
	Paused    bool
	Grounded  bool
	Position  mgl32.Vec3
	Velocity  mgl32.Vec3
	Yaw       float32 // degrees
	Pitch     float32 // degrees
	LiveProps int
	Blasts    int
}

// NewSandbox spawns the player and camera into engine and wires the systems
// in frame order. The caller owns any static geometry.
func NewSandbox(engine physics.Engine, src systems.InputSource) (*Sandbox, error) {
	ecs := ecs.NewECS(donburi.NewWorld())

	player, err := factory.CreatePlayer(ecs, engine, cfg.Player.SpawnPosition)
	if err != nil {
		return nil, err
	}
	camera := factory.CreateCamera(ecs, player)

	ctx := &systems.Context{
		Engine: engine,
		Player: player.Entity(),
		Camera: camera.Entity(),
	}
	systems.GetOrCreatePropCounter(ecs)
	systems.GetOrCreateCursor(ecs)

	events.ShotRocket.Subscribe(ecs.World, systems.SpawnBlastOnRocket(ecs, ctx))
	events.ShotBall.Subscribe(ecs.World, systems.SpawnPropOnShot(ecs, ctx))
	events.DeleteBall.Subscribe(ecs.World, systems.DeletePropOnHit(ecs, ctx))

	ecs.AddSystem(systems.UpdateInput(src))
	ecs.AddSystem(systems.UpdatePlayer(ctx))
	ecs.AddSystem(systems.UpdateBlasts(ctx))
	ecs.AddSystem(systems.UpdateBallGun(ctx))
	ecs.AddSystem(systems.UpdatePhysics(ctx))
	ecs.AddSystem(systems.UpdateCamera(ctx))

	return &Sandbox{ecs: ecs, ctx: ctx}, nil
}

// NewDefaultSandbox builds a physics world from the active configuration with
// a floor plane at y=0.
func NewDefaultSandbox(src systems.InputSource) (*Sandbox, error) {
	world := physics.NewWorld(physics.Config{
		Gravity:     cfg.Physics.Gravity,
		FixedStep:   cfg.Physics.FixedStep,
		MaxSubsteps: cfg.Physics.MaxSubsteps,
		Bounds:      cfg.Physics.Bounds,
		CellSize:    cfg.Physics.CellSize,
	})

	sb, err := NewSandbox(world, src)
	if err != nil {
		return nil, err
	}
	if _, err := factory.CreateFloor(sb.ecs, world, 0, cfg.Physics.GroundFriction); err != nil {
		return nil, fmt.Errorf("could not build default sandbox: %w", err)
	}
	return sb, nil
}

// Update runs one frame. Triggers still queued at the end are handed to
// their subscribers so none outlive the frame.
func (s *Sandbox) Update() {
	s.ecs.Update()
	events.Flush(s.ecs.World)
	s.ctx.Frame++
}

// AddBox adds a static box to the scene.
func (s *Sandbox) AddBox(center, halfExtents mgl32.Vec3) (donburi.Entity, error) {
	box, err := factory.CreateBox(s.ecs, s.ctx.Engine, center, halfExtents, cfg.Physics.GroundFriction)
	if err != nil {
		var none donburi.Entity
		return none, err
	}
	return box.Entity(), nil
}

func (s *Sandbox) ECS() *ecs.ECS {
	return s.ecs
}

func (s *Sandbox) World() donburi.World {
	return s.ecs.World
}

func (s *Sandbox) Engine() physics.Engine {
	return s.ctx.Engine
}

func (s *Sandbox) Player() donburi.Entity {
	return s.ctx.Player
}

func (s *Sandbox) Camera() donburi.Entity {
	return s.ctx.Camera
}

// Stats reads the current sandbox state.
func (s *Sandbox) Stats() Stats {
	w := s.ecs.World
	player := components.Player.Get(w.Entry(s.ctx.Player))
	pos, _ := s.ctx.Engine.Position(s.ctx.Player)
	vel, _ := s.ctx.Engine.Velocity(s.ctx.Player)

	stats := Stats{
		Frame:     s.ctx.Frame,
		Paused:    player.Paused,
		Grounded:  player.Grounded,
		Position:  pos,
		Velocity:  vel,
		Yaw:       mgl32.RadToDeg(player.Yaw),
		Pitch:     mgl32.RadToDeg(player.Pitch),
		LiveProps: systems.GetOrCreatePropCounter(s.ecs).Live,
	}
	tags.Blast.Each(w, func(*donburi.Entry) {
		stats.Blasts++
	})
	return stats
}

// LogStats writes a one-line summary at debug level.
func (s *Sandbox) LogStats() {
	st := s.Stats()
	log.Debug().
		Uint64("frame", st.Frame).
		Bool("paused", st.Paused).
		Bool("grounded", st.Grounded).
		Float32("y", st.Position.Y()).
		Int("props", st.LiveProps).
		Int("blasts", st.Blasts).
		Msg("Sandbox")
}
