package config

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only ECS layer; nothing in the sandbox draws through donburi layers.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	JumpSpeed          float32 `yaml:"jump_speed"`
	Acceleration       float32 `yaml:"acceleration"`         // units/s^2 added along the movement intent
	MaxHorizontalSpeed float32 `yaml:"max_horizontal_speed"` // XZ speed clamp, 0 disables it

	// Look
	LookSensitivity float32 `yaml:"look_sensitivity"` // degrees per raw mouse unit
	InitialYaw      float32 `yaml:"initial_yaw"`      // degrees, -90 faces +X
	MaxPitch        float32 `yaml:"max_pitch"`        // degrees

	// Ground detection
	GroundProbeDistance float32 `yaml:"ground_probe_distance"`

	// Body
	Radius        float32    `yaml:"radius"`
	Mass          float32    `yaml:"mass"`
	Friction      float32    `yaml:"friction"`
	LinearDamping float32    `yaml:"linear_damping"`
	SpawnPosition mgl32.Vec3 `yaml:"spawn_position,flow"`

	// Weapons
	RocketRange       float32 `yaml:"rocket_range"`
	BallSpawnOffset   float32 `yaml:"ball_spawn_offset"` // along camera forward
	DeleteProbeOffset float32 `yaml:"delete_probe_offset"`
	DeleteProbeRadius float32 `yaml:"delete_probe_radius"`
	DeleteRange       float32 `yaml:"delete_range"`
}

// CameraConfig contains first-person camera values
type CameraConfig struct {
	Offset float32 `yaml:"offset"` // height above the player origin
}

// BlastConfig contains rocket blast values
type BlastConfig struct {
	Duration float32 `yaml:"duration"` // seconds
	Radius   float32 `yaml:"radius"`
	Force    float32 `yaml:"force"`
}

// PropConfig contains ball gun prop values
type PropConfig struct {
	Radius         float32 `yaml:"radius"`
	LaunchSpeed    float32 `yaml:"launch_speed"`
	Mass           float32 `yaml:"mass"`
	LinearDamping  float32 `yaml:"linear_damping"`
	AngularDamping float32 `yaml:"angular_damping"`
	Restitution    float32 `yaml:"restitution"`
	Friction       float32 `yaml:"friction"`
}

// PhysicsConfig contains physics world values
type PhysicsConfig struct {
	Gravity        mgl32.Vec3 `yaml:"gravity,flow"`
	FixedStep      float32    `yaml:"fixed_step"` // seconds per substep
	MaxSubsteps    int        `yaml:"max_substeps"`
	Bounds         float32    `yaml:"bounds"`    // half-size of the broadphase grid on X and Z
	CellSize       int        `yaml:"cell_size"` // broadphase cell size
	FloorSize      float32    `yaml:"floor_size"`
	GroundFriction float32    `yaml:"ground_friction"`
}

// WindowConfig contains window values used by the play command
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowMap bool `yaml:"show_map"` // draw the top-down body map in the play window
}

// Global configuration instances
var Player PlayerConfig
var Camera CameraConfig
var Blast BlastConfig
var Prop PropConfig
var Physics PhysicsConfig
var Window WindowConfig
var Debug DebugConfig

func init() {
	Reset()
}

// Reset restores every configuration instance to its defaults.
func Reset() {
	Player = PlayerConfig{
		// Movement
		JumpSpeed:          10.0,
		Acceleration:       30.0,
		MaxHorizontalSpeed: 12.0,

		// Look
		LookSensitivity: 0.05,
		InitialYaw:      -90.0,
		MaxPitch:        90.0,

		GroundProbeDistance: 0.1,

		// Body
		Radius:        0.5,
		Mass:          10.0,
		Friction:      0.7,
		LinearDamping: 0.0,
		SpawnPosition: mgl32.Vec3{0, 0.5, 0},

		// Weapons
		RocketRange:       1000.0,
		BallSpawnOffset:   0.8,
		DeleteProbeOffset: 0.6,
		DeleteProbeRadius: 0.25,
		DeleteRange:       5.0,
	}

	Camera = CameraConfig{
		Offset: 0.5,
	}

	Blast = BlastConfig{
		Duration: 0.25,
		Radius:   1.0,
		Force:    1000.0,
	}

	Prop = PropConfig{
		Radius:         0.15,
		LaunchSpeed:    15.0,
		Mass:           0.5,
		LinearDamping:  1.0,
		AngularDamping: 1.0,
		Restitution:    0.3,
		Friction:       0.5,
	}

	Physics = PhysicsConfig{
		Gravity:        mgl32.Vec3{0, -9.81, 0},
		FixedStep:      1.0 / 60.0,
		MaxSubsteps:    8,
		Bounds:         256,
		CellSize:       4,
		FloorSize:      100,
		GroundFriction: 0.7,
	}

	Window = WindowConfig{
		Width:  1280,
		Height: 720,
		Title:  "rocketbox",
		TPS:    60,
	}

	Debug = DebugConfig{
		ShowMap: true,
	}
}
