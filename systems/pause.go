package systems

import (
	"github.com/automoto/rocketbox/archetypes"
	"github.com/automoto/rocketbox/components"
	cfg "github.com/automoto/rocketbox/config"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// updatePause toggles the player between paused and active on the pause
// edge and keeps the cursor request in sync.
func updatePause(e *ecs.ECS, input *components.InputData, player *components.PlayerData) {
	if GetAction(input, cfg.ActionPause).JustPressed {
		player.Paused = !player.Paused
		log.Debug().Bool("paused", player.Paused).Msg("Pause toggled")
	}

	cursor := GetOrCreateCursor(e)
	cursor.Captured = !player.Paused
	cursor.Visible = player.Paused
}

// GetOrCreateCursor returns the singleton Cursor component, creating if needed.
func GetOrCreateCursor(ecs *ecs.ECS) *components.CursorData {
	ent, ok := components.Cursor.First(ecs.World)
	if !ok {
		ent = archetypes.Cursor.Spawn(ecs)
		components.Cursor.SetValue(ent, components.CursorData{
			Captured: false,
			Visible:  true,
		})
	}
	return components.Cursor.Get(ent)
}
