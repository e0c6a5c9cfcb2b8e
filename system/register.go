package system

import "github.com/lixenwraith/datastorm/engine"

// RegisterAll wires the full system set into a context in priority order
// and runs their initial session reset
func RegisterAll(ctx *engine.GameContext) {
	systems := []engine.System{
		NewMotionSystem(ctx.World),
		NewCollisionSystem(ctx.World),
		NewScoreSystem(ctx.World),
		NewLifecycleSystem(ctx.World),
		NewPlayerSystem(ctx.World),
		NewSpawnSystem(ctx.World),
		NewTimerSystem(ctx.World),
		NewDeathSystem(ctx.World),
		NewAudioSystem(ctx.World),
	}
	ctx.RegisterSystems(systems...)
	for _, s := range systems {
		s.Init()
	}
}
