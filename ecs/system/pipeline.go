package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/fps/config"
	"github.com/milk9111/fps/ecs"
	"github.com/milk9111/fps/logger"
	"github.com/milk9111/fps/prefabs"
	"go.uber.org/zap"
)

type Options struct {
	Input   InputSource
	Config  *config.Config
	Logger  *zap.Logger
	Watcher *prefabs.Watcher
	// Spawn overrides the prefab spawn position when set.
	Spawn *mgl64.Vec3
}

// Pipeline exposes the systems the host needs to reach after registration.
type Pipeline struct {
	Physics *PhysicsSystem
	Setup   *SetupSystem
}

// Register installs the load lifecycle and the per-frame player pipeline.
// Within StateMain the order is input, look, move intent, jump intent, look
// application, movement, jump, physics.
func Register(s *ecs.Scheduler, opts Options) *Pipeline {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	physics := NewPhysicsSystem(cfg.Physics, log)
	setup := NewSetupSystem(opts.Spawn, log)

	s.OnEnter(ecs.StateLoad, NewLoaderSystem(cfg.Assets.Scene, log))
	s.OnUpdate(ecs.StateLoad, NewTransitionSystem(cfg.Lifecycle.FailurePolicy, log))

	s.OnEnter(ecs.StateMain, setup)
	s.OnUpdate(ecs.StateMain,
		setup,
		NewPrefabReloadSystem(opts.Watcher, log),
		NewInputSystem(opts.Input),
		NewLookInputSystem(),
		NewMoveInputSystem(),
		NewJumpInputSystem(),
		NewApplyLookSystem(),
		NewApplyMovementSystem(),
		NewApplyJumpSystem(),
		physics,
	)

	return &Pipeline{Physics: physics, Setup: setup}
}
