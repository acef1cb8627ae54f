package system

import (
	"github.com/milk9111/fps/assets"
	"github.com/milk9111/fps/config"
	"github.com/milk9111/fps/ecs"
	"github.com/milk9111/fps/ecs/component"
	"github.com/milk9111/fps/logger"
	"github.com/milk9111/fps/scenes"
	"go.uber.org/zap"
)

// LoaderSystem requests the primary scene when the world enters the load
// phase and registers it as pending.
type LoaderSystem struct {
	scenePath string
	log       *zap.Logger
}

func NewLoaderSystem(scenePath string, log *zap.Logger) *LoaderSystem {
	if log == nil {
		log = logger.Nop()
	}
	return &LoaderSystem{scenePath: scenePath, log: log.Named("loader")}
}

func (s *LoaderSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	server, ok := ecs.GetResource(w, component.AssetServerComponent.Kind())
	if !ok || server.Server == nil {
		s.log.Error("no asset server, nothing to load")
		return
	}

	handle := assets.Load[scenes.Scene](server.Server, s.scenePath)
	if err := ecs.SetResource(w, component.SceneHandleComponent.Kind(), &component.SceneHandle{Handle: handle}); err != nil {
		s.log.Error("store scene handle", zap.Error(err))
		return
	}

	pending := pendingAssets(w)
	pending.Set.Add(handle.Untyped())
	s.log.Info("loading", zap.String("scene", handle.Path), zap.Int("pending", pending.Set.Len()))
}

func pendingAssets(w *ecs.World) *component.PendingAssets {
	if pending, ok := ecs.GetResource(w, component.PendingAssetsComponent.Kind()); ok && pending.Set != nil {
		return pending
	}
	pending := &component.PendingAssets{
		Set:      assets.NewPendingSet(),
		Reported: make(map[assets.HandleID]struct{}),
	}
	_ = ecs.SetResource(w, component.PendingAssetsComponent.Kind(), pending)
	return pending
}

// TransitionSystem moves the world to StateMain once no pending asset is
// still loading. Failed assets are logged once each and, unless the policy is
// FailureBlock, count as done.
type TransitionSystem struct {
	policy config.FailurePolicy
	log    *zap.Logger
}

func NewTransitionSystem(policy config.FailurePolicy, log *zap.Logger) *TransitionSystem {
	if log == nil {
		log = logger.Nop()
	}
	if policy == "" {
		policy = config.FailurePass
	}
	return &TransitionSystem{policy: policy, log: log.Named("lifecycle")}
}

func (s *TransitionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	pending := pendingAssets(w)
	var failed []assets.UntypedHandle
	if pending.Set.Len() > 0 {
		server, ok := ecs.GetResource(w, component.AssetServerComponent.Kind())
		if !ok || server.Server == nil {
			return
		}
		if pending.Set.CountLoading(server.Server) > 0 {
			return
		}
		failed = pending.Set.Failed(server.Server)
		s.report(server.Server, pending, failed)
	}

	if len(failed) > 0 && s.policy == config.FailureBlock {
		return
	}

	if next, ok := w.States().Pending(); ok && next == ecs.StateMain {
		return
	}
	if err := w.States().Set(ecs.StateMain); err != nil {
		s.log.Debug("transition deferred", zap.Error(err))
		return
	}
	s.log.Info("assets settled",
		zap.Int("pending", pending.Set.Len()),
		zap.Int("failed", len(failed)),
		zap.Stringer("next", ecs.StateMain))
}

func (s *TransitionSystem) report(server *assets.Server, pending *component.PendingAssets, failed []assets.UntypedHandle) {
	if pending.Reported == nil {
		pending.Reported = make(map[assets.HandleID]struct{})
	}
	for _, h := range failed {
		if _, seen := pending.Reported[h.ID]; seen {
			continue
		}
		pending.Reported[h.ID] = struct{}{}
		s.log.Warn("asset failed to load",
			zap.String("path", h.Path),
			zap.String("policy", string(s.policy)),
			zap.Error(server.Err(h)))
	}
}
