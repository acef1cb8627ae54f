package component

import (
	"github.com/milk9111/fps/assets"
	"github.com/milk9111/fps/scenes"
)

// The types below live on the world's resource entity.

// AssetServer exposes the background loader to systems.
type AssetServer struct {
	Server *assets.Server
}

var AssetServerComponent = NewComponent[AssetServer]()

// SceneHandle is the primary scene requested on entering the load phase.
type SceneHandle struct {
	Handle assets.Handle[scenes.Scene]
}

var SceneHandleComponent = NewComponent[SceneHandle]()

// PendingAssets gates leaving the load phase.
type PendingAssets struct {
	Set *assets.PendingSet
	// Reported holds failed handles that were already logged.
	Reported map[assets.HandleID]struct{}
}

var PendingAssetsComponent = NewComponent[PendingAssets]()
