package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/fps/config"
	"github.com/milk9111/fps/ecs"
	"github.com/milk9111/fps/ecs/entity"
	"github.com/milk9111/fps/ecs/system"
	"github.com/milk9111/fps/scenes"
	"golang.org/x/image/colornames"
)

// sceneview draws a scene's colliders from above, without a player.
type viewGame struct {
	world   *ecs.World
	physics *system.PhysicsSystem
	scene   *scenes.Scene
}

func (g *viewGame) Update() error {
	return nil
}

func (g *viewGame) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	system.DrawPhysicsDebug(g.physics.Space(), g.world, screen)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s    walls: %d    props: %d", g.scene.Name, len(g.scene.Walls), len(g.scene.Props)))
}

func (g *viewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 800, 800
}

func main() {
	root := flag.String("root", ".", "directory searched for scenes/ before the embedded copies")
	name := flag.String("scene", "scenes/map.scn", "scene to preview")
	flag.Parse()

	data, err := scenes.ReadFile(*root, *name)
	if err != nil {
		log.Fatal(err)
	}
	scene, err := scenes.Decode(data)
	if err != nil {
		log.Fatalf("%s: %v", *name, err)
	}

	w := ecs.NewWorld()
	if _, err := entity.SpawnScene(w, scene, *name); err != nil {
		log.Fatal(err)
	}
	physics := system.NewPhysicsSystem(config.Default().Physics, nil)
	w.Scheduler().OnUpdate(ecs.StateLoad, physics)
	// A zero step registers the static colliders without simulating.
	w.Step(0)

	ebiten.SetWindowSize(800, 800)
	ebiten.SetWindowTitle("Scene Preview: " + scene.Name)
	if err := ebiten.RunGame(&viewGame{world: w, physics: physics, scene: scene}); err != nil {
		log.Fatal(err)
	}
}
