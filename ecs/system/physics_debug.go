package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/fps/common"
	"github.com/milk9111/fps/ecs"
	"github.com/milk9111/fps/ecs/component"
	"golang.org/x/image/colornames"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 4
	// debugPixelsPerUnit scales the top-down map.
	debugPixelsPerUnit = 12
)

// DrawPhysicsDebug draws the physics space as a top-down map centered on the
// player, +Y pointing up the screen.
func DrawPhysicsDebug(space *cp.Space, w *ecs.World, screen *ebiten.Image) {
	if space == nil || w == nil || screen == nil {
		return
	}

	bounds := screen.Bounds()
	drawer := &physicsDebugDrawer{
		screen:  screen,
		static:  space.StaticBody,
		centerX: float64(bounds.Dx()) / 2,
		centerY: float64(bounds.Dy()) / 2,
		zoom:    debugPixelsPerUnit,
	}
	if player, ok := w.First(component.PlayerTagComponent.Kind()); ok {
		if transform, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
			drawer.origin = cp.Vector{X: transform.Translation.X(), Y: transform.Translation.Y()}
		}
		if movement, ok := ecs.Get(w, player, component.MovementComponent.Kind()); ok {
			drawer.facing = movement.Facing().Rotate(common.Forward)
			drawer.hasFacing = true
		}
	}
	cp.DrawSpace(space, drawer)
	drawer.drawFacing()
}

// DrawPlayerDebug prints the lifecycle state and the player's orientation and
// velocity.
func DrawPlayerDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	text := fmt.Sprintf("Frame: %d    Time: %.1fs    FPS: %.2f\nState: %s", w.Time().Frame(), w.Time().Elapsed(), ebiten.ActualFPS(), w.States().Current())

	if player, ok := w.First(component.PlayerTagComponent.Kind()); ok {
		if movement, ok := ecs.Get(w, player, component.MovementComponent.Kind()); ok {
			text += fmt.Sprintf("\nYaw: %.2f  Pitch: %.2f\nDirection: %.2f %.2f\nJump: %v",
				movement.Yaw, movement.Pitch, movement.Direction.X(), movement.Direction.Y(), movement.WantsToJump)
		}
		if rb, ok := ecs.Get(w, player, component.RigidBodyComponent.Kind()); ok {
			v := rb.Linvel
			text += fmt.Sprintf("\nVelocity: %.2f %.2f %.2f (%.2f)\nGrounded: %v",
				v.X(), v.Y(), v.Z(), common.Horizontal(v).Len(), rb.Grounded)
		}
		if transform, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
			p := transform.Translation
			text += fmt.Sprintf("\nPosition: %.2f %.2f %.2f", p.X(), p.Y(), p.Z())
		}
	}
	ebitenutil.DebugPrintAt(screen, text, 10, 10)
}

type physicsDebugDrawer struct {
	screen           *ebiten.Image
	static           *cp.Body
	origin           cp.Vector
	centerX, centerY float64
	zoom             float64

	facing    mgl64.Vec3
	hasFacing bool
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	d.drawCircle(pos, radius, outline)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
	if radius > 0 {
		d.drawCircle(a, radius, outline)
		d.drawCircle(b, radius, outline)
	}
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], outline)
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	half := size / 2 / d.zoom
	d.drawLine(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, fill)
	d.drawLine(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, fill)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return toFColor(colornames.Lime)
}

func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape.Body() == d.static {
		return toFColor(colornames.Slategray)
	}
	return toFColor(colornames.Gold)
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return toFColor(colornames.Orange)
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return toFColor(colornames.Red)
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawFacing() {
	if !d.hasFacing {
		return
	}
	tip := cp.Vector{X: d.origin.X + d.facing[0]*2, Y: d.origin.Y + d.facing[1]*2}
	d.drawLine(d.origin, tip, toFColor(colornames.Red))
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	x1, y1 := d.toScreen(a)
	x2, y2 := d.toScreen(b)
	vector.StrokeLine(d.screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, toNRGBA(c), true)
}

func (d *physicsDebugDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := 0; i < len(verts); i++ {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *physicsDebugDrawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, c)
}

func (d *physicsDebugDrawer) toScreen(v cp.Vector) (float64, float64) {
	return d.centerX + (v.X-d.origin.X)*d.zoom, d.centerY - (v.Y-d.origin.Y)*d.zoom
}

func toFColor(c color.RGBA) cp.FColor {
	return cp.FColor{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
