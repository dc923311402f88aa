package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/mergebox/pkg/components"
	"github.com/decker502/mergebox/pkg/config"
	"github.com/decker502/mergebox/pkg/ecs"
	"github.com/decker502/mergebox/pkg/types"
	"github.com/decker502/mergebox/pkg/utils"
)

var (
	wallColor    = color.RGBA{R: 0x8a, G: 0x8f, B: 0x98, A: 0xff}
	ceilingColor = color.RGBA{R: 0x8a, G: 0x8f, B: 0x98, A: 0x40}
	outlineColor = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
)

// previewStrokeWidth 预览轮廓线宽（屏幕像素）
const previewStrokeWidth = 2

// screenRect 屏幕坐标下的矩形（左上角 + 宽高）
type screenRect struct {
	X, Y, W, H float32
}

// RenderSystem 绘制盒子、球、合并光环与投放预览
//
// 绘制顺序：
//  1. 墙壁和地板（实心），天花板（半透明，表示仅感应）
//  2. 球（按等级颜色填充并描边）
//  3. 合并光环（随生命周期放大并淡出）
//  4. 投放预览（最小等级球的轮廓）
type RenderSystem struct {
	entityManager *ecs.EntityManager
	tiers         *config.TierTable
	camera        utils.Camera
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, tiers *config.TierTable, camera utils.Camera) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		tiers:         tiers,
		camera:        camera,
	}
}

// Draw 绘制游戏世界
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawBoundaries(screen)
	s.drawBalls(screen)
	s.drawMergeEffects(screen)
	s.drawPreview(screen)
}

func (s *RenderSystem) drawBoundaries(screen *ebiten.Image) {
	boxes := ecs.GetEntitiesWith1[*components.GameBoxComponent](s.entityManager)
	if len(boxes) == 0 {
		return
	}
	box, _ := ecs.GetComponent[*components.GameBoxComponent](s.entityManager, boxes[0])

	for _, id := range ecs.GetEntitiesWith1[*components.BoundaryComponent](s.entityManager) {
		boundary, _ := ecs.GetComponent[*components.BoundaryComponent](s.entityManager, id)
		shape := box.BoundaryGeometry(boundary.Kind)

		r := s.boundaryRect(shape)
		clr := wallColor
		if shape.Sensor {
			clr = ceilingColor
		}
		vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, clr, false)
	}
}

func (s *RenderSystem) drawBalls(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.BallComponent, *components.PositionComponent](s.entityManager) {
		ball, _ := ecs.GetComponent[*components.BallComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		tier := s.tiers.TierAt(ball.Tier)

		cx, cy := s.camera.WorldToScreen(types.Vec2{X: pos.X, Y: pos.Y})
		r := float32(s.camera.WorldLength(tier.Radius))
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), r, tier.Color, true)
		vector.StrokeCircle(screen, float32(cx), float32(cy), r, 1, outlineColor, true)
	}
}

func (s *RenderSystem) drawMergeEffects(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith3[*components.MergeEffectComponent, *components.LifetimeComponent, *components.PositionComponent](s.entityManager) {
		effect, _ := ecs.GetComponent[*components.MergeEffectComponent](s.entityManager, id)
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		radius, clr := mergeEffectFrame(effect, lifetime.Progress())
		cx, cy := s.camera.WorldToScreen(types.Vec2{X: pos.X, Y: pos.Y})
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(s.camera.WorldLength(radius)), 3, clr, true)
	}
}

func (s *RenderSystem) drawPreview(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.SpawnPreviewComponent, *components.PositionComponent](s.entityManager) {
		preview, _ := ecs.GetComponent[*components.SpawnPreviewComponent](s.entityManager, id)
		if !preview.Visible {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		tier := s.tiers.TierAt(SpawnTier)

		clr := color.NRGBA{R: tier.Color.R, G: tier.Color.G, B: tier.Color.B, A: uint8(preview.Alpha * 255)}
		cx, cy := s.camera.WorldToScreen(types.Vec2{X: pos.X, Y: pos.Y})
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(s.camera.WorldLength(tier.Radius)), previewStrokeWidth, clr, true)
	}
}

// DrawHUD 在左上角输出调试信息（球数、合并次数、等级图例）
func (s *RenderSystem) DrawHUD(screen *ebiten.Image, merges int) {
	ebitenutil.DebugPrintAt(screen, s.hudText(merges), 8, 8)
}

func (s *RenderSystem) hudText(merges int) string {
	balls := len(ecs.GetEntitiesWith1[*components.BallComponent](s.entityManager))

	var b strings.Builder
	fmt.Fprintf(&b, "balls: %d  merges: %d\n", balls, merges)
	for i := 0; i < s.tiers.Len(); i++ {
		tier := s.tiers.TierAt(types.TierIndex(i))
		fmt.Fprintf(&b, "%d %-8s r=%.0f m=%.2f\n", i, tier.VisualID, tier.Radius, tier.Mass)
	}
	return b.String()
}

// boundaryRect 把边界几何转换为屏幕矩形
func (s *RenderSystem) boundaryRect(shape components.BoundaryShape) screenRect {
	x, y := s.camera.WorldToScreen(types.Vec2{
		X: shape.Center.X - shape.HalfExtents.X,
		Y: shape.Center.Y + shape.HalfExtents.Y,
	})
	return screenRect{
		X: float32(x),
		Y: float32(y),
		W: float32(s.camera.WorldLength(2 * shape.HalfExtents.X)),
		H: float32(s.camera.WorldLength(2 * shape.HalfExtents.Y)),
	}
}

// mergeEffectFrame 计算光环在生命周期进度 p 时的半径与颜色
// 半径按缓出曲线扩散，透明度线性衰减
func mergeEffectFrame(effect *components.MergeEffectComponent, p float64) (float64, color.NRGBA) {
	radius := utils.Lerp(effect.StartRadius, effect.EndRadius, utils.EaseOutCubic(p))
	clr := color.NRGBA{
		R: effect.Color.R,
		G: effect.Color.G,
		B: effect.Color.B,
		A: uint8((1 - p) * 255),
	}
	return radius, clr
}
