package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/mergebox/pkg/components"
	"github.com/decker502/mergebox/pkg/ecs"
	"github.com/decker502/mergebox/pkg/entities"
	"github.com/decker502/mergebox/pkg/types"
)

// ErrInvalidBoxSize 盒子尺寸无法容纳两侧墙壁
var ErrInvalidBoxSize = errors.New("invalid game box size")

// GameBoxState 盒子生命周期状态
type GameBoxState int

const (
	// GameBoxUninitialized 尚未创建盒子和边界
	GameBoxUninitialized GameBoxState = iota
	// GameBoxActive 边界已创建，每帧跟随盒子尺寸
	GameBoxActive
)

// String 返回状态名称
func (s GameBoxState) String() string {
	switch s {
	case GameBoxUninitialized:
		return "uninitialized"
	case GameBoxActive:
		return "active"
	default:
		return fmt.Sprintf("GameBoxState(%d)", int(s))
	}
}

// BoundaryWorld 盒子系统需要的物理接口
type BoundaryWorld interface {
	entities.BodyFactory
	SetBoundaryShape(id ecs.EntityID, shape components.BoundaryShape) error
}

// GameBoxSystem 管理盒子及其四个边界元素
//
// 职责：
//   - Activate 时创建盒子实体与左墙、右墙、地板、天花板四个边界实体
//   - 每帧根据盒子当前尺寸重新计算并应用所有边界的位置和尺寸
//
// 边界几何永远从盒子尺寸现算，Resize 之后下一帧自动跟随，无需重建实体。
type GameBoxSystem struct {
	entityManager *ecs.EntityManager
	world         BoundaryWorld

	state      GameBoxState
	boxID      ecs.EntityID
	boundaries map[types.BoundaryKind]ecs.EntityID

	// 初始尺寸，Activate 时使用
	width, height, wallThickness float64
}

// NewGameBoxSystem 创建盒子系统
//
// 参数:
//   - em: 实体管理器
//   - world: 物理世界（创建与更新边界刚体）
//   - width, height: 盒子外尺寸（世界单位）
//   - wallThickness: 墙壁厚度
//
// 返回:
//   - *GameBoxSystem: 处于 Uninitialized 状态的系统
func NewGameBoxSystem(em *ecs.EntityManager, world BoundaryWorld, width, height, wallThickness float64) *GameBoxSystem {
	return &GameBoxSystem{
		entityManager: em,
		world:         world,
		state:         GameBoxUninitialized,
		boundaries:    make(map[types.BoundaryKind]ecs.EntityID, len(types.AllBoundaryKinds)),
		width:         width,
		height:        height,
		wallThickness: wallThickness,
	}
}

// Activate 创建盒子与四个边界（Uninitialized → Active）
// 已激活时重复调用不做任何事
func (s *GameBoxSystem) Activate() error {
	if s.state == GameBoxActive {
		return nil
	}
	if err := validateBoxSize(s.width, s.height, s.wallThickness); err != nil {
		return err
	}

	s.boxID = entities.NewGameBoxEntity(s.entityManager, s.width, s.height, s.wallThickness)
	box, _ := ecs.GetComponent[*components.GameBoxComponent](s.entityManager, s.boxID)

	for _, kind := range types.AllBoundaryKinds {
		id, err := entities.NewBoundaryEntity(s.entityManager, s.world, box, kind)
		if err != nil {
			return fmt.Errorf("failed to activate game box: %w", err)
		}
		s.boundaries[kind] = id
	}

	s.state = GameBoxActive
	log.Printf("[GameBoxSystem] Activated box %d (%.0fx%.0f, wall %.1f)", s.boxID, s.width, s.height, s.wallThickness)
	return nil
}

// Update 根据盒子当前尺寸重新应用所有边界的几何
func (s *GameBoxSystem) Update(deltaTime float64) {
	if s.state != GameBoxActive {
		return
	}

	box, ok := ecs.GetComponent[*components.GameBoxComponent](s.entityManager, s.boxID)
	if !ok {
		return
	}

	for _, kind := range types.AllBoundaryKinds {
		id, ok := s.boundaries[kind]
		if !ok {
			continue
		}
		shape := box.BoundaryGeometry(kind)

		if err := s.world.SetBoundaryShape(id, shape); err != nil {
			log.Printf("[GameBoxSystem] Warning: failed to update %s: %v", kind, err)
			continue
		}
		if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
			pos.X = shape.Center.X
			pos.Y = shape.Center.Y
		}
	}
}

// Resize 修改盒子尺寸，边界在下一次 Update 时跟随
func (s *GameBoxSystem) Resize(width, height float64) error {
	if err := validateBoxSize(width, height, s.wallThickness); err != nil {
		return err
	}
	s.width, s.height = width, height

	if box, ok := ecs.GetComponent[*components.GameBoxComponent](s.entityManager, s.boxID); ok {
		box.Width = width
		box.Height = height
	}
	log.Printf("[GameBoxSystem] Resized box to %.0fx%.0f", width, height)
	return nil
}

// State 返回当前生命周期状态
func (s *GameBoxSystem) State() GameBoxState {
	return s.state
}

// BoxID 返回盒子实体ID，未激活时为 InvalidEntity
func (s *GameBoxSystem) BoxID() ecs.EntityID {
	return s.boxID
}

// BoundaryID 返回指定边界元素的实体ID
func (s *GameBoxSystem) BoundaryID(kind types.BoundaryKind) (ecs.EntityID, bool) {
	id, ok := s.boundaries[kind]
	return id, ok
}

func validateBoxSize(width, height, wallThickness float64) error {
	if wallThickness < 0 || width <= 2*wallThickness || height <= 2*wallThickness {
		return fmt.Errorf("%w: %.1fx%.1f with wall %.1f", ErrInvalidBoxSize, width, height, wallThickness)
	}
	return nil
}

// mustGameBox 返回唯一的盒子组件
// 盒子不存在属于调用顺序错误，直接 panic
func mustGameBox(em *ecs.EntityManager) *components.GameBoxComponent {
	ids := ecs.GetEntitiesWith1[*components.GameBoxComponent](em)
	if len(ids) == 0 {
		panic("game box not found: GameBoxSystem.Activate must run first")
	}
	box, _ := ecs.GetComponent[*components.GameBoxComponent](em, ids[0])
	return box
}
