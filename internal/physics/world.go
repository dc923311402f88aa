// Package physics 封装 Box2D 刚体模拟，为游戏核心提供窄接口
//
// 游戏核心只做三件事：请求创建刚体、请求销毁刚体、在每帧模拟结束后读取
// 本帧开始接触的碰撞对。积分、碰撞检测、弹性等全部由 Box2D 完成。
//
// # 坐标与单位
//
// 对外一律使用世界单位（与渲染像素 1:1，盒子中心为原点，Y 轴向上），
// 内部按 PixelsPerMeter 换算为 Box2D 使用的米。
//
// # 碰撞批次
//
// Box2D 在 Step 期间通过 BeginContact 回调报告新接触。回调中世界处于锁定状态，
// 不能增删刚体，因此这里只把碰撞对追加到本帧批次中；调用方在 Step 返回后
// 通过 DrainCollisions 一次性取走整批事件，再统一执行销毁/生成。
package physics

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/ByteArena/box2d"

	"github.com/decker502/mergebox/pkg/components"
	"github.com/decker502/mergebox/pkg/ecs"
	"github.com/decker502/mergebox/pkg/types"
)

var (
	// ErrUnknownBody 实体没有对应的刚体
	ErrUnknownBody = errors.New("physics: entity has no body")
	// ErrDuplicateBody 实体已经拥有刚体
	ErrDuplicateBody = errors.New("physics: entity already has a body")
	// ErrWorldLocked 在 Step 期间尝试修改刚体
	ErrWorldLocked = errors.New("physics: world is locked during step")
)

// CollisionEvent 本帧开始接触的一对碰撞体
type CollisionEvent struct {
	A ecs.EntityID
	B ecs.EntityID
}

// Settings 物理世界参数
type Settings struct {
	PixelsPerMeter     float64
	Gravity            float64 // 竖直重力加速度（米/秒²，向上为正）
	Restitution        float64 // 球的弹性系数
	Friction           float64
	VelocityIterations int
	PositionIterations int
}

// bodyKind 刚体类别
type bodyKind int

const (
	bodyBall bodyKind = iota
	bodyBoundary
)

// bodyEntry 实体对应的刚体及其当前几何
type bodyEntry struct {
	body  *box2d.B2Body
	kind  bodyKind
	shape components.BoundaryShape // 仅边界使用：最近一次应用的几何
}

// World 物理世界
type World struct {
	world    box2d.B2World
	settings Settings
	bodies   map[ecs.EntityID]*bodyEntry
	pending  []CollisionEvent
	stepping bool
}

// NewWorld 创建物理世界
func NewWorld(settings Settings) *World {
	w := &World{
		world:    box2d.MakeB2World(box2d.MakeB2Vec2(0, settings.Gravity)),
		settings: settings,
		bodies:   make(map[ecs.EntityID]*bodyEntry),
		pending:  make([]CollisionEvent, 0, 16),
	}
	w.world.SetContactListener(&contactCollector{world: w})
	return w
}

// toMeters 世界单位 → 米
func (w *World) toMeters(v float64) float64 {
	return v / w.settings.PixelsPerMeter
}

// toUnits 米 → 世界单位
func (w *World) toUnits(v float64) float64 {
	return v * w.settings.PixelsPerMeter
}

func (w *World) vecToMeters(v types.Vec2) box2d.B2Vec2 {
	return box2d.MakeB2Vec2(w.toMeters(v.X), w.toMeters(v.Y))
}

func (w *World) vecToUnits(v box2d.B2Vec2) types.Vec2 {
	return types.Vec2{X: w.toUnits(v.X), Y: w.toUnits(v.Y)}
}

// checkCreate 创建刚体前的公共检查
func (w *World) checkCreate(id ecs.EntityID) error {
	if w.stepping {
		return ErrWorldLocked
	}
	if _, exists := w.bodies[id]; exists {
		return fmt.Errorf("%w: entity %d", ErrDuplicateBody, id)
	}
	return nil
}

// CreateBall 为实体创建动态圆形刚体
//
// 密度由质量反推，使刚体质量恰好等于 mass。
//
// 参数:
//   - id: 实体ID（写入刚体 UserData，用于碰撞回调识别实体）
//   - pos: 初始位置（世界坐标）
//   - radius: 半径（世界单位）
//   - mass: 质量
func (w *World) CreateBall(id ecs.EntityID, pos types.Vec2, radius, mass float64) error {
	if err := w.checkCreate(id); err != nil {
		return err
	}
	if radius <= 0 || mass <= 0 {
		return fmt.Errorf("physics: invalid ball radius=%.2f mass=%.2f", radius, mass)
	}

	bodyDef := box2d.MakeB2BodyDef()
	bodyDef.Type = box2d.B2BodyType.B2_dynamicBody
	bodyDef.Position = w.vecToMeters(pos)
	bodyDef.UserData = id

	body := w.world.CreateBody(&bodyDef)

	shape := box2d.MakeB2CircleShape()
	r := w.toMeters(radius)
	shape.M_radius = r

	fixtureDef := box2d.MakeB2FixtureDef()
	fixtureDef.Shape = &shape
	fixtureDef.Density = mass / (math.Pi * r * r)
	fixtureDef.Restitution = w.settings.Restitution
	fixtureDef.Friction = w.settings.Friction
	body.CreateFixtureFromDef(&fixtureDef)

	w.bodies[id] = &bodyEntry{body: body, kind: bodyBall}
	return nil
}

// CreateBoundary 为实体创建静态矩形刚体
// shape.Sensor 为 true 时只报告接触，不产生碰撞力
func (w *World) CreateBoundary(id ecs.EntityID, shape components.BoundaryShape) error {
	if err := w.checkCreate(id); err != nil {
		return err
	}

	bodyDef := box2d.MakeB2BodyDef()
	bodyDef.Type = box2d.B2BodyType.B2_staticBody
	bodyDef.Position = w.vecToMeters(shape.Center)
	bodyDef.UserData = id

	entry := &bodyEntry{body: w.world.CreateBody(&bodyDef), kind: bodyBoundary, shape: shape}
	w.createBoundaryFixture(entry)
	w.bodies[id] = entry
	return nil
}

// createBoundaryFixture 按 entry.shape 创建矩形夹具
func (w *World) createBoundaryFixture(entry *bodyEntry) {
	poly := box2d.MakeB2PolygonShape()
	poly.SetAsBox(w.toMeters(entry.shape.HalfExtents.X), w.toMeters(entry.shape.HalfExtents.Y))

	fixtureDef := box2d.MakeB2FixtureDef()
	fixtureDef.Shape = &poly
	fixtureDef.IsSensor = entry.shape.Sensor
	fixtureDef.Friction = w.settings.Friction
	entry.body.CreateFixtureFromDef(&fixtureDef)
}

// SetBoundaryShape 重新应用边界的位置与尺寸
//
// 位置变化时移动刚体；尺寸或感应标记变化时重建夹具。
// 几何未变化时不做任何操作。
func (w *World) SetBoundaryShape(id ecs.EntityID, shape components.BoundaryShape) error {
	if w.stepping {
		return ErrWorldLocked
	}
	entry, ok := w.bodies[id]
	if !ok || entry.kind != bodyBoundary {
		return fmt.Errorf("%w: boundary %d", ErrUnknownBody, id)
	}

	if entry.shape.Center != shape.Center {
		entry.body.SetTransform(w.vecToMeters(shape.Center), 0)
	}

	if entry.shape.HalfExtents != shape.HalfExtents || entry.shape.Sensor != shape.Sensor {
		for f := entry.body.GetFixtureList(); f != nil; {
			next := f.GetNext()
			entry.body.DestroyFixture(f)
			f = next
		}
		entry.shape = shape
		w.createBoundaryFixture(entry)
	}

	entry.shape = shape
	return nil
}

// BoundaryShape 返回边界最近一次应用的几何
func (w *World) BoundaryShape(id ecs.EntityID) (components.BoundaryShape, bool) {
	entry, ok := w.bodies[id]
	if !ok || entry.kind != bodyBoundary {
		return components.BoundaryShape{}, false
	}
	return entry.shape, true
}

// DestroyBody 销毁实体的刚体
// 返回 false 表示实体没有刚体（已被销毁或从未创建），不视为错误
func (w *World) DestroyBody(id ecs.EntityID) bool {
	entry, ok := w.bodies[id]
	if !ok {
		return false
	}
	if w.stepping {
		log.Printf("[Physics] Warning: DestroyBody(%d) ignored during step", id)
		return false
	}
	w.world.DestroyBody(entry.body)
	delete(w.bodies, id)
	return true
}

// HasBody 检查实体是否拥有刚体
func (w *World) HasBody(id ecs.EntityID) bool {
	_, ok := w.bodies[id]
	return ok
}

// BodyCount 返回刚体数量
func (w *World) BodyCount() int {
	return len(w.bodies)
}

// Position 返回刚体位置（世界坐标）
func (w *World) Position(id ecs.EntityID) (types.Vec2, bool) {
	entry, ok := w.bodies[id]
	if !ok {
		return types.Vec2{}, false
	}
	return w.vecToUnits(entry.body.GetPosition()), true
}

// Velocity 返回刚体线速度（世界单位/秒）
func (w *World) Velocity(id ecs.EntityID) (types.Vec2, bool) {
	entry, ok := w.bodies[id]
	if !ok {
		return types.Vec2{}, false
	}
	return w.vecToUnits(entry.body.GetLinearVelocity()), true
}

// SetVelocity 设置刚体线速度（世界单位/秒）
func (w *World) SetVelocity(id ecs.EntityID, v types.Vec2) error {
	entry, ok := w.bodies[id]
	if !ok {
		return fmt.Errorf("%w: entity %d", ErrUnknownBody, id)
	}
	entry.body.SetLinearVelocity(w.vecToMeters(v))
	entry.body.SetAwake(true)
	return nil
}

// Mass 返回刚体质量
func (w *World) Mass(id ecs.EntityID) (float64, bool) {
	entry, ok := w.bodies[id]
	if !ok {
		return 0, false
	}
	return entry.body.GetMass(), true
}

// Step 推进模拟 dt 秒
// 期间产生的 BeginContact 事件追加到本帧批次
func (w *World) Step(dt float64) {
	w.stepping = true
	w.world.Step(dt, w.settings.VelocityIterations, w.settings.PositionIterations)
	w.stepping = false
}

// DrainCollisions 取走并清空当前批次的碰撞事件
// 返回的切片归调用方所有
func (w *World) DrainCollisions() []CollisionEvent {
	if len(w.pending) == 0 {
		return nil
	}
	batch := make([]CollisionEvent, len(w.pending))
	copy(batch, w.pending)
	w.pending = w.pending[:0]
	return batch
}

// contactCollector 实现 box2d.B2ContactListenerInterface
// 只收集 BeginContact，其余回调忽略
type contactCollector struct {
	world *World
}

func (c *contactCollector) BeginContact(contact box2d.B2ContactInterface) {
	a, okA := entityOf(contact.GetFixtureA())
	b, okB := entityOf(contact.GetFixtureB())
	if !okA || !okB {
		return
	}
	c.world.pending = append(c.world.pending, CollisionEvent{A: a, B: b})
}

func (c *contactCollector) EndContact(contact box2d.B2ContactInterface) {}

func (c *contactCollector) PreSolve(contact box2d.B2ContactInterface, oldManifold box2d.B2Manifold) {
}

func (c *contactCollector) PostSolve(contact box2d.B2ContactInterface, impulse *box2d.B2ContactImpulse) {
}

// entityOf 从夹具所属刚体的 UserData 取出实体ID
func entityOf(f *box2d.B2Fixture) (ecs.EntityID, bool) {
	if f == nil {
		return ecs.InvalidEntity, false
	}
	body := f.GetBody()
	if body == nil {
		return ecs.InvalidEntity, false
	}
	id, ok := body.GetUserData().(ecs.EntityID)
	return id, ok
}
