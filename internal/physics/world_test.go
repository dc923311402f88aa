package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/decker502/mergebox/pkg/components"
	"github.com/decker502/mergebox/pkg/ecs"
	"github.com/decker502/mergebox/pkg/types"
)

const testStep = 1.0 / 60.0

func testSettings(gravity float64) Settings {
	return Settings{
		PixelsPerMeter:     100,
		Gravity:            gravity,
		Restitution:        0.7,
		Friction:           0.2,
		VelocityIterations: 8,
		PositionIterations: 3,
	}
}

// stepUntil 推进模拟直到 cond 为真或超过 maxSteps，返回期间收集到的全部碰撞事件
func stepUntil(w *World, maxSteps int, cond func() bool) []CollisionEvent {
	var all []CollisionEvent
	for i := 0; i < maxSteps; i++ {
		w.Step(testStep)
		all = append(all, w.DrainCollisions()...)
		if cond != nil && cond() {
			break
		}
	}
	return all
}

func containsPair(events []CollisionEvent, a, b ecs.EntityID) bool {
	for _, ev := range events {
		if (ev.A == a && ev.B == b) || (ev.A == b && ev.B == a) {
			return true
		}
	}
	return false
}

func TestCreateBallMass(t *testing.T) {
	w := NewWorld(testSettings(0))

	if err := w.CreateBall(1, types.Vec2{}, 15, 2.25); err != nil {
		t.Fatalf("CreateBall failed: %v", err)
	}

	mass, ok := w.Mass(1)
	if !ok {
		t.Fatal("ball should have a body")
	}
	if math.Abs(mass-2.25) > 1e-9 {
		t.Errorf("expected mass 2.25, got %v", mass)
	}
}

func TestCreateBallErrors(t *testing.T) {
	w := NewWorld(testSettings(0))

	if err := w.CreateBall(1, types.Vec2{}, 10, 1); err != nil {
		t.Fatalf("CreateBall failed: %v", err)
	}
	if err := w.CreateBall(1, types.Vec2{}, 10, 1); !errors.Is(err, ErrDuplicateBody) {
		t.Errorf("expected ErrDuplicateBody, got %v", err)
	}
	if err := w.CreateBall(2, types.Vec2{}, 0, 1); err == nil {
		t.Error("expected error for zero radius")
	}
	if err := w.CreateBall(3, types.Vec2{}, 10, -1); err == nil {
		t.Error("expected error for negative mass")
	}
}

func TestPositionRoundTrip(t *testing.T) {
	w := NewWorld(testSettings(0))
	pos := types.Vec2{X: -42, Y: 87.5}

	if err := w.CreateBall(7, pos, 10, 1); err != nil {
		t.Fatalf("CreateBall failed: %v", err)
	}

	got, ok := w.Position(7)
	if !ok {
		t.Fatal("ball should have a position")
	}
	if math.Abs(got.X-pos.X) > 1e-9 || math.Abs(got.Y-pos.Y) > 1e-9 {
		t.Errorf("expected %v, got %v", pos, got)
	}

	if _, ok := w.Position(99); ok {
		t.Error("unknown entity should have no position")
	}
}

func TestDestroyBody(t *testing.T) {
	w := NewWorld(testSettings(0))
	if err := w.CreateBall(1, types.Vec2{}, 10, 1); err != nil {
		t.Fatalf("CreateBall failed: %v", err)
	}

	if !w.DestroyBody(1) {
		t.Error("first DestroyBody should succeed")
	}
	if w.DestroyBody(1) {
		t.Error("second DestroyBody should report missing body")
	}
	if w.HasBody(1) || w.BodyCount() != 0 {
		t.Error("body should be gone")
	}
}

func TestBeginContactBatch(t *testing.T) {
	w := NewWorld(testSettings(0))

	// 两个球相向运动
	if err := w.CreateBall(1, types.Vec2{X: -30}, 10, 1); err != nil {
		t.Fatalf("CreateBall failed: %v", err)
	}
	if err := w.CreateBall(2, types.Vec2{X: 30}, 10, 1); err != nil {
		t.Fatalf("CreateBall failed: %v", err)
	}
	_ = w.SetVelocity(1, types.Vec2{X: 200})
	_ = w.SetVelocity(2, types.Vec2{X: -200})

	events := stepUntil(w, 120, nil)
	if !containsPair(events, 1, 2) {
		t.Fatalf("expected a (1, 2) begin-contact event, got %v", events)
	}

	// 批次被取走后清空
	if again := w.DrainCollisions(); again != nil {
		t.Errorf("expected empty batch after drain, got %v", again)
	}
}

func TestBallRestsOnFloor(t *testing.T) {
	w := NewWorld(testSettings(-9.81))
	box := &components.GameBoxComponent{Width: 200, Height: 300, WallThickness: 5}

	floorID := ecs.EntityID(10)
	if err := w.CreateBoundary(floorID, box.BoundaryGeometry(types.BoundaryFloor)); err != nil {
		t.Fatalf("CreateBoundary failed: %v", err)
	}
	if err := w.CreateBall(1, types.Vec2{Y: 0}, 10, 1); err != nil {
		t.Fatalf("CreateBall failed: %v", err)
	}

	events := stepUntil(w, 600, nil)

	if !containsPair(events, 1, floorID) {
		t.Error("expected ball/floor contact event")
	}

	pos, _ := w.Position(1)
	floorTop := -box.Height/2 + box.WallThickness
	if pos.Y < floorTop {
		t.Errorf("ball fell through the floor: y=%.2f floorTop=%.2f", pos.Y, floorTop)
	}
}

func TestCeilingIsSensor(t *testing.T) {
	w := NewWorld(testSettings(-9.81))
	box := &components.GameBoxComponent{Width: 200, Height: 300, WallThickness: 5}

	ceilingID := ecs.EntityID(20)
	if err := w.CreateBoundary(ceilingID, box.BoundaryGeometry(types.BoundaryCeiling)); err != nil {
		t.Fatalf("CreateBoundary failed: %v", err)
	}

	// 从天花板上方落下
	start := types.Vec2{Y: box.CeilingOuterY() + 50}
	if err := w.CreateBall(1, start, 10, 1); err != nil {
		t.Fatalf("CreateBall failed: %v", err)
	}

	below := func() bool {
		pos, _ := w.Position(1)
		return pos.Y < box.Height/2-box.WallThickness-20
	}
	events := stepUntil(w, 600, below)

	if !below() {
		pos, _ := w.Position(1)
		t.Fatalf("ball should pass through the sensor ceiling, stuck at y=%.2f", pos.Y)
	}
	if !containsPair(events, 1, ceilingID) {
		t.Error("sensor ceiling should still report a begin-contact event")
	}
}

func TestSetBoundaryShape(t *testing.T) {
	w := NewWorld(testSettings(0))
	box := &components.GameBoxComponent{Width: 200, Height: 300, WallThickness: 5}

	id := ecs.EntityID(5)
	if err := w.CreateBoundary(id, box.BoundaryGeometry(types.BoundaryRight)); err != nil {
		t.Fatalf("CreateBoundary failed: %v", err)
	}

	box.Width = 300
	want := box.BoundaryGeometry(types.BoundaryRight)
	if err := w.SetBoundaryShape(id, want); err != nil {
		t.Fatalf("SetBoundaryShape failed: %v", err)
	}

	got, ok := w.BoundaryShape(id)
	if !ok || got != want {
		t.Errorf("expected shape %+v, got %+v", want, got)
	}
	pos, _ := w.Position(id)
	if math.Abs(pos.X-150) > 1e-9 {
		t.Errorf("expected right wall at x=150, got %v", pos.X)
	}

	if err := w.SetBoundaryShape(99, want); !errors.Is(err, ErrUnknownBody) {
		t.Errorf("expected ErrUnknownBody, got %v", err)
	}

	// 球不是边界
	if err := w.CreateBall(6, types.Vec2{}, 10, 1); err != nil {
		t.Fatalf("CreateBall failed: %v", err)
	}
	if err := w.SetBoundaryShape(6, want); !errors.Is(err, ErrUnknownBody) {
		t.Errorf("expected ErrUnknownBody for ball, got %v", err)
	}
}
