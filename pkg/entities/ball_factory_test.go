package entities

import (
	"errors"
	"testing"

	"github.com/decker502/mergebox/pkg/components"
	"github.com/decker502/mergebox/pkg/config"
	"github.com/decker502/mergebox/pkg/ecs"
	"github.com/decker502/mergebox/pkg/types"
)

// fakeBodies 记录刚体创建请求的 BodyFactory
type fakeBodies struct {
	balls      map[ecs.EntityID]fakeBall
	boundaries map[ecs.EntityID]components.BoundaryShape
	err        error
}

type fakeBall struct {
	pos          types.Vec2
	radius, mass float64
}

func newFakeBodies() *fakeBodies {
	return &fakeBodies{
		balls:      make(map[ecs.EntityID]fakeBall),
		boundaries: make(map[ecs.EntityID]components.BoundaryShape),
	}
}

func (f *fakeBodies) CreateBall(id ecs.EntityID, pos types.Vec2, radius, mass float64) error {
	if f.err != nil {
		return f.err
	}
	f.balls[id] = fakeBall{pos: pos, radius: radius, mass: mass}
	return nil
}

func (f *fakeBodies) CreateBoundary(id ecs.EntityID, shape components.BoundaryShape) error {
	if f.err != nil {
		return f.err
	}
	f.boundaries[id] = shape
	return nil
}

func TestNewBallEntity(t *testing.T) {
	tiers := config.DefaultTierTable()

	tests := []struct {
		name string
		tier types.TierIndex
		pos  types.Vec2
	}{
		{name: "smallest tier", tier: 0, pos: types.Vec2{X: 0, Y: 205}},
		{name: "middle tier", tier: 1, pos: types.Vec2{X: -50, Y: 10}},
		{name: "terminal tier", tier: 2, pos: types.Vec2{X: 80, Y: -100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			bodies := newFakeBodies()

			id, err := NewBallEntity(em, bodies, tiers, tt.tier, tt.pos)
			if err != nil {
				t.Fatalf("NewBallEntity failed: %v", err)
			}

			ball, ok := ecs.GetComponent[*components.BallComponent](em, id)
			if !ok {
				t.Fatal("ball entity should have BallComponent")
			}
			if ball.Tier != tt.tier {
				t.Errorf("expected tier %d, got %d", tt.tier, ball.Tier)
			}

			pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
			if !ok || pos.X != tt.pos.X || pos.Y != tt.pos.Y {
				t.Errorf("expected position %v, got %+v", tt.pos, pos)
			}

			body, ok := bodies.balls[id]
			if !ok {
				t.Fatal("ball body should be created")
			}
			def := tiers.TierAt(tt.tier)
			if body.radius != def.Radius || body.mass != def.Mass {
				t.Errorf("body radius/mass = %v/%v, want %v/%v", body.radius, body.mass, def.Radius, def.Mass)
			}
		})
	}
}

func TestNewBallEntityBodyFailure(t *testing.T) {
	em := ecs.NewEntityManager()
	bodies := newFakeBodies()
	bodies.err = errors.New("world locked")

	id, err := NewBallEntity(em, bodies, config.DefaultTierTable(), 0, types.Vec2{})
	if err == nil {
		t.Fatal("expected error when body creation fails")
	}
	if id != ecs.InvalidEntity {
		t.Errorf("expected InvalidEntity, got %d", id)
	}

	// 半成品实体应被回收
	em.RemoveMarkedEntities()
	if len(ecs.GetEntitiesWith1[*components.BallComponent](em)) != 0 {
		t.Error("failed ball entity should be cleaned up")
	}
}

func TestNewBallEntityOutOfRangeTierPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("out-of-range tier should panic")
		}
	}()
	em := ecs.NewEntityManager()
	_, _ = NewBallEntity(em, newFakeBodies(), config.DefaultTierTable(), 3, types.Vec2{})
}
