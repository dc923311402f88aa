package entities

import (
	"errors"
	"testing"

	"github.com/decker502/mergebox/pkg/components"
	"github.com/decker502/mergebox/pkg/ecs"
	"github.com/decker502/mergebox/pkg/types"
)

func TestNewGameBoxEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewGameBoxEntity(em, 200, 300, 5)

	box, ok := ecs.GetComponent[*components.GameBoxComponent](em, id)
	if !ok {
		t.Fatal("game box entity should have GameBoxComponent")
	}
	if box.Width != 200 || box.Height != 300 || box.WallThickness != 5 {
		t.Errorf("unexpected box %+v", box)
	}
}

func TestNewBoundaryEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	bodies := newFakeBodies()
	box := &components.GameBoxComponent{Width: 200, Height: 300, WallThickness: 5}

	for _, kind := range types.AllBoundaryKinds {
		t.Run(kind.String(), func(t *testing.T) {
			id, err := NewBoundaryEntity(em, bodies, box, kind)
			if err != nil {
				t.Fatalf("NewBoundaryEntity failed: %v", err)
			}

			boundary, ok := ecs.GetComponent[*components.BoundaryComponent](em, id)
			if !ok || boundary.Kind != kind {
				t.Fatalf("expected BoundaryComponent{%s}, got %+v", kind, boundary)
			}

			// 边界不是球，不参与合并
			if ecs.HasComponent[*components.BallComponent](em, id) {
				t.Error("boundary must not carry BallComponent")
			}

			shape, ok := bodies.boundaries[id]
			if !ok {
				t.Fatal("boundary body should be created")
			}
			if shape != box.BoundaryGeometry(kind) {
				t.Errorf("body shape %+v does not match geometry %+v", shape, box.BoundaryGeometry(kind))
			}
			if shape.Sensor != (kind == types.BoundaryCeiling) {
				t.Errorf("only the ceiling should be a sensor, %s sensor=%v", kind, shape.Sensor)
			}
		})
	}
}

func TestNewBoundaryEntityBodyFailure(t *testing.T) {
	em := ecs.NewEntityManager()
	bodies := newFakeBodies()
	bodies.err = errors.New("boom")
	box := &components.GameBoxComponent{Width: 200, Height: 300, WallThickness: 5}

	if _, err := NewBoundaryEntity(em, bodies, box, types.BoundaryFloor); err == nil {
		t.Fatal("expected error when body creation fails")
	}
}
