package planner

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"game-creator/planner/internal/world"
	"game-creator/planner/logging"
	"game-creator/planner/logging/pursuit"
)

func TestPlanNextStepTowardTarget(t *testing.T) {
	// Pursuer at cell (5,5), target at (5,7), no obstacles: the next step is
	// cell (5,6), i.e. pixel (192,160).
	req := Request{
		Width:    640,
		Height:   480,
		TileSize: 32,
		Objects: []RequestObject{
			{Type: "ai_enemy", X: 160, Y: 160},
			{Type: "player", X: 224, Y: 160},
		},
	}
	res, err := New().Plan(context.Background(), req)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if res.Status != StatusSuccess {
		t.Fatalf("expected %q, got %q", StatusSuccess, res.Status)
	}
	if res.NextX != 192 || res.NextY != 160 {
		t.Fatalf("expected next (192,160), got (%d,%d)", res.NextX, res.NextY)
	}
}

func TestPlanRoutesAroundWalls(t *testing.T) {
	// Column of walls between pursuer and target forces a detour, so the
	// first step cannot be straight toward the target.
	objects := []RequestObject{
		{Type: "ai_enemy", X: 0, Y: 32},
		{Type: "player", X: 64, Y: 32},
	}
	for _, y := range []int{0, 32} {
		objects = append(objects, RequestObject{Type: "wall", X: 32, Y: y})
	}
	res, err := New().Plan(context.Background(), Request{Width: 96, Height: 96, TileSize: 32, Objects: objects})
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if res.Status != StatusSuccess {
		t.Fatalf("expected %q, got %q", StatusSuccess, res.Status)
	}
	if res.NextX != 0 || res.NextY != 64 {
		t.Fatalf("expected detour step (0,64), got (%d,%d)", res.NextX, res.NextY)
	}
}

func TestPlanHoldsWhenColocated(t *testing.T) {
	// Both actors inside cell (1,2): nothing to do, report the pursuer's
	// cell-quantized position.
	req := Request{
		Width:    640,
		Height:   480,
		TileSize: 32,
		Objects: []RequestObject{
			{Type: "ai_enemy", X: 70, Y: 40},
			{Type: "player", X: 65, Y: 35},
		},
	}
	res, err := New().Plan(context.Background(), req)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if res.Status != StatusNoMove {
		t.Fatalf("expected %q, got %q", StatusNoMove, res.Status)
	}
	if res.NextX != 64 || res.NextY != 32 {
		t.Fatalf("expected hold at (64,32), got (%d,%d)", res.NextX, res.NextY)
	}
}

func TestPlanHoldsWhenWalledOff(t *testing.T) {
	// Single-row level with the middle cell walled: no 4-connected route.
	req := Request{
		Width:    96,
		Height:   32,
		TileSize: 32,
		Objects: []RequestObject{
			{Type: "ai_enemy", X: 0, Y: 0},
			{Type: "wall", X: 32, Y: 0},
			{Type: "player", X: 64, Y: 0},
		},
	}
	res, err := New().Plan(context.Background(), req)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if res.Status != StatusNoMove {
		t.Fatalf("expected %q, got %q", StatusNoMove, res.Status)
	}
	if res.NextX != 0 || res.NextY != 0 {
		t.Fatalf("expected hold at (0,0), got (%d,%d)", res.NextX, res.NextY)
	}
}

func TestPlanMissingActor(t *testing.T) {
	for _, tc := range []struct {
		name    string
		objects []RequestObject
		role    world.Role
	}{
		{
			name:    "no-target",
			objects: []RequestObject{{Type: "ai_enemy", X: 0, Y: 0}},
			role:    world.RoleTarget,
		},
		{
			name:    "no-pursuer",
			objects: []RequestObject{{Type: "player", X: 0, Y: 0}},
			role:    world.RolePursuer,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res, err := New().Plan(context.Background(), Request{Width: 640, Height: 480, TileSize: 32, Objects: tc.objects})
			var missing *world.MissingActorError
			if !errors.As(err, &missing) {
				t.Fatalf("expected MissingActorError, got %v", err)
			}
			if missing.Role != tc.role {
				t.Fatalf("expected role %q, got %q", tc.role, missing.Role)
			}
			if res.Status != StatusError || res.Reason != ReasonMissingActor {
				t.Fatalf("expected error result with %q, got %+v", ReasonMissingActor, res)
			}
		})
	}
}

func TestPlanMalformedInput(t *testing.T) {
	objects := []RequestObject{
		{Type: "ai_enemy", X: 0, Y: 0},
		{Type: "player", X: 32, Y: 0},
	}
	for _, tc := range []struct {
		name string
		req  Request
	}{
		{name: "zero-width", req: Request{Width: 0, Height: 480, TileSize: 32, Objects: objects}},
		{name: "zero-height", req: Request{Width: 640, Height: 0, TileSize: 32, Objects: objects}},
		{name: "zero-tile", req: Request{Width: 640, Height: 480, TileSize: 0, Objects: objects}},
		{name: "negative-tile", req: Request{Width: 640, Height: 480, TileSize: -8, Objects: objects}},
		{name: "tile-exceeds-level", req: Request{Width: 32, Height: 480, TileSize: 64, Objects: objects}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res, err := New().Plan(context.Background(), tc.req)
			var malformed *MalformedInputError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedInputError, got %v", err)
			}
			if res.Status != StatusError || res.Reason != ReasonMalformedInput {
				t.Fatalf("expected error result with %q, got %+v", ReasonMalformedInput, res)
			}
		})
	}
}

func TestPlanSkipsOutOfBoundsObstacles(t *testing.T) {
	req := Request{
		Width:    96,
		Height:   32,
		TileSize: 32,
		Objects: []RequestObject{
			{Type: "wall", X: 100000, Y: 100000},
			{Type: "ai_enemy", X: 0, Y: 0},
			{Type: "player", X: 64, Y: 0},
		},
	}
	res, err := New().Plan(context.Background(), req)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if res.Status != StatusSuccess || res.NextX != 32 || res.NextY != 0 {
		t.Fatalf("expected step to (32,0), got %+v", res)
	}
}

func TestPlanDeterministic(t *testing.T) {
	req := Request{
		Width:    640,
		Height:   480,
		TileSize: 32,
		Objects: []RequestObject{
			{Type: "ai_enemy", X: 0, Y: 0},
			{Type: "wall", X: 64, Y: 0},
			{Type: "wall", X: 64, Y: 32},
			{Type: "player", X: 128, Y: 64},
		},
	}
	p := New()
	first, errFirst := p.Plan(context.Background(), req)
	second, errSecond := p.Plan(context.Background(), req)
	if errFirst != nil || errSecond != nil {
		t.Fatalf("plan: %v / %v", errFirst, errSecond)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated plans diverged: %+v vs %+v", first, second)
	}
}

func TestPlanCustomCatalog(t *testing.T) {
	catalog := world.Catalog{
		world.ObjectAIEnemy: world.RolePursuer,
		world.ObjectGoal:    world.RoleTarget,
		world.ObjectWall:    world.RoleBlocking,
	}
	req := Request{
		Width:    640,
		Height:   480,
		TileSize: 32,
		Objects: []RequestObject{
			{Type: "ai_enemy", X: 0, Y: 0},
			{Type: "goal", X: 96, Y: 0},
		},
	}
	res, err := New(WithCatalog(catalog)).Plan(context.Background(), req)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if res.Status != StatusSuccess || res.NextX != 32 || res.NextY != 0 {
		t.Fatalf("expected step toward goal at (32,0), got %+v", res)
	}
}

func TestPlanPublishesOneOutcomeEvent(t *testing.T) {
	var events []logging.Event
	capture := logging.PublisherFunc(func(_ context.Context, event logging.Event) {
		events = append(events, event)
	})
	p := New(WithPublisher(capture))

	for _, tc := range []struct {
		name string
		req  Request
		want logging.EventType
	}{
		{
			name: "path-found",
			req: Request{Width: 640, Height: 480, TileSize: 32, Objects: []RequestObject{
				{Type: "ai_enemy", X: 0, Y: 0},
				{Type: "player", X: 96, Y: 0},
			}},
			want: pursuit.EventPathFound,
		},
		{
			name: "no-path",
			req: Request{Width: 96, Height: 32, TileSize: 32, Objects: []RequestObject{
				{Type: "ai_enemy", X: 0, Y: 0},
				{Type: "wall", X: 32, Y: 0},
				{Type: "player", X: 64, Y: 0},
			}},
			want: pursuit.EventNoPath,
		},
		{
			name: "missing-actor",
			req: Request{Width: 640, Height: 480, TileSize: 32, Objects: []RequestObject{
				{Type: "ai_enemy", X: 0, Y: 0},
			}},
			want: pursuit.EventMissingActor,
		},
		{
			name: "rejected",
			req:  Request{Width: 640, Height: 480, TileSize: 0},
			want: pursuit.EventRejected,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			events = events[:0]
			p.Plan(context.Background(), tc.req)
			if len(events) != 1 {
				t.Fatalf("expected exactly one event, got %d", len(events))
			}
			if events[0].Type != tc.want {
				t.Fatalf("expected event %q, got %q", tc.want, events[0].Type)
			}
			if events[0].Category != logging.CategoryPlanning {
				t.Fatalf("expected category %q, got %q", logging.CategoryPlanning, events[0].Category)
			}
		})
	}
}
