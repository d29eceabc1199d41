// Package world translates the sparse object lists levels are authored in
// into the dense occupancy grids the navigation search runs on.
package world

// ObjectType tags a positioned level object. Matching against the catalog is
// case-sensitive, mirroring the level editor's output.
type ObjectType string

const (
	ObjectPlayer  ObjectType = "player"
	ObjectAIEnemy ObjectType = "ai_enemy"
	ObjectWall    ObjectType = "wall"
	ObjectEnemy   ObjectType = "enemy"
	ObjectGoal    ObjectType = "goal"
)

// Role describes how the grid builder treats an object type.
type Role string

const (
	// RoleIgnored objects neither block movement nor get tracked as actors.
	RoleIgnored Role = "ignored"
	// RoleBlocking objects mark their cell impassable.
	RoleBlocking Role = "blocking"
	// RolePursuer is the chasing actor whose next step is being planned.
	RolePursuer Role = "pursuer"
	// RoleTarget is the actor the pursuer is chasing.
	RoleTarget Role = "target"
)

// Object is one positioned level entry. Coordinates are pixels. Levels carry
// further authoring fields (sprites, sizes); none of them affect planning and
// none are modeled here.
type Object struct {
	Type ObjectType
	X    int
	Y    int
}
