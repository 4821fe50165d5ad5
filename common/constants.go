package common

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

// Collision categories shared by the physics world and the obstacle scanner.
// Cars are members of CategoryAgent and only ever look for CategoryObstacle.
const (
	CategoryAgent uint = 1 << iota
	CategoryObstacle
	CategoryRoad
)

// NoGroup disables chipmunk's same-group collision filtering.
const NoGroup uint = 0

// CategoryAll accepts every collision category.
const CategoryAll = ^uint(0)
