package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Static bodies are attached to the space's static body. A positive Mass makes
// a dynamic body (cars); otherwise the body is kinematic and drifts with
// VelocityX/VelocityY (moving obstacles).
type PhysicsBody struct {
	Body      *cp.Body
	Shape     *cp.Shape
	Width     float64
	Height    float64
	Static    bool
	Mass      float64
	VelocityX float64
	VelocityY float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
