package component

// Transform is a car's pose in y-up world space. Rotation is the heading in
// radians; 0 faces +Y.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
