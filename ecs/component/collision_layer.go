package component

// CollisionLayer declares a collision category and mask so the physics
// system and ray queries can selectively see groups of objects.
type CollisionLayer struct {
	// Category is a bitmask of this entity's collision category. If zero,
	// the physics system treats it as common.CategoryObstacle.
	Category uint `yaml:"category,omitempty"`
	// Mask is a bitmask of categories this entity interacts with. If zero,
	// every category is accepted.
	Mask uint `yaml:"mask,omitempty"`
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()
