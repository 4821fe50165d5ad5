package component

// CarTag marks every simulated car regardless of navigation strategy.
type CarTag struct{}

var CarTagComponent = NewComponent[CarTag]()

// ObstacleTag marks entities the scanner should see.
type ObstacleTag struct{}

var ObstacleTagComponent = NewComponent[ObstacleTag]()
