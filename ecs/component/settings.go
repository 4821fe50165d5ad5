package component

// Settings holds front-end toggles that systems consult.
type Settings struct {
	CameraFollow bool
	ShowPaths    bool
	ShowGrid     bool
	Paused       bool
}

var SettingsComponent = NewComponent[Settings]()

// RestartRequest is a marker component used to ask the restart system to
// despawn the population and start over. Front ends create a short-lived
// entity with this component.
type RestartRequest struct{}

var RestartRequestComponent = NewComponent[RestartRequest]()
