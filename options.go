package pagemark

import "github.com/factset/pagemark/model"

// viewOptions holds the display configuration accumulated by the fluent API.
type viewOptions struct {
	rotation model.Rotation
	zoom     float64
	offsetX  float64
	offsetY  float64
}

// defaultViewOptions returns the default display configuration.
func defaultViewOptions() viewOptions {
	return viewOptions{
		rotation: model.Rotate0,
		zoom:     1,
		offsetX:  0,
		offsetY:  0,
	}
}
