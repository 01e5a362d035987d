package scene

// Geometry holds the fixed frame dimensions used when building a scene.
type Geometry struct {
	Width       float64 `json:"width" yaml:"width"`
	Height      float64 `json:"height" yaml:"height"`
	NodeRadius  float64 `json:"node_radius" yaml:"node_radius"`
	LabelOffset float64 `json:"label_offset" yaml:"label_offset"`
	LabelSize   float64 `json:"label_size" yaml:"label_size"`
	StatusSize  float64 `json:"status_size" yaml:"status_size"`
}

// DefaultGeometry matches a 600x600 canvas around a radius-150 circle.
func DefaultGeometry() Geometry {
	return Geometry{
		Width:       600,
		Height:      600,
		NodeRadius:  22,
		LabelOffset: 10,
		LabelSize:   25,
		StatusSize:  20,
	}
}
