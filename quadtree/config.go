package quadtree

type Config struct {
	// Capacity is the number of points a leaf holds before it is split.
	Capacity int
	// MaxDepth bounds splitting. A leaf at MaxDepth keeps accepting points
	// past Capacity, so coincident points cannot split a node forever.
	MaxDepth int
	// Padding is added on every side of the bounding box of the input points
	// in Build, so that boundary points lie strictly inside the root.
	// Use NoPadding to build over the exact bounding box.
	Padding float64
}

// NoPadding disables padding of the root region in Build. Points on the lower
// edges of the bounding box are then dropped by the containment rule.
const NoPadding = -1.0

var DefaultConfig = Config{
	Capacity: 4,
	MaxDepth: 32,
	Padding:  1.0,
}

func (conf Config) withDefaults() Config {
	if conf.Capacity <= 0 {
		conf.Capacity = DefaultConfig.Capacity
	}
	if conf.MaxDepth <= 0 {
		conf.MaxDepth = DefaultConfig.MaxDepth
	}
	if conf.Padding == 0.0 {
		conf.Padding = DefaultConfig.Padding
	} else if conf.Padding < 0.0 {
		conf.Padding = 0.0
	}
	return conf
}
