package scale

// Margins are the distances of the plot area from the viewport edges.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// Viewport is the size of the drawing target.
type Viewport struct {
	Width, Height float64
}

// Options configures the mapping of trajectory data onto a viewport.
//
// Fields:
//   - Margins:   space reserved for axes and labels around the plot area.
//   - Viewport:  total drawing size; the plot area is what remains after margins.
//   - TickCount: target number of ticks the domains are rounded for.
//     Values < 1 are replaced by DefaultTickCount.
type Options struct {
	Margins   Margins
	Viewport  Viewport
	TickCount int
}

// DefaultTickCount is the number of ticks domains are rounded for.
const DefaultTickCount = 20

// DefaultOptions returns options for an 800×600 viewport with room for axes
// at the top and left.
func DefaultOptions() Options {
	return Options{
		Margins:   Margins{Top: 40, Right: 30, Bottom: 30, Left: 60},
		Viewport:  Viewport{Width: 800, Height: 600},
		TickCount: DefaultTickCount,
	}
}

func (o Options) tickCount() int {
	if o.TickCount < 1 {
		return DefaultTickCount
	}
	return o.TickCount
}
