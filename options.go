package stockviewer

// DefaultHorizon is the number of business days the trend line is projected
// past the end of the historical series.
const DefaultHorizon = 5

// BackgroundColors is the palette the page background is picked from once at
// process start.
var BackgroundColors = []string{
	"lightblue", "lightgreen", "lightyellow", "lightpink", "lightgray",
	"lavender", "lightcoral", "powderblue", "honeydew", "lightsteelblue",
}

type Options struct {
	// Horizon is the projection length in business days.
	Horizon int

	// BackgroundColor is the process-wide page background, chosen once at
	// startup and threaded through chart initialization.
	BackgroundColor string
}

func NewDefaultOptions() *Options {
	return &Options{
		Horizon:         DefaultHorizon,
		BackgroundColor: BackgroundColors[0],
	}
}
