package colormap

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

var palettes = map[Name]func(float64) colorful.Color{
	Rainbow: rainbow,
	Gray:    listed("#000000", "#ffffff"),
	Viridis: listed("#440154", "#482878", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"),
	Jet: segmented(
		[]stop{{0, 0}, {0.35, 0}, {0.66, 1}, {0.89, 1}, {1, 0.5}},
		[]stop{{0, 0}, {0.125, 0}, {0.375, 1}, {0.64, 1}, {0.91, 0}, {1, 0}},
		[]stop{{0, 0.5}, {0.11, 1}, {0.34, 1}, {0.65, 0}, {1, 0}},
	),
	Plasma:  listed("#0d0887", "#46039f", "#7201a8", "#9c179e", "#bd3786", "#d8576b", "#ed7953", "#fb9f3a", "#fdca26", "#f0f921"),
	Inferno: listed("#000004", "#1b0c41", "#4a0c6b", "#781c6d", "#a52c60", "#cf4446", "#ed6925", "#fb9b06", "#f7d13d", "#fcffa4"),
	Magma:   listed("#000004", "#180f3d", "#440f76", "#721f81", "#9e2f7f", "#cd4071", "#f1605d", "#fd9668", "#feca8d", "#fcfdbf"),
	Cividis: listed("#00224e", "#123570", "#3b496c", "#575d6d", "#707173", "#8a8678", "#a59c74", "#c3b369", "#e1cc55", "#fee838"),
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// listed returns evenly spaced control points blended in RGB
func listed(hex ...string) func(float64) colorful.Color {
	points := make([]colorful.Color, len(hex))
	for i, h := range hex {
		points[i] = mustHex(h)
	}
	return func(t float64) colorful.Color {
		t = clamp(t)
		if t == 1 {
			return points[len(points)-1]
		}
		f := t * float64(len(points)-1)
		i := int(f)
		return points[i].BlendRgb(points[i+1], f-float64(i))
	}
}

type stop struct {
	x, y float64
}

func interpolate(stops []stop, t float64) float64 {
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].x {
			a, b := stops[i-1], stops[i]
			if b.x == a.x {
				return b.y
			}
			return a.y + (b.y-a.y)*(t-a.x)/(b.x-a.x)
		}
	}
	return stops[len(stops)-1].y
}

// segmented interpolates each channel independently
func segmented(r, g, b []stop) func(float64) colorful.Color {
	return func(t float64) colorful.Color {
		t = clamp(t)
		return colorful.Color{
			R: interpolate(r, t),
			G: interpolate(g, t),
			B: interpolate(b, t),
		}
	}
}

func rainbow(t float64) colorful.Color {
	t = clamp(t)
	return colorful.Color{
		R: math.Abs(2*t - 0.5),
		G: math.Sin(math.Pi * t),
		B: math.Cos(math.Pi * t / 2),
	}
}

func clamp(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}
