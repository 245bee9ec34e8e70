package vecmath

// Color is a linear RGBA color, used as an attribute kind interpolated
// the same way as a Vec4 but kept distinct so the attribute registry can
// tell "this is a color" from "this is a direction or position".
type Color struct {
	R, G, B, A float64
}

// Add returns c + other.
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B, c.A + other.A}
}

// Scale returns c * scalar.
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s, c.A * s}
}

// Lerp returns the componentwise linear interpolation between c and other at t.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		c.R + (other.R-c.R)*t,
		c.G + (other.G-c.G)*t,
		c.B + (other.B-c.B)*t,
		c.A + (other.A-c.A)*t,
	}
}

var (
	// White is opaque white, used as the default vertex color when a
	// mesh schema declares a Color attribute without an explicit default.
	White = Color{1, 1, 1, 1}
	// Red, Green and Yellow are the colors used by the debug line draw.
	Red    = Color{1, 0, 0, 1}
	Green  = Color{0, 1, 0, 1}
	Yellow = Color{1, 1, 0, 1}
)
