package core

// RGB is the color of a single LED.
type RGB struct {
	R, G, B uint8
}

// Black is an unlit LED.
var Black = RGB{}

// White is a fully lit LED.
var White = RGB{R: 255, G: 255, B: 255}

// P is a shorthand to create a color.
func P(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// Scale returns the color with every channel multiplied by f (clamped to [0, 255]).
func (c RGB) Scale(f float64) RGB {
	return RGB{
		R: channel(float64(c.R) * f),
		G: channel(float64(c.G) * f),
		B: channel(float64(c.B) * f),
	}
}

// Dim returns the color with every channel multiplied by amount/255 using integer math.
func (c RGB) Dim(amount uint8) RGB {
	return RGB{
		R: uint8(uint16(c.R) * uint16(amount) / 255),
		G: uint8(uint16(c.G) * uint16(amount) / 255),
		B: uint8(uint16(c.B) * uint16(amount) / 255),
	}
}

// Add returns the per-channel saturating sum of two colors.
func (c RGB) Add(o RGB) RGB {
	return RGB{
		R: addSat(c.R, o.R),
		G: addSat(c.G, o.G),
		B: addSat(c.B, o.B),
	}
}

// Mix cross-fades towards o: the result is o*t + c*(1-t), clamped per channel.
func (c RGB) Mix(o RGB, t float64) RGB {
	t = ClampF(t, 0, 1)
	return RGB{
		R: channel(float64(o.R)*t + float64(c.R)*(1-t)),
		G: channel(float64(o.G)*t + float64(c.G)*(1-t)),
		B: channel(float64(o.B)*t + float64(c.B)*(1-t)),
	}
}

// IsBlack reports whether the LED is off.
func (c RGB) IsBlack() bool {
	return c == Black
}

func addSat(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// channel converts a float channel value to a byte, truncating toward zero.
// Negative values become 0.
func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
