package encode

import "github.com/jedit-io/jedit/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// EncodeWire selects compact single-line output, for machine
// consumers like patch application.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
