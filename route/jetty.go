package route

import (
	"math"
	"strconv"

	"orthoroute/core"
)

// Buffer is the default stand-off distance an edge travels straight out
// of a shape before its first turn, in unscaled model units.
const Buffer = 10

// JettySize resolves the stand-off distance for one endpoint of an edge.
// The per-endpoint style override wins over the shared jettySize, which
// wins over the default. The "auto" sentinel derives the size from the
// endpoint's arrowhead: enough whole buffer multiples to clear the
// marker, or twice the buffer when there is no marker.
func JettySize(style core.Style, isSource bool) float64 {
	key := core.KeyTargetJettySize
	arrowKey := core.KeyEndArrow
	sizeKey := core.KeyEndSize
	if isSource {
		key = core.KeySourceJettySize
		arrowKey = core.KeyStartArrow
		sizeKey = core.KeyStartSize
	}

	value := style.Str(key, style.Str(core.KeyJettySize, ""))
	if value == "" {
		return Buffer
	}

	if value == core.ValueAuto {
		if style.Str(arrowKey, core.ValueNone) != core.ValueNone {
			size := style.Float(sizeKey, core.DefaultMarkerSize)
			return math.Max(2, math.Ceil((size+Buffer)/Buffer)) * Buffer
		}
		return 2 * Buffer
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return Buffer
	}
	return f
}
