// Package metric implements the calibration, normalization and smoothing
// pipeline that turns raw hand geometry into bounded control signals.
package metric

// Hand identifies which hand a measurement belongs to.
type Hand string

const (
	// Left is the left hand as labeled by the detector.
	Left Hand = "Left"
	// Right is the right hand as labeled by the detector.
	Right Hand = "Right"
)

// Name identifies one of the seven geometric measurements taken per hand.
type Name string

const (
	// TipToMCP0 through TipToMCP3 are the fingertip-to-knuckle distances
	// for the index, middle, ring and pinky fingers.
	TipToMCP0 Name = "tip_to_mcp_0"
	TipToMCP1 Name = "tip_to_mcp_1"
	TipToMCP2 Name = "tip_to_mcp_2"
	TipToMCP3 Name = "tip_to_mcp_3"
	// ThumbToIndexMCP is the thumb-tip-to-index-knuckle distance.
	ThumbToIndexMCP Name = "thumb_to_index_mcp"
	// AvgTipToWrist is the mean of the four fingertip-to-wrist distances.
	AvgTipToWrist Name = "avg_tip_to_wrist"
	// MCPToMCP is the mean of all six pairwise knuckle-to-knuckle distances.
	MCPToMCP Name = "mcp_to_mcp"

	// NumMetrics is the number of measurements taken per hand.
	NumMetrics = 7
)

// names holds the canonical emission order. The output vector and the
// transport payload always follow this order.
var names = [NumMetrics]Name{
	TipToMCP0,
	TipToMCP1,
	TipToMCP2,
	TipToMCP3,
	ThumbToIndexMCP,
	AvgTipToWrist,
	MCPToMCP,
}

// Names returns the metric names in canonical emission order.
func Names() [NumMetrics]Name {
	return names
}

// Key addresses one measurement of one hand. All tracker and smoother state
// is namespaced by Key; keys of the left hand never touch state keyed for
// the right hand.
type Key struct {
	Hand Hand
	Name Name
}

// String returns the flat display form of the key, e.g. "Left_tip_to_mcp_0".
func (k Key) String() string {
	return string(k.Hand) + "_" + string(k.Name)
}

// Keys returns the 14 possible keys, Left hand first, metrics in canonical
// order within each hand.
func Keys() []Key {
	keys := make([]Key, 0, 2*NumMetrics)
	for _, hand := range []Hand{Left, Right} {
		for _, name := range names {
			keys = append(keys, Key{Hand: hand, Name: name})
		}
	}
	return keys
}
