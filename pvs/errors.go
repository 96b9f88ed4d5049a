package pvs

import "errors"

// ErrOOBLeaf indicates GetLeafPVS was asked for the potentially visible set
// of a leaf flagged out-of-bounds, for which visibility is undefined.
var ErrOOBLeaf = errors.New("pvs: source leaf is out of bounds")

// ErrInvalidLeaf indicates the requested source leaf id is outside
// [0, leafCount).
var ErrInvalidLeaf = errors.New("pvs: source leaf id out of range")
