package leafgraph

import "errors"

// ErrNilTree indicates BuildLeafGraph was called with a nil *bsp.Tree.
var ErrNilTree = errors.New("leafgraph: nil tree")
