package portal

import "errors"

// ErrGeometricInvariant indicates a boundary portal classified as
// collinear (ClassCOL) with the splitter of the node it was being routed
// through. Convexity guarantees this never happens for a correctly built
// bsp.Tree; seeing it means the tree itself is malformed.
var ErrGeometricInvariant = errors.New("portal: boundary portal collinear with splitter")
