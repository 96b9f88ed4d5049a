package scenefixture

import "fmt"

// Parse reads a scene fixture and returns the flat [ax,ay,bx,by,opq] int32
// array bsp.BuildBSP expects, one quintuple per wall in source order.
func Parse(src string) ([]int32, error) {
	var s scene
	if err := parser.ParseString(src, &s); err != nil {
		return nil, fmt.Errorf("scenefixture: %w", err)
	}

	flat := make([]int32, 0, len(s.Walls)*5)
	for _, w := range s.Walls {
		var opq int32
		if w.Opacity == "opaque" {
			opq = 1
		}
		flat = append(flat, int32(w.A.X), int32(w.A.Y), int32(w.B.X), int32(w.B.Y), opq)
	}
	return flat, nil
}
