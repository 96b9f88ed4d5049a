package scenefixture

import "github.com/alecthomas/participle"

type point struct {
	X int `@Int ","`
	Y int `@Int`
}

type wall struct {
	A       point  `"wall" @@`
	B       point  `@@`
	Opacity string `@( "opaque" | "transparent" )`
}

type scene struct {
	Walls []*wall `@@*`
}

var parser = participle.MustBuild(&scene{})
