package gcode

import (
	"strings"
)

type Block []Word

func (b Block) Arg(w byte) (bool, float64) {
	for _, g := range b {
		if g.W == w {
			return true, g.Arg
		}
	}
	return false, 0
}
func (b Block) String() string {
	var s strings.Builder
	for _, g := range b {
		s.WriteString(g.String())
	}
	return s.String()
}
