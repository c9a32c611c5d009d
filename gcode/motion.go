package gcode

// Kind is the motion type commanded by a block.
type Kind int

const (
	KindNone Kind = iota
	KindRapid
	KindLinear
	KindArcCW
	KindArcCCW
)

func (k Kind) IsArc() bool { return k == KindArcCW || k == KindArcCCW }

// Arg is an optional word value. An invalid Arg means the word was
// absent from the block and the axis keeps its previous value.
type Arg struct {
	Valid bool
	Value float64
}

// Or returns the value, or def when the arg was absent.
func (a Arg) Or(def float64) float64 {
	if a.Valid {
		return a.Value
	}
	return def
}

// Motion is one commanded move extracted from a block: the motion kind,
// the target axes that were present, and arc center offsets relative to
// the move's start point.
type Motion struct {
	Kind    Kind
	X, Y, Z Arg
	I, J    float64
}

// MotionFromBlock extracts a Motion from b. It returns false when the
// block commands no recognized motion; axis words on such a block are
// discarded with it, they never carry over on their own.
func MotionFromBlock(b Block) (Motion, bool) {
	var m Motion
	for _, g := range b {
		switch g.W {
		case 'G':
			// last G on the line wins, and a non-motion G
			// (G90, G21, ...) displaces an earlier motion one
			switch g.Arg {
			case 0:
				m.Kind = KindRapid
			case 1:
				m.Kind = KindLinear
			case 2:
				m.Kind = KindArcCW
			case 3:
				m.Kind = KindArcCCW
			default:
				m.Kind = KindNone
			}
		case 'X':
			m.X = Arg{Valid: true, Value: g.Arg}
		case 'Y':
			m.Y = Arg{Valid: true, Value: g.Arg}
		case 'Z':
			m.Z = Arg{Valid: true, Value: g.Arg}
		case 'I':
			m.I = g.Arg
		case 'J':
			m.J = g.Arg
		}
	}

	if m.Kind == KindNone {
		return Motion{}, false
	}

	return m, true
}
