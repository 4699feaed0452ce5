package boxer

// BorderPosition identifies the structural role a glyph fills in a rendered
// box: a corner, an edge, or a joint where border lines meet.
type BorderPosition int

const (
	TopLeft BorderPosition = iota
	TopEdge
	TopJoint
	TopRight
	VerticalEdge
	MidLeft
	MidJoint
	MidRight
	BottomLeft
	BottomEdge
	BottomJoint
	BottomRight
)

// Style supplies the glyph drawn at each border position. The lookup is
// pure and never fails; unknown positions yield the empty string. A Style
// must be immutable so it can be shared across concurrent render calls
// without synchronization. Every glyph must occupy exactly one display
// column.
type Style interface {
	Glyph(BorderPosition) string
}

type glyphSet struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

func (g glyphSet) Glyph(p BorderPosition) string {
	switch p {
	case TopLeft:
		return g.topLeft
	case TopEdge, BottomEdge:
		return g.horizontal
	case TopJoint:
		return g.topTee
	case TopRight:
		return g.topRight
	case VerticalEdge:
		return g.vertical
	case MidLeft:
		return g.leftTee
	case MidJoint:
		return g.cross
	case MidRight:
		return g.rightTee
	case BottomLeft:
		return g.bottomLeft
	case BottomJoint:
		return g.bottomTee
	case BottomRight:
		return g.bottomRight
	default:
		return ""
	}
}

// Built-in styles. All are safe for concurrent use.
var (
	// Thin draws single thin lines: ┌─┬─┐│├─┼─┤└─┴─┘
	Thin Style = glyphSet{
		topLeft: "┌", topRight: "┐", bottomLeft: "└", bottomRight: "┘",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	}

	// Double draws double lines: ╔═╦═╗║╠═╬═╣╚═╩═╝
	Double Style = glyphSet{
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	}

	// ASCII draws with plain ASCII characters: +-+||+-+-++-+-+
	ASCII Style = glyphSet{
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	}

	// Rounded is Thin with rounded corners: ╭─┬─╮│├─┼─┤╰─┴─╯
	Rounded Style = glyphSet{
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	}

	// Heavy draws thick lines: ┏━┳━┓┃┣━╋━┫┗━┻━┛
	Heavy Style = glyphSet{
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	}
)
