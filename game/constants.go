package game

type BoardState int

const (
	Ongoing BoardState = iota
	Won
	Lost
)

func (state BoardState) String() string {
	switch state {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "ongoing"
	}
}

// FlagPolicy controls whether Board.Flag may mark an already opened cell.
type FlagPolicy int

const (
	FlagAnywhere FlagPolicy = iota
	FlagClosedOnly
)

const (
	GlyphClosed = "⬜ "
	GlyphFlag   = "🚩 "
	GlyphMine   = "💣 "
	GlyphBlank  = "　 "

	// Full-width digits start at U+FF10 ('０')
	fullWidthZero = 0xff10
)

const DefaultMineMarker = 'x'

type point struct {
	x, y int
}

var neighborDirections = []point{
	{-1, -1}, {0, -1}, {+1, -1},
	{-1, 0}, {+1, 0},
	{-1, +1}, {0, +1}, {+1, +1},
}
