package board

import "strconv"

type TileMode int8

const (
	Concealed TileMode = iota
	Flagged
	Revealed
)

// MistakeKind records why a tile counts as an error once the match is over.
type MistakeKind int8

const (
	// TrippedMine marks the mine the player stepped on.
	TrippedMine MistakeKind = iota
	// FlaggedField marks a safe tile the player wrongly flagged.
	FlaggedField
)

type contentKind int8

const (
	kindField contentKind = iota
	kindMine
	kindMistake
)

// Content is the hidden payload of a tile: a mine, a safe field annotated
// with its adjacent mine count, or (only after the match has finished) a
// mistake marker. The zero value is Field(0).
type Content struct {
	kind    contentKind
	count   uint8
	mistake MistakeKind
}

func FieldContent(count int) Content {
	return Content{kind: kindField, count: uint8(count)}
}

func MineContent() Content {
	return Content{kind: kindMine}
}

func MistakeContent(kind MistakeKind, count int) Content {
	return Content{kind: kindMistake, mistake: kind, count: uint8(count)}
}

func (c Content) IsField() bool   { return c.kind == kindField }
func (c Content) IsMine() bool    { return c.kind == kindMine }
func (c Content) IsMistake() bool { return c.kind == kindMistake }

// Count reports the adjacent mine count of a Field tile. For a
// FlaggedField mistake it is the count the field had before the finish
// sweep; for anything else it is zero.
func (c Content) Count() int { return int(c.count) }

func (c Content) Mistake() (MistakeKind, bool) {
	return c.mistake, c.kind == kindMistake
}

// Tile is one grid cell. The zero value is a concealed Field(0), which
// doubles as the placeholder reported before a board exists.
type Tile struct {
	Mode    TileMode
	Content Content
}

func (t Tile) String() string {
	switch t.Mode {
	case Concealed:
		return "-"
	case Flagged:
		return "F"
	}
	switch {
	case t.Content.IsMine():
		return "*"
	case t.Content.IsMistake():
		if kind, _ := t.Content.Mistake(); kind == TrippedMine {
			return "@"
		}
		return "X"
	case t.Content.Count() == 0:
		return " "
	default:
		return strconv.Itoa(t.Content.Count())
	}
}
