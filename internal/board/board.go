// Package board implements the minesweeper grid: mine placement, neighbor
// counts, flood-fill reveal, chord reveal and the end-of-match sweep. It
// knows nothing about game phases, cursors or timing.
package board

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

var ErrTooManyMines = errors.New("mine count must leave at least one safe tile")

// Board is a fixed-size grid of tiles stored row-major (index y*width+x).
type Board struct {
	width, height int
	mineCount     int
	tiles         []Tile
}

// New builds a board with mineCount mines placed uniformly at random,
// excluding the starting tile, and performs the initial reveal at the
// starting position. The initial reveal is always safe.
func New(width, height, startX, startY, mineCount int, r *rand.Rand) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid board size %dx%d", width, height)
	}
	if mineCount >= width*height {
		return nil, ErrTooManyMines
	}
	b := &Board{
		width:     width,
		height:    height,
		mineCount: mineCount,
		tiles:     make([]Tile, width*height),
	}
	b.placeMines(b.index(startX, startY), r)
	b.number()
	b.Reveal(startX, startY)
	return b, nil
}

func (b *Board) Width() int     { return b.width }
func (b *Board) Height() int    { return b.height }
func (b *Board) MineCount() int { return b.mineCount }

func (b *Board) At(x, y int) Tile {
	return b.tiles[b.index(x, y)]
}

func (b *Board) index(x, y int) int {
	return y*b.width + x
}

func (b *Board) coords(i int) (x, y int) {
	return i % b.width, i / b.width
}

// placeMines drops mines one by one on uniformly random tiles, retrying
// picks that land on the excluded starting tile or an existing mine.
func (b *Board) placeMines(ignore int, r *rand.Rand) {
	for planted := 0; planted < b.mineCount; {
		i := b.index(r.IntN(b.width), r.IntN(b.height))
		if i == ignore || b.tiles[i].Content.IsMine() {
			continue
		}
		b.tiles[i].Content = MineContent()
		planted++
	}
}

// number annotates every non-mine tile with its adjacent mine count. Counts
// are fixed here and never recomputed.
func (b *Board) number() {
	for i := range b.tiles {
		if b.tiles[i].Content.IsMine() {
			continue
		}
		mines := 0
		for _, j := range b.neighbors(i) {
			if b.tiles[j].Content.IsMine() {
				mines++
			}
		}
		b.tiles[i].Content = FieldContent(mines)
	}
}

// neighbors returns the indices of the up-to-8 Moore-adjacent tiles,
// clipped at the grid edges.
func (b *Board) neighbors(i int) []int {
	x, y := b.coords(i)
	indices := make([]int, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			xx, yy := x+dx, y+dy
			if xx < 0 || xx >= b.width || yy < 0 || yy >= b.height {
				continue
			}
			indices = append(indices, b.index(xx, yy))
		}
	}
	return indices
}

// Reveal resolves a reveal action at (x, y). A flagged tile is left alone.
// A concealed tile is revealed, cascading through zero-count fields. An
// already revealed field triggers a chord reveal. Revealing a mine is a
// legal outcome; detecting it is the caller's job.
func (b *Board) Reveal(x, y int) {
	i := b.index(x, y)
	switch b.tiles[i].Mode {
	case Flagged:
		return
	case Revealed:
		b.chord(i)
		return
	}
	b.flood(i)
}

// flood reveals the tile at index start and cascades through zero-count
// fields using an explicit worklist, so recursion depth never depends on
// board size. Every tile enters the queue at most a constant number of
// times and flips to Revealed at most once.
func (b *Board) flood(start int) {
	queue := []int{start}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		t := &b.tiles[i]
		if t.Mode != Concealed {
			continue
		}
		t.Mode = Revealed
		if t.Content.IsMine() || t.Content.Count() > 0 {
			continue
		}
		for _, j := range b.neighbors(i) {
			if b.tiles[j].Mode == Concealed {
				queue = append(queue, j)
			}
		}
	}
}

// chord clears the concealed neighborhood of a revealed numbered field
// once exactly that many neighbors are flagged; otherwise it is a no-op.
func (b *Board) chord(i int) {
	t := b.tiles[i]
	if !t.Content.IsField() {
		return
	}
	flags := 0
	for _, j := range b.neighbors(i) {
		if b.tiles[j].Mode == Flagged {
			flags++
		}
	}
	if flags != t.Content.Count() {
		return
	}
	for _, j := range b.neighbors(i) {
		if b.tiles[j].Mode == Concealed {
			b.flood(j)
		}
	}
}

// ToggleFlag flips the tile at (x, y) between Concealed and Flagged.
// Revealed tiles are unaffected.
func (b *Board) ToggleFlag(x, y int) {
	t := &b.tiles[b.index(x, y)]
	switch t.Mode {
	case Concealed:
		t.Mode = Flagged
	case Flagged:
		t.Mode = Concealed
	}
}

// Dead reports whether any mine has been revealed.
func (b *Board) Dead() bool {
	for _, t := range b.tiles {
		if t.Mode == Revealed && t.Content.IsMine() {
			return true
		}
	}
	return false
}

// Cleared reports whether every field tile is revealed, i.e. the player
// has uncovered all safe tiles regardless of flag placement.
func (b *Board) Cleared() bool {
	for _, t := range b.tiles {
		if t.Content.IsField() && t.Mode != Revealed {
			return false
		}
	}
	return true
}

// Flags counts the currently flagged tiles.
func (b *Board) Flags() (count int) {
	for _, t := range b.tiles {
		if t.Mode == Flagged {
			count++
		}
	}
	return
}

// HasMistakes reports whether the finish sweep recorded any mistake. On a
// swept board this distinguishes a loss from a win.
func (b *Board) HasMistakes() bool {
	for _, t := range b.tiles {
		if t.Content.IsMistake() {
			return true
		}
	}
	return false
}

// Sweep converts the board into its terminal snapshot: wrong flags and the
// tripped mine become mistakes, remaining concealed mines are shown, and
// everything else is left as the player last saw it. Sweep runs exactly
// once per match; finding mistake content on entry means the board was
// already swept.
func (b *Board) Sweep() {
	for i := range b.tiles {
		t := &b.tiles[i]
		if t.Content.IsMistake() {
			panic(AssertionError{"sweep of an already swept board"})
		}
		switch {
		case t.Mode == Flagged && t.Content.IsField():
			t.Content = MistakeContent(FlaggedField, t.Content.Count())
		case t.Mode == Revealed && t.Content.IsMine():
			t.Content = MistakeContent(TrippedMine, 0)
		case t.Mode == Concealed && t.Content.IsMine():
			t.Mode = Revealed
		}
	}
}

func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.height {
		for x := range b.width {
			fmt.Fprint(&sb, b.At(x, y).String()+" ")
		}
		fmt.Fprint(&sb, "\n")
	}
	return sb.String()
}
