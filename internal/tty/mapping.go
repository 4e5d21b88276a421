// internal/tty/mapping.go
package tty

import (
	"image"

	"go-space-invaders/internal/utils"
)

// Mapper scales playfield pixels onto terminal cells.
// The bottom row of the terminal is reserved for the status line.
type Mapper struct {
	Cols, Rows     int
	WorldW, WorldH int
}

// NewMapper builds a mapper for a cols×rows terminal showing a worldW×worldH playfield.
func NewMapper(cols, rows, worldW, worldH int) Mapper {
	return Mapper{Cols: cols, Rows: rows, WorldW: worldW, WorldH: worldH}
}

// FieldRows is the number of rows available to the playfield.
func (m Mapper) FieldRows() int {
	return max(m.Rows-1, 0)
}

// Cell maps a pixel to the cell containing it, clamped to the playfield.
func (m Mapper) Cell(p image.Point) (col, row int) {
	if m.Cols <= 0 || m.FieldRows() <= 0 || m.WorldW <= 0 || m.WorldH <= 0 {
		return 0, 0
	}
	col = utils.Clamp(utils.ScaleInt(p.X, m.WorldW, m.Cols), 0, m.Cols-1)
	row = utils.Clamp(utils.ScaleInt(p.Y, m.WorldH, m.FieldRows()), 0, m.FieldRows()-1)
	return col, row
}

// Cells returns the inclusive cell range covered by r. Every non-empty
// rectangle covers at least one cell, so thin projectiles stay visible.
func (m Mapper) Cells(r image.Rectangle) (c0, r0, c1, r1 int) {
	c0, r0 = m.Cell(r.Min)
	c1, r1 = m.Cell(r.Max.Sub(image.Pt(1, 1)))
	if c1 < c0 {
		c1 = c0
	}
	if r1 < r0 {
		r1 = r0
	}
	return c0, r0, c1, r1
}
