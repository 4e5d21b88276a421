// internal/defs/waves.go
package defs

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Formation places Count enemies of one rarity on every row in Rows,
// starting at StartX and stepping by Gap. Coordinates are mid-bottom anchors.
type Formation struct {
	Rarity Rarity `json:"rarity"`
	StartX int    `json:"start_x"`
	Gap    int    `json:"gap"`
	Count  int    `json:"count"`
	Rows   []int  `json:"rows"`
}

// WaveLayout is the fixed arrangement used for every wave.
type WaveLayout struct {
	Formations []Formation `json:"formations"`
}

// UnmarshalJSON replaces the layout instead of merging into it: a formation
// that omits a field gets the zero value, never the one of the formation it overwrites.
func (w *WaveLayout) UnmarshalJSON(data []byte) error {
	type plain WaveLayout
	var fresh plain
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fresh); err != nil {
		return err
	}
	*w = WaveLayout(fresh)
	return nil
}

// DefaultWave: one Ultra Rare at the anchor, two rows of Rares, three rows of Commons.
var DefaultWave = WaveLayout{
	Formations: []Formation{
		{Rarity: UltraRare, StartX: 45, Gap: 0, Count: 1, Rows: []int{60}},
		{Rarity: Rare, StartX: 100, Gap: 50, Count: 10, Rows: []int{150, 200}},
		{Rarity: Common, StartX: 50, Gap: 50, Count: 19, Rows: []int{275, 325, 375}},
	},
}

// Size is the number of enemies a single wave spawns.
func (w WaveLayout) Size() int {
	n := 0
	for _, f := range w.Formations {
		n += f.Count * len(f.Rows)
	}
	return n
}

// Slots expands the layout into spawn points in row order.
func (w WaveLayout) Slots() []Slot {
	slots := make([]Slot, 0, w.Size())
	for _, f := range w.Formations {
		for _, y := range f.Rows {
			x := f.StartX
			for i := 0; i < f.Count; i++ {
				slots = append(slots, Slot{Rarity: f.Rarity, X: x, Y: y})
				x += f.Gap
			}
		}
	}
	return slots
}

// Validate checks every formation names a known rarity, has a positive count
// and does not stack several enemies on one point.
func (w WaveLayout) Validate() error {
	if len(w.Formations) == 0 {
		return fmt.Errorf("wave layout has no formations")
	}
	for i, f := range w.Formations {
		if !f.Rarity.Valid() {
			return fmt.Errorf("formation %d: %w: %d", i, ErrUnknownRarity, int(f.Rarity))
		}
		if f.Count <= 0 || len(f.Rows) == 0 {
			return fmt.Errorf("formation %d (%s): needs a positive count and at least one row", i, f.Rarity)
		}
		if f.StartX < 0 {
			return fmt.Errorf("formation %d (%s): start_x must not be negative", i, f.Rarity)
		}
		if f.Count > 1 && f.Gap <= 0 {
			return fmt.Errorf("formation %d (%s): %d enemies per row need a positive gap", i, f.Rarity, f.Count)
		}
	}
	return nil
}

// Slot is one spawn point of a wave.
type Slot struct {
	Rarity Rarity
	X, Y   int
}
