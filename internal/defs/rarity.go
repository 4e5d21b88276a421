// internal/defs/rarity.go
package defs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRarity is returned when a rarity name or value is not one of the known kinds.
var ErrUnknownRarity = errors.New("unknown rarity")

// Rarity classifies an enemy. It decides health, score value, motion and fire pattern.
type Rarity int

const (
	Common Rarity = iota
	Rare
	UltraRare
)

// Rarities lists every kind in ascending strength.
func Rarities() []Rarity {
	return []Rarity{Common, Rare, UltraRare}
}

func (r Rarity) String() string {
	switch r {
	case Common:
		return "Common"
	case Rare:
		return "Rare"
	case UltraRare:
		return "Ultra Rare"
	}
	return fmt.Sprintf("Rarity(%d)", int(r))
}

// Valid reports whether r is one of the declared kinds.
func (r Rarity) Valid() bool {
	return r >= Common && r <= UltraRare
}

// ParseRarity accepts "Common", "Rare", "Ultra Rare" and "UltraRare", case-insensitively.
func ParseRarity(s string) (Rarity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "common":
		return Common, nil
	case "rare":
		return Rare, nil
	case "ultra rare", "ultrarare", "ultra_rare":
		return UltraRare, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRarity, s)
}

// MarshalText lets rarities be used as JSON object keys.
func (r Rarity) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRarity, int(r))
	}
	return []byte(r.String()), nil
}

func (r *Rarity) UnmarshalText(b []byte) error {
	parsed, err := ParseRarity(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
