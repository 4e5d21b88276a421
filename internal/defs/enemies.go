// internal/defs/enemies.go
package defs

// EnemyDefinition holds the static tuning of one enemy rarity.
type EnemyDefinition struct {
	Rarity           Rarity
	Health           int
	Points           int
	ProjectileDamage int
	Speed            int // per-tick step; for Ultra Rare the upper bound of the random step
	Width, Height    int
}
