// component/render.go
package component

import "image"

// SpriteID names an image the front end knows how to draw.
type SpriteID int

const (
	SpritePlayer SpriteID = iota
	SpritePlayerProjectile
	SpriteEnemyProjectile
	SpriteCommonEnemy
	SpriteRareEnemy
	SpriteUltraRareEnemy
	SpriteButton
	spriteCount
)

// SpriteCount is the number of distinct sprites.
const SpriteCount = int(spriteCount)

func (id SpriteID) String() string {
	switch id {
	case SpritePlayer:
		return "player"
	case SpritePlayerProjectile:
		return "player_projectile"
	case SpriteEnemyProjectile:
		return "enemy_projectile"
	case SpriteCommonEnemy:
		return "common_enemy"
	case SpriteRareEnemy:
		return "rare_enemy"
	case SpriteUltraRareEnemy:
		return "ultra_rare_enemy"
	case SpriteButton:
		return "button"
	}
	return "unknown"
}

// Sprite is one entry of a frame's draw list.
type Sprite struct {
	ID     SpriteID
	Bounds image.Rectangle
}
