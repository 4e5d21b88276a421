// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth    = 1000
	ScreenHeight   = 600
	TicksPerSecond = 30

	PlayerHealth           = 16
	PlayerSpeed            = 10
	PlayerFireCooldown     = 10 // ticks between shots while fire is held
	PlayerStartX           = 500
	PlayerStartY           = 540
	PlayerProjectileDamage = 1

	ProjectileSpeed   = 12
	ProjectileSpawnDY = 25 // projectiles spawn this far above/below the shooter's center

	CommonBand        = 50  // vertical oscillation range of a Common enemy
	RarePatrol        = 300 // horizontal patrol range of a Rare enemy
	EnemyFireInterval = 50  // ticks between enemy volleys at level 1; divided by the level

	TitleFontSize = 72
	HUDFontSize   = 36
	HUDMargin     = 25

	ButtonOffsetY    = 60 // restart button center sits this far below the screen center
	GameOverOffsetY  = 80
	FinalScoreOffset = 20
)

const (
	EnvConfigPath = "INVADERS_CONFIG"
	EnvSeed       = "INVADERS_SEED"
	EnvAssetsDir  = "INVADERS_ASSETS"
	EnvVerbose    = "INVADERS_VERBOSE"
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	TextLightColor  = color.RGBA{255, 255, 255, 255}
	GameOverColor   = color.RGBA{255, 0, 0, 255}
	HealthyColor    = color.RGBA{0, 255, 0, 255}
	LevelColor      = color.RGBA{0, 0, 255, 255}
	ButtonColor     = color.RGBA{70, 130, 180, 220}
	ButtonHover     = color.RGBA{100, 160, 210, 240}
	PauseOverlay    = color.RGBA{0, 0, 0, 128}
)
