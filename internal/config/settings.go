// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"image"

	"go-space-invaders/internal/defs"
)

// ErrInvalid wraps every validation failure of Settings.
var ErrInvalid = errors.New("invalid configuration")

// Size is a sprite footprint in pixels.
type Size struct {
	W int `json:"w"`
	H int `json:"h"`
}

// Sizes holds the collision footprint of every sprite kind.
type Sizes struct {
	Player        Size                 `json:"player"`
	PlayerShot    Size                 `json:"player_projectile"`
	EnemyShot     Size                 `json:"enemy_projectile"`
	Enemy         map[defs.Rarity]Size `json:"enemy"`
	RestartButton Size                 `json:"button"`
}

// Settings is everything the game reads from configuration. It is loaded once at startup.
type Settings struct {
	ScreenWidth        int         `json:"screen_width"`
	ScreenHeight       int         `json:"screen_height"`
	TicksPerSecond     int         `json:"ticks_per_second"`
	PlayerHealth       int         `json:"player_health"`
	PlayerSpeed        int         `json:"player_speed"`
	PlayerFireCooldown int         `json:"player_fire_cooldown"`
	PlayerStart        image.Point `json:"player_start"`
	PlayerDamage       int         `json:"player_projectile_damage"`
	ProjectileSpeed    int         `json:"projectile_speed"`
	CommonBand         int         `json:"common_band"`
	RarePatrol         int         `json:"rare_patrol"`
	EnemyFireInterval  int         `json:"enemy_fire_interval"`

	EnemyHealth      map[defs.Rarity]int `json:"enemy_health"`
	ProjectileDamage map[defs.Rarity]int `json:"projectile_damage"`
	EnemySpeed       map[defs.Rarity]int `json:"enemy_speed"`
	Points           map[defs.Rarity]int `json:"points"`

	Sizes Sizes           `json:"sizes"`
	Wave  defs.WaveLayout `json:"wave"`

	Seed      int64  `json:"seed"`
	AssetsDir string `json:"assets_dir"`
	Verbose   bool   `json:"verbose"`
}

// Default returns the stock tuning.
func Default() *Settings {
	return &Settings{
		ScreenWidth:        ScreenWidth,
		ScreenHeight:       ScreenHeight,
		TicksPerSecond:     TicksPerSecond,
		PlayerHealth:       PlayerHealth,
		PlayerSpeed:        PlayerSpeed,
		PlayerFireCooldown: PlayerFireCooldown,
		PlayerStart:        image.Pt(PlayerStartX, PlayerStartY),
		PlayerDamage:       PlayerProjectileDamage,
		ProjectileSpeed:    ProjectileSpeed,
		CommonBand:         CommonBand,
		RarePatrol:         RarePatrol,
		EnemyFireInterval:  EnemyFireInterval,
		EnemyHealth: map[defs.Rarity]int{
			defs.Common:    1,
			defs.Rare:      2,
			defs.UltraRare: 16,
		},
		ProjectileDamage: map[defs.Rarity]int{
			defs.Common:    2,
			defs.Rare:      4,
			defs.UltraRare: 8,
		},
		EnemySpeed: map[defs.Rarity]int{
			defs.Common:    1,
			defs.Rare:      2,
			defs.UltraRare: 10,
		},
		Points: map[defs.Rarity]int{
			defs.Common:    10,
			defs.Rare:      20,
			defs.UltraRare: 50,
		},
		Sizes: Sizes{
			Player:     Size{W: 60, H: 48},
			PlayerShot: Size{W: 6, H: 18},
			EnemyShot:  Size{W: 6, H: 18},
			Enemy: map[defs.Rarity]Size{
				defs.Common:    {W: 40, H: 30},
				defs.Rare:      {W: 40, H: 30},
				defs.UltraRare: {W: 64, H: 40},
			},
			RestartButton: Size{W: 240, H: 64},
		},
		Wave: cloneLayout(defs.DefaultWave),
	}
}

func cloneLayout(w defs.WaveLayout) defs.WaveLayout {
	out := defs.WaveLayout{Formations: make([]defs.Formation, len(w.Formations))}
	for i, f := range w.Formations {
		f.Rows = append([]int(nil), f.Rows...)
		out.Formations[i] = f
	}
	return out
}

// Validate fails fast on anything the game cannot run with.
func (s *Settings) Validate() error {
	positive := []struct {
		name string
		v    int
	}{
		{"screen_width", s.ScreenWidth},
		{"screen_height", s.ScreenHeight},
		{"ticks_per_second", s.TicksPerSecond},
		{"player_health", s.PlayerHealth},
		{"player_speed", s.PlayerSpeed},
		{"player_fire_cooldown", s.PlayerFireCooldown},
		{"player_projectile_damage", s.PlayerDamage},
		{"projectile_speed", s.ProjectileSpeed},
		{"common_band", s.CommonBand},
		{"rare_patrol", s.RarePatrol},
		{"enemy_fire_interval", s.EnemyFireInterval},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, p.name, p.v)
		}
	}

	tables := []struct {
		name string
		m    map[defs.Rarity]int
	}{
		{"enemy_health", s.EnemyHealth},
		{"projectile_damage", s.ProjectileDamage},
		{"enemy_speed", s.EnemySpeed},
		{"points", s.Points},
	}
	for _, t := range tables {
		if err := checkTable(t.name, t.m); err != nil {
			return err
		}
	}

	for _, sz := range []struct {
		name string
		v    Size
	}{
		{"sizes.player", s.Sizes.Player},
		{"sizes.player_projectile", s.Sizes.PlayerShot},
		{"sizes.enemy_projectile", s.Sizes.EnemyShot},
		{"sizes.button", s.Sizes.RestartButton},
	} {
		if sz.v.W <= 0 || sz.v.H <= 0 {
			return fmt.Errorf("%w: %s must have a positive size", ErrInvalid, sz.name)
		}
	}
	for _, r := range defs.Rarities() {
		sz, ok := s.Sizes.Enemy[r]
		if !ok || sz.W <= 0 || sz.H <= 0 {
			return fmt.Errorf("%w: sizes.enemy[%s] missing or not positive", ErrInvalid, r)
		}
	}

	if err := s.Wave.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

func checkTable(name string, m map[defs.Rarity]int) error {
	for r := range m {
		if !r.Valid() {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, name, defs.ErrUnknownRarity)
		}
	}
	for _, r := range defs.Rarities() {
		v, ok := m[r]
		if !ok {
			return fmt.Errorf("%w: %s[%s] is missing", ErrInvalid, name, r)
		}
		if v <= 0 {
			return fmt.Errorf("%w: %s[%s] must be positive, got %d", ErrInvalid, name, r, v)
		}
	}
	return nil
}

// PointsFor looks up the score awarded for destroying an enemy of rarity r.
func (s *Settings) PointsFor(r defs.Rarity) (int, error) {
	p, ok := s.Points[r]
	if !ok {
		return 0, fmt.Errorf("points: %w: %s", defs.ErrUnknownRarity, r)
	}
	return p, nil
}

// Enemy assembles the definition of one rarity from the individual tables.
func (s *Settings) Enemy(r defs.Rarity) (defs.EnemyDefinition, error) {
	if !r.Valid() {
		return defs.EnemyDefinition{}, fmt.Errorf("enemy: %w: %d", defs.ErrUnknownRarity, int(r))
	}
	points, err := s.PointsFor(r)
	if err != nil {
		return defs.EnemyDefinition{}, err
	}
	health, ok := s.EnemyHealth[r]
	if !ok {
		return defs.EnemyDefinition{}, fmt.Errorf("enemy_health: %w: %s", defs.ErrUnknownRarity, r)
	}
	damage, ok := s.ProjectileDamage[r]
	if !ok {
		return defs.EnemyDefinition{}, fmt.Errorf("projectile_damage: %w: %s", defs.ErrUnknownRarity, r)
	}
	size := s.Sizes.Enemy[r]
	return defs.EnemyDefinition{
		Rarity:           r,
		Health:           health,
		Points:           points,
		ProjectileDamage: damage,
		Speed:            s.EnemySpeed[r],
		Width:            size.W,
		Height:           size.H,
	}, nil
}

// RestartButton is the screen rectangle of the "Play Again" control.
func (s *Settings) RestartButton() image.Rectangle {
	cx := s.ScreenWidth / 2
	cy := s.ScreenHeight/2 + ButtonOffsetY
	w, h := s.Sizes.RestartButton.W, s.Sizes.RestartButton.H
	return image.Rect(cx-w/2, cy-h/2, cx-w/2+w, cy-h/2+h)
}
