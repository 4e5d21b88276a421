// internal/component/projectile.go
package component

// Owner tags which side fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

func (o Owner) String() string {
	if o == OwnerPlayer {
		return "Player"
	}
	return "Enemy"
}

// Opposes reports whether projectiles of o and other belong to different sides.
func (o Owner) Opposes(other Owner) bool {
	return o != other
}

// Direction is the vertical sign of travel: player shots go up, enemy shots go down.
func (o Owner) Direction() int {
	if o == OwnerPlayer {
		return -1
	}
	return 1
}
