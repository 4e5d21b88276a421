// internal/component/game_state.go
package component

// Phase is the top-level state of a game session.
type Phase int

const (
	Playing Phase = iota
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "Playing"
	case GameOver:
		return "GameOver"
	}
	return "Unknown"
}
