// internal/component/enemy.go
package component

// Oscillation moves an entity down Band pixels and back up, Speed per tick.
type Oscillation struct {
	Band   int
	Speed  int
	Offset int  // current displacement from the spawn row
	Up     bool // true while travelling back towards the spawn row
}

// Patrol moves an entity right up to Max pixels and back, Speed per tick.
type Patrol struct {
	Max      int
	Speed    int
	Offset   int // current displacement from the spawn column
	Leftward bool
}

// Drift moves an entity horizontally by a random step in [0, MaxStep] each tick,
// bouncing off the screen edges.
type Drift struct {
	MaxStep  int
	Leftward bool
}
