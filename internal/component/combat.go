// internal/component/combat.go
package component

// Health is a non-negative hit-point counter.
type Health struct {
	Value int
	Max   int
}

// NewHealth returns a full health component.
func NewHealth(max int) Health {
	return Health{Value: max, Max: max}
}

// TakeDamage subtracts amount, never going below zero.
// Non-positive amounts are ignored so health can only decrease.
func (h *Health) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	h.Value -= amount
	if h.Value < 0 {
		h.Value = 0
	}
}

// Depleted reports whether health has reached zero.
func (h Health) Depleted() bool {
	return h.Value <= 0
}

// Reset refills health to its maximum.
func (h *Health) Reset() {
	h.Value = h.Max
}
