package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatchReachesSubscribersInOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	a := &named{name: "a", log: &order}
	b := &named{name: "b", log: &order}
	d.Subscribe(a, EnemyDestroyed)
	d.Subscribe(b, EnemyDestroyed, GameOver)

	d.Emit(EnemyDestroyed, EnemyDestroyedData{Points: 10})
	d.Emit(GameOver, GameOverData{Score: 10})
	d.Emit(WaveStarted, nil)

	assert.Equal(t, []string{"a", "b", "b"}, order)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r1, r2 := &recorder{}, &recorder{}
	d.Subscribe(r1, All...)
	d.Subscribe(r2, PlayerHit)

	d.Unsubscribe(PlayerHit, r1)
	d.Unsubscribe(GameRestarted, &recorder{})
	d.Emit(PlayerHit, PlayerHitData{Damage: 2, Health: 14})
	d.Emit(GameRestarted, nil)

	assert.Len(t, r1.got, 1)
	assert.Equal(t, GameRestarted, r1.got[0].Type)
	assert.Len(t, r2.got, 1)
	assert.Equal(t, PlayerHitData{Damage: 2, Health: 14}, r2.got[0].Data)
}

func TestNilDispatcherAndListener(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() { d.Emit(GameOver, nil) })

	d = NewDispatcher()
	d.Subscribe(nil, GameOver)
	assert.NotPanics(t, func() { d.Emit(GameOver, nil) })
}

type named struct {
	name string
	log  *[]string
}

func (n *named) OnEvent(Event) {
	*n.log = append(*n.log, n.name)
}
