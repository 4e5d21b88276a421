package defs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRarity(t *testing.T) {
	for in, want := range map[string]Rarity{
		"common":     Common,
		" Rare ":     Rare,
		"Ultra Rare": UltraRare,
		"ULTRARARE":  UltraRare,
		"ultra_rare": UltraRare,
	} {
		got, err := ParseRarity(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseRarity("legendary")
	assert.ErrorIs(t, err, ErrUnknownRarity)
	assert.False(t, Rarity(7).Valid())
	assert.Equal(t, "Rarity(7)", Rarity(7).String())
}

func TestRarityAsJSONKey(t *testing.T) {
	data, err := json.Marshal(map[Rarity]int{UltraRare: 50})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Ultra Rare": 50}`, string(data))

	var m map[Rarity]int
	require.NoError(t, json.Unmarshal([]byte(`{"rare": 20}`), &m))
	assert.Equal(t, map[Rarity]int{Rare: 20}, m)

	_, err = json.Marshal(map[Rarity]int{Rarity(-1): 1})
	assert.Error(t, err)
}

func TestDefaultWave(t *testing.T) {
	require.NoError(t, DefaultWave.Validate())
	assert.Equal(t, 78, DefaultWave.Size())

	slots := DefaultWave.Slots()
	require.Len(t, slots, 78)
	assert.Equal(t, Slot{Rarity: UltraRare, X: 45, Y: 60}, slots[0])
	assert.Equal(t, Slot{Rarity: Rare, X: 550, Y: 150}, slots[10])
	assert.Equal(t, Slot{Rarity: Common, X: 950, Y: 375}, slots[77])
}

func TestWaveValidate(t *testing.T) {
	assert.Error(t, WaveLayout{}.Validate())
	bad := WaveLayout{Formations: []Formation{{Rarity: Rarity(9), Count: 1, Rows: []int{10}}}}
	assert.ErrorIs(t, bad.Validate(), ErrUnknownRarity)
	empty := WaveLayout{Formations: []Formation{{Rarity: Common, Count: 1}}}
	assert.Error(t, empty.Validate())
	stacked := WaveLayout{Formations: []Formation{{Rarity: Common, StartX: 50, Count: 3, Rows: []int{100}}}}
	assert.Error(t, stacked.Validate())
	single := WaveLayout{Formations: []Formation{{Rarity: UltraRare, StartX: 45, Count: 1, Rows: []int{60}}}}
	assert.NoError(t, single.Validate())
}

func TestWaveLayoutDecodesIntoFreshValue(t *testing.T) {
	w := WaveLayout{Formations: []Formation{{Rarity: UltraRare, StartX: 45, Gap: 7, Count: 1, Rows: []int{60, 90}}}}
	require.NoError(t, json.Unmarshal([]byte(`{"formations":[{"rarity":"Common","count":2,"rows":[100]}]}`), &w))
	assert.Equal(t, []Formation{{Rarity: Common, Count: 2, Rows: []int{100}}}, w.Formations)

	err := json.Unmarshal([]byte(`{"formations":[{"rarity":"Common","count":2,"rows":[100],"spacing":5}]}`), &w)
	assert.Error(t, err, "unknown formation fields are rejected")
}
