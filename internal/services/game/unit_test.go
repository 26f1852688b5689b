package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/castlewars/internal/model"
)

func TestNewUnitStartsAtFullHealth(t *testing.T) {
	for _, kind := range model.AllUnitKinds() {
		unit, err := newUnit(1, kind, "p1")
		require.NoError(t, err)

		stats, _ := model.StatsFor(kind)
		assert.Equal(t, stats.BaseHP, unit.HP, kind)
		assert.True(t, unit.IsAlive(), kind)
		assert.Equal(t, model.PlayerID("p1"), unit.Owner)
	}
}

func TestNewUnitRejectsUnknownKind(t *testing.T) {
	_, err := newUnit(1, "dragon", "p1")
	assert.ErrorIs(t, err, model.ErrInvalidUnitType)
}

func TestApplyDamageSubtractsArmor(t *testing.T) {
	tests := []struct {
		name      string
		kind      model.UnitKind
		damage    int
		wantTaken int
		wantHP    int
	}{
		{"castle has no armor", model.UnitCastle, 10, 10, 90},
		{"archer armor 1", model.UnitArcher, 10, 9, 11},
		{"knight armor 5", model.UnitKnight, 10, 5, 15},
		{"armor absorbs weak hit", model.UnitKnight, 3, 0, 20},
		{"zero damage", model.UnitFarmer, 0, 0, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit, err := newUnit(1, tt.kind, "p1")
			require.NoError(t, err)

			taken, died := unit.applyDamage(tt.damage)
			assert.Equal(t, tt.wantTaken, taken)
			assert.Equal(t, tt.wantHP, unit.HP)
			assert.False(t, died)
		})
	}
}

func TestApplyDamageReportsDeathOnce(t *testing.T) {
	unit, err := newUnit(1, model.UnitFarmer, "p1")
	require.NoError(t, err)

	_, died := unit.applyDamage(15)
	assert.False(t, died)
	assert.True(t, unit.IsAlive())

	_, died = unit.applyDamage(15)
	assert.True(t, died)
	assert.False(t, unit.IsAlive())
	assert.Equal(t, -10, unit.HP)

	taken, died := unit.applyDamage(15)
	assert.False(t, died, "a dead unit must not die twice")
	assert.Equal(t, 0, taken)
	assert.Equal(t, -10, unit.HP)
}

func TestApplyDamageExactlyZeroHPIsDead(t *testing.T) {
	unit, err := newUnit(1, model.UnitFarmer, "p1")
	require.NoError(t, err)

	_, died := unit.applyDamage(20)
	assert.True(t, died)
	assert.Equal(t, 0, unit.HP)
	assert.False(t, unit.IsAlive())
}

func TestUnitString(t *testing.T) {
	unit, err := newUnit(1, model.UnitArcher, "p1")
	require.NoError(t, err)
	assert.Equal(t, "<Archer hp=20/20 def=1 atk=10>", unit.String())
}

func TestEscalatedPrice(t *testing.T) {
	assert.Equal(t, 5, escalatedPrice(5, 1.2, 0))
	assert.Equal(t, 6, escalatedPrice(5, 1.2, 1))
	assert.Equal(t, 7, escalatedPrice(5, 1.2, 2))  // 7.2
	assert.Equal(t, 9, escalatedPrice(5, 1.2, 3))  // 8.64
	assert.Equal(t, 29, escalatedPrice(20, 1.2, 2)) // 28.8
	assert.Equal(t, 52, escalatedPrice(30, 1.2, 3)) // 51.84
	assert.Equal(t, 30, escalatedPrice(30, 1.0, 7))
	assert.Equal(t, 3, escalatedPrice(2, 1.25, 1)) // 2.5 rounds away from zero
}
