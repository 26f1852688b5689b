package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUnitKind(t *testing.T) {
	tests := []struct {
		input   string
		want    UnitKind
		wantErr error
	}{
		{"farmer", UnitFarmer, nil},
		{" Knight ", UnitKnight, nil},
		{"ARCHER", UnitArcher, nil},
		{"castle", UnitCastle, nil},
		{"dragon", "", ErrInvalidUnitType},
		{"", "", ErrInvalidUnitType},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			kind, err := ParseUnitKind(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestIsCombatant(t *testing.T) {
	combatants := map[UnitKind]bool{
		UnitCastle: false,
		UnitFarmer: false,
		UnitArcher: true,
		UnitKnight: true,
	}
	for _, kind := range AllUnitKinds() {
		assert.Equal(t, combatants[kind], kind.IsCombatant(), kind)
	}
}
