package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mcoot/castlewars/internal/model"
	"github.com/mcoot/castlewars/internal/services/game"
)

// eventPrinter returns a handler that writes each game event to w,
// either as a readable line or as a JSON line
func eventPrinter(w io.Writer, jsonOutput bool) game.EventHandler {
	if jsonOutput {
		enc := json.NewEncoder(w)
		return func(e model.Event) {
			_ = enc.Encode(e)
		}
	}
	return func(e model.Event) {
		fmt.Fprintf(w, "[turn %d] %s\n", e.Turn, describeEvent(e))
	}
}

func describeEvent(e model.Event) string {
	unit := fmt.Sprintf("%s's %s", e.PlayerID, e.Unit.DisplayName())
	if e.UnitID > 0 {
		unit = fmt.Sprintf("%s #%d", unit, e.UnitID)
	}

	switch e.Type {
	case model.EventUnitBought:
		if p, ok := e.Payload.(model.UnitBoughtPayload); ok {
			return fmt.Sprintf("%s bought a %s (%d gold left)", e.PlayerID, e.Unit.DisplayName(), p.GoldLeft)
		}
		return fmt.Sprintf("%s bought a %s", e.PlayerID, e.Unit.DisplayName())
	case model.EventUnitAttacked:
		if p, ok := e.Payload.(model.UnitAttackedPayload); ok {
			return fmt.Sprintf("%s's %s hit %s for %d (hp %d)",
				p.AttackerOwner, p.Attacker.DisplayName(), unit, p.Damage, p.RemainingHP)
		}
		return unit + " was attacked"
	case model.EventUnitDied:
		return unit + " died"
	case model.EventCastleDestroyed:
		return fmt.Sprintf("%s's castle was destroyed", e.PlayerID)
	default:
		return string(e.Type)
	}
}
