package model

// EventType identifies the type of event
type EventType string

const (
	EventUnitBought      EventType = "unit_bought"
	EventUnitAttacked    EventType = "unit_attacked"
	EventUnitDied        EventType = "unit_died"
	EventCastleDestroyed EventType = "castle_destroyed"
)

// Event is emitted by a running game as units act and die
type Event struct {
	Type     EventType `json:"type"`
	Turn     int       `json:"turn"`
	PlayerID PlayerID  `json:"player_id"` // The player who owns the affected unit
	Unit     UnitKind  `json:"unit"`
	UnitID   int       `json:"unit_id,omitempty"`
	Payload  any       `json:"payload,omitempty"` // Type-specific data
}

// UnitAttackedPayload contains data for unit attacked events
type UnitAttackedPayload struct {
	AttackerOwner PlayerID `json:"attacker_owner"`
	Attacker      UnitKind `json:"attacker"`
	Damage        int      `json:"damage"` // Damage after armor
	RemainingHP   int      `json:"remaining_hp"`
}

// UnitBoughtPayload contains data for unit bought events
type UnitBoughtPayload struct {
	GoldLeft int `json:"gold_left"`
}
