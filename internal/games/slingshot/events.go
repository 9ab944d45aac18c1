package slingshot

// EventKind identifies a round lifecycle event.
type EventKind int

const (
	EventRoundStart EventKind = iota
	EventLaunch
	EventHit
	EventMiss      // shot ended without hitting anything
	EventRoundClear
	EventOutOfAmmo // run lost; Score holds the final score
)

func (k EventKind) String() string {
	switch k {
	case EventRoundStart:
		return "round_start"
	case EventLaunch:
		return "launch"
	case EventHit:
		return "hit"
	case EventMiss:
		return "miss"
	case EventRoundClear:
		return "round_clear"
	case EventOutOfAmmo:
		return "out_of_ammo"
	default:
		return "unknown"
	}
}

// Event is reported to the presentation layer through Engine.DrainEvents.
type Event struct {
	Kind     EventKind
	Level    int
	Score    int
	TargetID int       // EventHit only
	Reason   EndReason // EventMiss and EventOutOfAmmo
}
