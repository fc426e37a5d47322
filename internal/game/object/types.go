// Package object implements the spatial objects that populate an area.
package object

import "fmt"

// InvalidID is the id of no object. Scripts receive it as triggerer when
// nothing caused the event.
const InvalidID uint32 = 0x7f000000

// Type represents the type of object.
type Type uint8

const (
	TypeCreature Type = iota
	TypeItem
	TypeDoor
	TypePlaceable
	TypeTrigger
	TypeSound
	TypeWaypoint
	TypeStore
	TypeEncounter
	TypeAreaOfEffect
	TypeCamera
	TypeArea
)

var typeNames = [...]string{
	TypeCreature:     "creature",
	TypeItem:         "item",
	TypeDoor:         "door",
	TypePlaceable:    "placeable",
	TypeTrigger:      "trigger",
	TypeSound:        "sound",
	TypeWaypoint:     "waypoint",
	TypeStore:        "store",
	TypeEncounter:    "encounter",
	TypeAreaOfEffect: "area_of_effect",
	TypeCamera:       "camera",
	TypeArea:         "area",
}

// String returns the type name. It panics on values outside the enum.
func (t Type) String() string {
	if int(t) >= len(typeNames) {
		panic(fmt.Sprintf("object: unknown type %d", uint8(t)))
	}
	return typeNames[t]
}

// ParseType returns the type with the given name.
func ParseType(name string) (Type, bool) {
	for i, n := range typeNames {
		if n == name {
			return Type(i), true
		}
	}
	return 0, false
}

// ScriptEvent names an object event that can run a script.
type ScriptEvent string

const (
	EventHeartbeat ScriptEvent = "heartbeat"
	EventNotice    ScriptEvent = "notice"
	EventSpawn     ScriptEvent = "spawn"
	EventEnter     ScriptEvent = "enter"
	EventExit      ScriptEvent = "exit"
	EventOpen      ScriptEvent = "open"
	EventDeath     ScriptEvent = "death"
	EventUser      ScriptEvent = "user"
)
