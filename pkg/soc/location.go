package soc

import "strings"

// BuildingRoomKind tells a concrete room apart from the feed's placeholder locations.
type BuildingRoomKind uint8

const (
	Specific BuildingRoomKind = iota
	ToBeAnnounced
	ToBeDetermined
	DoesNotMeet
	OffCampus
	Remote
)

// sentinelRooms maps the literal building/room fields that carry special meaning.
var sentinelRooms = map[string]BuildingRoomKind{
	"TBA":        ToBeAnnounced,
	"TBD TBD":    ToBeDetermined,
	"DNM DNM":    DoesNotMeet,
	"OFF PITT":   OffCampus,
	"CMU REMOTE": Remote,
}

// BuildingRoom is where a Meeting takes place.
type BuildingRoom struct {
	Kind     BuildingRoomKind
	Building string
	Room     string
}

// Room returns a concrete building/room location.
func Room(building, room string) BuildingRoom {
	return BuildingRoom{Kind: Specific, Building: building, Room: room}
}

// ParseBuildingRoom splits a field like "MM A14" into building "MM" and room "A14".
func ParseBuildingRoom(s string) BuildingRoom {
	s = strings.TrimSpace(s)
	if kind, ok := sentinelRooms[s]; ok {
		return BuildingRoom{Kind: kind}
	}

	parts := strings.Fields(s)
	if len(parts) == 0 {
		return Room("", "")
	}
	return Room(parts[0], strings.Join(parts[1:], " "))
}

// IsPhysical reports whether the location names an actual room.
func (b BuildingRoom) IsPhysical() bool {
	return b.Kind == Specific && b.Building != ""
}

func (b BuildingRoom) String() string {
	switch b.Kind {
	case ToBeAnnounced:
		return "TBA"
	case ToBeDetermined:
		return "TBD"
	case DoesNotMeet:
		return "DNM"
	case OffCampus:
		return "OFF PITT"
	case Remote:
		return "REMOTE"
	}
	return strings.TrimSpace(b.Building + " " + b.Room)
}
