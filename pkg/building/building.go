package building

// RoomType is the category tag of a room.
type RoomType string

const (
	RoomTypeEntrance  RoomType = "entrance"
	RoomTypeOffice    RoomType = "office"
	RoomTypeElevator  RoomType = "elevator"
	RoomTypeStairs    RoomType = "stairs"
	RoomTypeMeeting   RoomType = "meeting"
	RoomTypeRestroom  RoomType = "restroom"
	RoomTypeStorage   RoomType = "storage"
	RoomTypeTechnical RoomType = "technical"
	RoomTypeTraining  RoomType = "training"
	RoomTypeFacility  RoomType = "facility"
)

// KnownRoomTypes lists every category the bundled data uses.
var KnownRoomTypes = []RoomType{
	RoomTypeEntrance,
	RoomTypeOffice,
	RoomTypeElevator,
	RoomTypeStairs,
	RoomTypeMeeting,
	RoomTypeRestroom,
	RoomTypeStorage,
	RoomTypeTechnical,
	RoomTypeTraining,
	RoomTypeFacility,
}

// IsKnown reports whether t is one of KnownRoomTypes.
func (t RoomType) IsKnown() bool {
	for _, k := range KnownRoomTypes {
		if t == k {
			return true
		}
	}
	return false
}

// RoomSpec is a room as it appears in a building file. The id is the map key.
type RoomSpec struct {
	Name  string   `json:"name" yaml:"name"`
	Floor int      `json:"floor" yaml:"floor"`
	X     float64  `json:"x" yaml:"x"`
	Y     float64  `json:"y" yaml:"y"`
	Type  RoomType `json:"type" yaml:"type"`
}

// FloorSpec groups the rooms sharing a floor index.
type FloorSpec struct {
	Name  string   `json:"name" yaml:"name"`
	Rooms []string `json:"rooms" yaml:"rooms"`
}

// Data is the static description of a building, loaded once at startup.
type Data struct {
	Name        string              `json:"name,omitempty" yaml:"name,omitempty"`
	Rooms       map[string]RoomSpec `json:"rooms" yaml:"rooms"`
	Connections map[string][]string `json:"connections" yaml:"connections"`
	Floors      map[int]FloorSpec   `json:"floors" yaml:"floors"`
}

// Room is an immutable node of a Graph.
type Room struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Floor int      `json:"floor"`
	X     float64  `json:"x"`
	Y     float64  `json:"y"`
	Type  RoomType `json:"type"`
}

// Summary is the short form of a room used by listings and search.
type Summary struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Floor int      `json:"floor"`
	Type  RoomType `json:"type"`
}

// Floor is a named floor and the ids of its rooms, in declaration order.
type Floor struct {
	Index int      `json:"index"`
	Name  string   `json:"name"`
	Rooms []string `json:"rooms"`
}
