package models

// Redis 键布局
const (
	RoomsKey           = "rooms"
	SponsorsKey        = "sponsors"
	EventsKey          = "events"
	OrganizerEmailsKey = "organizer_emails"
)

// RoomKey room:<id>（hash）
func RoomKey(roomID string) string {
	return "room:" + roomID
}

// RoomElementsKey room:<id>:elements（list，保持插入顺序）
func RoomElementsKey(roomID string) string {
	return RoomKey(roomID) + ":elements"
}

// RoomHallwaysKey room:<id>:hallways（set）
func RoomHallwaysKey(roomID string) string {
	return RoomKey(roomID) + ":hallways"
}

// ElementKey element:<id>（hash）
func ElementKey(elementID string) string {
	return "element:" + elementID
}

// HallwayKey hallway:<id>（hash）
func HallwayKey(hallwayID string) string {
	return "hallway:" + hallwayID
}

// SponsorKey sponsor:<id>（hash）
func SponsorKey(sponsorID string) string {
	return "sponsor:" + sponsorID
}

// EventKey event:<id>（hash）
func EventKey(eventID string) string {
	return "event:" + eventID
}
