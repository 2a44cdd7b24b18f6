package events

const (
	// Streams
	AdminEventsStream = "ADMIN_EVENTS"

	// Events
	TournamentCreated   = "events.admin.tournamentCreated"
	TournamentUpdated   = "events.admin.tournamentUpdated"
	TournamentDeleted   = "events.admin.tournamentDeleted"
	AnnouncementCreated = "events.admin.announcementCreated"
	AnnouncementUpdated = "events.admin.announcementUpdated"
	AnnouncementDeleted = "events.admin.announcementDeleted"
	UserRoleChanged     = "events.admin.userRoleChanged"
	UserStatusChanged   = "events.admin.userStatusChanged"
	PointsAwarded       = "events.admin.pointsAwarded"

	// Event Wildcards
	AdminEventsWildcard = "events.admin.*"
)

type EntityEvent struct {
	EntityId  string `json:"entityId"`
	AdminId   string `json:"adminId"`
	TimeStamp int64  `json:"timestamp"`
}

type UserRoleChangedEvent struct {
	UserId    string `json:"userId"`
	Role      string `json:"role"`
	AdminId   string `json:"adminId"`
	TimeStamp int64  `json:"timestamp"`
}

type UserStatusChangedEvent struct {
	UserId    string `json:"userId"`
	Active    bool   `json:"active"`
	AdminId   string `json:"adminId"`
	TimeStamp int64  `json:"timestamp"`
}

type PointsAwardedEvent struct {
	UserId     string `json:"userId"`
	Amount     int    `json:"amount"`
	Reason     string `json:"reason"`
	NewBalance int    `json:"newBalance"`
	AdminId    string `json:"adminId"`
	TimeStamp  int64  `json:"timestamp"`
}
