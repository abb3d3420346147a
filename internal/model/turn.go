package model

import "time"

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in a conversation. Turns are immutable once
// appended; edits replace the whole value, they never mutate in place.
type Turn struct {
	Role      Role      `bson:"role"      json:"role"`
	Text      string    `bson:"text"      json:"text"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// SessionInfo is a lightweight listing entry for one retained
// conversation. It deliberately carries no message bodies.
type SessionInfo struct {
	SessionID   string    `bson:"session_id"   json:"session_id"`
	Name        string    `bson:"name"         json:"name"`
	LastUpdated time.Time `bson:"last_updated" json:"last_updated"`
}
