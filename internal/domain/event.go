package domain

import (
	"encoding/json"
	"time"
)

// EventType is the kind of a logged domain event
type EventType string

const (
	EventNudgeSent          EventType = "nudge_sent"
	EventNudgeConfigChanged EventType = "nudge_config_changed"
	EventNudgeDecision      EventType = "nudge_decision"
)

// SendEventTypes are the event types counted against the daily cap
var SendEventTypes = []EventType{
	EventNudgeSent,
}

// Event is one append-only entry of the event log
type Event struct {
	ID         string
	ProviderID string
	Type       EventType
	Payload    json.RawMessage
	LoggedAt   time.Time
}

// NudgeConfigPayload is the payload of a nudge_config_changed event
type NudgeConfigPayload struct {
	QuietStart *int `json:"quiet_start"`
	QuietEnd   *int `json:"quiet_end"`
	Cap        *int `json:"cap"`
}

// NudgeDecisionPayload is the payload of a nudge_decision telemetry event
type NudgeDecisionPayload struct {
	Allowed    bool `json:"allowed"`
	IsQuiet    bool `json:"is_quiet"`
	Remaining  int  `json:"remaining"`
	SentToday  int  `json:"sent_today"`
	QuietStart int  `json:"quiet_start"`
	QuietEnd   int  `json:"quiet_end"`
	Cap        int  `json:"cap"`
	Degraded   bool `json:"degraded,omitempty"`
}
