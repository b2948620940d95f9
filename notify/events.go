package notify

import (
	"encoding/json"
	"time"
)

const (
	ActionCreated = "created"
	ActionDeleted = "deleted"
)

// RecordEvent tells consumers that a user's record set changed and a refetch
// is in order. It deliberately carries no record body; consumers read the
// store, which stays the single source of truth.
type RecordEvent struct {
	Action    string    `json:"action"`
	RecordID  uint      `json:"record_id"`
	UserID    uint      `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

func NewRecordEvent(action string, recordID, userID uint) *RecordEvent {
	return &RecordEvent{
		Action:    action,
		RecordID:  recordID,
		UserID:    userID,
		Timestamp: time.Now(),
	}
}

func (e *RecordEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func RecordEventFromJSON(data []byte) (*RecordEvent, error) {
	var e RecordEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
