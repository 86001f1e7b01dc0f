package models

// ArmState represents the panel's current arm status. The API returns
// the change time as a short date in "timeex"; the client normalizes
// it to an absolute ISO-8601 timestamp before handing the state out.
type ArmState struct {
	StatusType string `json:"statusType"` // e.g. "ARMED_AWAY", "ARMED_HOME", "DISARMED"
	Time       string `json:"timeex"`
	User       string `json:"user"`
	Message    string `json:"message,omitempty"`
}

// ArmStatePayload is the JSON body of the armstate PUT.
type ArmStatePayload struct {
	Code  string `json:"code"`
	State string `json:"state"`
}

// Confirmation is the server acknowledgment returned by the mutating
// endpoints (arm, lock, unlock).
type Confirmation struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}
