package models

// HistoryResponse wraps the event log list.
type HistoryResponse struct {
	Logs []HistoryEntry `json:"logs"`
}

// HistoryEntry is one panel event. Time arrives as a short date and is
// normalized independently per entry.
type HistoryEntry struct {
	Time      string `json:"time"`
	EventType string `json:"eventType"`
	User      string `json:"user,omitempty"`
	LockName  string `json:"lockName,omitempty"`
	Channel   string `json:"channel,omitempty"`
}
