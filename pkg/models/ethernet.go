package models

// EthernetStatus reports the panel's wired network link.
type EthernetStatus struct {
	Name       string `json:"name"`
	SerialNo   string `json:"serialNo"`
	StatusType string `json:"statusType"` // "online" / "offline"
	TestDate   string `json:"testDate,omitempty"`
}
