package models

// LockDevice describes a door lock paired with the panel, keyed by its
// serial number.
type LockDevice struct {
	SerialNo string `json:"serialNo"`
	Label    string `json:"label"`
	Area     string `json:"area,omitempty"`
}

// LockStatus is one lock's current state.
type LockStatus struct {
	SerialNo  string `json:"serialNo"`
	Label     string `json:"label"`
	Status    string `json:"status"` // "lock" / "unlock"
	EventTime string `json:"eventTime,omitempty"`
}

// LockConfig is the per-lock configuration returned by the
// cookie-authenticated lockconfig endpoint.
type LockConfig struct {
	DeviceLabel     string `json:"deviceLabel"`
	AutoLockEnabled bool   `json:"autoLockEnabled"`
	VolumeLevel     string `json:"volumeLevel,omitempty"`
	SoundLevel      string `json:"soundLevel,omitempty"`
}
