package models

// TemperatureResponse wraps the sensor list the temperature endpoint
// returns.
type TemperatureResponse struct {
	Components []TemperatureReading `json:"temperatureComponentList"`
}

// TemperatureReading is one sensor's reported value.
type TemperatureReading struct {
	SerialNo    string `json:"serialNo"`
	Label       string `json:"label"`
	Temperature string `json:"temperature"` // JSON key carries the value as a string, unit Celsius
}
