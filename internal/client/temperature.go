package client

import "sectoralarm-cli/pkg/models"

// GetTemperature fetches the panel's temperature readings. A non-empty
// deviceLabel narrows the result to the sensor whose serial number
// matches exactly; no match yields an empty slice, not an error.
func (s *Session) GetTemperature(deviceLabel string) ([]models.TemperatureReading, error) {
	resp, err := s.http.R().
		SetQueryParams(s.authParams()).
		Get(pathTemperature)
	if err != nil {
		return nil, &TransportError{Op: "get temperature", Err: err}
	}

	var payload models.TemperatureResponse
	if err := decode(resp, &payload); err != nil {
		return nil, err
	}

	readings := payload.Components
	if deviceLabel != "" {
		filtered := make([]models.TemperatureReading, 0, len(readings))
		for _, r := range readings {
			if r.SerialNo == deviceLabel {
				filtered = append(filtered, r)
			}
		}
		readings = filtered
	}
	return readings, nil
}
