package client

import "sectoralarm-cli/pkg/models"

// GetEthernetStatus fetches the panel's wired network status.
func (s *Session) GetEthernetStatus() (*models.EthernetStatus, error) {
	resp, err := s.http.R().
		SetQueryParams(s.authParams()).
		Get(pathEthernetStatus)
	if err != nil {
		return nil, &TransportError{Op: "get ethernet status", Err: err}
	}

	var status models.EthernetStatus
	if err := decode(resp, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
