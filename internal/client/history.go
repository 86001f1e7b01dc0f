package client

import (
	"strconv"
	"time"

	"sectoralarm-cli/pkg/models"
)

// GetHistory fetches recent panel events starting at the given offset.
// Each entry's time field arrives as a short date and is normalized
// independently; a malformed entry fails the whole call rather than
// being dropped.
func (s *Session) GetHistory(offset int) ([]models.HistoryEntry, error) {
	resp, err := s.http.R().
		SetQueryParams(s.authParams()).
		SetQueryParam("startIndex", strconv.Itoa(offset)).
		Get(pathHistory)
	if err != nil {
		return nil, &TransportError{Op: "get history", Err: err}
	}

	var payload models.HistoryResponse
	if err := decode(resp, &payload); err != nil {
		return nil, err
	}

	now := time.Now()
	for i := range payload.Logs {
		normalized, err := s.normalizer.Normalize(payload.Logs[i].Time, now)
		if err != nil {
			return nil, err
		}
		payload.Logs[i].Time = normalized
	}
	return payload.Logs, nil
}
