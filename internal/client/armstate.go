package client

import (
	"time"

	"sectoralarm-cli/pkg/models"
)

// GetArmState fetches the panel's current arm state. The vendor
// reports the change time as a short date; it is normalized to an
// absolute ISO-8601 timestamp before the state is returned.
func (s *Session) GetArmState() (*models.ArmState, error) {
	resp, err := s.http.R().
		SetQueryParams(s.authParams()).
		Get(pathArmState)
	if err != nil {
		return nil, &TransportError{Op: "get arm state", Err: err}
	}

	var state models.ArmState
	if err := decode(resp, &state); err != nil {
		return nil, err
	}

	normalized, err := s.normalizer.Normalize(state.Time, time.Now())
	if err != nil {
		return nil, err
	}
	state.Time = normalized

	return &state, nil
}

// SetArmState arms or disarms the panel. code is the personal alarm
// code (four or six digits) and state one of ARMED_HOME, ARMED_AWAY or
// DISARMED. Neither is validated client-side; the server is the
// authority and rejects bad input with a non-200 response.
//
// Requires a vid cookie and giid, obtained via Login or seeded with
// WithVID/WithGIID.
func (s *Session) SetArmState(code, state string) (*models.Confirmation, error) {
	resp, err := s.http.R().
		SetPathParam("giid", s.giid).
		SetHeader("Content-Type", "application/json").
		SetHeader("Cookie", s.vidCookie()).
		SetBody(models.ArmStatePayload{Code: code, State: state}).
		Put(pathSetArmState)
	if err != nil {
		return nil, &TransportError{Op: "set arm state", Err: err}
	}

	var confirmation models.Confirmation
	if err := decode(resp, &confirmation); err != nil {
		return nil, err
	}
	return &confirmation, nil
}
