package client

import "sectoralarm-cli/pkg/models"

// GetLockDevices lists the door locks paired with the panel.
func (s *Session) GetLockDevices() ([]models.LockDevice, error) {
	resp, err := s.http.R().
		SetQueryParams(s.authParams()).
		Get(pathLockDevices)
	if err != nil {
		return nil, &TransportError{Op: "get lock devices", Err: err}
	}

	var devices []models.LockDevice
	if err := decode(resp, &devices); err != nil {
		return nil, err
	}
	return devices, nil
}

// GetLockStatus fetches the current state of every lock.
func (s *Session) GetLockStatus() ([]models.LockStatus, error) {
	resp, err := s.http.R().
		SetQueryParams(s.authParams()).
		Get(pathLockStatus)
	if err != nil {
		return nil, &TransportError{Op: "get lock status", Err: err}
	}

	var statuses []models.LockStatus
	if err := decode(resp, &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}

// LockDoor locks the given door with the personal code.
func (s *Session) LockDoor(serialNo, code string) (*models.Confirmation, error) {
	return s.doorAction(pathLockDoor, "lock door", serialNo, code)
}

// UnlockDoor unlocks the given door with the personal code.
func (s *Session) UnlockDoor(serialNo, code string) (*models.Confirmation, error) {
	return s.doorAction(pathUnlockDoor, "unlock door", serialNo, code)
}

func (s *Session) doorAction(path, op, serialNo, code string) (*models.Confirmation, error) {
	resp, err := s.http.R().
		SetQueryParams(s.authParams()).
		SetQueryParam("serialNo", serialNo).
		SetQueryParam("code", code).
		Get(path)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	var confirmation models.Confirmation
	if err := decode(resp, &confirmation); err != nil {
		return nil, err
	}
	return &confirmation, nil
}

// GetLockConfig fetches one lock's configuration. Requires a vid
// cookie and giid, obtained via Login or seeded with WithVID/WithGIID.
func (s *Session) GetLockConfig(deviceLabel string) (*models.LockConfig, error) {
	resp, err := s.http.R().
		SetPathParam("giid", s.giid).
		SetPathParam("deviceLabel", deviceLabel).
		SetHeader("Cookie", s.vidCookie()).
		Get(pathLockConfig)
	if err != nil {
		return nil, &TransportError{Op: "get lock config", Err: err}
	}

	var config models.LockConfig
	if err := decode(resp, &config); err != nil {
		return nil, err
	}
	return &config, nil
}
