package client

import (
	"errors"
	"net/http"

	"sectoralarm-cli/pkg/models"
)

// Login verifies the credentials against the app API and stores the
// returned session cookie value (vid) and panel group id (giid) on the
// Session for the cookie-authenticated calls. Rejected credentials
// surface as *LoginError; any other non-200 as *ResponseError.
//
// Login is optional for the credential-authenticated endpoints, which
// carry the username and password on every request.
func (s *Session) Login() error {
	resp, err := s.http.R().
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginPayload{
			Username: s.username,
			Password: s.password,
			Panel:    s.panel,
		}).
		Post(pathLogin)
	if err != nil {
		return &TransportError{Op: "login", Err: err}
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &LoginError{StatusCode: resp.StatusCode()}
	}

	var result models.LoginResponse
	if err := decode(resp, &result); err != nil {
		return err
	}
	if result.VID == "" {
		return errors.New("login successful but no session cookie returned")
	}
	s.vid = result.VID
	s.giid = result.GIID
	return nil
}

// Logout invalidates the vid cookie server-side. Best effort: a
// non-200 response propagates as *ResponseError and the transport
// stays open (see Close).
func (s *Session) Logout() error {
	resp, err := s.http.R().
		SetHeader("Cookie", s.vidCookie()).
		Delete(pathLogin)
	if err != nil {
		return &TransportError{Op: "logout", Err: err}
	}
	if err := decode(resp, nil); err != nil {
		return err
	}
	s.vid = ""
	return nil
}
