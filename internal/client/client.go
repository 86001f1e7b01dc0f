package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"sectoralarm-cli/pkg/dates"
)

// DefaultBaseURL is the production app API host.
const DefaultBaseURL = "https://mypagesapi.sectoralarm.se"

// Session is a client for the Sector Alarm app API, scoped to one
// username/password/panel triple supplied at construction. It owns a
// single persistent HTTP client; every operation issues exactly one
// request with no retry and no client-side login state, leaving
// session validity entirely to the server's status codes.
//
// Concurrent calls on one Session are safe (each is an independent
// exchange) but carry no ordering guarantee between them.
type Session struct {
	http       *resty.Client
	username   string
	password   string
	panel      string
	giid       string
	vid        string
	normalizer dates.Normalizer
}

// Option adjusts a Session at construction.
type Option func(*Session)

// WithBaseURL points the Session at a different API host.
func WithBaseURL(u string) Option {
	return func(s *Session) { s.http.SetBaseURL(u) }
}

// WithTimeout bounds every request. The Session itself enforces no
// timeout; this hands one to the underlying transport.
func WithTimeout(d time.Duration) Option {
	return func(s *Session) { s.http.SetTimeout(d) }
}

// WithNormalizer swaps the short-date normalizer, e.g. for
// dates.CorrectedShortDate.
func WithNormalizer(n dates.Normalizer) Option {
	return func(s *Session) { s.normalizer = n }
}

// WithVID seeds a previously obtained session cookie value.
func WithVID(vid string) Option {
	return func(s *Session) { s.vid = vid }
}

// WithGIID seeds a previously obtained panel group id.
func WithGIID(giid string) Option {
	return func(s *Session) { s.giid = giid }
}

// New builds a Session for the given credentials and panel id. The
// credentials are immutable for the Session's lifetime.
func New(username, password, panel string, opts ...Option) (*Session, error) {
	if username == "" || password == "" || panel == "" {
		return nil, errors.New("username, password and panel are all required")
	}

	r := resty.New()
	r.SetBaseURL(DefaultBaseURL)
	r.SetHeader("Accept", "application/json, text/javascript, */*; q=0.01")

	s := &Session{
		http:       r,
		username:   username,
		password:   password,
		panel:      panel,
		normalizer: dates.ShortDate{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close releases the idle connections held by the underlying client.
// Logout invalidates the server-side session but does not tear down
// the transport; call Close when the Session is no longer needed.
func (s *Session) Close() {
	s.http.GetClient().CloseIdleConnections()
}

// VID returns the current session cookie value, if any.
func (s *Session) VID() string { return s.vid }

// GIID returns the current panel group id, if any.
func (s *Session) GIID() string { return s.giid }

func (s *Session) authParams() map[string]string {
	return map[string]string{
		"username": s.username,
		"password": s.password,
		"panel":    s.panel,
	}
}

func (s *Session) vidCookie() string {
	return fmt.Sprintf("vid=%s", s.vid)
}

// decode validates a completed exchange. A 200 response has its body
// unmarshalled into out; anything else becomes a *ResponseError
// carrying the JSON-decoded error body. A body that fails to decode is
// itself the returned error, never swallowed.
func decode(resp *resty.Response, out any) error {
	if resp.StatusCode() == http.StatusOK {
		if out == nil {
			var sink any
			out = &sink
		}
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return &MalformedPayloadError{Err: err}
		}
		return nil
	}

	respErr := &ResponseError{StatusCode: resp.StatusCode()}
	if err := json.Unmarshal(resp.Body(), &respErr.Body); err != nil {
		return fmt.Errorf("decoding error body for status %d: %w", resp.StatusCode(), err)
	}
	return respErr
}
