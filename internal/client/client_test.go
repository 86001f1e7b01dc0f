package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sectoralarm-cli/pkg/dates"
)

func newTestSession(t *testing.T, handler http.HandlerFunc, opts ...Option) *Session {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	opts = append([]Option{WithBaseURL(srv.URL)}, opts...)
	s, err := New("user@example.com", "secret", "01234", opts...)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestNewRequiresCredentials(t *testing.T) {
	_, err := New("", "secret", "01234")
	assert.Error(t, err)
	_, err = New("user", "", "01234")
	assert.Error(t, err)
	_, err = New("user", "secret", "")
	assert.Error(t, err)
}

func TestGetArmStateNormalizesTime(t *testing.T) {
	s := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/panel/armstate", r.URL.Path)
		assert.Equal(t, "user@example.com", r.URL.Query().Get("username"))
		assert.Equal(t, "secret", r.URL.Query().Get("password"))
		assert.Equal(t, "01234", r.URL.Query().Get("panel"))
		fmt.Fprint(w, `{"statusType":"ARMED_AWAY","timeex":"Today 14:30","user":"Alice"}`)
	})

	state, err := s.GetArmState()
	require.NoError(t, err)
	assert.Equal(t, "ARMED_AWAY", state.StatusType)
	assert.Equal(t, time.Now().Format("2006-01-02")+"T14:30:00", state.Time)
}

func TestGetArmStateMalformedTime(t *testing.T) {
	s := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"statusType":"DISARMED","timeex":"whenever"}`)
	})

	_, err := s.GetArmState()
	var parseErr *dates.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "whenever", parseErr.Input)
}

func TestResponseError(t *testing.T) {
	s := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"msg":"bad"}`)
	})

	_, err := s.GetArmState()
	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, http.StatusForbidden, respErr.StatusCode)
	assert.Equal(t, map[string]any{"msg": "bad"}, respErr.Body)
}

func TestResponseErrorUndecodableBody(t *testing.T) {
	s := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "upstream exploded")
	})

	_, err := s.GetArmState()
	require.Error(t, err)
	// The decode failure itself is surfaced, not a ResponseError.
	var respErr *ResponseError
	assert.False(t, errors.As(err, &respErr))
	assert.Contains(t, err.Error(), "decoding error body")
}

func TestMalformedPayload(t *testing.T) {
	s := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json")
	})

	_, err := s.GetEthernetStatus()
	var malformed *MalformedPayloadError
	require.ErrorAs(t, err, &malformed)
}

func TestTransportError(t *testing.T) {
	s, err := New("user@example.com", "secret", "01234",
		WithBaseURL("http://127.0.0.1:1"),
		WithTimeout(200*time.Millisecond))
	require.NoError(t, err)
	defer s.Close()

	_, err = s.GetArmState()
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestGetTemperatureFilter(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/panel/temperature", r.URL.Path)
		fmt.Fprint(w, `{"temperatureComponentList":[
			{"serialNo":"ABC123","label":"Hall","temperature":"21.5"},
			{"serialNo":"XYZ999","label":"Garage","temperature":"12.0"}
		]}`)
	}

	t.Run("no filter returns all", func(t *testing.T) {
		s := newTestSession(t, handler)
		readings, err := s.GetTemperature("")
		require.NoError(t, err)
		assert.Len(t, readings, 2)
	})

	t.Run("filter matches one serial", func(t *testing.T) {
		s := newTestSession(t, handler)
		readings, err := s.GetTemperature("ABC123")
		require.NoError(t, err)
		require.Len(t, readings, 1)
		assert.Equal(t, "Hall", readings[0].Label)
	})

	t.Run("no match yields empty result", func(t *testing.T) {
		s := newTestSession(t, handler)
		readings, err := s.GetTemperature("NOPE")
		require.NoError(t, err)
		assert.Empty(t, readings)
	})
}

func TestGetHistoryNormalizesEachEntry(t *testing.T) {
	s := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/panel/history", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("startIndex"))
		fmt.Fprint(w, `{"logs":[
			{"time":"Today 08:00","eventType":"armed","user":"Alice"},
			{"time":"01/15 23:10","eventType":"disarmed","user":"Bob"}
		]}`)
	})

	entries, err := s.GetHistory(5)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	today := time.Now().Format("2006-01-02")
	assert.Equal(t, today+"T08:00:00", entries[0].Time)
	assert.Equal(t, fmt.Sprintf("%d-01-15T23:10:00", time.Now().Year()), entries[1].Time)
}

func TestGetHistoryMalformedEntryFailsCall(t *testing.T) {
	s := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"logs":[
			{"time":"Today 08:00","eventType":"armed"},
			{"time":"???","eventType":"disarmed"}
		]}`)
	})

	_, err := s.GetHistory(0)
	var parseErr *dates.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestSetArmState(t *testing.T) {
	s := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/panel/giid-42/armstate", r.URL.Path)
		assert.Equal(t, "vid=cookie-7", r.Header.Get("Cookie"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var payload map[string]string
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, map[string]string{"code": "1234", "state": "ARMED_HOME"}, payload)

		fmt.Fprint(w, `{"status":"success"}`)
	}, WithVID("cookie-7"), WithGIID("giid-42"))

	confirmation, err := s.SetArmState("1234", "ARMED_HOME")
	require.NoError(t, err)
	assert.Equal(t, "success", confirmation.Status)
}

func TestLockAndUnlockDoor(t *testing.T) {
	var gotPath string
	s := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "SN-1", r.URL.Query().Get("serialNo"))
		assert.Equal(t, "123456", r.URL.Query().Get("code"))
		fmt.Fprint(w, `{"status":"success"}`)
	})

	_, err := s.LockDoor("SN-1", "123456")
	require.NoError(t, err)
	assert.Equal(t, "/api/panel/doorlock/lock", gotPath)

	_, err = s.UnlockDoor("SN-1", "123456")
	require.NoError(t, err)
	assert.Equal(t, "/api/panel/doorlock/unlock", gotPath)
}

func TestGetLockDevicesAndStatus(t *testing.T) {
	s := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/panel/doorlock/devices":
			fmt.Fprint(w, `[{"serialNo":"SN-1","label":"Front door"}]`)
		case "/api/panel/doorlock/status":
			fmt.Fprint(w, `[{"serialNo":"SN-1","label":"Front door","status":"lock"}]`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	devices, err := s.GetLockDevices()
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "Front door", devices[0].Label)

	statuses, err := s.GetLockStatus()
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.Equal(t, "lock", statuses[0].Status)
}

func TestGetLockConfig(t *testing.T) {
	s := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/panel/giid-42/lockconfig/Front%20door", r.URL.EscapedPath())
		assert.Equal(t, "vid=cookie-7", r.Header.Get("Cookie"))
		fmt.Fprint(w, `{"deviceLabel":"Front door","autoLockEnabled":true}`)
	}, WithVID("cookie-7"), WithGIID("giid-42"))

	config, err := s.GetLockConfig("Front door")
	require.NoError(t, err)
	assert.True(t, config.AutoLockEnabled)
}

func TestLoginStoresSessionIdentifiers(t *testing.T) {
	s := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/login", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var payload map[string]string
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "user@example.com", payload["username"])

		fmt.Fprint(w, `{"vid":"cookie-7","giid":"giid-42"}`)
	})

	require.NoError(t, s.Login())
	assert.Equal(t, "cookie-7", s.VID())
	assert.Equal(t, "giid-42", s.GIID())
}

func TestLoginRejectedCredentials(t *testing.T) {
	s := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"msg":"bad credentials"}`)
	})

	err := s.Login()
	var loginErr *LoginError
	require.ErrorAs(t, err, &loginErr)
	assert.Equal(t, http.StatusUnauthorized, loginErr.StatusCode)
}

func TestLogout(t *testing.T) {
	s := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/login", r.URL.Path)
		assert.Equal(t, "vid=cookie-7", r.Header.Get("Cookie"))
		fmt.Fprint(w, `{}`)
	}, WithVID("cookie-7"))

	require.NoError(t, s.Logout())
	assert.Empty(t, s.VID())
}

func TestLogoutPropagatesResponseError(t *testing.T) {
	s := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"msg":"expired"}`)
	}, WithVID("stale"))

	err := s.Logout()
	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, http.StatusUnauthorized, respErr.StatusCode)
}

func TestWithNormalizer(t *testing.T) {
	s := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"statusType":"DISARMED","timeex":"Yesterday 09:00"}`)
	}, WithNormalizer(dates.CorrectedShortDate{}))

	state, err := s.GetArmState()
	require.NoError(t, err)
	want := time.Now().AddDate(0, 0, -1).Format("2006-01-02") + "T09:00:00"
	assert.Equal(t, want, state.Time)
}
