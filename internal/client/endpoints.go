package client

// App API paths. Most endpoints authenticate with the credential query
// parameters from authParams; the giid paths additionally require the
// vid session cookie.
const (
	pathLogin          = "/api/login"
	pathArmState       = "/api/panel/armstate"
	pathSetArmState    = "/api/panel/{giid}/armstate"
	pathTemperature    = "/api/panel/temperature"
	pathEthernetStatus = "/api/panel/ethernetstatus"
	pathLockDevices    = "/api/panel/doorlock/devices"
	pathLockStatus     = "/api/panel/doorlock/status"
	pathLockDoor       = "/api/panel/doorlock/lock"
	pathUnlockDoor     = "/api/panel/doorlock/unlock"
	pathLockConfig     = "/api/panel/{giid}/lockconfig/{deviceLabel}"
	pathHistory        = "/api/panel/history"
)
