package models

// LoginPayload is the JSON body of the login POST.
type LoginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Panel    string `json:"panel"`
}

// LoginResponse carries the session cookie value and the panel group
// id the cookie-authenticated endpoints need.
type LoginResponse struct {
	VID  string `json:"vid"`
	GIID string `json:"giid"`
}
