package models

// ClientResponse is the envelope returned to the PhotoNow web client on the
// order endpoints
type ClientResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}
