package models

// DataResponse is the success envelope of every endpoint.
type DataResponse struct {
	Data any `json:"data"`
}

// ErrorResponse is the failure envelope of every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthStatus is returned by the health endpoint.
type HealthStatus struct {
	Database string `json:"database"`
	Version  string `json:"version,omitempty"`
}
