package model

// StatusResponse answers the root liveness probe.
type StatusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// HealthResponse reports readiness of the model and the database.
type HealthResponse struct {
	Status       string `json:"status"`
	ModelsLoaded bool   `json:"models_loaded"`
	Database     string `json:"database"`
}
