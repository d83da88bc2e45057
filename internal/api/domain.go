package api

// Response is the error envelope returned by every endpoint.
type Response struct {
	Success   bool   `json:"success" example:"false"`
	Message   string `json:"message,omitempty" example:"Operation successful"`
	Error     string `json:"error,omitempty" example:"Resource not found"`
	RequestID string `json:"request_id,omitempty"`
}

// DataResponse is the success envelope.
type DataResponse struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data"`
}
