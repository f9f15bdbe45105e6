package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StatusResponse respuesta genérica de operaciones de mutación.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
