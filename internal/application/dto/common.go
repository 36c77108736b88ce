package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta mínima de éxito con mensaje para el usuario.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
