package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse error 422 con detalle campo a campo
// (forma heredada del API original: success=false + errors por campo).
type ValidationErrorResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// NewValidationError construye la respuesta 422 estándar.
func NewValidationError(errs map[string][]string) ValidationErrorResponse {
	return ValidationErrorResponse{
		Success: false,
		Message: "Validation failed",
		Errors:  errs,
	}
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"per_page" validate:"omitempty,min=1,max=100"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 50
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
