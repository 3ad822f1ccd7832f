package dto

import "time"

// Límites de paginación aplicados en el borde HTTP, no en el calculador.
const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// PageRequest paginación para listados.
type PageRequest struct {
	PageNumber int `query:"page_number"`
	PageSize   int `query:"page_size"`
}

// Normalize aplica los valores por defecto y el tope de tamaño de página.
// Se invoca en el borde de la API, antes de consultar el repositorio.
func (p *PageRequest) Normalize() {
	if p.PageNumber < 1 {
		p.PageNumber = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	TraceID   string    `json:"trace_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
