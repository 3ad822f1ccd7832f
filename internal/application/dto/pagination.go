package dto

// PaginatedResult página de resultados con metadatos de navegación derivados.
// Se construye por petición a partir de la salida del repositorio; nunca se persiste.
type PaginatedResult[T any] struct {
	Items           []T  `json:"items"`
	PageNumber      int  `json:"page_number"`
	PageSize        int  `json:"page_size"`
	TotalCount      int  `json:"total_count"`
	TotalPages      int  `json:"total_pages"`
	HasPreviousPage bool `json:"has_previous_page"`
	HasNextPage     bool `json:"has_next_page"`
}

// NewPaginatedResult deriva los metadatos de página a partir de los conteos.
// TotalPages usa división con techo (7 ítems a tamaño 3 -> 3 páginas) y es 0
// si y solo si TotalCount es 0. No normaliza pageNumber ni pageSize: eso es
// responsabilidad del caller (PageRequest.Normalize). Una página más allá de
// la última resuelve sin error, con items vacío y HasNextPage en false.
func NewPaginatedResult[T any](items []T, pageNumber, pageSize, totalCount int) PaginatedResult[T] {
	totalPages := 0
	if totalCount > 0 && pageSize > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}
	return PaginatedResult[T]{
		Items:           items,
		PageNumber:      pageNumber,
		PageSize:        pageSize,
		TotalCount:      totalCount,
		TotalPages:      totalPages,
		HasPreviousPage: pageNumber > 1,
		HasNextPage:     pageNumber < totalPages,
	}
}
