package dto

// PageRequest paginación para listados: tamaño de página y página actual
// (base 1), con filtro opcional de substring sobre las columnas de
// identificador de negocio.
type PageRequest struct {
	ItemsPerPage int    `query:"items_per_page"`
	CurrentPage  int    `query:"current_page"`
	Query        string `query:"q"`
}

// Normalize aplica valores por defecto: página mínima 1 y tamaño por defecto
// si el pedido trae cero o negativos.
func (p *PageRequest) Normalize(defaultItems int) {
	if p.ItemsPerPage <= 0 {
		p.ItemsPerPage = defaultItems
	}
	if p.CurrentPage < 1 {
		p.CurrentPage = 1
	}
}

// Offset devuelve el desplazamiento SQL: (página-1) × tamaño.
func (p PageRequest) Offset() int {
	return (p.CurrentPage - 1) * p.ItemsPerPage
}

// TotalPages calcula ceil(filas/tamaño). Cero filas → cero páginas.
func TotalPages(rowCount, itemsPerPage int) int {
	if itemsPerPage <= 0 || rowCount <= 0 {
		return 0
	}
	return (rowCount + itemsPerPage - 1) / itemsPerPage
}

// PageResponse metadatos de página en respuestas de listado.
type PageResponse struct {
	ItemsPerPage int `json:"items_per_page"`
	CurrentPage  int `json:"current_page"`
	TotalPages   int `json:"total_pages"`
}

// MutationResponse cuerpo de éxito de una mutación. El caller decide
// éxito/fallo solo por la ausencia de "errors", nunca por el texto.
type MutationResponse struct {
	Message string `json:"message"`
}

// ErrorResponse cuerpo de error HTTP. Errors trae los mensajes por campo
// cuando la falla es de validación; para el resto de fallas va vacío.
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}
