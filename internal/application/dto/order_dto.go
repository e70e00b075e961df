package dto

// CreateOrderRequest datos para abrir una orden de servicio. ClientName es
// texto libre: no se valida contra la colección de clientes.
type CreateOrderRequest struct {
	Description string `json:"description"`
	ClientName  string `json:"client_name"`
}

// UpdateStatusRequest cambia el estado de una orden. Acepta las grafías del
// sistema original y sus equivalentes en inglés.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse representación de una orden en respuestas.
type OrderResponse struct {
	Number      int    `json:"number"`
	Description string `json:"description"`
	ClientName  string `json:"client_name"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// OrderListResponse listado de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Total int             `json:"total"`
}

// OrderReportResponse conteo de órdenes por estado, calculado bajo demanda.
// Open incluye cualquier estado almacenado fuera del enum conocido
// (tolerancia de lectura con datos históricos malformados).
type OrderReportResponse struct {
	Total     int `json:"total"`
	Open      int `json:"open"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}
