package dto

// CreateItemRequest datos para registrar un material en el almacén.
type CreateItemRequest struct {
	Material string `json:"material"`
	Quantity int    `json:"quantity"`
}

// SetQuantityRequest fija la cantidad de un material de forma absoluta.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// AdjustQuantityRequest ajusta la cantidad de un material con un delta
// (positivo = entrada, negativo = salida).
type AdjustQuantityRequest struct {
	Delta int `json:"delta"`
}

// ItemResponse representación de un material en respuestas.
type ItemResponse struct {
	ID       int    `json:"id"`
	Material string `json:"material"`
	Quantity int    `json:"quantity"`
}

// ItemListResponse listado de materiales.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}
