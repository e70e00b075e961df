package dto

// CreateClientRequest datos para registrar un cliente.
type CreateClientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ClientResponse representación de un cliente en respuestas.
type ClientResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ClientListResponse listado de clientes.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Total int              `json:"total"`
}
