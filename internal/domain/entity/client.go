package entity

// Client representa un cliente de la empresa de renovaciones.
// Los tags JSON conservan el esquema histórico de clientes.json.
type Client struct {
	ID    int    `json:"id"`
	Name  string `json:"nome"`
	Phone string `json:"telefone"`
}
