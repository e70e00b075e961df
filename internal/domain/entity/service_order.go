package entity

// CreatedAtLayout formato de la fecha de creación de una orden, heredado de
// los archivos de datos existentes (DD/MM/YYYY HH:MM).
const CreatedAtLayout = "02/01/2006 15:04"

// ServiceOrder representa una orden de servicio de renovación.
// Los tags JSON conservan el esquema histórico de ordens_de_servico.json.
// ClientName es una copia del nombre del cliente, no una referencia: las
// colecciones de órdenes y clientes son independientes y no se valida
// integridad referencial entre ellas.
type ServiceOrder struct {
	Number      int         `json:"numero_os"`
	Description string      `json:"descricao"`
	ClientName  string      `json:"cliente"`
	Status      OrderStatus `json:"status"`
	CreatedAt   string      `json:"data_criacao"`
}
