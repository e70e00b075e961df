package entity

// InventoryItem representa un material en el almacén.
// Los tags JSON conservan el esquema histórico de estoque.json.
// Quantity nunca puede quedar por debajo de cero.
type InventoryItem struct {
	ID       int    `json:"id"`
	Material string `json:"material"`
	Quantity int    `json:"quantidade"`
}
