package domain

type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Stock       int64  `json:"stock"`
	Image       string `json:"image"`
}

// CartLine is a snapshot of a product taken when the shopper added it to the
// cart. One line per unit; the same product added twice yields two lines.
// Editing the product afterwards does not touch existing lines.
type CartLine struct {
	ProductID   int64  `json:"product_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	AddedAt     int64  `json:"added_at"`
}

// Snapshot copies the product fields into a cart line.
func (p Product) Snapshot(timestamp int64) CartLine {
	return CartLine{
		ProductID:   p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
		AddedAt:     timestamp,
	}
}
