package models

// Product is a read-only catalog entry as served by the backend.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       Money   `json:"price"`
	OldPrice    *Money  `json:"oldPrice,omitempty"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
	InStock     bool    `json:"inStock"`
	IsFeatured  bool    `json:"isFeatured"`
	IsOnSale    bool    `json:"isOnSale"`
}

// Featured returns the featured subset of the catalog, preserving order.
func Featured(products []Product) []Product {
	var out []Product
	for _, p := range products {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out
}
