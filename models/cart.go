package models

// CartProduct is the product snapshot embedded in a cart line item.
type CartProduct struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       Money  `json:"price"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
}

// CartItem is one line of the server-side cart. The storefront only holds a
// transient mirror of it; all mutations go through the backend.
type CartItem struct {
	ID       string      `json:"id"`
	Quantity int         `json:"quantity"`
	Product  CartProduct `json:"product"`
}

// MinQuantity and MaxQuantity bound the quantity selector on the cart page.
const (
	MinQuantity = 1
	MaxQuantity = 10
)

// RemoveCartItem drops the line with the given id from a local cart mirror.
// An id that is not present leaves the list unchanged.
func RemoveCartItem(items []CartItem, id string) []CartItem {
	out := make([]CartItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}

// SetCartQuantity updates the quantity of the line with the given id in a
// local cart mirror, mirroring the already-persisted backend change.
func SetCartQuantity(items []CartItem, id string, quantity int) []CartItem {
	out := make([]CartItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID == id {
			out[i].Quantity = quantity
		}
	}
	return out
}
