package product_controller

import "strings"

// Category-specific placeholder images, used when a product's imageUrl is
// missing or not a usable URL.
var categoryPlaceholders = map[string]string{
	"fruits":     "https://placehold.co/400x400/dcfce7/166534?text=Fruits",
	"vegetables": "https://placehold.co/400x400/dcfce7/166534?text=Vegetables",
	"dairy":      "https://placehold.co/400x400/fef9c3/854d0e?text=Dairy",
	"bakery":     "https://placehold.co/400x400/fde68a/92400e?text=Bakery",
	"meat":       "https://placehold.co/400x400/fee2e2/991b1b?text=Meat",
	"seafood":    "https://placehold.co/400x400/dbeafe/1e40af?text=Seafood",
	"beverages":  "https://placehold.co/400x400/e0e7ff/3730a3?text=Beverages",
	"snacks":     "https://placehold.co/400x400/fae8ff/86198f?text=Snacks",
}

const genericPlaceholder = "https://placehold.co/400x400/f3f4f6/6b7280?text=Village+Mart"

// PlaceholderImage returns the fallback image for a category.
func PlaceholderImage(category string) string {
	if url, ok := categoryPlaceholders[strings.ToLower(category)]; ok {
		return url
	}
	return genericPlaceholder
}

// usableImageURL mirrors the storefront's loose check for a renderable
// image source: absolute http(s) URLs or site-relative paths.
func usableImageURL(url string) bool {
	return strings.HasPrefix(url, "http") || strings.HasPrefix(url, "/")
}
