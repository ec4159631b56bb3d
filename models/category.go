package models

// Category, sunucuların gruplandığı isimli kategori (ör: "Gaming").
// Sunucu listesi kategori ismine göre filtrelenir.
type Category struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}
