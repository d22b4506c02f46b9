package types

// PackingCategories is the preset list offered for packing items.
// Category remains free text; user-supplied values are accepted as-is.
var PackingCategories = []string{"衣物", "電子產品", "盥洗用品", "藥品", "證件", "其他"}

// PackingItem is one packing-list entry. Names are not unique.
type PackingItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Checked  bool   `json:"checked"`
	Category string `json:"category"`
}

// PackingItemCreate is the request body for adding a packing-list entry.
type PackingItemCreate struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
}
