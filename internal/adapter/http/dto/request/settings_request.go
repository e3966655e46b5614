package request

// MainCategoryRequest names a main category to add or delete.
type MainCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// SubCategoryRequest names a sub-category under a main one.
type SubCategoryRequest struct {
	Category    string `json:"category" binding:"required"`
	SubCategory string `json:"sub_category" binding:"required"`
}

// PriceEntryRequest sets a reference price for a category pair.
// A zero price removes the entry.
type PriceEntryRequest struct {
	Category    string `json:"category" binding:"required"`
	SubCategory string `json:"sub_category" binding:"required"`
	Price       int    `json:"price"`
}

// LoginRequest carries the shared shop password.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}
