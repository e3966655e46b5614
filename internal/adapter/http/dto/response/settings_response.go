package response

import "susunara/internal/domain/entities"

type CategoryResponse struct {
	Name string   `json:"name"`
	Subs []string `json:"subs"`
}

type CategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

func FromCategories(cats entities.CategoryList) CategoriesResponse {
	out := CategoriesResponse{Categories: make([]CategoryResponse, 0, len(cats))}
	for _, c := range cats {
		subs := c.Subs
		if subs == nil {
			subs = []string{}
		}
		out.Categories = append(out.Categories, CategoryResponse{Name: c.Name, Subs: subs})
	}
	return out
}

type PriceTableResponse struct {
	Prices entities.PriceTable `json:"prices"`
}

func FromPriceTable(table entities.PriceTable) PriceTableResponse {
	if table == nil {
		table = entities.PriceTable{}
	}
	return PriceTableResponse{Prices: table}
}

type LoginResponse struct {
	Token string `json:"token"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type PhotoResponse struct {
	URL string `json:"url"`
}
