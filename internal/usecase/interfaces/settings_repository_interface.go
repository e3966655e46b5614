package interfaces

import (
	"context"

	"susunara/internal/domain/entities"
)

// ISettingsRepository abstracts the two named configuration documents:
// the category registry and the reference price table. Both are whole-value
// reads/writes with last-write-wins semantics.
//
// GetCategories seeds and persists the default registry when none exists,
// so callers always see a non-empty list. GetPriceTable returns an empty
// table when none was configured.

type ISettingsRepository interface {
	GetCategories(ctx context.Context) (entities.CategoryList, error)
	SaveCategories(ctx context.Context, cats entities.CategoryList) error
	GetPriceTable(ctx context.Context) (entities.PriceTable, error)
	SavePriceTable(ctx context.Context, table entities.PriceTable) error
}
