package entity

import (
	"time"

	"github.com/google/uuid"
)

// Suggested expense tags. The vocabulary is advisory, not a closed set: any
// free-form tag is stored as-is, and TagOther is used when none is given.
const (
	TagFood           = "food"
	TagTransportation = "transportation"
	TagTravel         = "travel"
	TagEntertainment  = "entertainment"
	TagGroceries      = "groceries"
	TagLeisure        = "leisure"
	TagElectronics    = "electronics"
	TagUtilities      = "utilities"
	TagClothing       = "clothing"
	TagHealth         = "health"
	TagOther          = "other"
)

// SuggestedTags lists the advisory tag vocabulary in display order.
var SuggestedTags = []string{
	TagFood,
	TagTransportation,
	TagTravel,
	TagEntertainment,
	TagGroceries,
	TagLeisure,
	TagElectronics,
	TagUtilities,
	TagClothing,
	TagHealth,
	TagOther,
}

// Expense is a monetary record owned by exactly one user. ID and CreatedAt
// are assigned by the store at creation; ID, CreatedAt and UserID are
// immutable afterwards. Amount carries no currency and no sign constraint.
type Expense struct {
	ID          uuid.UUID
	Amount      float64
	CreatedAt   time.Time
	Tag         string
	Description *string
	UserID      uuid.UUID
}
