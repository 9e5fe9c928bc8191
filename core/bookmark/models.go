package bookmark

import (
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/edupathpro/edupath/core"
	"github.com/edupathpro/edupath/core/catalog"
)

// Default application status.
const StatusApplied = "applied"

type (
	// Bookmark is a denormalized join row: ItemData is a point-in-time
	// snapshot of the bookmarked entity's display fields, letting the
	// bookmarks page render without re-fetching the original document.
	// It is never reconciled with the source entity afterwards.
	Bookmark struct {
		ID        string                 `json:"id" bson:"_id"`
		UserID    string                 `json:"user_id" bson:"userId"`
		ItemID    string                 `json:"item_id" bson:"itemId"`
		ItemType  string                 `json:"item_type" bson:"itemType"`
		ItemData  map[string]interface{} `json:"item_data" bson:"itemData"`
		CreatedAt time.Time              `json:"created_at" bson:"createdAt"` // UTC
	}

	// Application has the same denormalized-join shape as Bookmark with an
	// independent lifecycle.
	Application struct {
		ID        string                 `json:"id" bson:"_id"`
		UserID    string                 `json:"user_id" bson:"userId"`
		ItemID    string                 `json:"item_id" bson:"itemId"`
		ItemType  string                 `json:"item_type" bson:"itemType"`
		ItemData  map[string]interface{} `json:"item_data" bson:"itemData"`
		Status    string                 `json:"status" bson:"status"`
		AppliedAt time.Time              `json:"applied_at" bson:"appliedAt"` // UTC
	}

	NewBookmark struct {
		ItemID   string                 `json:"item_id" validate:"required"`
		ItemType string                 `json:"item_type" validate:"required,itemtype"`
		ItemData map[string]interface{} `json:"item_data"`
	}

	NewApplication struct {
		ItemID   string                 `json:"item_id" validate:"required"`
		ItemType string                 `json:"item_type" validate:"required,itemtype"`
		ItemData map[string]interface{} `json:"item_data"`
	}

	UpdateApplication struct {
		Status string `json:"status" validate:"required"`
	}
)

func (nb *NewBookmark) Validate(validate *validator.Validate) error {
	nb.ItemID = core.CleanString(nb.ItemID)
	nb.ItemType = core.CleanString(nb.ItemType, true /* lower */)
	return validate.Struct(nb)
}

func (na *NewApplication) Validate(validate *validator.Validate) error {
	na.ItemID = core.CleanString(na.ItemID)
	na.ItemType = core.CleanString(na.ItemType, true /* lower */)
	return validate.Struct(na)
}

func (ua *UpdateApplication) Validate(validate *validator.Validate) error {
	ua.Status = core.CleanString(ua.Status, true /* lower */)
	return validate.Struct(ua)
}

// InitValidators registers the bookmark domain's custom validation tags.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	core.RegisterOneOfValidation(validate, translator, "itemtype",
		catalog.ItemTypeCollege,
		catalog.ItemTypeCourse,
		catalog.ItemTypeScholarship,
		catalog.ItemTypeCareer,
		catalog.ItemTypeResource,
	)
}
