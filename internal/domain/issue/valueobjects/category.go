package valueobjects

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryFood            Category = "FOOD"
	CategoryItem            Category = "ITEM"
	CategoryRestaurant      Category = "RESTAURANT"
	CategoryDelivery        Category = "DELIVERY"
	CategoryShipperBehavior Category = "SHIPPER_BEHAVIOR"
	CategorySafety          Category = "SAFETY"
	CategoryMixed           Category = "MIXED"
	CategoryOther           Category = "OTHER"
)

var validCategories = map[Category]bool{
	CategoryFood:            true,
	CategoryItem:            true,
	CategoryRestaurant:      true,
	CategoryDelivery:        true,
	CategoryShipperBehavior: true,
	CategorySafety:          true,
	CategoryMixed:           true,
	CategoryOther:           true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func (c Category) IsOther() bool {
	return c == CategoryOther
}

// IsMerchant reports whether the category concerns the restaurant side and
// routes the issue to the restaurant owner. MIXED complaints involve the
// merchant too, so they route the same way.
func (c Category) IsMerchant() bool {
	switch c {
	case CategoryFood, CategoryItem, CategoryRestaurant, CategoryMixed:
		return true
	}
	return false
}

// IsDelivery reports whether the category concerns the courier side and
// routes the issue to a platform admin.
func (c Category) IsDelivery() bool {
	switch c {
	case CategoryDelivery, CategoryShipperBehavior, CategorySafety:
		return true
	}
	return false
}

func NewCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}
