package models

// OptionType classifies which options may be attached to a menu item.
type OptionType string

const (
	OptionTypeDonkatsu OptionType = "donkatsu"
	OptionTypeSetMeal  OptionType = "set_meal"
)

// categoryOptionTypes is the only place a category is tied to an option set.
// Keys are category display names.
var categoryOptionTypes = map[string]OptionType{
	"돈카츠,카레": OptionTypeDonkatsu,
	"1인정식":     OptionTypeSetMeal,
}

// OptionTypes lists every supported option type.
func OptionTypes() []OptionType {
	return []OptionType{OptionTypeDonkatsu, OptionTypeSetMeal}
}

func (t OptionType) Valid() bool {
	for _, known := range OptionTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// OptionTypeForCategory maps a category display name to its option type.
// Categories without options report false.
func OptionTypeForCategory(displayName string) (OptionType, bool) {
	t, ok := categoryOptionTypes[displayName]
	return t, ok
}
