package models

// Editable field names as the user types them.
const (
	FieldTitle       = "title"
	FieldPrice       = "price"
	FieldDescription = "description"
	FieldQuantity    = "quantity"
)

// EditableFields returns the editable field names in display order.
func EditableFields() []string {
	return []string{FieldTitle, FieldPrice, FieldDescription, FieldQuantity}
}

func IsEditableField(name string) bool {
	switch name {
	case FieldTitle, FieldPrice, FieldDescription, FieldQuantity:
		return true
	}
	return false
}
