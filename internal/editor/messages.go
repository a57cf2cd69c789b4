package editor

import (
	"errors"

	"listpad/internal/catalog"
)

func errorMessage(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, catalog.ErrUnknownField) {
		return "That field does not exist. Choose one of title, price, description, quantity."
	}

	if errors.Is(err, catalog.ErrInvalidValue) {
		return "That value is not valid for this field. Prices and quantities must be non-negative numbers."
	}

	if errors.Is(err, catalog.ErrStorageUnavailable) {
		return "The catalog file could not be read or written. Check the storage path and permissions."
	}

	if errors.Is(err, catalog.ErrDuplicateKey) {
		return "A listing with this ASIN already exists."
	}

	// Default error message
	return "Something went wrong while processing the request."
}
