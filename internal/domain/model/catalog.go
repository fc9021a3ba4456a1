package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeCatalog parses a stored catalog document. Anything that is not a JSON
// array of records yields ErrCorruptCatalog.
func DecodeCatalog(data []byte) ([]MediaItem, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrCorruptCatalog
	}

	var items []MediaItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCorruptCatalog, err.Error())
	}

	if items == nil {
		items = []MediaItem{}
	}

	return items, nil
}

func EncodeCatalog(items []MediaItem) ([]byte, error) {
	if items == nil {
		items = []MediaItem{}
	}

	return json.MarshalIndent(items, "", "  ")
}
