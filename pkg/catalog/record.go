package catalog

import "encoding/json"

// Record is one product snapshot at fetch time. It is constructed once per
// raw entry and immutable afterwards. Price and InventoryQuantity are
// pointers so an absent value stays absent through JSON round-trips.
type Record struct {
	ID                int64   `json:"id"`
	Title             string  `json:"title"`
	Handle            string  `json:"handle"`
	Vendor            string  `json:"vendor"`
	ProductType       string  `json:"product_type"`
	Status            string  `json:"status"`
	Price             *string `json:"price"`
	InventoryQuantity *int64  `json:"inventory_quantity"`
}

// requiredFields must all be present in a raw entry.
var requiredFields = []string{"id", "title", "handle", "vendor", "product_type", "status"}

// NormalizeRecord converts one raw products.json entry into a Record.
// A missing required field is a *MalformedRecordError. Price and inventory
// quantity come from the first element of the variants sub-list, each
// individually optional; with no variants both stay unset. Price is kept as
// opaque text: the Admin API emits decimal strings and this client does not
// interpret them.
func NormalizeRecord(raw map[string]any) (Record, error) {
	for _, field := range requiredFields {
		if _, ok := raw[field]; !ok {
			return Record{}, &MalformedRecordError{Field: field, Reason: "missing"}
		}
	}

	id, err := intField(raw, "id")
	if err != nil {
		return Record{}, err
	}

	record := Record{ID: id}

	for field, dst := range map[string]*string{
		"title":        &record.Title,
		"handle":       &record.Handle,
		"vendor":       &record.Vendor,
		"product_type": &record.ProductType,
		"status":       &record.Status,
	} {
		value, err := stringField(raw, field)
		if err != nil {
			return Record{}, err
		}
		*dst = value
	}

	if variants, ok := raw["variants"].([]any); ok && len(variants) > 0 {
		if first, ok := variants[0].(map[string]any); ok {
			record.Price = optionalText(first, "price")
			record.InventoryQuantity = optionalInt(first, "inventory_quantity")
		}
	}

	return record, nil
}

func stringField(raw map[string]any, field string) (string, error) {
	value, ok := raw[field].(string)
	if !ok {
		return "", &MalformedRecordError{Field: field, Reason: "is not a string"}
	}
	return value, nil
}

// intField accepts json.Number (the decoder is configured with UseNumber so
// large identifiers survive intact) and float64 for callers that hand over
// plainly decoded maps.
func intField(raw map[string]any, field string) (int64, error) {
	switch value := raw[field].(type) {
	case json.Number:
		n, err := value.Int64()
		if err != nil {
			return 0, &MalformedRecordError{Field: field, Reason: "is not an integer"}
		}
		return n, nil
	case float64:
		return int64(value), nil
	default:
		return 0, &MalformedRecordError{Field: field, Reason: "is not an integer"}
	}
}

func optionalText(entry map[string]any, key string) *string {
	switch value := entry[key].(type) {
	case string:
		return &value
	case json.Number:
		s := value.String()
		return &s
	default:
		return nil
	}
}

func optionalInt(entry map[string]any, key string) *int64 {
	switch value := entry[key].(type) {
	case json.Number:
		if n, err := value.Int64(); err == nil {
			return &n
		}
	case float64:
		n := int64(value)
		return &n
	}
	return nil
}
