package catalog

import (
	"encoding/json"
	"errors"
	"testing"
)

// validRawEntry returns a raw entry carrying every required field and two
// variants, so tests can prune it into the shape they need.
func validRawEntry() map[string]any {
	return map[string]any{
		"id":           json.Number("632910392"),
		"title":        "IPod Nano - 8GB",
		"handle":       "ipod-nano",
		"vendor":       "Apple",
		"product_type": "Cult Products",
		"status":       "active",
		"variants": []any{
			map[string]any{"price": "199.00", "inventory_quantity": json.Number("13")},
			map[string]any{"price": "249.00", "inventory_quantity": json.Number("5")},
		},
	}
}

func TestNormalizeRecord_ValidEntry(t *testing.T) {
	record, err := NormalizeRecord(validRawEntry())
	if err != nil {
		t.Fatalf("NormalizeRecord failed: %v", err)
	}

	if record.ID != 632910392 {
		t.Errorf("ID = %d, want 632910392", record.ID)
	}
	if record.Title != "IPod Nano - 8GB" {
		t.Errorf("Title = %q, want %q", record.Title, "IPod Nano - 8GB")
	}
	if record.Handle != "ipod-nano" {
		t.Errorf("Handle = %q, want %q", record.Handle, "ipod-nano")
	}
	if record.Vendor != "Apple" {
		t.Errorf("Vendor = %q, want %q", record.Vendor, "Apple")
	}
	if record.ProductType != "Cult Products" {
		t.Errorf("ProductType = %q, want %q", record.ProductType, "Cult Products")
	}
	if record.Status != "active" {
		t.Errorf("Status = %q, want %q", record.Status, "active")
	}
}

func TestNormalizeRecord_FirstVariantWins(t *testing.T) {
	record, err := NormalizeRecord(validRawEntry())
	if err != nil {
		t.Fatalf("NormalizeRecord failed: %v", err)
	}

	if record.Price == nil || *record.Price != "199.00" {
		t.Errorf("Price = %v, want 199.00 (first variant)", record.Price)
	}
	if record.InventoryQuantity == nil || *record.InventoryQuantity != 13 {
		t.Errorf("InventoryQuantity = %v, want 13 (first variant)", record.InventoryQuantity)
	}
}

func TestNormalizeRecord_NoVariants(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(raw map[string]any)
	}{
		{
			name:   "variants key absent",
			mutate: func(raw map[string]any) { delete(raw, "variants") },
		},
		{
			name:   "variants list empty",
			mutate: func(raw map[string]any) { raw["variants"] = []any{} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRawEntry()
			tt.mutate(raw)

			record, err := NormalizeRecord(raw)
			if err != nil {
				t.Fatalf("NormalizeRecord failed: %v", err)
			}

			if record.Price != nil {
				t.Errorf("Price = %q, want unset", *record.Price)
			}
			if record.InventoryQuantity != nil {
				t.Errorf("InventoryQuantity = %d, want unset", *record.InventoryQuantity)
			}
		})
	}
}

func TestNormalizeRecord_VariantFieldsIndividuallyOptional(t *testing.T) {
	raw := validRawEntry()
	raw["variants"] = []any{
		map[string]any{"price": "9.95"},
	}

	record, err := NormalizeRecord(raw)
	if err != nil {
		t.Fatalf("NormalizeRecord failed: %v", err)
	}

	if record.Price == nil || *record.Price != "9.95" {
		t.Errorf("Price = %v, want 9.95", record.Price)
	}
	if record.InventoryQuantity != nil {
		t.Errorf("InventoryQuantity = %d, want unset", *record.InventoryQuantity)
	}

	raw["variants"] = []any{
		map[string]any{"inventory_quantity": json.Number("42")},
	}

	record, err = NormalizeRecord(raw)
	if err != nil {
		t.Fatalf("NormalizeRecord failed: %v", err)
	}

	if record.Price != nil {
		t.Errorf("Price = %q, want unset", *record.Price)
	}
	if record.InventoryQuantity == nil || *record.InventoryQuantity != 42 {
		t.Errorf("InventoryQuantity = %v, want 42", record.InventoryQuantity)
	}
}

func TestNormalizeRecord_MissingRequiredField(t *testing.T) {
	for _, field := range []string{"id", "title", "handle", "vendor", "product_type", "status"} {
		t.Run(field, func(t *testing.T) {
			raw := validRawEntry()
			delete(raw, field)

			_, err := NormalizeRecord(raw)
			if err == nil {
				t.Fatal("Expected error for missing field but got nil")
			}

			var malformed *MalformedRecordError
			if !errors.As(err, &malformed) {
				t.Fatalf("Error type = %T, want *MalformedRecordError", err)
			}
			if malformed.Field != field {
				t.Errorf("Field = %q, want %q", malformed.Field, field)
			}
		})
	}
}

func TestNormalizeRecord_WrongFieldType(t *testing.T) {
	raw := validRawEntry()
	raw["title"] = json.Number("42")

	_, err := NormalizeRecord(raw)
	var malformed *MalformedRecordError
	if !errors.As(err, &malformed) {
		t.Fatalf("Error type = %T, want *MalformedRecordError", err)
	}
	if malformed.Field != "title" {
		t.Errorf("Field = %q, want title", malformed.Field)
	}
}

func TestNormalizeRecord_LargeIdentifier(t *testing.T) {
	raw := validRawEntry()
	raw["id"] = json.Number("8881234567890123")

	record, err := NormalizeRecord(raw)
	if err != nil {
		t.Fatalf("NormalizeRecord failed: %v", err)
	}

	if record.ID != 8881234567890123 {
		t.Errorf("ID = %d, want 8881234567890123", record.ID)
	}
}

func TestNormalizeRecord_NumericPriceKeptAsText(t *testing.T) {
	raw := validRawEntry()
	raw["variants"] = []any{
		map[string]any{"price": json.Number("19.99")},
	}

	record, err := NormalizeRecord(raw)
	if err != nil {
		t.Fatalf("NormalizeRecord failed: %v", err)
	}

	if record.Price == nil || *record.Price != "19.99" {
		t.Errorf("Price = %v, want 19.99", record.Price)
	}
}
