package restapi

import (
	"encoding/json"
	"testing"
	"time"
)

func TestIDUnmarshalAcceptsNumbersAndStrings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want ID
	}{
		{raw: `12`, want: "12"},
		{raw: `"64f0c2"`, want: "64f0c2"},
		{raw: `" 7 "`, want: "7"},
		{raw: `null`, want: ""},
	}
	for _, tc := range tests {
		var got ID
		if err := json.Unmarshal([]byte(tc.raw), &got); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("Unmarshal(%s) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestIDMarshalKeepsNumericIDsNumeric(t *testing.T) {
	t.Parallel()

	payload, err := json.Marshal(map[string]ID{"numeric": "12", "text": "abc", "empty": ""})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"empty":null,"numeric":12,"text":"abc"}`
	if string(payload) != want {
		t.Fatalf("Marshal() = %s, want %s", payload, want)
	}
}

func TestTimestampUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want time.Time
	}{
		{raw: `"2025-03-04T10:11:12.345"`, want: time.Date(2025, 3, 4, 10, 11, 12, 345000000, time.UTC)},
		{raw: `"2025-03-04T10:11:12Z"`, want: time.Date(2025, 3, 4, 10, 11, 12, 0, time.UTC)},
		{raw: `"2025-03-04"`, want: time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)},
		{raw: `1700000000000`, want: time.UnixMilli(1700000000000).UTC()},
		{raw: `null`, want: time.Time{}},
	}
	for _, tc := range tests {
		var got Timestamp
		if err := json.Unmarshal([]byte(tc.raw), &got); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", tc.raw, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("Unmarshal(%s) = %v, want %v", tc.raw, got.Time, tc.want)
		}
	}

	var bad Timestamp
	if err := json.Unmarshal([]byte(`"yesterday"`), &bad); err == nil {
		t.Fatalf("expected unsupported layout error")
	}
}

func TestOrderHelpers(t *testing.T) {
	t.Parallel()

	var order Order
	raw := `{"id":"1","status":" ready ","totalAmount":"12.50","orderItems":[{"quantity":2,"unitPrice":3.25},{"quantity":1,"unitPrice":6}],"table":{"tableNumber":"T4"},"user":{"name":"Ana"}}`
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if order.NormalizedStatus() != OrderReady {
		t.Fatalf("NormalizedStatus() = %q", order.NormalizedStatus())
	}
	if order.ItemCount() != 3 {
		t.Fatalf("ItemCount() = %d, want 3", order.ItemCount())
	}
	if order.OrderItems[0].LineTotal().String() != "6.5" {
		t.Fatalf("LineTotal() = %s, want 6.5", order.OrderItems[0].LineTotal())
	}
	if order.TableNumber() != "T4" || order.CustomerName() != "Ana" {
		t.Fatalf("table/customer = %q/%q", order.TableNumber(), order.CustomerName())
	}
}

func TestMenuItemAvailabilityDefaultsToTrue(t *testing.T) {
	t.Parallel()

	unavailable := false
	if !(MenuItem{}).IsAvailable() {
		t.Fatalf("missing flag should be available")
	}
	if (MenuItem{Available: &unavailable}).IsAvailable() {
		t.Fatalf("explicit false should be unavailable")
	}
}
