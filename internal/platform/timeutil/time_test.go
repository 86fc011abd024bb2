package timeutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
)

func TestTimeMarshalJSONMillisUTC(t *testing.T) {
	loc := time.FixedZone("EET", 2*60*60)
	ts := Time{Time: time.Date(2024, 1, 15, 12, 30, 0, 123456789, loc)}

	data, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got := string(data); got != `"2024-01-15T10:30:00.123Z"` {
		t.Fatalf("unexpected JSON: %s", got)
	}
}

func TestTimeUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"millis", `"2024-01-15T10:30:00.123Z"`, time.Date(2024, 1, 15, 10, 30, 0, 123000000, time.UTC), false},
		{"seconds", `"2024-01-15T10:30:00Z"`, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), false},
		{"invalid", `"yesterday"`, time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Time
			err := json.Unmarshal([]byte(tt.input), &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got.Time)
			}
		})
	}
}

func TestTimeUnmarshalNullPreservesValue(t *testing.T) {
	orig := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	got := Time{Time: orig}
	if err := json.Unmarshal([]byte("null"), &got); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !got.Equal(orig) {
		t.Fatalf("expected value preserved, got %v", got.Time)
	}
}

func TestTimeMarshalCBORTextString(t *testing.T) {
	loc := time.FixedZone("EET", 2*60*60)
	ts := Time{Time: time.Date(2024, 1, 15, 12, 30, 0, 123456789, loc)}

	data, err := cbor.Marshal(ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw any
	if err := cbor.Unmarshal(data, &raw); err != nil {
		t.Fatalf("decode raw: %v", err)
	}
	s, ok := raw.(string)
	if !ok {
		t.Fatalf("expected CBOR text string, got %T", raw)
	}
	if s != "2024-01-15T10:30:00.123Z" {
		t.Fatalf("unexpected CBOR timestamp: %s", s)
	}
}

func TestTimeCBORRoundTripInStruct(t *testing.T) {
	type payload struct {
		Timestamp Time `cbor:"timestamp"`
	}
	want := time.Date(2024, 1, 15, 10, 30, 0, 123000000, time.UTC)

	data, err := cbor.Marshal(payload{Timestamp: Time{Time: want}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got payload
	if err := cbor.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Timestamp.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got.Timestamp.Time)
	}
}

func TestTimeUnmarshalCBOR(t *testing.T) {
	orig := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("null preserves value", func(t *testing.T) {
		got := Time{Time: orig}
		if err := cbor.Unmarshal([]byte{0xf6}, &got); err != nil {
			t.Fatalf("unmarshal null: %v", err)
		}
		if !got.Equal(orig) {
			t.Fatalf("expected value preserved, got %v", got.Time)
		}
	})

	t.Run("invalid text", func(t *testing.T) {
		data, err := cbor.Marshal("yesterday")
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var got Time
		if err := cbor.Unmarshal(data, &got); err == nil {
			t.Fatal("expected parse error")
		}
	})

	t.Run("byte string rejected", func(t *testing.T) {
		data, err := cbor.Marshal([]byte{1, 2, 3})
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var got Time
		if err := cbor.Unmarshal(data, &got); err == nil {
			t.Fatal("expected error for byte string")
		}
	})
}

func TestTimeSchemaIsDateTimeString(t *testing.T) {
	s := Time{}.Schema(nil)
	if s.Type != "string" || s.Format != "date-time" {
		t.Fatalf("unexpected schema: %+v", s)
	}
}
