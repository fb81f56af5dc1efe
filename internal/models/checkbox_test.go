package models

import (
	"encoding/json"
	"testing"
)

func TestCheckboxParam(t *testing.T) {
	tests := []struct {
		in   string
		want Checkbox
	}{
		{"on", true},
		{"true", true},
		{"1", true},
		{"", false},
		{"off", false},
		{"False", false},
		{"0", false},
	}
	for _, tt := range tests {
		var cb Checkbox
		if err := cb.UnmarshalParam(tt.in); err != nil {
			t.Fatalf("UnmarshalParam(%q) failed: %v", tt.in, err)
		}
		if cb != tt.want {
			t.Errorf("UnmarshalParam(%q): got %v, want %v", tt.in, cb, tt.want)
		}
	}
}

func TestCheckboxJSON(t *testing.T) {
	var form TaskForm
	if err := json.Unmarshal([]byte(`{"title":"x","completed":true}`), &form); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !form.Completed {
		t.Error("bool true should decode as checked")
	}

	form = TaskForm{}
	if err := json.Unmarshal([]byte(`{"title":"x","completed":"on"}`), &form); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !form.Completed {
		t.Error(`"on" should decode as checked`)
	}
}
