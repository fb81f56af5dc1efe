package models

import (
	"encoding/json"
	"strings"
)

// Checkbox is a boolean form field. Browsers submit "on" for a ticked box
// and omit unticked ones; "false", "0", "off" and "" read as false and
// anything else as true.
type Checkbox bool

// UnmarshalParam implements binding.BindUnmarshaler for form and query values.
func (cb *Checkbox) UnmarshalParam(param string) error {
	switch strings.ToLower(strings.TrimSpace(param)) {
	case "", "false", "0", "off":
		*cb = false
	default:
		*cb = true
	}
	return nil
}

func (cb *Checkbox) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*cb = Checkbox(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return cb.UnmarshalParam(s)
}
