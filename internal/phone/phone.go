package phone

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/spf13/cast" // Loose type coercion
)

// Value is a phone number whose stored representation is not fixed: legacy
// records hold it as either a string ("0811111111") or a number (811111111,
// with the leading zero lost). Value keeps the original textual form so that
// exact-match writes stay byte-compatible, and exposes the alternate forms a
// lookup has to try.
type Value struct {
	raw     string // Original textual form
	numeric bool   // True when the source token was a JSON number
}

// Parse builds a Value from whatever representation the caller has.
func Parse(v any) Value {
	switch v.(type) {
	case string, []byte, nil:
		return Value{raw: strings.TrimSpace(cast.ToString(v))}
	default:
		// Numbers (int, float, json.Number already unwrapped) keep their
		// numeric origin so storage can round-trip the same type.
		return Value{raw: cast.ToString(v), numeric: true}
	}
}

// String returns the original textual form.
func (v Value) String() string { return v.raw }

// IsZero reports whether the value is empty.
func (v Value) IsZero() bool { return v.raw == "" }

// Numeric reports whether the source representation was a number.
func (v Value) Numeric() bool { return v.numeric }

// Canonical strips everything but digits. "081-111-1111" and "0811111111"
// share one canonical form; it is the cache/lookup key, never the stored form.
func (v Value) Canonical() string {
	var b strings.Builder
	for _, r := range v.raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Number returns the numeric rendering of the value, mirroring the stored
// form a record written as a number would have (leading zeros dropped).
func (v Value) Number() (int64, bool) {
	n, err := cast.ToInt64E(v.Canonical())
	if err != nil || v.Canonical() == "" {
		return 0, false
	}
	return n, true
}

// Forms returns the distinct textual forms a stored phone field may carry
// for this value. Both storage backends build their match predicate from it.
func (v Value) Forms() []string {
	forms := []string{v.raw}
	if c := v.Canonical(); c != "" && c != v.raw {
		forms = append(forms, c)
	}
	if n, ok := v.Number(); ok {
		if s := cast.ToString(n); s != v.raw && s != v.Canonical() {
			forms = append(forms, s)
		}
	}
	return forms
}

// Matches reports whether a stored field of unknown type equals this value
// under either representation.
func (v Value) Matches(stored any) bool {
	s := cast.ToString(stored)
	for _, f := range v.Forms() {
		if s == f {
			return true
		}
	}
	return false
}

// UnmarshalJSON accepts both string and number tokens.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*v = Value{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Value{raw: strings.TrimSpace(s)}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = Value{raw: n.String(), numeric: true}
	return nil
}

// MarshalJSON echoes the value to clients exactly as stored: a number token
// for numeric origins, a string token otherwise.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.numeric && json.Valid([]byte(v.raw)) {
		return []byte(v.raw), nil
	}
	return json.Marshal(v.raw)
}
