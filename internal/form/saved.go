package form

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Saved is the part of State that survives a screen recreation.
// NameError is never saved.
type Saved struct {
	Name        string `toml:"name"`
	Age         int    `toml:"age"`
	Gender      Gender `toml:"gender"`
	Subscribed  bool   `toml:"subscribed"`
	ShowSummary bool   `toml:"show_summary"`
}

// Save extracts the restorable fields.
func (s State) Save() Saved {
	return Saved{
		Name:        s.Name,
		Age:         s.Age,
		Gender:      s.Gender,
		Subscribed:  s.Subscribed,
		ShowSummary: s.ShowSummary,
	}
}

// Restore rebuilds a State from saved fields with NameError cleared.
func Restore(sv Saved) State {
	s := New()
	s.Name = sv.Name
	s.Age = ClampAge(sv.Age)
	s = s.SetGender(sv.Gender)
	s.Subscribed = sv.Subscribed
	s.ShowSummary = sv.ShowSummary
	return s
}

// EncodeSaved serializes sv as TOML.
func EncodeSaved(sv Saved) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(sv); err != nil {
		return nil, fmt.Errorf("failed to encode saved state: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeSaved parses TOML produced by EncodeSaved. A missing age decodes
// to DefaultAge.
func DecodeSaved(data []byte) (Saved, error) {
	sv := Saved{Age: DefaultAge}
	if _, err := toml.Decode(string(data), &sv); err != nil {
		return Saved{}, fmt.Errorf("failed to decode saved state: %w", err)
	}
	sv.Age = ClampAge(sv.Age)
	return sv, nil
}
