package forecastio

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	SectionCurrently = "currently"
	SectionMinutely  = "minutely"
	SectionHourly    = "hourly"
	SectionDaily     = "daily"
	SectionFlags     = "flags"
	SectionAlerts    = "alerts"
)

// Sections lists the top-level forecast groupings in response order.
var Sections = []string{
	SectionCurrently,
	SectionMinutely,
	SectionHourly,
	SectionDaily,
	SectionFlags,
	SectionAlerts,
}

func IsSection(name string) bool {
	for _, s := range Sections {
		if s == name {
			return true
		}
	}
	return false
}

// Document is a decoded forecast response. Every top-level value is kept
// as the raw JSON the API sent.
type Document map[string]json.RawMessage

func decodeDocument(body []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: response is not a JSON object", ErrDecode)
	}
	return doc, nil
}

func (d Document) Has(name string) bool {
	_, ok := d[name]
	return ok
}

// Get returns the raw section or nil when the document does not carry it.
func (d Document) Get(name string) json.RawMessage {
	raw, ok := d[name]
	if !ok {
		return nil
	}
	return raw
}

// Present returns the known sections carried by the document.
func (d Document) Present() []string {
	var present []string
	for _, s := range Sections {
		if d.Has(s) {
			present = append(present, s)
		}
	}
	return present
}

// Decode unmarshals a section into v. A missing section or an explicit JSON
// null leaves v untouched and reports false.
func (d Document) Decode(name string, v any) (bool, error) {
	raw := d.Get(name)
	if raw == nil || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("%w: section %s: %v", ErrDecode, name, err)
	}
	return true, nil
}
