package models

import (
	"encoding/json"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// LocalizedText is a bilingual content field stored as {zh, en}.
//
// Legacy documents are not consistent: the same logical field may be stored
// as an embedded document, a JSON-encoded string, or a bare string. Every
// read goes through this type so callers only ever see the canonical shape.
type LocalizedText struct {
	Zh string `bson:"zh" json:"zh"`
	En string `bson:"en" json:"en"`
}

// IsEmpty reports whether both languages are blank.
func (t LocalizedText) IsEmpty() bool {
	return t.Zh == "" && t.En == ""
}

// In returns the value for the given language code, falling back to the
// other language when the requested one is blank.
func (t LocalizedText) In(lang string) string {
	if lang == "en" {
		if t.En != "" {
			return t.En
		}
		return t.Zh
	}
	if t.Zh != "" {
		return t.Zh
	}
	return t.En
}

// ParseLocalized coerces a raw string into the canonical shape. A string
// that decodes as a JSON object keeps its zh/en entries; anything else is
// wrapped as the value for both languages.
func ParseLocalized(raw string) LocalizedText {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "{") {
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(s), &m); err == nil {
			var t LocalizedText
			if zh, ok := m["zh"].(string); ok {
				t.Zh = zh
			}
			if en, ok := m["en"].(string); ok {
				t.En = en
			}
			return t
		}
	}
	return LocalizedText{Zh: raw, En: raw}
}

// Localize normalizes an arbitrary decoded value (as surfaced by the admin
// database browser, where documents are read as bson.M) into LocalizedText.
// It is idempotent: Localize(Localize(v)) == Localize(v).
func Localize(v interface{}) LocalizedText {
	switch val := v.(type) {
	case nil:
		return LocalizedText{}
	case LocalizedText:
		return val
	case *LocalizedText:
		if val == nil {
			return LocalizedText{}
		}
		return *val
	case string:
		return ParseLocalized(val)
	case bson.M:
		return localizedFromMap(map[string]interface{}(val))
	case map[string]interface{}:
		return localizedFromMap(val)
	case bson.D:
		m := make(map[string]interface{}, len(val))
		for _, e := range val {
			m[e.Key] = e.Value
		}
		return localizedFromMap(m)
	default:
		return LocalizedText{}
	}
}

func localizedFromMap(m map[string]interface{}) LocalizedText {
	var t LocalizedText
	if zh, ok := m["zh"].(string); ok {
		t.Zh = zh
	}
	if en, ok := m["en"].(string); ok {
		t.En = en
	}
	return t
}

// UnmarshalJSON accepts the canonical object shape as well as the legacy
// bare-string and JSON-encoded-string shapes.
func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*t = LocalizedText{}
		return nil
	}
	if strings.HasPrefix(trimmed, "\"") {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = ParseLocalized(s)
		return nil
	}
	var aux struct {
		Zh string `json:"zh"`
		En string `json:"en"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*t = LocalizedText{Zh: aux.Zh, En: aux.En}
	return nil
}

// UnmarshalBSONValue applies the same coercion on reads from MongoDB, so
// legacy documents decode into the canonical shape without caller support.
func (t *LocalizedText) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: bt, Value: data}
	switch bt {
	case bsontype.EmbeddedDocument:
		var aux struct {
			Zh string `bson:"zh"`
			En string `bson:"en"`
		}
		if err := rv.Unmarshal(&aux); err != nil {
			return err
		}
		*t = LocalizedText{Zh: aux.Zh, En: aux.En}
	case bsontype.String:
		*t = ParseLocalized(rv.StringValue())
	case bsontype.Null, bsontype.Undefined:
		*t = LocalizedText{}
	default:
		// Unexpected BSON types decode as empty rather than failing the
		// whole document; the store holds ad hoc data.
		*t = LocalizedText{}
	}
	return nil
}
