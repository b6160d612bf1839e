package lastfm

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Coercion types absorbing the shape inconsistencies of the Last.fm JSON
// responses before they reach the typed models: numbers arrive stringified,
// single-element lists arrive as bare objects, text nodes arrive wrapped in
// {"#text": ...} objects, and list fields are nested inside an intermediate
// keyed wrapper. Each model field picks its coercion by declared type, so
// the rule set per entity is fixed at compile time.

// kind returns the first non-space byte of a JSON value, or 0 when empty.
func kind(data []byte) byte {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b
	}
	return 0
}

// flexInt decodes an integer that may arrive as a JSON number or a string.
type flexInt int64

func (n *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// A few counters come back in float notation.
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return fmt.Errorf("parse int %q: %w", s, err)
		}
		v = int64(f)
	}
	*n = flexInt(v)
	return nil
}

// flexFloat decodes a float that may arrive as a JSON number or a string.
type flexFloat float64

func (n *flexFloat) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parse float %q: %w", s, err)
	}
	*n = flexFloat(v)
	return nil
}

// flexBool decodes a boolean that may arrive as true/false, "0"/"1" or 0/1.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	switch strings.Trim(string(data), `"`) {
	case "", "null", "0", "false":
		*b = false
	case "1", "true":
		*b = true
	default:
		return fmt.Errorf("parse bool %q", string(data))
	}
	return nil
}

// flexText decodes a text node that may arrive as a plain string or wrapped
// in a {"text": ...} or {"#text": ...} object. An empty string stays empty,
// which the models treat as absent.
type flexText string

func (t *flexText) UnmarshalJSON(data []byte) error {
	switch kind(data) {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = flexText(s)
	case '{':
		var obj struct {
			Text  string `json:"text"`
			XText string `json:"#text"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if obj.Text != "" {
			*t = flexText(obj.Text)
		} else {
			*t = flexText(obj.XText)
		}
	case 'n':
		*t = ""
	default:
		return fmt.Errorf("unexpected shape for text field: %s", string(data))
	}
	return nil
}

// oneOrMany decodes a JSON value that may be either a single object or an
// array of objects into a slice. The service drops the array wrapper when a
// list has exactly one element.
type oneOrMany[T any] []T

func (l *oneOrMany[T]) UnmarshalJSON(data []byte) error {
	switch kind(data) {
	case '[':
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*l = items
	case 'n':
		*l = nil
	default:
		var item T
		if err := json.Unmarshal(data, &item); err != nil {
			return err
		}
		*l = oneOrMany[T]{item}
	}
	return nil
}

// unwrapList unwraps the intermediate keyed object the service nests list
// fields in, e.g. {"tags": {"tag": [...]}} down to the tag list. A missing
// wrapper, a missing sub-key or a non-object wrapper (the service returns
// an empty string for some empty collections) yields no elements.
func unwrapList[T any](data []byte, key string) ([]T, error) {
	if kind(data) != '{' {
		return nil, nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	inner, ok := raw[key]
	if !ok {
		return nil, nil
	}
	var items oneOrMany[T]
	if err := json.Unmarshal(inner, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Per-entity wrapper rules. One declarative type per wrapped list shape.

type tagList []Tag

func (l *tagList) UnmarshalJSON(data []byte) error {
	items, err := unwrapList[Tag](data, "tag")
	*l = items
	return err
}

type linkList []Link

func (l *linkList) UnmarshalJSON(data []byte) error {
	items, err := unwrapList[Link](data, "link")
	*l = items
	return err
}

type artistList []Artist

func (l *artistList) UnmarshalJSON(data []byte) error {
	items, err := unwrapList[Artist](data, "artist")
	*l = items
	return err
}

type trackList []Track

func (l *trackList) UnmarshalJSON(data []byte) error {
	items, err := unwrapList[Track](data, "track")
	*l = items
	return err
}

// intPtr converts a decoded flexInt to the model's absent-aware form.
func intPtr(n *flexInt) *int64 {
	if n == nil {
		return nil
	}
	v := int64(*n)
	return &v
}

func floatPtr(n *flexFloat) *float64 {
	if n == nil {
		return nil
	}
	v := float64(*n)
	return &v
}

func boolPtr(b *flexBool) *bool {
	if b == nil {
		return nil
	}
	v := bool(*b)
	return &v
}
