package application

import (
	"encoding/json"
	"errors"
	"strings"
)

// TagList is the single input type for list-valued tag fields. It accepts
// a JSON array of strings, or a single comma-delimited string as sent by
// older client form submissions. The legacy string is split, trimmed, and
// stripped of empty segments here, once, before validation; nothing
// downstream ever sees the string shape.
type TagList []string

func (t *TagList) UnmarshalJSON(b []byte) error {
	var arr []string
	if err := json.Unmarshal(b, &arr); err == nil {
		if arr == nil {
			arr = []string{}
		}
		*t = arr
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errors.New("must be a list of strings")
	}
	*t = splitTags(s)
	return nil
}

func splitTags(s string) TagList {
	parts := strings.Split(s, ",")
	out := make(TagList, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
