package services

import (
	"strconv"
	"strings"
)

// Form payloads arrive as loosely typed maps (decoded JSON from a form page
// or CLI input file). These helpers normalize them: ids may come as raw
// numbers, numeric strings or already-nested {xId: N} objects, so formatting
// an already-formatted payload yields the same result.

func formString(m map[string]interface{}, key string) string {
	v, ok := m[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

func formBool(m map[string]interface{}, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

func formFloat(m map[string]interface{}, key string) float64 {
	v, ok := m[key]
	if !ok {
		return 0
	}
	return toFloat(v)
}

func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func toID(v interface{}) int {
	f := toFloat(v)
	id := int(f)
	if id <= 0 || float64(id) != f {
		return 0
	}
	return id
}

// formRef extracts an id for the nested-object payload shape. Accepts a raw
// id (number or numeric string) or a nested object keyed by idKey.
func formRef(m map[string]interface{}, key, idKey string) int {
	v, ok := m[key]
	if !ok || v == nil {
		return 0
	}
	if nested, ok := v.(map[string]interface{}); ok {
		return toID(nested[idKey])
	}
	return toID(v)
}

// formRefList extracts a list of ids; elements may each be raw ids or
// nested objects.
func formRefList(m map[string]interface{}, key, idKey string) []int {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	var ids []int
	for _, item := range list {
		var id int
		if nested, ok := item.(map[string]interface{}); ok {
			id = toID(nested[idKey])
		} else {
			id = toID(item)
		}
		if id > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}
