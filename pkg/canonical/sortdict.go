// Package canonical rewrites nested mapping/sequence data into a
// deterministic form for comparison and serialization.
package canonical

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"gopkg.in/yaml.v3"
)

// Item is one key/value pair of a Map.
type Item struct {
	Key   string
	Value interface{}
}

// Map is a mapping whose keys are kept in sorted order.
type Map []Item

// Get returns the value stored under key.
func (m Map) Get(key string) (interface{}, bool) {
	for _, item := range m {
		if item.Key == key {
			return item.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys in emission order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for _, item := range m {
		keys = append(keys, item.Key)
	}
	return keys
}

// MarshalJSON emits a JSON object in key order.
func (m Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, item := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(item.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(item.Value)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", item.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML emits a YAML mapping in key order.
func (m Map) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, item := range m {
		var value yaml.Node
		if err := value.Encode(item.Value); err != nil {
			return nil, fmt.Errorf("key %q: %w", item.Key, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: item.Key},
			&value,
		)
	}
	return node, nil
}

// SortDict returns the canonical form of in: keys sorted, nested mappings
// rewritten the same way, sequences sorted. in is not modified.
func SortDict(in map[string]interface{}) Map {
	out := make(Map, 0, len(in))
	for k, v := range in {
		out = append(out, Item{Key: k, Value: Normalize(v)})
	}
	sortItems(out)
	return out
}

// Normalize returns the canonical form of any nested value. Mappings with
// string keys become a Map, sequences become sorted copies of the same type,
// everything else passes through unchanged.
func Normalize(v interface{}) interface{} {
	switch t := v.(type) {
	case nil:
		return nil
	case Map:
		out := make(Map, 0, len(t))
		for _, item := range t {
			out = append(out, Item{Key: item.Key, Value: Normalize(item.Value)})
		}
		sortItems(out)
		return out
	case map[string]interface{}:
		return SortDict(t)
	case []string:
		if t == nil {
			return t
		}
		out := append([]string(nil), t...)
		sort.Strings(out)
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		out := make(Map, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out = append(out, Item{Key: iter.Key().String(), Value: Normalize(iter.Value().Interface())})
		}
		sortItems(out)
		return out
	case reflect.Slice:
		if rv.IsNil() || rv.Type().Elem().Kind() == reflect.Uint8 {
			return v
		}
		return sortedSlice(rv)
	}
	return v
}

func sortItems(items Map) {
	sort.Slice(items, func(i, j int) bool { return items[i].Key < items[j].Key })
}

func sortedSlice(rv reflect.Value) interface{} {
	elemType := rv.Type().Elem()
	values := make([]interface{}, rv.Len())
	retype := false
	for i := range values {
		elem := rv.Index(i).Interface()
		if isMapping(elem) {
			elem = Normalize(elem)
			if !reflect.TypeOf(elem).AssignableTo(elemType) {
				retype = true
			}
		}
		values[i] = elem
	}
	sort.SliceStable(values, func(i, j int) bool { return compare(values[i], values[j]) < 0 })

	if retype {
		return values
	}
	out := reflect.MakeSlice(rv.Type(), len(values), len(values))
	for i, elem := range values {
		if elem != nil {
			out.Index(i).Set(reflect.ValueOf(elem))
		}
	}
	return out.Interface()
}

func isMapping(v interface{}) bool {
	if _, ok := v.(Map); ok {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String
}

// kind ranks order mixed sequences: nil < bool < number < string < other.
const (
	rankNil = iota
	rankBool
	rankNumber
	rankString
	rankOther
)

func rank(v interface{}) int {
	if v == nil {
		return rankNil
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool:
		return rankBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return rankNumber
	case reflect.String:
		return rankString
	}
	return rankOther
}

func compare(a, b interface{}) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ra - rb
	}
	switch ra {
	case rankNil:
		return 0
	case rankBool:
		return compareBools(reflect.ValueOf(a).Bool(), reflect.ValueOf(b).Bool())
	case rankNumber:
		return compareNumbers(reflect.ValueOf(a), reflect.ValueOf(b))
	case rankString:
		return compareStrings(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
	}
	return compareStrings(render(a), render(b))
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	}
	return 1
}

func isSigned(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// compareNumbers compares integers exactly and falls back to float64 only
// when a float is involved.
func compareNumbers(a, b reflect.Value) int {
	ka, kb := a.Kind(), b.Kind()
	switch {
	case isSigned(ka) && isSigned(kb):
		return cmp.Compare(a.Int(), b.Int())
	case isUnsigned(ka) && isUnsigned(kb):
		return cmp.Compare(a.Uint(), b.Uint())
	case isSigned(ka) && isUnsigned(kb):
		if a.Int() < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.Int()), b.Uint())
	case isUnsigned(ka) && isSigned(kb):
		return -compareNumbers(b, a)
	}
	return cmp.Compare(toFloat(a), toFloat(b))
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isSigned(v.Kind()):
		return float64(v.Int())
	case isUnsigned(v.Kind()):
		return float64(v.Uint())
	}
	return v.Float()
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func render(v interface{}) string {
	if data, err := json.Marshal(v); err == nil {
		return string(data)
	}
	return fmt.Sprint(v)
}
