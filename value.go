package datatable

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind identifies the variant held by a [FieldValue].
type Kind int

const (
	KindAbsent Kind = iota // key not present in the record
	KindNull               // explicit null
	KindString
	KindNumber
	KindBool
	KindOther // arrays, objects and anything else without a display form
)

var kindNames = map[Kind]string{
	KindAbsent: "absent",
	KindNull:   "null",
	KindString: "string",
	KindNumber: "number",
	KindBool:   "bool",
	KindOther:  "other",
}

// String returns the kind name.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// FieldValue is one value of a [Record]. The zero value is absent.
type FieldValue struct {
	kind Kind
	text string
	num  float64
}

// Absent is the value returned for keys missing from a record.
var Absent = FieldValue{}

// NullValue returns an explicit null.
func NullValue() FieldValue { return FieldValue{kind: KindNull} }

// StringValue wraps s.
func StringValue(s string) FieldValue { return FieldValue{kind: KindString, text: s} }

// BoolValue wraps b. Its text is "true" or "false".
func BoolValue(b bool) FieldValue {
	return FieldValue{kind: KindBool, text: strconv.FormatBool(b)}
}

// IntValue wraps an integer.
func IntValue(n int64) FieldValue {
	return FieldValue{kind: KindNumber, text: strconv.FormatInt(n, 10), num: float64(n)}
}

// UintValue wraps an unsigned integer.
func UintValue(n uint64) FieldValue {
	return FieldValue{kind: KindNumber, text: strconv.FormatUint(n, 10), num: float64(n)}
}

// FloatValue wraps a float. NaN and infinities have no JSON form and become
// null.
func FloatValue(f float64) FieldValue {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return NullValue()
	}
	return FieldValue{kind: KindNumber, text: formatFloat(f), num: f}
}

// formatFloat prints the shortest round-trip form. Integral values keep a
// ".0" so floats stay distinguishable from integers, and exponents drop the
// sign padding: 2 -> "2.0", 1e-5 -> "0.00001", 1e-6 -> "1e-6", 1e16 -> "1e16".
func formatFloat(f float64) string {
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-5 || abs >= 1e16) {
		mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
		neg := strings.HasPrefix(exp, "-")
		exp = strings.TrimLeft(exp, "+-0")
		if neg {
			exp = "-" + exp
		}
		return mant + "e" + exp
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func numberValue(n json.Number) FieldValue {
	s := n.String()
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return IntValue(i)
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return UintValue(u)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return FloatValue(f)
	}
	return FieldValue{kind: KindOther}
}

// ValueOf converts a decoded JSON or YAML value into a FieldValue.
// Unsupported values (slices, maps, structs) become [KindOther].
func ValueOf(v any) FieldValue {
	switch x := v.(type) {
	case nil:
		return NullValue()
	case FieldValue:
		return x
	case string:
		return StringValue(x)
	case bool:
		return BoolValue(x)
	case json.Number:
		return numberValue(x)
	case int:
		return IntValue(int64(x))
	case int8:
		return IntValue(int64(x))
	case int16:
		return IntValue(int64(x))
	case int32:
		return IntValue(int64(x))
	case int64:
		return IntValue(x)
	case uint:
		return UintValue(uint64(x))
	case uint8:
		return UintValue(uint64(x))
	case uint16:
		return UintValue(uint64(x))
	case uint32:
		return UintValue(uint64(x))
	case uint64:
		return UintValue(x)
	case float32:
		return FloatValue(float64(x))
	case float64:
		return FloatValue(x)
	default:
		return FieldValue{kind: KindOther}
	}
}

// Kind reports the variant.
func (v FieldValue) Kind() Kind { return v.kind }

// Text returns the display string of strings, numbers and booleans.
// ok is false for absent, null and unsupported values.
func (v FieldValue) Text() (string, bool) {
	switch v.kind {
	case KindString, KindNumber, KindBool:
		return v.text, true
	default:
		return "", false
	}
}

// Float returns the numeric value of a number.
func (v FieldValue) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// String implements fmt.Stringer. Values without a display form print empty.
func (v FieldValue) String() string {
	s, _ := v.Text()
	return s
}

// MarshalJSON writes numbers unquoted, strings and booleans in their JSON
// form, and everything else as null.
func (v FieldValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.text)
	case KindNumber, KindBool:
		return []byte(v.text), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes any JSON value.
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	*v = ValueOf(raw)
	return nil
}

// Record is one row of source data.
type Record map[string]FieldValue

// Get returns the value stored under key, or [Absent].
func (r Record) Get(key string) FieldValue {
	if v, ok := r[key]; ok {
		return v
	}
	return Absent
}

// RecordFromMap converts a generic map, such as a decoded JSON object.
func RecordFromMap(m map[string]any) Record {
	r := make(Record, len(m))
	for k, v := range m {
		r[k] = ValueOf(v)
	}
	return r
}

// DecodeRecords reads a JSON array of objects. Numbers keep their integer or
// float form.
func DecodeRecords(r io.Reader) ([]Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var raw []map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRecord, err)
	}
	records := make([]Record, len(raw))
	for i, m := range raw {
		if m == nil {
			return nil, fmt.Errorf("%w: element %d is not an object", ErrInvalidRecord, i)
		}
		records[i] = RecordFromMap(m)
	}
	return records, nil
}

// DecodeRecordsYAML reads a YAML sequence of mappings.
func DecodeRecordsYAML(r io.Reader) ([]Record, error) {
	var raw []map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidRecord, err)
	}
	records := make([]Record, len(raw))
	for i, m := range raw {
		if m == nil {
			return nil, fmt.Errorf("%w: element %d is not a mapping", ErrInvalidRecord, i)
		}
		records[i] = RecordFromMap(m)
	}
	return records, nil
}
