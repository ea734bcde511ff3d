package meta

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Field is a single extracted metadata field. Absent fields keep their
// slot in the record so callers can tell "not present in the source"
// from "not requested".
type Field struct {
	Key     string // record key, e.g. "OriginalImageSize_Width"
	Value   string // raw extracted text, empty when absent
	Present bool   // the field was found in the source
	Double  bool   // value is a bit-encoded IEEE 754 double
}

// Record holds extracted fields in declaration order.
type Record struct {
	fields []Field
	index  map[string]int
}

func newRecord() *Record {
	return &Record{index: make(map[string]int)}
}

// add appends a field, keeping keys unique; later duplicates are dropped.
func (r *Record) add(f Field) {
	if _, dup := r.index[f.Key]; dup {
		return
	}
	r.index[f.Key] = len(r.fields)
	r.fields = append(r.fields, f)
}

// Fields returns the record's fields in declaration order.
func (r *Record) Fields() []Field {
	return r.fields
}

// Len returns the number of fields in the record, absent ones included.
func (r *Record) Len() int {
	return len(r.fields)
}

// Lookup returns the field with the given record key.
func (r *Record) Lookup(key string) (Field, bool) {
	i, ok := r.index[key]
	if !ok {
		return Field{}, false
	}
	return r.fields[i], true
}

// Map returns the present fields as display values. Double-encoded fields
// are decoded and keyed with a trailing "*" so downstream formatters know
// which values were bit-reinterpreted.
func (r *Record) Map() map[string]string {
	out := make(map[string]string)
	for _, f := range r.fields {
		if !f.Present {
			continue
		}
		key := f.Key
		if f.Double {
			key += "*"
		}
		out[key] = FormatField(f)
	}
	return out
}

// ToJSON renders the record's display map as indented JSON.
func (r *Record) ToJSON() (string, error) {
	jsonBytes, err := json.MarshalIndent(r.Map(), "", "  ")
	if err != nil {
		return "{}", err
	}
	return string(jsonBytes), nil
}

// ToYAML renders the record's display map as YAML.
func (r *Record) ToYAML() (string, error) {
	yamlBytes, err := yaml.Marshal(r.Map())
	if err != nil {
		return "", err
	}
	return string(yamlBytes), nil
}
