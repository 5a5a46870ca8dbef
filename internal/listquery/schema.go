package listquery

import (
	"sort"
	"time"
)

// Schema exposes a record's fields to the engine.
type Schema[T any] interface {
	// Lookup returns the named field, or None when the record has no such field.
	Lookup(rec T, field string) Value
	// Each visits every field until fn returns false.
	Each(rec T, fn func(name string, v Value) bool)
}

// Field declares one named, kind-tagged field of T.
type Field[T any] struct {
	Name string
	Kind Kind
	Get  func(T) Value
}

func TextField[T any](name string, get func(T) string) Field[T] {
	return Field[T]{Name: name, Kind: KindString, Get: func(rec T) Value { return String(get(rec)) }}
}

func NumberField[T any](name string, get func(T) float64) Field[T] {
	return Field[T]{Name: name, Kind: KindNumber, Get: func(rec T) Value { return Number(get(rec)) }}
}

func BoolField[T any](name string, get func(T) bool) Field[T] {
	return Field[T]{Name: name, Kind: KindBool, Get: func(rec T) Value { return Bool(get(rec)) }}
}

// zero or nil times read as absent
func TimeField[T any](name string, get func(T) *time.Time) Field[T] {
	return Field[T]{Name: name, Kind: KindTime, Get: func(rec T) Value { return TimePtr(get(rec)) }}
}

func ListField[T any](name string, get func(T) []string) Field[T] {
	return Field[T]{Name: name, Kind: KindStrings, Get: func(rec T) Value { return Strings(get(rec)) }}
}

// FieldSet is a static Schema built from declared fields.
type FieldSet[T any] struct {
	fields []Field[T]
	index  map[string]int
}

func NewFieldSet[T any](fields ...Field[T]) *FieldSet[T] {
	fs := &FieldSet[T]{
		fields: make([]Field[T], 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if f.Get == nil {
			continue
		}
		if i, ok := fs.index[f.Name]; ok {
			fs.fields[i] = f
			continue
		}
		fs.index[f.Name] = len(fs.fields)
		fs.fields = append(fs.fields, f)
	}
	return fs
}

// values whose kind disagrees with the declared tag read as None
func (fs *FieldSet[T]) Lookup(rec T, field string) Value {
	i, ok := fs.index[field]
	if !ok {
		return None()
	}
	return fs.read(fs.fields[i], rec)
}

func (fs *FieldSet[T]) Each(rec T, fn func(name string, v Value) bool) {
	for _, f := range fs.fields {
		if !fn(f.Name, fs.read(f, rec)) {
			return
		}
	}
}

func (fs *FieldSet[T]) Names() []string {
	names := make([]string, len(fs.fields))
	for i, f := range fs.fields {
		names[i] = f.Name
	}
	return names
}

func (fs *FieldSet[T]) Kind(field string) (Kind, bool) {
	i, ok := fs.index[field]
	if !ok {
		return KindNone, false
	}
	return fs.fields[i].Kind, true
}

func (fs *FieldSet[T]) read(f Field[T], rec T) Value {
	v := f.Get(rec)
	if v.kind != f.Kind {
		return None()
	}
	return v
}

// Record is a dynamically shaped record.
type Record map[string]Value

// MapSchema is the Schema for Record.
type MapSchema struct{}

func (MapSchema) Lookup(rec Record, field string) Value {
	return rec[field]
}

// fields are visited in name order
func (MapSchema) Each(rec Record, fn func(name string, v Value) bool) {
	names := make([]string, 0, len(rec))
	for name := range rec {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !fn(name, rec[name]) {
			return
		}
	}
}
