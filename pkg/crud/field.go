package crud

import (
	"reflect"
	"strings"
)

type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindDate
	KindFile
	KindList
)

// FileRef is the persisted form of a file-valued field: a URL plus the
// display name returned by the upload endpoint. A zero FileRef means no
// file has been attached.
type FileRef struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

func (f FileRef) IsZero() bool { return f.URL == "" && f.Name == "" }

// Field describes one entity field as discovered from struct tags. The json
// tag supplies the wire name, the crud tag the table/form flags.
type Field struct {
	Name       string
	Index      []int
	Kind       Kind
	Key        bool
	Hidden     bool
	Readonly   bool
	Computed   bool
	Searchable bool
}

var fileRefType = reflect.TypeOf(FileRef{})

func fieldsOf(t reflect.Type) []Field {
	fields := make([]Field, 0, t.NumField())
	for _, sf := range reflect.VisibleFields(t) {
		if sf.Anonymous || !sf.IsExported() {
			continue
		}
		name, ok := jsonName(sf)
		if !ok {
			continue
		}

		f := Field{
			Name:       name,
			Index:      sf.Index,
			Kind:       kindOf(sf.Type),
			Searchable: true,
		}
		for _, opt := range strings.Split(sf.Tag.Get("crud"), ",") {
			switch opt {
			case "key":
				f.Key = true
				f.Readonly = true
			case "hidden":
				f.Hidden = true
				f.Searchable = false
			case "readonly":
				f.Readonly = true
			case "computed":
				f.Computed = true
				f.Readonly = true
			case "date":
				f.Kind = KindDate
			case "file":
				f.Kind = KindFile
			case "nosearch":
				f.Searchable = false
			}
		}
		if f.Kind == KindFile || f.Kind == KindList {
			f.Searchable = false
		}
		fields = append(fields, f)
	}
	return fields
}

func jsonName(sf reflect.StructField) (string, bool) {
	tag := sf.Tag.Get("json")
	if tag == "-" {
		return "", false
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		name = sf.Name
	}
	return name, true
}

func kindOf(t reflect.Type) Kind {
	if t == fileRefType {
		return KindFile
	}
	switch t.Kind() {
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.Slice, reflect.Array:
		return KindList
	default:
		return KindString
	}
}
