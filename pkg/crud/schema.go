package crud

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	locale_en "github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"
	"github.com/pkg/errors"

	"github.com/RobinJosephDev/AdminUILinux/pkg/serrors"
)

// Validate is the shared validator instance behind every schema. Custom tags
// mirror the field rules of the previous UI's per-form schemas.
var (
	Validate *validator.Validate
	trans    ut.Translator
)

var (
	lettersPunctRe = regexp.MustCompile(`^[a-zA-Z\s.,'-]+$`)
	phoneCharsRe   = regexp.MustCompile(`^[0-9-+()\s]*$`)
	addressCharsRe = regexp.MustCompile(`^[a-zA-Z0-9\s,.'-]*$`)
	moneyRe        = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
	dateYMDRe      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

func init() {
	english := locale_en.New()
	uni := ut.New(english, english)
	trans, _ = uni.GetTranslator("en")

	Validate = validator.New(validator.WithRequiredStructEnabled())
	Validate.RegisterTagNameFunc(func(sf reflect.StructField) string {
		name, ok := jsonName(sf)
		if !ok {
			return ""
		}
		return name
	})
	if err := entrans.RegisterDefaultTranslations(Validate, trans); err != nil {
		panic(err)
	}

	registerRegexTag("letters_punct", lettersPunctRe,
		"{0} may only contain letters, spaces, apostrophes, periods, commas and hyphens")
	registerRegexTag("phone_chars", phoneCharsRe,
		"{0} has an invalid phone format")
	registerRegexTag("address_chars", addressCharsRe,
		"{0} has an invalid address format")
	registerRegexTag("money", moneyRe,
		"{0} must be a valid amount (e.g., 5.00)")
	registerTag("date_ymd", validDateYMD,
		"{0} must be a valid date in YYYY-MM-DD format")
}

func registerRegexTag(tag string, re *regexp.Regexp, message string) {
	registerTag(tag, func(s string) bool { return re.MatchString(s) }, message)
}

func registerTag(tag string, check func(string) bool, message string) {
	err := Validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return check(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
	err = Validate.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, message, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, err := ut.T(tag, fe.Field())
			if err != nil {
				return fe.Field() + " is invalid"
			}
			return t
		},
	)
	if err != nil {
		panic(err)
	}
}

func validDateYMD(s string) bool {
	if !dateYMDRe.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// ErrorMap maps failing field paths to human-readable messages. It is
// recomputed wholesale on every draft change.
type ErrorMap map[string]string

// Refinement adds cross-field errors which struct tags cannot express, such
// as "policy end date must be on or after the start date".
type Refinement[T any] func(draft *T, errs ErrorMap)

// Computer recomputes a derived field from the rest of the draft.
type Computer[T any] func(draft *T)

type Schema[T any] struct {
	name   string
	fields []Field
	byName map[string]int
	keyIdx int

	refinements []Refinement[T]
	computers   []Computer[T]
	label       func(T) string
	err         error
}

type SchemaOption[T any] func(*Schema[T])

func WithRefinement[T any](fn Refinement[T]) SchemaOption[T] {
	return func(s *Schema[T]) {
		s.refinements = append(s.refinements, fn)
	}
}

// WithComputed marks a field as derived and registers its recompute hook.
// Computed fields are read-only and never validated as user input. An
// unknown name fails schema construction.
func WithComputed[T any](name string, fn Computer[T]) SchemaOption[T] {
	return func(s *Schema[T]) {
		i, ok := s.byName[name]
		if !ok {
			s.err = errors.Errorf("crud: schema %q has no field %q to compute", s.name, name)
			return
		}
		s.fields[i].Computed = true
		s.fields[i].Readonly = true
		s.computers = append(s.computers, fn)
	}
}

// WithLabel sets the row label used by fuzzy suggestions.
func WithLabel[T any](fn func(T) string) SchemaOption[T] {
	return func(s *Schema[T]) {
		s.label = fn
	}
}

func NewSchema[T any](name string, opts ...SchemaOption[T]) (*Schema[T], error) {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil || t.Kind() != reflect.Struct {
		return nil, errors.Errorf("crud: schema %q requires a struct entity type", name)
	}

	s := &Schema[T]{
		name:   name,
		fields: fieldsOf(t),
		byName: map[string]int{},
		keyIdx: -1,
	}
	for i, f := range s.fields {
		s.byName[f.Name] = i
		if f.Key && s.keyIdx == -1 {
			s.keyIdx = i
		}
	}
	if s.keyIdx == -1 {
		return nil, errors.Errorf("crud: schema %q has no key field", name)
	}

	for _, opt := range opts {
		opt(s)
	}
	if s.err != nil {
		return nil, s.err
	}
	return s, nil
}

// MustSchema is NewSchema for package-level schema variables.
func MustSchema[T any](name string, opts ...SchemaOption[T]) *Schema[T] {
	s, err := NewSchema[T](name, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema[T]) Name() string { return s.name }

func (s *Schema[T]) Fields() []Field { return s.fields }

func (s *Schema[T]) Field(name string) (Field, error) {
	i, ok := s.byName[name]
	if !ok {
		return Field{}, errors.Wrapf(serrors.ErrUnknownField, "%s: %q", s.name, name)
	}
	return s.fields[i], nil
}

func (s *Schema[T]) PrimaryKey() Field { return s.fields[s.keyIdx] }

// ID returns the entity's identity; zero means not yet persisted.
func (s *Schema[T]) ID(ent T) int {
	v := reflect.ValueOf(ent).FieldByIndex(s.fields[s.keyIdx].Index)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(v.Uint())
	default:
		return 0
	}
}

// Label returns the row's display string for suggestions.
func (s *Schema[T]) Label(ent T) string {
	if s.label != nil {
		return s.label(ent)
	}
	for _, f := range s.fields {
		if f.Key || f.Kind != KindString {
			continue
		}
		if v := s.StringOf(ent, f.Name); v != "" {
			return v
		}
	}
	return fmt.Sprintf("%s/%d", s.name, s.ID(ent))
}

// ValueOf returns the raw field value via reflection.
func (s *Schema[T]) ValueOf(ent T, name string) any {
	i, ok := s.byName[name]
	if !ok {
		return nil
	}
	return reflect.ValueOf(ent).FieldByIndex(s.fields[i].Index).Interface()
}

// StringOf returns the field's string representation as used by the search
// filter: scalars formatted with fmt, zero values as the empty string.
func (s *Schema[T]) StringOf(ent T, name string) string {
	v := s.ValueOf(ent, name)
	return valueString(v)
}

// Recompute re-derives every computed field in place.
func (s *Schema[T]) Recompute(draft *T) {
	for _, fn := range s.computers {
		fn(draft)
	}
}

// Ok reports the schema's current verdict on the whole draft. The ErrorMap
// keys are exactly the failing field paths; list items report as sub-paths
// like "bank_info[0].email".
func (s *Schema[T]) Ok(draft T) (ErrorMap, bool) {
	errs := ErrorMap{}

	if err := Validate.Struct(draft); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			errs[s.PrimaryKey().Name] = err.Error()
			return errs, false
		}
		for _, fe := range verrs {
			errs[fieldPath(fe)] = fe.Translate(trans)
		}
	}

	for _, refine := range s.refinements {
		refine(&draft, errs)
	}

	return errs, len(errs) == 0
}

// fieldPath strips the root struct name from the validator namespace,
// leaving the draft-relative path.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func valueString(v any) string {
	if v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	case FileRef:
		return t.Name
	}
	rv := reflect.ValueOf(v)
	if rv.IsZero() {
		return ""
	}
	return fmt.Sprint(v)
}
