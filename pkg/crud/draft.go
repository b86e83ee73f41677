package crud

import (
	"context"
	"io"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/RobinJosephDev/AdminUILinux/pkg/serrors"
)

// Uploader pushes file contents to the external storage endpoint and
// returns the persisted reference.
type Uploader interface {
	Upload(ctx context.Context, field, fileName string, r io.Reader) (FileRef, error)
}

// FormBinder owns one entity draft. Every change sanitizes the incoming
// value, stores it as typed, and recomputes the whole ErrorMap so that
// cross-field refinements stay current. The committed collection is never
// touched; the caller submits the draft through the list controller.
type FormBinder[T any] struct {
	schema   *Schema[T]
	uploader Uploader
	log      *logrus.Logger

	mu      sync.Mutex
	draft   T
	errs    ErrorMap
	pending map[string]bool
}

type BinderOption[T any] func(*FormBinder[T])

func WithUploader[T any](u Uploader) BinderOption[T] {
	return func(b *FormBinder[T]) { b.uploader = u }
}

func WithBinderLogger[T any](log *logrus.Logger) BinderOption[T] {
	return func(b *FormBinder[T]) { b.log = log }
}

// NewFormBinder seeds a binder with a draft copy of seed. Pass the zero
// value for an add form; computed fields are derived immediately.
func NewFormBinder[T any](schema *Schema[T], seed T, opts ...BinderOption[T]) *FormBinder[T] {
	b := &FormBinder[T]{
		schema:  schema,
		draft:   seed,
		pending: map[string]bool{},
	}
	for _, opt := range opts {
		opt(b)
	}
	b.schema.Recompute(&b.draft)
	b.errs, _ = b.schema.Ok(b.draft)
	return b
}

func (b *FormBinder[T]) Draft() T {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.draft
}

// Errors returns a copy of the current ErrorMap.
func (b *FormBinder[T]) Errors() ErrorMap {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(ErrorMap, len(b.errs))
	for k, v := range b.errs {
		out[k] = v
	}
	return out
}

func (b *FormBinder[T]) FieldError(name string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errs[name]
}

// Validate gates the final submit independent of ErrorMap staleness.
func (b *FormBinder[T]) Validate() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.schema.Ok(b.draft)
	return ok
}

// SetField sanitizes raw and stores it on the draft. Values that fail their
// field rules are still stored as typed; the schema message reports them.
// Readonly, computed and key fields reject edits.
func (b *FormBinder[T]) SetField(name string, raw any) error {
	f, err := b.schema.Field(name)
	if err != nil {
		return err
	}
	if f.Readonly || f.Computed || f.Key {
		return errors.Wrapf(serrors.ErrReadonlyField, "%q", name)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	target := reflect.ValueOf(&b.draft).Elem().FieldByIndex(f.Index)
	if err := setFieldValue(f, target, raw); err != nil {
		return err
	}
	b.refresh()
	return nil
}

// AddItem appends a blank templated item to a nested list field.
func (b *FormBinder[T]) AddItem(name string) error {
	return b.transformList(name, func(list reflect.Value) (reflect.Value, error) {
		blank := reflect.Zero(list.Type().Elem())
		return reflect.Append(list, blank), nil
	})
}

// UpdateItem replaces the list element at index with item.
func (b *FormBinder[T]) UpdateItem(name string, index int, item any) error {
	return b.transformList(name, func(list reflect.Value) (reflect.Value, error) {
		if index < 0 || index >= list.Len() {
			return list, errors.Errorf("crud: index %d out of range for %q", index, name)
		}
		iv := reflect.ValueOf(item)
		if !iv.Type().AssignableTo(list.Type().Elem()) {
			return list, errors.Errorf("crud: %T is not an item of %q", item, name)
		}
		next := copySlice(list)
		next.Index(index).Set(iv)
		return next, nil
	})
}

// RemoveItem removes the list element at index.
func (b *FormBinder[T]) RemoveItem(name string, index int) error {
	return b.transformList(name, func(list reflect.Value) (reflect.Value, error) {
		if index < 0 || index >= list.Len() {
			return list, errors.Errorf("crud: index %d out of range for %q", index, name)
		}
		next := reflect.MakeSlice(list.Type(), 0, list.Len()-1)
		for i := 0; i < list.Len(); i++ {
			if i == index {
				continue
			}
			next = reflect.Append(next, list.Index(i))
		}
		return next, nil
	})
}

// Items returns the current length of a nested list field.
func (b *FormBinder[T]) Items(name string) int {
	f, err := b.schema.Field(name)
	if err != nil || f.Kind != KindList {
		return 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return reflect.ValueOf(b.draft).FieldByIndex(f.Index).Len()
}

// Pending reports whether a file upload is in flight for the field.
func (b *FormBinder[T]) Pending(name string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pending[name]
}

// UploadFile sends the file through the upload side channel and, on
// success, stores the returned reference on the field. On failure the
// field keeps its prior value. The upload never blocks other field edits;
// the binder lock is only held around state changes.
func (b *FormBinder[T]) UploadFile(ctx context.Context, name, fileName string, r io.Reader) error {
	f, err := b.schema.Field(name)
	if err != nil {
		return err
	}
	if f.Kind != KindFile {
		return errors.Errorf("crud: %q is not a file field", name)
	}
	if b.uploader == nil {
		return errors.Errorf("crud: no uploader configured for %q", b.schema.Name())
	}

	b.mu.Lock()
	b.pending[name] = true
	b.mu.Unlock()

	ref, uploadErr := b.uploader.Upload(ctx, name, fileName, r)

	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.pending, name)
	if uploadErr != nil {
		if b.log != nil {
			b.log.WithError(uploadErr).Warnf("upload failed for %q", name)
		}
		return &serrors.UploadError{Field: name, Err: uploadErr}
	}
	reflect.ValueOf(&b.draft).Elem().FieldByIndex(f.Index).Set(reflect.ValueOf(ref))
	return nil
}

// UploadFileAsync runs UploadFile in the background and reports the outcome
// through done, which may be nil.
func (b *FormBinder[T]) UploadFileAsync(ctx context.Context, name, fileName string, r io.Reader, done func(error)) {
	go func() {
		err := b.UploadFile(ctx, name, fileName, r)
		if done != nil {
			done(err)
		}
	}()
}

func (b *FormBinder[T]) transformList(name string, fn func(reflect.Value) (reflect.Value, error)) error {
	f, err := b.schema.Field(name)
	if err != nil {
		return err
	}
	if f.Kind != KindList {
		return errors.Errorf("crud: %q is not a list field", name)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	target := reflect.ValueOf(&b.draft).Elem().FieldByIndex(f.Index)
	next, err := fn(target)
	if err != nil {
		return err
	}
	target.Set(next)
	b.refresh()
	return nil
}

// refresh recomputes derived fields and the whole ErrorMap. Caller holds
// the lock.
func (b *FormBinder[T]) refresh() {
	b.schema.Recompute(&b.draft)
	b.errs, _ = b.schema.Ok(b.draft)
}

func copySlice(list reflect.Value) reflect.Value {
	next := reflect.MakeSlice(list.Type(), list.Len(), list.Len())
	reflect.Copy(next, list)
	return next
}

func setFieldValue(f Field, target reflect.Value, raw any) error {
	if s, ok := raw.(string); ok {
		s = Sanitize(s)
		if f.Kind == KindNumber || f.Kind == KindDate {
			s = strings.TrimSpace(s)
		}
		return setFromString(f, target, s)
	}

	rv := reflect.ValueOf(raw)
	if raw == nil || !rv.Type().AssignableTo(target.Type()) {
		return errors.Errorf("crud: cannot assign %T to field %q", raw, f.Name)
	}
	target.Set(rv)
	return nil
}

func setFromString(f Field, target reflect.Value, s string) error {
	switch target.Kind() {
	case reflect.String:
		target.SetString(s)
	case reflect.Bool:
		target.SetBool(s == "on" || s == "true" || s == "1")
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if s == "" {
			target.SetInt(0)
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return errors.Errorf("crud: invalid integer value for field %q: %v", f.Name, err)
		}
		target.SetInt(n)
	case reflect.Float32, reflect.Float64:
		if s == "" {
			target.SetFloat(0)
			return nil
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errors.Errorf("crud: invalid float value for field %q: %v", f.Name, err)
		}
		target.SetFloat(n)
	default:
		return errors.Errorf("crud: field %q does not accept string input", f.Name)
	}
	return nil
}
