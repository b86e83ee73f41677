package crud

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/RobinJosephDev/AdminUILinux/pkg/serrors"
)

// Service is the REST boundary the controller mediates against. The
// backend is external; httpapi.Resource is the production implementation.
type Service[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, ent T) (T, error)
	Update(ctx context.Context, id int, ent T) (T, error)
	Delete(ctx context.Context, id int) error
}

type Mode int

const (
	ModeNone Mode = iota
	ModeAdd
	ModeEdit
	ModeView
)

// ListController turns a fetched collection into a browsable, sortable,
// searchable, paginated, multi-selectable table and mediates
// create/update/delete against the backend. All filtering and paging is in
// memory; the API has no server-side paging.
type ListController[T any] struct {
	schema  *Schema[T]
	service Service[T]
	notify  Notifier
	confirm func(prompt string) bool
	col     *collate.Collator
	log     *logrus.Logger

	mu          sync.Mutex
	rows        []T
	loading     bool
	loadGen     uint64
	saving      bool
	query       string
	sortKey     string
	sortDesc    bool
	page        int
	rowsPerPage int
	selected    map[int]struct{}
	mode        Mode
	current     *T
}

type ListOption[T any] func(*ListController[T])

func WithRowsPerPage[T any](n int) ListOption[T] {
	return func(c *ListController[T]) {
		if n >= 1 {
			c.rowsPerPage = n
		}
	}
}

func WithNotifier[T any](n Notifier) ListOption[T] {
	return func(c *ListController[T]) { c.notify = n }
}

// WithConfirm installs the confirmation hook consulted before destructive
// bulk actions.
func WithConfirm[T any](fn func(prompt string) bool) ListOption[T] {
	return func(c *ListController[T]) { c.confirm = fn }
}

func WithLocale[T any](tag language.Tag) ListOption[T] {
	return func(c *ListController[T]) { c.col = collate.New(tag) }
}

func WithDefaultSort[T any](key string, desc bool) ListOption[T] {
	return func(c *ListController[T]) {
		c.sortKey = key
		c.sortDesc = desc
	}
}

func WithListLogger[T any](log *logrus.Logger) ListOption[T] {
	return func(c *ListController[T]) { c.log = log }
}

func NewListController[T any](schema *Schema[T], service Service[T], opts ...ListOption[T]) *ListController[T] {
	c := &ListController[T]{
		schema:      schema,
		service:     service,
		col:         collate.New(language.English),
		log:         logrus.StandardLogger(),
		page:        1,
		rowsPerPage: 10,
		sortKey:     "created_at",
		sortDesc:    true,
		selected:    map[int]struct{}{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.notify == nil {
		c.notify = &logNotifier{log: c.log}
	}
	return c
}

// Load replaces the collection wholesale. Concurrent loads are serialized
// by a generation token: a response is discarded unless its generation is
// still current, so the last-issued load deterministically wins.
func (c *ListController[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	c.loadGen++
	gen := c.loadGen
	c.loading = true
	c.mu.Unlock()

	rows, err := c.service.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.loadGen {
		return serrors.ErrStaleLoad
	}
	c.loading = false
	if err != nil {
		var authErr *serrors.AuthError
		if errors.As(err, &authErr) {
			c.notify.Error("Unauthorized: you need to log in to access this resource.")
		} else {
			c.notify.Error(fmt.Sprintf("Failed to load %s.", c.schema.Name()))
		}
		// last-known-good rows stay visible
		return errors.Wrapf(err, "load %s", c.schema.Name())
	}
	c.rows = rows
	return nil
}

func (c *ListController[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Rows returns the committed collection.
func (c *ListController[T]) Rows() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.rows))
	copy(out, c.rows)
	return out
}

func (c *ListController[T]) SetSearchQuery(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = query
}

func (c *ListController[T]) SearchQuery() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// SortBy toggles direction when key is already the sort key, otherwise
// sorts ascending by key.
func (c *ListController[T]) SortBy(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sortKey == key {
		c.sortDesc = !c.sortDesc
	} else {
		c.sortKey = key
		c.sortDesc = false
	}
}

func (c *ListController[T]) SortKey() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sortKey, c.sortDesc
}

// FilteredSorted derives the filtered, sorted view of the collection. A row
// passes the filter when any searchable field's string form contains the
// query, case-insensitively.
func (c *ListController[T]) FilteredSorted() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filteredSortedLocked()
}

func (c *ListController[T]) filteredSortedLocked() []T {
	out := make([]T, 0, len(c.rows))
	needle := strings.ToLower(c.query)
	for _, row := range c.rows {
		if needle == "" || c.matchesLocked(row, needle) {
			out = append(out, row)
		}
	}

	if c.sortKey != "" {
		key := c.sortKey
		desc := c.sortDesc
		sort.SliceStable(out, func(i, j int) bool {
			cmp := compareValues(c.col, c.schema.ValueOf(out[i], key), c.schema.ValueOf(out[j], key))
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
	}
	return out
}

func (c *ListController[T]) matchesLocked(row T, needle string) bool {
	for _, f := range c.schema.Fields() {
		if !f.Searchable {
			continue
		}
		if strings.Contains(strings.ToLower(c.schema.StringOf(row, f.Name)), needle) {
			return true
		}
	}
	return false
}

func (c *ListController[T]) RowsPerPage() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rowsPerPage
}

// TotalPages is at least 1, even for an empty filtered set.
func (c *ListController[T]) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalPagesLocked(len(c.filteredSortedLocked()))
}

func (c *ListController[T]) totalPagesLocked(total int) int {
	pages := (total + c.rowsPerPage - 1) / c.rowsPerPage
	if pages < 1 {
		pages = 1
	}
	return pages
}

// SetPage clamps page into [1, TotalPages].
func (c *ListController[T]) SetPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	pages := c.totalPagesLocked(len(c.filteredSortedLocked()))
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	c.page = page
}

func (c *ListController[T]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// VisibleRows slices the current page out of the filtered, sorted set.
func (c *ListController[T]) VisibleRows() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visibleRowsLocked()
}

func (c *ListController[T]) visibleRowsLocked() []T {
	rows := c.filteredSortedLocked()
	page := c.page
	if pages := c.totalPagesLocked(len(rows)); page > pages {
		page = pages
	}
	start := (page - 1) * c.rowsPerPage
	if start >= len(rows) {
		return nil
	}
	end := start + c.rowsPerPage
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

func (c *ListController[T]) ToggleSelect(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.selected[id]; ok {
		delete(c.selected, id)
	} else {
		c.selected[id] = struct{}{}
	}
}

func (c *ListController[T]) IsSelected(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.selected[id]
	return ok
}

// Selected returns the selected ids in ascending order. Selection survives
// filtering; ids filtered out of view stay selected.
func (c *ListController[T]) Selected() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]int, 0, len(c.selected))
	for id := range c.selected {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// ToggleSelectAll operates on the current visible page only: when every
// visible row is selected, the visible rows are deselected; otherwise all
// visible rows become selected. Off-page selections are never touched.
func (c *ListController[T]) ToggleSelectAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	visible := c.visibleRowsLocked()
	if len(visible) == 0 {
		return
	}

	all := true
	for _, row := range visible {
		if _, ok := c.selected[c.schema.ID(row)]; !ok {
			all = false
			break
		}
	}

	for _, row := range visible {
		id := c.schema.ID(row)
		if all {
			delete(c.selected, id)
		} else {
			c.selected[id] = struct{}{}
		}
	}
}

// DeleteSelected asks for confirmation, then issues one delete per selected
// id concurrently. There is no rollback: successfully deleted ids leave the
// collection, failed ids stay in the list (and stay selected) and are
// reported once in aggregate.
func (c *ListController[T]) DeleteSelected(ctx context.Context) error {
	c.mu.Lock()
	ids := make([]int, 0, len(c.selected))
	for id := range c.selected {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	c.mu.Unlock()

	if len(ids) == 0 {
		c.notify.Warn("No record selected. Please select a record to delete.")
		return serrors.ErrNoSelection
	}
	if c.confirm != nil && !c.confirm(fmt.Sprintf("Delete %d selected %s? This action cannot be undone.", len(ids), c.schema.Name())) {
		return serrors.ErrNotConfirmed
	}

	type outcome struct {
		id  int
		err error
	}
	results := make([]outcome, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i, id int) {
			defer wg.Done()
			results[i] = outcome{id: id, err: c.service.Delete(ctx, id)}
		}(i, id)
	}
	wg.Wait()

	deleted := map[int]struct{}{}
	var failedIDs []int
	var failures []error
	for _, res := range results {
		if res.err != nil {
			failedIDs = append(failedIDs, res.id)
			failures = append(failures, res.err)
			continue
		}
		deleted[res.id] = struct{}{}
	}

	c.mu.Lock()
	kept := c.rows[:0]
	for _, row := range c.rows {
		if _, ok := deleted[c.schema.ID(row)]; !ok {
			kept = append(kept, row)
		}
	}
	c.rows = kept
	for id := range deleted {
		delete(c.selected, id)
	}
	c.mu.Unlock()

	if len(failedIDs) > 0 {
		c.notify.Error(fmt.Sprintf("Failed to delete %d of %d selected %s.", len(failedIDs), len(ids), c.schema.Name()))
		return &serrors.PartialBatchError{
			Op:        "delete " + c.schema.Name(),
			Total:     len(ids),
			FailedIDs: failedIDs,
			Errs:      failures,
		}
	}
	c.notify.Success(fmt.Sprintf("The selected %s have been deleted.", c.schema.Name()))
	return nil
}

// CreateOrUpdate submits the draft: POST when the id is zero, PUT
// otherwise. On success the echoed record is merged into the collection and
// the modal closes; on failure the modal stays open so the draft survives.
// A second submit while one is in flight is rejected.
func (c *ListController[T]) CreateOrUpdate(ctx context.Context, ent T) error {
	c.mu.Lock()
	if c.saving {
		c.mu.Unlock()
		return serrors.ErrSaveInFlight
	}
	c.saving = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.saving = false
		c.mu.Unlock()
	}()

	id := c.schema.ID(ent)
	var (
		saved T
		err   error
	)
	if id == 0 {
		saved, err = c.service.Create(ctx, ent)
	} else {
		saved, err = c.service.Update(ctx, id, ent)
	}
	if err != nil {
		c.notify.Error(fmt.Sprintf("An error occurred while saving the %s.", c.schema.Name()))
		return errors.Wrapf(err, "save %s", c.schema.Name())
	}

	c.mu.Lock()
	if id == 0 {
		c.rows = append(c.rows, saved)
	} else {
		for i, row := range c.rows {
			if c.schema.ID(row) == id {
				c.rows[i] = saved
				break
			}
		}
	}
	c.mode = ModeNone
	c.current = nil
	c.mu.Unlock()

	c.notify.Success(fmt.Sprintf("%s saved successfully.", c.schema.Name()))
	return nil
}

func (c *ListController[T]) Saving() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saving
}

func (c *ListController[T]) OpenAdd() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = ModeAdd
	c.current = nil
}

func (c *ListController[T]) OpenEdit(ent T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = ModeEdit
	c.current = &ent
}

func (c *ListController[T]) OpenView(ent T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = ModeView
	c.current = &ent
}

func (c *ListController[T]) CloseModal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = ModeNone
	c.current = nil
}

func (c *ListController[T]) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Current returns the edit/view target, if any.
func (c *ListController[T]) Current() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		var zero T
		return zero, false
	}
	return *c.current, true
}

// Suggest ranks rows against query by fuzzy match on their labels, best
// first. It complements the contains filter; it does not replace it.
func (c *ListController[T]) Suggest(query string, limit int) []T {
	c.mu.Lock()
	rows := make([]T, len(c.rows))
	copy(rows, c.rows)
	c.mu.Unlock()

	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = c.schema.Label(row)
	}
	ranks := fuzzy.RankFindNormalizedFold(query, labels)
	sort.Sort(ranks)

	out := make([]T, 0, len(ranks))
	for _, rank := range ranks {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, rows[rank.OriginalIndex])
	}
	return out
}
