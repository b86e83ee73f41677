package crud

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/RobinJosephDev/AdminUILinux/pkg/serrors"
)

type mockService struct {
	mu      sync.Mutex
	rows    []testEntity
	nextID  int
	listErr error
	failIDs map[int]bool

	listEntered chan struct{}
	listGate    chan struct{}

	deletes []int
}

func newMockService(rows ...testEntity) *mockService {
	return &mockService{rows: rows, nextID: 100, failIDs: map[int]bool{}}
}

func (m *mockService) List(ctx context.Context) ([]testEntity, error) {
	if m.listEntered != nil {
		m.listEntered <- struct{}{}
	}
	if m.listGate != nil {
		<-m.listGate
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]testEntity, len(m.rows))
	copy(out, m.rows)
	return out, nil
}

func (m *mockService) Create(ctx context.Context, ent testEntity) (testEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ent.ID = m.nextID
	m.nextID++
	m.rows = append(m.rows, ent)
	return ent, nil
}

func (m *mockService) Update(ctx context.Context, id int, ent testEntity) (testEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, row := range m.rows {
		if row.ID == id {
			ent.ID = id
			m.rows[i] = ent
			return ent, nil
		}
	}
	return testEntity{}, errors.Errorf("mock: no row %d", id)
}

func (m *mockService) Delete(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failIDs[id] {
		return errors.Errorf("mock: delete %d refused", id)
	}
	m.deletes = append(m.deletes, id)
	return nil
}

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	warnings  []string
	errs      []string
}

func (n *recordingNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *recordingNotifier) Warn(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.warnings = append(n.warnings, msg)
}

func (n *recordingNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errs = append(n.errs, msg)
}

func seedEntities(n int) []testEntity {
	out := make([]testEntity, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, testEntity{ID: i, Name: fmt.Sprintf("Widget %02d", i), Age: i})
	}
	return out
}

func newTestController(t *testing.T, svc Service[testEntity], opts ...ListOption[testEntity]) *ListController[testEntity] {
	t.Helper()
	opts = append([]ListOption[testEntity]{WithDefaultSort[testEntity]("name", false)}, opts...)
	return NewListController(testSchema(t), svc, opts...)
}

func mustLoad(t *testing.T, c *ListController[testEntity]) {
	t.Helper()
	require.NoError(t, c.Load(context.Background()))
}

func TestListController_SortToggleRoundTrip(t *testing.T) {
	svc := newMockService(
		testEntity{ID: 1, Name: "cherry"},
		testEntity{ID: 2, Name: "apple"},
		testEntity{ID: 3, Name: "banana"},
	)
	c := newTestController(t, svc)
	mustLoad(t, c)

	names := func() []string {
		rows := c.FilteredSorted()
		out := make([]string, len(rows))
		for i, r := range rows {
			out[i] = r.Name
		}
		return out
	}

	require.Equal(t, []string{"apple", "banana", "cherry"}, names())

	c.SortBy("name")
	require.Equal(t, []string{"cherry", "banana", "apple"}, names())

	c.SortBy("name")
	require.Equal(t, []string{"apple", "banana", "cherry"}, names())
}

func TestListController_SortMixedValuesTotalOrder(t *testing.T) {
	svc := newMockService(
		testEntity{ID: 1, Name: "a", Age: 10},
		testEntity{ID: 2, Name: "b", Age: 0},
		testEntity{ID: 3, Name: "c", Age: 2},
	)
	c := newTestController(t, svc, WithDefaultSort[testEntity]("age", false))
	mustLoad(t, c)

	rows := c.FilteredSorted()
	require.Equal(t, []int{2, 3, 1}, []int{rows[0].ID, rows[1].ID, rows[2].ID})
}

func TestListController_FilterIsCaseInsensitiveSubstring(t *testing.T) {
	svc := newMockService(
		testEntity{ID: 1, Name: "Acme Logistics"},
		testEntity{ID: 2, Name: "Beta Freight"},
		testEntity{ID: 3, Name: "acme north"},
	)
	c := newTestController(t, svc)
	mustLoad(t, c)

	c.SetSearchQuery("ACME")
	rows := c.FilteredSorted()
	require.Len(t, rows, 2)

	// Narrowing the query can only shrink the result set.
	c.SetSearchQuery("acme l")
	require.Len(t, c.FilteredSorted(), 1)

	c.SetSearchQuery("")
	require.Len(t, c.FilteredSorted(), 3)
}

func TestListController_FilterSkipsHiddenFields(t *testing.T) {
	svc := newMockService(
		testEntity{ID: 1, Name: "visible", Secret: "tucked-away"},
	)
	c := newTestController(t, svc)
	mustLoad(t, c)

	c.SetSearchQuery("tucked")
	require.Empty(t, c.FilteredSorted())
}

func TestListController_PaginationCoversEveryRowOnce(t *testing.T) {
	svc := newMockService(seedEntities(23)...)
	c := newTestController(t, svc, WithRowsPerPage[testEntity](10))
	mustLoad(t, c)

	require.Equal(t, 3, c.TotalPages())

	seen := map[int]int{}
	for page := 1; page <= c.TotalPages(); page++ {
		c.SetPage(page)
		for _, row := range c.VisibleRows() {
			seen[row.ID]++
		}
	}
	require.Len(t, seen, 23)
	for id, n := range seen {
		require.Equalf(t, 1, n, "row %d appeared %d times", id, n)
	}
}

func TestListController_SetPageClamps(t *testing.T) {
	svc := newMockService(seedEntities(5)...)
	c := newTestController(t, svc, WithRowsPerPage[testEntity](2))
	mustLoad(t, c)

	c.SetPage(99)
	require.Equal(t, 3, c.Page())

	c.SetPage(-4)
	require.Equal(t, 1, c.Page())
}

func TestListController_EmptyFilteredSetStillHasOnePage(t *testing.T) {
	svc := newMockService(seedEntities(5)...)
	c := newTestController(t, svc)
	mustLoad(t, c)

	c.SetSearchQuery("no such widget")
	require.Equal(t, 1, c.TotalPages())
	require.Empty(t, c.VisibleRows())
}

func TestListController_VisibleRowsClampWhenFilterShrinksPages(t *testing.T) {
	svc := newMockService(seedEntities(23)...)
	c := newTestController(t, svc, WithRowsPerPage[testEntity](10))
	mustLoad(t, c)

	c.SetPage(3)
	c.SetSearchQuery("Widget 0") // nine rows, one page
	require.NotEmpty(t, c.VisibleRows())
}

func TestListController_SelectionSurvivesFiltering(t *testing.T) {
	svc := newMockService(seedEntities(5)...)
	c := newTestController(t, svc)
	mustLoad(t, c)

	c.ToggleSelect(2)
	c.ToggleSelect(4)

	c.SetSearchQuery("Widget 01")
	require.Len(t, c.FilteredSorted(), 1)
	require.Equal(t, []int{2, 4}, c.Selected())

	c.SetSearchQuery("")
	require.True(t, c.IsSelected(2))

	c.ToggleSelect(2)
	require.False(t, c.IsSelected(2))
}

func TestListController_ToggleSelectAllIsPageScoped(t *testing.T) {
	svc := newMockService(seedEntities(25)...)
	c := newTestController(t, svc, WithRowsPerPage[testEntity](10))
	mustLoad(t, c)

	// Off-page selection on page 2 must stay untouched throughout.
	c.ToggleSelect(11)

	c.SetPage(1)
	c.ToggleSelectAll()
	require.Len(t, c.Selected(), 11)

	// Every visible row selected, so the next toggle deselects the page only.
	c.ToggleSelectAll()
	require.Equal(t, []int{11}, c.Selected())

	// One row pre-selected is not "all": toggling selects the full page.
	c.ToggleSelect(1)
	c.ToggleSelectAll()
	require.Len(t, c.Selected(), 11)
}

func TestListController_LoadFailureKeepsLastKnownRows(t *testing.T) {
	svc := newMockService(seedEntities(3)...)
	notify := &recordingNotifier{}
	c := newTestController(t, svc, WithNotifier[testEntity](notify))
	mustLoad(t, c)

	svc.mu.Lock()
	svc.listErr = errors.New("backend down")
	svc.mu.Unlock()

	require.Error(t, c.Load(context.Background()))
	require.Len(t, c.Rows(), 3)
	require.NotEmpty(t, notify.errs)
}

func TestListController_LoadAuthFailureNotice(t *testing.T) {
	svc := newMockService()
	svc.listErr = &serrors.AuthError{Reason: "no token in storage"}
	notify := &recordingNotifier{}
	c := newTestController(t, svc, WithNotifier[testEntity](notify))

	require.Error(t, c.Load(context.Background()))
	require.Len(t, notify.errs, 1)
	require.Contains(t, notify.errs[0], "Unauthorized")
}

func TestListController_StaleLoadIsDiscarded(t *testing.T) {
	first := newMockService(seedEntities(2)...)
	first.listEntered = make(chan struct{}, 1)
	first.listGate = make(chan struct{})

	second := newMockService(seedEntities(7)...)

	// Both services feed the same controller; swapping mid-flight stands in
	// for two responses racing each other.
	sw := &switchService{current: first}
	c := newTestController(t, sw)

	firstDone := make(chan error, 1)
	go func() { firstDone <- c.Load(context.Background()) }()
	<-first.listEntered

	// Second load starts after the first, finishes first.
	sw.set(second)
	mustLoad(t, c)
	require.Len(t, c.Rows(), 7)

	close(first.listGate)
	require.ErrorIs(t, <-firstDone, serrors.ErrStaleLoad)
	require.Len(t, c.Rows(), 7)
}

type switchService struct {
	mu      sync.Mutex
	current Service[testEntity]
}

func (s *switchService) set(svc Service[testEntity]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = svc
}

func (s *switchService) get() Service[testEntity] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *switchService) List(ctx context.Context) ([]testEntity, error) {
	return s.get().List(ctx)
}

func (s *switchService) Create(ctx context.Context, ent testEntity) (testEntity, error) {
	return s.get().Create(ctx, ent)
}

func (s *switchService) Update(ctx context.Context, id int, ent testEntity) (testEntity, error) {
	return s.get().Update(ctx, id, ent)
}

func (s *switchService) Delete(ctx context.Context, id int) error {
	return s.get().Delete(ctx, id)
}

func TestListController_CreateAssignsServerID(t *testing.T) {
	svc := newMockService()
	notify := &recordingNotifier{}
	c := newTestController(t, svc, WithNotifier[testEntity](notify))
	mustLoad(t, c)
	c.OpenAdd()

	require.NoError(t, c.CreateOrUpdate(context.Background(), testEntity{Name: "fresh"}))

	rows := c.Rows()
	require.Len(t, rows, 1)
	require.Equal(t, 100, rows[0].ID)
	require.Equal(t, ModeNone, c.Mode())
	require.NotEmpty(t, notify.successes)
}

func TestListController_UpdateReplacesInPlace(t *testing.T) {
	svc := newMockService(seedEntities(3)...)
	c := newTestController(t, svc)
	mustLoad(t, c)
	c.OpenEdit(svc.rows[1])

	edited := testEntity{ID: 2, Name: "Widget 02 renamed"}
	require.NoError(t, c.CreateOrUpdate(context.Background(), edited))

	rows := c.Rows()
	require.Len(t, rows, 3)
	require.Equal(t, "Widget 02 renamed", rows[1].Name)
	require.Equal(t, ModeNone, c.Mode())
}

func TestListController_SaveFailureKeepsModalOpen(t *testing.T) {
	svc := newMockService()
	notify := &recordingNotifier{}
	c := newTestController(t, svc, WithNotifier[testEntity](notify))
	mustLoad(t, c)
	c.OpenEdit(testEntity{ID: 9, Name: "ghost"})

	// Updating an id the backend does not have fails.
	require.Error(t, c.CreateOrUpdate(context.Background(), testEntity{ID: 9, Name: "ghost"}))
	require.Equal(t, ModeEdit, c.Mode())
	cur, ok := c.Current()
	require.True(t, ok)
	require.Equal(t, 9, cur.ID)
	require.NotEmpty(t, notify.errs)
}

func TestListController_DoubleSubmitRejected(t *testing.T) {
	svc := newMockService()
	blocked := make(chan struct{})
	release := make(chan struct{})
	slow := &gatedCreateService{Service: svc, entered: blocked, release: release}
	c := newTestController(t, slow)

	firstDone := make(chan error, 1)
	go func() { firstDone <- c.CreateOrUpdate(context.Background(), testEntity{Name: "one"}) }()
	<-blocked

	require.ErrorIs(t, c.CreateOrUpdate(context.Background(), testEntity{Name: "two"}), serrors.ErrSaveInFlight)

	close(release)
	require.NoError(t, <-firstDone)
	require.False(t, c.Saving())
}

type gatedCreateService struct {
	Service[testEntity]
	entered chan struct{}
	release chan struct{}
}

func (s *gatedCreateService) Create(ctx context.Context, ent testEntity) (testEntity, error) {
	s.entered <- struct{}{}
	<-s.release
	return s.Service.Create(ctx, ent)
}

func TestListController_DeleteSelectedRequiresSelection(t *testing.T) {
	svc := newMockService(seedEntities(2)...)
	notify := &recordingNotifier{}
	c := newTestController(t, svc, WithNotifier[testEntity](notify))
	mustLoad(t, c)

	require.ErrorIs(t, c.DeleteSelected(context.Background()), serrors.ErrNoSelection)
	require.NotEmpty(t, notify.warnings)
}

func TestListController_DeleteSelectedHonorsConfirm(t *testing.T) {
	svc := newMockService(seedEntities(2)...)
	c := newTestController(t, svc, WithConfirm[testEntity](func(string) bool { return false }))
	mustLoad(t, c)
	c.ToggleSelect(1)

	require.ErrorIs(t, c.DeleteSelected(context.Background()), serrors.ErrNotConfirmed)
	require.Len(t, c.Rows(), 2)
	require.True(t, c.IsSelected(1))
}

func TestListController_DeleteSelectedSuccess(t *testing.T) {
	svc := newMockService(seedEntities(4)...)
	notify := &recordingNotifier{}
	c := newTestController(t, svc, WithNotifier[testEntity](notify))
	mustLoad(t, c)
	c.ToggleSelect(2)
	c.ToggleSelect(4)

	require.NoError(t, c.DeleteSelected(context.Background()))
	rows := c.Rows()
	require.Len(t, rows, 2)
	require.Empty(t, c.Selected())
	require.NotEmpty(t, notify.successes)
}

func TestListController_DeleteSelectedPartialFailure(t *testing.T) {
	svc := newMockService(seedEntities(4)...)
	svc.failIDs[3] = true
	notify := &recordingNotifier{}
	c := newTestController(t, svc, WithNotifier[testEntity](notify))
	mustLoad(t, c)
	c.ToggleSelect(1)
	c.ToggleSelect(3)

	err := c.DeleteSelected(context.Background())
	require.Error(t, err)

	var perr *serrors.PartialBatchError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, 2, perr.Total)
	require.Equal(t, []int{3}, perr.FailedIDs)

	// The failed row stays in the list and stays selected.
	ids := make([]int, 0, 3)
	for _, row := range c.Rows() {
		ids = append(ids, row.ID)
	}
	require.Equal(t, []int{2, 3, 4}, ids)
	require.Equal(t, []int{3}, c.Selected())
	require.NotEmpty(t, notify.errs)
}

func TestListController_ModalLifecycle(t *testing.T) {
	svc := newMockService(seedEntities(1)...)
	c := newTestController(t, svc)
	mustLoad(t, c)

	require.Equal(t, ModeNone, c.Mode())

	c.OpenAdd()
	require.Equal(t, ModeAdd, c.Mode())
	_, ok := c.Current()
	require.False(t, ok)

	c.OpenView(svc.rows[0])
	require.Equal(t, ModeView, c.Mode())
	cur, ok := c.Current()
	require.True(t, ok)
	require.Equal(t, 1, cur.ID)

	c.CloseModal()
	require.Equal(t, ModeNone, c.Mode())
}

func TestListController_SuggestRanksByLabel(t *testing.T) {
	svc := newMockService(
		testEntity{ID: 1, Name: "Maple Transport"},
		testEntity{ID: 2, Name: "Pine Logistics"},
		testEntity{ID: 3, Name: "Maplewood Freight"},
	)
	c := newTestController(t, svc)
	mustLoad(t, c)

	got := c.Suggest("maple", 2)
	require.Len(t, got, 2)
	require.Equal(t, "Maple Transport", got[0].Name)
}
