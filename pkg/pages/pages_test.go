package pages_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/edusite/adminkit/pkg/forms"
	"github.com/edusite/adminkit/pkg/models"
	"github.com/edusite/adminkit/pkg/pages"
)

// fakeProjects is an in-memory stand-in for the projects service.
type fakeProjects struct {
	records  []models.Project
	allCalls int

	failUpdate bool
	failAll    bool
	nextID     int64

	// When set, Update announces itself and parks until released.
	updateStarted chan struct{}
	updateRelease chan struct{}
}

func (f *fakeProjects) All(ctx context.Context) ([]models.Project, error) {
	f.allCalls++
	if f.failAll {
		return nil, errors.New("backend down")
	}
	return append([]models.Project(nil), f.records...), nil
}

func (f *fakeProjects) Create(ctx context.Context, payload *forms.Payload) (models.Project, error) {
	f.nextID++
	title, _ := payload.Get("title")
	p := models.Project{ID: f.nextID, Title: title}
	f.records = append(f.records, p)
	return p, nil
}

func (f *fakeProjects) Update(ctx context.Context, id int64, payload *forms.Payload) (models.Project, error) {
	if f.updateStarted != nil {
		f.updateStarted <- struct{}{}
		<-f.updateRelease
	}
	if f.failUpdate {
		return models.Project{}, errors.New("update rejected")
	}
	for i := range f.records {
		if f.records[i].ID == id {
			if v, ok := payload.Get("isActive"); ok {
				f.records[i].IsActive = v == "true" || v == "1"
			}
			if v, ok := payload.Get("title"); ok {
				f.records[i].Title = v
			}
			return f.records[i], nil
		}
	}
	return models.Project{}, errors.New("not found")
}

func (f *fakeProjects) Delete(ctx context.Context, id int64) error {
	for i := range f.records {
		if f.records[i].ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func projectsDescriptor() pages.Descriptor[models.Project] {
	return pages.Descriptor[models.Project]{
		ID:         func(p models.Project) int64 { return p.ID },
		SearchText: func(p models.Project) []string { return []string{p.Title, p.Description} },
		DomainID:   func(p models.Project) int64 { return p.DomainID },
		CourseID:   func(p models.Project) int64 { return p.CourseID },
		IsActive:   func(p models.Project) bool { return p.IsActive },
		SetActive:  func(p *models.Project, v bool) { p.IsActive = v },
		BoolStyle:  forms.BoolWords,
	}
}

func newPage(svc *fakeProjects, pageSize int) *pages.Controller[models.Project] {
	return pages.NewController[models.Project](svc, projectsDescriptor(), pageSize, zerolog.Nop())
}

func seed() *fakeProjects {
	return &fakeProjects{
		nextID: 4,
		records: []models.Project{
			{ID: 1, DomainID: 1, CourseID: 10, Title: "Shop Backend", IsActive: true},
			{ID: 2, DomainID: 1, CourseID: 11, Title: "Chat App", IsActive: false},
			{ID: 3, DomainID: 2, CourseID: 10, Title: "Data Pipeline", IsActive: true},
			{ID: 4, DomainID: 2, CourseID: 12, Title: "shopping list", IsActive: true},
		},
	}
}

func TestLoadAndVisible(t *testing.T) {
	page := newPage(seed(), 10)
	require.NoError(t, page.Load(context.Background()))
	require.Len(t, page.Visible(), 4)
}

func TestSearchCaseInsensitiveSingleMatch(t *testing.T) {
	page := newPage(seed(), 10)
	require.NoError(t, page.Load(context.Background()))

	page.SetSearch("chat app")
	require.Len(t, page.Filtered(), 1)
	require.Equal(t, "Chat App", page.Filtered()[0].Title)
}

func TestSearchMatchesSubstring(t *testing.T) {
	page := newPage(seed(), 10)
	require.NoError(t, page.Load(context.Background()))

	page.SetSearch("shop")
	require.Len(t, page.Filtered(), 2, "matches Shop Backend and shopping list")
}

func TestEqualityFilters(t *testing.T) {
	page := newPage(seed(), 10)
	require.NoError(t, page.Load(context.Background()))

	domain := int64(1)
	page.SetFilters(pages.Filters{DomainID: &domain})
	require.Len(t, page.Filtered(), 2)

	course := int64(10)
	page.SetFilters(pages.Filters{CourseID: &course})
	require.Len(t, page.Filtered(), 2)

	active := true
	page.SetFilters(pages.Filters{DomainID: &domain, Active: &active})
	require.Len(t, page.Filtered(), 1)
	require.Equal(t, "Shop Backend", page.Filtered()[0].Title)
}

func TestPaginationSlicesFiltered(t *testing.T) {
	page := newPage(seed(), 3)
	require.NoError(t, page.Load(context.Background()))

	require.Equal(t, 2, page.TotalPages())
	require.Len(t, page.Visible(), 3)

	page.NextPage()
	require.Equal(t, 2, page.Page())
	require.Len(t, page.Visible(), 1)

	// Out-of-range requests clamp.
	page.SetPage(99)
	require.Equal(t, 2, page.Page())
	page.SetPage(-5)
	require.Equal(t, 1, page.Page())
}

func TestSearchResetsToPageOne(t *testing.T) {
	page := newPage(seed(), 2)
	require.NoError(t, page.Load(context.Background()))

	page.NextPage()
	require.Equal(t, 2, page.Page())

	page.SetSearch("shop")
	require.Equal(t, 1, page.Page())

	page.NextPage()
	page.SetFilters(pages.Filters{})
	require.Equal(t, 1, page.Page())
}

func TestCreateTriggersExactlyOneRefetch(t *testing.T) {
	svc := seed()
	page := newPage(svc, 10)
	require.NoError(t, page.Load(context.Background()))
	calls := svc.allCalls

	created, err := page.Create(context.Background(), forms.NewPayload().Set("title", "Portfolio"))
	require.NoError(t, err)
	require.Equal(t, "Portfolio", created.Title)
	require.Equal(t, calls+1, svc.allCalls, "one successful create, one re-fetch")

	// The new record shows up in the rendered list.
	page.SetSearch("portfolio")
	require.Len(t, page.Filtered(), 1)
}

func TestDeleteRefetches(t *testing.T) {
	svc := seed()
	page := newPage(svc, 10)
	require.NoError(t, page.Load(context.Background()))

	require.NoError(t, page.Delete(context.Background(), 2))
	require.Len(t, page.Items(), 3)
}

func TestFailedLoadKeepsStaleData(t *testing.T) {
	svc := seed()
	page := newPage(svc, 10)
	require.NoError(t, page.Load(context.Background()))
	require.Len(t, page.Items(), 4)

	svc.failAll = true
	require.Error(t, page.Load(context.Background()))
	require.Len(t, page.Items(), 4, "stale list stays visible after a failed re-fetch")
}

func TestToggleActiveOptimistic(t *testing.T) {
	svc := seed()
	page := newPage(svc, 10)
	require.NoError(t, page.Load(context.Background()))

	require.NoError(t, page.ToggleActive(context.Background(), 1))
	for _, p := range page.Items() {
		if p.ID == 1 {
			require.False(t, p.IsActive)
		}
	}
	// Server agrees.
	require.False(t, svc.records[0].IsActive)
}

func TestToggleActiveRollsBackOnFailure(t *testing.T) {
	svc := seed()
	page := newPage(svc, 10)
	require.NoError(t, page.Load(context.Background()))

	svc.failUpdate = true
	err := page.ToggleActive(context.Background(), 1)
	require.Error(t, err)

	// The optimistic flip was reverted by the rollback re-fetch.
	for _, p := range page.Items() {
		if p.ID == 1 {
			require.True(t, p.IsActive, "pre-toggle value restored")
		}
	}
}

func TestToggleUnknownIDIsNoOp(t *testing.T) {
	svc := seed()
	page := newPage(svc, 10)
	require.NoError(t, page.Load(context.Background()))

	calls := svc.allCalls
	require.NoError(t, page.ToggleActive(context.Background(), 999))
	require.Equal(t, calls, svc.allCalls)
}

func TestToggleActiveReportsMutating(t *testing.T) {
	svc := seed()
	svc.updateStarted = make(chan struct{})
	svc.updateRelease = make(chan struct{})
	page := newPage(svc, 10)
	require.NoError(t, page.Load(context.Background()))
	require.False(t, page.Mutating())

	done := make(chan error, 1)
	go func() {
		done <- page.ToggleActive(context.Background(), 1)
	}()

	<-svc.updateStarted
	require.True(t, page.Mutating(), "in-flight toggle counts as a mutation")

	close(svc.updateRelease)
	require.NoError(t, <-done)
	require.False(t, page.Mutating())
}

func TestVisibleDoesNotRewriteStoredPage(t *testing.T) {
	svc := seed()
	page := newPage(svc, 3)
	require.NoError(t, page.Load(context.Background()))

	page.SetPage(2)
	require.Equal(t, 2, page.Page())

	// The list shrinks under the pager without a SetPage call.
	svc.records = svc.records[:2]
	require.NoError(t, page.Load(context.Background()))

	got := page.Visible()
	require.Len(t, got, 2, "an out-of-range page falls back to the first slice")
	require.Equal(t, 2, page.Page(), "rendering must not move the pager")
	require.Equal(t, got, page.Visible(), "repeated reads agree")
}
