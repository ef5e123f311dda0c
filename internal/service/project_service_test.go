package service

import (
	"context"
	"testing"
	"time"

	"github.com/eventflow-ifc/eventflow-backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProjectService(t *testing.T) (ProjectService, *fakeProjectRepo, *fakeResourceRepo) {
	t.Helper()
	resources := newFakeResourceRepo()
	projects := newFakeProjectRepo(resources)
	return NewProjectService(projects, nil, nil), projects, resources
}

func TestCreateForcesDraftStatus(t *testing.T) {
	svc, _, _ := newProjectService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, ProjectInput{
		Title:  "Summer festival",
		Status: types.StatusInProduction, // caller-supplied status is ignored
	})
	require.NoError(t, err)

	assert.Equal(t, types.StatusDraft, created.Status)
	assert.Equal(t, types.StatusColors[types.StatusDraft], created.StatusColor)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateRejectsEmptyTitle(t *testing.T) {
	svc, repo, _ := newProjectService(t)
	ctx := context.Background()

	for _, title := range []string{"", "   "} {
		_, err := svc.Create(ctx, ProjectInput{Title: title})
		assert.ErrorIs(t, err, ErrValidation)
	}
	assert.Empty(t, repo.projects, "no row should be persisted")
}

func TestCreateRejectsNonPositiveDuration(t *testing.T) {
	svc, _, _ := newProjectService(t)

	_, err := svc.Create(context.Background(), ProjectInput{
		Title:           "Bad duration",
		DurationMinutes: intPtr(0),
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateIsFullReplace(t *testing.T) {
	svc, _, _ := newProjectService(t)
	ctx := context.Background()

	start := time.Date(2026, 9, 12, 19, 0, 0, 0, time.UTC)
	created, err := svc.Create(ctx, ProjectInput{
		Title:           "Concert",
		DescriptionFR:   strPtr("Concert de rentrée"),
		DescriptionEN:   strPtr("Opening concert"),
		StartDate:       timePtr(start),
		DurationMinutes: intPtr(90),
	})
	require.NoError(t, err)

	// Omitted fields overwrite prior values with nil
	updated, err := svc.Update(ctx, created.ID, ProjectInput{
		Title:  "Concert (reporté)",
		Status: types.StatusSubmittedForValidation,
	})
	require.NoError(t, err)

	assert.Equal(t, "Concert (reporté)", updated.Title)
	assert.Nil(t, updated.DescriptionFR)
	assert.Nil(t, updated.DescriptionEN)
	assert.Nil(t, updated.StartDate)
	assert.Nil(t, updated.DurationMinutes)
	assert.Equal(t, types.StatusSubmittedForValidation, updated.Status)
	assert.Equal(t, types.StatusColors[types.StatusSubmittedForValidation], updated.StatusColor)

	stored, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.DescriptionFR)
	assert.Equal(t, "Concert (reporté)", stored.Title)
}

func TestUpdateRoundTrip(t *testing.T) {
	svc, _, _ := newProjectService(t)
	ctx := context.Background()

	start := time.Date(2026, 10, 1, 14, 0, 0, 0, time.UTC)
	in := ProjectInput{
		Title:           "Atelier théâtre",
		DescriptionFR:   strPtr("Atelier hebdomadaire"),
		DescriptionEN:   strPtr("Weekly workshop"),
		DescriptionKM:   strPtr("សិក្ខាសាលា"),
		StartDate:       timePtr(start),
		DurationMinutes: intPtr(120),
	}

	created, err := svc.Create(ctx, in)
	require.NoError(t, err)

	in.Status = created.Status
	_, err = svc.Update(ctx, created.ID, in)
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, in.Title, got.Title)
	assert.Equal(t, in.DescriptionFR, got.DescriptionFR)
	assert.Equal(t, in.DescriptionEN, got.DescriptionEN)
	assert.Equal(t, in.DescriptionKM, got.DescriptionKM)
	assert.True(t, got.StartDate.Equal(start))
	assert.Equal(t, 120, *got.DurationMinutes)
	assert.Equal(t, types.StatusDraft, got.Status)
}

func TestUpdateValidation(t *testing.T) {
	svc, _, _ := newProjectService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, ProjectInput{Title: "Projection"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, ProjectInput{Title: ""})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Update(ctx, created.ID, ProjectInput{Title: "Projection", Status: "archived"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Update(ctx, "missing-id", ProjectInput{Title: "Projection"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCascadesToResources(t *testing.T) {
	svc, projects, resources := newProjectService(t)
	resourceSvc := NewResourceService(resources, projects, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, ProjectInput{Title: "Festival"})
	require.NoError(t, err)

	_, err = resourceSvc.Create(ctx, created.ID, "Technicien lumière", time.Now(), 240)
	require.NoError(t, err)
	_, err = resourceSvc.Create(ctx, created.ID, "Accueil", time.Now(), 120)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	left, err := resourceSvc.ListByProject(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, left)

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMissingProject(t *testing.T) {
	svc, _, _ := newProjectService(t)
	assert.ErrorIs(t, svc.Delete(context.Background(), "missing-id"), ErrNotFound)
}

func TestDuplicateIsShallowDraftCopy(t *testing.T) {
	svc, projects, resources := newProjectService(t)
	resourceSvc := NewResourceService(resources, projects, nil)
	ctx := context.Background()

	start := time.Date(2026, 11, 20, 18, 30, 0, 0, time.UTC)
	source, err := svc.Create(ctx, ProjectInput{
		Title:           "Spectacle de danse",
		DescriptionFR:   strPtr("Spectacle annuel"),
		DescriptionEN:   strPtr("Annual show"),
		DescriptionKM:   strPtr("ការសម្តែងរបាំ"),
		StartDate:       timePtr(start),
		DurationMinutes: intPtr(150),
	})
	require.NoError(t, err)

	// Push the source into production with an image before copying
	_, err = svc.Update(ctx, source.ID, ProjectInput{
		Title:           source.Title,
		DescriptionFR:   source.DescriptionFR,
		DescriptionEN:   source.DescriptionEN,
		DescriptionKM:   source.DescriptionKM,
		StartDate:       source.StartDate,
		DurationMinutes: source.DurationMinutes,
		Status:          types.StatusInProduction,
	})
	require.NoError(t, err)
	_, err = svc.AttachImage(ctx, source.ID, "https://example.com/poster.jpg")
	require.NoError(t, err)

	_, err = resourceSvc.Create(ctx, source.ID, "Danseur", start, 150)
	require.NoError(t, err)

	dup, err := svc.Duplicate(ctx, source.ID)
	require.NoError(t, err)

	assert.Equal(t, "Copy of - Spectacle de danse", dup.Title)
	assert.Equal(t, types.StatusDraft, dup.Status)
	assert.Equal(t, "Spectacle annuel", *dup.DescriptionFR)
	assert.Equal(t, "Annual show", *dup.DescriptionEN)
	assert.Equal(t, "ការសម្តែងរបាំ", *dup.DescriptionKM)
	assert.True(t, dup.StartDate.Equal(start))
	assert.Equal(t, 150, *dup.DurationMinutes)
	assert.NotEqual(t, source.ID, dup.ID)
	assert.Nil(t, dup.ImageURL)

	copied, err := resourceSvc.ListByProject(ctx, dup.ID)
	require.NoError(t, err)
	assert.Empty(t, copied, "resource requirements must not follow the copy")
}

func TestDuplicateMissingSource(t *testing.T) {
	svc, _, _ := newProjectService(t)
	_, err := svc.Duplicate(context.Background(), "missing-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListOrdering(t *testing.T) {
	svc, _, _ := newProjectService(t)
	ctx := context.Background()

	day := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	first, err := svc.Create(ctx, ProjectInput{Title: "A", StartDate: timePtr(day)})
	require.NoError(t, err)
	second, err := svc.Create(ctx, ProjectInput{Title: "B", StartDate: timePtr(day)})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Same start date: the later creation sorts first
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}
