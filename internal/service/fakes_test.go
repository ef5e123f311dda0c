package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/eventflow-ifc/eventflow-backend/internal/repository"
)

// In-memory repository fakes mirroring the ordering and not-found semantics
// of the pgx implementations.

type fakeResourceRepo struct {
	resources map[string]*repository.ResourceRequirement
	nextID    int
	failWith  error
}

func newFakeResourceRepo() *fakeResourceRepo {
	return &fakeResourceRepo{resources: make(map[string]*repository.ResourceRequirement)}
}

func (f *fakeResourceRepo) Create(ctx context.Context, r *repository.ResourceRequirement) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.nextID++
	r.ID = fmt.Sprintf("res-%d", f.nextID)
	r.CreatedAt = time.Now()
	stored := *r
	f.resources[r.ID] = &stored
	return nil
}

func (f *fakeResourceRepo) FindByProjectID(ctx context.Context, projectID string) ([]*repository.ResourceRequirement, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []*repository.ResourceRequirement
	for _, r := range f.resources {
		if r.ProjectID == projectID {
			copy := *r
			out = append(out, &copy)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (f *fakeResourceRepo) Delete(ctx context.Context, id string) error {
	if f.failWith != nil {
		return f.failWith
	}
	delete(f.resources, id)
	return nil
}

func (f *fakeResourceRepo) DeleteOrphans(ctx context.Context) (int64, error) {
	return 0, nil
}

type fakeProjectRepo struct {
	projects  map[string]*repository.Project
	resources *fakeResourceRepo
	nextID    int
	failWith  error
}

func newFakeProjectRepo(res *fakeResourceRepo) *fakeProjectRepo {
	return &fakeProjectRepo{
		projects:  make(map[string]*repository.Project),
		resources: res,
	}
}

func (f *fakeProjectRepo) Create(ctx context.Context, p *repository.Project) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.nextID++
	p.ID = fmt.Sprintf("proj-%d", f.nextID)
	p.CreatedAt = time.Now().Add(time.Duration(f.nextID) * time.Second)
	stored := *p
	f.projects[p.ID] = &stored
	return nil
}

func (f *fakeProjectRepo) FindByID(ctx context.Context, id string) (*repository.Project, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	p, ok := f.projects[id]
	if !ok {
		return nil, nil
	}
	copy := *p
	return &copy, nil
}

func (f *fakeProjectRepo) FindAll(ctx context.Context) ([]*repository.Project, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []*repository.Project
	for _, p := range f.projects {
		copy := *p
		out = append(out, &copy)
	}
	// start_date DESC (nulls first, as Postgres sorts them), created_at DESC
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch {
		case a.StartDate == nil && b.StartDate != nil:
			return true
		case a.StartDate != nil && b.StartDate == nil:
			return false
		case a.StartDate != nil && b.StartDate != nil && !a.StartDate.Equal(*b.StartDate):
			return a.StartDate.After(*b.StartDate)
		default:
			return a.CreatedAt.After(b.CreatedAt)
		}
	})
	return out, nil
}

func (f *fakeProjectRepo) FindScheduled(ctx context.Context) ([]*repository.Project, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []*repository.Project
	for _, p := range f.projects {
		if p.StartDate != nil {
			copy := *p
			out = append(out, &copy)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(*out[j].StartDate) })
	return out, nil
}

func (f *fakeProjectRepo) Update(ctx context.Context, p *repository.Project) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.projects[p.ID]; ok {
		stored := *p
		f.projects[p.ID] = &stored
	}
	return nil
}

func (f *fakeProjectRepo) UpdateImageURL(ctx context.Context, id, imageURL string) error {
	if f.failWith != nil {
		return f.failWith
	}
	if p, ok := f.projects[id]; ok {
		url := imageURL
		p.ImageURL = &url
	}
	return nil
}

func (f *fakeProjectRepo) DeleteWithResources(ctx context.Context, id string) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	if _, ok := f.projects[id]; !ok {
		return false, nil
	}
	for rid, r := range f.resources.resources {
		if r.ProjectID == id {
			delete(f.resources.resources, rid)
		}
	}
	delete(f.projects, id)
	return true, nil
}

func strPtr(s string) *string        { return &s }
func intPtr(i int) *int              { return &i }
func timePtr(t time.Time) *time.Time { return &t }
