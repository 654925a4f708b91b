package routes

import (
	"context"
	"sort"
	"sync"
	"time"

	"oilwell-reports/internal/adapters/persistence/models"
	"oilwell-reports/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// memStore is an in-memory stand-in for the three tables
type memStore struct {
	mu      sync.Mutex
	nextID  uint
	users   []*models.User
	wells   map[uint]*models.Well
	reports map[uint]*models.Report
}

func newMemStore() *memStore {
	return &memStore{
		wells:   map[uint]*models.Well{},
		reports: map[uint]*models.Report{},
	}
}

func (s *memStore) repositories() Repositories {
	return Repositories{
		Users:   memUsers{s},
		Wells:   memWells{s},
		Reports: memReports{s},
	}
}

func (s *memStore) id() uint {
	s.nextID++
	return s.nextID
}

func (s *memStore) user(id uint) *models.User {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

type memUsers struct{ s *memStore }

func (r memUsers) Create(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user.ID = r.s.id()
	user.CreatedAt = time.Now()
	r.s.users = append(r.s.users, user)
	return nil
}

func (r memUsers) GetByID(_ context.Context, id uint) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u := r.s.user(id); u != nil {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r memUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type memWells struct{ s *memStore }

func (r memWells) Create(_ context.Context, well *models.Well) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	well.ID = r.s.id()
	well.CreatedAt = time.Now()
	r.s.wells[well.ID] = well
	return nil
}

func (r memWells) List(_ context.Context) ([]*models.Well, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*models.Well, 0, len(r.s.wells))
	for _, w := range r.s.wells {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memWells) Delete(_ context.Context, id uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.wells[id]; !ok {
		return false, nil
	}
	delete(r.s.wells, id)
	return true, nil
}

type memReports struct{ s *memStore }

func (r memReports) Create(_ context.Context, report *models.Report) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	report.ID = r.s.id()
	report.CreatedAt = time.Now()
	r.s.reports[report.ID] = report
	return nil
}

func (r memReports) List(_ context.Context, offset, limit int) ([]*models.Report, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	all := make([]*models.Report, 0, len(r.s.reports))
	for _, rep := range r.s.reports {
		all = append(all, rep)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := int64(len(all))
	if offset >= len(all) {
		return []*models.Report{}, total, nil
	}
	end := len(all)
	if limit < end-offset {
		end = offset + limit
	}

	page := make([]*models.Report, 0, end-offset)
	for _, rep := range all[offset:end] {
		loaded := *rep
		loaded.Creator = r.s.user(rep.CreatedByID)
		loaded.Well = r.s.wells[rep.WellID]
		page = append(page, &loaded)
	}
	return page, total, nil
}

func (r memReports) Delete(_ context.Context, id uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.reports[id]; !ok {
		return false, nil
	}
	delete(r.s.reports, id)
	return true, nil
}

func (r memReports) CountByWellSince(_ context.Context, since time.Time) ([]*repositories.WellReportCount, error) {
	return nil, nil
}
