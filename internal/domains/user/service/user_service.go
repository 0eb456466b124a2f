package service

import (
	"context"

	"starter-backend/internal/domains/user"
	"starter-backend/internal/store"
)

const (
	defaultLimit = 100
	recentCount  = 5
)

type userService struct {
	table *store.Table[user.User, *user.User]
}

// NewService builds the user service on top of an injected table handle.
func NewService(table *store.Table[user.User, *user.User]) user.Service {
	return &userService{table: table}
}

// List returns one window of the user table, optionally narrowed to active
// accounts. Limit 0 falls back to the default page size; a negative limit
// disables the cap entirely.
func (s *userService) List(_ context.Context, activeOnly bool, skip, limit int) ([]user.User, error) {
	if limit == 0 {
		limit = defaultLimit
	}
	if skip < 0 {
		skip = 0
	}

	filtered := s.table.Find(func(u user.User) bool {
		return !activeOnly || u.IsActive
	})

	if skip >= len(filtered) {
		return []user.User{}, nil
	}
	end := len(filtered)
	if limit > 0 {
		if e := skip + limit; e < end {
			end = e
		}
	}
	return filtered[skip:end], nil
}

func (s *userService) Get(_ context.Context, id int) (*user.User, error) {
	u, ok := s.table.FindByID(id)
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &u, nil
}

func (s *userService) GetByUsername(_ context.Context, username string) (*user.User, error) {
	matches := s.table.Find(func(u user.User) bool { return u.Username == username })
	if len(matches) == 0 {
		return nil, user.ErrUserNotFound
	}
	return &matches[0], nil
}

func (s *userService) GetByEmail(_ context.Context, email string) (*user.User, error) {
	matches := s.table.Find(func(u user.User) bool { return u.Email == email })
	if len(matches) == 0 {
		return nil, user.ErrUserNotFound
	}
	return &matches[0], nil
}

func (s *userService) Create(_ context.Context, req *user.CreateUserRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	// Uniqueness is checked here, not in the store: excludeID 0 never matches
	// a stored record, so the whole table is considered.
	if s.usernameExists(req.Username, 0) {
		return nil, user.ErrUsernameTaken
	}
	if s.emailExists(req.Email, 0) {
		return nil, user.ErrEmailTaken
	}

	created := s.table.Insert(req.ToUser())
	return &created, nil
}

func (s *userService) Update(_ context.Context, id int, req *user.UpdateUserRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, ok := s.table.FindByID(id); !ok {
		return nil, user.ErrUserNotFound
	}
	if req.Username != nil && s.usernameExists(*req.Username, id) {
		return nil, user.ErrUsernameTaken
	}
	if req.Email != nil && s.emailExists(*req.Email, id) {
		return nil, user.ErrEmailTaken
	}

	updated, ok := s.table.Update(id, func(u *user.User) {
		req.Apply(u)
	})
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &updated, nil
}

func (s *userService) Delete(_ context.Context, id int) (*user.User, error) {
	u, ok := s.table.FindByID(id)
	if !ok {
		return nil, user.ErrUserNotFound
	}
	if !s.table.Delete(id) {
		return nil, user.ErrUserNotFound
	}
	return &u, nil
}

func (s *userService) Activate(ctx context.Context, id int) (*user.User, error) {
	return s.setActive(id, true)
}

func (s *userService) Deactivate(ctx context.Context, id int) (*user.User, error) {
	return s.setActive(id, false)
}

func (s *userService) setActive(id int, active bool) (*user.User, error) {
	updated, ok := s.table.Update(id, func(u *user.User) {
		u.IsActive = active
	})
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &updated, nil
}

func (s *userService) Stats(_ context.Context) (*user.Stats, error) {
	all := s.table.All()

	stats := &user.Stats{
		TotalUsers: len(all),
		Roles:      map[string]int{},
	}
	for i := range all {
		if all[i].IsActive {
			stats.ActiveUsers++
		}
		role := all[i].Role
		if role == "" {
			role = "unknown"
		}
		stats.Roles[role]++
	}
	stats.InactiveUsers = stats.TotalUsers - stats.ActiveUsers

	start := len(all) - recentCount
	if start < 0 {
		start = 0
	}
	stats.RecentUsers = all[start:]
	return stats, nil
}

// usernameExists reports whether another record (excludeID aside) already
// holds the username.
func (s *userService) usernameExists(username string, excludeID int) bool {
	matches := s.table.Find(func(u user.User) bool {
		return u.Username == username && u.ID != excludeID
	})
	return len(matches) > 0
}

func (s *userService) emailExists(email string, excludeID int) bool {
	matches := s.table.Find(func(u user.User) bool {
		return u.Email == email && u.ID != excludeID
	})
	return len(matches) > 0
}
