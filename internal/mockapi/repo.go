package mockapi

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	errs "github.com/gpiedrahita-hub/infinite-herbs-admin/internal/errors"
	"github.com/gpiedrahita-hub/infinite-herbs-admin/users"
)

// storedUser pairs the public profile with the password hash, which must
// never leave this package.
type storedUser struct {
	users.User
	passwordHash string
}

// userRepo is the in-memory user store backing the mock backend
type userRepo struct {
	byID map[string]*storedUser
	lock sync.RWMutex
}

func newUserRepo() *userRepo {
	return &userRepo{byID: make(map[string]*storedUser)}
}

func (ur *userRepo) Insert(user users.User, passwordHash string) *storedUser {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = NowTimeFunc().UTC()
	}
	stored := &storedUser{User: user, passwordHash: passwordHash}
	ur.byID[user.ID] = stored
	return stored
}

func (ur *userRepo) GetByID(id string) (*storedUser, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	stored, ok := ur.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	copied := *stored
	return &copied, nil
}

func (ur *userRepo) GetByUserName(userName string) (*storedUser, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	for _, stored := range ur.byID {
		if stored.UserName == userName {
			copied := *stored
			return &copied, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (ur *userRepo) GetByEmail(email string) (*storedUser, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	for _, stored := range ur.byID {
		if stored.Email == email {
			copied := *stored
			return &copied, nil
		}
	}
	return nil, errs.ErrNotFound
}

// List returns profiles ordered by creation time, oldest first
func (ur *userRepo) List() []users.User {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	list := make([]users.User, 0, len(ur.byID))
	for _, stored := range ur.byID {
		list = append(list, stored.User)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].UserName < list[j].UserName
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list
}

// Update applies a partial update and stamps UpdatedAt
func (ur *userRepo) Update(id string, req users.UpdateUserRequest) (*storedUser, error) {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	stored, ok := ur.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	if req.Email != nil {
		stored.Email = *req.Email
	}
	if req.FirstName != nil {
		stored.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		stored.LastName = *req.LastName
	}
	if req.Role != nil {
		stored.Role = *req.Role
	}
	if req.IsActive != nil {
		stored.IsActive = *req.IsActive
	}
	now := NowTimeFunc().UTC()
	stored.UpdatedAt = &now

	copied := *stored
	return &copied, nil
}

func (ur *userRepo) Delete(id string) error {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	if _, ok := ur.byID[id]; !ok {
		return errs.ErrNotFound
	}
	delete(ur.byID, id)
	return nil
}
