package http

import (
	"context"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/BuildForSDG/Team-083-Backend/internal/domain"
)

var errDuplicate = &pgconn.PgError{Code: "23505"}

// memStore is a shared in-memory backing store for every fake repository
// used by the route tests.
type memStore struct {
	mu           sync.Mutex
	users        map[string]*domain.User
	userProfiles map[string]*domain.UserProfile
	smeProfiles  map[string]*domain.SmeProfile
	categories   map[string]*domain.Category
	fundRequests map[string]*domain.FundRequest
}

func newMemStore() *memStore {
	return &memStore{
		users:        make(map[string]*domain.User),
		userProfiles: make(map[string]*domain.UserProfile),
		smeProfiles:  make(map[string]*domain.SmeProfile),
		categories:   make(map[string]*domain.Category),
		fundRequests: make(map[string]*domain.FundRequest),
	}
}

type memUserRepo struct{ store *memStore }

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return errDuplicate
		}
	}
	clone := *user
	r.store.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user, ok := r.store.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, user := range r.store.users {
		if strings.EqualFold(user.Email, email) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memUserRepo) GetByEmailAndStatus(_ context.Context, email string, status domain.UserStatus) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, user := range r.store.users {
		if strings.EqualFold(user.Email, email) && user.Status == status {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memUserRepo) List(_ context.Context, role *domain.Role) ([]domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var users []domain.User
	for _, user := range r.store.users {
		if role == nil || user.UserType == *role {
			users = append(users, *user)
		}
	}
	return users, nil
}

func (r *memUserRepo) UpdateName(_ context.Context, id, name string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if user, ok := r.store.users[id]; ok {
		user.Name = name
	}
	return nil
}

func (r *memUserRepo) UpdatePassword(_ context.Context, email, passwordHash string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, user := range r.store.users {
		if strings.EqualFold(user.Email, email) {
			user.PasswordHash = passwordHash
		}
	}
	return nil
}

func (r *memUserRepo) UpdateStatusExcludingEmail(_ context.Context, id string, status domain.UserStatus, excludeEmail string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user, ok := r.store.users[id]
	if !ok || strings.EqualFold(user.Email, excludeEmail) {
		return false, nil
	}
	user.Status = status
	return true, nil
}

func (r *memUserRepo) DeleteExcludingEmail(_ context.Context, id, excludeEmail string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user, ok := r.store.users[id]
	if !ok || strings.EqualFold(user.Email, excludeEmail) {
		return false, nil
	}
	delete(r.store.users, id)
	// the user_profiles foreign key cascades with the users row
	delete(r.store.userProfiles, id)
	return true, nil
}

type memUserProfileRepo struct{ store *memStore }

func (r *memUserProfileRepo) Create(_ context.Context, userID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.userProfiles[userID] = &domain.UserProfile{UserID: userID}
	return nil
}

func (r *memUserProfileRepo) GetByUserID(_ context.Context, userID string) (*domain.UserProfile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	profile, ok := r.store.userProfiles[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *profile
	return &clone, nil
}

func (r *memUserProfileRepo) UpdateDetails(_ context.Context, userID, bio, phone, address string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	profile, ok := r.store.userProfiles[userID]
	if !ok {
		return pgx.ErrNoRows
	}
	profile.Bio, profile.Phone, profile.Address = bio, phone, address
	return nil
}

func (r *memUserProfileRepo) UpdateAvatar(_ context.Context, userID, avatar string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	profile, ok := r.store.userProfiles[userID]
	if !ok {
		return pgx.ErrNoRows
	}
	profile.Avatar = avatar
	return nil
}

func (r *memUserProfileRepo) DeleteByUserID(_ context.Context, userID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.userProfiles[userID]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.store.userProfiles, userID)
	return nil
}

type memSmeProfileRepo struct{ store *memStore }

func (r *memSmeProfileRepo) Create(_ context.Context, profile *domain.SmeProfile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.smeProfiles {
		if existing.SmeID == profile.SmeID ||
			strings.EqualFold(existing.BusinessName, profile.BusinessName) ||
			existing.TinNumber == profile.TinNumber ||
			existing.CacNumber == profile.CacNumber {
			return errDuplicate
		}
	}
	profile.BusinessName = strings.ToLower(profile.BusinessName)
	clone := *profile
	r.store.smeProfiles[profile.ID] = &clone
	return nil
}

func (r *memSmeProfileRepo) GetByID(_ context.Context, id string) (*domain.SmeProfile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	profile, ok := r.store.smeProfiles[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *profile
	return &clone, nil
}

func (r *memSmeProfileRepo) GetBySmeID(_ context.Context, smeID string) (*domain.SmeProfile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, profile := range r.store.smeProfiles {
		if profile.SmeID == smeID {
			clone := *profile
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memSmeProfileRepo) List(_ context.Context) ([]domain.SmeProfile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var profiles []domain.SmeProfile
	for _, profile := range r.store.smeProfiles {
		profiles = append(profiles, *profile)
	}
	return profiles, nil
}

func (r *memSmeProfileRepo) UpdateStatus(_ context.Context, id string, status domain.SmeProfileStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	profile, ok := r.store.smeProfiles[id]
	if !ok {
		return pgx.ErrNoRows
	}
	profile.Status = status
	return nil
}

func (r *memSmeProfileRepo) DeleteBySmeID(_ context.Context, smeID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, profile := range r.store.smeProfiles {
		if profile.SmeID == smeID {
			delete(r.store.smeProfiles, id)
		}
	}
	return nil
}

type memCategoryRepo struct{ store *memStore }

func (r *memCategoryRepo) Create(_ context.Context, category *domain.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	name := strings.ToLower(category.Name)
	if _, ok := r.store.categories[name]; ok {
		return errDuplicate
	}
	category.Name = name
	clone := *category
	r.store.categories[name] = &clone
	return nil
}

func (r *memCategoryRepo) GetByName(_ context.Context, name string) (*domain.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	category, ok := r.store.categories[strings.ToLower(name)]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *category
	return &clone, nil
}

func (r *memCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var categories []domain.Category
	for _, category := range r.store.categories {
		categories = append(categories, *category)
	}
	return categories, nil
}

func (r *memCategoryRepo) UpdateDescription(_ context.Context, name, description string) (*domain.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	category, ok := r.store.categories[strings.ToLower(name)]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	category.Description = description
	clone := *category
	return &clone, nil
}

func (r *memCategoryRepo) DeleteByName(_ context.Context, name string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.categories[strings.ToLower(name)]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.store.categories, strings.ToLower(name))
	return nil
}

type memFundRequestRepo struct{ store *memStore }

func (r *memFundRequestRepo) Create(_ context.Context, request *domain.FundRequest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	clone := *request
	r.store.fundRequests[request.ID] = &clone
	return nil
}

func (r *memFundRequestRepo) GetByID(_ context.Context, id string) (*domain.FundRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	request, ok := r.store.fundRequests[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *request
	return &clone, nil
}

func (r *memFundRequestRepo) ListBySmeID(_ context.Context, smeID string) ([]domain.FundRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var requests []domain.FundRequest
	for _, request := range r.store.fundRequests {
		if request.SmeID == smeID {
			requests = append(requests, *request)
		}
	}
	return requests, nil
}

// memAssetStore satisfies the asset store without touching disk.
type memAssetStore struct {
	mu       sync.Mutex
	released []string
}

func (s *memAssetStore) DiskPath(publicPath string) string { return "testdata" + publicPath }

func (s *memAssetStore) Release(publicPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.released = append(s.released, publicPath)
	return nil
}
