package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/BuildForSDG/Team-083-Backend/internal/domain"
)

func uniqueViolationErr() error {
	return &pgconn.PgError{Code: "23505"}
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return uniqueViolationErr()
		}
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByEmailAndStatus(_ context.Context, email string, status domain.UserStatus) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) && user.Status == status {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) List(_ context.Context, role *domain.Role) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var users []domain.User
	for _, user := range r.users {
		if role == nil || user.UserType == *role {
			users = append(users, *user)
		}
	}
	return users, nil
}

func (r *fakeUserRepo) UpdateName(_ context.Context, id, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		user.Name = name
	}
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, email, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			user.PasswordHash = passwordHash
		}
	}
	return nil
}

func (r *fakeUserRepo) UpdateStatusExcludingEmail(_ context.Context, id string, status domain.UserStatus, excludeEmail string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok || strings.EqualFold(user.Email, excludeEmail) {
		return false, nil
	}
	user.Status = status
	return true, nil
}

func (r *fakeUserRepo) DeleteExcludingEmail(_ context.Context, id, excludeEmail string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok || strings.EqualFold(user.Email, excludeEmail) {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

// cascadingUserRepo removes the user profile row together with the users
// row, the way the user_profiles foreign key does in the schema.
type cascadingUserRepo struct {
	*fakeUserRepo
	profiles *fakeUserProfileRepo
}

func (r *cascadingUserRepo) DeleteExcludingEmail(ctx context.Context, id, excludeEmail string) (bool, error) {
	matched, err := r.fakeUserRepo.DeleteExcludingEmail(ctx, id, excludeEmail)
	if matched {
		_ = r.profiles.DeleteByUserID(ctx, id)
	}
	return matched, err
}

// fakeUserProfileRepo is an in-memory UserProfileRepository.
type fakeUserProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*domain.UserProfile
}

func newFakeUserProfileRepo() *fakeUserProfileRepo {
	return &fakeUserProfileRepo{profiles: make(map[string]*domain.UserProfile)}
}

func (r *fakeUserProfileRepo) Create(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[userID] = &domain.UserProfile{UserID: userID, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	return nil
}

func (r *fakeUserProfileRepo) GetByUserID(_ context.Context, userID string) (*domain.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *profile
	return &clone, nil
}

func (r *fakeUserProfileRepo) UpdateDetails(_ context.Context, userID, bio, phone, address string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.profiles[userID]
	if !ok {
		return pgx.ErrNoRows
	}
	profile.Bio, profile.Phone, profile.Address = bio, phone, address
	return nil
}

func (r *fakeUserProfileRepo) UpdateAvatar(_ context.Context, userID, avatar string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.profiles[userID]
	if !ok {
		return pgx.ErrNoRows
	}
	profile.Avatar = avatar
	return nil
}

func (r *fakeUserProfileRepo) DeleteByUserID(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[userID]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.profiles, userID)
	return nil
}

// fakeSmeProfileRepo is an in-memory SmeProfileRepository.
type fakeSmeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*domain.SmeProfile
}

func newFakeSmeProfileRepo() *fakeSmeProfileRepo {
	return &fakeSmeProfileRepo{profiles: make(map[string]*domain.SmeProfile)}
}

func (r *fakeSmeProfileRepo) Create(_ context.Context, profile *domain.SmeProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.profiles {
		if existing.SmeID == profile.SmeID ||
			strings.EqualFold(existing.BusinessName, profile.BusinessName) ||
			existing.TinNumber == profile.TinNumber ||
			existing.CacNumber == profile.CacNumber {
			return uniqueViolationErr()
		}
	}
	profile.BusinessName = strings.ToLower(profile.BusinessName)
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = profile.CreatedAt
	clone := *profile
	r.profiles[profile.ID] = &clone
	return nil
}

func (r *fakeSmeProfileRepo) GetByID(_ context.Context, id string) (*domain.SmeProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.profiles[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *profile
	return &clone, nil
}

func (r *fakeSmeProfileRepo) GetBySmeID(_ context.Context, smeID string) (*domain.SmeProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, profile := range r.profiles {
		if profile.SmeID == smeID {
			clone := *profile
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeSmeProfileRepo) List(_ context.Context) ([]domain.SmeProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var profiles []domain.SmeProfile
	for _, profile := range r.profiles {
		profiles = append(profiles, *profile)
	}
	return profiles, nil
}

func (r *fakeSmeProfileRepo) UpdateStatus(_ context.Context, id string, status domain.SmeProfileStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.profiles[id]
	if !ok {
		return pgx.ErrNoRows
	}
	profile.Status = status
	return nil
}

func (r *fakeSmeProfileRepo) DeleteBySmeID(_ context.Context, smeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, profile := range r.profiles {
		if profile.SmeID == smeID {
			delete(r.profiles, id)
		}
	}
	return nil
}

// fakeCategoryRepo is an in-memory CategoryRepository.
type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories map[string]*domain.Category
	listCalls  int
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]*domain.Category)}
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := strings.ToLower(category.Name)
	if _, ok := r.categories[name]; ok {
		return uniqueViolationErr()
	}
	category.Name = name
	clone := *category
	r.categories[name] = &clone
	return nil
}

func (r *fakeCategoryRepo) GetByName(_ context.Context, name string) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	category, ok := r.categories[strings.ToLower(name)]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *category
	return &clone, nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	var categories []domain.Category
	for _, category := range r.categories {
		categories = append(categories, *category)
	}
	return categories, nil
}

func (r *fakeCategoryRepo) UpdateDescription(_ context.Context, name, description string) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	category, ok := r.categories[strings.ToLower(name)]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	category.Description = description
	clone := *category
	return &clone, nil
}

func (r *fakeCategoryRepo) DeleteByName(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[strings.ToLower(name)]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.categories, strings.ToLower(name))
	return nil
}

// fakeFundRequestRepo is an in-memory FundRequestRepository.
type fakeFundRequestRepo struct {
	mu       sync.Mutex
	requests map[string]*domain.FundRequest
}

func newFakeFundRequestRepo() *fakeFundRequestRepo {
	return &fakeFundRequestRepo{requests: make(map[string]*domain.FundRequest)}
}

func (r *fakeFundRequestRepo) Create(_ context.Context, request *domain.FundRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *request
	r.requests[request.ID] = &clone
	return nil
}

func (r *fakeFundRequestRepo) GetByID(_ context.Context, id string) (*domain.FundRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	request, ok := r.requests[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *request
	return &clone, nil
}

func (r *fakeFundRequestRepo) ListBySmeID(_ context.Context, smeID string) ([]domain.FundRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var requests []domain.FundRequest
	for _, request := range r.requests {
		if request.SmeID == smeID {
			requests = append(requests, *request)
		}
	}
	return requests, nil
}

// fakeAssetStore records released asset paths.
type fakeAssetStore struct {
	mu       sync.Mutex
	released []string
	failOn   string
}

func (s *fakeAssetStore) DiskPath(publicPath string) string {
	return "testdata" + publicPath
}

func (s *fakeAssetStore) Release(publicPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failOn != "" && s.failOn == publicPath {
		return errors.New("asset release failed")
	}
	s.released = append(s.released, publicPath)
	return nil
}
