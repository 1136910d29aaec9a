package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-ats-backend/internal/domain"
	"go-ats-backend/internal/query"
	"go-ats-backend/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Mock Repositories

type MockPipelineStatusRepo struct {
	mock.Mock
}

func (m *MockPipelineStatusRepo) Fetch(ctx context.Context, params query.Params) ([]domain.PipelineStatus, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.PipelineStatus), args.Get(1).(int64), args.Error(2)
}

func (m *MockPipelineStatusRepo) GetByID(ctx context.Context, id int64) (*domain.PipelineStatus, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PipelineStatus), args.Error(1)
}

func (m *MockPipelineStatusRepo) Create(ctx context.Context, name string, sort int, isInitial bool) (*domain.PipelineStatus, error) {
	args := m.Called(ctx, name, sort, isInitial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PipelineStatus), args.Error(1)
}

func (m *MockPipelineStatusRepo) Update(ctx context.Context, id int64, upd domain.PipelineStatusUpdate) (*domain.PipelineStatus, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PipelineStatus), args.Error(1)
}

func (m *MockPipelineStatusRepo) Delete(ctx context.Context, id int64) (*domain.PipelineStatus, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PipelineStatus), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Fetch(ctx context.Context, filter domain.UserFilter) ([]domain.User, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

func (m *MockUserRepo) Delete(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) Fetch(ctx context.Context, filter domain.CandidateFilter) ([]domain.CandidateDetail, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.CandidateDetail), args.Get(1).(int64), args.Error(2)
}

func (m *MockCandidateRepo) GetByID(ctx context.Context, id int64) (*domain.CandidateDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateDetail), args.Error(1)
}

func (m *MockCandidateRepo) FindByName(ctx context.Context, name string) (*domain.CandidateDetail, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateDetail), args.Error(1)
}

func (m *MockCandidateRepo) Create(ctx context.Context, candidate *domain.Candidate, links domain.CandidateLinks) error {
	return m.Called(ctx, candidate, links).Error(0)
}

func (m *MockCandidateRepo) Update(ctx context.Context, candidate *domain.Candidate, links domain.CandidateLinks) error {
	return m.Called(ctx, candidate, links).Error(0)
}

func (m *MockCandidateRepo) SoftDelete(ctx context.Context, id int64) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

type MockBlacklistRepo struct {
	mock.Mock
}

func (m *MockBlacklistRepo) Fetch(ctx context.Context, filter domain.BlacklistFilter) ([]domain.BlacklistDetail, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.BlacklistDetail), args.Get(1).(int64), args.Error(2)
}

func (m *MockBlacklistRepo) GetByID(ctx context.Context, id int64) (*domain.BlacklistDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlacklistDetail), args.Error(1)
}

func (m *MockBlacklistRepo) Create(ctx context.Context, entry *domain.BlacklistEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockBlacklistRepo) Update(ctx context.Context, entry *domain.BlacklistEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockBlacklistRepo) Delete(ctx context.Context, id int64) (*domain.BlacklistEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlacklistEntry), args.Error(1)
}

func TestPipelineStatusCreateDefaults(t *testing.T) {
	mockRepo := new(MockPipelineStatusRepo)
	uc := usecase.NewPipelineStatusUsecase(mockRepo)

	t.Run("missing sort inserts at the front", func(t *testing.T) {
		mockRepo.On("Create", mock.Anything, "Applied", 0, true).
			Return(&domain.PipelineStatus{ID: 1, Name: "Applied", Sort: 0, IsInitial: true}, nil).Once()

		status, err := uc.Create(context.Background(), "Applied", nil, true)
		require.NoError(t, err)
		assert.Equal(t, 0, status.Sort)
		mockRepo.AssertExpectations(t)
	})

	t.Run("negative sort is rejected before the store", func(t *testing.T) {
		bad := -1
		_, err := uc.Create(context.Background(), "Applied", &bad, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Sort must not be negative")
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, "Applied", -1, false)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := uc.Create(context.Background(), "", nil, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Name is required")
	})
}

func TestPipelineStatusNotFound(t *testing.T) {
	mockRepo := new(MockPipelineStatusRepo)
	uc := usecase.NewPipelineStatusUsecase(mockRepo)

	mockRepo.On("Update", mock.Anything, int64(99), mock.Anything).
		Return(nil, domain.ErrNotFound).Once()

	name := "Ghost"
	_, err := uc.Update(context.Background(), 99, domain.PipelineStatusUpdate{Name: &name})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Pipeline status not found")
}

func TestAuthLogin(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{
		ID:       7,
		Email:    "recruiter@example.com",
		Password: string(hashed),
		Name:     "Dana",
		Active:   true,
		Role:     domain.RoleRecruiter,
	}

	t.Run("valid credentials produce a signed token with the user claims", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByEmail", mock.Anything, "recruiter@example.com").Return(user, nil).Once()
		mockRepo.On("UpdateLastLogin", mock.Anything, int64(7), mock.Anything).Return(nil).Once()

		uc := usecase.NewAuthUsecase(mockRepo, "test-secret", time.Hour)
		token, loggedIn, err := uc.Login(context.Background(), "recruiter@example.com", "correct-horse")
		require.NoError(t, err)
		assert.Empty(t, loggedIn.Password)

		parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, float64(7), claims["id"])
		assert.Equal(t, "Dana", claims["name"])
		assert.Equal(t, domain.RoleRecruiter, claims["role"])
		assert.Equal(t, true, claims["active"])
		mockRepo.AssertExpectations(t)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByEmail", mock.Anything, "recruiter@example.com").Return(user, nil).Once()

		uc := usecase.NewAuthUsecase(mockRepo, "test-secret", time.Hour)
		_, _, err := uc.Login(context.Background(), "recruiter@example.com", "wrong")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid credentials")
	})

	t.Run("unknown email gets the same message as a wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, domain.ErrNotFound).Once()

		uc := usecase.NewAuthUsecase(mockRepo, "test-secret", time.Hour)
		_, _, err := uc.Login(context.Background(), "nobody@example.com", "anything")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid credentials")
	})

	t.Run("inactive accounts cannot log in", func(t *testing.T) {
		inactive := *user
		inactive.Active = false
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByEmail", mock.Anything, "recruiter@example.com").Return(&inactive, nil).Once()

		uc := usecase.NewAuthUsecase(mockRepo, "test-secret", time.Hour)
		_, _, err := uc.Login(context.Background(), "recruiter@example.com", "correct-horse")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Account is disabled")
	})
}

func TestCandidateCreateRejectsDuplicateName(t *testing.T) {
	mockRepo := new(MockCandidateRepo)
	mockBlacklist := new(MockBlacklistRepo)
	uc := usecase.NewCandidateUsecase(mockRepo, mockBlacklist, validator.New())

	existing := &domain.CandidateDetail{Candidate: domain.Candidate{ID: 3, Name: "Ada Lovelace"}}
	mockRepo.On("FindByName", mock.Anything, "Ada Lovelace").Return(existing, nil).Once()

	_, err := uc.Create(context.Background(), &domain.Candidate{Name: "Ada Lovelace", Email: "ada@example.com"}, domain.CandidateLinks{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCandidateBlacklist(t *testing.T) {
	t.Run("blacklisting an already listed candidate fails", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		mockBlacklist := new(MockBlacklistRepo)
		uc := usecase.NewCandidateUsecase(mockRepo, mockBlacklist, validator.New())

		listed := &domain.CandidateDetail{
			Candidate: domain.Candidate{ID: 5, Name: "Grace"},
			Blacklist: &domain.BlacklistEntry{ID: 1, CandidateID: 5},
		}
		mockRepo.On("GetByID", mock.Anything, int64(5)).Return(listed, nil).Once()

		_, err := uc.Blacklist(context.Background(), 5, "spam", 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already blacklisted")
		mockBlacklist.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing candidate yields not found", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		mockBlacklist := new(MockBlacklistRepo)
		uc := usecase.NewCandidateUsecase(mockRepo, mockBlacklist, validator.New())

		mockRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, domain.ErrNotFound).Once()

		_, err := uc.Blacklist(context.Background(), 404, "spam", 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Candidate not found")
	})
}

func TestCandidateListEnvelope(t *testing.T) {
	mockRepo := new(MockCandidateRepo)
	mockBlacklist := new(MockBlacklistRepo)
	uc := usecase.NewCandidateUsecase(mockRepo, mockBlacklist, validator.New())

	filter := domain.CandidateFilter{Params: query.Params{Page: 2, Limit: 10}}
	items := []domain.CandidateDetail{{Candidate: domain.Candidate{ID: 11}}}
	mockRepo.On("Fetch", mock.Anything, filter).Return(items, int64(25), nil).Once()

	page, err := uc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, int64(25), page.Meta.TotalItems)
	assert.Equal(t, 3, page.Meta.TotalPages)
	assert.Equal(t, 2, page.Meta.CurrentPage)
	assert.Equal(t, 10, page.Meta.PageSize)
}
