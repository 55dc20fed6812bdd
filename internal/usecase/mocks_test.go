package usecase_test

import (
	"context"
	"time"

	"cvhub-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockCVRepo struct {
	mock.Mock
}

func (m *MockCVRepo) Create(ctx context.Context, cv *domain.CV) error {
	return m.Called(ctx, cv).Error(0)
}

func (m *MockCVRepo) GetByID(ctx context.Context, id string) (*domain.CV, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CV), args.Error(1)
}

func (m *MockCVRepo) ListByUserID(ctx context.Context, userID string) ([]domain.CV, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CV), args.Error(1)
}

func (m *MockCVRepo) ListPublished(ctx context.Context) ([]domain.CV, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CV), args.Error(1)
}

func (m *MockCVRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockApplicantProfileRepo struct {
	mock.Mock
}

func (m *MockApplicantProfileRepo) ListByUserIDs(ctx context.Context, userIDs []string) ([]domain.ApplicantProfile, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApplicantProfile), args.Error(1)
}

type MockCompanyProfileRepo struct {
	mock.Mock
}

func (m *MockCompanyProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.CompanyProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyProfile), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) ListByIDs(ctx context.Context, ids []string) ([]domain.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) CreateAccount(ctx context.Context, user *domain.User, companyName string) error {
	return m.Called(ctx, user, companyName).Error(0)
}

type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) CreateUser(ctx context.Context, email, password string, metadata map[string]any) (string, error) {
	args := m.Called(ctx, email, password, metadata)
	return args.String(0), args.Error(1)
}

func (m *MockIdentityProvider) DeleteUser(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockAdRepo struct {
	mock.Mock
}

func (m *MockAdRepo) Create(ctx context.Context, ad *domain.Advertisement) error {
	return m.Called(ctx, ad).Error(0)
}

func (m *MockAdRepo) GetByID(ctx context.Context, id string) (*domain.Advertisement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Advertisement), args.Error(1)
}

func (m *MockAdRepo) ListByCompanyID(ctx context.Context, companyID string) ([]domain.Advertisement, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Advertisement), args.Error(1)
}

func (m *MockAdRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAdRepo) ExpireEnded(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockBookmarkRepo struct {
	mock.Mock
}

func (m *MockBookmarkRepo) Add(ctx context.Context, userID, cvID string) error {
	return m.Called(ctx, userID, cvID).Error(0)
}

func (m *MockBookmarkRepo) Remove(ctx context.Context, userID, cvID string) error {
	return m.Called(ctx, userID, cvID).Error(0)
}

type MockSearchCache struct {
	mock.Mock
}

func (m *MockSearchCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	args := m.Called(ctx, key, out)
	return args.Bool(0), args.Error(1)
}

func (m *MockSearchCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *MockSearchCache) DeleteByPattern(ctx context.Context, pattern string) error {
	return m.Called(ctx, pattern).Error(0)
}

const (
	ownerID   = "6f1c2a9e-0000-4000-8000-000000000001"
	otherID   = "6f1c2a9e-0000-4000-8000-000000000002"
	cvID      = "0b7d6a4c-0000-4000-8000-0000000000c1"
	adID      = "0b7d6a4c-0000-4000-8000-0000000000a1"
	companyID = "0b7d6a4c-0000-4000-8000-0000000000f1"
)

func applicant(id string) domain.AuthContext {
	return domain.AuthContext{UserID: id, Email: "a@example.com", Role: domain.RoleApplicant}
}

func company(id string) domain.AuthContext {
	return domain.AuthContext{UserID: id, Email: "c@example.com", Role: domain.RoleCompany}
}
