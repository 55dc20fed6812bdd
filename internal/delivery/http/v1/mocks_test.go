package v1

import (
	"context"
	"time"

	"cvhub-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockCVUsecase struct {
	mock.Mock
}

func (m *MockCVUsecase) CreateCV(ctx context.Context, auth domain.AuthContext, content domain.CVContent) (*domain.CV, error) {
	args := m.Called(ctx, auth, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CV), args.Error(1)
}

func (m *MockCVUsecase) ListMyCVs(ctx context.Context, auth domain.AuthContext) ([]domain.CV, error) {
	args := m.Called(ctx, auth)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CV), args.Error(1)
}

func (m *MockCVUsecase) DeleteCV(ctx context.Context, auth domain.AuthContext, id string) error {
	args := m.Called(ctx, auth, id)
	return args.Error(0)
}

func (m *MockCVUsecase) GetPublishedCV(ctx context.Context, id string) (*domain.CV, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CV), args.Error(1)
}

func (m *MockCVUsecase) GetExportableCV(ctx context.Context, auth domain.AuthContext, id string) (*domain.CV, error) {
	args := m.Called(ctx, auth, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CV), args.Error(1)
}

type MockDirectoryUsecase struct {
	mock.Mock
}

func (m *MockDirectoryUsecase) Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.DirectoryResult, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DirectoryResult), args.Error(1)
}

func (m *MockDirectoryUsecase) Export(ctx context.Context, auth domain.AuthContext, criteria domain.SearchCriteria) ([]byte, error) {
	args := m.Called(ctx, auth, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockBookmarkUsecase struct {
	mock.Mock
}

func (m *MockBookmarkUsecase) Toggle(ctx context.Context, auth domain.AuthContext, cvID string, isBookmarked bool) error {
	args := m.Called(ctx, auth, cvID, isBookmarked)
	return args.Error(0)
}

type MockAdvertisementUsecase struct {
	mock.Mock
}

func (m *MockAdvertisementUsecase) CreateAd(ctx context.Context, auth domain.AuthContext, in domain.CreateAdInput) (*domain.Advertisement, error) {
	args := m.Called(ctx, auth, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Advertisement), args.Error(1)
}

func (m *MockAdvertisementUsecase) ListMyAds(ctx context.Context, auth domain.AuthContext) ([]domain.Advertisement, domain.AdStats, error) {
	args := m.Called(ctx, auth)
	if args.Get(0) == nil {
		return nil, domain.AdStats{}, args.Error(2)
	}
	return args.Get(0).([]domain.Advertisement), args.Get(1).(domain.AdStats), args.Error(2)
}

func (m *MockAdvertisementUsecase) DeleteAd(ctx context.Context, auth domain.AuthContext, id string) error {
	args := m.Called(ctx, auth, id)
	return args.Error(0)
}

func (m *MockAdvertisementUsecase) ExpireEndedAds(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Signup(ctx context.Context, in domain.SignupInput) (string, error) {
	args := m.Called(ctx, in)
	return args.String(0), args.Error(1)
}

func (m *MockAuthUsecase) CreateProfile(ctx context.Context, in domain.CreateProfileInput) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

func (m *MockAuthUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type stubHealth map[string]string

func (s stubHealth) Check(context.Context) map[string]string { return s }

var fixedTime = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
