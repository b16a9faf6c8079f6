package favorites

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Update(ctx context.Context, userID uuid.UUID, codes []string) error {
	args := m.Called(ctx, userID, codes)
	return args.Error(0)
}

func (m *MockRepository) Get(ctx context.Context, userID uuid.UUID) ([]string, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]string), args.Error(1)
}

func TestService_Update(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	userID := uuid.New()
	mockRepo.On("Update", mock.Anything, userID, []string{"FRA", "DEU", "ITA"}).Return(nil)

	// Lower case and duplicates are accepted on the way in.
	got, err := service.Update(context.Background(), userID, []string{"fra", "DEU", "ita", "FRA"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"FRA", "DEU", "ITA"}, got)

	mockRepo.AssertExpectations(t)
}

func TestService_Update_EmptySet(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	userID := uuid.New()
	mockRepo.On("Update", mock.Anything, userID, []string{}).Return(nil)

	got, err := service.Update(context.Background(), userID, nil)
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	mockRepo.AssertExpectations(t)
}

func TestService_Update_InvalidCode(t *testing.T) {
	tests := []struct {
		name  string
		codes []string
	}{
		{name: "too short", codes: []string{"FR"}},
		{name: "too long", codes: []string{"FRAN"}},
		{name: "digits", codes: []string{"F1A"}},
		{name: "empty entry", codes: []string{"FRA", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := NewService(mockRepo, slog.Default())

			_, err := service.Update(context.Background(), uuid.New(), tt.codes)
			assert.ErrorIs(t, err, ErrInvalidCode)
			mockRepo.AssertNotCalled(t, "Update")
		})
	}
}

func TestService_Update_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Update", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("database error"))

	_, err := service.Update(context.Background(), uuid.New(), []string{"FRA"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "update favorites")

	mockRepo.AssertExpectations(t)
}

func TestService_Get(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	userID := uuid.New()
	mockRepo.On("Get", mock.Anything, userID).Return([]string{"JPN"}, nil)

	got, err := service.Get(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, []string{"JPN"}, got)

	mockRepo.AssertExpectations(t)
}

func TestIsValidCode(t *testing.T) {
	assert.True(t, IsValidCode("FRA"))
	assert.False(t, IsValidCode("fra"))
	assert.False(t, IsValidCode(""))
	assert.False(t, IsValidCode("FRAN"))
}
