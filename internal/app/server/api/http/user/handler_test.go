package user

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"worldexplorer/internal/app/server/api/http/middleware/auth"
	"worldexplorer/internal/domain/user"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, name, email, password string) (user.User, error) {
	args := m.Called(ctx, name, email, password)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (user.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserService) Profile(ctx context.Context, id uuid.UUID) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) Validate(ctx context.Context, token string) (uuid.UUID, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func newTestHandler(users *MockUserService, sessions *MockSessionService) *Handler {
	return NewHandler(users, sessions, slog.Default(), huma.Middlewares{}, huma.Middlewares{})
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestHandler_Register(t *testing.T) {
	users := new(MockUserService)
	sessions := new(MockSessionService)
	handler := newTestHandler(users, sessions)

	id := uuid.New()
	created := user.User{ID: id, Name: "Jane", Email: "jane@example.com", Favorites: []string{}}

	users.On("Register", mock.Anything, "Jane", "jane@example.com", "testpassword123").Return(created, nil)
	sessions.On("Create", mock.Anything, id).Return("issued-token", nil)

	out, err := handler.register(context.Background(), &registerInput{
		Body: RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "testpassword123"},
	})

	require.NoError(t, err)
	assert.Equal(t, id.String(), out.Body.ID)
	assert.Equal(t, "issued-token", out.Body.Token)
	assert.Empty(t, out.Body.Favorites)

	users.AssertExpectations(t)
	sessions.AssertExpectations(t)
}

func TestHandler_Register_Conflict(t *testing.T) {
	users := new(MockUserService)
	sessions := new(MockSessionService)
	handler := newTestHandler(users, sessions)

	users.On("Register", mock.Anything, "Jane", "jane@example.com", "testpassword123").
		Return(user.User{}, user.ErrEmailTaken)

	_, err := handler.register(context.Background(), &registerInput{
		Body: RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "testpassword123"},
	})

	assert.Equal(t, 409, statusOf(t, err))

	// A failed registration never issues a session.
	sessions.AssertNotCalled(t, "Create")
	users.AssertExpectations(t)
}

func TestHandler_Register_ValidationError(t *testing.T) {
	users := new(MockUserService)
	sessions := new(MockSessionService)
	handler := newTestHandler(users, sessions)

	users.On("Register", mock.Anything, "", "jane@example.com", "x").
		Return(user.User{}, user.ErrInvalidInput)

	_, err := handler.register(context.Background(), &registerInput{
		Body: RegisterRequest{Name: "", Email: "jane@example.com", Password: "x"},
	})

	assert.Equal(t, 400, statusOf(t, err))
	sessions.AssertNotCalled(t, "Create")
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	users := new(MockUserService)
	sessions := new(MockSessionService)
	handler := newTestHandler(users, sessions)

	users.On("Authenticate", mock.Anything, "jane@example.com", "wrong").
		Return(user.User{}, user.ErrInvalidCredentials)

	_, err := handler.login(context.Background(), &loginInput{
		Body: LoginRequest{Email: "jane@example.com", Password: "wrong"},
	})

	assert.Equal(t, 401, statusOf(t, err))
	sessions.AssertNotCalled(t, "Create")
	users.AssertExpectations(t)
}

func TestHandler_Login(t *testing.T) {
	users := new(MockUserService)
	sessions := new(MockSessionService)
	handler := newTestHandler(users, sessions)

	id := uuid.New()
	u := user.User{ID: id, Name: "Jane", Email: "jane@example.com", Favorites: []string{"FRA"}}

	users.On("Authenticate", mock.Anything, "jane@example.com", "testpassword123").Return(u, nil)
	sessions.On("Create", mock.Anything, id).Return("issued-token", nil)

	out, err := handler.login(context.Background(), &loginInput{
		Body: LoginRequest{Email: "jane@example.com", Password: "testpassword123"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"FRA"}, out.Body.Favorites)
	assert.Equal(t, "issued-token", out.Body.Token)
}

func TestHandler_Profile(t *testing.T) {
	users := new(MockUserService)
	sessions := new(MockSessionService)
	handler := newTestHandler(users, sessions)

	id := uuid.New()
	u := user.User{ID: id, Name: "Jane", Email: "jane@example.com", Favorites: []string{"FRA", "DEU"}}
	users.On("Profile", mock.Anything, id).Return(u, nil)

	ctx := context.WithValue(context.Background(), auth.UserIDKey, id)
	out, err := handler.profile(ctx, &profileInput{})

	require.NoError(t, err)
	assert.Equal(t, id.String(), out.Body.ID)
	assert.Equal(t, []string{"FRA", "DEU"}, out.Body.Favorites)
}

func TestHandler_Profile_NoIdentity(t *testing.T) {
	users := new(MockUserService)
	sessions := new(MockSessionService)
	handler := newTestHandler(users, sessions)

	_, err := handler.profile(context.Background(), &profileInput{})
	assert.Equal(t, 401, statusOf(t, err))
	users.AssertNotCalled(t, "Profile")
}
