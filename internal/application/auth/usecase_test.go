package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/stockflow/stockflow-api/internal/application/auth"
	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/pkg/jwt"
)

type fakeUserRepo struct {
	byPhone map[string]*entity.User
	byID    map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{byPhone: map[string]*entity.User{}, byID: map[string]*entity.User{}}
	for _, u := range users {
		r.byPhone[u.PhoneNumber] = u
		r.byID[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.byPhone[u.PhoneNumber] = u
	r.byID[u.ID] = u
	return nil
}
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error)       { return r.byID[id], nil }
func (r *fakeUserRepo) GetByPhone(phone string) (*entity.User, error) { return r.byPhone[phone], nil }
func (r *fakeUserRepo) UpdatePassword(id, hash string) error {
	if u, ok := r.byID[id]; ok {
		u.PasswordHash = hash
	}
	return nil
}
func (r *fakeUserRepo) List(int, int) ([]*entity.User, error)                    { return nil, nil }
func (r *fakeUserRepo) ListByWarehouse(string, int, int) ([]*entity.User, error) { return nil, nil }

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func newFakeWarehouseRepo(ids ...string) *fakeWarehouseRepo {
	r := &fakeWarehouseRepo{warehouses: map[string]*entity.Warehouse{}}
	for _, id := range ids {
		r.warehouses[id] = &entity.Warehouse{ID: id}
	}
	return r
}

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error          { r.warehouses[w.ID] = w; return nil }
func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) { return r.warehouses[id], nil }
func (r *fakeWarehouseRepo) Update(w *entity.Warehouse) error          { r.warehouses[w.ID] = w; return nil }
func (r *fakeWarehouseRepo) List(int, int) ([]*entity.Warehouse, error) { return nil, nil }

type fakeSessionStore struct {
	sessions map[string]*entity.Principal
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]*entity.Principal{}}
}

func (s *fakeSessionStore) Set(_ context.Context, p *entity.Principal, _ time.Duration) error {
	s.sessions[p.SessionID] = p
	return nil
}
func (s *fakeSessionStore) Clear(_ context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}
func (s *fakeSessionStore) Current(_ context.Context, sessionID string) (*entity.Principal, error) {
	return s.sessions[sessionID], nil
}

const testSecret = "unit-test-secret"

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func testUseCase(t *testing.T, users ...*entity.User) (*auth.AuthUseCase, *fakeSessionStore) {
	t.Helper()
	store := newFakeSessionStore()
	uc := auth.NewAuthUseCase(newFakeUserRepo(users...), newFakeWarehouseRepo("w1"), store, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "stockflow-test",
	})
	return uc, store
}

func activeUser(t *testing.T, role, warehouseID string) *entity.User {
	t.Helper()
	return &entity.User{
		ID:           "u1",
		FullName:     "Test User",
		PhoneNumber:  "0711111111",
		PasswordHash: mustHash(t, "correct-horse"),
		Role:         role,
		WarehouseID:  warehouseID,
		Status:       "active",
	}
}

func TestLogin_OpensSessionBoundToToken(t *testing.T) {
	uc, store := testUseCase(t, activeUser(t, entity.RoleManager, "w1"))

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		PhoneNumber: "0711111111",
		Password:    "correct-horse",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleManager, out.User.Role)

	claims, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)

	p, err := store.Current(context.Background(), claims.SessionID)
	require.NoError(t, err)
	require.NotNil(t, p, "login must create the session the token names")
	assert.Equal(t, "u1", p.UserID)
	assert.Equal(t, entity.RoleManager, p.Role)
	assert.Equal(t, "w1", p.WarehouseID)
}

func TestLogin_BadCredentials(t *testing.T) {
	uc, _ := testUseCase(t, activeUser(t, entity.RoleManager, "w1"))

	_, err := uc.Login(context.Background(), dto.LoginRequest{PhoneNumber: "0711111111", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{PhoneNumber: "0799999999", Password: "correct-horse"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_InactiveAccount(t *testing.T) {
	user := activeUser(t, entity.RoleManager, "w1")
	user.Status = "inactive"
	uc, _ := testUseCase(t, user)

	_, err := uc.Login(context.Background(), dto.LoginRequest{PhoneNumber: "0711111111", Password: "correct-horse"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogout_RevokesSession(t *testing.T) {
	uc, store := testUseCase(t, activeUser(t, entity.RoleManager, "w1"))

	out, err := uc.Login(context.Background(), dto.LoginRequest{PhoneNumber: "0711111111", Password: "correct-horse"})
	require.NoError(t, err)
	claims, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background(), claims.SessionID))

	p, err := store.Current(context.Background(), claims.SessionID)
	require.NoError(t, err)
	assert.Nil(t, p, "session must be gone after logout")
}

func TestRegisterUser_AdminScopedToOwnWarehouse(t *testing.T) {
	uc, _ := testUseCase(t)
	actor := &entity.Principal{UserID: "a1", Role: entity.RoleAdmin, WarehouseID: "w1"}

	out, err := uc.RegisterUser(actor, dto.RegisterRequest{
		FullName:    "New Sales",
		PhoneNumber: "0722222222",
		Password:    "longenough",
		Role:        entity.RoleSales,
		WarehouseID: "w-other",
	})
	require.NoError(t, err)
	assert.Equal(t, "w1", out.WarehouseID, "admin registrations land in the admin's warehouse")

	_, err = uc.RegisterUser(actor, dto.RegisterRequest{
		FullName:    "New Admin",
		PhoneNumber: "0733333333",
		Password:    "longenough",
		Role:        entity.RoleAdmin,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden, "admin cannot mint another admin")
}

func TestRegisterUser_Validation(t *testing.T) {
	uc, _ := testUseCase(t, activeUser(t, entity.RoleSales, "w1"))
	actor := &entity.Principal{UserID: "s1", Role: entity.RoleSuperAdmin}

	_, err := uc.RegisterUser(actor, dto.RegisterRequest{
		FullName: "No Phone", Password: "longenough", Role: entity.RoleSales, WarehouseID: "w1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegisterUser(actor, dto.RegisterRequest{
		FullName: "Bad Role", PhoneNumber: "0744444444", Password: "longenough", Role: "owner", WarehouseID: "w1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegisterUser(actor, dto.RegisterRequest{
		FullName: "Dup", PhoneNumber: "0711111111", Password: "longenough", Role: entity.RoleSales, WarehouseID: "w1",
	})
	assert.ErrorIs(t, err, domain.ErrPhoneAlreadyExists)

	_, err = uc.RegisterUser(actor, dto.RegisterRequest{
		FullName: "No Warehouse", PhoneNumber: "0755555555", Password: "longenough", Role: entity.RoleSales,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "non-superAdmin roles need a warehouse")
}

func TestChangePassword(t *testing.T) {
	uc, _ := testUseCase(t, activeUser(t, entity.RoleManager, "w1"))

	err := uc.ChangePassword("u1", dto.ChangePasswordRequest{OldPassword: "wrong", NewPassword: "a-new-password"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	err = uc.ChangePassword("u1", dto.ChangePasswordRequest{OldPassword: "correct-horse", NewPassword: "short"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.ChangePassword("u1", dto.ChangePasswordRequest{OldPassword: "correct-horse", NewPassword: "a-new-password"})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{PhoneNumber: "0711111111", Password: "a-new-password"})
	assert.NoError(t, err, "new password must work")
}
