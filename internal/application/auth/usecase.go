package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
	"github.com/stockflow/stockflow-api/pkg/jwt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase authentication and account management: login, logout,
// registration, password change. The session store is the identity holder:
// every token is bound to a session that logout revokes.
type AuthUseCase struct {
	userRepo      repository.UserRepository
	warehouseRepo repository.WarehouseRepository
	sessions      SessionStore
	jwtCfg        JWTConfig
}

// NewAuthUseCase builds the use case.
func NewAuthUseCase(userRepo repository.UserRepository, warehouseRepo repository.WarehouseRepository, sessions SessionStore, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, warehouseRepo: warehouseRepo, sessions: sessions, jwtCfg: jwtCfg}
}

// Login verifies phone/password, opens a session and returns token + user.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByPhone(in.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}

	ttl := time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute
	principal := &entity.Principal{
		SessionID:   uuid.New().String(),
		UserID:      user.ID,
		FullName:    user.FullName,
		Role:        user.Role,
		WarehouseID: user.WarehouseID,
		IssuedAt:    time.Now(),
	}
	if err := uc.sessions.Set(ctx, principal, ttl); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, user.WarehouseID, principal.SessionID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Logout destroys the session. The token becomes useless even before expiry.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	return uc.sessions.Clear(ctx, sessionID)
}

// RegisterUser creates an account: hashes the password with bcrypt and persists.
// actor scoping: an admin may only register into their own warehouse and may not
// create superAdmin or admin accounts; role assignment beyond that is the
// superAdmin's capability.
func (uc *AuthUseCase) RegisterUser(actor *entity.Principal, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.PhoneNumber == "" || in.Password == "" || in.FullName == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	if actor.Role == entity.RoleAdmin {
		if in.Role == entity.RoleSuperAdmin || in.Role == entity.RoleAdmin {
			return nil, domain.ErrForbidden
		}
		in.WarehouseID = actor.WarehouseID
	}
	if in.Role != entity.RoleSuperAdmin {
		if in.WarehouseID == "" {
			return nil, domain.ErrInvalidInput
		}
		wh, err := uc.warehouseRepo.GetByID(in.WarehouseID)
		if err != nil {
			return nil, err
		}
		if wh == nil {
			return nil, domain.ErrNotFound
		}
	}
	existing, _ := uc.userRepo.GetByPhone(in.PhoneNumber)
	if existing != nil {
		return nil, domain.ErrPhoneAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		FullName:     in.FullName,
		PhoneNumber:  in.PhoneNumber,
		PasswordHash: string(hash),
		Role:         in.Role,
		WarehouseID:  in.WarehouseID,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ChangePassword verifies the old password and stores the new hash.
func (uc *AuthUseCase) ChangePassword(userID string, in dto.ChangePasswordRequest) error {
	if len(in.NewPassword) < 8 {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.OldPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePassword(userID, string(hash))
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		FullName:    u.FullName,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		WarehouseID: u.WarehouseID,
		Status:      u.Status,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
