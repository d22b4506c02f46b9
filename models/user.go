package models

import (
	"context"
	"fmt"
	"time"

	"github.com/VoyageGenie/voyage-backend/errors"
	"github.com/VoyageGenie/voyage-backend/internal/auth"
	"github.com/VoyageGenie/voyage-backend/internal/store"
	"github.com/VoyageGenie/voyage-backend/logger"
	"github.com/VoyageGenie/voyage-backend/services"
	"github.com/VoyageGenie/voyage-backend/types"
	"golang.org/x/crypto/bcrypt"
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
)

// UserModel owns account registration, login with per-account lockout, and
// the two password-recovery flows. Passwords and security answers are only
// ever stored as bcrypt hashes.
type UserModel struct {
	store          store.UserStore
	lockout        services.LockoutServiceInterface
	secret         []byte
	tokenTTL       time.Duration
	lockoutMinutes int
}

func NewUserModel(userStore store.UserStore, lockout services.LockoutServiceInterface, secret []byte, tokenTTL time.Duration, lockoutMinutes int) *UserModel {
	return &UserModel{
		store:          userStore,
		lockout:        lockout,
		secret:         secret,
		tokenTTL:       tokenTTL,
		lockoutMinutes: lockoutMinutes,
	}
}

// Register creates an account and signs the first session token.
func (um *UserModel) Register(ctx context.Context, req *types.RegisterRequest) (*types.AuthResponse, error) {
	if len(req.Username) < minUsernameLength {
		return nil, errors.ValidationFailed("invalid username", fmt.Sprintf("username must be at least %d characters", minUsernameLength))
	}
	if len(req.Password) < minPasswordLength {
		return nil, errors.ValidationFailed("invalid password", fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}
	if req.SecurityQuestion == "" || req.SecurityAnswer == "" {
		return nil, errors.ValidationFailed("invalid security question", "security question and answer are required")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.InternalServerError("failed to hash password")
	}
	answerHash, err := bcrypt.GenerateFromPassword([]byte(req.SecurityAnswer), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.InternalServerError("failed to hash security answer")
	}

	user := &types.User{
		Username:           req.Username,
		PasswordHash:       string(passwordHash),
		SecurityQuestion:   req.SecurityQuestion,
		SecurityAnswerHash: string(answerHash),
	}
	if err := um.store.CreateUser(ctx, user); err != nil {
		if err == store.ErrConflict {
			return nil, errors.NewConflictError("username taken", "an account with this username already exists")
		}
		return nil, errors.NewDatabaseError(err)
	}

	return um.issueToken(req.Username)
}

// Login verifies credentials behind the per-account lockout gate. Attempts
// against a locked account are rejected before any credential check, and
// every failure reports the attempts remaining until lockout.
func (um *UserModel) Login(ctx context.Context, req *types.LoginRequest) (*types.AuthResponse, error) {
	log := logger.GetLogger()

	locked, remaining, err := um.lockout.IsLocked(ctx, req.Username)
	if err != nil {
		log.Errorw("Lockout check failed", "username", req.Username, "error", err)
		return nil, errors.InternalServerError("unable to verify login attempts")
	}
	if locked {
		return nil, errors.AccountLocked(lockMinutes(remaining))
	}

	user, err := um.store.GetUser(ctx, req.Username)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, um.recordFailure(ctx, req.Username)
		}
		return nil, errors.NewDatabaseError(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, um.recordFailure(ctx, req.Username)
	}

	if err := um.lockout.Clear(ctx, req.Username); err != nil {
		log.Warnw("Failed to clear login attempts", "username", req.Username, "error", err)
	}
	return um.issueToken(user.Username)
}

// ChangePassword rotates the password using the old one as proof.
func (um *UserModel) ChangePassword(ctx context.Context, req *types.ChangePasswordRequest) error {
	if len(req.NewPassword) < minPasswordLength {
		return errors.ValidationFailed("invalid password", fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	user, err := um.store.GetUser(ctx, req.Username)
	if err != nil {
		if err == store.ErrNotFound {
			return errors.AuthenticationFailed("incorrect username or password")
		}
		return errors.NewDatabaseError(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)) != nil {
		return errors.AuthenticationFailed("incorrect username or password")
	}

	return um.updatePassword(ctx, req.Username, req.NewPassword)
}

// GetSecurityQuestion is step one of the forgot-password flow.
func (um *UserModel) GetSecurityQuestion(ctx context.Context, username string) (string, error) {
	user, err := um.store.GetUser(ctx, username)
	if err != nil {
		if err == store.ErrNotFound {
			return "", errors.NotFound("User", username)
		}
		return "", errors.NewDatabaseError(err)
	}
	return user.SecurityQuestion, nil
}

// ResetPassword is step two of the forgot-password flow: the security
// answer stands in for the old password.
func (um *UserModel) ResetPassword(ctx context.Context, req *types.ResetPasswordRequest) error {
	if len(req.NewPassword) < minPasswordLength {
		return errors.ValidationFailed("invalid password", fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	user, err := um.store.GetUser(ctx, req.Username)
	if err != nil {
		if err == store.ErrNotFound {
			return errors.AuthenticationFailed("incorrect security answer")
		}
		return errors.NewDatabaseError(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.SecurityAnswerHash), []byte(req.SecurityAnswer)) != nil {
		return errors.AuthenticationFailed("incorrect security answer")
	}

	return um.updatePassword(ctx, req.Username, req.NewPassword)
}

// GetUser returns the account behind the current session.
func (um *UserModel) GetUser(ctx context.Context, username string) (*types.User, error) {
	user, err := um.store.GetUser(ctx, username)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, errors.NotFound("User", username)
		}
		return nil, errors.NewDatabaseError(err)
	}
	return user, nil
}

func (um *UserModel) updatePassword(ctx context.Context, username, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.InternalServerError("failed to hash password")
	}
	if err := um.store.UpdatePassword(ctx, username, string(hash)); err != nil {
		return errors.NewDatabaseError(err)
	}
	return nil
}

func (um *UserModel) recordFailure(ctx context.Context, username string) error {
	remaining, err := um.lockout.RecordFailure(ctx, username)
	if err != nil {
		logger.GetLogger().Errorw("Failed to record login failure", "username", username, "error", err)
		return errors.AuthenticationFailed("incorrect username or password")
	}
	if remaining == 0 {
		return errors.AccountLocked(um.lockoutMinutes)
	}
	return errors.AuthenticationFailed(fmt.Sprintf("incorrect username or password, %d attempts remaining", remaining))
}

func (um *UserModel) issueToken(username string) (*types.AuthResponse, error) {
	token, err := auth.GenerateToken(um.secret, username, um.tokenTTL)
	if err != nil {
		return nil, errors.InternalServerError("failed to sign session token")
	}
	return &types.AuthResponse{Token: token, Username: username}, nil
}

// lockMinutes converts the remaining lock TTL to whole minutes for the
// user-facing message, rounding up so "1 minute" never means "now".
func lockMinutes(remaining time.Duration) int {
	minutes := int((remaining + time.Minute - 1) / time.Minute)
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
