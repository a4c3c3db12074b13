package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/cinelog/cinelog-backend/config"
	"github.com/cinelog/cinelog-backend/internal/app/model"
	"github.com/cinelog/cinelog-backend/internal/app/repository"
	apperrors "github.com/cinelog/cinelog-backend/internal/errors"
	"github.com/cinelog/cinelog-backend/pkg/logger"
	"github.com/cinelog/cinelog-backend/pkg/redis"
	"github.com/cinelog/cinelog-backend/pkg/util"
)

var (
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrEmailAlreadyExists    = errors.New("email already in use")
	ErrUsernameAlreadyExists = errors.New("username already in use")
	ErrUserNotFound          = errors.New("user not found")
	ErrResetTokenInvalid     = errors.New("reset token is invalid")
	ErrResetTokenExpired     = errors.New("reset token has expired or been used")
)

const resetTokenTTL = 30 * time.Minute

type AuthService interface {
	Register(req *model.RegisterRequest) (*model.User, error)
	Login(req *model.LoginRequest) (*model.User, *util.TokenPair, error)
	Logout(ctx context.Context, token string) error
	GetMe(userID uint) (*model.User, error)
	UpdateMe(userID uint, req *model.UpdateMeRequest) (*model.User, error)
	ForgotPassword(email string) (string, error)
	ResetPassword(req *model.ResetPasswordRequest) error
}

type authService struct {
	userRepo  repository.UserRepository
	resetRepo repository.PasswordResetRepository
	jwtCfg    *config.JWTConfig
}

func NewAuthService(userRepo repository.UserRepository, resetRepo repository.PasswordResetRepository, jwtCfg *config.JWTConfig) AuthService {
	return &authService{
		userRepo:  userRepo,
		resetRepo: resetRepo,
		jwtCfg:    jwtCfg,
	}
}

func (s *authService) Register(req *model.RegisterRequest) (*model.User, error) {
	hash, err := util.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         model.RoleUser,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.IsDuplicateKey(err) {
			info := apperrors.ParseError(err, "user")
			if info.Code == apperrors.AuthUsernameExists {
				return nil, ErrUsernameAlreadyExists
			}
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	logger.Info("user registered", map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return user, nil
}

func (s *authService) Login(req *model.LoginRequest) (*model.User, *util.TokenPair, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !util.VerifyPassword(user.PasswordHash, req.Password) {
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := util.GenerateTokenPair(user.ID, user.Username, string(user.Role),
		s.jwtCfg.Secret, s.jwtCfg.AccessTokenExpiry, s.jwtCfg.RefreshTokenExpiry)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// Logout blacklists the presented access token for the remainder of its
// lifetime.
func (s *authService) Logout(ctx context.Context, token string) error {
	return redis.RevokeToken(ctx, token, s.jwtCfg.AccessTokenExpiry)
}

func (s *authService) GetMe(userID uint) (*model.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) UpdateMe(userID uint, req *model.UpdateMeRequest) (*model.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := util.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(user); err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

// ForgotPassword issues a reset token for the account behind email. The
// token is returned to the caller for delivery; any previous tokens for
// the same user are dropped.
func (s *authService) ForgotPassword(email string) (string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	if err := s.resetRepo.DeleteForUser(user.ID); err != nil {
		return "", err
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	token := hex.EncodeToString(raw)

	reset := &model.PasswordReset{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := s.resetRepo.Create(reset); err != nil {
		return "", err
	}

	logger.Info("password reset issued", map[string]interface{}{"user_id": user.ID})
	return token, nil
}

func (s *authService) ResetPassword(req *model.ResetPasswordRequest) error {
	reset, err := s.resetRepo.GetByToken(req.Token)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return ErrResetTokenInvalid
		}
		return err
	}

	if reset.Used || reset.IsExpired() {
		return ErrResetTokenExpired
	}

	user, err := s.userRepo.GetByID(reset.UserID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return ErrResetTokenInvalid
		}
		return err
	}

	hash, err := util.HashPassword(req.Password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash

	if err := s.userRepo.Update(user); err != nil {
		return err
	}
	return s.resetRepo.MarkUsed(reset.ID)
}
