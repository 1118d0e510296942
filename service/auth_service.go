// service/auth_service.go
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/clinova/api/auth"
	"github.com/clinova/api/dao"
	clinova_errors "github.com/clinova/api/errors"
	logger "github.com/clinova/api/logging"
	"github.com/clinova/api/model"
	"github.com/clinova/api/util"
)

// IAuthService defines the four identity-establishing operations.
type IAuthService interface {
	Register(ctx context.Context, input model.RegisterInput) (*model.User, error)
	Login(ctx context.Context, input model.LoginInput) (*model.LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	OAuthLogin(ctx context.Context, code string) (*model.LoginResult, error)
}

// AuthService orchestrates the credential store, the token codec, the
// password hasher and the OAuth code exchanger.
type AuthService struct {
	userDAO        dao.UserDAO
	codec          *auth.TokenCodec
	hasher         auth.PasswordHasher
	exchanger      auth.CodeExchanger
	validationUtil *util.ValidationUtil
}

var _ IAuthService = &AuthService{}

func NewAuthService(
	userDAO dao.UserDAO,
	codec *auth.TokenCodec,
	hasher auth.PasswordHasher,
	exchanger auth.CodeExchanger,
	validationUtil *util.ValidationUtil,
) *AuthService {
	return &AuthService{
		userDAO:        userDAO,
		codec:          codec,
		hasher:         hasher,
		exchanger:      exchanger,
		validationUtil: validationUtil,
	}
}

// Register validates every rule before touching the store, rejects duplicate
// emails, hashes the password and persists a new local identity.
func (s *AuthService) Register(ctx context.Context, input model.RegisterInput) (*model.User, error) {
	if violations := s.validationUtil.ValidateRegistration(input); len(violations) > 0 {
		return nil, clinova_errors.ValidationFailed(violations)
	}
	role, _ := model.ParseRole(input.Role)

	_, err := s.userDAO.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, clinova_errors.ErrUserExists
	}
	if !errors.Is(err, clinova_errors.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		logger.Error("Failed to hash password", zap.Error(err))
		return nil, clinova_errors.Internal(err)
	}

	user := model.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
		OAuthOrigin:  false,
	}
	userID, err := s.userDAO.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID
	user.PasswordHash = ""

	logger.Info("User registered",
		zap.String("userID", userID),
		zap.String("role", string(role)))
	return &user, nil
}

// Login authenticates email + password and mints both token kinds. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, input model.LoginInput) (*model.LoginResult, error) {
	user, err := s.userDAO.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, clinova_errors.ErrUserNotFound) {
			return nil, clinova_errors.ErrInvalidCredentials
		}
		return nil, err
	}

	// OAuth-provisioned accounts carry no password hash and cannot log in locally.
	if user.PasswordHash == "" || !s.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, clinova_errors.ErrInvalidCredentials
	}

	return s.issueTokenPair(user)
}

// Refresh exchanges a valid refresh token for a new access token carrying the
// same {id, role}. The refresh token itself is not rotated: it stays valid
// until its own expiry.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.codec.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", clinova_errors.ErrSessionExpired
	}

	identity, err := claims.Identity()
	if err != nil {
		return "", clinova_errors.ErrSessionExpired
	}

	accessToken, err := s.codec.IssueAccessToken(identity.UserID, identity.Role)
	if err != nil {
		logger.Error("Failed to issue access token", zap.Error(err))
		return "", clinova_errors.Internal(err)
	}

	logger.Info("Access token refreshed", zap.String("userID", identity.UserID))
	return accessToken, nil
}

// OAuthLogin exchanges the authorization code with the external provider and
// upserts the identity by email. New accounts are provisioned with role
// doctor and no password hash; existing accounts are reused as-is, their role
// untouched.
func (s *AuthService) OAuthLogin(ctx context.Context, code string) (*model.LoginResult, error) {
	profile, err := s.exchanger.Exchange(ctx, code)
	if err != nil {
		logger.Error("OAuth code exchange failed", zap.Error(err))
		return nil, clinova_errors.ErrProvider.WithErr(err)
	}

	user, err := s.userDAO.GetByEmail(ctx, profile.Email)
	if errors.Is(err, clinova_errors.ErrUserNotFound) {
		newUser := model.User{
			Name:        profile.Name,
			Email:       profile.Email,
			Role:        model.RoleDoctor,
			OAuthOrigin: true,
		}
		userID, createErr := s.userDAO.Create(ctx, newUser)
		if createErr != nil {
			return nil, createErr
		}
		newUser.ID = userID
		user = &newUser
		logger.Info("OAuth user provisioned",
			zap.String("userID", userID),
			zap.String("role", string(newUser.Role)))
	} else if err != nil {
		return nil, err
	}

	return s.issueTokenPair(user)
}

func (s *AuthService) issueTokenPair(user *model.User) (*model.LoginResult, error) {
	accessToken, err := s.codec.IssueAccessToken(user.ID, user.Role)
	if err != nil {
		logger.Error("Failed to issue access token", zap.Error(err))
		return nil, clinova_errors.Internal(err)
	}
	refreshToken, err := s.codec.IssueRefreshToken(user.ID, user.Role)
	if err != nil {
		logger.Error("Failed to issue refresh token", zap.Error(err))
		return nil, clinova_errors.Internal(err)
	}

	logger.Info("Tokens issued", zap.String("userID", user.ID))
	return &model.LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}
