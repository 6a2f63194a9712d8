package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/credential"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
	generator  *credential.Generator
	bcryptCost int
	now        func() time.Time

	// signupMu makes the roster count and the insert a single step.
	signupMu sync.Mutex
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service, generator *credential.Generator, bcryptCost int) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
		generator:      generator,
		bcryptCost:     bcryptCost,
		now:            time.Now,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, session *auth.Session, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByIdentifier(ctx, strings.TrimSpace(req.Identifier))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by identifier: %w", err)
	}

	if len(req.Password) < auth.MinPasswordLength {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	accessToken, expiresAt, err := a.Service.GenerateAccessToken(userData.ID, userData.EmployeeID, userData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	session.Bind(userData)

	return auth.TokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: expiresAt,
		User:                 user.NewUserResponse(userData),
	}, nil
}

// Signup implements auth.AuthService.
func (a *AuthServiceImpl) Signup(ctx context.Context, session *auth.Session, req auth.SignupRequest) (auth.SignupResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.SignupResponse{}, err
	}

	role, err := user.ParseRole(req.Role)
	if err != nil {
		return auth.SignupResponse{}, err
	}
	if role == user.RoleEmployee && !session.Can(user.PermissionEmployeeManage) {
		return auth.SignupResponse{}, user.ErrSelfRegistrationNotAllowed
	}

	a.signupMu.Lock()
	defer a.signupMu.Unlock()

	count, err := a.UserRepository.Count(ctx)
	if err != nil {
		return auth.SignupResponse{}, fmt.Errorf("failed to count users: %w", err)
	}

	creds := a.generator.Generate(req.CompanyName, req.Name, count)

	passwordHash, err := a.hashPassword(creds.TempPassword)
	if err != nil {
		return auth.SignupResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return auth.SignupResponse{}, fmt.Errorf("failed to generate user id: %w", err)
	}

	now := a.now()
	newUser := user.User{
		ID:           id.String(),
		EmployeeID:   creds.LoginID,
		Email:        strings.TrimSpace(req.Email),
		Name:         strings.TrimSpace(req.Name),
		Role:         role,
		Department:   user.DefaultDepartment,
		Designation:  role.DefaultDesignation(),
		JoinDate:     now,
		PasswordHash: passwordHash,
		CreatedAt:    now,
	}

	created, err := a.UserRepository.Create(ctx, newUser)
	if err != nil {
		return auth.SignupResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return auth.SignupResponse{
		Credentials: auth.Credentials{
			LoginID:      creds.LoginID,
			TempPassword: creds.TempPassword,
		},
		User: user.NewUserResponse(created),
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, session *auth.Session, token string) error {
	session.Clear()
	if token != "" {
		a.Service.RevokeToken(token)
	}
	return nil
}

// Resume implements auth.AuthService.
func (a *AuthServiceImpl) Resume(ctx context.Context, userID string) (*auth.Session, error) {
	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, auth.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return auth.NewSessionFor(userData), nil
}
