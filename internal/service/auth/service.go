package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/nexocrm/crm-backend-go/internal/domain/auth"
	"github.com/nexocrm/crm-backend-go/internal/domain/company"
	"github.com/nexocrm/crm-backend-go/internal/domain/employee"
	"github.com/nexocrm/crm-backend-go/internal/domain/user"
	"github.com/nexocrm/crm-backend-go/internal/pkg/database"
	"github.com/nexocrm/crm-backend-go/internal/pkg/jwt"
	"github.com/nexocrm/crm-backend-go/internal/pkg/oauth"
	"github.com/nexocrm/crm-backend-go/internal/repository/postgresql"
)

type AuthServiceImpl struct {
	db            *database.DB
	userRepo      user.UserRepository
	companyRepo   company.CompanyRepository
	employeeRepo  employee.EmployeeRepository
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

func NewAuthService(
	db *database.DB,
	userRepo user.UserRepository,
	companyRepo company.CompanyRepository,
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
) auth.AuthService {
	return &AuthServiceImpl{
		db:            db,
		userRepo:      userRepo,
		companyRepo:   companyRepo,
		employeeRepo:  employeeRepo,
		jwtService:    jwtService,
		googleService: googleService,
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// RegisterCompany implements auth.AuthService.
func (a *AuthServiceImpl) RegisterCompany(ctx context.Context, req auth.RegisterCompanyRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	exists, err := a.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return auth.TokenResponse{}, user.ErrUserEmailExists
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var createdUser user.User
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		createdUser, err = a.userRepo.Create(txCtx, user.User{
			ID:           uuid.NewString(),
			Email:        req.Email,
			PasswordHash: &passwordHash,
			Name:         req.Name,
			Role:         user.RoleCompanyAdmin,
		})
		if err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		var address *string
		if req.Address != "" {
			address = &req.Address
		}
		createdCompany, err := a.companyRepo.Create(txCtx, company.Company{
			ID:       uuid.NewString(),
			Name:     req.CompanyName,
			Email:    req.Email,
			Phone:    req.Phone,
			Address:  address,
			OwnerID:  createdUser.ID,
			Verify:   company.VerifyPending,
			IsActive: true,
		})
		if err != nil {
			return fmt.Errorf("failed to create company: %w", err)
		}

		if err := a.userRepo.UpdateCompany(txCtx, createdUser.ID, createdCompany.ID); err != nil {
			return fmt.Errorf("failed to attach company to admin user: %w", err)
		}
		createdUser.CompanyID = &createdCompany.ID
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return a.issueTokens(createdUser)
}

// RegisterEmployee implements auth.AuthService.
func (a *AuthServiceImpl) RegisterEmployee(ctx context.Context, req auth.RegisterEmployeeRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	if _, err := a.companyRepo.GetByID(ctx, req.CompanyID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.TokenResponse{}, company.ErrCompanyNotFound
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get company: %w", err)
	}

	exists, err := a.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return auth.TokenResponse{}, user.ErrUserEmailExists
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var createdUser user.User
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		createdUser, err = a.userRepo.Create(txCtx, user.User{
			ID:           uuid.NewString(),
			CompanyID:    &req.CompanyID,
			Email:        req.Email,
			PasswordHash: &passwordHash,
			Name:         req.Name,
			Role:         user.RoleEmployee,
		})
		if err != nil {
			return fmt.Errorf("failed to create employee user: %w", err)
		}

		_, err = a.employeeRepo.Create(txCtx, employee.Employee{
			ID:          uuid.NewString(),
			UserID:      createdUser.ID,
			CompanyID:   req.CompanyID,
			Designation: req.Designation,
			Verify:      employee.VerifyPending,
			IsActive:    true,
		})
		if err != nil {
			return fmt.Errorf("failed to create employee record: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return a.issueTokens(createdUser)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(userData)
}

// LoginWithGoogle implements auth.AuthService. The account must already
// exist; a Google login never provisions a user on its own because every
// user belongs to a tenant chosen at registration time.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string) (auth.TokenResponse, error) {
	token, err := a.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrOAuthExchangeFailed
	}

	info, err := a.googleService.VerifyUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrOAuthExchangeFailed
	}

	userData, err := a.userRepo.GetByOAuthProviderID(ctx, "google", info.GoogleID)
	if err == nil {
		return a.issueTokens(userData)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by oauth id: %w", err)
	}

	// First Google sign-in for an existing password account: link them.
	userData, err = a.userRepo.LinkGoogleAccount(ctx, info.GoogleID, info.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.TokenResponse{}, auth.ErrOAuthNotLinked
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to link google account: %w", err)
	}

	return a.issueTokens(userData)
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (auth.AccessTokenResponse, error) {
	if a.jwtService.IsTokenRevoked(refreshToken) {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userID, err := a.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenInvalid
	}

	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.AccessTokenResponse{}, auth.ErrRefreshTokenInvalid
		}
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	accessToken, expiresAt, err := a.jwtService.GenerateAccessToken(userData.ID, userData.Email, userData.CompanyID, userData.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.AccessTokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: expiresAt,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	a.jwtService.RevokeToken(refreshToken)
	return nil
}

// Profile implements auth.AuthService.
func (a *AuthServiceImpl) Profile(ctx context.Context, userID string) (user.UserResponse, error) {
	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user.ToResponse(userData), nil
}

func (a *AuthServiceImpl) issueTokens(userData user.User) (auth.TokenResponse, error) {
	var resp auth.TokenResponse
	var err error

	resp.AccessToken, resp.AccessTokenExpiresIn, err = a.jwtService.GenerateAccessToken(
		userData.ID, userData.Email, userData.CompanyID, userData.Role,
	)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	resp.RefreshToken, resp.RefreshTokenExpiresIn, err = a.jwtService.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}
	return resp, nil
}
