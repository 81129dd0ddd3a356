package service

import (
	"context"
	"time"

	"fittrack/internal/models"
	"fittrack/internal/observability"
	"fittrack/internal/repository"
	"fittrack/internal/token"
	"fittrack/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when login hits an unknown email so the
// request costs a bcrypt verification either way.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

type AuthService struct {
	users  repository.UserRepository
	tokens *token.Manager
}

type RegisterInput struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileInput carries optional profile changes; nil fields are left
// untouched.
type UpdateProfileInput struct {
	UserID        uint
	FullName      *string  `json:"full_name"`
	ProfilePic    *string  `json:"profile_pic"`
	Age           *int     `json:"age"`
	Gender        *string  `json:"gender"`
	WeightKg      *float64 `json:"weight"`
	HeightCm      *float64 `json:"height"`
	ActivityLevel *string  `json:"activity_level"`
}

// Session is an issued token together with the account it belongs to.
type Session struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func NewAuthService(users repository.UserRepository, tokens *token.Manager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates an account and signs the new user in. No preferences row
// is created here; defaults materialize on first preferences read.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	if err := validation.ValidateFullName(in.FullName); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	existing, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		FullName: in.FullName,
		Email:    in.Email,
		Password: string(hashed),
	}
	// A concurrent signup with the same email loses here on the unique index.
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	raw, err := s.tokens.Issue(user.ID, token.DefaultTTL)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	observability.SessionsIssued.WithLabelValues("signup").Inc()

	return &Session{Token: raw, User: user}, nil
}

// Authenticate verifies credentials and issues a session token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *AuthService) Authenticate(ctx context.Context, creds Credentials) (*Session, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, models.NewValidationError("Email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, creds.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Burn a comparison anyway so the miss is not observable by timing.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(creds.Password))
		return nil, models.NewUnauthenticatedError("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		return nil, models.NewUnauthenticatedError("Invalid credentials")
	}

	now := time.Now()
	user.LastActiveAt = &now
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	raw, err := s.tokens.Issue(user.ID, token.DefaultTTL)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	observability.SessionsIssued.WithLabelValues("login").Inc()

	return &Session{Token: raw, User: user}, nil
}

// ValidateSession verifies a bearer token and resolves the account it was
// issued for. Expired and malformed tokens both come back as
// UnauthenticatedError, with the token error kept as the wrapped cause for
// logging. A well-signed token whose user id no longer resolves is NotFound;
// the token alone must not authorize writes for a deleted account.
func (s *AuthService) ValidateSession(ctx context.Context, raw string) (*models.User, error) {
	userID, err := s.tokens.Verify(raw)
	if err != nil {
		return nil, &models.AppError{
			Code:    models.CodeUnauthenticated,
			Message: "Invalid or expired token",
			Err:     err,
		}
	}
	return s.users.GetByID(ctx, userID)
}

// Me returns the authenticated user's account.
func (s *AuthService) Me(ctx context.Context, userID uint) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}

// HasChanges reports whether any updatable field was provided.
func (in UpdateProfileInput) HasChanges() bool {
	return in.FullName != nil || in.ProfilePic != nil || in.Age != nil ||
		in.Gender != nil || in.WeightKg != nil || in.HeightCm != nil ||
		in.ActivityLevel != nil
}

// UpdateProfile applies the non-nil fields of in to the user's profile.
// Email and password are not reachable through this path.
func (s *AuthService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	if !in.HasChanges() {
		return nil, models.NewValidationError("No profile fields provided")
	}

	user, err := s.users.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.FullName != nil {
		if err := validation.ValidateFullName(*in.FullName); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.FullName = *in.FullName
	}
	if in.ProfilePic != nil {
		user.ProfilePic = *in.ProfilePic
	}
	if in.Age != nil {
		if *in.Age < 1 || *in.Age > 150 {
			return nil, models.NewValidationError("Age must be between 1 and 150")
		}
		user.Age = in.Age
	}
	if in.Gender != nil {
		if *in.Gender != models.GenderMale && *in.Gender != models.GenderFemale {
			return nil, models.NewValidationError("Gender must be male or female")
		}
		user.Gender = in.Gender
	}
	if in.WeightKg != nil {
		if *in.WeightKg <= 0 || *in.WeightKg > 500 {
			return nil, models.NewValidationError("Weight must be between 0 and 500 kg")
		}
		user.WeightKg = in.WeightKg
	}
	if in.HeightCm != nil {
		if *in.HeightCm <= 0 || *in.HeightCm > 300 {
			return nil, models.NewValidationError("Height must be between 0 and 300 cm")
		}
		user.HeightCm = in.HeightCm
	}
	if in.ActivityLevel != nil {
		switch *in.ActivityLevel {
		case models.ActivityLow, models.ActivityModerate, models.ActivityHigh:
			user.ActivityLevel = in.ActivityLevel
		default:
			return nil, models.NewValidationError("Activity level must be low, moderate, or high")
		}
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
