package services

import (
	"context"
	"database/sql"
	"errors"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-goal-tracker/internal/logger"
	"github.com/sbilibin2017/gw-goal-tracker/internal/models"
	"github.com/sbilibin2017/gw-goal-tracker/internal/sanitize"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is a product policy enforced before hashing.
const MinPasswordLength = 6

// Error variables
var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidInput       = errors.New("invalid input values")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrMissingCredentials = errors.New("missing username or password")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingName        = errors.New("missing first or last name")
	ErrInvalidName        = errors.New("invalid first or last name")
	ErrUserNotFound       = errors.New("user not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) (*models.UserDB, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, firstName, lastName string) (*models.UserDB, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// AuthService handles registration, login and profile updates.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	jwt         JWTGenerator
	kafkaWriter KafkaWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, kafkaWriter KafkaWriter) *AuthService {
	return &AuthService{
		reader:      reader,
		writer:      writer,
		jwt:         jwt,
		kafkaWriter: kafkaWriter,
	}
}

// Register creates a new user and returns a token together with the
// public user view. Username and email must be unique.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (string, *models.User, error) {
	if username == "" || email == "" || password == "" {
		return "", nil, ErrMissingFields
	}

	sanitizedUsername := sanitize.Clean(username)
	sanitizedEmail := sanitize.Clean(email)
	sanitizedPassword := sanitize.Clean(password)

	if sanitizedUsername == "" || sanitizedEmail == "" || sanitizedPassword == "" {
		return "", nil, ErrInvalidInput
	}

	if utf8.RuneCountInString(sanitizedPassword) < MinPasswordLength {
		return "", nil, ErrPasswordTooShort
	}

	existing, err := svc.reader.GetByUsernameOrEmail(ctx, &sanitizedUsername, &sanitizedEmail)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return "", nil, err
	}
	if existing != nil {
		logger.Log.Errorw("user already exists", "username", sanitizedUsername, "email", sanitizedEmail)
		return "", nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(sanitizedPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", nil, err
	}

	user, err := svc.writer.Save(ctx, sanitizedUsername, sanitizedEmail, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return "", nil, err
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, EventUserRegistered, user.UserID.String(), "")

	return token, user.Public(), nil
}

// Login authenticates a user and returns a JWT token and the public
// user view. A missing user and a wrong password both collapse to
// ErrInvalidCredentials so the response never reveals which was wrong.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	if username == "" || password == "" {
		return "", nil, ErrMissingCredentials
	}

	sanitizedUsername := sanitize.Clean(username)
	sanitizedPassword := sanitize.Clean(password)

	if sanitizedUsername == "" || sanitizedPassword == "" {
		return "", nil, ErrInvalidInput
	}

	user, err := svc.reader.GetByUsernameOrEmail(ctx, &sanitizedUsername, nil)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", sanitizedUsername)
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(sanitizedPassword)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", sanitizedUsername)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, user.Public(), nil
}

// UpdateProfile sets the first and last name of the authenticated user.
func (svc *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, firstName, lastName string) (*models.User, error) {
	if firstName == "" || lastName == "" {
		return nil, ErrMissingName
	}

	sanitizedFirstName := sanitize.Clean(firstName)
	sanitizedLastName := sanitize.Clean(lastName)

	if sanitizedFirstName == "" || sanitizedLastName == "" {
		return nil, ErrInvalidName
	}

	user, err := svc.writer.UpdateProfile(ctx, userID, sanitizedFirstName, sanitizedLastName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Log.Errorw("user not found", "userID", userID)
			return nil, ErrUserNotFound
		}
		logger.Log.Errorw("failed to update profile", "userID", userID, "err", err)
		return nil, err
	}

	return user.Public(), nil
}
