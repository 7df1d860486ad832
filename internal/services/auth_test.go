package services_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-goal-tracker/internal/models"
	"github.com/sbilibin2017/gw-goal-tracker/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		username     string
		email        string
		password     string
		lookupCalled bool
		existingUser *models.UserDB
		readerErr    error
		saveCalled   bool
		savedUser    *models.UserDB
		writerErr    error
		wantErr      error
	}{
		{
			name:         "successful registration",
			username:     "alice",
			email:        "a@b.com",
			password:     "secret1",
			lookupCalled: true,
			saveCalled:   true,
			savedUser: &models.UserDB{
				UserID:   userID,
				Username: "alice",
				Email:    "a@b.com",
			},
		},
		{
			name:     "missing fields",
			username: "alice",
			email:    "",
			password: "secret1",
			wantErr:  services.ErrMissingFields,
		},
		{
			name:     "whitespace-only username",
			username: "   ",
			email:    "a@b.com",
			password: "secret1",
			wantErr:  services.ErrInvalidInput,
		},
		{
			name:     "short password",
			username: "alice",
			email:    "a@b.com",
			password: "five5",
			wantErr:  services.ErrPasswordTooShort,
		},
		{
			name:         "user already exists",
			username:     "bob",
			email:        "bob@example.com",
			password:     "secret1",
			lookupCalled: true,
			existingUser: &models.UserDB{UserID: uuid.New()},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:         "reader error",
			username:     "eve",
			email:        "eve@example.com",
			password:     "secret1",
			lookupCalled: true,
			readerErr:    errors.New("db error"),
			wantErr:      errors.New("db error"),
		},
		{
			name:         "writer error",
			username:     "carol",
			email:        "carol@example.com",
			password:     "secret1",
			lookupCalled: true,
			saveCalled:   true,
			writerErr:    errors.New("save error"),
			wantErr:      errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)

			svc := services.NewAuthService(mockReader, mockWriter, mockJWT, nil)

			if tt.lookupCalled {
				mockReader.EXPECT().
					GetByUsernameOrEmail(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(tt.existingUser, tt.readerErr)
			}
			if tt.saveCalled {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.username, tt.email, gomock.Any()).
					Return(tt.savedUser, tt.writerErr)
			}
			if tt.savedUser != nil && tt.writerErr == nil {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.savedUser.UserID).
					Return("token123", nil)
			}

			token, user, err := svc.Register(context.Background(), tt.username, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "token123", token)
				assert.Equal(t, userID.String(), user.ID)
				assert.Empty(t, user.FirstName)
				assert.Empty(t, user.LastName)
			}
		})
	}
}

func TestAuthService_Register_SanitizesInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, nil)

	userID := uuid.New()
	sanitized := "&lt;alice&gt;"

	mockReader.EXPECT().
		GetByUsernameOrEmail(gomock.Any(), &sanitized, gomock.Any()).
		Return(nil, nil)
	mockWriter.EXPECT().
		Save(gomock.Any(), sanitized, "a@b.com", gomock.Any()).
		Return(&models.UserDB{UserID: userID, Username: sanitized, Email: "a@b.com"}, nil)
	mockJWT.EXPECT().
		Generate(gomock.Any(), userID).
		Return("token123", nil)

	_, user, err := svc.Register(context.Background(), "<alice>", "a@b.com", "secret1")
	assert.NoError(t, err)
	assert.Equal(t, sanitized, user.Username)
}

func TestAuthService_Register_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockKafka)

	userID := uuid.New()

	mockReader.EXPECT().
		GetByUsernameOrEmail(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	mockWriter.EXPECT().
		Save(gomock.Any(), "alice", "a@b.com", gomock.Any()).
		Return(&models.UserDB{UserID: userID, Username: "alice", Email: "a@b.com"}, nil)
	mockJWT.EXPECT().
		Generate(gomock.Any(), userID).
		Return("token123", nil)
	mockKafka.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		Return(nil)

	_, _, err := svc.Register(context.Background(), "alice", "a@b.com", "secret1")
	assert.NoError(t, err)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	password := "secret1"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userID := uuid.New()

	tests := []struct {
		name         string
		username     string
		password     string
		lookupCalled bool
		user         *models.UserDB
		readerErr    error
		wantToken    string
		wantErr      error
	}{
		{
			name:         "successful login",
			username:     "alice",
			password:     password,
			lookupCalled: true,
			user:         &models.UserDB{UserID: userID, Username: "alice", PasswordHash: string(hashed)},
			wantToken:    "token123",
		},
		{
			name:     "missing password",
			username: "alice",
			password: "",
			wantErr:  services.ErrMissingCredentials,
		},
		{
			name:     "whitespace-only username",
			username: "  ",
			password: password,
			wantErr:  services.ErrInvalidInput,
		},
		{
			name:         "nonexistent user",
			username:     "ghost",
			password:     password,
			lookupCalled: true,
			user:         nil,
			wantErr:      services.ErrInvalidCredentials,
		},
		{
			name:         "wrong password",
			username:     "alice",
			password:     "wrongpass",
			lookupCalled: true,
			user:         &models.UserDB{UserID: userID, Username: "alice", PasswordHash: string(hashed)},
			wantErr:      services.ErrInvalidCredentials,
		},
		{
			name:         "reader error",
			username:     "alice",
			password:     password,
			lookupCalled: true,
			readerErr:    errors.New("db error"),
			wantErr:      errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)

			svc := services.NewAuthService(mockReader, mockWriter, mockJWT, nil)

			if tt.lookupCalled {
				mockReader.EXPECT().
					GetByUsernameOrEmail(gomock.Any(), &tt.username, gomock.Nil()).
					Return(tt.user, tt.readerErr)
			}
			if tt.wantErr == nil {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.UserID).
					Return(tt.wantToken, nil)
			}

			token, user, err := svc.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
				assert.Equal(t, tt.user.UserID.String(), user.ID)
			}
		})
	}
}

// A missing user and a wrong password must surface the same error, so
// the response can never reveal which one was wrong.
func TestAuthService_Login_NoCredentialLeak(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("rightpass"), bcrypt.DefaultCost)

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, nil)

	mockReader.EXPECT().
		GetByUsernameOrEmail(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(nil, nil)
	_, _, errMissingUser := svc.Login(context.Background(), "ghost", "whatever")

	mockReader.EXPECT().
		GetByUsernameOrEmail(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(&models.UserDB{UserID: uuid.New(), PasswordHash: string(hashed)}, nil)
	_, _, errWrongPassword := svc.Login(context.Background(), "alice", "wrongpass")

	assert.Equal(t, errMissingUser, errWrongPassword)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		firstName    string
		lastName     string
		updateCalled bool
		updatedUser  *models.UserDB
		writerErr    error
		wantErr      error
	}{
		{
			name:         "successful update",
			firstName:    "John",
			lastName:     "Doe",
			updateCalled: true,
			updatedUser: &models.UserDB{
				UserID:    userID,
				Username:  "john_doe",
				FirstName: "John",
				LastName:  "Doe",
			},
		},
		{
			name:      "missing last name",
			firstName: "John",
			lastName:  "",
			wantErr:   services.ErrMissingName,
		},
		{
			name:      "whitespace-only first name",
			firstName: "   ",
			lastName:  "Doe",
			wantErr:   services.ErrInvalidName,
		},
		{
			name:         "user not found",
			firstName:    "John",
			lastName:     "Doe",
			updateCalled: true,
			writerErr:    sql.ErrNoRows,
			wantErr:      services.ErrUserNotFound,
		},
		{
			name:         "writer error",
			firstName:    "John",
			lastName:     "Doe",
			updateCalled: true,
			writerErr:    errors.New("db error"),
			wantErr:      errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)

			svc := services.NewAuthService(mockReader, mockWriter, mockJWT, nil)

			if tt.updateCalled {
				mockWriter.EXPECT().
					UpdateProfile(gomock.Any(), userID, tt.firstName, tt.lastName).
					Return(tt.updatedUser, tt.writerErr)
			}

			user, err := svc.UpdateProfile(context.Background(), userID, tt.firstName, tt.lastName)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.firstName, user.FirstName)
				assert.Equal(t, tt.lastName, user.LastName)
			}
		})
	}
}
