package services

import (
	"context"
	"log"
	"net/mail"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"traveleon/internal/models"
	"traveleon/utils"
)

const (
	tokenTTL   = 20 * time.Hour
	sessionTTL = 24 * 30 * 2 * time.Hour
)

// UserStore is the slice of the user repository the service needs; narrow
// so the sign-up and sign-in flows can be tested against fakes.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, id int) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateAvatar(ctx context.Context, userID int, avatarURL string) error
	SetSession(ctx context.Context, userID int, session models.Session) error
	UserLogOut(ctx context.Context, userID int) error
	SetDeviceToken(ctx context.Context, userID int, token string) error
}

type UserService struct {
	UserRepo     UserStore
	TokenManager *utils.Manager
	SigningKey   string
}

func (s *UserService) SignUp(ctx context.Context, req models.SignUpRequest) (models.SignUpResponse, error) {
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return models.SignUpResponse{}, models.ErrInvalidEmail
	}

	existing, err := s.UserRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return models.SignUpResponse{}, err
	}
	if existing.Email != "" {
		return models.SignUpResponse{}, models.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.SignUpResponse{}, err
	}

	user := models.User{
		Name:           req.Name,
		Email:          req.Email,
		PassportNumber: req.PassportNumber,
		Password:       string(hashedPassword),
		Role:           models.RoleBuyer,
	}

	user, err = s.UserRepo.CreateUser(ctx, user)
	if err != nil {
		return models.SignUpResponse{}, err
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return models.SignUpResponse{}, err
	}

	user.Password = ""
	return models.SignUpResponse{User: user, Tokens: tokens}, nil
}

// SignIn maps every failure to one of the fixed sentinel errors so the
// handler can surface the matching user-facing message.
func (s *UserService) SignIn(ctx context.Context, email, password string) (models.Tokens, error) {
	if _, err := mail.ParseAddress(strings.TrimSpace(email)); err != nil {
		return models.Tokens{}, models.ErrInvalidEmail
	}

	user, err := s.UserRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return models.Tokens{}, err
	}
	if user.ID == 0 {
		return models.Tokens{}, models.ErrUserNotFound
	}
	if user.Disabled {
		return models.Tokens{}, models.ErrUserDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Printf("Invalid password for user: %s", email)
		return models.Tokens{}, models.ErrInvalidPassword
	}

	return s.issueTokens(ctx, user)
}

func (s *UserService) issueTokens(ctx context.Context, user models.User) (models.Tokens, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Claims{
		UserID: uint(user.ID),
		Role:   user.Role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(tokenTTL).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	})

	accessToken, err := token.SignedString([]byte(s.SigningKey))
	if err != nil {
		log.Printf("Error signing token: %v", err)
		return models.Tokens{}, err
	}

	var res models.Tokens
	res.AccessToken = accessToken

	res.RefreshToken = uuid.New().String() // fallback if TokenManager is unavailable
	if s.TokenManager != nil {
		res.RefreshToken, err = s.TokenManager.NewRefreshToken()
		if err != nil {
			return res, err
		}
	}

	session := models.Session{
		RefreshToken: res.RefreshToken,
		ExpiresAt:    time.Now().Add(sessionTTL),
	}
	if err := s.UserRepo.SetSession(ctx, user.ID, session); err != nil {
		return res, err
	}

	return res, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (models.User, error) {
	user, err := s.UserRepo.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID int, req models.UpdateProfileRequest) (models.User, error) {
	user, err := s.UserRepo.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.PassportNumber != "" {
		user.PassportNumber = req.PassportNumber
	}
	if req.Avatar != nil {
		user.Avatar = req.Avatar
	}

	updated, err := s.UserRepo.UpdateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	updated.Password = ""
	return updated, nil
}

func (s *UserService) UpdateAvatar(ctx context.Context, userID int, avatarURL string) error {
	return s.UserRepo.UpdateAvatar(ctx, userID, avatarURL)
}

func (s *UserService) UserLogOut(ctx context.Context, userID int) error {
	return s.UserRepo.UserLogOut(ctx, userID)
}

func (s *UserService) RegisterDeviceToken(ctx context.Context, userID int, token string) error {
	return s.UserRepo.SetDeviceToken(ctx, userID, token)
}
