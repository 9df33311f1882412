package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"bakery/pkg/domain/model"
)

const (
	minPasswordLength = 5
	maxPasswordLength = 16
)

type TokenIssuer interface {
	Issue(userID int64) (string, error)
}

type Registration struct {
	FirstName string
	LastName  string
	Address   string
	Email     string
	Password  string
}

type UserService interface {
	Register(ctx context.Context, reg Registration) (*model.User, error)
	Login(ctx context.Context, email, password string) (string, *model.User, error)
	ResolveSubject(ctx context.Context, userID int64) (model.Subject, error)
}

func NewUserService(
	repo model.UserRepository,
	passManager model.PasswordManager,
	tokens TokenIssuer,
	dispatcher EventDispatcher,
) UserService {
	return &userService{
		repo:        repo,
		passManager: passManager,
		tokens:      tokens,
		dispatcher:  dispatcher,
	}
}

type userService struct {
	repo        model.UserRepository
	passManager model.PasswordManager
	tokens      TokenIssuer
	dispatcher  EventDispatcher
}

func (s *userService) Register(ctx context.Context, reg Registration) (*model.User, error) {
	if err := validateRegistration(reg); err != nil {
		return nil, err
	}

	hashedPassword, err := s.passManager.Hash(reg.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FirstName:      reg.FirstName,
		LastName:       reg.LastName,
		Address:        reg.Address,
		Email:          reg.Email,
		HashedPassword: hashedPassword,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Dispatch(model.UserRegistered{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
	})
	return user, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, model.ErrUserNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	ok, err := s.passManager.Check(user.HashedPassword, password)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ResolveSubject loads the admin flag of an authenticated user once per request.
func (s *userService) ResolveSubject(ctx context.Context, userID int64) (model.Subject, error) {
	user, err := s.repo.Find(ctx, userID)
	if err != nil {
		return model.Subject{}, err
	}
	return model.Subject{ID: user.ID, IsAdmin: user.IsAdmin}, nil
}

func validateRegistration(reg Registration) error {
	if err := validateRequired("first_name", reg.FirstName); err != nil {
		return err
	}
	if err := validateRequired("last_name", reg.LastName); err != nil {
		return err
	}
	if err := validateRequired("email", reg.Email); err != nil {
		return err
	}
	if !strings.Contains(reg.Email, "@") {
		return newValidationError("email", ErrInvalidFormat, "email is not a valid address")
	}
	if n := len(reg.Password); n < minPasswordLength || n > maxPasswordLength {
		return newValidationError("password", ErrOutOfRange,
			fmt.Sprintf("password must be between %d and %d characters", minPasswordLength, maxPasswordLength))
	}
	for _, r := range reg.Password {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return newValidationError("password", ErrInvalidFormat, "password can only contain letters and numbers")
		}
	}
	return nil
}
