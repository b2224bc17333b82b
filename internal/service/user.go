package service

import (
	"time"

	"github.com/cinelog/cinelog/internal/model"
	"github.com/cinelog/cinelog/internal/repository"
)

type UserService struct {
	userRepository repository.UserRepository
}

func NewUserService(userRepository repository.UserRepository) *UserService {
	return &UserService{
		userRepository: userRepository,
	}
}

func (s *UserService) ByID(id int64) (*model.User, error) {
	return s.userRepository.ByID(id)
}

func (s *UserService) ByUsername(username string) (*model.User, error) {
	return s.userRepository.ByUsername(username)
}

func (s *UserService) Users() ([]*model.User, error) {
	return s.userRepository.Users()
}

// Create registers a user with an already-hashed password. Accounts start
// disabled until explicitly activated.
func (s *UserService) Create(username, passwordHash string, email, fullName *string) (*model.User, error) {
	now := time.Now().UTC()
	user := &model.User{
		Username:     username,
		Email:        email,
		FullName:     fullName,
		PasswordHash: passwordHash,
		Disabled:     true,
		DateJoined:   now,
		LastLoggedIn: now,
	}

	err := s.userRepository.Create(user)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Activate clears the disabled flag.
func (s *UserService) Activate(username string) (*model.User, error) {
	user, err := s.userRepository.ByUsername(username)
	if err != nil {
		return nil, err
	}

	user.Disabled = false
	err = s.userRepository.Update(user)
	if err != nil {
		return nil, err
	}

	return user, nil
}
