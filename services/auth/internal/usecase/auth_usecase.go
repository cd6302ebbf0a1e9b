package usecase

import (
	"errors"
	"fmt"
	"io"

	"gigconnect/pkg/jwt"
	"gigconnect/pkg/logger"
	"gigconnect/pkg/s3"
	"gigconnect/services/auth/internal/entity"
	"gigconnect/services/auth/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidAge         = errors.New("age must be a positive number")
	ErrMissingFields      = errors.New("all required fields must be provided")
)

type RegisterParams struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Age      int
	Skills   []string
	Location entity.Location
}

type UpdateProfileParams struct {
	Name     *string
	Phone    *string
	Age      *int
	Skills   []string
	Location *entity.Location
	Password *string
}

type AuthUseCase interface {
	Register(params RegisterParams) (*entity.User, string, error)
	Login(email, password string) (*entity.User, string, error)
	GetProfile(userID string) (*entity.User, error)
	GetUser(userID string) (*entity.User, error)
	UpdateProfile(userID string, params UpdateProfileParams) (*entity.User, error)
	UploadAvatar(userID string, fileReader io.Reader, fileKey string, contentType string) (*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	s3Client   *s3.Client
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	s3Client *s3.Client,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		s3Client:   s3Client,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(params RegisterParams) (*entity.User, string, error) {
	if params.Email == "" || params.Password == "" || params.Name == "" ||
		params.Phone == "" || len(params.Skills) == 0 ||
		params.Location.Country == "" || params.Location.State == "" || params.Location.City == "" {
		return nil, "", ErrMissingFields
	}
	if params.Age <= 0 {
		return nil, "", ErrInvalidAge
	}

	_, err := uc.userRepo.GetByEmail(params.Email)
	if err == nil {
		return nil, "", ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process registration")
	}

	user := &entity.User{
		Email:         params.Email,
		Password:      string(hashedPassword),
		Name:          params.Name,
		Phone:         params.Phone,
		Age:           params.Age,
		Skills:        params.Skills,
		Location:      params.Location,
		Ratings:       []float64{},
		AverageRating: entity.DefaultAverageRating,
		Coins:         entity.StartingCoins,
		Role:          entity.RoleMember,
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", fmt.Errorf("failed to create user")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) Login(email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) GetProfile(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	courseIDs, err := uc.userRepo.GetRedeemedCourseIDs(userID)
	if err != nil {
		uc.logger.Error("Failed to load redeemed courses: %v", err)
	} else {
		user.RedeemedCourses = courseIDs
	}

	user.Password = ""
	return user, nil
}

func (uc *authUseCase) GetUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	user.Password = ""
	return user, nil
}

func (uc *authUseCase) UpdateProfile(userID string, params UpdateProfileParams) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if params.Name != nil {
		user.Name = *params.Name
	}
	if params.Phone != nil {
		user.Phone = *params.Phone
	}
	if params.Age != nil {
		if *params.Age <= 0 {
			return nil, ErrInvalidAge
		}
		user.Age = *params.Age
	}
	if len(params.Skills) > 0 {
		user.Skills = params.Skills
	}
	if params.Location != nil {
		if params.Location.Country != "" {
			user.Location.Country = params.Location.Country
		}
		if params.Location.State != "" {
			user.Location.State = params.Location.State
		}
		if params.Location.City != "" {
			user.Location.City = params.Location.City
		}
	}
	if params.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*params.Password), bcrypt.DefaultCost)
		if err != nil {
			uc.logger.Error("Failed to hash password: %v", err)
			return nil, fmt.Errorf("failed to update password")
		}
		user.Password = string(hashedPassword)
	}

	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to update user: %v", err)
		return nil, fmt.Errorf("failed to update user")
	}

	user.Password = ""
	return user, nil
}

func (uc *authUseCase) UploadAvatar(userID string, fileReader io.Reader, fileKey string, contentType string) (*entity.User, error) {
	avatarURL, err := uc.s3Client.UploadFile(fileKey, fileReader, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload avatar: %v", err)
		return nil, fmt.Errorf("failed to upload avatar")
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user.ProfilePicURL = avatarURL
	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to update user: %v", err)
		return nil, fmt.Errorf("failed to update user")
	}

	user.Password = ""
	return user, nil
}
