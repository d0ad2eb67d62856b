package services

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ludoteca/ludoteca-backend/src/middleware"
	"github.com/ludoteca/ludoteca-backend/src/models"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type UserService struct {
	db *gorm.DB
}

// NewUserService creates a new instance of UserService
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetAllUsers retrieves all User records from the database
func (s *UserService) GetAllUsers() ([]models.UserModel, error) {
	var users []models.UserModel
	result := s.db.Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

// CreateUser creates a new User record with a bcrypt-hashed password
func (s *UserService) CreateUser(req *models.RegisterRequest) (*models.UserModel, error) {
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return nil, errors.New("username and password are required")
	}

	role := req.Role
	if role != models.RoleAdmin {
		role = models.RoleMember
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.UserModel{
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: string(hashedPassword),
		Role:         role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// AuthenticateUser checks user credentials and returns a JWT token plus
// the public user record if valid
func (s *UserService) AuthenticateUser(username, password string) (string, *models.UserModel, error) {
	var user models.UserModel
	result := s.db.Where("username = ?", username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, result.Error
	}

	// Compare the provided password with the hashed password in the database
	if err := bcrypt.CompareHashAndPassword([]byte(strings.TrimSpace(user.PasswordHash)), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"id":   user.Id,
		"role": user.Role,
		"exp":  time.Now().Add(time.Hour * 12).Unix(), // Token expires in 12 hours
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(middleware.GetSecretKey()))
	if err != nil {
		return "", nil, err
	}

	return tokenString, &user, nil
}

// SearchUsers matches a username or email substring, capped at 5 rows for
// the borrower picker.
func (s *UserService) SearchUsers(q string) ([]models.UserModel, error) {
	var users []models.UserModel
	like := "%" + strings.ToLower(q) + "%"
	result := s.db.
		Select("id", "username", "email", "role").
		Where("LOWER(username) LIKE ? OR LOWER(email) LIKE ?", like, like).
		Limit(5).
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}
