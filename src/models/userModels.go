package models

// User roles.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

type UserModel struct {
	Id           int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string `json:"username" gorm:"type:varchar(100);not null"`
	Email        string `json:"email" gorm:"type:varchar(255);not null"`
	PasswordHash string `json:"-" gorm:"column:password_hash;type:varchar(100);not null"`
	Role         string `json:"role" gorm:"type:varchar(20);default:'member';not null"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	Success bool       `json:"success"`
	Token   string     `json:"token"`
	User    PublicUser `json:"user"`
}

type PublicUser struct {
	Id       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
