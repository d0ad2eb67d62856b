package models

import "time"

// Loan states.
const (
	LoanActive    = "Active"
	LoanCompleted = "Completed"
)

type LoanModel struct {
	Id     int        `json:"id" gorm:"primaryKey;autoIncrement"`
	UserId int        `json:"userId" gorm:"column:user_id;index;not null"`
	User   *UserModel `json:"user,omitempty" gorm:"foreignKey:UserId;references:Id"`
	CopyId int        `json:"copyId" gorm:"column:copy_id;index;not null"`
	Copy   *CopyModel `json:"copy,omitempty" gorm:"foreignKey:CopyId;references:Id"`
	// IssuedAt is when the copy left the shelf; DueAt is the agreed
	// return date. ReturnedAt stays nil until the loan is completed.
	IssuedAt   time.Time  `json:"issuedAt" gorm:"not null"`
	DueAt      time.Time  `json:"dueAt" gorm:"not null"`
	ReturnedAt *time.Time `json:"returnedAt"`
	Status     string     `json:"status" gorm:"type:varchar(20);default:'Active';not null"`
}
