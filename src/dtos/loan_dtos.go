package dtos

import "time"

// CheckoutDTO is the payload for POST /loans.
type CheckoutDTO struct {
	GameId int `json:"gameId"`
	UserId int `json:"userId"`
	Days   int `json:"days"`
}

// ActiveLoanDTO backs the admin "what's outstanding" view.
type ActiveLoanDTO struct {
	LoanId    int       `json:"loanId"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	GameTitle string    `json:"gameTitle"`
	SKU       string    `json:"sku"`
	IssuedAt  time.Time `json:"issuedAt"`
	DueAt     time.Time `json:"dueAt"`
	Status    string    `json:"status"`
}

// LoanHistoryDTO is one completed loan in the admin history.
type LoanHistoryDTO struct {
	LoanId     int        `json:"loanId"`
	Username   string     `json:"username"`
	GameTitle  string     `json:"gameTitle"`
	IssuedAt   time.Time  `json:"issuedAt"`
	DueAt      time.Time  `json:"dueAt"`
	ReturnedAt *time.Time `json:"returnedAt"`
}

// UserLoanDTO is one row of a member's own loan history.
type UserLoanDTO struct {
	LoanId     int        `json:"loanId"`
	GameTitle  string     `json:"gameTitle"`
	IssuedAt   time.Time  `json:"issuedAt"`
	DueAt      time.Time  `json:"dueAt"`
	ReturnedAt *time.Time `json:"returnedAt"`
	Status     string     `json:"status"`
}
