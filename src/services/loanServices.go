package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ludoteca/ludoteca-backend/src/dtos"
	"github.com/ludoteca/ludoteca-backend/src/models"
)

// DefaultLoanDays is used when the requested duration is missing or not
// positive, matching the client's default selection.
const DefaultLoanDays = 7

var (
	ErrMissingBorrower = errors.New("a borrower must be selected")
	ErrNoCopyAvailable = errors.New("no physical copies available")
	ErrLoanNotFound    = errors.New("loan record not found")
	ErrAlreadyReturned = errors.New("loan has already been returned")
)

type LoanService struct {
	db          *gorm.DB
	gameService *GameService // optional, to invalidate the catalog cache
}

// NewLoanService creates a new instance of LoanService.
// gameService may be nil when cache invalidation is not needed.
func NewLoanService(db *gorm.DB, gameService *GameService) *LoanService {
	return &LoanService{
		db:          db,
		gameService: gameService,
	}
}

// Checkout allocates one available copy of the game to the borrower,
// creates the Active loan and decrements the game's visual stock count,
// all inside one transaction.
//
// The copy is claimed with a conditional update (status flips only while
// it is still Available); if two checkouts race for the last copy, exactly
// one claim succeeds and the other fails with ErrNoCopyAvailable.
func (s *LoanService) Checkout(gameID, userID, days int) (*models.LoanModel, error) {
	if userID == 0 {
		return nil, ErrMissingBorrower
	}
	if days <= 0 {
		days = DefaultLoanDays
	}

	var loan models.LoanModel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var copyRow models.CopyModel
		if err := tx.
			Where("game_id = ? AND status = ?", gameID, models.CopyAvailable).
			First(&copyRow).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoCopyAvailable
			}
			return err
		}

		claim := tx.Model(&models.CopyModel{}).
			Where("id = ? AND status = ?", copyRow.Id, models.CopyAvailable).
			Update("status", models.CopyLoaned)
		if claim.Error != nil {
			return claim.Error
		}
		if claim.RowsAffected == 0 {
			// Lost the race for this copy.
			return ErrNoCopyAvailable
		}

		now := time.Now()
		loan = models.LoanModel{
			UserId:   userID,
			CopyId:   copyRow.Id,
			IssuedAt: now,
			DueAt:    now.AddDate(0, 0, days),
			Status:   models.LoanActive,
		}
		if err := tx.Create(&loan).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.GameModel{}).
			Where("id = ?", gameID).
			UpdateColumn("stock", gorm.Expr("stock - 1")).Error; err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Availability changed, so cached catalog listings are stale
	if s.gameService != nil {
		s.gameService.InvalidateGameCache(gameID)
	}

	if err := s.db.
		Preload("User").
		Preload("Copy").
		Preload("Copy.Game").
		First(&loan, loan.Id).Error; err != nil {
		return nil, err
	}
	return &loan, nil
}

// Return closes an Active loan: marks it Completed with the actual return
// timestamp, flips the copy back to Available and increments the game's
// visual stock count. Returning an already-completed loan fails with
// ErrAlreadyReturned instead of double-counting the copy.
func (s *LoanService) Return(loanID int) (*models.LoanModel, error) {
	var loan models.LoanModel
	var gameID int

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&loan, loanID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLoanNotFound
			}
			return err
		}
		if loan.Status != models.LoanActive {
			return ErrAlreadyReturned
		}

		var copyRow models.CopyModel
		if err := tx.First(&copyRow, loan.CopyId).Error; err != nil {
			return err
		}
		gameID = copyRow.GameId

		now := time.Now()
		if err := tx.Model(&loan).Updates(map[string]interface{}{
			"status":      models.LoanCompleted,
			"returned_at": now,
		}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.CopyModel{}).
			Where("id = ?", copyRow.Id).
			Update("status", models.CopyAvailable).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.GameModel{}).
			Where("id = ?", copyRow.GameId).
			UpdateColumn("stock", gorm.Expr("stock + 1")).Error; err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.gameService != nil {
		s.gameService.InvalidateGameCache(gameID)
	}

	if err := s.db.
		Preload("User").
		Preload("Copy").
		Preload("Copy.Game").
		First(&loan, loan.Id).Error; err != nil {
		return nil, err
	}
	return &loan, nil
}

// GetActiveLoans lists every outstanding loan with the borrower and game
// joined in, soonest due date first.
func (s *LoanService) GetActiveLoans() ([]dtos.ActiveLoanDTO, error) {
	var rows []dtos.ActiveLoanDTO
	err := s.loanRows().
		Where("p.status = ?", models.LoanActive).
		Order("p.due_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetLoanHistory lists every completed loan, most recently returned first.
func (s *LoanService) GetLoanHistory() ([]dtos.LoanHistoryDTO, error) {
	var rows []dtos.LoanHistoryDTO
	err := s.loanRows().
		Where("p.status = ?", models.LoanCompleted).
		Order("p.returned_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetUserLoans lists a member's full loan history, with loans still in
// hand surfaced before completed ones.
func (s *LoanService) GetUserLoans(userID int) ([]dtos.UserLoanDTO, error) {
	var rows []dtos.UserLoanDTO
	err := s.loanRows().
		Where("p.user_id = ?", userID).
		Order(fmt.Sprintf("CASE WHEN p.status = '%s' THEN 1 ELSE 2 END, p.issued_at DESC", models.LoanActive)).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// loanRows is the shared joined projection over loans, users, copies and
// games used by the listing queries.
func (s *LoanService) loanRows() *gorm.DB {
	return s.db.Table("loan_models AS p").
		Select(`p.id AS loan_id,
			u.username,
			u.email,
			g.title AS game_title,
			e.sku,
			p.issued_at,
			p.due_at,
			p.returned_at,
			p.status`).
		Joins("JOIN user_models u ON u.id = p.user_id").
		Joins("JOIN copy_models e ON e.id = p.copy_id").
		Joins("JOIN game_models g ON g.id = e.game_id")
}
