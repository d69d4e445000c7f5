package services

import (
	"errors"

	"github.com/ChPurna2003/CravingConnect/entity"
	"github.com/ChPurna2003/CravingConnect/pkg/apperr"
	"github.com/ChPurna2003/CravingConnect/repository"

	"gorm.io/gorm"
)

// PaymentService applies the owner-or-admin rule on saved payment methods.
type PaymentService struct {
	Repo     *repository.PaymentRepository
	UserRepo *repository.UserRepository
}

func NewPaymentService(repo *repository.PaymentRepository, userRepo *repository.UserRepository) *PaymentService {
	return &PaymentService{Repo: repo, UserRepo: userRepo}
}

type PaymentMethodOut struct {
	ID         uint   `json:"id"`
	MethodName string `json:"method_name"`
	CardLast4  string `json:"card_last4"`
	UserID     uint   `json:"user_id"`
}

type AddPaymentMethodIn struct {
	MethodName string `json:"method_name"`
	CardLast4  string `json:"card_last4"`
	UserID     uint   `json:"user_id"`
}

type UpdatePaymentMethodIn struct {
	ID         uint   `json:"id" binding:"required"`
	MethodName string `json:"method_name"`
	CardLast4  string `json:"card_last4"`
}

// List returns the caller's methods; an admin passing all=true gets every row.
func (s *PaymentService) List(ident entity.Identity, all bool) ([]PaymentMethodOut, error) {
	var (
		rows []entity.PaymentMethod
		err  error
	)
	if ident.Role == entity.RoleAdmin && all {
		rows, err = s.Repo.ListAll()
	} else {
		rows, err = s.Repo.ListByUser(ident.UserID)
	}
	if err != nil {
		return nil, err
	}

	out := make([]PaymentMethodOut, 0, len(rows))
	for _, pm := range rows {
		out = append(out, PaymentMethodOut{
			ID: pm.ID, MethodName: pm.MethodName, CardLast4: pm.CardLast4, UserID: pm.UserID,
		})
	}
	return out, nil
}

// Add saves a method for the caller. Only an admin may file one under another
// user via user_id.
func (s *PaymentService) Add(ident entity.Identity, in *AddPaymentMethodIn) (uint, error) {
	name := in.MethodName
	if name == "" {
		name = "Card"
	}
	last4 := in.CardLast4
	if last4 == "" {
		last4 = "0000"
	}

	ownerID := ident.UserID
	if in.UserID != 0 && in.UserID != ident.UserID {
		if ident.Role != entity.RoleAdmin {
			return 0, apperr.Forbidden("cannot add a payment method for another user")
		}
		if _, err := s.UserRepo.FindByID(in.UserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, apperr.NotFound("user")
			}
			return 0, err
		}
		ownerID = in.UserID
	}

	pm := &entity.PaymentMethod{UserID: ownerID, MethodName: name, CardLast4: last4}
	if err := s.Repo.Create(pm); err != nil {
		return 0, err
	}
	return pm.ID, nil
}

// Update edits a method the caller owns, or any method when the caller is
// admin. Empty fields are left untouched.
func (s *PaymentService) Update(ident entity.Identity, in *UpdatePaymentMethodIn) error {
	pm, err := s.Repo.Get(in.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("payment method")
		}
		return err
	}

	if pm.UserID != ident.UserID && ident.Role != entity.RoleAdmin {
		return apperr.Forbidden("payment method belongs to another user")
	}

	if in.MethodName != "" {
		pm.MethodName = in.MethodName
	}
	if in.CardLast4 != "" {
		pm.CardLast4 = in.CardLast4
	}
	return s.Repo.Save(pm)
}
