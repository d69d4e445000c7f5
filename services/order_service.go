package services

import (
	"errors"
	"time"

	"github.com/ChPurna2003/CravingConnect/entity"
	"github.com/ChPurna2003/CravingConnect/pkg/apperr"
	"github.com/ChPurna2003/CravingConnect/repository"

	"gorm.io/gorm"
)

// OrderService is the cart/checkout policy engine. Every operation takes the
// request-scoped caller explicitly and returns apperr kinds on rule
// violations; mutations run inside a single transaction.
type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	RestRepo *repository.RestaurantRepository
	PayRepo  *repository.PaymentRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	restRepo *repository.RestaurantRepository,
	payRepo *repository.PaymentRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, RestRepo: restRepo, PayRepo: payRepo}
}

// ----- DTOs from Controller -----

type AddToCartIn struct {
	RestaurantID uint `json:"restaurant_id" binding:"required"`
	MenuItemID   uint `json:"menu_item_id" binding:"required"`
	Qty          int  `json:"qty"`
}

type CheckoutIn struct {
	OrderID         uint `json:"order_id" binding:"required"`
	PaymentMethodID uint `json:"payment_method_id" binding:"required"`
}

type OrderItemOut struct {
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

type OrderOut struct {
	ID           uint           `json:"id"`
	Restaurant   string         `json:"restaurant"`
	RestaurantID uint           `json:"restaurant_id"`
	Country      string         `json:"country"`
	Status       string         `json:"status"`
	Total        float64        `json:"total"`
	Items        []OrderItemOut `json:"items"`
	AddedBy      string         `json:"added_by"`
	CancelledBy  string         `json:"cancelled_by"`
	CreatedAt    string         `json:"created_at"`
}

// ----- Add to cart -----

// AddToCart finds or creates the caller's open cart for the restaurant,
// appends a line and recomputes the total, all in one transaction.
func (s *OrderService) AddToCart(ident entity.Identity, in *AddToCartIn) (uint, error) {
	qty := in.Qty
	if qty < 1 {
		qty = 1
	}

	rest, err := s.RestRepo.Get(in.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperr.NotFound("restaurant")
		}
		return 0, err
	}

	if ident.Role.CountryScoped() && rest.Country != ident.Country {
		return 0, apperr.Forbidden("access limited to your country")
	}

	item, err := s.RestRepo.GetMenuItem(in.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperr.BadRequest("invalid menu item")
		}
		return 0, err
	}
	if item.RestaurantID != rest.ID {
		return 0, apperr.BadRequest("menu item not in this restaurant")
	}

	var cartID uint
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.Repo.FindOrCreateOpenCart(tx, ident.UserID, rest, ident.Username)
		if err != nil {
			return err
		}

		line := &entity.OrderItem{OrderID: cart.ID, MenuItemID: item.ID, Qty: qty}
		if err := s.Repo.CreateItem(tx, line); err != nil {
			return err
		}

		total, err := s.Repo.RecomputeTotal(tx, cart.ID)
		if err != nil {
			return err
		}
		cart.Total = total
		if err := s.Repo.Save(tx, cart); err != nil {
			return err
		}

		cartID = cart.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return cartID, nil
}

// ----- Checkout -----

// Checkout recomputes the total, validates the payment method and places the
// order. Payment success is simulated; no gateway is called.
func (s *OrderService) Checkout(ident entity.Identity, in *CheckoutIn) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var o entity.Order
		if err := tx.First(&o, in.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("order")
			}
			return err
		}
		// Hide other users' orders rather than admitting they exist.
		if o.UserID != ident.UserID {
			return apperr.NotFound("order")
		}

		if ident.Role == entity.RoleMember {
			return apperr.Forbidden("members cannot checkout")
		}
		// Checked against the country stamped at cart creation, not the
		// restaurant's current one.
		if ident.Role == entity.RoleManager && o.Country != ident.Country {
			return apperr.Forbidden("access limited to your country")
		}

		if o.Status != entity.StatusCart {
			return apperr.BadRequest("order is not an open cart")
		}

		total, err := s.Repo.RecomputeTotal(tx, o.ID)
		if err != nil {
			return err
		}

		pm, err := s.PayRepo.Get(in.PaymentMethodID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("payment method")
			}
			return err
		}
		if pm.UserID != ident.UserID && ident.Role != entity.RoleAdmin {
			return apperr.Forbidden("payment method belongs to another user")
		}

		o.Total = total
		o.Status = entity.StatusPlaced
		return s.Repo.Save(tx, &o)
	})
}

// ----- Cancel -----

// Cancel marks an order cancelled and stamps cancelled_by. Cancelling an
// already-cancelled order succeeds without touching the row again, so the
// original audit stamp survives. Placed orders may still be cancelled.
func (s *OrderService) Cancel(ident entity.Identity, orderID uint) (string, error) {
	o, err := s.Repo.Get(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.NotFound("order")
		}
		return "", err
	}

	if ident.Role == entity.RoleMember {
		return "", apperr.Forbidden("members cannot cancel")
	}
	if ident.Role == entity.RoleManager && o.Country != ident.Country {
		return "", apperr.Forbidden("access limited to your country")
	}

	if o.Status == entity.StatusCancelled {
		return "Already cancelled", nil
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		o.Status = entity.StatusCancelled
		o.CancelledBy = ident.Username
		return s.Repo.Save(tx, o)
	})
	if err != nil {
		return "", err
	}
	return "Cancelled", nil
}

// ----- My orders -----

// MyOrders: admin with all=true sees every order; manager/member see every
// order placed in their country, whoever owns it; everyone else sees only
// their own.
func (s *OrderService) MyOrders(ident entity.Identity, all bool) ([]OrderOut, error) {
	var (
		rows []entity.Order
		err  error
	)
	switch {
	case ident.Role == entity.RoleAdmin && all:
		rows, err = s.Repo.ListAll()
	case ident.Role.CountryScoped():
		rows, err = s.Repo.ListByCountry(ident.Country)
	default:
		rows, err = s.Repo.ListByUser(ident.UserID)
	}
	if err != nil {
		return nil, err
	}

	out := make([]OrderOut, 0, len(rows))
	for _, o := range rows {
		items := make([]OrderItemOut, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, OrderItemOut{
				Name:  it.MenuItem.Name,
				Qty:   it.Qty,
				Price: it.MenuItem.Price,
			})
		}
		out = append(out, OrderOut{
			ID:           o.ID,
			Restaurant:   o.Restaurant.Name,
			RestaurantID: o.RestaurantID,
			Country:      o.Country,
			Status:       o.Status,
			Total:        o.Total,
			Items:        items,
			AddedBy:      o.AddedBy,
			CancelledBy:  o.CancelledBy,
			CreatedAt:    o.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}
