package services

import (
	"github.com/ChPurna2003/CravingConnect/entity"
	"github.com/ChPurna2003/CravingConnect/repository"
)

type RestaurantService struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

type MenuItemOut struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type RestaurantOut struct {
	ID      uint          `json:"id"`
	Name    string        `json:"name"`
	Country string        `json:"country"`
	Menu    []MenuItemOut `json:"menu"`
}

// List returns restaurants with their menus. Manager/member callers are
// forced onto their own country and any requested filter is ignored; other
// callers get the filter as-is, or everything.
func (s *RestaurantService) List(ident entity.Identity, countryFilter string) ([]RestaurantOut, error) {
	if ident.Role.CountryScoped() {
		countryFilter = ident.Country
	}

	rows, err := s.Repo.List(countryFilter)
	if err != nil {
		return nil, err
	}

	out := make([]RestaurantOut, 0, len(rows))
	for _, r := range rows {
		menu := make([]MenuItemOut, 0, len(r.MenuItems))
		for _, m := range r.MenuItems {
			menu = append(menu, MenuItemOut{ID: m.ID, Name: m.Name, Price: m.Price})
		}
		out = append(out, RestaurantOut{ID: r.ID, Name: r.Name, Country: r.Country, Menu: menu})
	}
	return out, nil
}
