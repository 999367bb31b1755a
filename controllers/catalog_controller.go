package controllers

import (
	"strconv"

	"github.com/pcadcreative/foodexpress/pkg/resp"
	"github.com/pcadcreative/foodexpress/repository"

	"github.com/gin-gonic/gin"
)

// CatalogController serves the browse surface: cities, restaurants and
// menus. Plain filtered reads, no invariants.
type CatalogController struct{ Repo *repository.CatalogRepository }

func NewCatalogController(r *repository.CatalogRepository) *CatalogController {
	return &CatalogController{Repo: r}
}

// GET /api/cities
func (h *CatalogController) Cities(c *gin.Context) {
	cities, err := h.Repo.ListCities()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cities)
}

// GET /api/restaurants?cityId=&cuisine=&search=
func (h *CatalogController) Restaurants(c *gin.Context) {
	var f repository.RestaurantFilter
	if v, err := strconv.Atoi(c.Query("cityId")); err == nil {
		f.CityID = uint(v)
	}
	f.Cuisine = c.Query("cuisine")
	f.Search = c.Query("search")

	restaurants, err := h.Repo.ListRestaurants(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, restaurants)
}

// GET /api/restaurants/:id
func (h *CatalogController) RestaurantDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	rest, err := h.Repo.GetRestaurant(uint(id))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, rest)
}

// GET /api/restaurants/:id/menu?category=&vegetarian=
func (h *CatalogController) Menu(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	f := repository.MenuFilter{
		Category:       c.Query("category"),
		VegetarianOnly: c.Query("vegetarian") == "true",
	}
	items, err := h.Repo.ListMenu(uint(id), f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}
