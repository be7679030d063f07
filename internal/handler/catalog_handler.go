package handler

import (
	"net/http"
	"sort"

	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/dto"
	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/pricing"
	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/repository"
	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	catalog repository.CatalogRepository
}

func NewCatalogHandler(catalog repository.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/catalog", h.GetCatalog)
}

// GetCatalog exposes the current rates and add-ons so booking screens
// can render prices before asking for a quote.
func (h *CatalogHandler) GetCatalog(c echo.Context) error {
	ctx := c.Request().Context()

	rates, err := h.catalog.RateTable(ctx)
	if err != nil {
		return httpError(err)
	}
	addOns, err := h.catalog.AddOnCatalog(ctx)
	if err != nil {
		return httpError(err)
	}

	resp := dto.CatalogResponse{
		Rates:  make(map[string]pricing.Rate, len(rates)),
		AddOns: make([]pricing.AddOn, 0, len(addOns)),
	}
	for category, rate := range rates {
		resp.Rates[string(category)] = rate
	}
	for _, addOn := range addOns {
		resp.AddOns = append(resp.AddOns, addOn)
	}
	sort.Slice(resp.AddOns, func(i, j int) bool { return resp.AddOns[i].Code < resp.AddOns[j].Code })

	return c.JSON(http.StatusOK, resp)
}
