package catalog

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/otpshop/internal/domain"
	"github.com/GlebRadaev/otpshop/internal/handlers/httperr"
	"github.com/GlebRadaev/otpshop/internal/service/catalogservice"
	"github.com/GlebRadaev/otpshop/pkg/auth"
	"github.com/GlebRadaev/otpshop/pkg/utils"
)

type Service interface {
	Services(ctx context.Context, session domain.Session) ([]domain.Service, error)
	Countries(ctx context.Context, session domain.Session, serviceID domain.ID) ([]domain.Country, error)
	Operators(ctx context.Context, session domain.Session, country, providerID domain.ID) ([]domain.Operator, error)
}

type CatalogHandler struct {
	catalogService Service
}

func New(catalogService Service) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// GetServices godoc
//
//	@Summary		List services
//	@Description	Services a number can be bought for. Served from a one hour cache.
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{array}		domain.Service
//	@Failure		502	{object}	utils.Response	"Upstream API unreachable"
//	@Router			/app/catalog/services [get]
func (h *CatalogHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogService.Services(r.Context(), auth.SessionFrom(r.Context()))
	if err != nil {
		httperr.Write(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, nonNil(services))
}

// GetCountries godoc
//
//	@Summary		List countries for a service
//	@Description	Pricelist of the chosen service per country, with stock and provider
//	@Tags			Catalog
//	@Produce		json
//	@Param			service_id	query		string	true	"Service id"
//	@Success		200			{array}		domain.Country
//	@Failure		400			{object}	utils.Response	"Service not chosen"
//	@Failure		502			{object}	utils.Response	"Upstream API unreachable"
//	@Router			/app/catalog/countries [get]
func (h *CatalogHandler) GetCountries(w http.ResponseWriter, r *http.Request) {
	serviceID := domain.ID(r.URL.Query().Get("service_id"))
	countries, err := h.catalogService.Countries(r.Context(), auth.SessionFrom(r.Context()), serviceID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, nonNil(countries))
}

// GetOperators godoc
//
//	@Summary		List operators
//	@Description	Operators available for a country and provider
//	@Tags			Catalog
//	@Produce		json
//	@Param			country		query		string	true	"Country id"
//	@Param			provider_id	query		string	true	"Provider id"
//	@Success		200			{array}		domain.Operator
//	@Failure		400			{object}	utils.Response	"Country or provider not chosen"
//	@Failure		502			{object}	utils.Response	"Upstream API unreachable"
//	@Router			/app/catalog/operators [get]
func (h *CatalogHandler) GetOperators(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	operators, err := h.catalogService.Operators(r.Context(), auth.SessionFrom(r.Context()),
		domain.ID(q.Get("country")), domain.ID(q.Get("provider_id")))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, nonNil(operators))
}

func (h *CatalogHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, catalogservice.ErrServiceRequired):
		utils.RespondWithError(w, http.StatusBadRequest, "Pilih layanan terlebih dahulu")
	case errors.Is(err, catalogservice.ErrCountryRequired):
		utils.RespondWithError(w, http.StatusBadRequest, "Pilih negara terlebih dahulu")
	default:
		httperr.Write(w, r, err)
	}
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
