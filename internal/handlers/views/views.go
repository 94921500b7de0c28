package views

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/otpshop/internal/docs"
	"github.com/GlebRadaev/otpshop/internal/domain"
	"github.com/GlebRadaev/otpshop/internal/dto"
	"github.com/GlebRadaev/otpshop/internal/handlers/deposit"
	"github.com/GlebRadaev/otpshop/internal/handlers/httperr"
	"github.com/GlebRadaev/otpshop/internal/service/orderservice"
	"github.com/GlebRadaev/otpshop/internal/service/prefsservice"
	"github.com/GlebRadaev/otpshop/pkg/auth"
	"github.com/GlebRadaev/otpshop/pkg/numfmt"
	"github.com/GlebRadaev/otpshop/pkg/utils"
)

const (
	PathWelcome   = "/app/welcome"
	PathLogin     = "/app/login"
	PathDashboard = "/app/dashboard"
	PathOrders    = "/app/orders"
	PathDeposit   = "/app/deposit"
	PathHistory   = "/app/history"
	PathProfile   = "/app/profile"
	PathDocs      = "/app/docs"
)

type PrefsService interface {
	Get(ctx context.Context, profileID, hint string) (*prefsservice.Prefs, error)
}

type SessionService interface {
	Session(ctx context.Context, profileID string) (domain.Session, error)
}

type AccountService interface {
	Me(ctx context.Context, session domain.Session) (*domain.User, error)
	Whitelist(ctx context.Context, session domain.Session) ([]domain.WhitelistEntry, error)
	History(ctx context.Context, session domain.Session) ([]domain.Order, error)
}

type OrderService interface {
	Current(ctx context.Context, session domain.Session) (*orderservice.OrderView, error)
	ActiveOrders(ctx context.Context, session domain.Session) ([]orderservice.OrderView, error)
}

type CatalogService interface {
	Services(ctx context.Context, session domain.Session) ([]domain.Service, error)
}

type DepositService interface {
	MinAmount() int64
	History(ctx context.Context, session domain.Session) ([]domain.Deposit, error)
}

type Reference interface {
	Collapsed() []docs.Summary
	Section(id string) (*docs.Section, bool)
}

type Deps struct {
	Prefs    PrefsService
	Sessions SessionService
	Account  AccountService
	Orders   OrderService
	Catalog  CatalogService
	Deposits DepositService
	Docs     Reference
	Support  string
}

// Page is what every screen endpoint returns. Chrome is only present for a signed-in profile.
type Page struct {
	Chrome       *Chrome       `json:"chrome,omitempty"`
	Theme        domain.Theme  `json:"theme"`
	NumberFormat numfmt.Format `json:"number_format"`
	Data         any           `json:"data"`
}

type WelcomeData struct {
	Authenticated bool   `json:"authenticated"`
	Next          string `json:"next"`
}

type LoginData struct {
	LoginPath    string `json:"login_path"`
	RegisterPath string `json:"register_path"`
}

type DashboardData struct {
	User     *domain.User          `json:"user"`
	Current  *dto.OrderResponseDTO `json:"current"`
	Services []domain.Service      `json:"services"`
}

type OrdersData struct {
	Active   []dto.OrderResponseDTO `json:"active"`
	Services []domain.Service       `json:"services"`
}

type DepositData struct {
	User           *domain.User             `json:"user"`
	MinAmount      int64                    `json:"min_amount"`
	MinimumMessage string                   `json:"minimum_message"`
	Deposits       []dto.DepositResponseDTO `json:"deposits"`
}

type HistoryData struct {
	Deposits []dto.DepositResponseDTO `json:"deposits"`
	Orders   []dto.HistoryItemDTO     `json:"orders"`
}

type DocsData struct {
	Sections []docs.Summary `json:"sections,omitempty"`
	Section  *docs.Section  `json:"section,omitempty"`
}

type ViewHandler struct {
	deps Deps
}

func New(deps Deps) *ViewHandler {
	return &ViewHandler{
		deps: deps,
	}
}

// Welcome godoc
//
//	@Summary		Welcome screen
//	@Tags			Views
//	@Produce		json
//	@Success		200	{object}	Page
//	@Router			/app/welcome [get]
func (h *ViewHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	prefs := h.prefs(r)
	authenticated := h.signedIn(r)
	next := PathLogin
	if authenticated {
		next = PathDashboard
	}
	h.render(w, r, prefs, "", authenticated, WelcomeData{Authenticated: authenticated, Next: next})
}

// Login godoc
//
//	@Summary		Login and register screen
//	@Description	A signed-in profile is sent to the dashboard
//	@Tags			Views
//	@Produce		json
//	@Success		200	{object}	Page
//	@Success		303	"Already signed in"
//	@Router			/app/login [get]
func (h *ViewHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.signedIn(r) {
		http.Redirect(w, r, PathDashboard, http.StatusSeeOther)
		return
	}
	h.render(w, r, h.prefs(r), "", false, LoginData{
		LoginPath:    "/app/auth/login",
		RegisterPath: "/app/auth/register",
	})
}

// Dashboard godoc
//
//	@Summary		Dashboard screen
//	@Description	Account, current order and the service list for the buy form
//	@Tags			Views
//	@Produce		json
//	@Success		200	{object}	Page
//	@Failure		502	{object}	utils.Response	"Upstream API unreachable"
//	@Router			/app/dashboard [get]
func (h *ViewHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	session := auth.SessionFrom(r.Context())
	prefs := h.prefs(r)

	var data DashboardData
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		data.User, err = h.deps.Account.Me(ctx, session)
		return err
	})
	g.Go(func() (err error) {
		data.Services, err = h.deps.Catalog.Services(ctx, session)
		return err
	})
	if err := g.Wait(); err != nil {
		httperr.Write(w, r, err)
		return
	}

	// Current consumes a finished snapshot, so it only runs once the rest succeeded.
	current, err := h.deps.Orders.Current(r.Context(), session)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}
	if current != nil {
		resp := dto.NewOrderResponse(*current, prefs.NumberFormat)
		data.Current = &resp
	}
	h.render(w, r, prefs, PathDashboard, true, data)
}

// Orders godoc
//
//	@Summary		Order screen
//	@Description	Active orders and the service list. Live updates come from /app/orders/watch.
//	@Tags			Views
//	@Produce		json
//	@Success		200	{object}	Page
//	@Failure		502	{object}	utils.Response	"Upstream API unreachable"
//	@Router			/app/orders [get]
func (h *ViewHandler) Orders(w http.ResponseWriter, r *http.Request) {
	session := auth.SessionFrom(r.Context())
	prefs := h.prefs(r)

	var (
		active   []orderservice.OrderView
		services []domain.Service
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		active, err = h.deps.Orders.ActiveOrders(ctx, session)
		return err
	})
	g.Go(func() (err error) {
		services, err = h.deps.Catalog.Services(ctx, session)
		return err
	})
	if err := g.Wait(); err != nil {
		httperr.Write(w, r, err)
		return
	}
	h.render(w, r, prefs, PathOrders, true, OrdersData{
		Active:   dto.NewOrderResponses(active, prefs.NumberFormat),
		Services: services,
	})
}

// Deposit godoc
//
//	@Summary		Deposit screen
//	@Tags			Views
//	@Produce		json
//	@Success		200	{object}	Page
//	@Failure		502	{object}	utils.Response	"Upstream API unreachable"
//	@Router			/app/deposit [get]
func (h *ViewHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	session := auth.SessionFrom(r.Context())
	minAmount := h.deps.Deposits.MinAmount()
	data := DepositData{
		MinAmount:      minAmount,
		MinimumMessage: deposit.MinimumMessage(minAmount),
	}

	var deposits []domain.Deposit
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		data.User, err = h.deps.Account.Me(ctx, session)
		return err
	})
	g.Go(func() (err error) {
		deposits, err = h.deps.Deposits.History(ctx, session)
		return err
	})
	if err := g.Wait(); err != nil {
		httperr.Write(w, r, err)
		return
	}
	data.Deposits = dto.NewDepositResponses(deposits)
	h.render(w, r, h.prefs(r), PathDeposit, true, data)
}

// History godoc
//
//	@Summary		History screen
//	@Description	Past deposits and past orders, newest first
//	@Tags			Views
//	@Produce		json
//	@Success		200	{object}	Page
//	@Failure		502	{object}	utils.Response	"Upstream API unreachable"
//	@Router			/app/history [get]
func (h *ViewHandler) History(w http.ResponseWriter, r *http.Request) {
	session := auth.SessionFrom(r.Context())
	prefs := h.prefs(r)

	var (
		deposits []domain.Deposit
		orders   []domain.Order
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		deposits, err = h.deps.Deposits.History(ctx, session)
		return err
	})
	g.Go(func() (err error) {
		orders, err = h.deps.Account.History(ctx, session)
		return err
	})
	if err := g.Wait(); err != nil {
		httperr.Write(w, r, err)
		return
	}
	h.render(w, r, prefs, PathHistory, true, HistoryData{
		Deposits: dto.NewDepositResponses(deposits),
		Orders:   dto.NewHistory(orders, prefs.NumberFormat),
	})
}

// Profile godoc
//
//	@Summary		Profile screen
//	@Description	Account details, the whitelisted IP and the current API key
//	@Tags			Views
//	@Produce		json
//	@Success		200	{object}	Page
//	@Failure		502	{object}	utils.Response	"Upstream API unreachable"
//	@Router			/app/profile [get]
func (h *ViewHandler) Profile(w http.ResponseWriter, r *http.Request) {
	session := auth.SessionFrom(r.Context())
	data := dto.ProfileResponseDTO{APIKey: session.Token}

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		data.User, err = h.deps.Account.Me(ctx, session)
		return err
	})
	g.Go(func() (err error) {
		data.Whitelist, err = h.deps.Account.Whitelist(ctx, session)
		return err
	})
	if err := g.Wait(); err != nil {
		httperr.Write(w, r, err)
		return
	}
	if data.Whitelist == nil {
		data.Whitelist = []domain.WhitelistEntry{}
	}
	h.render(w, r, h.prefs(r), PathProfile, true, data)
}

// Docs godoc
//
//	@Summary		API reference
//	@Description	Collapsed list of the upstream API sections
//	@Tags			Views
//	@Produce		json
//	@Success		200	{object}	Page
//	@Router			/app/docs [get]
func (h *ViewHandler) Docs(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.prefs(r), PathDocs, h.signedIn(r), DocsData{Sections: h.deps.Docs.Collapsed()})
}

// DocsSection godoc
//
//	@Summary		API reference section
//	@Description	One section expanded with parameters, example responses and curl snippets
//	@Tags			Views
//	@Produce		json
//	@Param			section	path		string	true	"Section id"
//	@Success		200		{object}	Page
//	@Failure		404		{object}	utils.Response	"Unknown section"
//	@Router			/app/docs/{section} [get]
func (h *ViewHandler) DocsSection(w http.ResponseWriter, r *http.Request) {
	section, ok := h.deps.Docs.Section(chi.URLParam(r, "section"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Bagian dokumentasi tidak ditemukan")
		return
	}
	h.render(w, r, h.prefs(r), PathDocs, h.signedIn(r), DocsData{Section: section})
}

func (h *ViewHandler) render(w http.ResponseWriter, r *http.Request, prefs prefsservice.Prefs, active string, authenticated bool, data any) {
	page := Page{
		Theme:        prefs.Theme,
		NumberFormat: prefs.NumberFormat,
		Data:         data,
	}
	if authenticated {
		chrome := NewChrome(prefs.Theme, active, h.deps.Support)
		page.Chrome = &chrome
	}
	utils.RespondWithJSON(w, http.StatusOK, page)
}

// prefs never fails a screen: without stored preferences the defaults apply.
func (h *ViewHandler) prefs(r *http.Request) prefsservice.Prefs {
	hint := r.Header.Get(prefsservice.ColorSchemeHint)
	profileID := auth.ProfileID(r.Context())
	prefs, err := h.deps.Prefs.Get(r.Context(), profileID, hint)
	if err != nil || prefs == nil {
		zap.L().Warn("preferences unavailable, using defaults", zap.String("profile", profileID), zap.Error(err))
		return prefsservice.Prefs{
			Theme: domain.Theme{
				Mode:     prefsservice.ModeSystem,
				Accent:   prefsservice.DefaultAccent,
				Resolved: prefsservice.Resolve(prefsservice.ModeSystem, hint),
			},
			NumberFormat: numfmt.Default,
		}
	}
	return *prefs
}

func (h *ViewHandler) signedIn(r *http.Request) bool {
	profileID := auth.ProfileID(r.Context())
	if profileID == "" {
		return false
	}
	session, err := h.deps.Sessions.Session(r.Context(), profileID)
	if err != nil {
		zap.L().Warn("can't load session", zap.String("profile", profileID), zap.Error(err))
		return false
	}
	return session.Token != ""
}
