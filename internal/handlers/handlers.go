package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/otpshop/docs"
	authhandlers "github.com/GlebRadaev/otpshop/internal/handlers/auth"
	cataloghandlers "github.com/GlebRadaev/otpshop/internal/handlers/catalog"
	deposithandlers "github.com/GlebRadaev/otpshop/internal/handlers/deposit"
	ordershandlers "github.com/GlebRadaev/otpshop/internal/handlers/orders"
	profilehandlers "github.com/GlebRadaev/otpshop/internal/handlers/profile"
	settingshandlers "github.com/GlebRadaev/otpshop/internal/handlers/settings"
	"github.com/GlebRadaev/otpshop/internal/handlers/views"
	"github.com/GlebRadaev/otpshop/internal/service"
	"github.com/GlebRadaev/otpshop/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type CatalogHandler interface {
	GetServices(w http.ResponseWriter, r *http.Request)
	GetCountries(w http.ResponseWriter, r *http.Request)
	GetOperators(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	Buy(w http.ResponseWriter, r *http.Request)
	GetCurrent(w http.ResponseWriter, r *http.Request)
	RefreshCurrent(w http.ResponseWriter, r *http.Request)
	GetActive(w http.ResponseWriter, r *http.Request)
	Watch(w http.ResponseWriter, r *http.Request)
	GetStatus(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Hide(w http.ResponseWriter, r *http.Request)
	Close(w http.ResponseWriter, r *http.Request)
}

type DepositHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetStatus(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	QRCode(w http.ResponseWriter, r *http.Request)
}

type ProfileHandler interface {
	AddWhitelist(w http.ResponseWriter, r *http.Request)
	RemoveWhitelist(w http.ResponseWriter, r *http.Request)
	RotateAPIKey(w http.ResponseWriter, r *http.Request)
}

type SettingsHandler interface {
	GetTheme(w http.ResponseWriter, r *http.Request)
	SetTheme(w http.ResponseWriter, r *http.Request)
	SetNumberFormat(w http.ResponseWriter, r *http.Request)
}

type ViewHandler interface {
	Welcome(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
	Orders(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
	Docs(w http.ResponseWriter, r *http.Request)
	DocsSection(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	CatalogHandler  CatalogHandler
	OrderHandler    OrderHandler
	DepositHandler  DepositHandler
	ProfileHandler  ProfileHandler
	SettingsHandler SettingsHandler
	ViewHandler     ViewHandler

	profile func(http.Handler) http.Handler
	guard   func(http.Handler) http.Handler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.SessionService),
		CatalogHandler:  cataloghandlers.New(s.CatalogService),
		OrderHandler:    ordershandlers.New(s.OrderService, s.PrefsService),
		DepositHandler:  deposithandlers.New(s.DepositService),
		ProfileHandler:  profilehandlers.New(s.AccountService, s.SessionService),
		SettingsHandler: settingshandlers.New(s.PrefsService),
		ViewHandler: views.New(views.Deps{
			Prefs:    s.PrefsService,
			Sessions: s.SessionService,
			Account:  s.AccountService,
			Orders:   s.OrderService,
			Catalog:  s.CatalogService,
			Deposits: s.DepositService,
			Docs:     s.Reference,
			Support:  s.SupportContact,
		}),
		profile: auth.ProfileMiddleware(s.JWTService, s.ProfileStore),
		guard:   auth.RequireSession(s.ProfileStore, views.PathLogin),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		settingshandlers.ClientHints,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Group(func(r chi.Router) {
		r.Use(h.profile)
		r.Get("/", http.RedirectHandler(views.PathWelcome, http.StatusSeeOther).ServeHTTP)

		r.Route("/app", func(r chi.Router) {
			r.Get("/welcome", h.ViewHandler.Welcome)
			r.Get("/login", h.ViewHandler.Login)
			r.Post("/auth/login", h.AuthHandler.Login)
			r.Post("/auth/register", h.AuthHandler.Register)
			r.Get("/docs", h.ViewHandler.Docs)
			r.Get("/docs/{section}", h.ViewHandler.DocsSection)
			r.Route("/settings", func(r chi.Router) {
				r.Get("/theme", h.SettingsHandler.GetTheme)
				r.Put("/theme", h.SettingsHandler.SetTheme)
				r.Put("/number-format", h.SettingsHandler.SetNumberFormat)
			})

			r.Group(func(r chi.Router) {
				r.Use(h.guard)
				r.Post("/auth/logout", h.AuthHandler.Logout)
				r.Get("/dashboard", h.ViewHandler.Dashboard)
				r.Route("/catalog", func(r chi.Router) {
					r.Get("/services", h.CatalogHandler.GetServices)
					r.Get("/countries", h.CatalogHandler.GetCountries)
					r.Get("/operators", h.CatalogHandler.GetOperators)
				})
				r.Route("/orders", func(r chi.Router) {
					r.Get("/", h.ViewHandler.Orders)
					r.Post("/", h.OrderHandler.Buy)
					r.Get("/current", h.OrderHandler.GetCurrent)
					r.Post("/current/refresh", h.OrderHandler.RefreshCurrent)
					r.Get("/active", h.OrderHandler.GetActive)
					r.Get("/watch", h.OrderHandler.Watch)
					r.Route("/{id}", func(r chi.Router) {
						r.Get("/status", h.OrderHandler.GetStatus)
						r.Post("/cancel", h.OrderHandler.Cancel)
						r.Post("/hide", h.OrderHandler.Hide)
						r.Post("/close", h.OrderHandler.Close)
					})
				})
				r.Get("/deposit", h.ViewHandler.Deposit)
				r.Route("/deposits", func(r chi.Router) {
					r.Post("/", h.DepositHandler.Create)
					r.Get("/", h.DepositHandler.List)
					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", h.DepositHandler.GetStatus)
						r.Post("/cancel", h.DepositHandler.Cancel)
						r.Get("/qr.png", h.DepositHandler.QRCode)
					})
				})
				r.Get("/history", h.ViewHandler.History)
				r.Route("/profile", func(r chi.Router) {
					r.Get("/", h.ViewHandler.Profile)
					r.Post("/whitelist", h.ProfileHandler.AddWhitelist)
					r.Delete("/whitelist", h.ProfileHandler.RemoveWhitelist)
					r.Post("/api-key", h.ProfileHandler.RotateAPIKey)
				})
			})
		})
	})

	return r
}
