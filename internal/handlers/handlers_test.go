package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/otpshop/internal/handlers/views"
	"github.com/GlebRadaev/otpshop/internal/service"
	"github.com/GlebRadaev/otpshop/pkg/auth"
)

func TestNew(t *testing.T) {
	services := &service.Services{
		JWTService:   auth.NewJWTService("secret"),
		ProfileStore: auth.NewMockProfileStore(gomock.NewController(t)),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.profile)
	assert.NotNil(t, h.guard)
}

func newRouter(t *testing.T, session string) http.Handler {
	ctrl := gomock.NewController(t)

	store := auth.NewMockProfileStore(ctrl)
	store.EXPECT().Ensure(gomock.Any(), gomock.Any()).Return("p1", nil).AnyTimes()
	store.EXPECT().SessionToken(gomock.Any(), "p1").Return(session, nil).AnyTimes()

	mockAuth := NewMockAuthHandler(ctrl)
	mockCatalog := NewMockCatalogHandler(ctrl)
	mockOrders := NewMockOrderHandler(ctrl)
	mockDeposits := NewMockDepositHandler(ctrl)
	mockProfile := NewMockProfileHandler(ctrl)
	mockSettings := NewMockSettingsHandler(ctrl)
	mockViews := NewMockViewHandler(ctrl)

	mockAuth.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuth.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuth.EXPECT().Logout(gomock.Any(), gomock.Any()).AnyTimes()
	mockCatalog.EXPECT().GetServices(gomock.Any(), gomock.Any()).AnyTimes()
	mockCatalog.EXPECT().GetCountries(gomock.Any(), gomock.Any()).AnyTimes()
	mockCatalog.EXPECT().GetOperators(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrders.EXPECT().Buy(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrders.EXPECT().GetCurrent(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrders.EXPECT().RefreshCurrent(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrders.EXPECT().GetActive(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrders.EXPECT().Watch(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrders.EXPECT().GetStatus(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrders.EXPECT().Cancel(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrders.EXPECT().Hide(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrders.EXPECT().Close(gomock.Any(), gomock.Any()).AnyTimes()
	mockDeposits.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockDeposits.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockDeposits.EXPECT().GetStatus(gomock.Any(), gomock.Any()).AnyTimes()
	mockDeposits.EXPECT().Cancel(gomock.Any(), gomock.Any()).AnyTimes()
	mockDeposits.EXPECT().QRCode(gomock.Any(), gomock.Any()).AnyTimes()
	mockProfile.EXPECT().AddWhitelist(gomock.Any(), gomock.Any()).AnyTimes()
	mockProfile.EXPECT().RemoveWhitelist(gomock.Any(), gomock.Any()).AnyTimes()
	mockProfile.EXPECT().RotateAPIKey(gomock.Any(), gomock.Any()).AnyTimes()
	mockSettings.EXPECT().GetTheme(gomock.Any(), gomock.Any()).AnyTimes()
	mockSettings.EXPECT().SetTheme(gomock.Any(), gomock.Any()).AnyTimes()
	mockSettings.EXPECT().SetNumberFormat(gomock.Any(), gomock.Any()).AnyTimes()
	mockViews.EXPECT().Welcome(gomock.Any(), gomock.Any()).AnyTimes()
	mockViews.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockViews.EXPECT().Dashboard(gomock.Any(), gomock.Any()).AnyTimes()
	mockViews.EXPECT().Orders(gomock.Any(), gomock.Any()).AnyTimes()
	mockViews.EXPECT().Deposit(gomock.Any(), gomock.Any()).AnyTimes()
	mockViews.EXPECT().History(gomock.Any(), gomock.Any()).AnyTimes()
	mockViews.EXPECT().Profile(gomock.Any(), gomock.Any()).AnyTimes()
	mockViews.EXPECT().Docs(gomock.Any(), gomock.Any()).AnyTimes()
	mockViews.EXPECT().DocsSection(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:     mockAuth,
		CatalogHandler:  mockCatalog,
		OrderHandler:    mockOrders,
		DepositHandler:  mockDeposits,
		ProfileHandler:  mockProfile,
		SettingsHandler: mockSettings,
		ViewHandler:     mockViews,
		profile:         auth.ProfileMiddleware(auth.NewJWTService("secret"), store),
		guard:           auth.RequireSession(store, views.PathLogin),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)
	return router
}

var routes = []struct {
	method  string
	url     string
	guarded bool
}{
	{"GET", "/app/welcome", false},
	{"GET", "/app/login", false},
	{"POST", "/app/auth/login", false},
	{"POST", "/app/auth/register", false},
	{"GET", "/app/docs", false},
	{"GET", "/app/docs/orders", false},
	{"GET", "/app/settings/theme", false},
	{"PUT", "/app/settings/theme", false},
	{"PUT", "/app/settings/number-format", false},
	{"POST", "/app/auth/logout", true},
	{"GET", "/app/dashboard", true},
	{"GET", "/app/catalog/services", true},
	{"GET", "/app/catalog/countries", true},
	{"GET", "/app/catalog/operators", true},
	{"GET", "/app/orders", true},
	{"POST", "/app/orders", true},
	{"GET", "/app/orders/current", true},
	{"POST", "/app/orders/current/refresh", true},
	{"GET", "/app/orders/active", true},
	{"GET", "/app/orders/watch", true},
	{"GET", "/app/orders/o1/status", true},
	{"POST", "/app/orders/o1/cancel", true},
	{"POST", "/app/orders/o1/hide", true},
	{"POST", "/app/orders/o1/close", true},
	{"GET", "/app/deposit", true},
	{"POST", "/app/deposits", true},
	{"GET", "/app/deposits", true},
	{"GET", "/app/deposits/d1", true},
	{"POST", "/app/deposits/d1/cancel", true},
	{"GET", "/app/deposits/d1/qr.png", true},
	{"GET", "/app/history", true},
	{"GET", "/app/profile", true},
	{"POST", "/app/profile/whitelist", true},
	{"DELETE", "/app/profile/whitelist", true},
	{"POST", "/app/profile/api-key", true},
}

func TestInitRoutes(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		router := newRouter(t, "")
		for _, tt := range routes {
			t.Run(tt.method+" "+tt.url, func(t *testing.T) {
				req := httptest.NewRequest(tt.method, tt.url, nil)
				rec := httptest.NewRecorder()

				router.ServeHTTP(rec, req)

				if tt.guarded {
					assert.Equal(t, http.StatusSeeOther, rec.Code)
					assert.Equal(t, views.PathLogin, rec.Header().Get("Location"))
				} else {
					assert.Equal(t, http.StatusOK, rec.Code)
				}
			})
		}
	})

	t.Run("signed in", func(t *testing.T) {
		router := newRouter(t, "tok")
		for _, tt := range routes {
			t.Run(tt.method+" "+tt.url, func(t *testing.T) {
				req := httptest.NewRequest(tt.method, tt.url, nil)
				rec := httptest.NewRecorder()

				router.ServeHTTP(rec, req)

				assert.Equal(t, http.StatusOK, rec.Code)
			})
		}
	})
}

func TestRootRedirect(t *testing.T) {
	router := newRouter(t, "")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, views.PathWelcome, rec.Header().Get("Location"))
}

func TestProfileCookieIssued(t *testing.T) {
	router := newRouter(t, "")
	req := httptest.NewRequest(http.MethodGet, "/app/welcome", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	var found bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.ProfileCookie {
			found = true
		}
	}
	assert.True(t, found)
}
