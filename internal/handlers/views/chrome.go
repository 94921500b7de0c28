package views

import (
	"fmt"

	"github.com/GlebRadaev/otpshop/internal/domain"
	"github.com/GlebRadaev/otpshop/internal/service/prefsservice"
)

type Tab struct {
	Label  string `json:"label"`
	Path   string `json:"path"`
	Active bool   `json:"active"`
}

type Navbar struct {
	Authenticated bool         `json:"authenticated"`
	Theme         domain.Theme `json:"theme"`
	Modes         []string     `json:"modes"`
	Accents       []string     `json:"accents"`
	LogoutPath    string       `json:"logout_path,omitempty"`
}

type Support struct {
	Contact string `json:"contact"`
	Text    string `json:"text"`
}

// Chrome is the navbar and tab bar around every signed-in screen.
type Chrome struct {
	Navbar  Navbar  `json:"navbar"`
	Tabs    []Tab   `json:"tabs"`
	Support Support `json:"support"`
}

var tabs = []Tab{
	{Label: "Beranda", Path: PathDashboard},
	{Label: "Pesanan", Path: PathOrders},
	{Label: "Deposit", Path: PathDeposit},
	{Label: "Riwayat", Path: PathHistory},
	{Label: "Profil", Path: PathProfile},
	{Label: "Dokumentasi", Path: PathDocs},
}

func NewChrome(theme domain.Theme, active, contact string) Chrome {
	c := Chrome{
		Navbar: Navbar{
			Authenticated: true,
			Theme:         theme,
			Modes:         []string{prefsservice.ModeLight, prefsservice.ModeDark, prefsservice.ModeSystem},
			Accents:       prefsservice.Accents,
			LogoutPath:    "/app/auth/logout",
		},
		Tabs: make([]Tab, len(tabs)),
		Support: Support{
			Contact: contact,
			Text:    fmt.Sprintf("Butuh bantuan? Hubungi kami di %s", contact),
		},
	}
	copy(c.Tabs, tabs)
	for i := range c.Tabs {
		c.Tabs[i].Active = c.Tabs[i].Path == active
	}
	return c
}
