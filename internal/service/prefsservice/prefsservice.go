package prefsservice

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/otpshop/internal/domain"
	"github.com/GlebRadaev/otpshop/pkg/numfmt"
)

type Repo interface {
	Get(ctx context.Context, profileID string) (*domain.Profile, error)
	SetTheme(ctx context.Context, profileID, mode, accent string) error
	SetNumberFormat(ctx context.Context, profileID, format string) error
}

const (
	ModeLight  = "light"
	ModeDark   = "dark"
	ModeSystem = "system"

	DefaultAccent = "blue"

	// ColorSchemeHint is the client hint carrying the OS color scheme.
	ColorSchemeHint = "Sec-CH-Prefers-Color-Scheme"
)

var Accents = []string{"blue", "green", "purple", "orange", "red", "teal"}

var (
	ErrInvalidMode   = errors.New("unknown theme mode")
	ErrInvalidAccent = errors.New("unknown theme accent")
	ErrInvalidFormat = errors.New("unknown number format")
)

type Prefs struct {
	Theme        domain.Theme  `json:"theme"`
	NumberFormat numfmt.Format `json:"number_format"`
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// Get returns the profile's preferences with the theme resolved against the OS hint.
func (s *Service) Get(ctx context.Context, profileID, hint string) (*Prefs, error) {
	profile, err := s.repo.Get(ctx, profileID)
	if err != nil {
		zap.L().Error("failed to load preferences", zap.String("profile", profileID), zap.Error(err))
		return nil, err
	}
	prefs := &Prefs{
		Theme:        domain.Theme{Mode: ModeSystem, Accent: DefaultAccent},
		NumberFormat: numfmt.Default,
	}
	if profile != nil {
		if profile.ThemeMode != "" {
			prefs.Theme.Mode = profile.ThemeMode
		}
		if profile.ThemeAccent != "" {
			prefs.Theme.Accent = profile.ThemeAccent
		}
		if f, ok := numfmt.Parse(profile.NumberFormat); ok {
			prefs.NumberFormat = f
		}
	}
	prefs.Theme.Resolved = Resolve(prefs.Theme.Mode, hint)
	return prefs, nil
}

// SetTheme stores mode and accent. An empty value keeps the current one.
func (s *Service) SetTheme(ctx context.Context, profileID, mode, accent, hint string) (*domain.Theme, error) {
	mode = strings.ToLower(strings.TrimSpace(mode))
	accent = strings.ToLower(strings.TrimSpace(accent))
	if mode != "" && !validMode(mode) {
		return nil, ErrInvalidMode
	}
	if accent != "" && !validAccent(accent) {
		return nil, ErrInvalidAccent
	}

	current, err := s.Get(ctx, profileID, hint)
	if err != nil {
		return nil, err
	}
	theme := current.Theme
	if mode != "" {
		theme.Mode = mode
	}
	if accent != "" {
		theme.Accent = accent
	}
	if err := s.repo.SetTheme(ctx, profileID, theme.Mode, theme.Accent); err != nil {
		zap.L().Error("failed to save theme", zap.String("profile", profileID), zap.Error(err))
		return nil, err
	}
	theme.Resolved = Resolve(theme.Mode, hint)
	return &theme, nil
}

func (s *Service) SetNumberFormat(ctx context.Context, profileID, format string) (numfmt.Format, error) {
	f, ok := numfmt.Parse(format)
	if !ok {
		return "", ErrInvalidFormat
	}
	if err := s.repo.SetNumberFormat(ctx, profileID, string(f)); err != nil {
		zap.L().Error("failed to save number format", zap.String("profile", profileID), zap.Error(err))
		return "", err
	}
	return f, nil
}

// Resolve maps a theme mode to the concrete scheme to render. System follows the OS hint
// and falls back to light when the browser sends none.
func Resolve(mode, hint string) string {
	switch mode {
	case ModeLight, ModeDark:
		return mode
	}
	if strings.EqualFold(strings.Trim(strings.TrimSpace(hint), `"`), ModeDark) {
		return ModeDark
	}
	return ModeLight
}

func validMode(mode string) bool {
	return mode == ModeLight || mode == ModeDark || mode == ModeSystem
}

func validAccent(accent string) bool {
	for _, a := range Accents {
		if a == accent {
			return true
		}
	}
	return false
}
