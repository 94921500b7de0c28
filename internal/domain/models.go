package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profile is everything a browser profile remembers between visits.
type Profile struct {
	ID           string           `db:"id"`
	Token        string           `db:"token"`
	ThemeMode    string           `db:"theme_mode"`
	ThemeAccent  string           `db:"theme_accent"`
	NumberFormat string           `db:"number_format"`
	LastBalance  *decimal.Decimal `db:"last_balance"`
	CreatedAt    time.Time        `db:"created_at"`
	UpdatedAt    time.Time        `db:"updated_at"`
}

// Session is the upstream bearer token bound to a profile.
type Session struct {
	ProfileID string
	Token     string
}

type User struct {
	ID        ID              `json:"id"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt Timestamp       `json:"created_at"`
}

type Service struct {
	ServiceID ID     `json:"service_id"`
	Code      string `json:"code,omitempty"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
}

type Country struct {
	ID         ID              `json:"id"`
	Name       string          `json:"name"`
	Stock      int             `json:"stock"`
	ProviderID ID              `json:"provider_id"`
	ServerID   ID              `json:"server_id"`
	Price      decimal.Decimal `json:"price"`
}

type Operator struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

type Order struct {
	OrderID     ID              `json:"order_id"`
	PhoneNumber string          `json:"phone_number"`
	Status      OrderStatus     `json:"status"`
	OTPCode     string          `json:"otp_code,omitempty"`
	CreatedAt   Timestamp       `json:"created_at"`
	Price       decimal.Decimal `json:"price"`
}

// ActiveOrder is the persisted snapshot of the last purchase of a profile.
type ActiveOrder struct {
	ProfileID string    `db:"profile_id"`
	Order     Order     `db:"-"`
	UpdatedAt time.Time `db:"updated_at"`
}

// TrackedOrder is an active snapshot together with the token needed to query it.
type TrackedOrder struct {
	ProfileID string
	Token     string
	Order     Order
}

type Deposit struct {
	DepositID      ID              `json:"deposit_id"`
	AmountReceived decimal.Decimal `json:"amount_received"`
	TotalPay       decimal.Decimal `json:"total_pay"`
	QRImage        string          `json:"qr_image,omitempty"`
	QRString       string          `json:"qr_string,omitempty"`
	Status         DepositStatus   `json:"status"`
	CreatedAt      Timestamp       `json:"created_at"`
	ExpiredAt      Timestamp       `json:"expired_at"`
}

type WhitelistEntry struct {
	IP string `json:"ip"`
}

type Theme struct {
	Mode     string `json:"mode"`
	Accent   string `json:"accent"`
	Resolved string `json:"resolved"`
}

// BuyRequest is the final step of the dependent selection form.
type BuyRequest struct {
	ServiceID  ID              `json:"service_id" validate:"required"`
	CountryID  ID              `json:"country_id" validate:"required"`
	ProviderID ID              `json:"provider_id" validate:"required"`
	ServerID   ID              `json:"server_id"`
	OperatorID ID              `json:"operator_id" validate:"required"`
	Price      decimal.Decimal `json:"price"`
}
