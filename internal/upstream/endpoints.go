package upstream

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/GlebRadaev/otpshop/internal/domain"
)

type tokenData struct {
	Token string `json:"token"`
}

func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var data tokenData
	body := map[string]string{"username": username, "password": password}
	if err := c.post(ctx, "", "/auth/login", body, &data); err != nil {
		return "", err
	}
	if data.Token == "" {
		return "", newAPIError(0, "", errEmptyToken)
	}
	return data.Token, nil
}

func (c *Client) Register(ctx context.Context, username, email, password string) (string, error) {
	var data tokenData
	body := map[string]string{"username": username, "email": email, "password": password}
	if err := c.post(ctx, "", "/auth/register", body, &data); err != nil {
		return "", err
	}
	if data.Token == "" {
		return "", newAPIError(0, "", errEmptyToken)
	}
	return data.Token, nil
}

func (c *Client) Me(ctx context.Context, token string) (*domain.User, error) {
	var user domain.User
	if err := c.get(ctx, token, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Services(ctx context.Context, token string) ([]domain.Service, error) {
	var services []domain.Service
	if err := c.get(ctx, token, "/services/list", nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (c *Client) Countries(ctx context.Context, token string, serviceID domain.ID) ([]domain.Country, error) {
	var countries []domain.Country
	query := map[string]string{"service_id": serviceID.String()}
	if err := c.get(ctx, token, "/countries/list", query, &countries); err != nil {
		return nil, err
	}
	return countries, nil
}

func (c *Client) Operators(ctx context.Context, token string, country, providerID domain.ID) ([]domain.Operator, error) {
	var operators []domain.Operator
	query := map[string]string{"country": country.String(), "provider_id": providerID.String()}
	if err := c.get(ctx, token, "/operators/list", query, &operators); err != nil {
		return nil, err
	}
	return operators, nil
}

// Buy purchases a number. expected_price lets the upstream refuse when the price moved meanwhile.
func (c *Client) Buy(ctx context.Context, token string, req domain.BuyRequest) (*domain.Order, error) {
	query := map[string]string{
		"service_id":     req.ServiceID.String(),
		"country_id":     req.CountryID.String(),
		"provider_id":    req.ProviderID.String(),
		"operator_id":    req.OperatorID.String(),
		"expected_price": req.Price.String(),
	}
	if req.ServerID != "" {
		query["server_id"] = req.ServerID.String()
	}
	var order domain.Order
	if err := c.get(ctx, token, "/orders/buy", query, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) CheckStatus(ctx context.Context, token string, orderID domain.ID) (*domain.Order, error) {
	var order domain.Order
	query := map[string]string{"order_id": orderID.String()}
	if err := c.get(ctx, token, "/orders/check-status", query, &order); err != nil {
		return nil, err
	}
	if order.OrderID == "" {
		order.OrderID = orderID
	}
	return &order, nil
}

func (c *Client) CancelOrder(ctx context.Context, token string, orderID domain.ID) error {
	return c.get(ctx, token, "/orders/cancel", map[string]string{"order_id": orderID.String()}, nil)
}

func (c *Client) CreateDeposit(ctx context.Context, token string, amount int64) (*domain.Deposit, error) {
	var deposit domain.Deposit
	query := map[string]string{"amount": strconv.FormatInt(amount, 10)}
	if err := c.get(ctx, token, "/deposit/create", query, &deposit); err != nil {
		return nil, err
	}
	return &deposit, nil
}

func (c *Client) DepositHistory(ctx context.Context, token string) ([]domain.Deposit, error) {
	var deposits []domain.Deposit
	if err := c.get(ctx, token, "/deposit/history", nil, &deposits); err != nil {
		return nil, err
	}
	return deposits, nil
}

func (c *Client) DepositStatus(ctx context.Context, token string, depositID domain.ID) (*domain.Deposit, error) {
	var deposit domain.Deposit
	query := map[string]string{"deposit_id": depositID.String()}
	if err := c.get(ctx, token, "/deposit/cekstatus", query, &deposit); err != nil {
		return nil, err
	}
	if deposit.DepositID == "" {
		deposit.DepositID = depositID
	}
	return &deposit, nil
}

func (c *Client) CancelDeposit(ctx context.Context, token string, depositID domain.ID) error {
	return c.get(ctx, token, "/deposit/cancel", map[string]string{"deposit_id": depositID.String()}, nil)
}

func (c *Client) Whitelist(ctx context.Context, token string) ([]domain.WhitelistEntry, error) {
	var entries []domain.WhitelistEntry
	if err := c.get(ctx, token, "/whitelist/list", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) AddWhitelist(ctx context.Context, token, ip string) error {
	return c.post(ctx, token, "/whitelist/add", domain.WhitelistEntry{IP: ip}, nil)
}

func (c *Client) RemoveWhitelist(ctx context.Context, token, ip string) error {
	return c.post(ctx, token, "/whitelist/remove", domain.WhitelistEntry{IP: ip}, nil)
}

// ChangeID rotates the API key. The returned token replaces the old one immediately.
func (c *Client) ChangeID(ctx context.Context, token string) (string, error) {
	var data tokenData
	if err := c.post(ctx, token, "/change_id", nil, &data); err != nil {
		return "", err
	}
	if data.Token == "" {
		return "", newAPIError(0, "", errEmptyToken)
	}
	return data.Token, nil
}

func (c *Client) History(ctx context.Context, token string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.get(ctx, token, "/history/list", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Finalized lists the order ids the upstream already considers closed.
// Items come either as bare ids or as objects with an order_id.
func (c *Client) Finalized(ctx context.Context, token string) ([]domain.ID, error) {
	var raw []json.RawMessage
	if err := c.get(ctx, token, "/cekselesai/list", nil, &raw); err != nil {
		return nil, err
	}
	ids := make([]domain.ID, 0, len(raw))
	for _, item := range raw {
		var id domain.ID
		if err := json.Unmarshal(item, &id); err == nil {
			ids = append(ids, id)
			continue
		}
		var obj struct {
			OrderID domain.ID `json:"order_id"`
		}
		if err := json.Unmarshal(item, &obj); err == nil && obj.OrderID != "" {
			ids = append(ids, obj.OrderID)
		}
	}
	return ids, nil
}

func (c *Client) CloseOrder(ctx context.Context, token string, orderID domain.ID) error {
	return c.post(ctx, token, "/cekselesai/tutup", map[string]string{"order_id": orderID.String()}, nil)
}
