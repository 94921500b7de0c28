package depositservice

import (
	"context"
	"encoding/base64"
	"errors"
	"sort"
	"strings"

	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/GlebRadaev/otpshop/internal/domain"
)

type API interface {
	CreateDeposit(ctx context.Context, token string, amount int64) (*domain.Deposit, error)
	DepositHistory(ctx context.Context, token string) ([]domain.Deposit, error)
	DepositStatus(ctx context.Context, token string, depositID domain.ID) (*domain.Deposit, error)
	CancelDeposit(ctx context.Context, token string, depositID domain.ID) error
}

var (
	ErrBelowMinimum = errors.New("deposit amount below minimum")
	ErrNoQR         = errors.New("deposit has no qr code")
)

const qrSize = 320

type Service struct {
	api       API
	minAmount int64
}

func New(api API, minAmount int64) *Service {
	return &Service{
		api:       api,
		minAmount: minAmount,
	}
}

func (s *Service) MinAmount() int64 {
	return s.minAmount
}

// Create requests a QRIS payment. Amounts below the minimum never reach the upstream.
func (s *Service) Create(ctx context.Context, session domain.Session, amount int64) (*domain.Deposit, error) {
	if amount < s.minAmount {
		return nil, ErrBelowMinimum
	}
	deposit, err := s.api.CreateDeposit(ctx, session.Token, amount)
	if err != nil {
		zap.L().Error("failed to create deposit", zap.Int64("amount", amount), zap.Error(err))
		return nil, err
	}
	deposit.Status = deposit.Status.Normalize()
	zap.L().Info("deposit created",
		zap.String("profile", session.ProfileID),
		zap.String("deposit", deposit.DepositID.String()),
		zap.String("total_pay", deposit.TotalPay.String()))
	return deposit, nil
}

// History lists deposits newest first.
func (s *Service) History(ctx context.Context, session domain.Session) ([]domain.Deposit, error) {
	deposits, err := s.api.DepositHistory(ctx, session.Token)
	if err != nil {
		zap.L().Error("failed to get deposit history", zap.Error(err))
		return nil, err
	}
	for i := range deposits {
		deposits[i].Status = deposits[i].Status.Normalize()
	}
	sort.SliceStable(deposits, func(i, j int) bool {
		return deposits[i].CreatedAt.After(deposits[j].CreatedAt.Time)
	})
	return deposits, nil
}

func (s *Service) Status(ctx context.Context, session domain.Session, depositID domain.ID) (*domain.Deposit, error) {
	deposit, err := s.api.DepositStatus(ctx, session.Token, depositID)
	if err != nil {
		zap.L().Error("failed to check deposit status", zap.String("deposit", depositID.String()), zap.Error(err))
		return nil, err
	}
	deposit.Status = deposit.Status.Normalize()
	return deposit, nil
}

func (s *Service) Cancel(ctx context.Context, session domain.Session, depositID domain.ID) error {
	if err := s.api.CancelDeposit(ctx, session.Token, depositID); err != nil {
		zap.L().Error("failed to cancel deposit", zap.String("deposit", depositID.String()), zap.Error(err))
		return err
	}
	return nil
}

// QRCode returns the deposit's QR as PNG: the server's own image when it sent a data URI,
// otherwise one rendered from the QRIS string.
func (s *Service) QRCode(ctx context.Context, session domain.Session, depositID domain.ID) ([]byte, error) {
	deposit, err := s.Status(ctx, session, depositID)
	if err != nil {
		return nil, err
	}
	if deposit.QRString == "" && deposit.QRImage == "" {
		deposits, err := s.api.DepositHistory(ctx, session.Token)
		if err != nil {
			return nil, err
		}
		for i := range deposits {
			if deposits[i].DepositID == depositID {
				deposit = &deposits[i]
				break
			}
		}
	}
	return RenderQR(deposit)
}

func RenderQR(deposit *domain.Deposit) ([]byte, error) {
	if img, ok := decodeDataURI(deposit.QRImage); ok {
		return img, nil
	}
	if deposit.QRString == "" {
		return nil, ErrNoQR
	}
	png, err := qrcode.Encode(deposit.QRString, qrcode.Medium, qrSize)
	if err != nil {
		zap.L().Error("can't render qr", zap.String("deposit", deposit.DepositID.String()), zap.Error(err))
		return nil, err
	}
	return png, nil
}

func decodeDataURI(uri string) ([]byte, bool) {
	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(uri, prefix) {
		return nil, false
	}
	img, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	if err != nil {
		return nil, false
	}
	return img, true
}
