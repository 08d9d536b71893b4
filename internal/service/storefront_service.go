package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"payment-settlement/internal/core/domain"
	"payment-settlement/internal/core/ports"
	"payment-settlement/internal/metrics"
	"payment-settlement/pkg/apperror"

	"github.com/rs/zerolog"
)

// StorefrontServiceImpl implements ports.StorefrontService. It sells a single
// product at a fixed price, redeeming payment orders against the remote
// wallet ledger through one long-lived client handle.
//
// The seller balance is a local cache: fetched once at startup, incremented
// on each successful sale, never re-synced with the ledger.
type StorefrontServiceImpl struct {
	client       ports.LedgerClient
	price        int64
	sellerWallet string
	log          zerolog.Logger
	met          *metrics.StorefrontMetrics // nil = metrics disabled

	mu      sync.Mutex
	balance int64
	closed  bool

	done chan struct{}
	once sync.Once
}

// NewStorefrontService creates the storefront and fetches the seller's
// starting balance from the ledger. The ledger must be reachable at startup.
func NewStorefrontService(
	ctx context.Context,
	client ports.LedgerClient,
	price int64,
	sellerWallet string,
	log zerolog.Logger,
	met *metrics.StorefrontMetrics,
) (*StorefrontServiceImpl, error) {
	balance, err := client.Balance(ctx, sellerWallet)
	if err != nil {
		return nil, fmt.Errorf("fetching seller balance for %q: %w", sellerWallet, err)
	}

	log.Info().
		Str("seller_wallet", sellerWallet).
		Int64("price", price).
		Int64("balance", balance).
		Msg("storefront initialized")

	s := &StorefrontServiceImpl{
		client:       client,
		price:        price,
		sellerWallet: sellerWallet,
		log:          log,
		met:          met,
		balance:      balance,
		done:         make(chan struct{}),
	}
	if met != nil {
		met.SellerBalance.Set(float64(balance))
	}
	return s, nil
}

// Done is closed once Shutdown has been served; the server loop waits on it.
func (s *StorefrontServiceImpl) Done() <-chan struct{} {
	return s.done
}

// GetPrice returns the fixed product price.
func (s *StorefrontServiceImpl) GetPrice(_ context.Context) int64 {
	return s.price
}

// Sell redeems the payment order for exactly the product price, crediting the
// seller's wallet on the ledger. Ledger rejections are forwarded unchanged
// and leave the balance cache untouched; a transport failure maps to
// STORE_001 with no retry, the caller decides whether to try again.
func (s *StorefrontServiceImpl) Sell(ctx context.Context, orderID int64) (*ports.SellResult, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, apperror.ErrStorefrontShutdown()
	}
	s.mu.Unlock()

	err := s.client.Transfer(ctx, ports.TransferRequest{
		OrderID:        orderID,
		ExpectedAmount: s.price,
		DestWalletID:   s.sellerWallet,
	})
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if s.met != nil {
				s.met.SalesTotal.WithLabelValues(outcomeLabel(appErr)).Inc()
			}
			s.log.Warn().
				Int64("order_id", orderID).
				Str("error_code", appErr.Code).
				Int("status", appErr.Status).
				Msg("sale rejected")
			return nil, appErr
		}
		if s.met != nil {
			s.met.SalesTotal.WithLabelValues(metrics.OutcomeUnavailable).Inc()
		}
		return nil, apperror.ErrLedgerUnavailable(err)
	}

	s.mu.Lock()
	s.balance += s.price
	balance := s.balance
	s.mu.Unlock()

	if s.met != nil {
		s.met.SalesTotal.WithLabelValues(metrics.OutcomeOK).Inc()
		s.met.SellerBalance.Set(float64(balance))
	}

	s.log.Info().
		Int64("order_id", orderID).
		Int64("price", s.price).
		Int64("seller_balance", balance).
		Msg("sale completed")

	return &ports.SellResult{Status: domain.StatusOK, SellerBalance: balance}, nil
}

// Shutdown stops the wallet ledger first and then the storefront itself,
// returning the seller's cached balance and the ledger's final pendency
// count. If the ledger cannot be reached the storefront stays up so the
// operator can retry.
func (s *StorefrontServiceImpl) Shutdown(ctx context.Context) (*ports.StorefrontShutdownResult, error) {
	pendencies, err := s.client.EndExecution(ctx)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperror.ErrLedgerUnavailable(err)
	}

	s.mu.Lock()
	s.closed = true
	balance := s.balance
	s.mu.Unlock()

	s.log.Info().
		Int64("seller_balance", balance).
		Int("pendencies", pendencies).
		Msg("storefront shutting down")

	s.once.Do(func() { close(s.done) })

	return &ports.StorefrontShutdownResult{
		SellerBalance: balance,
		Pendencies:    pendencies,
	}, nil
}

// outcomeLabel maps a forwarded ledger rejection to its metrics label.
func outcomeLabel(appErr *apperror.AppError) string {
	switch appErr.Code {
	case "LEDGER_003":
		return metrics.OutcomeOrderNotFound
	case "LEDGER_004":
		return metrics.OutcomeAmountMismatch
	case "LEDGER_005":
		return metrics.OutcomeWalletNotFound
	case "LEDGER_006":
		return metrics.OutcomeShutdown
	default:
		return metrics.OutcomeUnavailable
	}
}
