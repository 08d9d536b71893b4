package service

import (
	"context"
	"errors"
	"sync"

	"payment-settlement/internal/core/domain"
	"payment-settlement/internal/core/ports"
	"payment-settlement/internal/metrics"
	"payment-settlement/pkg/apperror"

	"github.com/rs/zerolog"
)

// LedgerServiceImpl implements ports.LedgerService on top of the in-memory
// ledger store. The store provides the critical sections; this layer does
// validation, protocol error mapping, logging and metrics.
type LedgerServiceImpl struct {
	store ports.LedgerStore
	log   zerolog.Logger
	met   *metrics.LedgerMetrics // nil = metrics disabled

	done chan struct{}
	once sync.Once
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(store ports.LedgerStore, log zerolog.Logger, met *metrics.LedgerMetrics) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		store: store,
		log:   log,
		met:   met,
		done:  make(chan struct{}),
	}
}

// Done is closed once Shutdown has been served; the server loop waits on it.
func (s *LedgerServiceImpl) Done() <-chan struct{} {
	return s.done
}

// GetBalance returns the wallet's balance.
func (s *LedgerServiceImpl) GetBalance(ctx context.Context, walletID string) (int64, error) {
	balance, err := s.store.Balance(ctx, walletID)
	if err != nil {
		return 0, apperror.ErrWalletNotFound()
	}
	return balance, nil
}

// CreatePaymentOrder debits the wallet and returns the new order id.
func (s *LedgerServiceImpl) CreatePaymentOrder(ctx context.Context, walletID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, apperror.ErrInvalidAmount()
	}

	orderID, err := s.store.CreateOrder(ctx, walletID, amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrLedgerClosed):
			return 0, apperror.ErrLedgerShutdown()
		case errors.Is(err, domain.ErrWalletUnknown):
			return 0, apperror.ErrWalletNotFound()
		case errors.Is(err, domain.ErrInsufficientFunds):
			return 0, apperror.ErrInsufficientFunds()
		default:
			return 0, apperror.InternalError(err)
		}
	}

	if s.met != nil {
		s.met.OrdersCreatedTotal.Inc()
		s.met.OrdersCreatedAmountTotal.Add(float64(amount))
		s.met.PendingOrders.Set(float64(s.store.Pendencies(ctx)))
	}

	s.log.Info().
		Str("wallet", walletID).
		Int64("amount", amount).
		Int64("order_id", orderID).
		Msg("payment order created")

	return orderID, nil
}

// Transfer redeems a payment order, crediting the destination wallet.
func (s *LedgerServiceImpl) Transfer(ctx context.Context, req ports.TransferRequest) error {
	err := s.store.Transfer(ctx, req.OrderID, req.ExpectedAmount, req.DestWalletID)
	if err != nil {
		outcome := metrics.OutcomeOK
		var mapped *apperror.AppError
		switch {
		case errors.Is(err, domain.ErrLedgerClosed):
			outcome, mapped = metrics.OutcomeShutdown, apperror.ErrLedgerShutdown()
		case errors.Is(err, domain.ErrOrderUnknown):
			outcome, mapped = metrics.OutcomeOrderNotFound, apperror.ErrOrderNotFound()
		case errors.Is(err, domain.ErrAmountMismatch):
			outcome, mapped = metrics.OutcomeAmountMismatch, apperror.ErrAmountMismatch()
		case errors.Is(err, domain.ErrWalletUnknown):
			outcome, mapped = metrics.OutcomeWalletNotFound, apperror.ErrDestWalletNotFound()
		default:
			outcome, mapped = metrics.OutcomeUnavailable, apperror.InternalError(err)
		}
		if s.met != nil {
			s.met.TransfersTotal.WithLabelValues(outcome).Inc()
		}
		return mapped
	}

	if s.met != nil {
		s.met.TransfersTotal.WithLabelValues(metrics.OutcomeOK).Inc()
		s.met.PendingOrders.Set(float64(s.store.Pendencies(ctx)))
	}

	s.log.Info().
		Int64("order_id", req.OrderID).
		Int64("amount", req.ExpectedAmount).
		Str("dest_wallet", req.DestWalletID).
		Msg("payment order redeemed")

	return nil
}

// Shutdown closes the ledger and reports the final pendency count. The count
// is the protocol's last word on outstanding orders, so it is logged together
// with the closing wallet table for audit.
func (s *LedgerServiceImpl) Shutdown(ctx context.Context) (int, error) {
	pendencies, wallets := s.store.Close(ctx)

	event := s.log.Info().Int("pendencies", pendencies)
	for _, w := range wallets {
		event = event.Int64(w.ID, w.Balance)
	}
	event.Msg("ledger shutting down")

	if s.met != nil {
		s.met.PendingOrders.Set(float64(pendencies))
	}

	s.once.Do(func() { close(s.done) })
	return pendencies, nil
}
