package memory

import (
	"context"
	"sort"
	"sync"

	"payment-settlement/internal/core/domain"
)

// LedgerStore keeps the wallet table and outstanding payment orders in
// process memory. A single mutex over both maps makes every operation a
// serializable critical section; the critical sections are small and
// contention is low, so finer-grained locking buys nothing here.
type LedgerStore struct {
	mu      sync.RWMutex
	wallets map[string]int64
	orders  map[int64]int64
	nextID  int64

	closed          bool
	finalPendencies int
	finalWallets    []domain.Wallet
}

// NewLedgerStore creates a store seeded with the initial wallet table.
// Balances are copied; the caller's map is not retained.
func NewLedgerStore(seed map[string]int64) *LedgerStore {
	wallets := make(map[string]int64, len(seed))
	for id, balance := range seed {
		wallets[id] = balance
	}
	return &LedgerStore{
		wallets: wallets,
		orders:  make(map[int64]int64),
		nextID:  1,
	}
}

// Balance returns the wallet's balance.
func (s *LedgerStore) Balance(_ context.Context, walletID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	balance, ok := s.wallets[walletID]
	if !ok {
		return 0, domain.ErrWalletUnknown
	}
	return balance, nil
}

// CreateOrder debits amount from the wallet and records a new outstanding
// order under one lock, so no observer sees the debit without the order or
// vice versa. Ids start at 1 and strictly increase for the store's lifetime;
// redeemed ids are never reused.
func (s *LedgerStore) CreateOrder(_ context.Context, walletID string, amount int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, domain.ErrLedgerClosed
	}

	balance, ok := s.wallets[walletID]
	if !ok {
		return 0, domain.ErrWalletUnknown
	}
	if balance < amount {
		return 0, domain.ErrInsufficientFunds
	}

	orderID := s.nextID
	s.nextID++

	s.wallets[walletID] = balance - amount
	s.orders[orderID] = amount

	return orderID, nil
}

// Transfer redeems the order: lookup, amount check, destination check, credit
// and deletion happen atomically. The order is deleted on success, so a
// repeated call with the same id reports domain.ErrOrderUnknown.
func (s *LedgerStore) Transfer(_ context.Context, orderID int64, expectedAmount int64, destWalletID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrLedgerClosed
	}

	amount, ok := s.orders[orderID]
	if !ok {
		return domain.ErrOrderUnknown
	}
	if amount != expectedAmount {
		return domain.ErrAmountMismatch
	}
	if _, ok := s.wallets[destWalletID]; !ok {
		return domain.ErrWalletUnknown
	}

	s.wallets[destWalletID] += amount
	delete(s.orders, orderID)

	return nil
}

// Close marks the ledger as terminating and captures the final pendency count
// and wallet table. Mutating calls racing with Close either land before it or
// are rejected afterwards; the snapshot is taken under the same lock, so it
// is internally consistent. Repeated calls return the first snapshot.
func (s *LedgerStore) Close(_ context.Context) (int, []domain.Wallet) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return s.finalPendencies, s.finalWallets
	}
	s.closed = true

	s.finalPendencies = len(s.orders)
	s.finalWallets = make([]domain.Wallet, 0, len(s.wallets))
	for id, balance := range s.wallets {
		s.finalWallets = append(s.finalWallets, domain.Wallet{ID: id, Balance: balance})
	}
	sort.Slice(s.finalWallets, func(i, j int) bool {
		return s.finalWallets[i].ID < s.finalWallets[j].ID
	})

	return s.finalPendencies, s.finalWallets
}

// Pendencies returns the current outstanding order count.
func (s *LedgerStore) Pendencies(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

// TotalFunds returns the sum of all balances plus all outstanding order
// amounts. The conservation invariant keeps this equal to the seeded total.
func (s *LedgerStore) TotalFunds() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, balance := range s.wallets {
		total += balance
	}
	for _, amount := range s.orders {
		total += amount
	}
	return total
}
