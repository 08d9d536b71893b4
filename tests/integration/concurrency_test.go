package integration

import (
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Many buyers settle concurrently through the full HTTP stack. Every
// successful sale moved exactly one order's amount; funds are conserved
// no matter how the requests interleave.
func TestConcurrentSettlement(t *testing.T) {
	const (
		buyers        = 8
		salesPerBuyer = 25
		price         = int64(30)
	)

	stack := newTestStack(t, map[string]int64{
		"alice": 100_000,
		"store": 0,
	}, price, "store")

	var succeeded atomic.Int64
	var wg sync.WaitGroup
	for b := 0; b < buyers; b++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < salesPerBuyer; i++ {
				order := call(t, http.MethodPost, stack.ledgerSrv.URL+"/api/v1/orders", map[string]interface{}{
					"wallet_id": "alice",
					"amount":    price,
				})
				if order.Code != http.StatusCreated {
					continue
				}
				sale := call(t, http.MethodPost, stack.storefrontSrv.URL+"/api/v1/sales", map[string]interface{}{
					"order_id": order.Data["order_id"],
				})
				if sale.Code == http.StatusOK {
					succeeded.Add(1)
				}
			}
		}()
	}
	wg.Wait()

	total := succeeded.Load()
	require.Equal(t, int64(buyers*salesPerBuyer), total, "all sales should settle")

	// Seller balance grew by exactly price per successful sale, both in the
	// storefront's cache and at the ledger.
	storeBalance := call(t, http.MethodGet, stack.ledgerSrv.URL+"/api/v1/wallets/store/balance", nil)
	assert.Equal(t, float64(total*price), storeBalance.Data["balance"])

	shutdown := call(t, http.MethodPost, stack.storefrontSrv.URL+"/api/v1/shutdown", nil)
	assert.Equal(t, float64(total*price), shutdown.Data["seller_balance"])
	assert.Equal(t, float64(0), shutdown.Data["pendencies"])

	assert.Equal(t, int64(100_000), stack.store.TotalFunds())
}

// Several goroutines race to redeem the same order; exactly one wins.
func TestConcurrentDoubleSpend(t *testing.T) {
	const racers = 10

	stack := newTestStack(t, map[string]int64{
		"alice": 1_000,
		"store": 0,
	}, 30, "store")

	order := call(t, http.MethodPost, stack.ledgerSrv.URL+"/api/v1/orders", map[string]interface{}{
		"wallet_id": "alice",
		"amount":    30,
	})
	require.Equal(t, http.StatusCreated, order.Code)

	var wins, rejects atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sale := call(t, http.MethodPost, stack.storefrontSrv.URL+"/api/v1/sales", map[string]interface{}{
				"order_id": order.Data["order_id"],
			})
			switch sale.Code {
			case http.StatusOK:
				wins.Add(1)
			case http.StatusNotFound:
				rejects.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), wins.Load())
	assert.Equal(t, int64(racers-1), rejects.Load())

	// The single redemption credited the store exactly once; the redemption
	// moved money, it did not mint it.
	balance := call(t, http.MethodGet, stack.ledgerSrv.URL+"/api/v1/wallets/store/balance", nil)
	assert.Equal(t, float64(30), balance.Data["balance"])
	assert.Equal(t, int64(1_000), stack.store.TotalFunds())
}

// Shutdown racing with in-flight settlement: whatever lands after the close
// is rejected, and the pendency count plus wallet balances stay consistent.
func TestShutdownRacesWithSettlement(t *testing.T) {
	stack := newTestStack(t, map[string]int64{
		"alice": 10_000,
		"store": 0,
	}, 30, "store")

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			order := call(t, http.MethodPost, stack.ledgerSrv.URL+"/api/v1/orders", map[string]interface{}{
				"wallet_id": "alice",
				"amount":    30,
			})
			if order.Code != http.StatusCreated {
				return
			}
			call(t, http.MethodPost, stack.storefrontSrv.URL+"/api/v1/sales", map[string]interface{}{
				"order_id": order.Data["order_id"],
			})
		}
	}()

	// Let some traffic through, then pull the plug.
	for i := 0; i < 3; i++ {
		call(t, http.MethodGet, stack.ledgerSrv.URL+"/api/v1/wallets/alice/balance", nil)
	}
	shutdown := call(t, http.MethodPost, stack.storefrontSrv.URL+"/api/v1/shutdown", nil)
	close(stop)
	wg.Wait()

	require.Equal(t, http.StatusOK, shutdown.Code)

	// Conservation holds across the race.
	assert.Equal(t, int64(10_000), stack.store.TotalFunds())
}
