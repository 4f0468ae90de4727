package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "dipto/internal/domain/errors"
	"dipto/internal/domain/repository"
	"dipto/internal/infra/persistence/memory"
	"dipto/internal/infra/qrcode"
	"dipto/internal/usecase"
)

// checkoutServiceFixtures holds all test dependencies for checkout tests.
type checkoutServiceFixtures struct {
	service   usecase.CheckoutUsecase
	carts     usecase.CartUsecase
	cartRepo  repository.CartRepository
	publisher *capturingPublisher
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	t.Helper()

	return createTestCheckoutServiceWith(t, context.Background(), 10*time.Millisecond)
}

func createTestCheckoutServiceWith(t *testing.T, ctx context.Context, delay time.Duration) checkoutServiceFixtures {
	t.Helper()

	cfg := newTestConfig()
	cfg.Checkout.ProcessingDelay = delay
	logger := newTestLogger()
	cartRepo := memory.NewCartRepository()
	catalogRepo := memory.NewCatalogRepository()
	pricing := NewPricingService(cfg)
	publisher := &capturingPublisher{}

	service := NewCheckoutService(
		ctx,
		cfg,
		cartRepo,
		pricing,
		qrcode.NewQRCodeService(256, "M"),
		publisher,
		logger,
	)

	return checkoutServiceFixtures{
		service:   service,
		carts:     NewCartService(cartRepo, catalogRepo, pricing, logger),
		cartRepo:  cartRepo,
		publisher: publisher,
	}
}

func TestCheckoutService_Status_DefaultsToIdle(t *testing.T) {
	fx := createTestCheckoutService(t)

	state, err := fx.service.Status(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, usecase.CheckoutIdle, state.Phase)
}

func TestCheckoutService_Submit_EmptyCart(t *testing.T) {
	fx := createTestCheckoutService(t)

	_, err := fx.service.Submit(context.Background(), "s1")
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestCheckoutService_Submit_DoubleSubmissionRejected(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	_, err := fx.carts.AddItem(ctx, "s1", "1")
	require.NoError(t, err)

	state, err := fx.service.Submit(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, usecase.CheckoutProcessing, state.Phase)

	_, err = fx.service.Submit(ctx, "s1")
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutInFlight)
}

func TestCheckoutService_Submit_CompletesAndClearsCart(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	_, err := fx.carts.AddItem(ctx, "s1", "1")
	require.NoError(t, err)

	_, err = fx.service.Submit(ctx, "s1")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		state, err := fx.service.Status(ctx, "s1")

		return err == nil && state.Phase == usecase.CheckoutSuccess
	}, time.Second, 5*time.Millisecond)

	state, err := fx.service.Status(ctx, "s1")
	require.NoError(t, err)
	assert.Regexp(t, `^DIP-\d{4}$`, state.Reference)
	assert.NotEmpty(t, state.QRCodePNG)
	assert.InDelta(t, 25.35, state.Quote.Total, 0.001) // 18.50 + 1.85 tax + 5.00 delivery

	// Cart is emptied by the completed payment
	cart, err := fx.cartRepo.FindByKey(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	// Exactly one order event went out
	events := fx.publisher.published()
	require.Len(t, events, 1)
	assert.Equal(t, state.Reference, events[0].Reference)
	assert.Equal(t, 1, events[0].ItemCount)
}

func TestCheckoutService_Submit_AfterSuccessStartsOver(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	_, err := fx.carts.AddItem(ctx, "s1", "1")
	require.NoError(t, err)
	_, err = fx.service.Submit(ctx, "s1")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		state, err := fx.service.Status(ctx, "s1")

		return err == nil && state.Phase == usecase.CheckoutSuccess
	}, time.Second, 5*time.Millisecond)

	first, err := fx.service.Status(ctx, "s1")
	require.NoError(t, err)

	// Fill the cart again and run a second checkout
	_, err = fx.carts.AddItem(ctx, "s1", "2")
	require.NoError(t, err)
	state, err := fx.service.Submit(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, usecase.CheckoutProcessing, state.Phase)

	require.Eventually(t, func() bool {
		state, err := fx.service.Status(ctx, "s1")

		return err == nil && state.Phase == usecase.CheckoutSuccess
	}, time.Second, 5*time.Millisecond)

	second, err := fx.service.Status(ctx, "s1")
	require.NoError(t, err)
	assert.NotEqual(t, first.Reference, second.Reference)
}

func TestCheckoutService_Submit_ConcurrentSubmissionsSingleFlight(t *testing.T) {
	// A long delay keeps the reserved session in Processing for the
	// whole burst.
	fx := createTestCheckoutServiceWith(t, context.Background(), 500*time.Millisecond)
	ctx := context.Background()

	_, err := fx.carts.AddItem(ctx, "s1", "1")
	require.NoError(t, err)

	const workers = 8
	var wg sync.WaitGroup
	var accepted atomic.Int32
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := fx.service.Submit(ctx, "s1"); err == nil {
				accepted.Add(1)
			} else {
				assert.ErrorIs(t, err, domainerrors.ErrCheckoutInFlight)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, accepted.Load())
}

func TestCheckoutService_PendingCompletionStopsOnShutdown(t *testing.T) {
	rootCtx, cancel := context.WithCancel(context.Background())
	fx := createTestCheckoutServiceWith(t, rootCtx, 50*time.Millisecond)
	ctx := context.Background()

	_, err := fx.carts.AddItem(ctx, "s1", "1")
	require.NoError(t, err)
	_, err = fx.service.Submit(ctx, "s1")
	require.NoError(t, err)

	// Shut down before the payment delay elapses
	cancel()
	time.Sleep(150 * time.Millisecond)

	state, err := fx.service.Status(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, usecase.CheckoutProcessing, state.Phase)
	assert.Empty(t, fx.publisher.published())

	// The cart was never cleared
	cart, err := fx.cartRepo.FindByKey(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, cart.IsEmpty())
}

func TestCheckoutService_SessionsAreIndependent(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	_, err := fx.carts.AddItem(ctx, "s1", "1")
	require.NoError(t, err)
	_, err = fx.service.Submit(ctx, "s1")
	require.NoError(t, err)

	// A different session is unaffected by s1's in-flight payment
	state, err := fx.service.Status(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, usecase.CheckoutIdle, state.Phase)

	_, err = fx.service.Submit(ctx, "s2")
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}
