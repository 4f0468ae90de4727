package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"dipto/config"
	deliverycontext "dipto/internal/delivery/context"
	domainerrors "dipto/internal/domain/errors"
	"dipto/internal/domain/repository"
	"dipto/internal/domain/service"
	"dipto/internal/usecase"

	"github.com/pkg/errors"
)

// checkoutSession tracks one cart key through the simulated payment.
type checkoutSession struct {
	phase     usecase.CheckoutPhase
	reference string
	qrPNG     []byte
	quote     usecase.Quote
}

// checkoutService implements the CheckoutUsecase interface. The payment
// round-trip is simulated with a fixed delay; on completion the cart is
// cleared, a confirmation QR is rendered and an order event published.
type checkoutService struct {
	cartRepo  repository.CartRepository
	pricing   usecase.PricingUsecase
	qrcode    service.QRCodeService
	publisher service.EventPublisher
	logger    *slog.Logger

	delay   time.Duration
	rootCtx context.Context // Bounds background completion work to the app lifecycle.

	mu       sync.Mutex
	sessions map[string]*checkoutSession
	seq      int
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	ctx context.Context,
	cfg *config.Config,
	cartRepo repository.CartRepository,
	pricing usecase.PricingUsecase,
	qrcode service.QRCodeService,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		cartRepo:  cartRepo,
		pricing:   pricing,
		qrcode:    qrcode,
		publisher: publisher,
		logger:    logger,
		delay:     cfg.Checkout.ProcessingDelay,
		rootCtx:   ctx,
		sessions:  make(map[string]*checkoutSession),
	}
}

// Status returns the current checkout state for a session key. A key
// that never submitted reads as idle.
func (srv *checkoutService) Status(_ context.Context, key string) (*usecase.CheckoutState, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	session, ok := srv.sessions[key]
	if !ok {
		return &usecase.CheckoutState{Phase: usecase.CheckoutIdle}, nil
	}

	return sessionState(session), nil
}

// Submit starts the simulated payment for the session's cart. A session
// already processing rejects the submission; a completed session starts
// over with the current cart contents.
func (srv *checkoutService) Submit(ctx context.Context, key string) (*usecase.CheckoutState, error) {
	// 1. Reserve the processing slot before touching the cart, so two
	// racing submissions cannot both pass the in-flight check.
	srv.mu.Lock()
	prev, hadPrev := srv.sessions[key]
	if hadPrev && prev.phase == usecase.CheckoutProcessing {
		srv.mu.Unlock()

		return nil, domainerrors.ErrCheckoutInFlight
	}
	session := &checkoutSession{phase: usecase.CheckoutProcessing}
	srv.sessions[key] = session
	srv.mu.Unlock()

	rollback := func() {
		srv.mu.Lock()
		if hadPrev {
			srv.sessions[key] = prev
		} else {
			delete(srv.sessions, key)
		}
		srv.mu.Unlock()
	}

	// 2. Capture the cart and its quote
	cart, err := srv.cartRepo.FindByKey(ctx, key)
	if err != nil {
		rollback()

		return nil, errors.Wrap(err, "failed to load cart")
	}
	if cart.IsEmpty() {
		rollback()

		return nil, domainerrors.ErrCartEmpty
	}
	quote := srv.pricing.QuoteCart(cart)
	itemCount := cart.ItemCount()

	// 3. Attach the captured quote to the reserved session
	srv.mu.Lock()
	session.quote = quote
	state := sessionState(session)
	srv.mu.Unlock()

	srv.logger.Info("Checkout submitted",
		"key", key,
		"total", quote.Total,
	)

	// 4. Complete asynchronously after the payment delay
	go srv.complete(key, quote, itemCount, deliverycontext.GetRequestIDFromContext(ctx))

	return state, nil
}

// complete finishes a checkout after the simulated payment delay. It
// runs on its own goroutine bounded by the application lifecycle.
func (srv *checkoutService) complete(key string, quote usecase.Quote, itemCount int, requestID string) {
	timer := time.NewTimer(srv.delay)
	defer timer.Stop()

	select {
	case <-srv.rootCtx.Done():
		return
	case <-timer.C:
	}

	reference := srv.nextReference()

	qrPNG, err := srv.qrcode.GenerateOrderQR(reference)
	if err != nil {
		srv.logger.Warn("Failed to render confirmation QR", "reference", reference, "error", err)
	}

	if err := srv.cartRepo.Clear(srv.rootCtx, key); err != nil {
		srv.logger.Warn("Failed to clear cart after checkout", "key", key, "error", err)
	}

	if err := srv.publisher.PublishOrderPlaced(srv.rootCtx, &service.OrderPlacedEvent{
		RequestID: requestID,
		Reference: reference,
		CartKey:   key,
		ItemCount: itemCount,
		Subtotal:  quote.Subtotal,
		Tax:       quote.Tax,
		Delivery:  quote.Delivery,
		Total:     quote.Total,
		PlacedAt:  time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		srv.logger.Warn("Failed to publish order event", "reference", reference, "error", err)
	}

	srv.mu.Lock()
	srv.sessions[key] = &checkoutSession{
		phase:     usecase.CheckoutSuccess,
		reference: reference,
		qrPNG:     qrPNG,
		quote:     quote,
	}
	srv.mu.Unlock()

	srv.logger.Info("Checkout completed", "key", key, "reference", reference)
}

// nextReference mints the next order reference, e.g. "DIP-0001".
func (srv *checkoutService) nextReference() string {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.seq++

	return fmt.Sprintf("DIP-%04d", srv.seq)
}

func sessionState(session *checkoutSession) *usecase.CheckoutState {
	return &usecase.CheckoutState{
		Phase:     session.phase,
		Reference: session.reference,
		QRCodePNG: session.qrPNG,
		Quote:     session.quote,
	}
}
