package impl

import (
	"context"
	"log/slog"

	"dipto/internal/domain/entity"
	domainerrors "dipto/internal/domain/errors"
	"dipto/internal/domain/repository"
	"dipto/internal/usecase"

	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
	pricing     usecase.PricingUsecase
	logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	cartRepo repository.CartRepository,
	catalogRepo repository.CatalogRepository,
	pricing usecase.PricingUsecase,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		pricing:     pricing,
		logger:      logger,
	}
}

// GetCart returns the current cart view for a session key.
func (srv *cartService) GetCart(ctx context.Context, key string) (*usecase.CartView, error) {
	cart, err := srv.cartRepo.FindByKey(ctx, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return srv.view(cart), nil
}

// AddItem puts one unit of a menu item into the cart. An item already
// in the cart has its quantity incremented instead of a duplicate entry.
func (srv *cartService) AddItem(ctx context.Context, key, itemID string) (*usecase.CartView, error) {
	srv.logger.Debug("Adding item to cart", "key", key, "itemID", itemID)

	// 1. Resolve the menu item
	item, err := srv.catalogRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item")
	}
	if !item.Available {
		return nil, domainerrors.ErrValidationFailed.WithDetails("this dish is currently unavailable")
	}

	// 2. Merge into the cart
	cart, err := srv.cartRepo.FindByKey(ctx, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	if entry := cart.Find(itemID); entry != nil {
		entry.Quantity++
	} else {
		cart.Entries = append(cart.Entries, &entity.CartEntry{Item: *item, Quantity: 1})
	}

	// 3. Persist
	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return srv.view(cart), nil
}

// UpdateQuantity adjusts an entry's quantity by delta, floored at one.
// A missing entry leaves the cart untouched.
func (srv *cartService) UpdateQuantity(ctx context.Context, key, itemID string, delta int) (*usecase.CartView, error) {
	cart, err := srv.cartRepo.FindByKey(ctx, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	entry := cart.Find(itemID)
	if entry == nil {
		return srv.view(cart), nil
	}

	entry.Quantity += delta
	if entry.Quantity < 1 {
		entry.Quantity = 1
	}

	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return srv.view(cart), nil
}

// RemoveItem takes an entry out of the cart entirely.
func (srv *cartService) RemoveItem(ctx context.Context, key, itemID string) (*usecase.CartView, error) {
	cart, err := srv.cartRepo.FindByKey(ctx, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	entries := make([]*entity.CartEntry, 0, len(cart.Entries))
	for _, entry := range cart.Entries {
		if entry.Item.ID != itemID {
			entries = append(entries, entry)
		}
	}
	cart.Entries = entries

	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return srv.view(cart), nil
}

// ClearCart empties the cart.
func (srv *cartService) ClearCart(ctx context.Context, key string) (*usecase.CartView, error) {
	if err := srv.cartRepo.Clear(ctx, key); err != nil {
		return nil, errors.Wrap(err, "failed to clear cart")
	}

	return srv.view(&entity.Cart{Key: key}), nil
}

// view assembles the presentation of a cart with its derived totals.
func (srv *cartService) view(cart *entity.Cart) *usecase.CartView {
	return &usecase.CartView{
		Key:       cart.Key,
		Entries:   cart.Entries,
		ItemCount: cart.ItemCount(),
		Quote:     srv.pricing.QuoteCart(cart),
	}
}
