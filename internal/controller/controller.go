package controller

import (
	"context"
	"io"

	"github.com/alimikegami/storefront/internal/domain"
	"github.com/alimikegami/storefront/internal/dto"
	"github.com/alimikegami/storefront/internal/service"
	"github.com/alimikegami/storefront/pkg/errs"
	"github.com/rs/zerolog/log"
)

// Controller owns the transient view state: the current screen, the auth
// modal, and the owner gate flag. It dispatches user actions to the services
// and moves the screen per the checkout state machine.
type Controller struct {
	catalogService service.CatalogService
	cartService    service.CartService
	accountService service.AccountService
	orderService   service.OrderService

	ownerPassphrase string

	screen        Screen
	modal         Modal
	ownerUnlocked bool
}

func CreateNewController(catalogService service.CatalogService, cartService service.CartService, accountService service.AccountService, orderService service.OrderService, ownerPassphrase string) *Controller {
	return &Controller{
		catalogService:  catalogService,
		cartService:     cartService,
		accountService:  accountService,
		orderService:    orderService,
		ownerPassphrase: ownerPassphrase,
		screen:          ScreenHome,
	}
}

// Start seeds the catalog on first run and restores a remembered session.
func (c *Controller) Start(ctx context.Context) error {
	if err := c.catalogService.SeedCatalog(ctx); err != nil {
		return err
	}

	if account, found := c.accountService.ActiveAccount(ctx); found {
		log.Info().Str("email", account.Email).Msg("restored remembered session")
	}

	c.screen = ScreenHome

	return nil
}

func (c *Controller) Screen() Screen { return c.screen }
func (c *Controller) Modal() Modal   { return c.modal }

func (c *Controller) OpenHome() { c.screen = ScreenHome }
func (c *Controller) OpenShop() { c.screen = ScreenShop }
func (c *Controller) OpenCart() { c.screen = ScreenCart }

// --- owner gate ---

func (c *Controller) OwnerUnlocked() bool { return c.ownerUnlocked }

// OpenOwner switches to the dashboard only when the gate has already been
// passed this session.
func (c *Controller) OpenOwner() bool {
	if !c.ownerUnlocked {
		return false
	}

	c.screen = ScreenOwner

	return true
}

// UnlockOwner compares the entered passphrase against the configured one. A
// plain string comparison is the whole check: the gate is a demo boundary,
// not an authorization system. The flag lives for the rest of the process and
// is never persisted.
func (c *Controller) UnlockOwner(passphrase string) error {
	if passphrase != c.ownerPassphrase {
		return errs.ErrInvalidOwnerPassphrase
	}

	c.ownerUnlocked = true
	c.screen = ScreenOwner

	return nil
}

// --- shopping ---

func (c *Controller) AddToCart(ctx context.Context, productID int64) error {
	return c.cartService.AddToCart(ctx, productID)
}

// RemoveFromCart takes the 1-based line number shown by the cart screen.
func (c *Controller) RemoveFromCart(ctx context.Context, lineNumber int) error {
	return c.cartService.RemoveFromCart(ctx, lineNumber-1)
}

func (c *Controller) ClearCart(ctx context.Context) error {
	return c.cartService.ClearCart(ctx)
}

// --- checkout state machine ---

// Confirm moves the shopper from the cart toward payment: straight to the
// checkout screen when signed in, otherwise to the auth interstitial with the
// sign-up form as the default.
func (c *Controller) Confirm(ctx context.Context) error {
	if len(c.cartService.GetCart(ctx)) == 0 {
		return errs.ErrEmptyCart
	}

	if _, found := c.accountService.ActiveAccount(ctx); !found {
		c.screen = ScreenAwaitingAuth
		c.modal = ModalSignUp
		return nil
	}

	c.screen = ScreenCheckout

	return nil
}

func (c *Controller) ShowSignUpModal() { c.modal = ModalSignUp }
func (c *Controller) ShowLogInModal()  { c.modal = ModalLogIn }
func (c *Controller) CloseModal()      { c.modal = ModalNone }

func (c *Controller) SubmitSignUp(ctx context.Context, payload dto.SignUpRequest) (domain.Account, error) {
	account, err := c.accountService.SignUp(ctx, payload)
	if err != nil {
		return domain.Account{}, err
	}

	c.finishAuth()

	return account, nil
}

func (c *Controller) SubmitLogIn(ctx context.Context, payload dto.LogInRequest) (domain.Account, error) {
	account, err := c.accountService.LogIn(ctx, payload)
	if err != nil {
		return domain.Account{}, err
	}

	c.finishAuth()

	return account, nil
}

// finishAuth closes the modal and, when auth was demanded by checkout,
// continues the interrupted flow.
func (c *Controller) finishAuth() {
	c.modal = ModalNone

	if c.screen == ScreenAwaitingAuth {
		c.screen = ScreenCheckout
	}
}

// PlaceOrder finishes checkout and returns the shopper to browsing.
func (c *Controller) PlaceOrder(ctx context.Context, method domain.PaymentMethod) (domain.Order, error) {
	order, err := c.orderService.PlaceOrder(ctx, method)
	if err != nil {
		return domain.Order{}, err
	}

	c.screen = ScreenHome

	return order, nil
}

// --- owner operations ---

func (c *Controller) EditProduct(ctx context.Context, id int64, field string, value string) error {
	if !c.ownerUnlocked {
		return errs.ErrInvalidOwnerPassphrase
	}

	return c.catalogService.EditProductField(ctx, id, field, value)
}

func (c *Controller) AddProduct(ctx context.Context) (domain.Product, error) {
	if !c.ownerUnlocked {
		return domain.Product{}, errs.ErrInvalidOwnerPassphrase
	}

	return c.catalogService.AddProduct(ctx)
}

func (c *Controller) SetProductImage(ctx context.Context, id int64, img io.Reader) (<-chan error, error) {
	if !c.ownerUnlocked {
		return nil, errs.ErrInvalidOwnerPassphrase
	}

	return c.catalogService.SetProductImage(ctx, id, img), nil
}
