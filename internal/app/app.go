package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alimikegami/storefront/config"
	"github.com/alimikegami/storefront/internal/controller"
	"github.com/alimikegami/storefront/internal/domain"
	"github.com/alimikegami/storefront/internal/dto"
	paymentgateway "github.com/alimikegami/storefront/internal/infrastructure/payment-gateway"
	"github.com/alimikegami/storefront/internal/infrastructure/storage"
	"github.com/alimikegami/storefront/internal/repository"
	"github.com/alimikegami/storefront/internal/service"
	"github.com/alimikegami/storefront/pkg/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type App struct {
	Config     *config.Config
	Store      storage.Store
	Controller *controller.Controller

	In  io.Reader
	Out io.Writer
}

// Start wires the layers together, restores persisted state, and hands
// control to the interactive loop until the shopper quits or In drains.
func (app *App) Start(ctx context.Context) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	if app.In == nil {
		app.In = os.Stdin
	}
	if app.Out == nil {
		app.Out = os.Stdout
	}

	repo := repository.CreateNewRepository(app.Store)
	catalogService := service.CreateNewCatalogService(repo, *app.Config)
	cartService := service.CreateNewCartService(repo)
	accountService := service.CreateNewAccountService(repo)
	gateway := paymentgateway.CreateSimulatedClient()
	orderService := service.CreateNewOrderService(repo, cartService, accountService, gateway)

	app.Controller = controller.CreateNewController(catalogService, cartService, accountService, orderService, app.Config.OwnerPassphrase)

	if err := app.Controller.Start(ctx); err != nil {
		return fmt.Errorf("failed to start storefront: %w", err)
	}

	return app.runLoop(ctx)
}

func (app *App) runLoop(ctx context.Context) error {
	scanner := bufio.NewScanner(app.In)
	c := app.Controller

	fmt.Fprint(app.Out, c.Render(ctx))

	for {
		fmt.Fprint(app.Out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		var err error

		switch fields[0] {
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprintln(app.Out, "commands: home shop cart owner signup login add remove clear confirm pay edit new image quit")
			continue
		case "home":
			c.OpenHome()
		case "shop":
			c.OpenShop()
		case "cart":
			c.OpenCart()
		case "owner":
			app.handleOwner(scanner, &err)
		case "signup":
			app.handleSignUp(ctx, scanner, &err)
		case "login":
			app.handleLogIn(ctx, scanner, &err)
		case "add":
			err = withID(fields, func(id int64) error { return c.AddToCart(ctx, id) })
		case "remove":
			err = withID(fields, func(n int64) error { return c.RemoveFromCart(ctx, int(n)) })
		case "clear":
			err = c.ClearCart(ctx)
		case "confirm":
			err = c.Confirm(ctx)
		case "pay":
			app.handlePay(ctx, fields, &err)
		case "edit":
			if len(fields) < 4 {
				fmt.Fprintln(app.Out, "usage: edit <id> <field> <value>")
				continue
			}
			err = withID(fields, func(id int64) error {
				return c.EditProduct(ctx, id, fields[2], strings.Join(fields[3:], " "))
			})
		case "new":
			_, err = c.AddProduct(ctx)
		case "image":
			app.handleImage(ctx, fields, &err)
		default:
			fmt.Fprintf(app.Out, "unknown command %q (try help)\n", fields[0])
			continue
		}

		if err != nil {
			app.notify(err)
			continue
		}

		fmt.Fprint(app.Out, c.Render(ctx))
	}
}

func (app *App) handleOwner(scanner *bufio.Scanner, errOut *error) {
	if app.Controller.OpenOwner() {
		return
	}

	*errOut = app.Controller.UnlockOwner(app.prompt(scanner, "Owner passphrase"))
}

func (app *App) handleSignUp(ctx context.Context, scanner *bufio.Scanner, errOut *error) {
	app.Controller.ShowSignUpModal()

	payload := dto.SignUpRequest{
		Name:     app.prompt(scanner, "Name"),
		Email:    app.prompt(scanner, "Email"),
		Phone:    app.prompt(scanner, "Phone"),
		Address:  app.prompt(scanner, "Address"),
		Password: app.prompt(scanner, "Password"),
		Remember: strings.EqualFold(app.prompt(scanner, "Remember me? (y/n)"), "y"),
	}

	if _, err := app.Controller.SubmitSignUp(ctx, payload); err != nil {
		app.Controller.CloseModal()
		*errOut = err
	}
}

func (app *App) handleLogIn(ctx context.Context, scanner *bufio.Scanner, errOut *error) {
	app.Controller.ShowLogInModal()

	payload := dto.LogInRequest{
		Email:    app.prompt(scanner, "Email"),
		Password: app.prompt(scanner, "Password"),
		Remember: strings.EqualFold(app.prompt(scanner, "Remember me? (y/n)"), "y"),
	}

	if _, err := app.Controller.SubmitLogIn(ctx, payload); err != nil {
		app.Controller.CloseModal()
		*errOut = err
	}
}

func (app *App) handlePay(ctx context.Context, fields []string, errOut *error) {
	var method domain.PaymentMethod

	switch {
	case len(fields) > 1 && fields[1] == "cod":
		method = domain.PaymentCashOnDelivery
	case len(fields) > 1 && fields[1] == "gateway":
		method = domain.PaymentSimulatedGateway
	default:
		fmt.Fprintln(app.Out, "usage: pay cod|gateway")
		return
	}

	order, err := app.Controller.PlaceOrder(ctx, method)
	if err != nil {
		*errOut = err
		return
	}

	fmt.Fprintf(app.Out, "Order %s placed, total %s. Thank you!\n", order.TransactionNumber, order.Total)
}

// handleImage starts the asynchronous encode and returns to the prompt; the
// completion is logged whenever it lands.
func (app *App) handleImage(ctx context.Context, fields []string, errOut *error) {
	if len(fields) < 3 {
		fmt.Fprintln(app.Out, "usage: image <id> <path>")
		return
	}

	id, convErr := strconv.ParseInt(fields[1], 10, 64)
	if convErr != nil {
		fmt.Fprintln(app.Out, "usage: image <id> <path>")
		return
	}

	f, err := os.Open(fields[2])
	if err != nil {
		*errOut = fmt.Errorf("failed to open image: %w", err)
		return
	}

	result, err := app.Controller.SetProductImage(ctx, id, f)
	if err != nil {
		f.Close()
		*errOut = err
		return
	}

	go func() {
		defer f.Close()
		if err := <-result; err != nil {
			log.Error().Err(err).Str("component", "handleImage").Msg("")
			return
		}
		log.Info().Int64("product_id", id).Msg("product image updated")
	}()
}

func (app *App) prompt(scanner *bufio.Scanner, label string) string {
	fmt.Fprintf(app.Out, "%s: ", label)
	if !scanner.Scan() {
		return ""
	}

	return strings.TrimSpace(scanner.Text())
}

// notify shows taxonomy errors as blocking notices; anything else is an
// internal failure and goes to the log.
func (app *App) notify(err error) {
	if errs.IsUserFacing(err) {
		fmt.Fprintf(app.Out, "!! %s\n", err.Error())
		return
	}

	log.Error().Err(err).Str("component", "runLoop").Msg("")
	fmt.Fprintf(app.Out, "!! %s\n", errs.ErrInternalServer.Error())
}

func withID(fields []string, fn func(int64) error) error {
	if len(fields) < 2 {
		return nil
	}

	id, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return nil
	}

	return fn(id)
}
