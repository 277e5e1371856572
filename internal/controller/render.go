package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/alimikegami/storefront/pkg/utils"
)

// Render draws the current screen as text. Rendering is derived entirely from
// model state plus the controller's transient view state.
func (c *Controller) Render(ctx context.Context) string {
	var b strings.Builder

	switch c.screen {
	case ScreenHome:
		c.renderHome(ctx, &b)
	case ScreenShop:
		c.renderShop(ctx, &b)
	case ScreenCart:
		c.renderCart(ctx, &b)
	case ScreenOwner:
		c.renderOwner(ctx, &b)
	case ScreenCheckout:
		c.renderCheckout(ctx, &b)
	case ScreenAwaitingAuth:
		c.renderAwaitingAuth(&b)
	}

	switch c.modal {
	case ModalSignUp:
		b.WriteString("\n[sign-up form open — use the signup command]\n")
	case ModalLogIn:
		b.WriteString("\n[log-in form open — use the login command]\n")
	}

	return b.String()
}

func (c *Controller) renderHome(ctx context.Context, b *strings.Builder) {
	b.WriteString("=== Storefront ===\n")

	if account, found := c.accountService.ActiveAccount(ctx); found {
		fmt.Fprintf(b, "Signed in as %s <%s>\n", account.Name, account.Email)
	} else {
		b.WriteString("Browsing as guest\n")
	}

	b.WriteString("Commands: shop, cart, owner, signup, login, help\n")
}

func (c *Controller) renderShop(ctx context.Context, b *strings.Builder) {
	b.WriteString("=== Shop ===\n")

	for _, p := range c.catalogService.GetProducts(ctx) {
		fmt.Fprintf(b, "#%-4d %-20s price=%-6s stock=%d\n", p.ID, p.Name, p.Price, p.Stock)
	}

	b.WriteString("Commands: add <product id>, cart, home\n")
}

func (c *Controller) renderCart(ctx context.Context, b *strings.Builder) {
	b.WriteString("=== Cart ===\n")

	cart := c.cartService.GetCart(ctx)
	if len(cart) == 0 {
		b.WriteString("(empty)\n")
	}

	for i, line := range cart {
		fmt.Fprintf(b, "%2d. %-20s price=%s\n", i+1, line.Name, line.Price)
	}

	fmt.Fprintf(b, "Total: %s\n", c.cartService.Total(ctx).String())
	b.WriteString("Commands: remove <line>, clear, confirm, shop\n")
}

func (c *Controller) renderCheckout(ctx context.Context, b *strings.Builder) {
	b.WriteString("=== Checkout ===\n")

	if account, found := c.accountService.ActiveAccount(ctx); found {
		fmt.Fprintf(b, "Deliver to: %s, %s (%s)\n", account.Name, account.Address, account.Phone)
	}

	for _, line := range c.cartService.GetCart(ctx) {
		fmt.Fprintf(b, "  - %s (%s)\n", line.Name, line.Price)
	}

	fmt.Fprintf(b, "Total: %s\n", c.cartService.Total(ctx).String())
	b.WriteString("Commands: pay cod, pay gateway, cart\n")
}

func (c *Controller) renderAwaitingAuth(b *strings.Builder) {
	b.WriteString("=== Almost there ===\n")
	b.WriteString("Sign up or log in to place your order.\n")
	b.WriteString("Commands: signup, login, cart\n")
}

func (c *Controller) renderOwner(ctx context.Context, b *strings.Builder) {
	b.WriteString("=== Owner dashboard ===\n")

	for _, p := range c.catalogService.GetProducts(ctx) {
		fmt.Fprintf(b, "#%-4d %-20s price=%-6s stock=%-3d image=%.40s\n", p.ID, p.Name, p.Price, p.Stock, p.Image)
	}

	orders := c.orderService.GetOrders(ctx)
	fmt.Fprintf(b, "--- Orders (%d) ---\n", len(orders))
	for _, o := range orders {
		fmt.Fprintf(b, "%s  %-24s %-10s total=%s (%d items) by %s\n",
			utils.ConvertTimestampToHumanReadableFormat(o.CreatedAt),
			o.TransactionNumber, o.PaymentMethod, o.Total, len(o.Lines), o.Account.Email)
	}

	b.WriteString("Commands: edit <id> <field> <value>, new, image <id> <path>, home\n")
}
