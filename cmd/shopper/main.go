package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	shoppingapp "github.com/supertienda/storefront/internal/application/shopping"
	"github.com/supertienda/storefront/internal/domain/shopping"
	"github.com/supertienda/storefront/internal/infrastructure/cartstorage"
	"github.com/supertienda/storefront/internal/infrastructure/catalogclient"
	"github.com/supertienda/storefront/internal/infrastructure/config"
	"github.com/supertienda/storefront/internal/infrastructure/logger"
)

const usage = `Usage: shopper <command> [arguments]

Commands:
  list [-q query] [-c category]   browse the catalog
  show <product-id>               product detail with related items
  add <product-id> [quantity]     add a product to the cart
  remove <product-id>             remove a cart line
  qty <product-id> <delta>        change a line quantity
  cart                            show the cart
  checkout                        compose the order message and handoff URL
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     "stderr",
		TimeFormat: "15:04:05.000",
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	slot, closeSlot := openSlot(cfg)
	defer closeSlot()

	fetcher := catalogclient.New(cfg.Catalog, log)
	catalog := shoppingapp.NewCatalogCache(fetcher, log)
	cart := shoppingapp.NewCartStore(ctx, slot, log)
	projector := shoppingapp.NewViewProjector(catalog, cart)

	if err := run(ctx, os.Args[1], os.Args[2:], cfg, catalog, cart, projector); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// openSlot picks the cart persistence backend from configuration
func openSlot(cfg *config.Config) (shopping.Slot, func()) {
	switch cfg.Cart.Backend {
	case "redis":
		slot := cartstorage.NewRedisSlot(cfg.Redis, cfg.Cart.Key)
		return slot, func() { _ = slot.Close() }
	case "memory":
		return cartstorage.NewMemorySlot(), func() {}
	default:
		return cartstorage.NewFileSlot(cfg.Cart.Path), func() {}
	}
}

func run(ctx context.Context, command string, args []string, cfg *config.Config,
	catalog *shoppingapp.CatalogCache, cart *shoppingapp.CartStore, projector *shoppingapp.ViewProjector) error {

	switch command {
	case "list":
		fs := flag.NewFlagSet("list", flag.ExitOnError)
		query := fs.String("q", "", "name filter")
		category := fs.String("c", shopping.CategoryAll, "category filter")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if _, err := catalog.Load(ctx); err != nil {
			return err
		}
		return printGrid(projector.ProductGrid(*query, *category))

	case "show":
		if len(args) != 1 {
			return fmt.Errorf("show expects a product id")
		}
		if _, err := catalog.Load(ctx); err != nil {
			return err
		}
		detail, ok := projector.ProductDetail(args[0])
		if !ok {
			return fmt.Errorf("product %q not found", args[0])
		}
		return printDetail(detail)

	case "add":
		if len(args) < 1 || len(args) > 2 {
			return fmt.Errorf("add expects a product id and an optional quantity")
		}
		quantity := 1
		if len(args) == 2 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			quantity = n
		}
		if err := cart.Add(ctx, args[0], quantity); err != nil {
			return err
		}
		fmt.Printf("cart now holds %d item(s)\n", cart.TotalItemCount())
		return nil

	case "remove":
		if len(args) != 1 {
			return fmt.Errorf("remove expects a product id")
		}
		cart.Remove(ctx, args[0])
		fmt.Printf("cart now holds %d item(s)\n", cart.TotalItemCount())
		return nil

	case "qty":
		if len(args) != 2 {
			return fmt.Errorf("qty expects a product id and a delta")
		}
		delta, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid delta %q", args[1])
		}
		cart.ChangeQuantity(ctx, args[0], delta)
		fmt.Printf("cart now holds %d item(s)\n", cart.TotalItemCount())
		return nil

	case "cart":
		if _, err := catalog.Load(ctx); err != nil {
			return err
		}
		return printCart(projector.CartView())

	case "checkout":
		if _, err := catalog.Load(ctx); err != nil {
			return err
		}
		message, handoff, err := projector.Checkout(
			cfg.Checkout.MessagingEndpoint, cfg.Checkout.Recipient, cfg.Checkout.ReferenceURL)
		if err != nil {
			return err
		}
		fmt.Println(message)
		fmt.Println()
		fmt.Println("handoff:", handoff)
		return nil

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func printGrid(grid shoppingapp.GridView) error {
	if grid.Degraded {
		return fmt.Errorf("catalog unavailable")
	}
	for _, p := range grid.Products {
		stock := "in stock"
		if !p.InStock {
			stock = "out of stock"
		}
		fmt.Printf("%-36s  %-30s  %-12s  %10s  %s\n", p.ID, p.Name, p.Category, p.Price.StringFixed(2), stock)
	}
	fmt.Printf("\n%d product(s), categories: %v\n", len(grid.Products), grid.Categories)
	return nil
}

func printDetail(d shoppingapp.ProductDetailView) error {
	fmt.Printf("%s (%s)\n", d.Name, d.Category)
	fmt.Printf("price: %s   stock: %d\n", d.Price.StringFixed(2), d.Stock)
	if d.Description != "" {
		fmt.Println(d.Description)
	}
	if len(d.Related) > 0 {
		fmt.Println("\nrelated:")
		for _, r := range d.Related {
			fmt.Printf("  %-36s  %s\n", r.ID, r.Name)
		}
	}
	return nil
}

func printCart(view shoppingapp.CartView) error {
	if view.Empty {
		fmt.Println("cart is empty")
		return nil
	}
	for _, ln := range view.Lines {
		fmt.Printf("%dx %-30s  %10s  =  %10s\n", ln.Quantity, ln.Name, ln.UnitPrice.StringFixed(2), ln.LineTotal.StringFixed(2))
	}
	fmt.Printf("\nsubtotal: %s\n", view.Subtotal.StringFixed(2))
	if view.OrphanCount > 0 {
		fmt.Printf("%d line(s) reference products no longer in the catalog\n", view.OrphanCount)
	}
	return nil
}
