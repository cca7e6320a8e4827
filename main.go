package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/asliq/akilli-garson/configs"
	"github.com/asliq/akilli-garson/middlewares"
	"github.com/asliq/akilli-garson/pkg/cache"
	"github.com/asliq/akilli-garson/pkg/rest"
	"github.com/asliq/akilli-garson/repository"
	"github.com/asliq/akilli-garson/routes"
	"github.com/asliq/akilli-garson/services"
	"github.com/asliq/akilli-garson/ws"
)

func main() {
	cfg := configs.LoadConfig()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Local store (staff, preferences)
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()
	if err := configs.SeedStaff(); err != nil {
		log.Fatalf("seed staff failed: %v", err)
	}
	db := configs.DB()

	// Remote JSON store
	api := rest.NewClient(cfg.APIBaseURL, cfg.APITimeout, logger)
	store := cache.NewStore(logger)
	defer store.Close()

	// Repositories
	tableRepo := repository.NewTableRepository(api)
	orderRepo := repository.NewOrderRepository(api)
	menuRepo := repository.NewMenuRepository(api)
	catRepo := repository.NewCategoryRepository(api)
	kitchenRepo := repository.NewKitchenRepository(api)
	resvRepo := repository.NewReservationRepository(api)
	discRepo := repository.NewDiscountRepository(api)
	payRepo := repository.NewPaymentRepository(api)
	notifRepo := repository.NewNotificationRepository(api)
	invRepo := repository.NewInventoryRepository(api)
	waiterRepo := repository.NewWaiterRepository(db)
	prefRepo := repository.NewPreferenceRepository(db)

	// Event feed
	hub := ws.NewEventHub()
	go hub.Run()

	// Services
	discounts := services.NewDiscountService(store, discRepo)
	orders := services.NewOrderService(store, orderRepo, tableRepo, menuRepo, kitchenRepo, discounts, logger)
	kitchen := services.NewKitchenService(store, kitchenRepo, orders, logger)
	bridge := services.NewNotificationBridge(store, notifRepo, hub, logger)
	payments := services.NewPaymentService(store, payRepo, orders, discounts, bridge, logger)
	settings := services.NewSettingsService(prefRepo)
	deps := routes.Deps{
		JWTSecret:     cfg.JWTSecret,
		Auth:          services.NewAuthService(waiterRepo, cfg.JWTSecret, cfg.JWTTTL),
		Tables:        services.NewTableService(store, tableRepo),
		Orders:        orders,
		Kitchen:       kitchen,
		Menu:          services.NewMenuService(store, menuRepo, catRepo),
		Reservations:  services.NewReservationService(store, resvRepo, tableRepo),
		Discounts:     discounts,
		Payments:      payments,
		Notifications: services.NewNotificationService(store, notifRepo),
		Inventory:     services.NewInventoryService(store, invRepo, bridge),
		Settings:      settings,
		Hub:           hub,
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, deps)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// Poll-driven notification bridge
	g.Go(func() error {
		bridge.Run(ctx, func(ctx context.Context) (any, error) {
			return orderRepo.List(ctx)
		}, time.Duration(cfg.OrdersPollMS)*time.Millisecond)
		return nil
	})

	// Kitchen display poll, interval taken from the stored preferences
	g.Go(func() error {
		kitchen.Run(ctx, settings, time.Duration(cfg.KitchenPollMS)*time.Millisecond)
		return nil
	})

	// Optional upstream push channel
	if cfg.UpstreamWSURL != "" {
		listener := ws.NewUpstreamListener(cfg.UpstreamWSURL, store, bridge, logger)
		g.Go(func() error {
			listener.Run(ctx)
			return nil
		})
	}

	srv := &http.Server{Addr: fmt.Sprintf(":%s", cfg.Port), Handler: r}
	g.Go(func() error {
		logger.Info("server running", "addr", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}
