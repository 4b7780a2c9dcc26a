package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalog "tender-board/internal/catalogService"
	"tender-board/internal/config"
	"tender-board/internal/db"
	ledger "tender-board/internal/ledgerService"
	model "tender-board/internal/models"
	"tender-board/internal/repository"
	review "tender-board/internal/reviewService"
	"tender-board/internal/server"
	"tender-board/utils"
)

type stores struct {
	tenders       repository.TenderStore
	bids          repository.BidStore
	notifications repository.NotificationStore
	closers       []func()
}

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		utils.Fatal("cannot load config", map[string]any{"error": err.Error()})
	}
	utils.ConfigureLogger(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := openStores(ctx, cfg)
	if err != nil {
		utils.Fatal("cannot open stores", map[string]any{"error": err.Error()})
	}
	defer func() {
		for _, closeFn := range st.closers {
			closeFn()
		}
	}()

	catalogSvc := catalog.NewCatalogService(st.tenders)
	ledgerSvc := ledger.NewLedgerService(st.tenders, st.bids, st.notifications)
	reviewSvc := review.NewReviewService(st.bids)

	if cfg.SeedDemoData {
		prepopulateTenders(ctx, catalogSvc)
	}

	// surface what survived the last run
	if persisted, err := ledgerSvc.Notifications(ctx); err != nil {
		utils.Warn("could not load persisted notifications", map[string]any{"error": err.Error()})
	} else {
		utils.Info("notifications loaded", map[string]any{"count": len(persisted)})
	}

	router := server.SetupRouter(catalogSvc, ledgerSvc, reviewSvc)
	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.Info("starting tender board server", map[string]any{
			"address":             cfg.ServerAddress,
			"store_driver":        cfg.StoreDriver,
			"notification_driver": cfg.NotificationDriver,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Error("server failed", map[string]any{"error": err.Error()})
			cancel()
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		utils.Info("received shutdown signal", map[string]any{"signal": sig.String()})
	case <-ctx.Done():
		utils.Info("context cancelled", nil)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("graceful shutdown failed", map[string]any{"error": err.Error()})
		return
	}
	utils.Info("server stopped", nil)
}

// openStores builds the tender/bid store and the notification store selected by cfg
func openStores(ctx context.Context, cfg config.Config) (stores, error) {
	var st stores

	switch cfg.StoreDriver {
	case config.DriverPostgres:
		if err := db.RunMigrations(cfg.MigrationURL, cfg.PostgresConn); err != nil {
			return st, err
		}
		utils.Info("db migrated successfully", nil)

		pool, err := db.InitDb(ctx, cfg)
		if err != nil {
			return st, err
		}
		st.closers = append(st.closers, pool.Close)

		repo := repository.NewPostgresRepo(pool)
		st.tenders, st.bids = repo, repo
	default:
		repo := repository.NewMemoryRepo()
		st.tenders, st.bids = repo, repo
	}

	switch cfg.NotificationDriver {
	case config.DriverRedis:
		client := db.NewRedisClient(cfg)
		if err := db.PingRedis(ctx, client); err != nil {
			_ = client.Close()
			for _, closeFn := range st.closers {
				closeFn()
			}
			return st, err
		}
		st.closers = append(st.closers, func() { _ = client.Close() })
		st.notifications = repository.NewRedisNotificationStore(client, cfg.NotificationKey)
	default:
		st.notifications = repository.NewMemoryNotificationStore()
	}

	return st, nil
}

// prepopulateTenders adds sample tenders, one of them published today
func prepopulateTenders(ctx context.Context, svc *catalog.CatalogService) {
	today := time.Now().Format(model.PublishDateLayout)
	tenders := []model.TenderFields{
		{Name: "Road Resurfacing", Description: "Resurface 12km of state highway", PublishDate: today, ContractPeriod: "18 months", Turnover: "5000000", Experience: "5 years", TenderValue: "1200000", State: "Kerala"},
		{Name: "School Canteen Supply", Description: "Daily meals for 4 schools", PublishDate: "2024-01-15", ContractPeriod: "12 months", Turnover: "800000", Experience: "2 years", TenderValue: "350000", State: "Goa"},
		{Name: "Bridge Inspection", Description: "Structural audit of 3 bridges", PublishDate: "2024-02-01", ContractPeriod: "6 months", Turnover: "1500000", Experience: "8 years", TenderValue: "420000", State: "Assam"},
	}

	for _, fields := range tenders {
		if _, err := svc.CreateTender(ctx, fields); err != nil {
			utils.Warn("could not seed tender", map[string]any{"name": fields.Name, "error": err.Error()})
		}
	}
}
