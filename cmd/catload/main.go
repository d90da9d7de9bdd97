// Command catload seeds the catalog from a JSON fixture file.
//
// Usage:
//
//	catload -file catalog.json -addr localhost:6379 [-prefix searchd]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	dbRedis "github.com/lensbook/searchd/internal/db/redis"
	"github.com/lensbook/searchd/internal/domain/catalog"
	logpkg "github.com/lensbook/searchd/internal/logger"
	catalogrepo "github.com/lensbook/searchd/internal/repository/catalog"
	"github.com/lensbook/searchd/internal/version"
)

type fixture struct {
	Categories []categoryRow `json:"categories"`
	Vendors    []vendorRow   `json:"vendors"`
	Services   []serviceRow  `json:"services"`
}

type categoryRow struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type vendorRow struct {
	ID            string   `json:"id"`
	BusinessName  string   `json:"businessName"`
	Location      string   `json:"location"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	AverageRating float64  `json:"averageRating"`
	IsVerified    bool     `json:"isVerified"`
}

type serviceRow struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"basePrice"`
	PricingType string  `json:"pricingType"`
	Status      string  `json:"status"`
	CategoryID  string  `json:"categoryId"`
	VendorID    string  `json:"vendorId"`
	CreatedAt   int64   `json:"createdAt"`
}

func main() {
	var (
		file     = flag.String("file", "", "path to the catalog fixture JSON")
		addr     = flag.String("addr", "localhost:6379", "database address")
		password = flag.String("password", "", "database password")
		prefix   = flag.String("prefix", catalogrepo.DefaultKeyPrefix, "storage key prefix")
	)
	flag.Parse()

	logger, err := logpkg.NewLogger("local", "")
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting catalog loader", zap.String("build", version.String()))

	if *file == "" {
		logger.Fatal("the -file flag is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, *file, *addr, *password, *prefix); err != nil {
		logger.Fatal("load failed", zap.Error(err))
	}
}

func run(ctx context.Context, logger *zap.Logger, file, addr, password, prefix string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read fixture: %w", err)
	}

	var fix fixture
	if err := json.Unmarshal(data, &fix); err != nil {
		return fmt.Errorf("parse fixture: %w", err)
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    []string{addr},
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("create store: %w", err)
	}
	defer store.Close()

	if err := store.WaitForReady(ctx, 10*time.Second); err != nil {
		return fmt.Errorf("database not ready: %w", err)
	}

	repo := catalogrepo.New(store).WithKeyPrefix(prefix)

	for i := range fix.Categories {
		row := &fix.Categories[i]
		if row.ID == "" {
			row.ID = uuid.NewString()
		}
		c, err := catalog.NewCategory(row.ID, row.Name, row.Slug)
		if err != nil {
			return fmt.Errorf("category %q: %w", row.Name, err)
		}
		if err := repo.PutCategory(ctx, &c); err != nil {
			return err
		}
	}
	logger.Info("Categories loaded", zap.Int("count", len(fix.Categories)))

	for i := range fix.Vendors {
		row := &fix.Vendors[i]
		if row.ID == "" {
			row.ID = uuid.NewString()
		}
		v, err := catalog.NewVendor(
			row.ID, row.BusinessName, row.Location,
			row.Latitude, row.Longitude,
			row.AverageRating, row.IsVerified,
		)
		if err != nil {
			return fmt.Errorf("vendor %q: %w", row.BusinessName, err)
		}
		if err := repo.PutVendor(ctx, &v); err != nil {
			return err
		}
	}
	logger.Info("Vendors loaded", zap.Int("count", len(fix.Vendors)))

	services := make([]catalog.Service, 0, len(fix.Services))
	for i := range fix.Services {
		row := &fix.Services[i]
		if row.ID == "" {
			row.ID = uuid.NewString()
		}
		if row.CreatedAt == 0 {
			row.CreatedAt = time.Now().UnixMilli()
		}
		svc, err := catalog.NewService(
			row.ID, row.Name, row.Description,
			row.BasePrice,
			catalog.PricingType(row.PricingType),
			catalog.Status(row.Status),
			row.CategoryID, row.VendorID,
			row.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("service %q: %w", row.Name, err)
		}
		services = append(services, svc)
	}
	if err := repo.PutServices(ctx, services); err != nil {
		return err
	}
	logger.Info("Services loaded", zap.Int("count", len(services)))

	return nil
}
