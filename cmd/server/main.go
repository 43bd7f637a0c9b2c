package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/kijanigreens/storefront/internal/config"
	"github.com/kijanigreens/storefront/internal/es"
	"github.com/kijanigreens/storefront/internal/events"
	"github.com/kijanigreens/storefront/internal/httpserver"
	"github.com/kijanigreens/storefront/internal/logging"
	loggingmw "github.com/kijanigreens/storefront/internal/middleware/logging"
	"github.com/kijanigreens/storefront/internal/service"
	"github.com/kijanigreens/storefront/internal/store"
	"github.com/kijanigreens/storefront/internal/store/gormstore"
	"github.com/kijanigreens/storefront/internal/store/memstore"
)

// backend is what a storage implementation must provide; both the
// in-memory store and the gorm store satisfy it.
type backend interface {
	store.CatalogStore
	store.CartStore
	store.ContactStore
}

func main() {
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	var (
		st      backend
		dbClose func() error
	)
	if cfg.DatabaseURL == "" {
		st = memstore.New()
		log.Println("using in-memory store")
	} else {
		initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		gs, err := gormstore.Open(initCtx, cfg.DatabaseURL)
		cancel()
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		st = gs
		dbClose = gs.Close
	}

	producer := events.NewProducer(cfg.KafkaBrokers)

	esClient, err := es.NewClient(cfg)
	if err != nil {
		log.Fatalf("elasticsearch: %v", err)
	}

	catalogSvc := &service.CatalogService{Store: st, ES: esClient, ESIndex: cfg.ESIndex}
	cartSvc := &service.CartService{Store: st, Producer: producer}
	contactSvc := &service.ContactService{Store: st, Producer: producer}

	if esClient != nil {
		indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := catalogSvc.IndexProducts(indexCtx)
		cancel()
		if err != nil {
			log.Fatalf("index products: %v", err)
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		CatalogHandler: &httpserver.CatalogHTTP{Svc: catalogSvc},
		CartHandler:    &httpserver.CartHTTP{Svc: cartSvc},
		ContactHandler: &httpserver.ContactHTTP{Svc: contactSvc},
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("storefront listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)

	if err := producer.Close(); err != nil {
		log.Printf("producer close: %v", err)
	}
	if dbClose != nil {
		_ = dbClose()
	}

	log.Println("storefront stopped")
}
