package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/application/ledger"
	"github.com/tu-usuario/almacen-api/internal/application/report"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
	"github.com/tu-usuario/almacen-api/internal/infrastructure/memory"
	infrapdf "github.com/tu-usuario/almacen-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/almacen-api/internal/interfaces/http"
	"github.com/tu-usuario/almacen-api/pkg/config"
	"github.com/tu-usuario/almacen-api/pkg/logger"
)

// repos agrupa los puertos de persistencia ya atados a un driver.
type repos struct {
	movements  repository.StockMovementRepository
	stocks     repository.ProductStockRepository
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
	suppliers  repository.SupplierRepository
	customers  repository.CustomerRepository
	orders     repository.OrderRepository
	txRunner   interface {
		ledger.TxRunner
		inventory.TxRunner
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var r repos
	switch cfg.Storage.Driver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		r = repos{
			movements:  postgres.NewStockMovementRepository(pool),
			stocks:     postgres.NewProductStockRepository(pool),
			products:   postgres.NewProductRepository(pool),
			warehouses: postgres.NewWarehouseRepository(pool),
			suppliers:  postgres.NewSupplierRepository(pool),
			customers:  postgres.NewCustomerRepository(pool),
			orders:     postgres.NewOrderRepository(pool),
			txRunner:   postgres.NewTxRunner(pool),
		}
	default: // memory
		store := memory.NewStore()
		if cfg.Storage.Seed {
			store.Seed()
			log.Info().Msg("datos de ejemplo cargados")
		}
		r = repos{
			movements:  store.Movements(),
			stocks:     store.Stocks(),
			products:   store.Products(),
			warehouses: store.Warehouses(),
			suppliers:  store.Suppliers(),
			customers:  store.Customers(),
			orders:     store.Orders(),
			txRunner:   memory.NewTxRunner(store),
		}
	}

	stockUC := inventory.NewStockUseCase(r.txRunner, r.products, r.warehouses, r.suppliers)
	ledgerUC := ledger.NewUseCase(r.txRunner, r.movements)
	productUC := usecase.NewProductUseCase(r.products, r.stocks)
	warehouseUC := usecase.NewWarehouseUseCase(r.warehouses)
	supplierUC := usecase.NewSupplierUseCase(r.suppliers)
	customerUC := usecase.NewCustomerUseCase(r.customers)
	orderUC := usecase.NewOrderUseCase(r.orders, r.products, r.customers, r.suppliers)
	reportUC := report.NewUseCase(r.movements, r.products, infrapdf.NewMarotoPDFGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacén API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		WarehouseUC: warehouseUC,
		SupplierUC:  supplierUC,
		CustomerUC:  customerUC,
		OrderUC:     orderUC,
		StockUC:     stockUC,
		LedgerUC:    ledgerUC,
		ReportUC:    reportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
