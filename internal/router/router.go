package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"stockroom/internal/config"
	"stockroom/internal/handler"
	"stockroom/internal/middleware"
	"stockroom/internal/repository"
	"stockroom/internal/service"
	"stockroom/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	warehouseRepo := repository.NewWarehouseRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	itemRepo := repository.NewItemRepository(db)
	ledgerRepo := repository.NewStockTransactionRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	reportCache := service.NewReportCache(rdb)
	itemSvc := service.NewItemService(itemRepo, ledgerRepo, warehouseRepo, categoryRepo, reportCache, dispatcher)
	reportSvc := service.NewReportService(itemRepo, ledgerRepo, warehouseRepo, reportCache)
	warehouseSvc := service.NewWarehouseService(warehouseRepo, itemRepo)
	categorySvc := service.NewCategoryService(categoryRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	itemsH := handler.NewItemsHandler(itemSvc)
	reportsH := handler.NewReportsHandler(reportSvc)
	warehousesH := handler.NewWarehousesHandler(warehouseSvc)
	categoriesH := handler.NewCategoriesHandler(categorySvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))

	api := r.Group("/api")
	{
		items := api.Group("/items")
		{
			items.POST("", itemsH.Create)
			items.GET("", itemsH.List)
			items.GET("/warehouse/:warehouseId", itemsH.ListByWarehouse)
			items.GET("/:id", itemsH.Get)
			items.POST("/:id/stock-in", itemsH.StockIn)
			items.POST("/:id/stock-out", itemsH.StockOut)
			items.DELETE("/:id", itemsH.Delete)
		}

		reports := api.Group("/reports")
		{
			reports.GET("/monthly", reportsH.Monthly)
			reports.GET("/monthly/export", reportsH.MonthlyExport)
			reports.GET("/low-stock", reportsH.LowStock)
			reports.GET("/logs/warehouse/:warehouseId", reportsH.WarehouseLogs)
			reports.GET("/logs/warehouse/:warehouseId/export", reportsH.WarehouseLogsExport)
		}

		warehouses := api.Group("/warehouses")
		{
			warehouses.POST("", warehousesH.Create)
			warehouses.GET("", warehousesH.List)
			warehouses.GET("/:id", warehousesH.Get)
			warehouses.PUT("/:id", warehousesH.Update)
			warehouses.DELETE("/:id", warehousesH.Delete)
		}

		categories := api.Group("/categories")
		{
			categories.POST("", categoriesH.Create)
			categories.GET("", categoriesH.List)
			categories.PUT("/:id", categoriesH.Update)
			categories.DELETE("/:id", categoriesH.Delete)
		}
	}

	return r
}
