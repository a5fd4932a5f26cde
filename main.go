package main

import (
	"RestaurantApp/app/config"
	"RestaurantApp/app/database"
	"RestaurantApp/app/services"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

// App aggregates the services the desktop shell binds against.
type App struct {
	Config             *config.AppConfig
	MenuService        *services.MenuService
	OrderService       *services.OrderService
	AccountService     *services.AccountService
	SupplierService    *services.SupplierService
	RawMaterialService *services.RawMaterialService
	DashboardService   *services.DashboardService
}

// NewApp wires every service against the shared database.
func NewApp(cfg *config.AppConfig) *App {
	app := &App{
		Config:             cfg,
		MenuService:        services.NewMenuService(),
		OrderService:       services.NewOrderService(),
		AccountService:     services.NewAccountService(),
		SupplierService:    services.NewSupplierService(),
		RawMaterialService: services.NewRawMaterialService(),
		DashboardService:   services.NewDashboardService(),
	}
	app.OrderService.SetUsagePerUnit(cfg.Inventory.UsagePerUnit)
	return app
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("No usable config (%v), writing defaults", err)
		cfg = config.DefaultConfig()
		if err := config.SaveConfig(cfg); err != nil {
			log.Printf("Warning: could not save default config: %v", err)
		}
	}

	if err := database.Initialize(cfg.Database.Path); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	app := NewApp(cfg)
	log.Printf("Restaurant backend ready (database: %s)", app.Config.Database.Path)

	// The desktop shell drives the services from here; headless runs wait
	// for a signal.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
}
