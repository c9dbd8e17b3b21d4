package main

import (
	"log"

	api "smartlists-backend/cmd/api"
	authdomain "smartlists-backend/internal/auth/domain"
	authRepo "smartlists-backend/internal/auth/repository"
	authUsecase "smartlists-backend/internal/auth/usecase"
	itemdomain "smartlists-backend/internal/item/domain"
	itemRepo "smartlists-backend/internal/item/repository"
	listdomain "smartlists-backend/internal/list/domain"
	listRepo "smartlists-backend/internal/list/repository"
	settingsdomain "smartlists-backend/internal/settings/domain"
	settingsRepo "smartlists-backend/internal/settings/repository"
	"smartlists-backend/pkg/config"
	"smartlists-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.RefreshToken{}, &listdomain.List{}, &itemdomain.ListItem{}, &settingsdomain.UserSettings{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	listRepository := listRepo.NewGormListRepository(db)
	itemRepository := itemRepo.NewGormItemRepository(db)
	settingsRepository := settingsRepo.NewGormSettingsRepository(db)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, cfg, listRepository, itemRepository, settingsRepository)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
