package api

import (
	"log"

	authUsecase "smartlists-backend/internal/auth/usecase"
	captureDelivery "smartlists-backend/internal/capture/delivery"
	captureUsecasePkg "smartlists-backend/internal/capture/usecase"
	itemDelivery "smartlists-backend/internal/item/delivery"
	itemRepo "smartlists-backend/internal/item/repository"
	itemUsecasePkg "smartlists-backend/internal/item/usecase"
	listDelivery "smartlists-backend/internal/list/delivery"
	listRepo "smartlists-backend/internal/list/repository"
	listUsecasePkg "smartlists-backend/internal/list/usecase"
	settingsDelivery "smartlists-backend/internal/settings/delivery"
	settingsRepo "smartlists-backend/internal/settings/repository"
	"smartlists-backend/pkg/ai"
	"smartlists-backend/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase     authUsecase.AuthUsecase
	config          *config.Config
	listHandler     *listDelivery.ListHandler
	itemHandler     *itemDelivery.ItemHandler
	captureHandler  *captureDelivery.CaptureHandler
	settingsHandler *settingsDelivery.SettingsHandler
}

func NewHandler(authUc authUsecase.AuthUsecase, cfg *config.Config, lists listRepo.ListRepository, items itemRepo.ItemRepository, settings settingsRepo.SettingsRepository) *Handler {
	// Initialize runtime config for the settings API
	InitRuntimeConfig(cfg.OllamaBaseURL, cfg.OllamaModel)

	// Initialize the AI service with dynamic Ollama config so runtime
	// updates apply without a restart
	aiCfg := ai.Config{
		Provider:         ai.ProviderType(cfg.AIProvider),
		Timeout:          cfg.AITimeout,
		OpenAIAPIKey:     cfg.OpenAIAPIKey,
		OpenAIModel:      cfg.OpenAIModel,
		OpenAIBaseURL:    cfg.OpenAIBaseURL,
		GeminiAPIKey:     cfg.GeminiAPIKey,
		GeminiModel:      cfg.GeminiModel,
		GetOllamaBaseURL: GetRuntimeOllamaBaseURL,
		GetOllamaModel:   GetRuntimeOllamaModel,
	}
	oracle, err := ai.NewOracleService(aiCfg)
	if err != nil {
		log.Printf("Warning: Failed to initialize AI service: %v", err)
	} else {
		log.Printf("AI service initialized with provider: %s", cfg.AIProvider)
	}

	listUc := listUsecasePkg.NewListUsecase(lists, items)
	if oracle != nil {
		listUc.SetOracleService(oracle)
	}
	itemUc := itemUsecasePkg.NewItemUsecase(items, lists)
	captureUc := captureUsecasePkg.NewCaptureUsecase(lists, items, oracle)

	return &Handler{
		authUsecase:     authUc,
		config:          cfg,
		listHandler:     listDelivery.NewListHandler(listUc),
		itemHandler:     itemDelivery.NewItemHandler(itemUc),
		captureHandler:  captureDelivery.NewCaptureHandler(captureUc),
		settingsHandler: settingsDelivery.NewSettingsHandler(settings),
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	SetupRoutes(r, h)

	return r.Run(addr)
}
