package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"praxida/internal/api"
	"praxida/internal/auth"
	"praxida/internal/config"
	"praxida/internal/service/ai"
	"praxida/internal/service/analysis"
	"praxida/internal/service/chat"
	"praxida/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file, using existing environment")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	store, err := storage.New(cfg.UploadDir)
	if err != nil {
		log.Fatalf("init upload store: %v", err)
	}
	sweepCtx, sweepCancel := context.WithCancel(context.Background())
	defer sweepCancel()
	store.StartSweeper(sweepCtx,
		time.Duration(cfg.UploadSweepInterval)*time.Minute,
		time.Duration(cfg.UploadMaxAge)*time.Minute)

	var llm *ai.Client
	if cfg.LLMConfigured() {
		llm, err = ai.New(context.Background(), cfg)
		if err != nil {
			log.Fatalf("init llm client: %v", err)
		}
	}
	chatSvc := newChatService(llm)
	analysisSvc := newAnalysisService(llm)

	handlers := api.NewHandler(chatSvc, analysisSvc, auth.NewService(), store, cfg)
	router := gin.Default()
	handlers.RegisterRoutes(router)

	log.Printf("Praxida server listening on %s", cfg.Addr())
	if cfg.LLMConfigured() {
		log.Printf("LLM API: configured")
	} else {
		log.Printf("LLM API: not configured, mock mode")
	}
	log.Printf("upload dir: %s", store.Dir())
	log.Printf("public dir: %s", cfg.PublicDir)

	if err := router.Run(cfg.Addr()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// newChatService keeps the nil credential case a true nil interface.
func newChatService(llm *ai.Client) *chat.Service {
	if llm == nil {
		return chat.NewService(nil)
	}
	return chat.NewService(llm)
}

func newAnalysisService(llm *ai.Client) *analysis.Service {
	if llm == nil {
		return analysis.NewService(nil)
	}
	return analysis.NewService(llm)
}
