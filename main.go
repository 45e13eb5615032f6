package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Sain-Biswas/gemini-bot/db"
	"github.com/Sain-Biswas/gemini-bot/pkg/llm"
	"github.com/Sain-Biswas/gemini-bot/services"
	"github.com/Sain-Biswas/gemini-bot/webui"
)

var (
	model      string
	apiURL     string
	apiKey     string
	timeout    string
	authSecret string
	apiKeysEnv string
	listenAddr string
)

func init() {
	_ = godotenv.Load()

	model = os.Getenv("LLM_MODEL")
	apiURL = os.Getenv("LLM_API_URL")
	apiKey = os.Getenv("LLM_API_KEY")
	timeout = os.Getenv("LLM_TIMEOUT")
	authSecret = os.Getenv("AUTH_SECRET")
	apiKeysEnv = os.Getenv("API_KEYS")
	listenAddr = os.Getenv("LISTEN_ADDR")

	if model == "" {
		panic("LLM_MODEL not set")
	}
	if authSecret == "" {
		panic("AUTH_SECRET not set")
	}
	if timeout == "" {
		timeout = "5m"
	}
	if listenAddr == "" {
		listenAddr = ":3000"
	}
}

func main() {
	db.ConnectDB()

	apiKeys := []string{}
	if apiKeysEnv != "" {
		apiKeys = strings.Split(apiKeysEnv, ",")
	}

	app := webui.NewApp(
		webui.WithClient(llm.NewClient(apiKey, apiURL, timeout)),
		webui.WithModel(model),
		webui.WithSystemPrompt(services.SystemPrompt(time.Now())),
		webui.WithAuthSecret(authSecret),
		webui.WithApiKeys(apiKeys...),
		webui.WithChatStore(db.NewChats(db.DB)),
		webui.WithReservationStore(db.NewReservations(db.DB)),
		webui.WithUserStore(db.NewUsers(db.DB)),
		webui.WithUsageStore(db.NewUsage(db.DB)),
	)

	log.Fatal(app.Listen(listenAddr))
}
