package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/astra-cloud/astra/internal/config"
	"github.com/astra-cloud/astra/internal/driver"
	"github.com/astra-cloud/astra/internal/llm"
	"github.com/astra-cloud/astra/internal/server"
	"github.com/astra-cloud/astra/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Could not load %s: %v. Using defaults", cfgPath, err)
		cfg = config.Default()
	}
	applyEnvOverrides(cfg)

	dbURI := cfg.Memgraph.URI
	if dbURI == "" {
		dbURI = "bolt://localhost:7687"
	}
	d, err := driver.NewMemgraphDriver(dbURI, cfg.Memgraph.User, cfg.Memgraph.Password)
	if err != nil {
		log.Fatalf("Failed to connect to Memgraph: %v", err)
	}
	defer d.Close(context.Background())

	if err := d.BuildIndices(context.Background()); err != nil {
		log.Printf("Warning: failed to build indices: %v", err)
	}

	var llmClient llm.Client
	var embedder llm.Embedder
	if cfg.LLM.Provider != "" {
		llmClient, embedder, err = llm.NewClient(context.Background(), cfg.LLM)
		if err != nil {
			log.Printf("LLM unavailable (chat will run in demo mode): %v", err)
		}
	} else {
		log.Println("No LLM provider configured, chat will run in demo mode")
	}

	srv := server.New(cfg, llmClient, embedder, store.New(d))
	r := srv.SetupRouter()

	log.Printf("Starting server on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}

func applyEnvOverrides(cfg *config.Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.Server.CORSOrigins = v
	}
	if v := os.Getenv("MEMGRAPH_URI"); v != "" {
		cfg.Memgraph.URI = v
	}
	if v := os.Getenv("MEMGRAPH_USER"); v != "" {
		cfg.Memgraph.User = v
	}
	if v := os.Getenv("MEMGRAPH_PASSWORD"); v != "" {
		cfg.Memgraph.Password = v
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_EMBEDDING_MODEL"); v != "" {
		cfg.LLM.EmbeddingModel = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("CARBON_DEFAULT_REGION"); v != "" {
		cfg.Carbon.DefaultRegion = v
	}
}
