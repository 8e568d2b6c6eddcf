// README: Entry point; loads config, wires collaborators, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"tripcraft/internal/ai"
	"tripcraft/internal/config"
	httptransport "tripcraft/internal/http"
	"tripcraft/internal/infra"
	"tripcraft/internal/modules/aiusage"
	"tripcraft/internal/planner"
	"tripcraft/internal/search"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Generation provider is optional: without a key the planner serves
	// templated itineraries and suggestions.
	var generator ai.Generator
	switch {
	case cfg.AI.Provider == "openai" && cfg.AI.OpenAIKey != "":
		provider, err := ai.NewOpenAIProvider(cfg.AI.OpenAIKey)
		if err != nil {
			log.Fatalf("openai init: %v", err)
		}
		generator = provider
	case cfg.AI.GeminiKey != "":
		provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer provider.Close()
		generator = provider
	default:
		log.Print("no generation API key configured; using templated fallbacks")
	}

	// Usage recording is optional: it needs a database.
	var usageSvc *aiusage.Service
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatal(err)
		}
		defer dbPool.Close()
		usageSvc = aiusage.NewService(aiusage.NewStore(dbPool))
	}

	catalog := search.NewCatalog()
	var flights search.FlightSource = catalog
	var hotels search.HotelSource = catalog
	var activities search.ActivitySource = catalog

	if cfg.Search.MapsKey != "" {
		places, err := search.NewPlacesSource(cfg.Search.MapsKey)
		if err != nil {
			log.Fatalf("places init: %v", err)
		}
		activities = places
	}

	if cfg.Redis.Addr != "" {
		redisClient := infra.NewRedis(cfg.Redis.Addr)
		cached := search.NewCachedSources(flights, hotels, activities, redisClient, cfg.Search.CacheTTL)
		flights, hotels, activities = cached, cached, cached
	}

	driver := planner.NewDriver(planner.DriverDeps{
		Flights:    flights,
		Hotels:     hotels,
		Activities: activities,
		Gen:        generator,
		Usage:      usageSvc,
		GenTimeout: cfg.AI.Timeout,
	})

	handler := httptransport.NewServer(httptransport.ServerDeps{Planner: driver})
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
