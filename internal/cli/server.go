package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"feedback-coach/internal/ai"
	"feedback-coach/internal/app"
	"feedback-coach/internal/config"
	"feedback-coach/internal/content"
	"feedback-coach/internal/domain"
	"feedback-coach/internal/infra/memory"
	"feedback-coach/internal/infra/postgres"
	infraredis "feedback-coach/internal/infra/redis"
	"feedback-coach/internal/logger"
	transport "feedback-coach/internal/transport/http"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the coaching server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			defer log.Sync()
			return runServer(cmd.Context(), cfg, *port, log)
		},
	}
}

func runServer(ctx context.Context, cfg config.Config, portFlag string, log *zap.Logger) error {
	if cfg.Postgres.URL != "" {
		if err := runMigrations(ctx, cfg, log); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
	}

	var loader memory.CatalogLoader = memory.NewStaticCatalogLoader(builtinCatalog(cfg))
	if cfg.Postgres.URL != "" {
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
		loader = postgres.NewCatalogLoader(pool)
	}

	catalogTTL := config.TTLDuration(cfg.Catalog.TTL, 10*time.Minute)
	var catalogs app.CatalogRepository
	var identities app.IdentityStore
	if redisClient != nil {
		catalogs = infraredis.NewCatalogRepository(redisClient, loader, catalogTTL, log)
		identities = infraredis.NewIdentityStore(redisClient)
	} else {
		catalogs = memory.NewCatalogRepository(loader, catalogTTL)
		identities = memory.NewIdentityStore()
	}

	completer, err := newCompleter(ctx, cfg.AI, log)
	if err != nil {
		return err
	}
	gateway := ai.NewGateway(completer, log.Named("ai"))
	ids := app.NewSessionIDs(identities, log)
	service := app.NewCoachService(catalogs, catalogID(cfg), ids, gateway, ai.NewReply, log.Named("coach"))

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.Handle("/api/catalog", transport.NewCatalogHandler(service, log))
	mux.HandleFunc("/ws", transport.NewWSHandler(service, log.Named("ws")).ServeWS)

	// No WriteTimeout: WebSocket connections and AI replies outlive it.
	server := &http.Server{
		Addr:              ":" + finalPort,
		Handler:           mux,
		ReadHeaderTimeout: 15 * time.Second,
	}

	go func() {
		log.Info("starting coaching service", zap.String("port", finalPort), zap.String("ai_backend", cfg.AI.Backend))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Info("shutting down server...")
	case <-ctx.Done():
		log.Info("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// newCompleter picks the AI backend. Missing credentials are reported per call.
func newCompleter(ctx context.Context, cfg config.AI, log *zap.Logger) (ai.Completer, error) {
	switch cfg.Backend {
	case config.BackendGemini:
		log.Info("using gemini backend", zap.Bool("configured", cfg.Gemini.APIKey != ""), logger.Secret("api_key", cfg.Gemini.APIKey))
		return ai.NewGeminiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, log.Named("gemini"))
	case config.BackendProTalk, "":
		log.Info("using pro-talk backend",
			zap.Bool("configured", cfg.ProTalk.BotToken != "" && cfg.ProTalk.BotID != ""),
			logger.Secret("bot_token", cfg.ProTalk.BotToken))
		return ai.NewProTalkClient(cfg.ProTalk.BaseURL, cfg.ProTalk.BotToken, cfg.ProTalk.BotID, nil, log.Named("protalk")), nil
	default:
		return nil, errors.New("unknown ai backend " + cfg.Backend)
	}
}

func catalogID(cfg config.Config) string {
	if cfg.Catalog.ID == "" {
		return content.DefaultCatalogID
	}
	return cfg.Catalog.ID
}

// builtinCatalog returns the bundled content under the configured id.
func builtinCatalog(cfg config.Config) domain.Catalog {
	catalog := content.Builtin()
	catalog.ID = catalogID(cfg)
	return catalog
}
