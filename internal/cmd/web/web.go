// Package web parses web command flags and launches the browser-facing
// JavaBite service.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	entrypoint "github.com/louisbranch/javabite/internal/platform/cmd"
	"github.com/louisbranch/javabite/internal/platform/timeouts"
	"github.com/louisbranch/javabite/internal/services/web"
	"github.com/louisbranch/javabite/internal/services/web/cart"
	"github.com/louisbranch/javabite/internal/services/web/infra/cache"
	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
	"github.com/louisbranch/javabite/internal/services/web/session"
	webstorage "github.com/louisbranch/javabite/internal/services/web/storage"
	webredis "github.com/louisbranch/javabite/internal/services/web/storage/redis"
	websqlite "github.com/louisbranch/javabite/internal/services/web/storage/sqlite"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string        `env:"JAVABITE_WEB_HTTP_ADDR" envDefault:":8086"`
	APIURL              string        `env:"JAVABITE_API_URL" envDefault:"http://localhost:8080/api"`
	APITimeout          time.Duration `env:"JAVABITE_WEB_API_TIMEOUT" envDefault:"10s"`
	DBPath              string        `env:"JAVABITE_WEB_DB_PATH" envDefault:"data/javabite-web.db"`
	RedisAddr           string        `env:"JAVABITE_WEB_REDIS_ADDR"`
	RedisPassword       string        `env:"JAVABITE_WEB_REDIS_PASSWORD"`
	RedisDB             int           `env:"JAVABITE_WEB_REDIS_DB" envDefault:"0"`
	SessionTTL          time.Duration `env:"JAVABITE_WEB_SESSION_TTL" envDefault:"168h"`
	MenuCacheTTL        time.Duration `env:"JAVABITE_WEB_MENU_CACHE_TTL" envDefault:"60s"`
	PollInterval        time.Duration `env:"JAVABITE_WEB_POLL_INTERVAL" envDefault:"30s"`
	TrustForwardedProto bool          `env:"JAVABITE_WEB_TRUST_FORWARDED_PROTO" envDefault:"false"`
	RazorpayKeyID       string        `env:"JAVABITE_RAZORPAY_KEY_ID"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "JavaBite backend base URL")
	fs.DurationVar(&cfg.APITimeout, "api-timeout", cfg.APITimeout, "backend request timeout")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite path for sessions, carts and cache")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "Redis address for the menu cache (empty uses SQLite)")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "idle session lifetime")
	fs.DurationVar(&cfg.MenuCacheTTL, "menu-cache-ttl", cfg.MenuCacheTTL, "menu cache lifetime")
	fs.DurationVar(&cfg.PollInterval, "poll-interval", cfg.PollInterval, "staff order board refresh interval")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "trust X-Forwarded-Proto for cookie and origin checks")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		return serve(ctx, cfg)
	})
}

func serve(ctx context.Context, cfg Config) error {
	store, err := websqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open web store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close web store err=%v", err)
		}
	}()
	if pruned, err := store.DeleteExpiredSessions(ctx, time.Now().UTC()); err != nil {
		log.Printf("prune expired sessions err=%v", err)
	} else if pruned > 0 {
		log.Printf("pruned expired sessions count=%d", pruned)
	}

	cacheStore, closeCache, err := openCacheStore(ctx, cfg, store)
	if err != nil {
		return err
	}
	defer closeCache()

	api, err := restapi.New(restapi.Options{BaseURL: cfg.APIURL, Timeout: cfg.APITimeout})
	if err != nil {
		return fmt.Errorf("init backend client: %w", err)
	}

	server, err := web.NewServer(ctx, web.Config{
		HTTPAddr:            cfg.HTTPAddr,
		API:                 api,
		Sessions:            session.NewManager(api, store, session.Options{TTL: cfg.SessionTTL}),
		Carts:               cart.NewRepository(store),
		MenuCache:           cache.NewMenuCache(cacheStore, cfg.MenuCacheTTL),
		RazorpayKeyID:       cfg.RazorpayKeyID,
		PollInterval:        cfg.PollInterval,
		TrustForwardedProto: cfg.TrustForwardedProto,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}

// openCacheStore picks Redis for the menu cache when an address is set and
// falls back to the SQLite store otherwise.
func openCacheStore(ctx context.Context, cfg Config, fallback webstorage.CacheStore) (webstorage.CacheStore, func(), error) {
	if cfg.RedisAddr == "" {
		return fallback, func() {}, nil
	}
	openCtx, cancel := context.WithTimeout(ctx, timeouts.StoreOpen)
	defer cancel()
	redisStore, err := webredis.Open(openCtx, webredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("open redis cache: %w", err)
	}
	return redisStore, func() {
		if err := redisStore.Close(); err != nil {
			log.Printf("close redis cache err=%v", err)
		}
	}, nil
}
