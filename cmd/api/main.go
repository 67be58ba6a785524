package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"trivia/internal/api/handler"
	"trivia/internal/datastore"
	"trivia/internal/pkg/caching"
	"trivia/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/db"
	"github.com/hiendaovinh/toolkit/pkg/env"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/uptrace/bun"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

func init() {
	// for development
	//nolint:errcheck
	godotenv.Load("../../.env")

	// for production
	//nolint:errcheck
	godotenv.Load("./.env")
}

func main() {
	vs, err := env.EnvsRequired(
		"DB_DSN",
	)
	if err != nil {
		log.Fatal(err)
	}

	container := NewContainer(vs)

	app := &cli.App{
		Name: "api",
		Commands: []*cli.Command{
			commandServer(container),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func commandServer(container *do.Injector) *cli.Command {
	return &cli.Command{
		Name:  "server",
		Usage: "start the web server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Value: "0.0.0.0:8080",
				Usage: "serve address",
			},
			&cli.BoolFlag{
				Name:  "create-tables",
				Value: true,
				Usage: "create missing tables before serving",
			},
		},
		Action: func(c *cli.Context) error {
			vs := do.MustInvokeNamed[map[string]string](container, "envs")

			if c.Bool("create-tables") {
				postgresDB, err := do.Invoke[*bun.DB](container)
				if err != nil {
					return err
				}
				if err := datastore.CreateTables(c.Context, postgresDB); err != nil {
					return err
				}
			}

			router, err := handler.New(&handler.Config{
				Container: container,
				Mode:      vs["API_MODE"],
				Origins:   strings.Split(vs["API_ORIGINS"], ","),
			})
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:    c.String("addr"),
				Handler: router,
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errWg, errCtx := errgroup.WithContext(ctx)

			errWg.Go(func() error {
				log.Printf("ListenAndServe: %s (%s)\n", c.String("addr"), vs["API_MODE"])
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					return err
				}
				return nil
			})

			errWg.Go(func() error {
				<-errCtx.Done()
				return srv.Shutdown(context.TODO())
			})

			return errWg.Wait()
		},
	}
}

func NewContainer(vs map[string]string) *do.Injector {
	injector := do.New()
	vs["DB_DRIVER"] = os.Getenv("DB_DRIVER")
	vs["API_MODE"] = os.Getenv("API_MODE")
	vs["API_ORIGINS"] = os.Getenv("API_ORIGINS")
	vs["CACHE_LOCAL"] = os.Getenv("CACHE_LOCAL")

	if vs["DB_DRIVER"] == "" {
		vs["DB_DRIVER"] = datastore.DriverPostgres
	}
	if vs["API_MODE"] == "" {
		vs["API_MODE"] = "production"
	}
	if vs["API_ORIGINS"] == "" {
		vs["API_ORIGINS"] = "*"
	}

	do.ProvideNamedValue(injector, "envs", vs)

	do.Provide(injector, func(i *do.Injector) (*bun.DB, error) {
		if vs["DB_DRIVER"] == datastore.DriverSQLite {
			return datastore.OpenSQLite(vs["DB_DSN"])
		}
		return datastore.OpenPostgres(vs["DB_DSN"], os.Getenv("DB_PASSWORD")), nil
	})

	// nil when no redis is configured, the cache then stays in process
	do.ProvideNamed(injector, "redis-cache", func(i *do.Injector) (redis.UniversalClient, error) {
		clusterCacheRedisURL := os.Getenv("CLUSTER_REDIS_CACHE")
		if clusterCacheRedisURL != "" {
			clusterOpts, err := redis.ParseClusterURL(clusterCacheRedisURL)
			if err != nil {
				return nil, err
			}
			return redis.NewClusterClient(clusterOpts), nil
		}

		cacheRedisURL := os.Getenv("REDIS_CACHE")
		if cacheRedisURL == "" {
			return nil, nil
		}
		dbRedis, err := db.InitRedis(&db.RedisConfig{
			URL: cacheRedisURL,
		})
		if err != nil {
			return nil, err
		}
		return dbRedis, nil
	})

	do.Provide(injector, func(i *do.Injector) (caching.Cache, error) {
		dbRedis, err := do.InvokeNamed[redis.UniversalClient](i, "redis-cache")
		if err != nil {
			return nil, err
		}

		return caching.NewCacheRedis(dbRedis, vs["CACHE_LOCAL"] != "false")
	})

	services.Register(injector)

	return injector
}
