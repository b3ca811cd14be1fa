package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"quiz-backend/internal/app"
	"quiz-backend/internal/auth"
	"quiz-backend/internal/config"
	"quiz-backend/internal/domain"
	"quiz-backend/internal/infra/memory"
	"quiz-backend/internal/infra/postgres"
	redisinfra "quiz-backend/internal/infra/redis"
	"quiz-backend/internal/seed"
	transport "quiz-backend/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

type repositories struct {
	questions app.QuestionRepository
	configs   app.ConfigRepository
	attempts  app.AttemptRepository
	users     app.UserRepository
	revoker   app.TokenRevoker
	feed      app.AttemptFeed
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("jwt secret not configured (auth.jwt_secret or JWT_SECRET)")
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var repos repositories
	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
		pool, err := connectPool(ctx, cfg)
		if err != nil {
			return err
		}
		defer pool.Close()
		repos = postgresRepositories(pool)
	} else {
		log.Printf("postgres url not configured, using in-memory storage")
		repos = memoryRepositories(cfg.Seed.Questions)
	}

	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		channel := cfg.Redis.Channel
		if channel == "" {
			channel = redisinfra.DefaultFeedChannel
		}
		repos.revoker = redisinfra.NewTokenRevoker(redisClient)
		repos.feed = redisinfra.NewAttemptFeed(redisClient, channel)
	}

	issuer := auth.NewIssuer(
		cfg.Auth.JWTSecret,
		config.TTLDuration(cfg.Auth.AccessTTL, auth.DefaultAccessTTL),
		config.TTLDuration(cfg.Auth.RefreshTTL, auth.DefaultRefreshTTL),
	)

	router := transport.NewRouter(transport.Services{
		Quiz:  app.NewQuizService(repos.questions, repos.configs, repos.attempts, repos.feed),
		Stats: app.NewStatsService(repos.questions, repos.attempts),
		Auth:  app.NewAuthService(repos.users, repos.revoker, issuer),
		Feed:  repos.feed,
	})

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      router,
		ReadTimeout:  config.TTLDuration(cfg.Server.ReadTimeout, 15*time.Second),
		WriteTimeout: config.TTLDuration(cfg.Server.WriteTimeout, 15*time.Second),
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("starting quiz backend on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-serveErr:
		return fmt.Errorf("serve http: %w", err)
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func connectPool(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return pool, nil
}

func postgresRepositories(pool *pgxpool.Pool) repositories {
	return repositories{
		questions: postgres.NewQuestionRepository(pool),
		configs:   postgres.NewConfigRepository(pool),
		attempts:  postgres.NewAttemptRepository(pool),
		users:     postgres.NewUserRepository(pool),
		revoker:   memory.NewTokenRevoker(),
		feed:      memory.NewAttemptFeed(),
	}
}

// memoryRepositories backs everything in process; state is lost on restart.
func memoryRepositories(withSampleQuestions bool) repositories {
	var questions []domain.Question
	if withSampleQuestions {
		questions = seed.Questions()
	}
	users := memory.NewUserStore()
	return repositories{
		questions: memory.NewQuestionStore(questions),
		configs:   memory.NewConfigStore(),
		attempts:  memory.NewAttemptStore(users),
		users:     users,
		revoker:   memory.NewTokenRevoker(),
		feed:      memory.NewAttemptFeed(),
	}
}
