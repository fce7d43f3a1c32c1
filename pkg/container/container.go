package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"shbudget-backend/internal/config"
	assetHandler "shbudget-backend/internal/domains/asset/handler"
	assetRepo "shbudget-backend/internal/domains/asset/repository"
	assetService "shbudget-backend/internal/domains/asset/service"
	bookHandler "shbudget-backend/internal/domains/book/handler"
	bookRepo "shbudget-backend/internal/domains/book/repository"
	bookService "shbudget-backend/internal/domains/book/service"
	memberHandler "shbudget-backend/internal/domains/member/handler"
	memberRepo "shbudget-backend/internal/domains/member/repository"
	memberService "shbudget-backend/internal/domains/member/service"
	infraCache "shbudget-backend/internal/infrastructure/cache"
	"shbudget-backend/internal/infrastructure/database"
	"shbudget-backend/pkg/cache"
	pkgdb "shbudget-backend/pkg/database"
	"shbudget-backend/pkg/invitecode"

	"shbudget-backend/internal/domains/asset"
	"shbudget-backend/internal/domains/book"
	"shbudget-backend/internal/domains/member"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton living for the whole process.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	MemberRepo     member.Repository
	BookRepo       book.Repository
	BookMemberRepo book.MemberRepository
	AssetRepo      asset.Repository

	MemberService     member.Service
	BookService       book.Service
	BookMemberService book.MemberService
	AssetService      asset.Service

	MemberHandler *memberHandler.MemberHandler
	BookHandler   *bookHandler.BookHandler
	AssetHandler  *assetHandler.AssetHandler
}

// NewContainer builds the full dependency graph in order: config, then
// infrastructure, then repositories, services and handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("config loaded")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	log.Info().Msg("database connected")

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(cfg.Database.MigrationsDir); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Info().Msg("migrations applied")
	}

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	// A cache outage is not fatal; repositories fall back to the store.
	if err := redisCache.Connect(context.Background()); err != nil {
		log.Warn().Err(err).Msg("redis connection failed, running without cache")
	} else {
		log.Info().Msg("redis connected")
	}
	c.Cache = redisCache

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.MemberRepo = memberRepo.NewPostgresRepository(pool, c.Cache)
	c.BookRepo = bookRepo.NewPostgresRepository(pool, c.Cache)
	c.BookMemberRepo = bookRepo.NewPostgresMemberRepository(pool)
	c.AssetRepo = assetRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	pool := c.DB.Pool
	runner := pkgdb.NewRunner(pool)
	codes := invitecode.New()

	c.BookService = bookService.NewBookService(c.BookRepo, c.BookMemberRepo, codes)
	c.BookMemberService = bookService.NewBookMemberService(c.BookMemberRepo, c.BookRepo, c.MemberRepo, pool)
	c.MemberService = memberService.NewMemberService(c.MemberRepo, c.BookService, runner)
	c.AssetService = assetService.NewAssetService(c.AssetRepo, c.BookMemberRepo, c.MemberRepo, asset.NoDependencies{})
}

func (c *Container) initHandlers() {
	c.MemberHandler = memberHandler.NewMemberHandler(c.MemberService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService, c.BookMemberService)
	c.AssetHandler = assetHandler.NewAssetHandler(c.AssetService)
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Warn().Err(err).Msg("failed to close redis connection")
			}
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	log.Info().Msg("container cleaned up")
}
