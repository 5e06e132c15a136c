package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"stillform-backend/internal/config"
	infraCache "stillform-backend/internal/infrastructure/cache"
	"stillform-backend/internal/infrastructure/chain"
	"stillform-backend/internal/infrastructure/database"
	"stillform-backend/internal/infrastructure/docstore"
	"stillform-backend/internal/infrastructure/queue"
	"stillform-backend/internal/infrastructure/storage"
	"stillform-backend/pkg/cache"
	"stillform-backend/pkg/jwt"

	authHandler "stillform-backend/internal/domains/auth/handler"
	authService "stillform-backend/internal/domains/auth/service"
	chainHandler "stillform-backend/internal/domains/chain/handler"
	chainService "stillform-backend/internal/domains/chain/service"
	collectionHandler "stillform-backend/internal/domains/collection/handler"
	collectionModel "stillform-backend/internal/domains/collection/model"
	collectionRepo "stillform-backend/internal/domains/collection/repository"
	collectionService "stillform-backend/internal/domains/collection/service"
	orderHandler "stillform-backend/internal/domains/order/handler"
	orderModel "stillform-backend/internal/domains/order/model"
	orderRepo "stillform-backend/internal/domains/order/repository"
	orderService "stillform-backend/internal/domains/order/service"
	physicalizationHandler "stillform-backend/internal/domains/physicalization/handler"
	physicalizationModel "stillform-backend/internal/domains/physicalization/model"
	physicalizationRepo "stillform-backend/internal/domains/physicalization/repository"
	physicalizationService "stillform-backend/internal/domains/physicalization/service"
	publishHandler "stillform-backend/internal/domains/publish/handler"
	publishService "stillform-backend/internal/domains/publish/service"
	uploadHandler "stillform-backend/internal/domains/upload/handler"
	uploadService "stillform-backend/internal/domains/upload/service"
	workHandler "stillform-backend/internal/domains/work/handler"
	workModel "stillform-backend/internal/domains/work/model"
	workRepo "stillform-backend/internal/domains/work/repository"
	workService "stillform-backend/internal/domains/work/service"

	"github.com/ethereum/go-ethereum/ethclient"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph.
// Order: config → infrastructure → repositories → services → handlers.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config     *config.Config
	DB         *database.PostgresDB    // nil with STORE_DRIVER=memory
	Redis      *infraCache.RedisClient // nil when Redis is disabled or unreachable
	Cache      cache.Cache
	Queue      queue.Enqueuer
	Storage    *storage.S3Storage // nil when FILEBASE_* is not set
	RPC        *ethclient.Client  // nil when RPC_URL is not set
	Chain      *chain.Reader
	JWTManager *jwt.Manager

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	WorkRepo            workRepo.RepositoryInterface
	OrderRepo           orderRepo.RepositoryInterface
	CollectionRepo      collectionRepo.RepositoryInterface
	PhysicalizationRepo physicalizationRepo.RepositoryInterface

	// ========================================
	// SERVICE LAYER
	// ========================================
	WorkService            workService.ServiceInterface
	OrderService           orderService.ServiceInterface
	CollectionService      collectionService.ServiceInterface
	PhysicalizationService physicalizationService.ServiceInterface
	UploadService          uploadService.ServiceInterface
	ChainService           chainService.ServiceInterface
	AuthService            authService.ServiceInterface
	PublishService         publishService.ServiceInterface

	// ========================================
	// HANDLER LAYER
	// ========================================
	WorkHandler            *workHandler.Handler
	OrderHandler           *orderHandler.OrderHandler
	CollectionHandler      *collectionHandler.Handler
	PhysicalizationHandler *physicalizationHandler.Handler
	UploadHandler          *uploadHandler.Handler
	ChainHandler           *chainHandler.Handler
	AuthHandler            *authHandler.Handler
	PublishHandler         *publishHandler.Handler

	asynqClient *queue.AsynqEnqueuer
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the whole dependency graph.
// Only the database is fatal; Redis, storage and RPC degrade to fallbacks.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s, Store: %s)", cfg.App.Environment, cfg.Store.Driver)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	if cfg.Store.Driver == "postgres" {
		log.Println("🗄️  Connecting to PostgreSQL...")

		dbConfig, err := config.LoadDatabaseConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load database config: %w", err)
		}

		db := database.NewPostgresDB(dbConfig)
		if err := db.Connect(ctx); err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		c.DB = db
		log.Println("✅ Database connected")
	} else {
		log.Println("🗄️  Using in-memory store")
	}

	// ========================================
	// STEP 3: INITIALIZE CACHE AND QUEUE
	// ========================================
	c.initRedis(ctx)

	// ========================================
	// STEP 4: EXTERNAL SERVICES
	// ========================================
	c.initStorage()
	c.initChain(ctx)
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.SessionExpiry)

	// ========================================
	// STEP 5: INITIALIZE REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")

	if err := c.initRepositories(ctx); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to init repositories: %w", err)
	}
	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 6: INITIALIZE SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")
	c.initServices()
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 7: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")
	c.initHandlers()
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRedis(ctx context.Context) {
	cfg := c.Config.Redis

	c.Cache = cache.NewNoop()
	c.Queue = queue.NewLogEnqueuer()

	if !cfg.Enabled {
		log.Println("⚠️  Redis disabled - cache off, background tasks are only logged")
		return
	}

	log.Println("🔴 Connecting to Redis...")
	client := infraCache.NewRedisClient(cfg.Host, cfg.Password, cfg.DB)
	if err := client.Connect(ctx); err != nil {
		// Redis failure is not critical
		log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		_ = client.Close()
		return
	}

	c.Redis = client
	c.Cache = infraCache.NewRedisCache(client.Client)
	c.asynqClient = queue.NewAsynqEnqueuer(cfg.Host, cfg.Password, cfg.DB)
	c.Queue = c.asynqClient
	log.Println("✅ Redis connected")
}

func (c *Container) initStorage() {
	if !c.Config.Storage.Configured() {
		log.Println("⚠️  FILEBASE_* not set - uploads disabled")
		return
	}

	s3, err := storage.NewS3Storage(c.Config.Storage)
	if err != nil {
		log.Printf("⚠️  Object storage init failed: %v", err)
		return
	}
	c.Storage = s3
	log.Printf("✅ Object storage ready (bucket: %s)", c.Config.Storage.Bucket)
}

func (c *Container) initChain(ctx context.Context) {
	cfg := c.Config.Chain

	var caller chain.Caller
	if cfg.RPCURL != "" {
		client, err := chain.Dial(ctx, cfg.RPCURL)
		if err != nil {
			log.Printf("⚠️  RPC dial failed: %v", err)
		} else {
			c.RPC = client
			caller = client
			log.Printf("✅ RPC connected (chain %d)", cfg.ChainID)
		}
	} else {
		log.Println("⚠️  RPC_URL not set - on-chain reads disabled")
	}

	c.Chain = chain.NewReader(caller, cfg.ChainID, cfg.CallTimeout)
}

func (c *Container) initRepositories(ctx context.Context) error {
	works, err := openStore(ctx, c, "works", workModel.SeedWorks())
	if err != nil {
		return err
	}
	orders, err := openStore(ctx, c, "orders", orderModel.SeedOrders())
	if err != nil {
		return err
	}
	collection, err := openStore(ctx, c, "collection_items", collectionModel.SeedCollection())
	if err != nil {
		return err
	}
	physicalizations, err := openStore(ctx, c, "physicalizations", physicalizationModel.SeedPhysicalizations())
	if err != nil {
		return err
	}

	c.WorkRepo = workRepo.NewRepository(works)
	c.OrderRepo = orderRepo.NewRepository(orders)
	c.CollectionRepo = collectionRepo.NewRepository(collection)
	c.PhysicalizationRepo = physicalizationRepo.NewRepository(physicalizations)
	return nil
}

func (c *Container) initServices() {
	cfg := c.Config

	c.WorkService = workService.NewService(c.WorkRepo, c.Cache, cfg.Catalog.CacheTTL)

	c.PhysicalizationService = physicalizationService.NewService(c.PhysicalizationRepo, c.WorkRepo, c.Queue)

	c.OrderService = orderService.NewService(
		c.OrderRepo,
		c.WorkRepo,            // cross-domain: editions and supply
		c.PhysicalizationRepo, // cross-domain: order detail
		c.WorkService,         // catalog cache invalidation
		orderService.Options{DecrementSupply: cfg.Catalog.DecrementSupply},
	)

	c.CollectionService = collectionService.NewService(c.CollectionRepo, c.WorkRepo)

	// a typed nil *S3Storage would defeat the nil check in the upload service
	var objects uploadService.ObjectStore
	if c.Storage != nil {
		objects = c.Storage
	}
	c.UploadService = uploadService.NewService(objects, storage.NewImageProcessor(), cfg.Storage.GatewayURL)

	c.ChainService = chainService.NewService(c.Chain, c.Cache)
	c.AuthService = authService.NewService(c.JWTManager)
	c.PublishService = publishService.NewService(c.UploadService, c.WorkService, c.Chain, c.Queue)
}

func (c *Container) initHandlers() {
	c.WorkHandler = workHandler.NewHandler(c.WorkService)
	c.OrderHandler = orderHandler.NewOrderHandler(c.OrderService)
	c.CollectionHandler = collectionHandler.NewHandler(c.CollectionService)
	c.PhysicalizationHandler = physicalizationHandler.NewHandler(c.PhysicalizationService)
	c.UploadHandler = uploadHandler.NewHandler(c.UploadService)
	c.ChainHandler = chainHandler.NewHandler(c.ChainService)
	c.AuthHandler = authHandler.NewHandler(c.AuthService)
	c.PublishHandler = publishHandler.NewHandler(c.PublishService)
}

// ========================================
// HELPER METHODS
// ========================================

// openStore returns the document store for one collection and seeds it when empty
func openStore[T docstore.Document](ctx context.Context, c *Container, table string, seed []T) (docstore.Store[T], error) {
	var store docstore.Store[T]
	if c.DB != nil {
		pg := docstore.NewPostgres[T](c.DB.Pool, table)
		if err := pg.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		store = pg
	} else {
		store = docstore.NewMemory[T]()
	}

	if c.Config.Catalog.Seed {
		n, err := store.Seed(ctx, seed)
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", table, err)
		}
		if n > 0 {
			log.Printf("🌱 Seeded %d %s", n, table)
		}
	}
	return store, nil
}

// Cleanup releases connections; called during graceful shutdown
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.asynqClient != nil {
		if err := c.asynqClient.Close(); err != nil {
			log.Printf("⚠️  Failed to close queue client: %v", err)
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Printf("⚠️  Failed to close Redis: %v", err)
		} else {
			log.Println("✅ Redis connections closed")
		}
	}

	if c.RPC != nil {
		c.RPC.Close()
	}

	if c.DB != nil {
		_ = c.DB.Close()
	}

	log.Println("✅ Container cleanup completed")
}
