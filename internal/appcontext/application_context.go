package appcontext

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/config"
	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/logger"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/ratelimit"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/redis_client"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/orm"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/session"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/token"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const startupTimeout = 10 * time.Second

type ApplicationContext struct {
	Cf             *config.Config
	Logger         zerolog.Logger
	KafkaLogger    *logger.KafkaLogger
	DbConn         *pgxpool.Pool
	DbDao          db.IStore
	OrmDB          *gorm.DB
	OrderAdminRepo orm.IOrderAdminRepo
	TokenMaker     token.Maker
	Sessions       *session.Manager
	RedisClient    *redis.Client
	LoginLimiter   ratelimit.ILimiter
	UserService    service.IUserService
	AuthService    service.IAuthService
	ProductService service.IProductService
	OrderService   service.IOrderService
	AdminService   service.IAdminService
}

// NewApplicationContext 依序建立所有元件, 任一步失敗即回傳錯誤
func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}

	if err := app.Init(); err != nil {
		app.closeResources()
		return nil, err
	}
	return &app, nil
}

func (app *ApplicationContext) Init() error {
	steps := []struct {
		name string
		fn   func() error
	}{
		{"logger", app.setUpLogger},
		{"database connection", app.setUpdbConn},
		{"database migration", app.setUpdbMigration},
		{"database DAO", app.setUpdbDao},
		{"orm", app.setUpOrm},
		{"catalog seed", app.setUpCatalogSeed},
		{"token maker", app.setUpTokenMaker},
		{"user service", app.setUpUserService},
		{"auth service", app.setUpAuthService},
		{"product service", app.setUpProductService},
		{"order service", app.setUpOrderService},
		{"admin service", app.setUpAdminService},
		{"login rate limiter", app.setUpLoginLimiter},
	}

	for _, step := range steps {
		app.Logger.Info().Msgf("Start setup %s", step.name)
		if err := step.fn(); err != nil {
			return fmt.Errorf("setup %s: %w", step.name, err)
		}
		app.Logger.Info().Msgf("Finish setup %s", step.name)
	}
	return nil
}

func (app *ApplicationContext) setUpLogger() error {
	var extra []io.Writer
	if brokers := app.Cf.KafkaBrokers(); len(brokers) > 0 {
		kafkaLogger, err := logger.NewKafkaLogger(brokers, app.Cf.LogKafkaTopic)
		if err != nil {
			return err
		}
		app.KafkaLogger = kafkaLogger
		extra = append(extra, kafkaLogger)
	}
	app.Logger = logger.New(app.Cf.ModulerName, app.Cf.LogLevel, extra...)
	return nil
}

func (app *ApplicationContext) setUpdbConn() error {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	conn, err := pgxpool.New(ctx, app.Cf.DatabaseURL())
	if err != nil {
		return err
	}
	app.DbConn = conn

	if err := conn.Ping(ctx); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}
	return nil
}

func (app *ApplicationContext) setUpdbMigration() error {
	return db.RunDBMigration(app.Cf.DatabaseURL())
}

func (app *ApplicationContext) setUpdbDao() error {
	app.DbDao = db.NewStore(app.DbConn)
	return nil
}

func (app *ApplicationContext) setUpOrm() error {
	ormDB, err := orm.GetDbConn(app.DbConn)
	if err != nil {
		return err
	}
	app.OrmDB = ormDB
	app.OrderAdminRepo = orm.NewOrderAdminRepo(ormDB)
	return nil
}

// 商品表為空時才寫入, SEED_CATALOG_FILE 未設定則略過
func (app *ApplicationContext) setUpCatalogSeed() error {
	if app.Cf.SeedCatalogFile == "" {
		app.Logger.Info().Msg("SEED_CATALOG_FILE not set, skip catalog seed")
		return nil
	}

	seedCf, err := config.LoadCatalogSeedConfig(app.Cf.SeedCatalogFile)
	if err != nil {
		return err
	}

	products := make([]model.CreateProductModel, 0, len(seedCf.Products))
	for _, p := range seedCf.Products {
		products = append(products, model.CreateProductModel{
			Name:        p.Name,
			Price:       p.Price,
			Description: p.Description,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	inserted, err := service.NewProductService(app.DbDao).SeedProducts(ctx, products)
	if err != nil {
		return err
	}
	app.Logger.Info().Int("inserted", inserted).Msg("catalog seed finished")
	return nil
}

func (app *ApplicationContext) setUpTokenMaker() error {
	tokenMaker, err := token.NewJWTMaker(app.Cf.AuthTokenKey)
	if err != nil {
		return err
	}
	app.TokenMaker = tokenMaker
	return nil
}

func (app *ApplicationContext) setUpUserService() error {
	app.UserService = service.NewUserService(app.DbDao)
	return nil
}

func (app *ApplicationContext) setUpAuthService() error {
	app.AuthService = service.NewAuthService(app.UserService, app.TokenMaker)
	return nil
}

func (app *ApplicationContext) setUpProductService() error {
	app.ProductService = service.NewProductService(app.DbDao)
	return nil
}

func (app *ApplicationContext) setUpOrderService() error {
	app.OrderService = service.NewOrderService(app.DbDao)
	return nil
}

func (app *ApplicationContext) setUpAdminService() error {
	sessions, err := session.NewManager(constants.AdminSessionCookieName, app.Cf.SessionSecret, constants.AdminSessionDuration)
	if err != nil {
		return err
	}
	app.Sessions = sessions

	since, err := app.Cf.ReportSince()
	if err != nil {
		return err
	}
	app.AdminService = service.NewAdminService(app.OrderAdminRepo, sessions, app.Cf.AdminEmail, app.Cf.AdminPassword, since)
	return nil
}

// REDIS_ADDR 有設定且連得上才用 redis, 否則退回單機記憶體
func (app *ApplicationContext) setUpLoginLimiter() error {
	limiterCf := &ratelimit.LimiterConfig{
		Prefix:   app.Cf.ModulerName + ":login",
		Capacity: app.Cf.RateLimitLoginCapacity,
		Window:   app.Cf.RateLimitLoginWindow,
	}

	if app.Cf.RedisAddr != "" {
		client := redis_client.GetRedisClient(app.Cf.RedisAddr, redis_client.WithPassword(app.Cf.RedisPassword))
		ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
		defer cancel()
		err := redis_client.Ping(ctx, client)
		if err == nil {
			app.RedisClient = client
			app.LoginLimiter = ratelimit.NewRedisFixedWindow(client, limiterCf)
			app.Logger.Info().Str("addr", app.Cf.RedisAddr).Msg("login rate limiter uses redis")
			return nil
		}
		app.Logger.Warn().Err(err).Str("addr", app.Cf.RedisAddr).Msg("redis unreachable, fall back to in-memory rate limiter")
	}

	app.LoginLimiter = ratelimit.NewFixedWindow(limiterCf)
	return nil
}

// Ping 供 health check 使用
func (app *ApplicationContext) Ping(ctx context.Context) error {
	return app.DbDao.Ping(ctx)
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	app.Logger.Info().Msg("Start application shutdown")

	done := make(chan error, 1)
	go func() {
		done <- app.closeResources()
	}()

	select {
	case err := <-done:
		app.Logger.Info().Msg("Application shutdown complete")
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %w", ctx.Err())
	}
}

func (app *ApplicationContext) closeResources() error {
	var errs []error
	if app.RedisClient != nil {
		errs = append(errs, app.RedisClient.Close())
	}
	if app.DbConn != nil {
		app.DbConn.Close()
	}
	// logger 最後關, 前面的錯誤才送得出去
	if app.KafkaLogger != nil {
		errs = append(errs, app.KafkaLogger.Close())
	}
	return errors.Join(errs...)
}
