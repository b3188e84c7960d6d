package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"evdealer/config"
	"evdealer/database"
	"evdealer/handlers"
	"evdealer/logger"
	"evdealer/repository"
	"evdealer/routes"
	"evdealer/services"
	"evdealer/store"
	"evdealer/utils"
	"evdealer/validators"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  serveCmdFunc,
}

func init() {
	ServeCmd.Flags().String("addr", "", "listen address, overrides HTTP_ADDR")
	ServeCmd.Flags().Bool("migrate", true, "run database migration before serving")
	if err := viper.BindPFlags(ServeCmd.Flags()); err != nil {
		log.Fatalf("Failed to bind serve flags: %v", err)
	}
}

func serveCmdFunc(cmd *cobra.Command, args []string) error {
	log.Println("Started serve cmd")

	cfg, db, err := bootstrap()
	if err != nil {
		return err
	}
	if addr := viper.GetString("addr"); addr != "" {
		cfg.HTTPAddr = addr
	}
	if viper.GetBool("migrate") {
		if err := database.Migrate(db); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bookingLog, sessions, closeStore, err := openStores(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer closeStore()

	h, tokens, err := buildHandler(cfg, db, bookingLog, sessions)
	if err != nil {
		return err
	}
	if err := h.Auth.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return err
	}

	scheduler, err := services.StartScheduler(cfg.PromotionSweepSpec, h.Promotions)
	if err != nil {
		return err
	}
	defer scheduler.Stop()

	// 設置 Gin 模式
	gin.SetMode(cfg.GinMode)
	log.Printf("Gin mode set to %s", cfg.GinMode)

	r := gin.New()
	r.Use(logger.GinLogger())
	routes.Setup(r, h, tokens)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}
	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	log.Println("Shutting down the server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStores REDIS_URL 為空時改用行程內記憶體
func openStores(ctx context.Context, cfg config.RedisConfig) (store.BookingLog, store.CompareSessions, func(), error) {
	if cfg.URL == "" {
		log.Println("REDIS_URL not set, using in-memory booking log and compare sessions")
		mem := store.NewMemory()
		return mem, mem, func() {}, nil
	}

	client, err := store.NewRedisClient(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	r := store.NewRedis(client)
	closeFn := func() {
		if err := client.Close(); err != nil && !errors.Is(err, redis.ErrClosed) {
			log.Printf("Failed to close redis client: %v", err)
		}
	}
	return r, r, closeFn, nil
}

func buildHandler(cfg *config.Config, db *gorm.DB, bookingLog store.BookingLog, sessions store.CompareSessions) (*handlers.Handler, *utils.TokenIssuer, error) {
	cipher, err := utils.NewFieldCipher(cfg.AESKey)
	if err != nil {
		return nil, nil, err
	}
	tokens := utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
	v := validators.New(nil)

	customers := repository.NewCustomerRepository(db)
	payments := repository.NewPaymentRepository(db)
	vehicles := services.NewVehicleService(repository.NewVehicleRepository(db), cfg.CatalogPageLimit)

	h := &handlers.Handler{
		Vehicles:   vehicles,
		Compare:    services.NewCompareService(vehicles, sessions),
		Bookings:   services.NewBookingService(v, bookingLog, cfg.BookingDelay),
		Customers:  services.NewCustomerService(customers, payments, v, cipher),
		Orders:     services.NewOrderService(repository.NewOrderRepository(db), customers),
		Dealers:    services.NewDealerService(repository.NewDealerRepository(db)),
		Promotions: services.NewPromotionService(repository.NewPromotionRepository(db)),
		Auth:       services.NewAuthService(repository.NewStaffRepository(db), tokens),
	}
	return h, tokens, nil
}
