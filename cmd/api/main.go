package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel/trace"

	_ "glowcart/docs"
	"glowcart/pkg/affiliate"
	affiliatepg "glowcart/pkg/affiliate/postgres"
	"glowcart/pkg/agenttask"
	taskpg "glowcart/pkg/agenttask/postgres"
	"glowcart/pkg/ai"
	"glowcart/pkg/cart"
	"glowcart/pkg/catalog"
	catalogpg "glowcart/pkg/catalog/postgres"
	"glowcart/pkg/checkout"
	"glowcart/pkg/logger"
	"glowcart/pkg/order"
	orderpg "glowcart/pkg/order/postgres"
	"glowcart/pkg/otel"
	"glowcart/pkg/profile"
	profilepg "glowcart/pkg/profile/postgres"
	"glowcart/pkg/returns"
	returnspg "glowcart/pkg/returns/postgres"
	"glowcart/pkg/savedproducts"
	savedpg "glowcart/pkg/savedproducts/postgres"
)

const sessionTTL = time.Hour

var (
	redisClient   *redis.Client
	catalogRepo   catalog.Repository
	orderRepo     order.Repository
	returnsRepo   returns.Repository
	profileRepo   profile.Repository
	savedRepo     savedproducts.Repository
	affiliateRepo affiliate.Repository
	taskRepo      agenttask.Repository
	cartStore     cart.Store
	checkoutSvc   *checkout.Service
	aiClient      *ai.Client
	log           *logger.Logger
	tracer        trace.Tracer
)

// @title GlowCart API
// @version 1.0
// @description Skincare storefront: shop, cart, checkout, orders, returns and AI skin analysis
// @host localhost:8443
// @BasePath /
func main() {
	log = logger.New(os.Stdout, logger.LevelInfo, "glowcart", otel.GetTraceID)
	tp, shutdown, err := otel.InitTracing(log, otel.Config{ServiceName: "glowcart", Host: os.Getenv("OTEL_HOST"), Probability: 1.0})
	if err != nil {
		log.Error(context.Background(), "init tracing", "error", err)
		return
	}
	defer shutdown(context.Background())
	tracer = tp.Tracer("glowcart")

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Error(context.Background(), "db connect", "error", err)
		os.Exit(1)
	}
	if err := ensureSchema(db); err != nil {
		log.Error(context.Background(), "create tables", "error", err)
		os.Exit(1)
	}

	redisClient = redis.NewClient(&redis.Options{Addr: os.Getenv("REDIS_ADDR")})
	seedAdmins(os.Getenv("ADMIN_USERS"))

	catalogRepo = catalogpg.New(db)
	orderRepo = orderpg.New(db)
	returnsRepo = returnspg.New(db)
	profileRepo = profilepg.New(db)
	savedRepo = savedpg.New(db)
	affiliateRepo = affiliatepg.New(db)
	taskRepo = taskpg.New(db)
	cartStore = cart.NewRedisStore(redisClient, sessionTTL)
	checkoutSvc = checkout.NewService(orderRepo)
	aiClient = ai.NewClient(ai.Config{
		BaseURL: os.Getenv("AI_GATEWAY_URL"),
		APIKey:  os.Getenv("AI_GATEWAY_KEY"),
		Model:   os.Getenv("AI_MODEL"),
	})

	r := mux.NewRouter()
	r.Use(traceMiddleware)
	r.HandleFunc("/login", loginHandler).Methods(http.MethodPost)

	api := r.PathPrefix("/").Subrouter()
	api.Use(authMiddleware)
	api.HandleFunc("/logout", logoutHandler).Methods(http.MethodPost)

	api.HandleFunc("/products", listProductsHandler).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", getProductHandler).Methods(http.MethodGet)

	api.HandleFunc("/cart", getCartHandler).Methods(http.MethodGet)
	api.HandleFunc("/cart", clearCartHandler).Methods(http.MethodDelete)
	api.HandleFunc("/cart/items", addCartItemHandler).Methods(http.MethodPost)
	api.HandleFunc("/cart/items/{productID}", updateCartItemHandler).Methods(http.MethodPut)
	api.HandleFunc("/cart/items/{productID}", removeCartItemHandler).Methods(http.MethodDelete)

	api.HandleFunc("/checkout", checkoutHandler).Methods(http.MethodPost)

	api.HandleFunc("/orders", listOrdersHandler).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}", getOrderHandler).Methods(http.MethodGet)

	api.HandleFunc("/returns", createReturnHandler).Methods(http.MethodPost)
	api.HandleFunc("/returns", listReturnsHandler).Methods(http.MethodGet)

	api.HandleFunc("/profile", upsertProfileHandler).Methods(http.MethodPut)
	api.HandleFunc("/profile", getProfileHandler).Methods(http.MethodGet)

	api.HandleFunc("/saved-products", saveProductHandler).Methods(http.MethodPost)
	api.HandleFunc("/saved-products", listSavedProductsHandler).Methods(http.MethodGet)
	api.HandleFunc("/saved-products/{id}", deleteSavedProductHandler).Methods(http.MethodDelete)

	api.HandleFunc("/affiliate-programs", listAffiliateProgramsHandler).Methods(http.MethodGet)

	api.HandleFunc("/ai/check-ingredients", checkIngredientsHandler).Methods(http.MethodPost)
	api.HandleFunc("/ai/extract-ingredients", extractIngredientsHandler).Methods(http.MethodPost)
	api.HandleFunc("/ai/generate-routine", generateRoutineHandler).Methods(http.MethodPost)

	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(authMiddleware, adminMiddleware)
	admin.HandleFunc("/products", adminListProductsHandler).Methods(http.MethodGet)
	admin.HandleFunc("/products", adminCreateProductHandler).Methods(http.MethodPost)
	admin.HandleFunc("/products/{id}", adminUpdateProductHandler).Methods(http.MethodPut)
	admin.HandleFunc("/products/{id}", adminDeleteProductHandler).Methods(http.MethodDelete)
	admin.HandleFunc("/inventory/{productID}", adminUpsertInventoryHandler).Methods(http.MethodPut)
	admin.HandleFunc("/inventory/{productID}", adminGetInventoryHandler).Methods(http.MethodGet)
	admin.HandleFunc("/inventory/{productID}/restock", adminRestockHandler).Methods(http.MethodPost)
	admin.HandleFunc("/orders", adminListOrdersHandler).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{id}/status", adminUpdateOrderStatusHandler).Methods(http.MethodPut)
	admin.HandleFunc("/returns", adminListReturnsHandler).Methods(http.MethodGet)
	admin.HandleFunc("/returns/{id}/status", adminUpdateReturnStatusHandler).Methods(http.MethodPut)
	admin.HandleFunc("/affiliate-programs", adminListAffiliateProgramsHandler).Methods(http.MethodGet)
	admin.HandleFunc("/affiliate-programs", adminCreateAffiliateProgramHandler).Methods(http.MethodPost)
	admin.HandleFunc("/affiliate-programs/{id}", adminUpdateAffiliateProgramHandler).Methods(http.MethodPut)
	admin.HandleFunc("/affiliate-programs/{id}", adminDeleteAffiliateProgramHandler).Methods(http.MethodDelete)
	admin.HandleFunc("/agent-tasks", adminCreateTaskHandler).Methods(http.MethodPost)
	admin.HandleFunc("/agent-tasks", adminListTasksHandler).Methods(http.MethodGet)
	admin.HandleFunc("/agent-tasks/{id}/execute", adminExecuteTaskHandler).Methods(http.MethodPost)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	log.Info(context.Background(), "listening", "addr", ":8443")
	if err := http.ListenAndServeTLS(":8443", "certs/server.crt", "certs/server.key", r); err != nil {
		log.Error(context.Background(), "server closed", "error", err)
	}
}

// seedAdmins registers the comma-separated ADMIN_USERS list in redis.
func seedAdmins(admins string) {
	ctx := context.Background()
	for _, name := range strings.Split(admins, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if err := redisClient.SAdd(ctx, "admins", name).Err(); err != nil {
			log.Warn(ctx, "seed admin", "user", name, "error", err)
		}
	}
}
