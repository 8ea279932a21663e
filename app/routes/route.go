package routes

import (
	"log"
	"net/http"
	"time"

	"github.com/Rakhulsr/go-catalog/app/configs"
	"github.com/Rakhulsr/go-catalog/app/handlers"
	"github.com/Rakhulsr/go-catalog/app/helpers"
	"github.com/Rakhulsr/go-catalog/app/middlewares"
	"github.com/Rakhulsr/go-catalog/app/services"
	"github.com/Rakhulsr/go-catalog/app/utils/renderer"
	"github.com/Rakhulsr/go-catalog/app/utils/sessions"
	"github.com/gorilla/mux"
	"github.com/gorilla/securecookie"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

const (
	authRateLimit  = 10
	authRatePeriod = time.Minute
)

// Options carries the collaborators NewRouter cannot build from the
// environment alone. Nil external clients are built from Env.
type Options struct {
	Env        configs.ENV
	Data       *configs.CatalogData
	Redis      *redis.Client
	Verifier   services.TokenVerifier
	Searcher   services.ProductSearcher
	Summarizer services.Summarizer
	Sessions   sessions.SessionStore
}

func (o *Options) fill() error {
	if o.Data == nil {
		data, err := configs.LoadCatalogData()
		if err != nil {
			return err
		}
		o.Data = data
	}
	if o.Verifier == nil {
		o.Verifier = services.NewGoogleVerifier(o.Env.GoogleClientID)
	}
	if o.Searcher == nil {
		o.Searcher = services.NewGoogleSearchClient(o.Env.SearchAPI())
	}
	if o.Summarizer == nil {
		o.Summarizer = services.NewHuggingFaceSummarizer(o.Env.SummaryAPI())
	}
	if o.Sessions == nil {
		keys, err := configs.LoadSessionKeys(o.Env)
		if err != nil {
			return err
		}
		o.Sessions = sessions.NewCookieSessionStore(!o.Env.IsDevelopment(), keys.AuthKey, keys.EncKey)
	}
	if o.Env.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set, using a random secret; tokens will not survive a restart")
		o.Env.JWTSecret = string(securecookie.GenerateRandomKey(32))
	}
	return nil
}

func NewRouter(db *gorm.DB, opts Options) (http.Handler, error) {
	if err := opts.fill(); err != nil {
		return nil, err
	}

	rd := renderer.New()
	validate := helpers.NewValidator()
	debug := opts.Env.IsDevelopment() || opts.Env.DebugMode

	categorySvc := services.NewCategoryService(db)
	productSvc := services.NewProductService(db)
	inventorySvc := services.NewInventoryService(db)
	authSvc := services.NewAuthService(db, opts.Verifier, opts.Env.JWTSecret)
	brandSvc := services.NewBrandService(opts.Data.Brands)
	descriptionSvc := services.NewDescriptionService(opts.Searcher, opts.Summarizer, opts.Data.Templates)

	categoryHandler := handlers.NewCategoryHandler(rd, validate, debug, categorySvc)
	productHandler := handlers.NewProductHandler(rd, validate, debug, productSvc)
	inventoryHandler := handlers.NewInventoryHandler(rd, validate, debug, inventorySvc)
	authHandler := handlers.NewAuthHandler(rd, validate, debug, authSvc, opts.Sessions)
	assistHandler := handlers.NewAssistHandler(rd, validate, debug, brandSvc, descriptionSvc)

	router := mux.NewRouter()
	router.Use(middlewares.Recoverer(rd, debug))
	router.Use(middlewares.RequestLogger)
	router.Use(middlewares.Authenticate(authSvc, opts.Sessions))

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteNotFound(rd, w, "route not found")
	})
	// subrouters do not inherit this; each one gets it assigned below
	methodNotAllowed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rd.JSON(w, http.StatusMethodNotAllowed, map[string]string{
			"error":   "Method not allowed",
			"message": r.Method + " is not supported on " + r.URL.Path,
		})
	})
	router.MethodNotAllowedHandler = methodNotAllowed

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		rd.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	auth := router.PathPrefix("/api/auth").Subrouter()
	auth.MethodNotAllowedHandler = methodNotAllowed
	auth.Use(middlewares.RateLimiter(opts.Redis, rd, authRateLimit, authRatePeriod))
	auth.HandleFunc("/google", authHandler.GoogleLogin).Methods(http.MethodPost)
	auth.HandleFunc("/me", authHandler.Me).Methods(http.MethodGet)
	auth.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	api := router.PathPrefix("/api").Subrouter()
	api.MethodNotAllowedHandler = methodNotAllowed
	if opts.Env.AuthRequired {
		api.Use(middlewares.RequireAuth(rd))
	}

	api.HandleFunc("/categories", categoryHandler.GetCategories).Methods(http.MethodGet)
	api.HandleFunc("/categories", categoryHandler.CreateCategory).Methods(http.MethodPost)
	api.HandleFunc("/categories/{id}", categoryHandler.GetCategory).Methods(http.MethodGet)
	api.HandleFunc("/categories/{id}", categoryHandler.UpdateCategory).Methods(http.MethodPut)
	api.HandleFunc("/categories/{id}", categoryHandler.DeleteCategory).Methods(http.MethodDelete)

	api.HandleFunc("/subcategories/{id}", categoryHandler.GetSubCategory).Methods(http.MethodGet)
	api.HandleFunc("/subcategories/{id}", categoryHandler.DeleteSubCategory).Methods(http.MethodDelete)

	api.HandleFunc("/products", productHandler.GetProducts).Methods(http.MethodGet)
	api.HandleFunc("/products", productHandler.CreateProduct).Methods(http.MethodPost)
	api.HandleFunc("/products/search", productHandler.SearchProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", productHandler.GetProduct).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", productHandler.UpdateProduct).Methods(http.MethodPut)
	api.HandleFunc("/products/{id}", productHandler.DeleteProduct).Methods(http.MethodDelete)

	api.HandleFunc("/inventory", inventoryHandler.GetItems).Methods(http.MethodGet)
	api.HandleFunc("/inventory", inventoryHandler.CreateItem).Methods(http.MethodPost)
	api.HandleFunc("/inventory/low-stock", inventoryHandler.GetLowStock).Methods(http.MethodGet)
	api.HandleFunc("/inventory/stock", inventoryHandler.UpdateStock).Methods(http.MethodPost)
	api.HandleFunc("/inventory/{id}", inventoryHandler.GetItem).Methods(http.MethodGet)
	api.HandleFunc("/inventory/{id}", inventoryHandler.UpdateItem).Methods(http.MethodPut)
	api.HandleFunc("/inventory/{id}", inventoryHandler.DeleteItem).Methods(http.MethodDelete)

	api.HandleFunc("/inventories", inventoryHandler.GetLocations).Methods(http.MethodGet)
	api.HandleFunc("/inventories", inventoryHandler.CreateLocation).Methods(http.MethodPost)
	api.HandleFunc("/inventories/{id}", inventoryHandler.GetLocation).Methods(http.MethodGet)
	api.HandleFunc("/inventories/{id}", inventoryHandler.UpdateLocation).Methods(http.MethodPut)
	api.HandleFunc("/inventories/{id}", inventoryHandler.DeleteLocation).Methods(http.MethodDelete)

	api.HandleFunc("/users", authHandler.GetUsers).Methods(http.MethodGet)

	api.HandleFunc("/brands/detect", assistHandler.DetectBrand).Methods(http.MethodPost)
	api.HandleFunc("/descriptions/generate", assistHandler.GenerateDescription).Methods(http.MethodPost)

	c := cors.New(cors.Options{
		AllowedOrigins:   opts.Env.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	return c.Handler(router), nil
}
