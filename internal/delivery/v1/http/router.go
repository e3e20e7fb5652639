package http

import (
	"net/http"

	_ "github.com/DRSN-tech/storefront/docs" // Регистрация swagger-документа
	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// UseCases — всё, что нужно HTTP-слою от бизнес-логики.
type UseCases struct {
	Catalog  usecase.CatalogUC
	Wishlist usecase.WishlistUC
	Order    usecase.OrderUC
	Auth     usecase.AuthUC
}

// Instrumentation — метрики запросов. nil отключает /metrics.
type Instrumentation interface {
	Middleware(next http.Handler) http.Handler
	Handler() http.Handler
}

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(uc UseCases, httpCfg *cfg.HTTPConfig, sessionCfg *cfg.SessionCfg, metrics Instrumentation) {
	sessions := NewSessionMiddleware(uc.Auth, sessionCfg, r.logger)

	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.Recoverer)
	r.router.Use(RequestLogger(r.logger))
	if metrics != nil {
		r.router.Use(metrics.Middleware)
		r.router.Method(http.MethodGet, "/metrics", metrics.Handler())
	}

	r.router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		WriteSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://"+httpCfg.SwaggerHost+"/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(sessions.Handler)

		registerCategoryRoutes(v1, NewCategoryHandler(uc.Catalog, r.logger))
		registerProductRoutes(v1, NewProductHandler(uc.Catalog, r.logger))
		registerAuthRoutes(v1, NewAuthHandler(uc.Auth, sessions, r.logger))
		registerWishlistRoutes(v1, NewWishlistHandler(uc.Wishlist, r.logger))
		registerOrderRoutes(v1, NewOrderHandler(uc.Order, r.logger))
	})
}

func registerCategoryRoutes(router chi.Router, h *CategoryHandler) {
	router.Route("/categories", func(cr chi.Router) {
		cr.Post("/", h.createCategory)
		cr.Get("/", h.listCategories)
		cr.Get("/{slug}", h.getCategory)
		cr.Delete("/{slug}", h.deleteCategory)
	})
}

func registerProductRoutes(router chi.Router, h *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Post("/", h.createProduct)
		pr.Get("/", h.listProducts)
		pr.Get("/{id}", h.getProduct)
		pr.Put("/{id}", h.updateProduct)
		pr.Delete("/{id}", h.deleteProduct)
	})
}

func registerAuthRoutes(router chi.Router, h *AuthHandler) {
	router.Post("/registration", h.registration)
	router.Post("/login", h.login)
	router.Post("/logout", h.logout)
	router.Get("/user", h.currentUser)
	router.Get("/users", h.listUsers)
}

func registerWishlistRoutes(router chi.Router, h *WishlistHandler) {
	router.Route("/wishlist", func(wr chi.Router) {
		wr.Post("/", h.upsertWishlist)
		wr.Put("/add", h.incrementWishlist)
		wr.Put("/remove", h.decrementWishlist)
		wr.Get("/{user_id}", h.listWishlist)
	})
}

func registerOrderRoutes(router chi.Router, h *OrderHandler) {
	router.Get("/orders", h.listOrderItems)
	router.Get("/order/items/{order_id}", h.listItemsOfOrder)
	router.Get("/order/{user_id}", h.listUserOrders)
	router.Post("/create_order", h.createOrder)
	router.Put("/change_status", h.changeStatus)
	router.Get("/statuses", h.listStatuses)
	router.Post("/statuses", h.createStatus)
}
