package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/storely/basket/internal/adapters/config"
	"github.com/storely/basket/internal/adapters/http/controllers"
	"github.com/storely/basket/internal/adapters/http/middleware"
)

type Router struct {
	healthController  *controllers.HealthController
	basketController  *controllers.BasketController
	productController *controllers.ProductController
	rateLimiter       middleware.RateLimiter
}

func NewRouter(
	healthController *controllers.HealthController,
	basketController *controllers.BasketController,
	productController *controllers.ProductController,
	rateLimiter middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:  healthController,
		basketController:  basketController,
		productController: productController,
		rateLimiter:       rateLimiter,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	rl := r.rateLimiter

	apiGroup := router.Group("/api")
	v1Group := apiGroup.Group("/v1")
	{
		v1Group.Use(middleware.LogRequest())
		v1Group.GET("/health", r.healthController.Health)

		v1Group.POST("/baskets", middleware.RateLimit(rl, 15, 1*time.Minute), r.basketController.CreateBasket)
		v1Group.GET("/baskets/:basket_id", r.basketController.GetBasket)
		v1Group.DELETE("/baskets/:basket_id", r.basketController.ClearBasket)
		v1Group.POST("/baskets/:basket_id/items", middleware.RateLimit(rl, 30, 1*time.Minute), r.basketController.AddItem)
		v1Group.GET("/baskets/:basket_id/items/:product_id", r.basketController.GetItem)
		v1Group.PUT("/baskets/:basket_id/items/:product_id", middleware.RateLimit(rl, 30, 1*time.Minute), r.basketController.UpdateItem)
		v1Group.DELETE("/baskets/:basket_id/items/:product_id", r.basketController.RemoveItem)
		v1Group.POST("/baskets/:basket_id/refresh", middleware.RateLimit(rl, 10, 1*time.Minute), r.basketController.RefreshBasket)

		v1Group.POST("/products", r.productController.CreateProduct)
		v1Group.GET("/products", r.productController.GetAll)
		v1Group.GET("/products/:id", r.productController.GetByID)
		v1Group.PATCH("/products/:id/stock", middleware.RateLimit(rl, 20, 1*time.Minute), r.productController.UpdateStock)
	}
}

func (r *Router) ListenAndServe(ctx context.Context, config config.HTTPConfig) error {
	engine := gin.Default()
	r.SetupRoutes(engine)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", config.BindInterface, config.Port),
		Handler: engine,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
