// Package vendorregistry предоставляет маршруты для основного приложения.
package vendorregistry

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/vendor-registry/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/vendor-registry/internal/http/handlers/auth/register"
	firmcreate "github.com/magabrotheeeer/vendor-registry/internal/http/handlers/firm/create"
	firmlist "github.com/magabrotheeeer/vendor-registry/internal/http/handlers/firm/list"
	firmread "github.com/magabrotheeeer/vendor-registry/internal/http/handlers/firm/read"
	firmupdate "github.com/magabrotheeeer/vendor-registry/internal/http/handlers/firm/update"
	"github.com/magabrotheeeer/vendor-registry/internal/http/handlers/health"
	productcreate "github.com/magabrotheeeer/vendor-registry/internal/http/handlers/product/create"
	productlist "github.com/magabrotheeeer/vendor-registry/internal/http/handlers/product/list"
	productread "github.com/magabrotheeeer/vendor-registry/internal/http/handlers/product/read"
	"github.com/magabrotheeeer/vendor-registry/internal/http/handlers/upload"
	vendorlist "github.com/magabrotheeeer/vendor-registry/internal/http/handlers/vendors/list"
	vendorread "github.com/magabrotheeeer/vendor-registry/internal/http/handlers/vendors/read"
	"github.com/magabrotheeeer/vendor-registry/internal/http/middlewarectx"
	"github.com/magabrotheeeer/vendor-registry/internal/lib/jwt"
	"github.com/magabrotheeeer/vendor-registry/internal/obs"
	authservice "github.com/magabrotheeeer/vendor-registry/internal/services/auth"
	firmservice "github.com/magabrotheeeer/vendor-registry/internal/services/firm"
	productservice "github.com/magabrotheeeer/vendor-registry/internal/services/product"
	uploadservice "github.com/magabrotheeeer/vendor-registry/internal/services/upload"
	vendorservice "github.com/magabrotheeeer/vendor-registry/internal/services/vendor"
)

// Services собирает сервисы бизнес-логики, которые нужны маршрутам.
type Services struct {
	Auth    *authservice.AuthService
	Vendor  *vendorservice.VendorService
	Firm    *firmservice.FirmService
	Product *productservice.ProductService
	Upload  *uploadservice.UploadService
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, jwtMaker jwt.Maker, s *Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		obs.Instrument,
	)

	r.Route("/vendor", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, s.Auth).ServeHTTP)
		r.Post("/login", login.New(logger, s.Auth).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Get("/all-vendors", vendorlist.New(logger, s.Vendor).ServeHTTP)
			r.Get("/single-vendor/{id}", vendorread.New(logger, s.Vendor).ServeHTTP)
		})
	})

	r.Route("/firm", func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Post("/", firmcreate.New(logger, s.Firm).ServeHTTP)
		r.Get("/all-firms", firmlist.New(logger, s.Firm).ServeHTTP)
		r.Get("/single-firm/{id}", firmread.New(logger, s.Firm).ServeHTTP)
		r.Put("/{id}", firmupdate.New(logger, s.Firm).ServeHTTP)
	})

	r.Route("/product", func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Post("/", productcreate.New(logger, s.Product).ServeHTTP)
		r.Get("/all-products", productlist.New(logger, s.Product).ServeHTTP)
		r.Get("/single-product/{id}", productread.New(logger, s.Product).ServeHTTP)
	})

	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Post("/upload", upload.New(logger, s.Upload).ServeHTTP)
	})

	// Статическая раздача каталога загрузок
	fileServer := http.FileServer(http.Dir(s.Upload.Dir()))
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", fileServer))

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", obs.Handler())
}
