package router

import (
	"github.com/atelierhub/atelier-orders/internal/config"
	"github.com/atelierhub/atelier-orders/internal/network/handlers"
	"github.com/atelierhub/atelier-orders/internal/network/middleware"
	"github.com/atelierhub/atelier-orders/internal/services"
	"github.com/atelierhub/atelier-orders/internal/storage"
	"github.com/go-chi/chi/v5"

	"github.com/go-chi/jwtauth/v5"
)

type Router struct {
	Config   config.Config
	Identity services.IdentityService
	Orders   services.OrdersService
	Staff    services.StaffService
}

func NewRouter(config config.Config, store storage.Storage) *Router {
	return &Router{
		Config:   config,
		Identity: services.NewIdentity(config, store.Users),
		Orders:   services.NewOrders(store),
		Staff:    services.NewStaff(store),
	}
}

func (router *Router) HandleRouter() chi.Router {
	ja := router.Identity.GetTokenAuth()

	// пороги частоты запросов на запись; чтения не ограничиваются
	loginLimit := middleware.NewRateLimiter(router.Config.Limits.LoginPerMinute)
	createLimit := middleware.NewRateLimiter(router.Config.Limits.CreateOrderPerMinute)
	messageLimit := middleware.NewRateLimiter(router.Config.Limits.MessagePerMinute)
	staffLimit := middleware.NewRateLimiter(router.Config.Limits.StaffWritePerMinute)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", handlers.RegisterUserHandler(router.Identity))
			r.With(loginLimit.Handle).Post("/login", handlers.AuthenticateUserHandler(router.Identity))
		})
		r.Route("/orders", func(r chi.Router) {
			r.Use(jwtauth.Verifier(ja))
			r.Use(jwtauth.Authenticator(ja))

			// витрина клиента: только собственные заказы
			r.Get("/mine", handlers.MyOrdersHandler(router.Orders))
			r.With(createLimit.Handle).Post("/create", handlers.CreateOrderHandler(router.Orders))
			r.Get("/{id}/detail", handlers.OrderDetailHandler(router.Orders))
			r.With(messageLimit.Handle).Post("/{id}/message", handlers.AddMessageHandler(router.Orders))
			r.With(createLimit.Handle).Post("/{id}/file", handlers.UploadFileHandler(router.Orders, router.Config.Server.UploadDir))

			// витрина сотрудника: роль и разрешение проверяет сервис
			r.Route("/staff", func(r chi.Router) {
				r.Get("/list", handlers.StaffOrdersHandler(router.Staff))
				r.Get("/dashboard", handlers.StaffDashboardHandler(router.Staff))
				r.Get("/{id}/detail", handlers.StaffOrderDetailHandler(router.Staff))
				r.Group(func(r chi.Router) {
					r.Use(staffLimit.Handle)
					r.Post("/{id}/pricing", handlers.StaffSetPricingHandler(router.Staff))
					r.Post("/{id}/status", handlers.StaffChangeStatusHandler(router.Staff))
					r.Post("/{id}/note", handlers.StaffAddNoteHandler(router.Staff))
					r.Post("/{id}/payment", handlers.StaffAddPaymentHandler(router.Staff))
				})
			})
		})
	})
	return r
}
