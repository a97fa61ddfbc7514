package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/snipx/snipx-backend/internal/ai"
	"github.com/snipx/snipx-backend/internal/ai/gemini"
	"github.com/snipx/snipx-backend/internal/ai/openai"
	"github.com/snipx/snipx-backend/internal/api/handler"
	custommw "github.com/snipx/snipx-backend/internal/api/middleware"
	"github.com/snipx/snipx-backend/internal/api/response"
	"github.com/snipx/snipx-backend/internal/config"
	"github.com/snipx/snipx-backend/internal/domain"
	"github.com/snipx/snipx-backend/internal/mail"
	"github.com/snipx/snipx-backend/internal/repository/mongo"
	"github.com/snipx/snipx-backend/internal/repository/redis"
	"github.com/snipx/snipx-backend/internal/security"
	"github.com/snipx/snipx-backend/internal/service"
)

// chatRequestsPerMinute caps unauthenticated chatbot calls per client IP.
const chatRequestsPerMinute = 20

// NewRouter creates and configures the HTTP router
func NewRouter(
	cfg *config.Config,
	db *mongo.DB,
	userRepo domain.UserRepository,
	ticketRepo domain.TicketRepository,
	redisClient *redis.Client,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(custommw.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Security and collaborators
	tokens := security.NewTokenManager(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)
	mailer := mail.NewMailer(cfg.SMTP)

	// Responder chain: OpenAI first, Gemini second, rules as last resort
	chain := ai.NewChain(
		openai.NewProvider(cfg.AI.OpenAIAPIKey, cfg.AI.OpenAIModel),
		gemini.NewProvider(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel),
	)

	// Services
	authService := service.NewAuthService(userRepo, tokens)
	supportService := service.NewSupportService(ticketRepo, mailer)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	chatHandler := handler.NewChatHandler(chain)
	supportHandler := handler.NewSupportHandler(supportService)

	authMW := custommw.NewAuthMiddleware(tokens)
	rateLimitMW := custommw.NewRateLimitMiddleware(
		redis.NewRateLimiter(redisClient, chatRequestsPerMinute),
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", handler.HealthCheck)
		r.Get("/ready", handler.ReadyCheck(db))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/demo", authHandler.Demo)

			r.Group(func(r chi.Router) {
				r.Use(authMW.Authenticate)
				r.Get("/me", authHandler.Me)
				r.Patch("/me", authHandler.UpdateMe)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(rateLimitMW.Limit)
			r.Post("/chat", chatHandler.Chat)
		})

		r.Route("/support/tickets", func(r chi.Router) {
			r.Post("/", supportHandler.CreateTicket)
			r.Get("/{ticketID}", supportHandler.GetTicket)

			// staff operations
			r.Group(func(r chi.Router) {
				r.Use(authMW.Authenticate)
				r.Get("/", supportHandler.ListTickets)
				r.Patch("/{ticketID}/status", supportHandler.SetStatus)
				r.Post("/{ticketID}/responses", supportHandler.AddResponse)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "route not found")
	})

	return r
}
