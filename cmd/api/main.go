package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"

	"github.com/aetherlabs-ai/aether-crm/internal/infra/database"
	"github.com/aetherlabs-ai/aether-crm/internal/infra/http/handlers"
	"github.com/aetherlabs-ai/aether-crm/internal/infra/http/middleware"
	"github.com/aetherlabs-ai/aether-crm/internal/infra/mail"
	"github.com/aetherlabs-ai/aether-crm/internal/infra/queue"
	"github.com/aetherlabs-ai/aether-crm/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	// 1. Repositórios
	adminRepo := database.NewAdminRepository(db)
	sessionRepo := database.NewSessionRepository(db)
	leadRepo := database.NewLeadRepository(db)
	customerRepo := database.NewCustomerRepository(db)
	dealRepo := database.NewDealRepository(db)
	stageRepo := database.NewStageRepository(db)
	interactionRepo := database.NewInteractionRepository(db)
	serviceRepo := database.NewServiceRepository(db)
	orderRepo := database.NewOrderRepository(db)
	contactRepo := database.NewContactRepository(db)
	newsletterRepo := database.NewNewsletterRepository(db)

	// 2. Seed (admin inicial e pipeline padrão)
	ctx := context.Background()
	adminUser := envOr("ADMIN_USERNAME", "admin")
	adminPass := envOr("ADMIN_PASSWORD", "admin")
	if err := database.SeedAdmin(ctx, adminRepo, adminUser, adminPass); err != nil {
		log.Fatal(err)
	}
	if err := database.SeedStages(ctx, stageRepo); err != nil {
		log.Fatal(err)
	}

	// 3. Fila de notificações (opcional: sem RabbitMQ os formulários
	// públicos continuam funcionando, só sem email)
	var producer queue.ProducerInterface
	var rabbitMQ *queue.RabbitMQ
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		rabbitMQ, err = queue.NewRabbitMQ(url)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		producer = queue.NewProducer(rabbitMQ.Ch)

		mailPort, _ := strconv.Atoi(envOr("MAIL_PORT", "587"))
		mailSender := mail.NewEmailSender(
			os.Getenv("MAIL_HOST"), mailPort,
			os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			envOr("MAIL_FROM", "nao-responda@aetherlabs.ai"),
			envOr("NOTIFY_EMAIL", "contato@aetherlabs.ai"),
		)

		worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
		go worker.Start(queue.QueueName)
	} else {
		log.Println("RABBITMQ_URL ausente; notificações do site desativadas")
	}

	// 4. UseCases
	leadUC := usecase.NewLeadUseCase(leadRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	dealUC := usecase.NewDealUseCase(dealRepo, stageRepo)
	dealUC.OnMove = middleware.RecordDealMoved
	summaryUC := usecase.NewPipelineSummaryUseCase(dealRepo, stageRepo, leadRepo)

	// 5. Handlers
	authHandler := handlers.NewAuthHandler(adminRepo, sessionRepo)
	leadHandler := handlers.NewLeadHandler(leadUC, leadRepo)
	customerHandler := handlers.NewCustomerHandler(customerUC, customerRepo)
	dealHandler := handlers.NewDealHandler(dealUC, dealRepo)
	pipelineHandler := handlers.NewPipelineHandler(stageRepo, summaryUC)
	interactionHandler := handlers.NewInteractionHandler(interactionRepo)
	serviceHandler := handlers.NewServiceHandler(serviceRepo)
	orderHandler := handlers.NewOrderHandler(orderRepo, serviceRepo, producer)
	contactHandler := handlers.NewContactHandler(contactRepo, newsletterRepo, producer)

	var rabbitConn *amqp091.Connection
	if rabbitMQ != nil {
		rabbitConn = rabbitMQ.Conn
	}
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{envOr("CORS_ORIGIN", "http://localhost:5173")},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	requireAuth := middleware.RequireAuth(sessionRepo, adminRepo)

	r.Get("/healthz", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/logout", authHandler.Logout)
		r.With(requireAuth).Get("/auth/me", authHandler.Me)

		r.Get("/services", serviceHandler.ListPublic)
		r.Get("/services/{id}", serviceHandler.Get)

		r.Post("/orders", orderHandler.Create)
		r.Post("/contacts", contactHandler.Create)
		r.Post("/public/contact", contactHandler.Create)
		r.Post("/public/newsletter", contactHandler.Subscribe)

		r.Route("/admin", func(r chi.Router) {
			r.Use(requireAuth)

			r.Get("/services", serviceHandler.ListAdmin)
			r.Post("/services", serviceHandler.Create)
			r.Put("/services/{id}", serviceHandler.Update)
			r.Delete("/services/{id}", serviceHandler.Delete)

			r.Get("/orders", orderHandler.List)
			r.Put("/orders/{id}", orderHandler.UpdateStatus)

			r.Get("/contacts", contactHandler.List)

			r.Get("/leads", leadHandler.List)
			r.Post("/leads", leadHandler.Create)
			r.Put("/leads/{id}", leadHandler.Update)
			r.Delete("/leads/{id}", leadHandler.Delete)

			r.Get("/customers", customerHandler.List)
			r.Post("/customers", customerHandler.Create)
			r.Put("/customers/{id}", customerHandler.Update)

			r.Get("/interactions", interactionHandler.List)
			r.Post("/interactions", interactionHandler.Create)

			r.Get("/pipeline-stages", pipelineHandler.ListStages)
			r.Post("/pipeline-stages", pipelineHandler.CreateStage)
			r.Get("/pipeline/summary", pipelineHandler.GetSummary)

			r.Get("/deals", dealHandler.List)
			r.Post("/deals", dealHandler.Create)
			r.Put("/deals/{id}", dealHandler.Update)
			r.Delete("/deals/{id}", dealHandler.Delete)
		})
	})

	port := ":" + envOr("PORT", "8080")
	log.Printf("API rodando na porta %s", port)
	if err := http.ListenAndServe(port, r); err != nil {
		log.Fatal(err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
