package main

import (
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/gustavoantunes/bridalcover-crm/internal/infra/cache"
	"github.com/gustavoantunes/bridalcover-crm/internal/infra/database"
	"github.com/gustavoantunes/bridalcover-crm/internal/infra/http/handlers"
	"github.com/gustavoantunes/bridalcover-crm/internal/infra/http/middleware"
	"github.com/gustavoantunes/bridalcover-crm/internal/infra/mail"
	"github.com/gustavoantunes/bridalcover-crm/internal/infra/queue"
	"github.com/gustavoantunes/bridalcover-crm/internal/usecase"
)

func main() {
	godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "guest"),
		envOr("RABBITMQ_PASS", "guest"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Close()

	// 1. Repositório (com cache opcional por cima)
	var leadRepo usecase.LeadRepository = database.NewLeadRepository(db)

	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASS"),
		})
		leadRepo = cache.NewLeadCache(leadRepo, rdb, log)
		log.Info("cache de leads habilitado no Redis")
	}

	// 2. Producer de eventos e email
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailPort, _ := strconv.Atoi(envOr("MAIL_PORT", "587"))
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort,
		os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		envOr("MAIL_FROM", "nao-responda@bridalcovercrm.com.br"),
	)

	// 3. Worker (consome os eventos e notifica conversões)
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender, os.Getenv("NOTIFY_EMAIL"), log)
	go worker.Start(queue.QueueName)

	// 4. UseCases
	registerUC := usecase.NewRegisterLeadUseCase(leadRepo, producer)
	getUC := usecase.NewGetLeadUseCase(leadRepo)
	listUC := usecase.NewListLeadsUseCase(leadRepo)
	updateUC := usecase.NewUpdateLeadUseCase(leadRepo, producer)
	deleteUC := usecase.NewDeleteLeadUseCase(leadRepo)
	recordAttemptUC := usecase.NewRecordContactAttemptUseCase(leadRepo, producer)
	convertUC := usecase.NewConvertLeadUseCase(leadRepo, producer)
	markLostUC := usecase.NewMarkLeadLostUseCase(leadRepo, producer)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(
		registerUC, getUC, listUC, updateUC, deleteUC,
		recordAttemptUC, convertUC, markLostUC,
	)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn, rdb)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
	}))

	r.Route("/leads", func(r chi.Router) {
		r.Post("/", leadHandler.RegisterLead)
		r.Get("/", leadHandler.ListLeads)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", leadHandler.GetLead)
			r.Patch("/", leadHandler.UpdateLead)
			r.Delete("/", leadHandler.DeleteLead)
			r.Post("/contact-attempts", leadHandler.RecordContactAttempt)
			r.Post("/convert", leadHandler.ConvertLead)
			r.Post("/lose", leadHandler.MarkLeadLost)
			r.Get("/score", leadHandler.GetQualificationScore)
		})
	})
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + envOr("PORT", "8080")
	log.Infof("🔥 BridalCover CRM rodando na porta %s", port)
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
