package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/profitlens/roi-master-api/internal/infra/database"
	"github.com/profitlens/roi-master-api/internal/infra/http/handlers"
	"github.com/profitlens/roi-master-api/internal/infra/http/middleware"
	"github.com/profitlens/roi-master-api/internal/infra/queue"
	"github.com/profitlens/roi-master-api/internal/usecase"
)

func main() {
	godotenv.Load()

	// Mongo é opcional no boot: sem credencial o sistema sobe em modo
	// degradado (gravações falham, listagem devolve vazio), igual ao
	// comportamento esperado pelo deploy.
	var mongoClient *mongo.Client
	if uri := os.Getenv("MONGO_URI"); uri == "" {
		log.Println("⚠️ MONGO_URI não definido. O sistema sobe, mas vai dar erro ao tentar salvar.")
	} else {
		client, err := database.NewMongoConnection(uri)
		if err != nil {
			log.Printf("❌ Erro ao conectar no MongoDB: %v", err)
		} else {
			mongoClient = client
			defer client.Disconnect(context.Background())
			log.Println("🔥 MongoDB conectado com sucesso!")
		}
	}

	var db *mongo.Database
	if mongoClient != nil {
		dbName := os.Getenv("MONGO_DB")
		if dbName == "" {
			dbName = "profitlens"
		}
		db = mongoClient.Database(dbName)
	}

	// RabbitMQ também é opcional: sem broker só desliga a publicação de
	// eventos de lead, o ingest continua.
	var rabbitMQ *queue.RabbitMQ
	if host := os.Getenv("RABBITMQ_HOST"); host != "" {
		rmq, err := queue.NewRabbitMQ(
			os.Getenv("RABBITMQ_USER"),
			os.Getenv("RABBITMQ_PASS"),
			host,
			os.Getenv("RABBITMQ_PORT"),
		)
		if err != nil {
			log.Printf("⚠️ RabbitMQ indisponível, eventos de lead desativados: %v", err)
		} else {
			rabbitMQ = rmq
			defer rmq.Conn.Close()
			defer rmq.Ch.Close()
		}
	}

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)
	userRepo := database.NewUserRepository(db)

	// 2. Producer de eventos
	var producer usecase.LeadEventProducerInterface
	if rabbitMQ != nil {
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	}

	// 3. UseCases
	trackUC := usecase.NewTrackLeadUseCase(leadRepo, producer)
	listUC := usecase.NewListLeadsUseCase(leadRepo)
	updateUC := usecase.NewUpdateLeadUseCase(leadRepo)
	loginUC := usecase.NewLoginUseCase(userRepo)

	// 4. Handlers
	trackHandler := handlers.NewTrackHandler(trackUC)
	leadsHandler := handlers.NewLeadsHandler(listUC, updateUC)
	sessionHandler := handlers.NewSessionHandler(loginUC)

	var rabbitConn *amqp091.Connection
	if rabbitMQ != nil {
		rabbitConn = rabbitMQ.Conn
	}
	healthHandler := handlers.NewHealthHandler(mongoClient, rabbitConn)

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		// Aberto de propósito: as LPs dos médicos postam de qualquer domínio.
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	r.Get("/", healthHandler.HandleRoot)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/login", sessionHandler.HandleLogin)
	r.Post("/track", trackHandler.Handle)
	r.Get("/leads", leadsHandler.HandleList)
	r.Put("/leads/{id}", leadsHandler.HandleUpdate)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("🔥 ProfitLens API rodando na porta %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
