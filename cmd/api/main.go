package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"example.com/wellness/internal/api"
	"example.com/wellness/internal/auth"
	"example.com/wellness/internal/catalog"
	"example.com/wellness/internal/config"
	"example.com/wellness/internal/domain"
	"example.com/wellness/internal/publisher"
	httptransport "example.com/wellness/internal/transport/http"
)

func main() {
	cfg := config.Load()

	pub, closePub := buildPublisher(cfg)
	defer closePub()

	service := domain.NewService(catalog.Default(), pub)
	handler := api.NewHandler(service)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())

	middlewares := []httptransport.Middleware{
		httptransport.RequestID(),
		httptransport.Logging(nil),
		httptransport.Recover(nil),
		httptransport.CORS(cfg.CORSAllowedOrigin),
	}
	if cfg.AuthEnabled {
		log.Printf("bearer auth enabled (issuer=%s)", cfg.JWTIssuer)
		middlewares = append(middlewares, auth.NewMiddleware(auth.Config{Secret: cfg.JWTSecret, Issuer: cfg.JWTIssuer}).Wrap)
	}

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:      cfg.HTTPAddress,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}, httptransport.Chain(mux, middlewares...))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("wellness-service listening on %s", cfg.HTTPAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-stop
	log.Println("wellness-service shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}

func buildPublisher(cfg config.Config) (publisher.Publisher, func()) {
	if len(cfg.KafkaBrokers) == 0 {
		log.Printf("KAFKA_BROKERS not set, plan events disabled")
		return publisher.NoopPublisher{}, func() {}
	}
	producer := publisher.NewKafkaProducer(publisher.KafkaConfig{
		Brokers:      cfg.KafkaBrokers,
		WriteTimeout: cfg.KafkaWriteTimeout,
	})
	log.Printf("publishing plan events to %s via %v", cfg.PlanEventsTopic, cfg.KafkaBrokers)
	return publisher.NewEventPublisher(producer, cfg.PlanEventsTopic), func() {
		if err := producer.Close(); err != nil {
			log.Printf("kafka producer close: %v", err)
		}
	}
}
