package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"google.golang.org/grpc"

	projecthandler "github.com/Jamolkhon5/blackrock-ai/internal/ai/project/handler"
	"github.com/Jamolkhon5/blackrock-ai/internal/ai/project/service"
	"github.com/Jamolkhon5/blackrock-ai/internal/config"
	"github.com/Jamolkhon5/blackrock-ai/internal/grpcapi"
	"github.com/Jamolkhon5/blackrock-ai/internal/handler"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.NewConfig(".env")
	if err != nil {
		log.Fatal(err)
	}

	estimator := service.NewEstimator()

	// Настройка роутера
	r := newRouter(cfg, estimator)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	go func() {
		log.Printf("HTTP server listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// gRPC включается только если задан адрес
	var gs *grpc.Server
	if cfg.GRPCAddr != "" {
		lis, err := net.Listen("tcp", cfg.GRPCAddr)
		if err != nil {
			log.Fatal(err)
		}
		gs = grpc.NewServer()
		grpcapi.Register(gs, estimator)
		go func() {
			log.Printf("gRPC server listening on %s", cfg.GRPCAddr)
			if err := gs.Serve(lis); err != nil {
				log.Fatalf("grpc serve: %s\n", err)
			}
		}()
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown Server ...")

	if gs != nil {
		gs.GracefulStop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}
	log.Println("Server exiting")
}

func newRouter(cfg *config.Config, estimator *service.Estimator) http.Handler {
	r := chi.NewRouter()

	corsOptions := cors.Options{
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if slices.Contains(cfg.CORSAllowedOrigins, "*") {
		// с credentials браузер не примет "*", поэтому возвращаем Origin запроса
		corsOptions.AllowOriginFunc = func(r *http.Request, origin string) bool { return true }
	} else {
		corsOptions.AllowedOrigins = cfg.CORSAllowedOrigins
	}
	r.Use(cors.Handler(corsOptions))

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	handler.NewHandler().RegisterRoutes(r)
	projecthandler.NewProjectEstimateHandler(estimator).RegisterRoutes(r)

	return r
}
