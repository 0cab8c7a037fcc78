package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Aryan1212a/TripSync/config"
	"github.com/Aryan1212a/TripSync/internal/auth"
	"github.com/Aryan1212a/TripSync/internal/db"
	"github.com/Aryan1212a/TripSync/internal/events"
	"github.com/Aryan1212a/TripSync/internal/external"
	"github.com/Aryan1212a/TripSync/internal/handlers"
	"github.com/Aryan1212a/TripSync/internal/services"
	"github.com/Aryan1212a/TripSync/internal/storage"
	"github.com/Aryan1212a/TripSync/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.mongodb.org/mongo-driver/mongo"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	client     *mongo.Client
	publisher  events.Publisher
}

// New constructs a Server with basic middleware and defaults.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	jwtSecret := strings.TrimSpace(cfg.Auth.JWTSecret)
	if jwtSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	client, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	database := db.Database(client, cfg)

	userRepo := store.NewUserRepository(database)
	packageRepo := store.NewPackageRepository(database)
	bookingRepo := store.NewBookingRepository(database)

	publisher, err := newPublisher(ctx, cfg.Events)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	media, err := newMediaStorage(ctx, cfg.Storage)
	if err != nil {
		_ = publisher.Close()
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	userService := services.NewUserService(userRepo)
	packageService := services.NewPackageService(packageRepo)
	bookingService := services.NewBookingService(bookingRepo, packageRepo, publisher)

	weatherClient := external.NewWeatherClient(cfg.External)
	placesClient := external.NewPlacesClient(cfg.External)

	tokenTTL := time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute
	authMiddleware := auth.RequireAuth([]byte(jwtSecret))

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Get("/", handlers.Root)
	router.Get("/healthz", handlers.Healthz)
	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			handlers.AuthRouter(r, userService, jwtSecret, tokenTTL)
		})
		r.Route("/packages", func(r chi.Router) {
			handlers.PackageRouter(r, packageService, media, authMiddleware)
		})
		r.Route("/bookings", func(r chi.Router) {
			handlers.BookingRouter(r, bookingService, authMiddleware)
		})
		r.Route("/admin", func(r chi.Router) {
			handlers.AdminRouter(r, userService, packageService, bookingService, authMiddleware)
		})
		r.Route("/external", func(r chi.Router) {
			handlers.ExternalRouter(r, weatherClient, placesClient)
		})
	})

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		client:     client,
		publisher:  publisher,
	}, nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.publisher != nil {
		_ = s.publisher.Close()
	}
	if s.client != nil {
		_ = s.client.Disconnect(context.Background())
	}
	return s.httpServer.Close()
}

func newPublisher(ctx context.Context, cfg config.EventsConfig) (events.Publisher, error) {
	switch cfg.Backend {
	case "":
		return events.NoopPublisher{}, nil
	case "rabbitmq":
		return events.NewRabbitMQPublisher(cfg)
	case "pubsub":
		return events.NewPubSubPublisher(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown events backend %q", cfg.Backend)
	}
}

func newMediaStorage(ctx context.Context, cfg config.StorageConfig) (*storage.MediaStorage, error) {
	var backend storage.ObjectStorage
	switch cfg.Backend {
	case "":
		return nil, nil
	case "minio":
		client, err := storage.NewMinioClient(cfg.Minio)
		if err != nil {
			return nil, err
		}
		backend = client
	case "gcs":
		client, err := storage.NewGCSClient(ctx, cfg.GCS)
		if err != nil {
			return nil, err
		}
		backend = client
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}

	media := storage.NewMediaStorage(backend)
	if err := media.EnsureBucket(ctx); err != nil {
		return nil, err
	}
	return media, nil
}
