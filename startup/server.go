package startup

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/fahim-khandakar/explore-elite-server-side/authorization"
	"github.com/fahim-khandakar/explore-elite-server-side/domain"
	"github.com/fahim-khandakar/explore-elite-server-side/handlers"
	application "github.com/fahim-khandakar/explore-elite-server-side/service"
	"github.com/fahim-khandakar/explore-elite-server-side/startup/config"
	"github.com/fahim-khandakar/explore-elite-server-side/store"
)

type Server struct {
	config *config.Config
}

var Logger = logrus.New()

const LogFilePath = "/app/logs/explore.log"

func initLogger() {
	writer, err := rotatelogs.New(
		LogFilePath+"_%Y%m%d",
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		Logger.SetOutput(os.Stdout)
		Logger.WithError(err).Warn("Log file unavailable, logging to stdout")
		return
	}
	Logger.SetOutput(writer)
	Logger.SetFormatter(&logrus.JSONFormatter{})
}

func NewServer(config *config.Config) *Server {
	return &Server{
		config: config,
	}
}

func (server *Server) Start() {
	initLogger()

	mongoClient := server.initMongoClient()
	defer func(mongoClient *mongo.Client, ctx context.Context) {
		err := mongoClient.Disconnect(ctx)
		if err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}(mongoClient, context.Background())

	tracer, shutdownTracer := server.initTracer()
	defer func() { _ = shutdownTracer(context.Background()) }()

	userStore := server.initUserStore(mongoClient, tracer)
	packageStore := store.NewPackageMongoDBStore(mongoClient, tracer)
	bookingStore := store.NewBookingMongoDBStore(mongoClient, tracer)
	wishStore := store.NewWishMongoDBStore(mongoClient, tracer)
	storyStore := store.NewStoryMongoDBStore(mongoClient, tracer)

	auth := server.initAuthorizer(userStore)

	userHandler := handlers.NewUserHandler(application.NewUserService(userStore), auth, tracer, Logger)
	packageHandler := handlers.NewPackageHandler(application.NewPackageService(packageStore), auth, tracer, Logger)
	bookingHandler := handlers.NewBookingHandler(application.NewBookingService(bookingStore), auth, tracer, Logger)
	wishHandler := handlers.NewWishHandler(application.NewWishService(wishStore), auth, tracer, Logger)
	storyHandler := handlers.NewStoryHandler(application.NewStoryService(storyStore), auth, tracer, Logger)

	server.start(userHandler, packageHandler, bookingHandler, wishHandler, storyHandler)
}

func (server *Server) initMongoClient() *mongo.Client {
	client, err := store.GetClient(
		server.config.ExploreDBHost,
		server.config.ExploreDBPort,
		server.config.ExploreDBUser,
		server.config.ExploreDBPass,
	)
	if err != nil {
		log.Fatal(err)
	}
	return client
}

func (server *Server) initUserStore(client *mongo.Client, tracer trace.Tracer) domain.UserStore {
	return store.NewUserMongoDBStore(client, tracer)
}

func (server *Server) initAuthorizer(users domain.UserStore) *authorization.Authorizer {
	auth, err := authorization.NewAuthorizer(
		[]byte(server.config.Secret),
		users,
		Logger,
		server.config.RBACModelPath,
		server.config.RBACPolicy,
	)
	if err != nil {
		log.Fatal(err)
	}
	return auth
}

func (server *Server) initTracer() (trace.Tracer, func(context.Context) error) {
	if server.config.JaegerAddress == "" {
		return trace.NewNoopTracerProvider().Tracer("explore_service"), func(context.Context) error { return nil }
	}

	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(server.config.JaegerAddress)))
	if err != nil {
		log.Fatalf("Failed to Initialize Exporter: %v", err)
	}

	tp := newTraceProvider(exp)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp.Tracer("explore_service"), tp.Shutdown
}

func newTraceProvider(exp sdktrace.SpanExporter) *sdktrace.TracerProvider {
	r, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("explore_service"),
		),
	)
	if err != nil {
		panic(err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(r),
	)
}

func (server *Server) start(routeHandlers ...interface{ Init(*mux.Router) }) {
	router := mux.NewRouter()
	router.Use(MiddlewareContentTypeSet)
	router.Use(loggingMiddleware)
	router.Use(ExtractTraceInfoMiddleware)

	for _, handler := range routeHandlers {
		handler.Init(router)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", server.config.Port),
		Handler: router,
	}

	wait := time.Second * 15
	go func() {
		if err := srv.ListenAndServe(); err != nil {
			log.Println(err)
		}
	}()

	c := make(chan os.Signal, 1)

	signal.Notify(c, os.Interrupt)
	signal.Notify(c, syscall.SIGTERM)

	<-c

	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Error Shutting Down Server %s", err)
	}
	log.Println("Server Gracefully Stopped")
}

func MiddlewareContentTypeSet(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, h *http.Request) {
		rw.Header().Add("Content-Type", "application/json")
		rw.Header().Set("X-Content-Type-Options", "nosniff")
		rw.Header().Set("X-Frame-Options", "DENY")

		next.ServeHTTP(rw, h)
	})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		Logger.WithFields(logrus.Fields{
			"requestId": uuid.New().String(),
			"method":    req.Method,
			"path":      req.URL.Path,
		}).Info("Request received")
		next.ServeHTTP(rw, req)
	})
}

func ExtractTraceInfoMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
