package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/algocode/backend/battleship"
	battleshiphttp "github.com/algocode/backend/battleship/http"
	"github.com/algocode/backend/blitz"
	blitzhttp "github.com/algocode/backend/blitz/http"
	"github.com/algocode/backend/conf"
	"github.com/algocode/backend/judge"
	"github.com/algocode/backend/logger"
	"github.com/algocode/backend/polechudes"
	polechudeshttp "github.com/algocode/backend/polechudes/http"
	"github.com/algocode/backend/standings"
	"github.com/algocode/backend/standingsexport"
	exporthttp "github.com/algocode/backend/standingsexport/http"
	"github.com/algocode/backend/user"
	"github.com/algocode/backend/user/auth"
	userhttp "github.com/algocode/backend/user/http"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		panic("Error loading .env file")
	}

	jwtKey := os.Getenv("JWT_KEY")
	if jwtKey == "" {
		slog.Error("JWT_KEY is not set")
		os.Exit(1)
	}

	judgesToml := os.Getenv("JUDGES_TOML")
	if judgesToml == "" {
		judgesToml = "judges.toml"
	}
	registry, err := judge.LoadRegistry(judgesToml)
	if err != nil {
		slog.Error("failed to load judge registry", "error", err)
		os.Exit(1)
	}

	pool, err := pgxpool.New(context.Background(), conf.GetPgConnStrFromEnv())
	if err != nil {
		slog.Error("failed to create pg connection pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	agg := standings.NewAggregator(judge.NewClient(registry))

	userSrvc := user.NewUserSrvc(pool)
	battleshipSrvc := battleship.NewBattleshipSrvc(battleship.NewPgRepo(pool), agg)
	poleChudesSrvc := polechudes.NewPoleChudesSrvc(polechudes.NewPgRepo(pool), agg)
	blitzSrvc := blitz.NewBlitzSrvc(blitz.NewPgRepo(pool))

	var snapshots *standingsexport.SnapshotStore
	if bucket := os.Getenv("SNAPSHOT_S3_BUCKET"); bucket != "" {
		snapshots, err = standingsexport.NewSnapshotStore(os.Getenv("AWS_REGION"), bucket)
		if err != nil {
			slog.Error("failed to create snapshot store", "error", err)
			os.Exit(1)
		}
	}
	exportSrvc := standingsexport.NewExportSrvc(
		standingsexport.NewPgRepo(pool), agg, snapshots)

	router := newRouter([]byte(jwtKey))
	userhttp.NewUserHttpHandler(userSrvc, []byte(jwtKey)).RegisterRoutes(router)
	battleshiphttp.NewBattleshipHttpHandler(battleshipSrvc).RegisterRoutes(router)
	polechudeshttp.NewPoleChudesHttpHandler(poleChudesSrvc).RegisterRoutes(router)
	blitzhttp.NewBlitzHttpHandler(blitzSrvc).RegisterRoutes(router)
	exporthttp.NewExportHttpHandler(exportSrvc).RegisterRoutes(router)

	address := ":8080"
	log.Printf("Starting server on %s", address)
	err = http.ListenAndServe(address, router)
	log.Printf("Server stopped with error: %v", err)
}

func newRouter(jwtKey []byte) *chi.Mux {
	router := chi.NewRouter()

	logger := httplog.NewLogger("algocode", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		RequestHeaders:   true,
		MessageFieldName: "message",
		Tags: map[string]string{
			"env": "dev",
		},
	})

	router.Use(httplog.RequestLogger(logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "https://algocode.ru", "https://www.algocode.ru"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	router.Use(requestIDLogger)
	router.Use(auth.GetJwtAuthMiddleware(jwtKey))

	return router
}

// requestIDLogger puts a request-scoped logger into the context so that
// handlers tag their log lines with the request id.
func requestIDLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
