package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SimratKaur2/comp2535-assignment1/internal/auth"
	"github.com/SimratKaur2/comp2535-assignment1/internal/config"
	"github.com/SimratKaur2/comp2535-assignment1/internal/db"
	"github.com/SimratKaur2/comp2535-assignment1/internal/members"
	"github.com/SimratKaur2/comp2535-assignment1/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	logger.Info("Connected to database")

	if err := auth.Init(gdb); err != nil {
		logger.Fatal("Failed to set up auth tables", zap.Error(err))
	}
	if err := members.Init(gdb); err != nil {
		logger.Fatal("Failed to set up members tables", zap.Error(err))
	}

	sessions := auth.NewManager(&auth.GormSessionStore{DB: gdb}, cfg.SessionTTL, cfg.CookieSecure)
	authHandler := auth.NewHandler(&auth.GormUserStore{DB: gdb}, sessions, auth.NewHasher(), logger)
	membersHandler := &members.Handler{Gallery: &members.GormGalleryStore{DB: gdb}, Log: logger}

	// Ten credential attempts up front, then one per second per client IP.
	throttle := middleware.NewThrottle(rate.Every(time.Second), 10)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)

	authHandler.Register(r, throttle.Middleware)
	r.Mount("/members", membersHandler.Routes(middleware.RequireSession(sessions)))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, "Page not found - 404")
	})

	logger.Info("Server listening", zap.String("port", cfg.Port))
	if err := http.ListenAndServe("0.0.0.0:"+cfg.Port, r); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
