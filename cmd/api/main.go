package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"lsaportal.org/internal/auth"
	"lsaportal.org/internal/config"
	"lsaportal.org/internal/httpapi"
	"lsaportal.org/internal/obs"
	"lsaportal.org/internal/spa"
)

var (
	version = "0.3.0"
	commit  = "dev"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	obs.Init()
	obs.InitBuildInfo(version, commit)

	var (
		db        *sql.DB
		userStore auth.UserStore
		spaStore  spa.Store
	)
	if cfg.Postgres.DSN != "" {
		db, err = sql.Open("pgx", cfg.Postgres.DSN)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)
		userStore = auth.NewPGStore(db)
		spaStore = spa.NewPGStore(db)
	} else {
		// Seeded in-memory mode for local development without Postgres.
		log.Println("LSA_PG_DSN not set, running with in-memory seed data")
		userStore, spaStore = devSeed()
	}

	tokens, err := auth.NewTokenService([]byte(cfg.Auth.SigningKey),
		auth.WithTokenIssuer(cfg.Auth.Issuer),
		auth.WithTokenTTL(cfg.Auth.TokenTTL),
	)
	if err != nil {
		log.Fatalf("token service: %v", err)
	}

	resolver := spa.NewResolver(spaStore)
	svc := auth.NewService(userStore, resolver, tokens)

	api := httpapi.New(httpapi.ReadyProbe{DB: db}, svc, resolver, httpapi.Options{
		Version:       version,
		CORSOrigin:    cfg.Server.CORSOrigin,
		RatePerSecond: cfg.Rate.PerSecond,
		RateBurst:     cfg.Rate.Burst,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           api.Handler(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("Starting lsaportal-api %s on %s", version, srv.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = srv.Shutdown(ctx)
	if db != nil {
		_ = db.Close()
	}
	log.Println("Stopped")
}

// devSeed mirrors ops/migrations/seeds so the API is usable out of the box.
func devSeed() (auth.UserStore, spa.Store) {
	users := auth.NewMemoryStore(
		auth.AdminUser{
			ID:       1,
			Username: "lsa_admin",
			Email:    "admin@lsa.lk",
			Role:     auth.RoleSuperAdmin,
			FullName: "LSA Administrator",
			Secret:   auth.ClassifySecret("ChangeMe123!"),
			Active:   true,
		},
		auth.AdminUser{
			ID:       2,
			Username: "serenity",
			Email:    "owner@serenity.lk",
			Role:     auth.RoleSpaAdmin,
			FullName: "Serenity Spa Owner",
			SpaID:    1,
			Secret:   auth.ClassifySecret("ChangeMe123!"),
			Active:   true,
		},
	)
	spas := spa.NewMemoryStore(
		spa.Spa{ID: 1, Name: "Serenity Spa", ReferenceNo: "LSA-0001", Status: spa.StatusApproved},
		spa.Spa{ID: 2, Name: "Lotus Spa", ReferenceNo: "LSA-0002", Status: spa.StatusPending},
	)
	return users, spas
}
