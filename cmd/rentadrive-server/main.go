package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	log "github.com/sirupsen/logrus"

	"github.com/rentadrive/rentadrive/internal/config"
	"github.com/rentadrive/rentadrive/internal/server"
)

var (
	dbURL = flag.String("db-url", "", "URL-formatted connection string to the database server. Currently only postgres:// URLs are supported. Overrides DATABASE_URL.")
	port  = flag.Int("port", -1, "port to listen on. Overrides PORT.")
)

func configureLogging(cfg config.Config) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	if cfg.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

func main() {
	ctx := context.Background()

	flag.Parse()
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}
	if *dbURL != "" {
		cfg.DatabaseURL = *dbURL
	}
	if *port >= 0 {
		cfg.Port = *port
	}
	configureLogging(cfg)

	if cfg.DatabaseURL == "" {
		log.Fatal("a database connection string is required (-db-url flag or DATABASE_URL)")
	}

	db, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %s", err)
	}
	defer db.Close()

	router := server.New(db, cfg)
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		log.Fatalf("failed to listen on specified address: %s", err)
	}

	done := make(chan error)
	go func() {
		done <- http.Serve(listener, router)
	}()
	log.Infof("listening on http://%s...", listener.Addr())
	err = <-done
	if err != nil {
		log.Fatalf("failed to start server: %s", err)
	}
}
