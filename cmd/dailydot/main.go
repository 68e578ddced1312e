package main

import (
	"errors"
	"io/fs"
	"log"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/app"
	"github.com/adarshtiwari-ai/dailydot-backend/internal/config"
	"github.com/joho/godotenv"
)

func main() {
	// .env нужен только локально, в окружении контейнера его нет
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
