package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/graphql-go/handler"

	"github.com/VitaminP8/blogql/graph"
	"github.com/VitaminP8/blogql/internal/config"
	"github.com/VitaminP8/blogql/internal/seed"
	"github.com/VitaminP8/blogql/internal/storage/memory"
)

func main() {
	configPath := flag.String("config", "config.yaml", "путь к конфигу")
	flag.Parse()

	// загружаем .env из нашего config.go
	config.LoadEnv()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("config file not found, using defaults: %v", err)
		cfg = config.Default()
	}

	// Сид-данные загружаются один раз и живут до конца процесса
	data, err := seed.Load(cfg.Data.PostsPath, cfg.Data.UsersPath)
	if err != nil {
		log.Fatalf("failed to load seed data: %v", err)
	}

	postStore := memory.NewPostMemoryStorage(data.Posts)
	userStore, err := memory.NewUserMemoryStorage(data.Users)
	if err != nil {
		log.Fatalf("failed to init user storage: %v", err)
	}

	// Инициализация резолвера
	resolver := &graph.Resolver{
		PostStore: postStore,
		UserStore: userStore,
	}

	schema, err := graph.NewSchema(resolver)
	if err != nil {
		log.Fatalf("failed to build schema: %v", err)
	}

	// GraphQL endpoint + GraphiQL на том же пути
	srv := handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: true,
	})
	http.Handle("/query", srv)

	// HTTP сервер
	server := &http.Server{
		Addr: cfg.Server.Addr,
	}

	// запуск HTTP сервера
	go func() {
		log.Printf("Сервер запущен на http://localhost%s/query", cfg.Server.Addr)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Ошибка сервера: %v", err)
		}
	}()

	// Ожидание SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Завершение...")

	if err := server.Shutdown(context.Background()); err != nil {
		log.Fatalf("Ошибка при завершении сервера: %v", err)
	}

	log.Println("Сервер остановлен корректно")
}
