package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/shestoi/paypal-checkout/internal/app"
	"github.com/shestoi/paypal-checkout/internal/config"
)

func main() {
	// Пробуем загрузить .env (отсутствие файла - не ошибка)
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.Log()

	// Создаём и настраиваем приложение через DI container
	application, err := app.Build(cfg)
	if err != nil {
		log.Fatalf("Failed to build app: %v", err)
	}

	// Запускаем сервис
	if err := application.Run(); err != nil {
		log.Fatalf("Service error: %v", err)
	}
}
