package main

import (
	"context"
	"fmt"

	"github.com/atelierhub/atelier-orders/internal/app"
	"github.com/atelierhub/atelier-orders/internal/config"
	"github.com/atelierhub/atelier-orders/internal/logger"
	"github.com/atelierhub/atelier-orders/internal/storage"
)

func main() {
	// загрузка конфига
	config := config.NewConfig()
	// инициализация логгера
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()

	// инициализация хранилища
	db, err := storage.NewDatabase(config.Server.DatabaseDSN)
	if err != nil {
		logger.Panic("can't create database:", err.Error())
	}
	defer db.Close()
	if err := db.Initialize(context.Background()); err != nil {
		logger.Panic("can't initialize database:", err.Error())
	}

	// создание маршрутизатора и запуск сервера
	app.Run(config, storage.NewStorage(db))
}
