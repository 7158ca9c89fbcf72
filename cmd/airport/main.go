package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/half-nothing/airport-booking/internal/base"
	"github.com/half-nothing/airport-booking/internal/cache"
	"github.com/half-nothing/airport-booking/internal/database"
	"github.com/half-nothing/airport-booking/internal/event"
	"github.com/half-nothing/airport-booking/internal/http_server"
	"github.com/half-nothing/airport-booking/internal/interfaces"
	"github.com/half-nothing/airport-booking/internal/interfaces/global"
	"github.com/half-nothing/airport-booking/internal/maintenance"
)

func recoverFromError() {
	if r := recover(); r != nil {
		fmt.Printf("It looks like there are some serious errors, the details are as follows: %v", r)
	}
}

func main() {
	flag.Parse()

	defer recoverFromError()

	logger := base.NewLogger()
	logger.Init(*global.DebugMode)

	logger.InfoF("Airport booking %s initializing...", global.AppVersion)

	cleaner := base.NewCleaner(logger)
	cleaner.Init()
	defer cleaner.Clean()

	configManager := base.NewManager(logger)
	config := configManager.Config()

	shutdownCallback, databaseOperation, err := database.ConnectDatabase(logger, config, *global.DebugMode)
	if err != nil {
		logger.FatalF("Error occurred while initializing operation, details: %v", err)
		return
	}
	cleaner.Add(shutdownCallback)

	flightCache, cacheCallback, err := cache.NewFlightCache(logger, config.Server.Redis)
	if err != nil {
		logger.FatalF("Error occurred while connecting to redis, details: %v", err)
		return
	}
	cleaner.Add(cacheCallback)

	publisher := event.NewPublisher(logger, config.Server.Kafka)
	cleaner.Add(publisher.ShutdownCallback())

	applicationContent := interfaces.NewApplicationContent(configManager, cleaner, logger, databaseOperation, flightCache, publisher)

	sweeper := maintenance.NewSweeper(logger, config.Server.Maintenance, databaseOperation.FlightOperation(), flightCache, publisher)
	sweeper.Start(context.Background())
	cleaner.Add(sweeper.ShutdownCallback())

	if !config.Server.HttpServer.Enabled {
		logger.Warn("Http server disabled, only the flight sweeper is running")
		select {}
	}

	http_server.StartHttpServer(applicationContent, sweeper)
}
