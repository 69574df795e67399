package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hostel/navigation"
	"hostel/pages"
	"hostel/providers/configprovider"
	"hostel/providers/loggerprovider"
	"hostel/session"
	"hostel/transport"
)

func main() {

	config := configprovider.NewConfigProvider()
	if err := config.LoadEnv(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logs := loggerprovider.NewLogProvider()
	logs.InitLogger()
	defer logs.SyncLogger()
	logger := logs.GetLogger()

	client := transport.New(
		config.GetAPIBaseURL(),
		time.Duration(config.GetHTTPTimeoutSeconds())*time.Second,
		logger,
	)
	sessions := session.NewStore()
	router := navigation.NewRouter()
	console := pages.NewConsole(os.Stdin, os.Stdout)
	app := pages.NewApp(client, router, sessions, console, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-done
		cancel()
	}()

	logger.Info("console initialized...")
	app.Run(ctx)
	logger.Info("console stopped...")
}
