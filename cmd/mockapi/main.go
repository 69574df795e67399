package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"hostel/providers/configprovider"
	"hostel/providers/loggerprovider"
	"hostel/stubserver"
)

func main() {

	config := configprovider.NewConfigProvider()
	if err := config.LoadEnv(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logs := loggerprovider.NewLogProvider()
	logs.InitLogger()
	defer logs.SyncLogger()

	srv := stubserver.New(logs.GetLogger())
	go srv.Start(config.GetMockAPIPort())
	logs.GetLogger().Info("mock api initialized...")

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-done
	srv.Stop()
	logs.GetLogger().Info("mock api stopped...")
}
