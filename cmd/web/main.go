package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/minaorangina/cardtable/config"
	"github.com/minaorangina/cardtable/server"
	"github.com/minaorangina/cardtable/store"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		logrus.Fatal(err)
	}

	log := cfg.Logger(os.Stderr)
	s := server.NewServer(store.NewInMemoryGameStore(), cfg, log)

	log.Infof("Listening on %s...", s.Addr)
	log.Fatal(s.ListenAndServe())
}
