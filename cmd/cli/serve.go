package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/minaorangina/cardtable/server"
	"github.com/minaorangina/cardtable/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve games over HTTP and websockets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		log := cfg.Logger(os.Stderr)
		s := server.NewServer(store.NewInMemoryGameStore(), cfg, log)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		go func() {
			<-ctx.Done()
			shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			s.Shutdown(shutdown)
		}()

		log.Infof("Listening on %s...", s.Addr)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return s.Close()
	},
}
