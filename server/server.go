package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/minaorangina/cardtable/config"
	"github.com/minaorangina/cardtable/engine"
	"github.com/minaorangina/cardtable/protocol"
	"github.com/minaorangina/cardtable/store"
)

type NewTableReq struct {
	Variant string `json:"variant"`
}

type NewTableRes struct {
	TableID string           `json:"table_id"`
	Variant protocol.Variant `json:"variant"`
}

type ListTablesRes struct {
	Tables []string `json:"tables"`
}

// GameServer is a game server. Each table it creates is played by its own
// engine loop; handlers only talk to the store.
type GameServer struct {
	store    store.GameStore
	cfg      config.Config
	log      logrus.FieldLogger
	upgrader websocket.Upgrader
	ctx      context.Context
	cancel   context.CancelFunc
	http.Server
}

// NewServer creates a new GameServer
func NewServer(gameStore store.GameStore, cfg config.Config, logger logrus.FieldLogger) *GameServer {
	s := new(GameServer)
	s.store = gameStore
	s.cfg = cfg
	s.log = logger
	if s.log == nil {
		s.log = logrus.StandardLogger()
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(cfg.AllowedOrigins),
	}

	router := http.NewServeMux()
	router.HandleFunc("GET /{$}", s.HandlePing)
	router.HandleFunc("POST /new", s.HandleNewTable)
	router.HandleFunc("GET /tables", s.HandleListTables)
	router.HandleFunc("GET /table/{id}", s.HandleFindTable)
	router.HandleFunc("DELETE /table/{id}", s.HandleRemoveTable)
	router.HandleFunc("GET /ws", s.HandleWS)

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	recovery := handlers.RecoveryHandler(handlers.RecoveryLogger(s.log))

	s.Addr = cfg.Addr()
	s.Handler = recovery(LogMiddleware(s.log)(cors(router)))

	return s
}

// ServeHTTP serves http
func (s *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Handler.ServeHTTP(w, r)
}

// Close stops every table's engine loop and the listener.
func (s *GameServer) Close() error {
	s.cancel()
	return s.Server.Close()
}

func (s *GameServer) HandlePing(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("Content-Type", "text/plain")
	w.Write([]byte("cardtable"))
}

// HandleNewTable deals a new game and starts its engine loop.
func (s *GameServer) HandleNewTable(w http.ResponseWriter, r *http.Request) {
	var data NewTableReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		writeParseError(s.log, err, w)
		return
	}

	variant, err := protocol.ParseVariant(data.Variant)
	if err != nil {
		writeText(w, http.StatusBadRequest, err.Error())
		return
	}

	table, err := s.startTable(variant)
	if err != nil {
		s.log.WithError(err).Error("could not start table")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(s.log, w, http.StatusCreated, NewTableRes{TableID: table.ID, Variant: variant})
}

func (s *GameServer) startTable(variant protocol.Variant) (*store.Table, error) {
	seed := s.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game, err := engine.NewTable(variant, engine.TableOpts{
		Rand:     rand.New(rand.NewSource(seed)),
		CPUDelay: s.cfg.CPUDelay,
	})
	if err != nil {
		return nil, err
	}

	table := store.NewTable(variant)
	log := s.log.WithFields(logrus.Fields{"table": table.ID})

	e, err := engine.New(engine.EngineOpts{
		Table:    game,
		Inbound:  table.Inbound,
		Renderer: table,
		Log:      log,
		Tick:     s.cfg.Tick,
	})
	if err != nil {
		return nil, err
	}

	// the first snapshot is there before anyone can ask for it
	table.Render(game.Snapshot())

	if err := s.store.AddTable(table); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(s.ctx)
	go func() {
		select {
		case <-table.Done():
		case <-ctx.Done():
		}
		cancel()
	}()

	go func() {
		defer cancel()
		defer table.Close()

		err := e.Run(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			log.WithError(err).Error("table stopped")
		}
	}()

	return table, nil
}

func (s *GameServer) HandleListTables(w http.ResponseWriter, r *http.Request) {
	writeJSON(s.log, w, http.StatusOK, ListTablesRes{Tables: s.store.Tables()})
}

// HandleFindTable responds with the latest snapshot of a table.
func (s *GameServer) HandleFindTable(w http.ResponseWriter, r *http.Request) {
	tableID := r.PathValue("id")

	table, ok := s.store.FindTable(tableID)
	if !ok {
		writeText(w, http.StatusNotFound, unknownTableIDMsg(tableID))
		return
	}

	writeJSON(s.log, w, http.StatusOK, table.Latest())
}

func (s *GameServer) HandleRemoveTable(w http.ResponseWriter, r *http.Request) {
	tableID := r.PathValue("id")

	if err := s.store.RemoveTable(tableID); err != nil {
		writeText(w, http.StatusNotFound, unknownTableIDMsg(tableID))
		return
	}

	s.log.WithField("table", tableID).Info("table removed")
	w.WriteHeader(http.StatusNoContent)
}

// HandleWS plays a table over a websocket: commands in, snapshots out.
func (s *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	tableID := r.URL.Query().Get("table_id")
	if tableID == "" {
		writeText(w, http.StatusBadRequest, "missing table ID")
		return
	}

	table, ok := s.store.FindTable(tableID)
	if !ok {
		writeText(w, http.StatusNotFound, unknownTableIDMsg(tableID))
		return
	}

	rawConn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already responded
		s.log.WithError(err).Warn("could not upgrade to websocket")
		return
	}

	log := s.log.WithField("table", tableID)
	LogWebSocketConnect(log, r.RemoteAddr, r.URL.Path)

	c := newConnection(rawConn, table, log)
	go c.writePump()
	err = c.readPump()

	LogWebSocketDisconnect(log, r.RemoteAddr, r.URL.Path, err)
}

func unknownTableIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown table ID '%s'", unknownID)
}
