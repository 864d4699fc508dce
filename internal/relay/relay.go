// Package relay implements the gutterd rendezvous peer: a TCP endpoint
// that picks up fixed-size logs from connected gutters and hails back
// after each one, optionally echoing the log to its sender.
package relay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/gutters"
	"github.com/danmuck/gutters/internal/observability"
)

// logSize is the wire footprint of one relay log (float64).
const logSize = 8

// Relay endpoint configuration.
type Config struct {
	Name       string
	ListenAddr string
	AdminAddr  string
	Echo       bool
}

// Relay defaults: serve on :9400, no admin surface, no echo.
func DefaultConfig() Config {
	return Config{
		Name:       "gutterd.local",
		ListenAddr: ":9400",
		AdminAddr:  "",
		Echo:       false,
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("relay config missing name")
	}
	if strings.TrimSpace(c.ListenAddr) == "" {
		return fmt.Errorf("relay config missing listen addr")
	}
	return nil
}

// Stats is a point-in-time snapshot of relay activity.
type Stats struct {
	Name          string `json:"name"`
	ActiveClients int64  `json:"active_clients"`
	LogsPickedUp  uint64 `json:"logs_picked_up"`
	LogsEchoed    uint64 `json:"logs_echoed"`
}

type Service struct {
	cfg Config

	mu    sync.Mutex
	conns map[net.Conn]struct{}

	clientCount  atomic.Int64
	logsPickedUp atomic.Uint64
	logsEchoed   atomic.Uint64
}

func NewService(cfg Config) *Service {
	return &Service{
		cfg:   cfg,
		conns: make(map[net.Conn]struct{}),
	}
}

// Relay listener builder plus optional admin surface, then accept loop.
func (s *Service) Run(ctx context.Context) error {
	if err := s.cfg.Validate(); err != nil {
		return err
	}
	ln, err := net.Listen("tcp", s.cfg.ListenAddr)
	if err != nil {
		return err
	}
	if strings.TrimSpace(s.cfg.AdminAddr) != "" {
		s.startAdmin(ctx)
	}
	return s.Serve(ctx, ln)
}

// Relay accept loop for gutter sessions on an existing listener.
func (s *Service) Serve(ctx context.Context, ln net.Listener) error {
	defer ln.Close()
	go func() {
		<-ctx.Done()
		s.closeAllConns()
		_ = ln.Close()
	}()

	log.Info().Str("name", s.cfg.Name).Str("addr", ln.Addr().String()).Msg("relay.serve listening")
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}
		s.trackConn(conn)
		go s.handleConn(conn)
	}
}

// Relay snapshot of observed session counters.
func (s *Service) SnapshotStats() Stats {
	return Stats{
		Name:          s.cfg.Name,
		ActiveClients: s.clientCount.Load(),
		LogsPickedUp:  s.logsPickedUp.Load(),
		LogsEchoed:    s.logsEchoed.Load(),
	}
}

// Relay connection handler: pick-up-and-hail loop over float64 logs.
func (s *Service) handleConn(conn net.Conn) {
	defer conn.Close()
	defer s.untrackConn(conn)
	remote := conn.RemoteAddr().String()
	started := time.Now()
	active := s.clientCount.Add(1)
	log.Info().Str("remote", remote).Int64("active_clients", active).Msg("relay.session connected")
	defer func() {
		remaining := s.clientCount.Add(-1)
		observability.RecordSession(s.cfg.Name, time.Since(started))
		log.Info().Str("remote", remote).Int64("active_clients", remaining).Msg("relay.session disconnected")
	}()

	for {
		var payload float64
		if err := gutters.PickUpAndHail(conn, &payload); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
				return
			}
			log.Warn().Err(err).Str("remote", remote).Msg("relay.session pick-up failed")
			return
		}
		s.logsPickedUp.Add(1)
		observability.RecordPickUp(s.cfg.Name, logSize)
		observability.RecordHail(s.cfg.Name)
		log.Debug().Str("remote", remote).Float64("value", payload).Msg("relay.session picked up log")

		if !s.cfg.Echo {
			continue
		}
		if err := gutters.Throw(conn, &payload); err != nil {
			log.Warn().Err(err).Str("remote", remote).Msg("relay.session echo failed")
			return
		}
		s.logsEchoed.Add(1)
		observability.RecordThrow(s.cfg.Name, logSize)
	}
}

func (s *Service) trackConn(conn net.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conns[conn] = struct{}{}
}

func (s *Service) untrackConn(conn net.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conns, conn)
}

func (s *Service) closeAllConns() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		_ = conn.Close()
	}
}
