// Package server реализует TCP-слушатель клиентских конвертов.
// Каждое соединение обслуживается своей горутиной: клиент шлёт
// JSON-конверты, разделённые переводом строки, и на каждый запрос
// получает ровно один ответ.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gronskott/happyplants/internal/config"
	"github.com/gronskott/happyplants/internal/dispatch"
	"github.com/gronskott/happyplants/internal/lib/sl"
	"github.com/gronskott/happyplants/internal/protocol"
)

// Server принимает клиентские соединения и гоняет конверты через
// реестр обработчиков.
type Server struct {
	log         *slog.Logger
	addr        string
	readTimeout time.Duration
	registry    *dispatch.Registry

	mu       sync.Mutex
	listener net.Listener
	wg       sync.WaitGroup
}

// New создает новый Server.
func New(log *slog.Logger, cfg config.TCPServer, registry *dispatch.Registry) *Server {
	return &Server{
		log:         log,
		addr:        cfg.AddressTCP,
		readTimeout: cfg.ReadTimeout,
		registry:    registry,
	}
}

// Run слушает адрес из конфига до отмены контекста. Возвращает
// управление только после закрытия слушателя и завершения всех
// клиентских горутин.
func (s *Server) Run(ctx context.Context) error {
	const op = "server.Run"

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	s.log.Info("tcp server is listening", slog.String("address", s.addr))

	go func() {
		<-ctx.Done()
		if err := listener.Close(); err != nil {
			s.log.Error("failed to close listener", sl.Err(err))
		}
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			s.log.Error("failed to accept connection", sl.Err(err))
			continue
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handleConnection(ctx, conn)
		}()
	}

	s.wg.Wait()
	s.log.Info("tcp server stopped")
	return nil
}

// handleConnection обслуживает одно клиентское соединение до EOF,
// ошибки ввода-вывода или неизвестного тега сообщения.
func (s *Server) handleConnection(ctx context.Context, conn net.Conn) {
	connID := uuid.NewString()
	log := s.log.With(
		slog.String("conn_id", connID),
		slog.String("remote_addr", conn.RemoteAddr().String()),
	)
	log.Info("client connected")

	defer func() {
		if err := conn.Close(); err != nil {
			log.Error("failed to close connection", sl.Err(err))
		}
		log.Info("client disconnected")
	}()

	decoder := json.NewDecoder(conn)
	encoder := json.NewEncoder(conn)

	for {
		if s.readTimeout > 0 {
			if err := conn.SetReadDeadline(time.Now().Add(s.readTimeout)); err != nil {
				log.Error("failed to set read deadline", sl.Err(err))
				return
			}
		}

		var req protocol.Message
		if err := decoder.Decode(&req); err != nil {
			if !errors.Is(err, io.EOF) && ctx.Err() == nil {
				log.Error("failed to decode request", sl.Err(err))
			}
			return
		}

		reqLog := log.With(
			slog.String("request_id", uuid.NewString()),
			slog.String("type", string(req.Type)),
		)
		reqLog.Info("request received")

		resp, err := s.registry.Dispatch(ctx, req)
		if err != nil {
			// Незарегистрированный тег — ошибка программирования,
			// такое соединение закрывается без ответа.
			reqLog.Error("failed to dispatch request", sl.Err(err))
			return
		}

		if err := encoder.Encode(resp); err != nil {
			reqLog.Error("failed to encode response", sl.Err(err))
			return
		}
		reqLog.Info("response sent", slog.Bool("success", resp.Success))
	}
}
