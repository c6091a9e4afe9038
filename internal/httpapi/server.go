// Package httpapi serves stored analysis snapshots over HTTP.
package httpapi

import (
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/marcusbuffett/uciengine/internal/analysisstore"
	"github.com/marcusbuffett/uciengine/internal/obslog"
)

type Server struct {
	store  *analysisstore.Store
	srv    *fasthttp.Server
	logger *zap.Logger
}

func New(store *analysisstore.Store) *Server {
	s := &Server{store: store, logger: obslog.L()}
	s.srv = &fasthttp.Server{
		Handler:      s.Handle,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

// Listen serves until Shutdown or a listener error.
func (s *Server) Listen(addr string) error {
	s.logger.Info("http api listening", zap.String("addr", addr))
	return s.srv.ListenAndServe(addr)
}

func (s *Server) Shutdown() error { return s.srv.Shutdown() }

// Handle routes one request. Exposed for tests.
func (s *Server) Handle(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	switch {
	case path == "/healthz":
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("ok")
	case strings.HasPrefix(path, "/analysis/"):
		s.handleAnalysis(ctx, strings.TrimPrefix(path, "/analysis/"))
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
	}
}

func (s *Server) handleAnalysis(ctx *fasthttp.RequestCtx, id string) {
	if !ctx.IsGet() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		return
	}
	id = strings.TrimSpace(id)
	if id == "" || strings.ContainsRune(id, '/') {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		return
	}

	raw, ok, err := s.store.LoadRaw(ctx, id)
	if err != nil {
		s.logger.Error("load analysis snapshot", zap.String("id", id), zap.Error(err))
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	if !ok {
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetBody(raw)
}
