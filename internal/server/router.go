package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mediakiosk/vlcd/internal/config"
	"github.com/mediakiosk/vlcd/internal/library"
	"github.com/mediakiosk/vlcd/internal/player"
)

// Router exposes the player manager over HTTP.
// Endpoints (under basePath):
//
//	GET  /health          liveness + API version
//	GET  /videos          ?directory=... list playable files
//	GET  /player/status   status snapshot
//	POST /player/play     body: {video_path, loop, fullscreen}
//	POST /player/stop
//	POST /player/restart
//
// basePath may be empty or start with '/'; no trailing slash.
type Router struct {
	mgr      *player.Manager
	basePath string
	apiKey   string
	origins  []string
}

// Options tunes the HTTP surface; zero value means no API key and
// wildcard CORS.
type Options struct {
	APIKey      string
	CORSOrigins []string
}

// NewRouter constructs a Router with a configurable basePath.
func NewRouter(mgr *player.Manager, basePath string, opts Options) *Router {
	return &Router{
		mgr:      mgr,
		basePath: sanitizeBase(basePath),
		apiKey:   opts.APIKey,
		origins:  opts.CORSOrigins,
	}
}

// Handler returns an http.Handler powered by gin that can be mounted in any
// server/mux.
func (r *Router) Handler() http.Handler {
	g := gin.New()
	g.Use(gin.Recovery())
	g.Use(corsMiddleware(r.origins))

	group := g.Group(r.basePath)
	group.GET("/health", r.handleHealth)
	group.GET("/videos", r.handleVideos)

	p := group.Group("/player")
	if r.apiKey != "" {
		p.Use(apiKeyMiddleware(r.apiKey))
	}
	p.GET("/status", r.handleStatus)
	p.POST("/play", r.handlePlay)
	p.POST("/stop", r.handleStop)
	p.POST("/restart", r.handleRestart)
	return g
}

// NewServer starts a standalone HTTP server on addr using this router. Close
// the returned server to shut it down.
func NewServer(addr, basePath string, mgr *player.Manager, opts Options) (*http.Server, error) {
	r := NewRouter(mgr, basePath, opts)
	server := &http.Server{
		Addr:              addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() { _ = server.ListenAndServe() }()
	return server, nil
}

// --- Handlers ---

type errorResp struct {
	Error string `json:"error"`
}

type healthResp struct {
	Status     string `json:"status"`
	APIVersion string `json:"api_version"`
}

// playRequest uses pointers so absent loop/fullscreen default to true, per
// the original request contract.
type playRequest struct {
	VideoPath  string `json:"video_path"`
	Loop       *bool  `json:"loop"`
	Fullscreen *bool  `json:"fullscreen"`
}

func (r *Router) handleHealth(c *gin.Context) {
	writeJSON(c, http.StatusOK, healthResp{Status: "healthy", APIVersion: config.APIVersion})
}

func (r *Router) handleStatus(c *gin.Context) {
	writeJSON(c, http.StatusOK, r.mgr.Snapshot())
}

func (r *Router) handlePlay(c *gin.Context) {
	var req playRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeJSON(c, http.StatusBadRequest, errorResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if req.VideoPath == "" {
		writeJSON(c, http.StatusBadRequest, errorResp{Error: "video_path required"})
		return
	}
	loop := req.Loop == nil || *req.Loop
	fullscreen := req.Fullscreen == nil || *req.Fullscreen

	st, err := r.mgr.Start(req.VideoPath, loop, fullscreen)
	if err != nil {
		if errors.Is(err, player.ErrVideoNotFound) {
			writeJSON(c, http.StatusNotFound, errorResp{Error: err.Error()})
			return
		}
		writeJSON(c, http.StatusInternalServerError, errorResp{Error: err.Error()})
		return
	}
	writeJSON(c, http.StatusOK, st)
}

func (r *Router) handleStop(c *gin.Context) {
	r.mgr.Stop()
	writeJSON(c, http.StatusOK, r.mgr.Snapshot())
}

func (r *Router) handleRestart(c *gin.Context) {
	st, err := r.mgr.Restart()
	if err != nil {
		switch {
		case errors.Is(err, player.ErrNothingToRestart):
			writeJSON(c, http.StatusBadRequest, errorResp{Error: err.Error()})
		case errors.Is(err, player.ErrVideoNotFound):
			writeJSON(c, http.StatusNotFound, errorResp{Error: err.Error()})
		default:
			writeJSON(c, http.StatusInternalServerError, errorResp{Error: err.Error()})
		}
		return
	}
	writeJSON(c, http.StatusOK, st)
}

func (r *Router) handleVideos(c *gin.Context) {
	dir := c.Query("directory")
	if dir == "" {
		writeJSON(c, http.StatusBadRequest, errorResp{Error: "directory query param required"})
		return
	}
	paths, err := library.ListVideos(dir)
	if err != nil {
		if errors.Is(err, library.ErrDirNotFound) {
			writeJSON(c, http.StatusNotFound, errorResp{Error: "directory not found: " + dir})
			return
		}
		writeJSON(c, http.StatusInternalServerError, errorResp{Error: err.Error()})
		return
	}
	writeJSON(c, http.StatusOK, paths)
}
