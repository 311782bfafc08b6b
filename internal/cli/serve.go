package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartkit/pkg/buildinfo"
	"github.com/matzehuels/chartkit/pkg/cache"
	errs "github.com/matzehuels/chartkit/pkg/errors"
	"github.com/matzehuels/chartkit/pkg/observability"
	"github.com/matzehuels/chartkit/pkg/pipeline"
	"github.com/matzehuels/chartkit/pkg/spec"
)

const (
	defaultAddr     = "localhost:8080"
	shutdownTimeout = 5 * time.Second
	requestTimeout  = 30 * time.Second
)

// serveOpts holds the flags of the serve command.
type serveOpts struct {
	addr          string
	redisAddr     string
	redisPassword string
	redisDB       int
	noCache       bool
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: defaultAddr}

	cmd := &cobra.Command{
		Use:   "serve <document>",
		Short: "Serve the charts of a document over HTTP",
		Long: `Serve the charts of a document over HTTP.

Endpoints:
  GET /healthz                  build information
  GET /charts                   chart names, types and titles
  GET /charts/{name}.svg        SVG rendering
  GET /charts/{name}.json       JSON scene

The hover and select query parameters take a ref ("point" or
"series:point") or "none" and act as controlled props:
  /charts/revenue.svg?select=0:2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "share the render cache through Redis at this address")
	cmd.Flags().StringVar(&opts.redisPassword, "redis-password", "", "Redis password")
	cmd.Flags().IntVar(&opts.redisDB, "redis-db", 0, "Redis database")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, path string, opts serveOpts) error {
	prog := newProgress(c.Logger)
	doc, err := pipeline.NewRunner(nil, nil, c.Logger).Load(ctx, path)
	if err != nil {
		return err
	}

	runner, backend, err := c.newServeRunner(ctx, doc, opts)
	if err != nil {
		return err
	}
	defer runner.Close()

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           newChartServer(doc, runner, c.Logger).routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	prog.done(fmt.Sprintf("Loaded %d charts", len(doc.Charts)))
	printSuccess("Serving %s", path)
	printKeyValue("address", StyleLink.Render("http://"+opts.addr+"/charts"))
	printKeyValue("charts", strings.Join(doc.Names(), ", "))
	printKeyValue("cache", backend)

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// newServeRunner picks the cache backend: Redis when configured and
// reachable, the file cache otherwise. Redis keys are scoped by the document hash so servers
// with different documents can share one instance.
func (c *CLI) newServeRunner(ctx context.Context, doc *spec.Document, opts serveOpts) (*pipeline.Runner, string, error) {
	if opts.noCache {
		return pipeline.NewRunner(nil, nil, c.Logger), "off", nil
	}
	if opts.redisAddr == "" {
		runner, err := c.newRunner(false)
		return runner, "file", err
	}

	rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
		Addr:     opts.redisAddr,
		Password: opts.redisPassword,
		DB:       opts.redisDB,
		Prefix:   appName + ":",
	})
	if err != nil {
		printWarning("Redis unavailable, using the file cache: %s", errs.UserMessage(err))
		runner, err := c.newRunner(false)
		return runner, "file", err
	}
	docHash, err := cache.HashJSON(doc)
	if err != nil {
		rc.Close()
		return nil, "", err
	}
	keyer := cache.NewScopedKeyer(nil, "doc:"+docHash[:12]+":")
	return pipeline.NewRunner(rc, keyer, c.Logger), "redis " + opts.redisAddr, nil
}

// =============================================================================
// Chart Server
// =============================================================================

// chartServer serves the charts of one document. Every request builds its
// own renderer, so requests share nothing but the cache.
type chartServer struct {
	doc    *spec.Document
	runner *pipeline.Runner
	logger *log.Logger
}

func newChartServer(doc *spec.Document, runner *pipeline.Runner, logger *log.Logger) *chartServer {
	return &chartServer{doc: doc, runner: runner, logger: logger}
}

func (s *chartServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(httpHooks)

	r.Get("/healthz", s.handleHealth)
	r.Get("/charts", s.handleList)
	r.Get("/charts/{file}", s.handleChart)
	return r
}

// httpHooks reports requests and responses to the observability hooks.
func httpHooks(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, time.Since(start))
	})
}

type chartInfo struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Title string `json:"title,omitempty"`
	SVG   string `json:"svg"`
	JSON  string `json:"json"`
}

func (s *chartServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"charts": len(s.doc.Charts),
		"build":  buildinfo.Get(),
	})
}

func (s *chartServer) handleList(w http.ResponseWriter, r *http.Request) {
	charts := make([]chartInfo, len(s.doc.Charts))
	for i, c := range s.doc.Charts {
		charts[i] = chartInfo{
			Name:  c.Name,
			Type:  string(c.Type),
			Title: c.Title,
			SVG:   "/charts/" + c.Name + ".svg",
			JSON:  "/charts/" + c.Name + ".json",
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"charts": charts})
}

func (s *chartServer) handleChart(w http.ResponseWriter, r *http.Request) {
	name, format, err := splitChartFile(chi.URLParam(r, "file"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	c, err := s.doc.Find(name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	q := r.URL.Query()
	res, err := s.runner.Execute(r.Context(), c, pipeline.Options{
		Hovered:  q.Get("hover"),
		Selected: q.Get("select"),
		Formats:  []string{format},
		Refresh:  q.Has("refresh"),
		Logger:   s.logger,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	data := res.Artifacts[format]
	etag := `"` + cache.Hash(data)[:16] + `"`
	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", contentType(format))
	w.Header().Set("ETag", etag)
	w.Header().Set("X-Cache", cacheStatus(res.CacheInfo))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// splitChartFile splits "revenue.svg" into its chart name and format.
func splitChartFile(file string) (name, format string, err error) {
	i := strings.LastIndexByte(file, '.')
	if i <= 0 {
		return "", "", errs.New(errs.ErrCodeInvalidFormat, "missing format in %q (want NAME.svg or NAME.json)", file)
	}
	name, format = file[:i], strings.ToLower(file[i+1:])
	if err := pipeline.ValidateFormat(format); err != nil {
		return "", "", err
	}
	return name, format, nil
}

func contentType(format string) string {
	if format == pipeline.FormatSVG {
		return "image/svg+xml"
	}
	return "application/json"
}

func cacheStatus(info pipeline.CacheInfo) string {
	switch {
	case info.ArtifactHit:
		return "hit"
	case info.SceneHit:
		return "scene"
	default:
		return "miss"
	}
}

type errorResponse struct {
	Code    errs.Code `json:"code"`
	Message string    `json:"message"`
}

func (s *chartServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errs.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
	}
	code := errs.GetCode(err)
	if code == "" {
		code = errs.ErrCodeInternal
	}
	writeJSON(w, status, errorResponse{Code: code, Message: errs.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}
