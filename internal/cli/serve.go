package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/boxkit/boxkit/pkg/errors"
	"github.com/boxkit/boxkit/pkg/observability"
	"github.com/boxkit/boxkit/pkg/pipeline"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr  string
	input string
}

// newServeCmd creates the serve command, which exposes the chart over HTTP
// for ad-hoc inspection. The dataset file is re-read on every request, so
// edits show up on refresh.
func newServeCmd() *cobra.Command {
	opts := serveOpts{}

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve box plot charts over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.input = args[0]
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")

	return cmd
}

// Endpoints:
//
//	GET /chart.svg     rendered SVG chart
//	GET /chart.png     rendered PNG chart (requires librsvg)
//	GET /summary.json  five-number summaries as JSON
//
// Query parameters style, width, height and whisker_k override the defaults
// per request.
func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	s := &server{input: opts.input, logger: logger}

	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Get("/chart.svg", s.handleChart(pipeline.FormatSVG, "image/svg+xml"))
	r.Get("/chart.png", s.handleChart(pipeline.FormatPNG, "image/png"))
	r.Get("/summary.json", s.handleSummary)

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Serving %s on %s", opts.input, opts.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

type server struct {
	input  string
	logger *log.Logger
}

// requestID tags every request with a UUID for log correlation and echoes
// it back in the X-Request-ID header.
func (s *server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		s.logger.Debug("request", "id", id, "method", r.Method, "path", r.URL.Path)

		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

// statusRecorder captures the response status for the observability hooks.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestOptions builds pipeline options from the query string.
func (s *server) requestOptions(r *http.Request, format string) pipeline.Options {
	opts := pipeline.Options{
		Input:   s.input,
		Formats: []string{format},
		Style:   r.URL.Query().Get("style"),
		Logger:  s.logger,
	}
	if v, err := strconv.ParseFloat(r.URL.Query().Get("width"), 64); err == nil {
		opts.Width = v
	}
	if v, err := strconv.ParseFloat(r.URL.Query().Get("height"), 64); err == nil {
		opts.Height = v
	}
	if v, err := strconv.ParseFloat(r.URL.Query().Get("whisker_k"), 64); err == nil {
		opts.WhiskerK = v
	}
	return opts
}

func (s *server) handleChart(format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := pipeline.NewRunner(s.logger).Execute(r.Context(), s.requestOptions(r, format))
		if err != nil {
			s.writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Write(result.Artifacts[format])
	}
}

func (s *server) handleSummary(w http.ResponseWriter, r *http.Request) {
	result, err := pipeline.NewRunner(s.logger).Execute(r.Context(), s.requestOptions(r, pipeline.FormatSVG))
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"title":     result.Dataset.Title,
		"units":     result.Dataset.Units,
		"summaries": result.Summaries,
	})
}

// writeError maps pipeline error codes onto HTTP statuses.
func (s *server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeNoData, errors.ErrCodeInvalidSeries, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidStyle, errors.ErrCodeInvalidConfig, errors.ErrCodeInvalidLayout:
		status = http.StatusBadRequest
	}

	s.logger.Error("request failed", "error", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": errors.UserMessage(err)})
}
