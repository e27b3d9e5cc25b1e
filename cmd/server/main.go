package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"

	"github.com/baditaflorin/go_mixed_script_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_mixed_script_similarity/internal/warmup"
	"github.com/baditaflorin/go_mixed_script_similarity/pkg/editdistance"
	"github.com/baditaflorin/go_mixed_script_similarity/pkg/mixed"
	"github.com/baditaflorin/go_mixed_script_similarity/pkg/streaming"
	"github.com/baditaflorin/go_mixed_script_similarity/pkg/tokenalign"
)

// Default configuration
const (
	DefaultPort           = 8080
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultMaxRequestSize = 10 * 1024 * 1024 // 10MB
	DefaultConcurrency    = 0                // 0 means use GOMAXPROCS
)

// Scorers shared across requests
var (
	// Composite mixed-script scorer
	mixedScorer *mixed.Scorer

	// Token alignment scorer
	aligner *tokenalign.Aligner

	// Bulk pair scorer for batch requests
	pairScorer *streaming.PairScorer

	// Logger instance
	log l.Logger
)

// Request represents a similarity computation request
type Request struct {
	First     string  `json:"first"`
	Second    string  `json:"second"`
	Threshold float64 `json:"threshold,omitempty"`
}

// ScoreResponse represents a composite similarity response
type ScoreResponse struct {
	Score         float64                `json:"score"`
	Passed        bool                   `json:"passed"`
	ChineseScore  float64                `json:"chinese_score"`
	EnglishScore  float64                `json:"english_score"`
	ChineseWeight int                    `json:"chinese_weight"`
	EnglishWeight int                    `json:"english_weight"`
	Threshold     float64                `json:"threshold"`
	Details       map[string]interface{} `json:"details,omitempty"`
}

// DistanceResponse represents an edit distance response
type DistanceResponse struct {
	Distance   int     `json:"distance"`
	Similarity float64 `json:"similarity"`
}

// AlignResponse represents a token alignment response
type AlignResponse struct {
	Score float64 `json:"score"`
}

// BatchResponse summarizes a batch scoring request
type BatchResponse struct {
	PairsScored    int    `json:"pairs_scored"`
	LinesSkipped   int    `json:"lines_skipped"`
	BytesProcessed int64  `json:"bytes_processed"`
	Results        string `json:"results"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

func main() {
	// Parse command-line flags
	port := flag.Int("port", DefaultPort, "HTTP server port")
	readTimeout := flag.Duration("read-timeout", DefaultReadTimeout, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", DefaultWriteTimeout, "HTTP write timeout")
	maxRequestSize := flag.Int("max-request-size", DefaultMaxRequestSize, "Maximum request size in bytes")
	concurrency := flag.Int("concurrency", DefaultConcurrency, "Maximum number of concurrent requests (0 = GOMAXPROCS)")
	warmUp := flag.Bool("warm-up", true, "Perform system warm-up on startup")
	threshold := flag.Float64("threshold", 0.7, "Default pass/fail threshold")
	logFile := flag.String("log-file", "", "Log file path (empty = stdout)")
	flag.Parse()

	// Set up logger
	var err error
	log, err = createLogger(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting mixed-script similarity HTTP server",
		"port", *port,
		"read_timeout", *readTimeout,
		"write_timeout", *writeTimeout,
		"max_request_size", *maxRequestSize,
		"concurrency", *concurrency,
		"threshold", *threshold,
	)

	// Initialize scorers
	if err := initScorers(*threshold, *warmUp); err != nil {
		log.Error("Error initializing scorers", "error", err)
		os.Exit(1)
	}

	// Create HTTP server with fasthttp
	server := &fasthttp.Server{
		Handler:               requestHandler,
		ReadTimeout:           *readTimeout,
		WriteTimeout:          *writeTimeout,
		MaxRequestBodySize:    *maxRequestSize,
		Concurrency:           *concurrency,
		DisableKeepalive:      false,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
	}

	// Set up graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		log.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			log.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	// Start server
	log.Info("Server listening", "address", fmt.Sprintf(":%d", *port))
	if err := server.ListenAndServe(fmt.Sprintf(":%d", *port)); err != nil {
		log.Error("Server error", "error", err)
	}

	<-idleConnsClosed
	log.Info("Server stopped")
}

// createLogger creates the process logger, writing to the given file or stdout.
func createLogger(logFile string) (l.Logger, error) {
	output := os.Stdout
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		output = f
	}
	return l.NewStandardFactory().CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  logFile != "",
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,
		MaxFileSize: 10 * 1024 * 1024,
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
}

// initScorers builds the shared scorers and optionally warms them up.
func initScorers(threshold float64, warmUp bool) error {
	var err error
	mixedScorer, err = mixed.New(
		mixed.WithThreshold(threshold),
		mixed.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("creating mixed scorer: %w", err)
	}

	aligner = tokenalign.New()

	pairScorer, err = streaming.New(
		streaming.WithThreshold(threshold),
		streaming.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("creating pair scorer: %w", err)
	}

	if warmUp {
		manager := warmup.NewManager(logger.FromExisting(log), warmup.DefaultConfig())
		manager.RegisterCalculator(mixedScorer)
		manager.WarmUp(context.Background())
	}
	return nil
}

// requestHandler routes incoming requests.
func requestHandler(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	path := string(ctx.Path())

	switch path {
	case "/health":
		handleHealth(ctx)
	case "/v1/score":
		handleScore(ctx)
	case "/v1/editdistance":
		handleEditDistance(ctx)
	case "/v1/tokenalign":
		handleTokenAlign(ctx)
	case "/v1/score/batch":
		handleBatch(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found")
	}

	log.Debug("Handled request",
		"path", path,
		"status", ctx.Response.StatusCode(),
		"duration", time.Since(start),
	)
}

func handleHealth(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType("application/json")
	ctx.SetBodyString(`{"status":"ok"}`)
}

func handleScore(ctx *fasthttp.RequestCtx) {
	req, ok := parseRequest(ctx)
	if !ok {
		return
	}

	scorer := mixedScorer
	if req.Threshold > 0 {
		custom, err := mixed.New(
			mixed.WithThreshold(req.Threshold),
			mixed.WithLogger(log),
		)
		if err != nil {
			writeError(ctx, fasthttp.StatusBadRequest, err.Error())
			return
		}
		scorer = custom
	}

	result := scorer.Compute(ctx, req.First, req.Second)
	writeJSON(ctx, ScoreResponse{
		Score:         result.Score,
		Passed:        result.Passed,
		ChineseScore:  result.ChineseScore,
		EnglishScore:  result.EnglishScore,
		ChineseWeight: result.ChineseWeight,
		EnglishWeight: result.EnglishWeight,
		Threshold:     result.Threshold,
		Details:       result.Details,
	})
}

func handleEditDistance(ctx *fasthttp.RequestCtx) {
	req, ok := parseRequest(ctx)
	if !ok {
		return
	}
	writeJSON(ctx, DistanceResponse{
		Distance:   editdistance.Distance(req.First, req.Second),
		Similarity: editdistance.Similarity(req.First, req.Second),
	})
}

func handleTokenAlign(ctx *fasthttp.RequestCtx) {
	req, ok := parseRequest(ctx)
	if !ok {
		return
	}
	writeJSON(ctx, AlignResponse{
		Score: aligner.Score(req.First, req.Second),
	})
}

// handleBatch scores a request body of candidate<TAB>reference lines.
func handleBatch(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "POST required")
		return
	}

	var out bytes.Buffer
	summary, err := pairScorer.ScorePairs(ctx, bytes.NewReader(ctx.PostBody()), &out)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(ctx, BatchResponse{
		PairsScored:    summary.PairsScored,
		LinesSkipped:   summary.LinesSkipped,
		BytesProcessed: summary.BytesProcessed,
		Results:        out.String(),
	})
}

func parseRequest(ctx *fasthttp.RequestCtx) (Request, bool) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "POST required")
		return Request{}, false
	}
	var req Request
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return Request{}, false
	}
	return req, true
}

func writeJSON(ctx *fasthttp.RequestCtx, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, msg string) {
	body, _ := json.Marshal(ErrorResponse{Error: msg})
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}
