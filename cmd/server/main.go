// Command server exposes the agreement analyzer as a JSON REST API.
//
// Endpoints:
//
//	POST /parse    body: {"sentence":"...", "engine":"csg"|"rule"}
//	GET  /health
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	grammar "github.com/sva-visualizer/grammar"
	"github.com/sva-visualizer/grammar/internal/config"
)

const serviceName = "sva-visualizer-backend"

// ---- JSON request/response types ----------------------------------------

type parseRequest struct {
	Sentence *string `json:"sentence"`
	Engine   string  `json:"engine"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, logger *zap.Logger, status int, msg string) {
	writeJSON(w, logger, status, errorResponse{Status: "error", Message: msg})
}

// ---- handlers -----------------------------------------------------------

func handleParse(an *grammar.Analyzer, defaultVariant grammar.Variant, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, logger, http.StatusMethodNotAllowed, "POST required")
			return
		}
		reqID := uuid.NewString()
		start := time.Now()

		var body parseRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, logger, http.StatusBadRequest, "body must be JSON with a 'sentence' field")
			return
		}
		if body.Sentence == nil {
			writeError(w, logger, http.StatusBadRequest, "missing 'sentence' field")
			return
		}
		variant := defaultVariant
		if body.Engine != "" {
			variant = grammar.Variant(body.Engine)
		}

		result, err := an.Analyze(*body.Sentence, variant)
		if err != nil {
			var ute *grammar.UnrecognizedTokenError
			if errors.Is(err, grammar.ErrEmptyInput) || errors.As(err, &ute) || badVariant(body.Engine) {
				writeError(w, logger, http.StatusBadRequest, err.Error())
				return
			}
			logger.Error("analysis failed",
				zap.String("request_id", reqID), zap.Error(err))
			writeError(w, logger, http.StatusInternalServerError, err.Error())
			return
		}

		logger.Info("sentence analyzed",
			zap.String("request_id", reqID),
			zap.String("engine", string(variant)),
			zap.String("status", string(result.Status)),
			zap.Duration("took", time.Since(start)))
		writeJSON(w, logger, http.StatusOK, result)
	}
}

// badVariant reports whether the request named an unknown engine.
func badVariant(engine string) bool {
	switch engine {
	case "", string(grammar.VariantCSG), string(grammar.VariantRule):
		return false
	}
	return true
}

func handleHealth(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, logger, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, logger, http.StatusOK, healthResponse{Status: "ok", Service: serviceName})
	}
}

// newHandler builds the route table with CORS applied.
func newHandler(an *grammar.Analyzer, cfg *config.Config, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/parse", handleParse(an, grammar.Variant(cfg.Engine.DefaultVariant), logger))
	mux.HandleFunc("/health", handleHealth(logger))

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(mux)
}

func newLogger(level string) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		zc.Level = zap.NewAtomicLevelAt(lvl)
	}
	return zc.Build()
}

// ---- main ---------------------------------------------------------------

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	logger, err := newLogger(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	an := grammar.New()
	handler := newHandler(an, cfg, logger)

	logger.Info("listening",
		zap.String("addr", cfg.Server.Addr),
		zap.String("default_engine", cfg.Engine.DefaultVariant))
	if err := http.ListenAndServe(cfg.Server.Addr, handler); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
