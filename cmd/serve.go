package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/hako/durafmt"
	"github.com/jsphweid/songsheet/config"
	"github.com/jsphweid/songsheet/logging"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

const requestIDHeader = "X-Request-Id"

var shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

var servePort int

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on, config value when 0")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the chord tools over HTTP",
	Long:  `Serves transpose, key, roman, solfege, chords, analyze and midi as JSON endpoints.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := cfg
		if servePort > 0 {
			c.Server.Port = servePort
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, c, logging.GetGlobalLogger())
	},
}

func serve(ctx context.Context, c config.Config, log logging.Logger) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", c.Server.Port),
		Handler:           NewRouter(c, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.Info("Listening", logging.Fields{"addr": srv.Addr})
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// NewRouter wires every endpoint behind request IDs, access logging, rate
// limiting and CORS.
func NewRouter(c config.Config, log logging.Logger) http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestID, accessLog(log))
	if c.Server.RateLimit > 0 {
		router.Use(rateLimit(rate.NewLimiter(rate.Limit(c.Server.RateLimit), c.Server.Burst)))
	}

	router.HandleFunc("/health", HandleHealth).Methods(http.MethodGet)
	router.HandleFunc("/transpose", HandleTranspose).Methods(http.MethodPost)
	router.HandleFunc("/key", HandleKey).Methods(http.MethodPost)
	router.HandleFunc("/roman", HandleRoman).Methods(http.MethodPost)
	router.HandleFunc("/solfege", HandleSolfege).Methods(http.MethodPost)
	router.HandleFunc("/chords", HandleChords).Methods(http.MethodPost)
	router.HandleFunc("/analyze", HandleAnalyze).Methods(http.MethodPost)
	router.HandleFunc("/midi", HandleMidi(c.Midi)).Methods(http.MethodPost)

	return cors.New(cors.Options{
		AllowedOrigins: c.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	}).Handler(router)
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)
		ctx := logging.NewContext(r.Context(), logging.Fields{"request_id": id})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func accessLog(log logging.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logging.FromContext(r.Context(), log).Info("Request", logging.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   rec.status,
				"duration": durafmt.Parse(time.Since(start)).LimitFirstN(2).Format(shortUnits),
			})
		})
	}
}

func rateLimit(limiter *rate.Limiter) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
