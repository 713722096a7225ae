package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jsphweid/modeviz/degree"
	"github.com/jsphweid/modeviz/mode"
	"github.com/jsphweid/modeviz/model"
	"github.com/jsphweid/modeviz/note"
	"github.com/jsphweid/modeviz/progression"
	"github.com/jsphweid/modeviz/visualizer"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type handlers struct {
	svc    *Service
	logger *zap.Logger
}

// NewRouter serves the bridge state and the theory endpoints. Anything else
// is a JSON 404.
func NewRouter(svc *Service, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &handlers{svc: svc, logger: logger}

	router := mux.NewRouter()
	router.HandleFunc("/state", h.handleState).Methods(http.MethodGet)
	router.HandleFunc("/modes", h.handleModes).Methods(http.MethodGet)
	router.HandleFunc("/view", h.handleView).Methods(http.MethodGet)
	router.HandleFunc("/progression", h.handleProgression).Methods(http.MethodGet)
	router.Methods(http.MethodOptions).HandlerFunc(handleOptions)
	router.NotFoundHandler = http.HandlerFunc(handleNotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(handleNotFound)

	c := cors.New(cors.Options{
		AllowedOrigins:     []string{"*"},
		AllowedMethods:     []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:     []string{"Content-Type"},
		OptionsPassthrough: true,
	})
	return c.Handler(router)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Not found")
}

func handleOptions(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) handleState(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.GetState(r.Context())
	if err != nil {
		h.logger.Error("could not load state", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Could not load state")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *handlers) handleModes(w http.ResponseWriter, r *http.Request) {
	res := make([]model.ModeResponse, 0)
	for _, m := range mode.All() {
		intervals := make([]int, len(m.Intervals))
		for i, v := range m.Intervals {
			intervals[i] = int(v)
		}
		res = append(res, model.ModeResponse{Name: m.Name, Intervals: intervals, Description: m.Description})
	}
	writeJSON(w, http.StatusOK, res)
}

// rootAndMode reads root and mode from the query, falling back to the
// bridge state for whichever is missing.
func (h *handlers) rootAndMode(r *http.Request) (model.Note, string, error) {
	q := r.URL.Query()
	rootText, modeName := q.Get("root"), q.Get("mode")
	if rootText == "" || modeName == "" {
		st, err := h.svc.GetState(r.Context())
		if err != nil {
			return model.Note{}, "", err
		}
		if rootText == "" {
			rootText = st.RootNote
		}
		if modeName == "" {
			modeName = st.Mode
		}
	}
	root, err := note.Parse(rootText)
	if err != nil {
		return model.Note{}, "", err
	}
	return root, modeName, nil
}

func (h *handlers) handleView(w http.ResponseWriter, r *http.Request) {
	root, modeName, err := h.rootAndMode(r)
	if err != nil {
		h.badRequest(w, err)
		return
	}

	q := r.URL.Query()
	chordType, ok := model.ParseChordType(q.Get("type"))
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid chord type '"+q.Get("type")+"'. Use triads or sevenths.")
		return
	}
	exts, err := degree.ParseAssignments(q.Get("ext"))
	if err != nil {
		h.badRequest(w, err)
		return
	}
	slashes, err := degree.ParseSlash(q.Get("slash"))
	if err != nil {
		h.badRequest(w, err)
		return
	}

	m, ok := mode.Resolve(modeName)
	if !ok {
		h.badRequest(w, visualizer.ErrUnknownMode)
		return
	}
	states := degree.New(mode.DegreeCount(m.Intervals))
	if err := states.Apply(exts, slashes); err != nil {
		h.badRequest(w, err)
		return
	}

	view, err := visualizer.Build(root, m.Name, states, visualizer.Options{ChordType: chordType})
	if err != nil {
		h.badRequest(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *handlers) handleProgression(w http.ResponseWriter, r *http.Request) {
	root, modeName, err := h.rootAndMode(r)
	if err != nil {
		h.badRequest(w, err)
		return
	}

	entries := progression.Default()
	if text := r.URL.Query().Get("entries"); text != "" {
		entries, err = progression.Parse(text)
		if err != nil {
			h.badRequest(w, err)
			return
		}
	}

	chords, err := progression.Voice(root, modeName, entries, nil)
	if err != nil {
		h.badRequest(w, err)
		return
	}
	writeJSON(w, http.StatusOK, chords)
}

func (h *handlers) badRequest(w http.ResponseWriter, err error) {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		writeError(w, http.StatusBadRequest, inputErr.Message)
		return
	}
	h.logger.Debug("bad request", zap.Error(err))
	writeError(w, http.StatusBadRequest, err.Error())
}

// ListenAndServe serves handler on addr until ctx is cancelled.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("state bridge listening", zap.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
