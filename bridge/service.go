package bridge

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jsphweid/modeviz/mode"
	"github.com/jsphweid/modeviz/model"
	"github.com/jsphweid/modeviz/note"
	"github.com/jsphweid/modeviz/state"
	"go.uber.org/zap"
)

var ErrInvalidMode = errors.New("invalid mode")

// InputError is a rejected key or mode. Its message is meant for the caller.
type InputError struct {
	Err     error
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// Service owns the shared key/mode state. Updates are serialised so a
// load-modify-save cycle never interleaves with another.
type Service struct {
	mu            sync.Mutex
	store         state.Store
	defaultOctave int
	logger        *zap.Logger
	Now           func() time.Time
}

func NewService(store state.Store, defaultOctave int, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:         store,
		defaultOctave: defaultOctave,
		logger:        logger,
		Now:           time.Now,
	}
}

func (s *Service) GetState(ctx context.Context) (model.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Load(ctx)
}

// SetKey accepts notes like "G", "g#2" or "Bb4" and stores the sharp
// spelling, e.g. "A#4".
func (s *Service) SetKey(ctx context.Context, key string) (model.State, error) {
	normalized, err := note.NormalizeKey(key, s.defaultOctave)
	if err != nil {
		return model.State{}, &InputError{
			Err:     err,
			Message: fmt.Sprintf("Invalid key '%s'. Use notes like C3, G#2, Bb4. Allowed octaves: %d-%d.", key, note.MinOctave, note.MaxOctave),
		}
	}
	return s.update(ctx, func(st *model.State) {
		st.RootNote = normalized
	})
}

// SetMode accepts a catalog name, case-insensitively, or its short form such
// as "aeolian".
func (s *Service) SetMode(ctx context.Context, modeName string) (model.State, error) {
	m, ok := mode.Resolve(modeName)
	if !ok {
		return model.State{}, &InputError{
			Err:     ErrInvalidMode,
			Message: fmt.Sprintf("Invalid mode '%s'. Allowed modes: %s.", modeName, strings.Join(mode.Names(), ", ")),
		}
	}
	return s.update(ctx, func(st *model.State) {
		st.Mode = m.Name
	})
}

func (s *Service) update(ctx context.Context, apply func(st *model.State)) (model.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.store.Load(ctx)
	if err != nil {
		return model.State{}, err
	}
	apply(&st)
	st.UpdatedAt = state.Timestamp(s.Now())
	if err := s.store.Save(ctx, st); err != nil {
		return model.State{}, err
	}
	s.logger.Info("state updated",
		zap.String("rootNote", st.RootNote),
		zap.String("mode", st.Mode),
	)
	return st, nil
}
