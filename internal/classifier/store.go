package classifier

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/PronoFoot/internal/features"
)

// Artifacts is the process-wide read-only state loaded from disk.
type Artifacts struct {
	Classifier Classifier
	Schema     *features.Schema
}

// Store loads the classifier and its feature schema exactly once and
// serves them read-only afterwards. A failed load is permanent.
type Store struct {
	modelPath  string
	schemaPath string
	maxWait    time.Duration
	loadModel  func(path string) (Classifier, error)
	logger     zerolog.Logger

	once      sync.Once
	artifacts Artifacts
	err       error
}

// StoreOptions holds options for creating a new Store
type StoreOptions struct {
	ModelPath  string
	SchemaPath string
	// MaxWait bounds the time spent retrying unreadable files. Zero means one attempt.
	MaxWait time.Duration
	// LoadModel overrides the artifact decoder. Defaults to LoadLogisticModel.
	LoadModel func(path string) (Classifier, error)
}

// NewStore creates a store; nothing is read until Warm or Get is called.
func NewStore(opts StoreOptions) *Store {
	if opts.LoadModel == nil {
		opts.LoadModel = func(path string) (Classifier, error) {
			return LoadLogisticModel(path)
		}
	}
	return &Store{
		modelPath:  opts.ModelPath,
		schemaPath: opts.SchemaPath,
		maxWait:    opts.MaxWait,
		loadModel:  opts.LoadModel,
		logger:     log.With().Str("component", "artifact_store").Logger(),
	}
}

// Warm loads the artifacts before the service starts accepting requests.
func (s *Store) Warm(ctx context.Context) error {
	_, err := s.Get(ctx)
	return err
}

// Get returns the loaded artifacts. Concurrent first callers share one load.
func (s *Store) Get(ctx context.Context) (Artifacts, error) {
	s.once.Do(func() {
		s.artifacts, s.err = s.load(ctx)
		if s.err != nil {
			s.logger.Error().Err(s.err).
				Str("model_path", s.modelPath).
				Str("schema_path", s.schemaPath).
				Msg("Classifier unavailable, running in degraded mode")
			return
		}
		s.logger.Info().
			Str("model_path", s.modelPath).
			Int("features", s.artifacts.Schema.Len()).
			Strs("classes", s.artifacts.Classifier.Classes()).
			Msg("Classifier loaded")
	})
	return s.artifacts, s.err
}

func (s *Store) load(ctx context.Context) (Artifacts, error) {
	var a Artifacts

	err := s.retry(ctx, func() error {
		c, err := s.loadModel(s.modelPath)
		if err != nil {
			return classify(fmt.Errorf("loading model %s: %w", s.modelPath, err))
		}
		a.Classifier = c
		return nil
	})
	if err != nil {
		return Artifacts{}, errors.Join(ErrUnavailable, err)
	}

	err = s.retry(ctx, func() error {
		schema, err := features.LoadSchema(s.schemaPath)
		if err != nil {
			return classify(fmt.Errorf("loading feature columns %s: %w", s.schemaPath, err))
		}
		a.Schema = schema
		return nil
	})
	if err != nil {
		return Artifacts{}, errors.Join(ErrUnavailable, features.ErrSchemaMissing, err)
	}

	if w, ok := a.Classifier.(interface{ Width() int }); ok && w.Width() != a.Schema.Len() {
		return Artifacts{}, errors.Join(ErrUnavailable, fmt.Errorf(
			"model expects %d features, schema has %d columns", w.Width(), a.Schema.Len()))
	}

	if n, ok := a.Classifier.(interface{ FeatureNames() []string }); ok {
		if err := sameColumns(n.FeatureNames(), a.Schema.Columns()); err != nil {
			return Artifacts{}, errors.Join(ErrUnavailable, err)
		}
	}

	return a, nil
}

// sameColumns checks the training columns recorded in the model against the
// schema file. A model without recorded names is trusted.
func sameColumns(trained, schema []string) error {
	if trained == nil {
		return nil
	}
	if len(trained) != len(schema) {
		return fmt.Errorf("model was trained on %d columns, schema has %d", len(trained), len(schema))
	}
	for i := range trained {
		if trained[i] != schema[i] {
			return fmt.Errorf("feature column %d is %q in the model but %q in the schema", i, trained[i], schema[i])
		}
	}
	return nil
}

func (s *Store) retry(ctx context.Context, operation func() error) error {
	var b backoff.BackOff = &backoff.StopBackOff{}
	if s.maxWait > 0 {
		exp := backoff.NewExponentialBackOff()
		exp.InitialInterval = 200 * time.Millisecond
		exp.MaxElapsedTime = s.maxWait
		b = exp
	}

	notify := func(err error, next time.Duration) {
		s.logger.Warn().Err(err).Dur("retry_in", next).Msg("Artifact not readable yet")
	}
	return backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notify)
}

// classify keeps filesystem errors retryable (the artifact volume may be
// mounted after the process starts) and makes decode errors permanent.
func classify(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return err
	}
	return backoff.Permanent(err)
}

// Status reports "loaded" or "unavailable".
func (s *Store) Status(ctx context.Context) string {
	if _, err := s.Get(ctx); err != nil {
		return "unavailable"
	}
	return "loaded"
}
