package taskdash

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"

	"github.com/colonyops/taskdash/internal/core/analytics"
	"github.com/colonyops/taskdash/internal/core/export"
	"github.com/colonyops/taskdash/internal/core/logging"
	"github.com/colonyops/taskdash/internal/core/task"
	"github.com/colonyops/taskdash/internal/core/validate"
	"github.com/colonyops/taskdash/pkg/iojson"
)

// TaskService wraps task.Store with record construction, validation,
// aggregation and export.
type TaskService struct {
	store    task.Store
	builder  *task.Builder
	log      zerolog.Logger
	filename string

	sinkMu sync.Mutex
	sink   io.Writer
}

// NewTaskService creates a new TaskService. filename is the CSV file name
// used by ExportFile; empty means export.DefaultFilename.
func NewTaskService(store task.Store, builder *task.Builder, filename string, log zerolog.Logger) *TaskService {
	if filename == "" {
		filename = export.DefaultFilename
	}
	return &TaskService{
		store:    store,
		builder:  builder,
		filename: filename,
		log:      log.With().Str("component", "task-service").Logger(),
	}
}

// SetSink registers a writer that receives every submitted record as a JSON
// line. Passing nil disables it.
func (s *TaskService) SetSink(w io.Writer) {
	s.sinkMu.Lock()
	defer s.sinkMu.Unlock()
	s.sink = w
}

// Submit builds a record from form input and appends it to the store.
func (s *TaskService) Submit(ctx context.Context, in task.Input) (task.Record, error) {
	rec, err := s.builder.Build(in)
	if err != nil {
		return task.Record{}, fmt.Errorf("build task: %w", err)
	}

	ctx = logging.WithTaskID(ctx, rec.ID)

	if err := s.store.Append(ctx, rec); err != nil {
		return task.Record{}, fmt.Errorf("store task: %w", err)
	}

	s.log.Info().Ctx(ctx).
		Str("priority", rec.Priority.String()).
		Float64("duration_hours", rec.DurationHours).
		Msg("task recorded")

	s.writeSink(rec)
	return rec, nil
}

func (s *TaskService) writeSink(rec task.Record) {
	s.sinkMu.Lock()
	defer s.sinkMu.Unlock()
	if s.sink == nil {
		return
	}
	if err := iojson.WriteLine(s.sink, rec); err != nil {
		s.log.Warn().Err(err).Str("task_id", rec.ID).Msg("failed to write task to sink")
	}
}

// Import appends pre-built records, such as JSON lines produced by
// `taskdash new`. Every record is validated before any is stored; on
// failure nothing is appended and the returned error is a
// criterio.FieldErrors keyed by records[i].field.
func (s *TaskService) Import(ctx context.Context, records []task.Record) error {
	var errs criterio.FieldErrorsBuilder

	seen := make(map[string]bool, len(records))
	for i, r := range records {
		prefix := fmt.Sprintf("records[%d]", i)

		if err := validate.Record(r); err != nil {
			var fieldErrs criterio.FieldErrors
			if errors.As(err, &fieldErrs) {
				for _, fe := range fieldErrs {
					errs = errs.Append(prefix+"."+fe.Field, fe.Err)
				}
			} else {
				errs = errs.Append(prefix, err)
			}
			continue
		}

		if seen[r.ID] {
			errs = errs.Append(prefix+".id", fmt.Errorf("%w: %q", task.ErrDuplicateID, r.ID))
			continue
		}
		seen[r.ID] = true

		if _, err := s.store.Get(ctx, r.ID); err == nil {
			errs = errs.Append(prefix+".id", fmt.Errorf("%w: %q", task.ErrDuplicateID, r.ID))
		}
	}

	if err := errs.ToError(); err != nil {
		return err
	}

	for _, r := range records {
		if err := s.store.Append(ctx, r); err != nil {
			return fmt.Errorf("import task %s: %w", r.ID, err)
		}
	}

	s.log.Debug().Int("count", len(records)).Msg("tasks imported")
	return nil
}

// List returns every record in submission order.
func (s *TaskService) List(ctx context.Context) ([]task.Record, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return records, nil
}

// Get returns a single record by ID.
func (s *TaskService) Get(ctx context.Context, id string) (task.Record, error) {
	return s.store.Get(ctx, id)
}

// Filter returns the records matching c.
func (s *TaskService) Filter(ctx context.Context, c task.Criteria) ([]task.Record, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return task.Filter(records, c), nil
}

// Summary aggregates the whole store.
func (s *TaskService) Summary(ctx context.Context) (analytics.Summary, error) {
	records, err := s.List(ctx)
	if err != nil {
		return analytics.Summary{}, err
	}
	return analytics.Compute(records), nil
}

// Export writes every record as CSV to w.
func (s *TaskService) Export(ctx context.Context, w io.Writer) error {
	records, err := s.List(ctx)
	if err != nil {
		return err
	}
	if err := export.WriteCSV(w, records); err != nil {
		return fmt.Errorf("export tasks: %w", err)
	}
	return nil
}

// ExportFile writes every record as CSV into dir, replacing any previous
// export, and returns the written path.
func (s *TaskService) ExportFile(ctx context.Context, dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, s.filename)

	if err := s.ExportTo(ctx, path); err != nil {
		return "", err
	}
	return path, nil
}

// ExportTo writes every record as CSV to path, replacing the file atomically.
func (s *TaskService) ExportTo(ctx context.Context, path string) error {
	records, err := s.List(ctx)
	if err != nil {
		return err
	}

	if err := export.WriteFile(path, records); err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("export failed")
		return fmt.Errorf("export tasks: %w", err)
	}

	s.log.Info().Str("path", path).Int("count", len(records)).Msg("tasks exported")
	return nil
}
