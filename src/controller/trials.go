package controller

import (
	"context"
	"strings"
	"sync"

	"curalink-client/src/models"

	"github.com/sirupsen/logrus"
)

// TrialsAPI is the backend surface the controller drives.
type TrialsAPI interface {
	ListTrials(ctx context.Context) ([]models.TrialRecord, error)
	CreateTrial(ctx context.Context, fields models.TrialFields) (models.TrialRecord, error)
	UpdateTrial(ctx context.Context, id string, fields models.TrialFields) (models.TrialRecord, error)
	DeleteTrial(ctx context.Context, id string) error
}

// TrialController owns the client's view of the trials collection.
// Consistency comes from refetching the whole collection after every
// mutation rather than patching locally; the collection therefore
// never holds a record the server has rejected or deleted.
type TrialController struct {
	api    TrialsAPI
	logger *logrus.Logger

	mu          sync.Mutex
	trials      []models.TrialRecord
	inflight    int
	loadSeq     uint64
	submitting  bool
	lastLoadErr error
}

// NewTrialController creates a controller over the given backend client.
func NewTrialController(api TrialsAPI, log *logrus.Logger) *TrialController {
	return &TrialController{
		api:    api,
		logger: log,
	}
}

// Load refetches the full collection and replaces the local copy
// atomically. Each load is tagged with a sequence number; a load that
// resolves after a newer one has started discards its result, so the
// rendered collection always comes from the latest load.
func (c *TrialController) Load(ctx context.Context) error {
	c.mu.Lock()
	c.inflight++
	c.loadSeq++
	seq := c.loadSeq
	c.mu.Unlock()

	trials, err := c.api.ListTrials(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--
	if seq != c.loadSeq {
		// Superseded by a newer load; drop this result.
		c.logger.WithField("seq", seq).Debug("Discarding stale trials load")
		return nil
	}
	if err != nil {
		c.lastLoadErr = err
		return err
	}
	c.lastLoadErr = nil
	c.trials = trials
	return nil
}

// Create validates the required fields, submits the new trial and
// resynchronizes by reloading the collection. On failure the local
// collection is left untouched.
func (c *TrialController) Create(ctx context.Context, fields models.TrialFields) error {
	if err := fields.Validate(); err != nil {
		return err
	}
	if err := c.beginSubmit(); err != nil {
		return err
	}
	defer c.endSubmit()

	if _, err := c.api.CreateTrial(ctx, fields); err != nil {
		return err
	}
	c.reload(ctx)
	return nil
}

// Update submits changed fields for an existing record. Whether the id
// exists is not pre-checked; the server is the source of truth.
func (c *TrialController) Update(ctx context.Context, id string, fields models.TrialFields) error {
	if err := fields.Validate(); err != nil {
		return err
	}
	if err := c.beginSubmit(); err != nil {
		return err
	}
	defer c.endSubmit()

	if _, err := c.api.UpdateTrial(ctx, id, fields); err != nil {
		return err
	}
	c.reload(ctx)
	return nil
}

// Delete removes a record. User confirmation is the caller's job.
func (c *TrialController) Delete(ctx context.Context, id string) error {
	if err := c.beginSubmit(); err != nil {
		return err
	}
	defer c.endSubmit()

	if err := c.api.DeleteTrial(ctx, id); err != nil {
		return err
	}
	c.reload(ctx)
	return nil
}

// Search filters the held collection by a case-insensitive substring
// match on title or condition. An empty term returns everything. Pure
// read, no network access.
func (c *TrialController) Search(term string) []models.TrialRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return append([]models.TrialRecord(nil), c.trials...)
	}

	var matched []models.TrialRecord
	for _, trial := range c.trials {
		if strings.Contains(strings.ToLower(trial.Title), term) ||
			strings.Contains(strings.ToLower(trial.Condition), term) {
			matched = append(matched, trial)
		}
	}
	return matched
}

// TrialStats summarizes the collection by recruitment status.
type TrialStats struct {
	ByStatus map[models.TrialStatus]int
	Total    int
}

// StatusCounts counts records per status. The total always equals the
// collection size.
func (c *TrialController) StatusCounts() TrialStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := TrialStats{ByStatus: make(map[models.TrialStatus]int)}
	for _, status := range models.KnownTrialStatuses() {
		stats.ByStatus[status] = 0
	}
	for _, trial := range c.trials {
		stats.ByStatus[trial.Status]++
		stats.Total++
	}
	return stats
}

// Trials returns a copy of the held collection.
func (c *TrialController) Trials() []models.TrialRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.TrialRecord(nil), c.trials...)
}

// Loading reports whether a load is in flight.
func (c *TrialController) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inflight > 0
}

// Submitting reports whether a mutation is in flight.
func (c *TrialController) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

// LastLoadError returns the most recent load failure, nil after any
// successful load. The shell shows it as a dismissible warning.
func (c *TrialController) LastLoadError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastLoadErr
}

func (c *TrialController) beginSubmit() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.submitting {
		return models.ErrMutationInFlight
	}
	c.submitting = true
	return nil
}

func (c *TrialController) endSubmit() {
	c.mu.Lock()
	c.submitting = false
	c.mu.Unlock()
}

// reload runs the post-mutation refetch. A failure here does not fail
// the mutation that already landed; it is recorded for the shell via
// LastLoadError.
func (c *TrialController) reload(ctx context.Context) {
	if err := c.Load(ctx); err != nil {
		c.logger.WithError(err).Warn("Failed to reload trials after mutation")
	}
}
