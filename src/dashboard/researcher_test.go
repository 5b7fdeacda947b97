package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"curalink-client/src/controller"
	"curalink-client/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// researcherBackend is an in-memory stand-in for the trials API.
type researcherBackend struct {
	mu       sync.Mutex
	records  []models.TrialRecord
	nextID   int
	writeErr error
}

func (b *researcherBackend) ListTrials(ctx context.Context) ([]models.TrialRecord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.TrialRecord(nil), b.records...), nil
}

func (b *researcherBackend) CreateTrial(ctx context.Context, fields models.TrialFields) (models.TrialRecord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.writeErr != nil {
		return models.TrialRecord{}, b.writeErr
	}
	b.nextID++
	fields = fields.Normalized()
	record := models.TrialRecord{
		ID:          fmt.Sprintf("t%d", b.nextID),
		Title:       fields.Title,
		Description: fields.Description,
		Condition:   fields.Condition,
		Location:    fields.Location,
		Status:      fields.Status,
	}
	b.records = append(b.records, record)
	return record, nil
}

func (b *researcherBackend) UpdateTrial(ctx context.Context, id string, fields models.TrialFields) (models.TrialRecord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.writeErr != nil {
		return models.TrialRecord{}, b.writeErr
	}
	for i, record := range b.records {
		if record.ID == id {
			fields = fields.Normalized()
			b.records[i] = models.TrialRecord{
				ID:          id,
				Title:       fields.Title,
				Description: fields.Description,
				Condition:   fields.Condition,
				Location:    fields.Location,
				Status:      fields.Status,
			}
			return b.records[i], nil
		}
	}
	return models.TrialRecord{}, models.NewRemoteWriteError("update trial", 404, "trial not found")
}

func (b *researcherBackend) DeleteTrial(ctx context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, record := range b.records {
		if record.ID == id {
			b.records = append(b.records[:i], b.records[i+1:]...)
			return nil
		}
	}
	return models.NewRemoteWriteError("delete trial", 404, "trial not found")
}

func newResearcherShell(t *testing.T, backend *researcherBackend) *ResearcherDashboard {
	t.Helper()
	trials := controller.NewTrialController(backend, quietLogger())
	require.NoError(t, trials.Load(context.Background()))
	return NewResearcherDashboard(trials, quietLogger())
}

func TestOpenCreateFormStartsEmpty(t *testing.T) {
	d := newResearcherShell(t, &researcherBackend{})

	d.OpenCreateForm()
	assert.True(t, d.FormOpen())
	assert.Empty(t, d.Editing())
	assert.Equal(t, models.TrialFields{Status: models.StatusActive}, d.Form())
}

func TestOpenEditFormPrepopulates(t *testing.T) {
	backend := &researcherBackend{records: []models.TrialRecord{{
		ID:          "t1",
		Title:       "Glioma Study",
		Description: "desc",
		Condition:   "Glioma",
		Location:    "Berlin",
		Status:      models.StatusRecruiting,
	}}}
	d := newResearcherShell(t, backend)

	require.NoError(t, d.OpenEditForm("t1"))
	assert.True(t, d.FormOpen())
	assert.Equal(t, "t1", d.Editing())
	assert.Equal(t, models.TrialFields{
		Title:       "Glioma Study",
		Description: "desc",
		Condition:   "Glioma",
		Location:    "Berlin",
		Status:      models.StatusRecruiting,
	}, d.Form())
}

func TestOpenEditFormUnknownID(t *testing.T) {
	d := newResearcherShell(t, &researcherBackend{})

	err := d.OpenEditForm("missing")
	var validationErr *models.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.False(t, d.FormOpen())
}

func TestSubmitFormCreatesWhenNoEditTarget(t *testing.T) {
	backend := &researcherBackend{}
	d := newResearcherShell(t, backend)

	d.OpenCreateForm()
	d.SetForm(models.TrialFields{Title: "Trial X", Description: "desc"})
	require.NoError(t, d.SubmitForm(context.Background()))

	assert.False(t, d.FormOpen())
	assert.Empty(t, d.Editing())
	trials := d.VisibleTrials()
	require.Len(t, trials, 1)
	assert.Equal(t, "Trial X", trials[0].Title)
}

func TestSubmitFormUpdatesWhenEditing(t *testing.T) {
	backend := &researcherBackend{records: []models.TrialRecord{{
		ID: "t1", Title: "Old", Description: "desc", Status: models.StatusActive,
	}}}
	d := newResearcherShell(t, backend)

	require.NoError(t, d.OpenEditForm("t1"))
	form := d.Form()
	form.Title = "New"
	d.SetForm(form)
	require.NoError(t, d.SubmitForm(context.Background()))

	assert.False(t, d.FormOpen())
	assert.Empty(t, d.Editing())
	trials := d.VisibleTrials()
	require.Len(t, trials, 1)
	assert.Equal(t, "New", trials[0].Title)
	assert.Equal(t, "t1", trials[0].ID)
}

func TestSubmitFailureKeepsFormAndTarget(t *testing.T) {
	backend := &researcherBackend{records: []models.TrialRecord{{
		ID: "t1", Title: "Old", Description: "desc", Status: models.StatusActive,
	}}}
	d := newResearcherShell(t, backend)

	require.NoError(t, d.OpenEditForm("t1"))
	backend.mu.Lock()
	backend.writeErr = models.NewRemoteWriteError("update trial", 500, "backend exploded")
	backend.mu.Unlock()

	err := d.SubmitForm(context.Background())
	var writeErr *models.RemoteWriteError
	require.True(t, errors.As(err, &writeErr))
	assert.True(t, d.FormOpen())
	assert.Equal(t, "t1", d.Editing())
}

func TestCancelFormDiscardsDraft(t *testing.T) {
	backend := &researcherBackend{records: []models.TrialRecord{{
		ID: "t1", Title: "Old", Description: "desc", Status: models.StatusActive,
	}}}
	d := newResearcherShell(t, backend)

	require.NoError(t, d.OpenEditForm("t1"))
	d.CancelForm()
	assert.False(t, d.FormOpen())
	assert.Empty(t, d.Editing())
	assert.Equal(t, models.TrialFields{Status: models.StatusActive}, d.Form())
}

func TestUnconfirmedDeleteIsANoOp(t *testing.T) {
	backend := &researcherBackend{records: []models.TrialRecord{{
		ID: "t1", Title: "Kept", Description: "desc", Status: models.StatusActive,
	}}}
	d := newResearcherShell(t, backend)
	ctx := context.Background()

	err := d.DeleteTrial(ctx, "t1", false)
	assert.ErrorIs(t, err, models.ErrUnconfirmedDelete)
	assert.Len(t, d.VisibleTrials(), 1)

	require.NoError(t, d.DeleteTrial(ctx, "t1", true))
	assert.Empty(t, d.VisibleTrials())
}

func TestSearchTermFiltersVisibleTrials(t *testing.T) {
	backend := &researcherBackend{records: []models.TrialRecord{
		{ID: "t1", Title: "Glioma Study", Description: "d", Condition: "Glioma", Status: models.StatusActive},
		{ID: "t2", Title: "Diabetes Study", Description: "d", Condition: "Diabetes", Status: models.StatusRecruiting},
	}}
	d := newResearcherShell(t, backend)

	d.SetSearchTerm("glioma")
	trials := d.VisibleTrials()
	require.Len(t, trials, 1)
	assert.Equal(t, "t1", trials[0].ID)

	stats := d.Stats()
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.ByStatus[models.StatusActive])
	assert.Equal(t, 1, stats.ByStatus[models.StatusRecruiting])
}
