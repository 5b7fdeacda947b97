package dashboard

import (
	"context"
	"sync"

	"curalink-client/src/controller"
	"curalink-client/src/models"

	"github.com/sirupsen/logrus"
)

// ResearcherDashboard is the researcher shell: the trial form state
// layered over the trial controller. The form serves both creation and
// editing; an edit target being set is what turns a submit into an
// update.
type ResearcherDashboard struct {
	trials *controller.TrialController
	logger *logrus.Logger

	mu         sync.Mutex
	formOpen   bool
	editingID  string
	form       models.TrialFields
	searchTerm string
}

// NewResearcherDashboard creates a researcher shell over the given
// trial controller.
func NewResearcherDashboard(trials *controller.TrialController, log *logrus.Logger) *ResearcherDashboard {
	return &ResearcherDashboard{
		trials: trials,
		logger: log,
		form:   models.TrialFields{Status: models.DefaultTrialStatus},
	}
}

// OpenCreateForm opens the form with empty fields and the default status.
func (d *ResearcherDashboard) OpenCreateForm() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.form = models.TrialFields{Status: models.DefaultTrialStatus}
	d.editingID = ""
	d.formOpen = true
}

// OpenEditForm opens the form pre-populated from a held record.
func (d *ResearcherDashboard) OpenEditForm(id string) error {
	var target *models.TrialRecord
	for _, trial := range d.trials.Trials() {
		if trial.ID == id {
			t := trial
			target = &t
			break
		}
	}
	if target == nil {
		return models.NewValidationError("id", "trial is no longer in the list")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.form = models.TrialFields{
		Title:       target.Title,
		Description: target.Description,
		Condition:   target.Condition,
		Location:    target.Location,
		Status:      target.Status,
	}
	if d.form.Status == "" {
		d.form.Status = models.DefaultTrialStatus
	}
	d.editingID = id
	d.formOpen = true
	return nil
}

// SetForm replaces the form draft with the user's current input.
func (d *ResearcherDashboard) SetForm(fields models.TrialFields) {
	d.mu.Lock()
	d.form = fields
	d.mu.Unlock()
}

// Form returns the current form draft.
func (d *ResearcherDashboard) Form() models.TrialFields {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.form
}

// FormOpen reports whether the form is showing.
func (d *ResearcherDashboard) FormOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.formOpen
}

// Editing returns the edit target id, empty when creating.
func (d *ResearcherDashboard) Editing() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.editingID
}

// SubmitForm submits the draft: an update when an edit target is set,
// a create otherwise. On success the form closes and the edit target
// clears; on failure both stay so the user can fix their input.
func (d *ResearcherDashboard) SubmitForm(ctx context.Context) error {
	d.mu.Lock()
	editingID := d.editingID
	fields := d.form
	d.mu.Unlock()

	var err error
	if editingID != "" {
		err = d.trials.Update(ctx, editingID, fields)
	} else {
		err = d.trials.Create(ctx, fields)
	}
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.formOpen = false
	d.editingID = ""
	d.form = models.TrialFields{Status: models.DefaultTrialStatus}
	d.mu.Unlock()
	return nil
}

// CancelForm closes the form and discards the draft and edit target.
func (d *ResearcherDashboard) CancelForm() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.formOpen = false
	d.editingID = ""
	d.form = models.TrialFields{Status: models.DefaultTrialStatus}
}

// DeleteTrial removes a record once the caller has collected the
// user's confirmation. An unconfirmed delete does nothing.
func (d *ResearcherDashboard) DeleteTrial(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return models.ErrUnconfirmedDelete
	}
	return d.trials.Delete(ctx, id)
}

// SetSearchTerm stores the search box contents.
func (d *ResearcherDashboard) SetSearchTerm(term string) {
	d.mu.Lock()
	d.searchTerm = term
	d.mu.Unlock()
}

// SearchTerm returns the current search box contents.
func (d *ResearcherDashboard) SearchTerm() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.searchTerm
}

// VisibleTrials returns the collection filtered by the search term.
func (d *ResearcherDashboard) VisibleTrials() []models.TrialRecord {
	return d.trials.Search(d.SearchTerm())
}

// Stats returns the status breakdown for the stats cards.
func (d *ResearcherDashboard) Stats() controller.TrialStats {
	return d.trials.StatusCounts()
}
