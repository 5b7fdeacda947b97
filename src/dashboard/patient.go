package dashboard

import (
	"context"
	"strings"
	"sync"

	"curalink-client/src/models"

	"github.com/sirupsen/logrus"
)

// Section names a patient dashboard tab.
type Section string

const (
	SectionProfile      Section = "profile"
	SectionOverview     Section = "dashboard"
	SectionTrials       Section = "trials"
	SectionExperts      Section = "experts"
	SectionPublications Section = "publications"
	SectionForums       Section = "forums"
	SectionFavorites    Section = "favorites"
)

// PatientSections returns the patient menu in display order.
func PatientSections() []Section {
	return []Section{
		SectionProfile,
		SectionOverview,
		SectionTrials,
		SectionExperts,
		SectionPublications,
		SectionForums,
		SectionFavorites,
	}
}

// Analyzer is the AI analysis collaborator.
type Analyzer interface {
	AnalyzeCondition(ctx context.Context, text string) (string, error)
}

// PatientDashboard holds the patient shell's state: the active
// section, the profile draft and its submitted flag, the last AI
// analysis, and the transient favorites. Favorites have no server-side
// counterpart and vanish on Reset.
type PatientDashboard struct {
	analyzer Analyzer
	logger   *logrus.Logger

	mu        sync.Mutex
	active    Section
	profile   models.PatientProfile
	submitted bool
	analysis  string
	analyzing bool
	favorites map[models.FavoriteKind][]string
}

// NewPatientDashboard creates a patient shell starting on the profile
// section with nothing submitted.
func NewPatientDashboard(analyzer Analyzer, log *logrus.Logger) *PatientDashboard {
	return &PatientDashboard{
		analyzer:  analyzer,
		logger:    log,
		active:    SectionProfile,
		favorites: map[models.FavoriteKind][]string{},
	}
}

// SelectSection navigates to a section. Navigation is unconditional;
// sections that depend on recommendations simply render a placeholder
// until the profile is submitted (see SectionReady).
func (d *PatientDashboard) SelectSection(sec Section) {
	switch sec {
	case SectionProfile, SectionOverview, SectionTrials, SectionExperts,
		SectionPublications, SectionForums, SectionFavorites:
	default:
		return
	}
	d.mu.Lock()
	d.active = sec
	d.mu.Unlock()
}

// ActiveSection returns the currently selected section.
func (d *PatientDashboard) ActiveSection() Section {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active
}

// SectionReady reports whether a section has real content to show.
// Recommendation-dependent sections stay in their placeholder state
// until the profile has been submitted.
func (d *PatientDashboard) SectionReady(sec Section) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch sec {
	case SectionTrials, SectionExperts, SectionPublications:
		return d.submitted
	default:
		return true
	}
}

// UpdateProfile replaces the profile draft with the form's current values.
func (d *PatientDashboard) UpdateProfile(p models.PatientProfile) {
	d.mu.Lock()
	d.profile = p
	d.mu.Unlock()
}

// SubmitProfile confirms the profile. A missing condition is a local
// validation failure: nothing is marked submitted and the active
// section does not change.
func (d *PatientDashboard) SubmitProfile(p models.PatientProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	d.mu.Lock()
	d.profile = p
	d.submitted = true
	d.active = SectionOverview
	d.mu.Unlock()
	d.logger.Info("Patient profile submitted")
	return nil
}

// Submitted reports whether the profile has been confirmed.
func (d *PatientDashboard) Submitted() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.submitted
}

// Profile returns the current profile draft.
func (d *PatientDashboard) Profile() models.PatientProfile {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.profile
}

// RequestAnalysis sends the draft condition to the AI collaborator.
// While in flight Analyzing reports true. On failure the previous
// analysis result is left untouched and the error is returned.
func (d *PatientDashboard) RequestAnalysis(ctx context.Context) (string, error) {
	d.mu.Lock()
	condition := strings.TrimSpace(d.profile.Condition)
	if condition == "" {
		d.mu.Unlock()
		return "", models.NewValidationError("condition", "please describe your condition before analysis")
	}
	if d.analyzing {
		d.mu.Unlock()
		return "", models.ErrMutationInFlight
	}
	d.analyzing = true
	d.mu.Unlock()

	result, err := d.analyzer.AnalyzeCondition(ctx, condition)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.analyzing = false
	if err != nil {
		d.logger.WithError(err).Warn("Condition analysis failed")
		return "", err
	}
	d.analysis = result
	return result, nil
}

// Analyzing reports whether an analysis request is in flight.
func (d *PatientDashboard) Analyzing() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.analyzing
}

// Analysis returns the last successful analysis result, empty if none.
func (d *PatientDashboard) Analysis() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.analysis
}

// AddFavorite records a label under one of the three favorites
// collections. Adding an item already present is a no-op.
func (d *PatientDashboard) AddFavorite(kind models.FavoriteKind, label string) error {
	if !kind.Valid() {
		return models.NewValidationError("kind", "unknown favorites collection")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, existing := range d.favorites[kind] {
		if existing == label {
			return nil
		}
	}
	d.favorites[kind] = append(d.favorites[kind], label)
	return nil
}

// RemoveFavorite drops a label; absent labels are a no-op.
func (d *PatientDashboard) RemoveFavorite(kind models.FavoriteKind, label string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	labels := d.favorites[kind]
	for i, existing := range labels {
		if existing == label {
			d.favorites[kind] = append(labels[:i], labels[i+1:]...)
			return
		}
	}
}

// Favorites returns a snapshot of all three collections.
func (d *PatientDashboard) Favorites() map[models.FavoriteKind][]string {
	d.mu.Lock()
	defer d.mu.Unlock()
	snapshot := make(map[models.FavoriteKind][]string, len(d.favorites))
	for kind, labels := range d.favorites {
		snapshot[kind] = append([]string(nil), labels...)
	}
	return snapshot
}

// Experts returns recommendations for the submitted condition, nil
// while the section is still in its placeholder state.
func (d *PatientDashboard) Experts() []Expert {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.submitted {
		return nil
	}
	return RecommendedExperts(d.profile.Condition, d.profile.City)
}

// Publications returns recommendations for the submitted condition,
// nil while the section is still in its placeholder state.
func (d *PatientDashboard) Publications() []Publication {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.submitted {
		return nil
	}
	return RecommendedPublications(d.profile.Condition)
}

// Reset returns the shell to its initial state. Called on logout so
// none of the previous user's state leaks into the next session.
func (d *PatientDashboard) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.active = SectionProfile
	d.profile = models.PatientProfile{}
	d.submitted = false
	d.analysis = ""
	d.analyzing = false
	d.favorites = map[models.FavoriteKind][]string{}
}
