// Package assembly manages the lifecycle of condominium assemblies: drafting
// the meeting notice, scheduling, minuting and finalization, with the
// per-resolution vote bookkeeping in between.
package assembly

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/seogestao/condogest/internal/config"
	"github.com/seogestao/condogest/internal/domain/models"
	"github.com/seogestao/condogest/pkg/clients/gemini"
)

var (
	// ErrAssemblyNotFound indicates the referenced assembly is not in the ledger.
	ErrAssemblyNotFound = errors.New("assembly not found")
	// ErrNotPlanned indicates a lifecycle operation on a non-PLANNED assembly.
	ErrNotPlanned = errors.New("assembly is not in planned state")
	// ErrResolutionIndex indicates a patch referenced a resolution position
	// that does not exist in the working draft.
	ErrResolutionIndex = errors.New("resolution index out of range")
)

// Repository is the slice of the persistence gateway the ledger needs.
type Repository interface {
	ListAssemblies(ctx context.Context) ([]models.Assembly, error)
	CreateAssembly(ctx context.Context, a models.Assembly) (models.Assembly, error)
	FinalizeAssembly(ctx context.Context, id string, a models.Assembly) (models.Assembly, error)
	UpdateAssemblyStatus(ctx context.Context, id string, status models.AssemblyStatus) (models.Assembly, error)
}

// Ledger keeps the in-memory assembly collection in sync with the gateway.
// The most recent successful mutation's result is authoritative for its
// record; a failed gateway call leaves the collection untouched.
type Ledger struct {
	repo     Repository
	bridge   gemini.Client
	building config.BuildingConfig
	logger   *zap.Logger

	mu         sync.RWMutex
	assemblies []models.Assembly
	loaded     bool
}

// NewLedger wires a ledger instance.
func NewLedger(repo Repository, bridge gemini.Client, building config.BuildingConfig, logger *zap.Logger) *Ledger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ledger{repo: repo, bridge: bridge, building: building, logger: logger}
}

// SplitAgenda breaks newline-delimited agenda text into its non-blank lines.
func SplitAgenda(agenda string) []string {
	var items []string
	for _, line := range strings.Split(agenda, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// seedResolutions creates one zero-tally resolution per agenda item. REJECTED
// with a SIMPLE majority is the placeholder default until minuting.
func seedResolutions(agendaItems []string) []models.Resolution {
	resolutions := make([]models.Resolution, 0, len(agendaItems))
	for _, item := range agendaItems {
		resolutions = append(resolutions, models.Resolution{
			PointTitle:       item,
			Status:           models.ResolutionRejected,
			MajorityRequired: models.MajoritySimple,
		})
	}
	return resolutions
}

// NoticeInput is the structured data a meeting notice is drafted from.
type NoticeInput struct {
	Title    string
	Date     string
	Time     string
	Location string
	Type     models.AssemblyType
	Agenda   string
}

// DraftNotice composes the convocation text through the drafting bridge.
// Nothing is persisted; the caller holds the text until Schedule confirms it.
// A bridge failure yields the fallback text, never an error.
func (l *Ledger) DraftNotice(ctx context.Context, input NoticeInput) string {
	return l.bridge.MeetingNotice(ctx, gemini.NoticeContext{
		BuildingName: l.building.Name,
		Title:        input.Title,
		Date:         input.Date,
		Time:         input.Time,
		Location:     input.Location,
		AgendaItems:  SplitAgenda(input.Agenda),
	})
}

// ScheduleInput confirms a drafted assembly for persistence.
type ScheduleInput struct {
	NoticeInput
	NoticeText string
}

// Schedule persists a PLANNED assembly seeded with one resolution per agenda
// line and prepends it to the in-memory collection.
func (l *Ledger) Schedule(ctx context.Context, input ScheduleInput) (models.Assembly, error) {
	a := models.Assembly{
		Title:       input.Title,
		Date:        input.Date,
		Time:        input.Time,
		Location:    input.Location,
		Type:        input.Type,
		Status:      models.AssemblyPlanned,
		NoticeText:  input.NoticeText,
		Resolutions: seedResolutions(SplitAgenda(input.Agenda)),
	}

	created, err := l.repo.CreateAssembly(ctx, a)
	if err != nil {
		return models.Assembly{}, fmt.Errorf("schedule assembly: %w", err)
	}

	l.mu.Lock()
	l.assemblies = append([]models.Assembly{created}, l.assemblies...)
	l.mu.Unlock()

	l.logger.Info("assembly scheduled",
		zap.String("id", created.ID),
		zap.String("date", created.Date),
		zap.Int("resolutions", len(created.Resolutions)))
	return created, nil
}

// Assemblies returns a snapshot of the collection, loading it from the
// gateway on first use.
func (l *Ledger) Assemblies(ctx context.Context) ([]models.Assembly, error) {
	l.mu.RLock()
	if l.loaded {
		out := make([]models.Assembly, len(l.assemblies))
		copy(out, l.assemblies)
		l.mu.RUnlock()
		return out, nil
	}
	l.mu.RUnlock()

	listed, err := l.repo.ListAssemblies(ctx)
	if err != nil {
		return nil, fmt.Errorf("load assemblies: %w", err)
	}

	l.mu.Lock()
	l.assemblies = listed
	l.loaded = true
	out := make([]models.Assembly, len(l.assemblies))
	copy(out, l.assemblies)
	l.mu.Unlock()
	return out, nil
}

// MinutesDraft is the working state accumulated while minuting a meeting.
type MinutesDraft struct {
	AssemblyID    string              `json:"assemblyId"`
	EndTime       string              `json:"endTime"`
	PresidentName string              `json:"presidentName"`
	SecretaryName string              `json:"secretaryName"`
	Attendees     []models.Attendee   `json:"attendees"`
	Resolutions   []models.Resolution `json:"resolutions"`
}

// StartMinuting initializes a working draft for the given assembly. Seeded
// resolutions are reused when present; otherwise a single general point is
// created. The president defaults to the configured administrator.
func (l *Ledger) StartMinuting(a models.Assembly) MinutesDraft {
	resolutions := a.Resolutions
	if len(resolutions) == 0 {
		resolutions = []models.Resolution{{
			PointTitle:       "Ponto Único / Geral",
			Status:           models.ResolutionRejected,
			MajorityRequired: models.MajoritySimple,
		}}
	}

	return MinutesDraft{
		AssemblyID:    a.ID,
		PresidentName: l.building.AdminName,
		Attendees:     []models.Attendee{},
		Resolutions:   resolutions,
	}
}

// ToggleAttendee adds the fraction's owner to the attendance list, or removes
// the existing entry when the fraction is already present. At most one
// attendee exists per fraction code.
func ToggleAttendee(draft *MinutesDraft, fraction models.Fraction) {
	for i, a := range draft.Attendees {
		if a.FractionCode == fraction.Code {
			draft.Attendees = append(draft.Attendees[:i], draft.Attendees[i+1:]...)
			return
		}
	}

	draft.Attendees = append(draft.Attendees, models.Attendee{
		Name:         fraction.OwnerName,
		FractionCode: fraction.Code,
		Role:         models.RoleOwner,
		NIF:          fraction.NIF,
	})
}

// ResolutionPatch is a typed partial update for one resolution; nil fields
// are left unchanged.
type ResolutionPatch struct {
	PointTitle          *string                  `json:"pointTitle,omitempty"`
	ProposalDescription *string                  `json:"proposalDescription,omitempty"`
	DiscussionSummary   *string                  `json:"discussionSummary,omitempty"`
	VotesFor            *int                     `json:"votesFor,omitempty"`
	VotesAgainst        *int                     `json:"votesAgainst,omitempty"`
	Abstentions         *int                     `json:"abstentions,omitempty"`
	PermilageFor        *int                     `json:"permilageFor,omitempty"`
	Status              *models.ResolutionStatus `json:"status,omitempty"`
	MajorityRequired    *models.MajorityRule     `json:"majorityRequired,omitempty"`
}

// ApplyResolutionPatch merges the patch into the draft's resolution at index.
func ApplyResolutionPatch(draft *MinutesDraft, index int, patch ResolutionPatch) error {
	if index < 0 || index >= len(draft.Resolutions) {
		return fmt.Errorf("%w: %d of %d", ErrResolutionIndex, index, len(draft.Resolutions))
	}

	res := &draft.Resolutions[index]
	if patch.PointTitle != nil {
		res.PointTitle = *patch.PointTitle
	}
	if patch.ProposalDescription != nil {
		res.ProposalDescription = *patch.ProposalDescription
	}
	if patch.DiscussionSummary != nil {
		res.DiscussionSummary = *patch.DiscussionSummary
	}
	if patch.VotesFor != nil {
		res.VotesFor = *patch.VotesFor
	}
	if patch.VotesAgainst != nil {
		res.VotesAgainst = *patch.VotesAgainst
	}
	if patch.Abstentions != nil {
		res.Abstentions = *patch.Abstentions
	}
	if patch.PermilageFor != nil {
		res.PermilageFor = *patch.PermilageFor
	}
	if patch.Status != nil {
		res.Status = *patch.Status
	}
	if patch.MajorityRequired != nil {
		res.MajorityRequired = *patch.MajorityRequired
	}
	return nil
}

// FinalizeMinutes merges the working draft into the assembly, drafts the
// minutes text through the bridge and persists the COMPLETED record in a
// single gateway update. On gateway failure the in-memory collection keeps
// the PLANNED record and the draft can be retried as-is.
func (l *Ledger) FinalizeMinutes(ctx context.Context, draft MinutesDraft) (models.Assembly, error) {
	current, err := l.find(ctx, draft.AssemblyID)
	if err != nil {
		return models.Assembly{}, err
	}
	if current.Status != models.AssemblyPlanned {
		return models.Assembly{}, fmt.Errorf("finalize %s: %w", draft.AssemblyID, ErrNotPlanned)
	}

	merged := current
	merged.EndTime = draft.EndTime
	merged.PresidentName = draft.PresidentName
	merged.SecretaryName = draft.SecretaryName
	merged.Attendees = draft.Attendees
	merged.Resolutions = draft.Resolutions
	merged.Status = models.AssemblyCompleted
	merged.MinutesText = l.bridge.Minutes(ctx, l.minutesContext(merged))

	updated, err := l.repo.FinalizeAssembly(ctx, merged.ID, merged)
	if err != nil {
		return models.Assembly{}, fmt.Errorf("finalize minutes: %w", err)
	}

	l.replace(updated)
	l.logger.Info("assembly minutes finalized", zap.String("id", updated.ID))
	return updated, nil
}

// Cancel moves a PLANNED assembly to the terminal CANCELLED state.
func (l *Ledger) Cancel(ctx context.Context, id string) (models.Assembly, error) {
	current, err := l.find(ctx, id)
	if err != nil {
		return models.Assembly{}, err
	}
	if current.Status != models.AssemblyPlanned {
		return models.Assembly{}, fmt.Errorf("cancel %s: %w", id, ErrNotPlanned)
	}

	updated, err := l.repo.UpdateAssemblyStatus(ctx, id, models.AssemblyCancelled)
	if err != nil {
		return models.Assembly{}, fmt.Errorf("cancel assembly: %w", err)
	}

	l.replace(updated)
	return updated, nil
}

// SuggestedOutcome computes the outcome the tallies imply under the required
// majority. It is advisory: the operator-declared status stands on record and
// the ledger never overrides it.
func SuggestedOutcome(res models.Resolution) models.ResolutionStatus {
	approved := false
	switch res.MajorityRequired {
	case models.MajoritySimple:
		approved = res.VotesFor > res.VotesAgainst
	case models.MajorityAbsolute:
		approved = res.PermilageFor > 500
	case models.MajorityQualified:
		approved = res.PermilageFor >= 667
	case models.MajorityUnanimous:
		approved = res.VotesFor > 0 && res.VotesAgainst == 0 && res.Abstentions == 0
	}

	if approved {
		return models.ResolutionApproved
	}
	return models.ResolutionRejected
}

func (l *Ledger) minutesContext(a models.Assembly) gemini.MinutesContext {
	attendees := make([]gemini.MinutesAttendee, 0, len(a.Attendees))
	for _, at := range a.Attendees {
		attendees = append(attendees, gemini.MinutesAttendee{
			Name:         at.Name,
			FractionCode: at.FractionCode,
			Role:         string(at.Role),
		})
	}

	resolutions := make([]gemini.MinutesResolution, 0, len(a.Resolutions))
	for _, r := range a.Resolutions {
		resolutions = append(resolutions, gemini.MinutesResolution{
			PointTitle:          r.PointTitle,
			ProposalDescription: r.ProposalDescription,
			DiscussionSummary:   r.DiscussionSummary,
			VotesFor:            r.VotesFor,
			VotesAgainst:        r.VotesAgainst,
			Abstentions:         r.Abstentions,
			PermilageFor:        r.PermilageFor,
			Approved:            r.Status == models.ResolutionApproved,
			MajorityRequired:    string(r.MajorityRequired),
		})
	}

	return gemini.MinutesContext{
		BuildingName:  l.building.Name,
		Date:          a.Date,
		Time:          a.Time,
		EndTime:       a.EndTime,
		Location:      a.Location,
		PresidentName: a.PresidentName,
		SecretaryName: a.SecretaryName,
		Attendees:     attendees,
		Resolutions:   resolutions,
	}
}

// Get returns one assembly from the collection by id.
func (l *Ledger) Get(ctx context.Context, id string) (models.Assembly, error) {
	return l.find(ctx, id)
}

func (l *Ledger) find(ctx context.Context, id string) (models.Assembly, error) {
	assemblies, err := l.Assemblies(ctx)
	if err != nil {
		return models.Assembly{}, err
	}
	for _, a := range assemblies {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Assembly{}, fmt.Errorf("%w: %s", ErrAssemblyNotFound, id)
}

func (l *Ledger) replace(updated models.Assembly) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, a := range l.assemblies {
		if a.ID == updated.ID {
			l.assemblies[i] = updated
			return
		}
	}
	l.assemblies = append([]models.Assembly{updated}, l.assemblies...)
}
