package models

// AssemblyType distinguishes the yearly ordinary meeting from extraordinary ones.
type AssemblyType string

const (
	AssemblyOrdinary      AssemblyType = "ORDINARY"
	AssemblyExtraordinary AssemblyType = "EXTRAORDINARY"
)

// AssemblyStatus is the meeting lifecycle state. PLANNED is the initial state,
// COMPLETED and CANCELLED are terminal.
type AssemblyStatus string

const (
	AssemblyPlanned   AssemblyStatus = "PLANNED"
	AssemblyCompleted AssemblyStatus = "COMPLETED"
	AssemblyCancelled AssemblyStatus = "CANCELLED"
)

// ResolutionStatus is the operator-declared disposition of an agenda point.
type ResolutionStatus string

const (
	ResolutionApproved ResolutionStatus = "APPROVED"
	ResolutionRejected ResolutionStatus = "REJECTED"
)

// MajorityRule is the majority a resolution requires to pass.
type MajorityRule string

const (
	MajoritySimple    MajorityRule = "SIMPLE"
	MajorityAbsolute  MajorityRule = "ABSOLUTE"
	MajorityQualified MajorityRule = "QUALIFIED"
	MajorityUnanimous MajorityRule = "UNANIMOUS"
)

// AttendeeRole identifies an attendee's function during the meeting.
type AttendeeRole string

const (
	RolePresident AttendeeRole = "PRESIDENT"
	RoleSecretary AttendeeRole = "SECRETARY"
	RoleOwner     AttendeeRole = "OWNER"
	RoleProxy     AttendeeRole = "PROXY"
)

// Resolution is one voted agenda item with its tally and declared outcome.
// Status is entered by the minute-taker and is not derived from the tallies.
type Resolution struct {
	PointTitle          string           `bson:"point_title" json:"pointTitle"`
	ProposalDescription string           `bson:"proposal_description" json:"proposalDescription"`
	DiscussionSummary   string           `bson:"discussion_summary" json:"discussionSummary"`
	VotesFor            int              `bson:"votes_for" json:"votesFor"`
	VotesAgainst        int              `bson:"votes_against" json:"votesAgainst"`
	Abstentions         int              `bson:"abstentions" json:"abstentions"`
	PermilageFor        int              `bson:"permilage_for" json:"permilageFor"`
	Status              ResolutionStatus `bson:"status" json:"status"`
	MajorityRequired    MajorityRule     `bson:"majority_required" json:"majorityRequired"`
}

// Attendee is one fraction's representative at an assembly. At most one
// attendee exists per fraction code.
type Attendee struct {
	Name         string       `bson:"name" json:"name"`
	FractionCode string       `bson:"fraction_code" json:"fractionCode"`
	Role         AttendeeRole `bson:"role" json:"role"`
	NIF          string       `bson:"nif,omitempty" json:"nif,omitempty"`
}

// Assembly is a condominium meeting record. Resolutions and attendees are
// embedded in the assembly document, so a finalize is a single-row update.
// MinutesText, attendees, president and secretary are absent while PLANNED.
type Assembly struct {
	ID            string         `bson:"_id,omitempty" json:"id"`
	Title         string         `bson:"title" json:"title"`
	Date          string         `bson:"date" json:"date"`
	Time          string         `bson:"time,omitempty" json:"time,omitempty"`
	EndTime       string         `bson:"end_time,omitempty" json:"endTime,omitempty"`
	Location      string         `bson:"location,omitempty" json:"location,omitempty"`
	Type          AssemblyType   `bson:"type" json:"type"`
	Status        AssemblyStatus `bson:"status" json:"status"`
	NoticeText    string         `bson:"notice_text,omitempty" json:"noticeText,omitempty"`
	MinutesText   string         `bson:"minutes_text,omitempty" json:"minutesText,omitempty"`
	Resolutions   []Resolution   `bson:"resolutions,omitempty" json:"resolutions,omitempty"`
	Attendees     []Attendee     `bson:"attendees,omitempty" json:"attendees,omitempty"`
	PresidentName string         `bson:"president_name,omitempty" json:"presidentName,omitempty"`
	SecretaryName string         `bson:"secretary_name,omitempty" json:"secretaryName,omitempty"`
}
