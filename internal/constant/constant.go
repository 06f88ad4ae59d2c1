package constant

// Interview room phases.
const (
	PhaseUnopened = "unopened"
	PhaseOpen     = "open"
	PhaseClosed   = "closed"
)

// Room participant roles.
const (
	RoleInterviewer = "interviewer"
	RoleInterviewee = "interviewee"
)

// Room channel event types. These are the only two wire shapes the sync
// protocol requires.
const (
	EventNavigate = "navigate"
	EventClosed   = "closed"
)

// Well-known navigation keys. Problem sections use "problem-<n>".
const (
	NavKeyOverview = "overview"
	NavKeyResume   = "resume"
	NavKeySubmit   = "submit"
)

// Resume store keys (per client id).
const (
	ResumeRoomNavigation        = "lastRoomNavigation"
	ResumeDeliberationSelection = "lastDeliberationSelection"
)

// Domain event types published to the durable event bus.
const (
	EventTypeInterviewClosed       = "INTERVIEW_CLOSED"
	EventTypeDeliberationFinalized = "DELIBERATION_FINALIZED"
	EventTypeApplicantNotified     = "APPLICANT_NOTIFIED"
)

// Watermill in-process topic carrying finalization reports to the result
// notification consumer.
const FinalizationReportTopic = "deliberation.finalization.report"

// Redis key for the exclusive finalize marker.
const FinalizeLockKey = "deliberation:finalize:lock"

// Bounded retry count for version-checked whole-row updates.
const CommitRetryLimit = 3
