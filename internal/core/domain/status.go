package domain

// UserStatus classifies the session principal's relationship to a tenancy.
// It is derived, never stored independently of its tenant source: every
// transition re-runs DeriveStatus against a freshly fetched tenant, with the
// single exception of the optimistic lease-sign advance (see Session).
type UserStatus string

const (
	StatusGuest             UserStatus = "guest"
	StatusApplicantPending  UserStatus = "applicant_pending"
	StatusApplicantApproved UserStatus = "applicant_approved"
	StatusResident          UserStatus = "resident"
)

// View names the portal's client-visible screens. Views are plain session
// state, not URL routes.
type View string

const (
	ViewListings      View = "listings"
	ViewApplication   View = "application"
	ViewDashboard     View = "dashboard"
	ViewLeaseSigning  View = "lease_signing"
	ViewCheckStatus   View = "check_status"
	ViewStatusTracker View = "status_tracker"
)

// ResidentTab is a dashboard tab, reachable only when the derived status is
// resident.
type ResidentTab string

const (
	TabOverview    ResidentTab = "overview"
	TabPayments    ResidentTab = "payments"
	TabMaintenance ResidentTab = "maintenance"
	TabDocuments   ResidentTab = "documents"
)

// DeriveStatus computes the user status from a tenant record. Pure and total:
// every status/leaseStatus combination maps somewhere, nil included.
//
//	Active                     -> resident
//	Approved + lease Signed    -> resident
//	Approved otherwise         -> applicant_approved
//	Applicant                  -> applicant_pending
//	anything else / no tenant  -> guest
func DeriveStatus(t *Tenant) UserStatus {
	if t == nil {
		return StatusGuest
	}
	switch t.Status {
	case TenantActive:
		return StatusResident
	case TenantApproved:
		if t.LeaseStatus == LeaseSigned {
			return StatusResident
		}
		return StatusApplicantApproved
	case TenantApplicant:
		return StatusApplicantPending
	default:
		return StatusGuest
	}
}

// DashboardUnlocked reports whether the tabbed dashboard is reachable. All
// other statuses render the application timeline instead.
func DashboardUnlocked(status UserStatus) bool {
	return status == StatusResident
}

type StepState string

const (
	StepCompleted StepState = "completed"
	StepCurrent   StepState = "current"
	StepPending   StepState = "pending"
)

// TimelineStep is one node of the application-progress tracker.
type TimelineStep struct {
	ID    string    `json:"id"`
	Label string    `json:"label"`
	State StepState `json:"state"`
}

// TimelineSteps builds the four-step tracker shown to non-residents. The
// lease status decides whether the final step reads as done for approved
// applicants.
func TimelineSteps(status UserStatus, lease LeaseStatus) []TimelineStep {
	steps := []TimelineStep{
		{ID: "applicant_pending", Label: "Application Submitted"},
		{ID: "reviewing", Label: "Under Review"},
		{ID: "applicant_approved", Label: "Approved"},
		{ID: "resident", Label: "Lease Signed"},
	}
	for i := range steps {
		steps[i].State = stepState(steps[i].ID, status, lease)
	}
	return steps
}

func stepState(stepID string, status UserStatus, lease LeaseStatus) StepState {
	switch status {
	case StatusResident:
		return StepCompleted
	case StatusApplicantApproved:
		if stepID == "resident" {
			if lease == LeaseSigned {
				return StepCompleted
			}
			return StepPending
		}
		return StepCompleted
	case StatusApplicantPending:
		if stepID == "applicant_pending" {
			return StepCompleted
		}
		if stepID == "reviewing" {
			return StepCurrent
		}
		return StepPending
	default:
		return StepPending
	}
}

// TrackerStatus maps a tenant status to the display status used by the
// standalone status-tracker view. Past is shown as a completed timeline there;
// terminal states are display-only and never unlock the dashboard.
func TrackerStatus(status TenantStatus) UserStatus {
	switch status {
	case TenantActive, TenantPast:
		return StatusResident
	case TenantApproved:
		return StatusApplicantApproved
	default:
		return StatusApplicantPending
	}
}
