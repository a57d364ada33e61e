package domain

import "testing"

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name   string
		tenant *Tenant
		want   UserStatus
	}{
		{"nil tenant", nil, StatusGuest},
		{"active", &Tenant{Status: TenantActive}, StatusResident},
		{"approved unsigned", &Tenant{Status: TenantApproved}, StatusApplicantApproved},
		{"approved lease sent", &Tenant{Status: TenantApproved, LeaseStatus: LeaseSent}, StatusApplicantApproved},
		{"approved lease signed", &Tenant{Status: TenantApproved, LeaseStatus: LeaseSigned}, StatusResident},
		{"applicant", &Tenant{Status: TenantApplicant}, StatusApplicantPending},
		{"past", &Tenant{Status: TenantPast}, StatusGuest},
		{"declined", &Tenant{Status: TenantDeclined}, StatusGuest},
		{"eviction pending", &Tenant{Status: TenantEvictionPending}, StatusGuest},
		{"unknown status", &Tenant{Status: "Bogus"}, StatusGuest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveStatus(tt.tenant); got != tt.want {
				t.Errorf("DeriveStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDashboardUnlocked(t *testing.T) {
	if !DashboardUnlocked(StatusResident) {
		t.Error("resident should unlock the dashboard")
	}
	for _, status := range []UserStatus{StatusGuest, StatusApplicantPending, StatusApplicantApproved} {
		if DashboardUnlocked(status) {
			t.Errorf("%q should not unlock the dashboard", status)
		}
	}
}

func TestTimelineStepsForPendingApplicant(t *testing.T) {
	steps := TimelineSteps(StatusApplicantPending, "")
	if len(steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(steps))
	}
	if steps[0].State != StepCompleted {
		t.Errorf("submitted step = %q, want completed", steps[0].State)
	}
	if steps[1].State != StepCurrent {
		t.Errorf("review step = %q, want current", steps[1].State)
	}
	if steps[2].State != StepPending || steps[3].State != StepPending {
		t.Error("later steps should be pending")
	}
}

func TestTimelineStepsForApprovedApplicant(t *testing.T) {
	steps := TimelineSteps(StatusApplicantApproved, LeaseSent)
	if steps[2].State != StepCompleted {
		t.Errorf("approved step = %q, want completed", steps[2].State)
	}
	if steps[3].State != StepPending {
		t.Errorf("lease step = %q, want pending before signing", steps[3].State)
	}

	signed := TimelineSteps(StatusApplicantApproved, LeaseSigned)
	if signed[3].State != StepCompleted {
		t.Errorf("lease step = %q, want completed after signing", signed[3].State)
	}
}

func TestTimelineStepsForResident(t *testing.T) {
	for _, step := range TimelineSteps(StatusResident, LeaseSigned) {
		if step.State != StepCompleted {
			t.Errorf("step %s = %q, want completed", step.ID, step.State)
		}
	}
}

func TestTrackerStatus(t *testing.T) {
	tests := []struct {
		in   TenantStatus
		want UserStatus
	}{
		{TenantActive, StatusResident},
		{TenantPast, StatusResident},
		{TenantApproved, StatusApplicantApproved},
		{TenantApplicant, StatusApplicantPending},
		{TenantDeclined, StatusApplicantPending},
	}
	for _, tt := range tests {
		if got := TrackerStatus(tt.in); got != tt.want {
			t.Errorf("TrackerStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
