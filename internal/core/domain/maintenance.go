package domain

type MaintenanceStatus string

const (
	MaintenanceOpen       MaintenanceStatus = "Open"
	MaintenanceInProgress MaintenanceStatus = "In Progress"
	MaintenanceResolved   MaintenanceStatus = "Resolved"
	MaintenanceClosed     MaintenanceStatus = "Closed"
)

type MaintenancePriority string

const (
	PriorityLow       MaintenancePriority = "Low"
	PriorityMedium    MaintenancePriority = "Medium"
	PriorityHigh      MaintenancePriority = "High"
	PriorityEmergency MaintenancePriority = "Emergency"
)

// TicketUpdate is one entry of a request's ordered update history.
type TicketUpdate struct {
	Date    string `json:"date"`
	Message string `json:"message"`
	Author  string `json:"author"`
}

// MaintenanceRequest is a tenant-filed ticket. Tickets are mutated only
// through status, assignment and update-append operations; never deleted on
// this side.
type MaintenanceRequest struct {
	ID          string              `json:"id"`
	TenantID    string              `json:"tenant_id"`
	Category    string              `json:"category"`
	Description string              `json:"description"`
	Status      MaintenanceStatus   `json:"status"`
	Priority    MaintenancePriority `json:"priority"`
	CreatedAt   string              `json:"created_at"`
	Images      []string            `json:"images,omitempty"`
	Updates     []TicketUpdate      `json:"updates"`
	AssignedTo  string              `json:"assigned_to,omitempty"`
	Attachments []FileRef           `json:"completion_attachments"`
}

// NewMaintenanceRequest is the tenant submission. Priority may be left empty
// to let the triage advisor suggest one.
type NewMaintenanceRequest struct {
	TenantID    string              `json:"tenant_id"`
	Category    string              `json:"category"`
	Description string              `json:"description"`
	Priority    MaintenancePriority `json:"priority,omitempty"`
	Images      []string            `json:"images,omitempty"`
}

// MaintenancePatch carries the mutable ticket fields for an update call.
type MaintenancePatch struct {
	Status     MaintenanceStatus `json:"status,omitempty"`
	AssignedTo string            `json:"assigned_to,omitempty"`
	Updates    []TicketUpdate    `json:"updates,omitempty"`
}

// RawMaintenanceRequest is the snake_case wire form.
type RawMaintenanceRequest struct {
	ID          FlexString     `json:"id"`
	Tenant      FlexString     `json:"tenant"`
	Category    string         `json:"category"`
	Description string         `json:"description"`
	Status      string         `json:"status"`
	Priority    string         `json:"priority"`
	CreatedAt   string         `json:"created_at"`
	Images      []string       `json:"images"`
	Updates     []TicketUpdate `json:"updates"`
	AssignedTo  string         `json:"assigned_to"`
	Attachments []FileRef      `json:"completion_attachments"`
}

func MapMaintenanceRequest(raw RawMaintenanceRequest) MaintenanceRequest {
	updates := raw.Updates
	if updates == nil {
		updates = []TicketUpdate{}
	}
	return MaintenanceRequest{
		ID:          raw.ID.String(),
		TenantID:    raw.Tenant.String(),
		Category:    raw.Category,
		Description: raw.Description,
		Status:      MaintenanceStatus(raw.Status),
		Priority:    MaintenancePriority(raw.Priority),
		CreatedAt:   raw.CreatedAt,
		Images:      raw.Images,
		Updates:     updates,
		AssignedTo:  raw.AssignedTo,
		Attachments: orEmpty(raw.Attachments),
	}
}

// FilterByTenant returns exactly the requests with a matching tenant id. Same
// trust-boundary caveat as FilterPaymentsByTenant.
func FilterByTenant(requests []MaintenanceRequest, tenantID string) []MaintenanceRequest {
	out := make([]MaintenanceRequest, 0, len(requests))
	for _, r := range requests {
		if r.TenantID == tenantID {
			out = append(out, r)
		}
	}
	return out
}
