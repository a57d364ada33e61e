package domain

import "fmt"

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentPending PaymentStatus = "Pending"
	PaymentOverdue PaymentStatus = "Overdue"
	PaymentFailed  PaymentStatus = "Failed"
)

// Payment records a tenant-claimed payment. New rows always enter as Pending;
// only the backend moves them to Paid or Failed after manager verification.
type Payment struct {
	ID         string        `json:"id"`
	TenantID   string        `json:"tenant_id"`
	Amount     float64       `json:"amount"`
	Date       string        `json:"date"`
	Status     PaymentStatus `json:"status"`
	Type       string        `json:"type"`
	Method     string        `json:"method"`
	Reference  string        `json:"reference,omitempty"`
	ProofFiles []FileRef     `json:"proof_of_payment_files"`
}

// NewPayment is the tenant-submitted payment claim. Any status supplied by the
// caller is ignored on create.
type NewPayment struct {
	TenantID   string    `json:"tenant_id"`
	Amount     float64   `json:"amount"`
	Date       string    `json:"date"`
	Type       string    `json:"type"`
	Method     string    `json:"method"`
	Reference  string    `json:"reference,omitempty"`
	ProofFiles []FileRef `json:"proof_files,omitempty"`
}

// RawPayment is the snake_case wire form. The backend keys the tenant foreign
// key as "tenant".
type RawPayment struct {
	ID         FlexString `json:"id"`
	Tenant     FlexString `json:"tenant"`
	Amount     FlexString `json:"amount"`
	Date       string     `json:"date"`
	Status     string     `json:"status"`
	Type       string     `json:"type"`
	Method     string     `json:"method"`
	Reference  string     `json:"reference"`
	ProofFiles []FileRef  `json:"proof_of_payment_files"`
}

func MapPayment(raw RawPayment) Payment {
	return Payment{
		ID:         raw.ID.String(),
		TenantID:   raw.Tenant.String(),
		Amount:     ParseAmount(raw.Amount.String()),
		Date:       raw.Date,
		Status:     PaymentStatus(raw.Status),
		Type:       raw.Type,
		Method:     raw.Method,
		Reference:  raw.Reference,
		ProofFiles: orEmpty(raw.ProofFiles),
	}
}

// FormatCurrency renders an amount the way the dashboard displays money.
func FormatCurrency(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// FilterPaymentsByTenant returns exactly the payments belonging to tenantID.
// The backend hands back the full collection; scoping happens here. This is a
// known trust-boundary gap kept in one place rather than scattered.
func FilterPaymentsByTenant(payments []Payment, tenantID string) []Payment {
	out := make([]Payment, 0, len(payments))
	for _, p := range payments {
		if p.TenantID == tenantID {
			out = append(out, p)
		}
	}
	return out
}
