package domain

import "testing"

func TestMapPaymentReadsTenantKey(t *testing.T) {
	p := MapPayment(RawPayment{ID: "5", Tenant: "12", Amount: "1450.00", Status: "Pending"})
	if p.TenantID != "12" {
		t.Errorf("TenantID = %q, want 12", p.TenantID)
	}
	if p.Amount != 1450 {
		t.Errorf("Amount = %v, want 1450", p.Amount)
	}
	if p.ProofFiles == nil {
		t.Error("ProofFiles should be an empty slice, not nil")
	}
}

func TestFilterPaymentsByTenant(t *testing.T) {
	payments := []Payment{
		{ID: "1", TenantID: "a"},
		{ID: "2", TenantID: "b"},
		{ID: "3", TenantID: "a"},
	}

	got := FilterPaymentsByTenant(payments, "a")
	if len(got) != 2 {
		t.Fatalf("got %d payments, want 2", len(got))
	}
	for _, p := range got {
		if p.TenantID != "a" {
			t.Errorf("leaked payment %s for tenant %s", p.ID, p.TenantID)
		}
	}

	if got := FilterPaymentsByTenant(payments, "missing"); len(got) != 0 {
		t.Errorf("got %d payments for unknown tenant, want 0", len(got))
	}
}

func TestFilterByTenant(t *testing.T) {
	requests := []MaintenanceRequest{
		{ID: "1", TenantID: "a"},
		{ID: "2", TenantID: "b"},
	}
	got := FilterByTenant(requests, "b")
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("FilterByTenant = %+v, want only request 2", got)
	}
}

func TestFindLease(t *testing.T) {
	docs := []LegalDocument{
		{ID: "1", Type: "Notice"},
		{ID: "2", Type: LeaseAgreementType},
		{ID: "3", Type: LeaseAgreementType},
	}
	lease := FindLease(docs)
	if lease == nil || lease.ID != "2" {
		t.Errorf("FindLease = %+v, want first lease agreement", lease)
	}
	if FindLease([]LegalDocument{{Type: "Notice"}}) != nil {
		t.Error("FindLease should be nil when no lease exists")
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{450, "$450.00"},
		{1450.5, "$1450.50"},
		{0, "$0.00"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(tt.amount); got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
