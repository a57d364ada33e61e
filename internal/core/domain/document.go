package domain

type DocumentStatus string

const (
	DocumentDraft     DocumentStatus = "Draft"
	DocumentSent      DocumentStatus = "Sent"
	DocumentDelivered DocumentStatus = "Delivered"
	DocumentFiled     DocumentStatus = "Filed"
	DocumentSigned    DocumentStatus = "Signed"
)

// LeaseAgreementType is the document type whose single instance gates the
// lease-signing transition for a tenant.
const LeaseAgreementType = "Lease Agreement"

// LegalDocument is a lease or notice held by the backend.
type LegalDocument struct {
	ID           string         `json:"id"`
	TenantID     string         `json:"tenant_id"`
	Type         string         `json:"type"`
	Status       DocumentStatus `json:"status"`
	CreatedAt    string         `json:"created_at"`
	PDFURL       string         `json:"pdf_url,omitempty"`
	SigningURL   string         `json:"signing_url,omitempty"`
	SignedPDFURL string         `json:"signed_pdf_url,omitempty"`
	SignedAt     string         `json:"signed_at,omitempty"`
}

// DocumentPatch carries the mutable legal-document fields, used for the
// manual lease-sign path.
type DocumentPatch struct {
	Status   DocumentStatus `json:"status,omitempty"`
	SignedAt string         `json:"signed_at,omitempty"`
}

// RawLegalDocument is the snake_case wire form.
type RawLegalDocument struct {
	ID           FlexString `json:"id"`
	Tenant       FlexString `json:"tenant"`
	Type         string     `json:"type"`
	Status       string     `json:"status"`
	CreatedAt    string     `json:"created_at"`
	PDFURL       string     `json:"pdf_url"`
	SigningURL   string     `json:"signing_url"`
	SignedPDFURL string     `json:"signed_pdf_url"`
	SignedAt     string     `json:"signed_at"`
}

func MapLegalDocument(raw RawLegalDocument) LegalDocument {
	return LegalDocument{
		ID:           raw.ID.String(),
		TenantID:     raw.Tenant.String(),
		Type:         raw.Type,
		Status:       DocumentStatus(raw.Status),
		CreatedAt:    raw.CreatedAt,
		PDFURL:       raw.PDFURL,
		SigningURL:   raw.SigningURL,
		SignedPDFURL: raw.SignedPDFURL,
		SignedAt:     raw.SignedAt,
	}
}

// FindLease picks the authoritative lease agreement out of a tenant's
// documents, nil when none exists yet.
func FindLease(docs []LegalDocument) *LegalDocument {
	for i := range docs {
		if docs[i].Type == LeaseAgreementType {
			return &docs[i]
		}
	}
	return nil
}
