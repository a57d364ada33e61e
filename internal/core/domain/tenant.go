package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

type TenantStatus string

const (
	TenantApplicant       TenantStatus = "Applicant"
	TenantApproved        TenantStatus = "Approved"
	TenantActive          TenantStatus = "Active"
	TenantPast            TenantStatus = "Past"
	TenantEvictionPending TenantStatus = "Eviction Pending"
	TenantDeclined        TenantStatus = "Declined"
)

type LeaseStatus string

const (
	LeaseDraft  LeaseStatus = "Draft"
	LeaseSent   LeaseStatus = "Sent"
	LeaseSigned LeaseStatus = "Signed"
)

// FileRef points at an uploaded attachment held by the backend.
type FileRef struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Size     int64  `json:"size,omitempty"`
}

// ApplicationData is the nested application payload collected during the
// guest application flow and stored on the tenant record after submission.
type ApplicationData struct {
	SubmissionDate     string      `json:"submission_date,omitempty"`
	FirstName          string      `json:"first_name,omitempty"`
	LastName           string      `json:"last_name,omitempty"`
	DateOfBirth        string      `json:"date_of_birth,omitempty"`
	CurrentAddress     string      `json:"current_address,omitempty"`
	OtherOccupants     string      `json:"other_occupants,omitempty"`
	HasOtherAdults     bool        `json:"has_other_adults,omitempty"`
	CurrentEmployer    string      `json:"current_employer,omitempty"`
	MonthlyIncome      float64     `json:"monthly_income,omitempty"`
	HasRentedRecently  bool        `json:"has_rented_recently,omitempty"`
	PreviousLandlord   string      `json:"previous_landlord_info,omitempty"`
	HasEvictionOrStory bool        `json:"has_eviction_or_felony,omitempty"`
	EvictionStory      string      `json:"eviction_felony_explanation,omitempty"`
	AgreesToPolicy     bool        `json:"agrees_to_policy,omitempty"`
	DesiredMoveIn      string      `json:"desired_move_in_date,omitempty"`
	EmergencyContact   string      `json:"emergency_contact,omitempty"`
	AdditionalNotes    string      `json:"additional_notes,omitempty"`
	CertificationOK    bool        `json:"certification_agreed,omitempty"`
	References         []Reference `json:"references,omitempty"`
}

type Reference struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
	Phone    string `json:"phone"`
}

// Tenant is the normalized entity for an applicant or resident. The session
// holds at most one of these; it is replaced wholesale on every refresh and
// discarded on logout.
type Tenant struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	Phone        string           `json:"phone"`
	Status       TenantStatus     `json:"status"`
	PropertyUnit string           `json:"property_unit"`
	LeaseStart   string           `json:"lease_start,omitempty"`
	LeaseEnd     string           `json:"lease_end,omitempty"`
	RentAmount   float64          `json:"rent_amount"`
	Deposit      float64          `json:"deposit"`
	Balance      float64          `json:"balance"`
	LeaseStatus  LeaseStatus      `json:"lease_status,omitempty"`
	SignedLease  string           `json:"signed_lease_url,omitempty"`
	Application  *ApplicationData `json:"application_data,omitempty"`

	PhotoIDFiles         []FileRef `json:"photo_id_files"`
	IncomeFiles          []FileRef `json:"income_verification_files"`
	BackgroundCheckFiles []FileRef `json:"background_check_files"`
}

// FlexString tolerates JSON strings, numbers, and null. The backend serializes
// ids as integers and money columns as decimal strings; both arrive here as
// their raw text.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	*f = FlexString(b)
	return nil
}

func (f FlexString) String() string { return string(f) }

// RawTenant is the snake_case wire form of a tenant record. It exists only at
// the gateway boundary; everything past the mapper works with Tenant.
type RawTenant struct {
	ID           FlexString       `json:"id"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	Phone        string           `json:"phone"`
	Status       string           `json:"status"`
	PropertyUnit string           `json:"property_unit"`
	LeaseStart   FlexString       `json:"lease_start"`
	LeaseEnd     FlexString       `json:"lease_end"`
	RentAmount   FlexString       `json:"rent_amount"`
	Deposit      FlexString       `json:"deposit"`
	Balance      FlexString       `json:"balance"`
	LeaseStatus  string           `json:"lease_status"`
	SignedLease  FlexString       `json:"signed_lease_url"`
	Application  *ApplicationData `json:"application_data"`

	PhotoIDFiles         []FileRef `json:"photo_id_files"`
	IncomeFiles          []FileRef `json:"income_verification_files"`
	BackgroundCheckFiles []FileRef `json:"background_check_files"`
}

// MapTenant normalizes a raw backend tenant record. It is a pure function:
// money fields are coerced to float64 with unparsable values defaulting to 0,
// a missing status defaults to Applicant, and absent file lists become empty
// slices. Mapping the same raw payload twice yields a deep-equal result; a
// mapped Tenant is never fed back through the mapper.
func MapTenant(raw RawTenant) Tenant {
	status := TenantStatus(raw.Status)
	if raw.Status == "" {
		status = TenantApplicant
	}

	return Tenant{
		ID:                   raw.ID.String(),
		Name:                 raw.Name,
		Email:                raw.Email,
		Phone:                raw.Phone,
		Status:               status,
		PropertyUnit:         raw.PropertyUnit,
		LeaseStart:           raw.LeaseStart.String(),
		LeaseEnd:             raw.LeaseEnd.String(),
		RentAmount:           ParseAmount(raw.RentAmount.String()),
		Deposit:              ParseAmount(raw.Deposit.String()),
		Balance:              ParseAmount(raw.Balance.String()),
		LeaseStatus:          LeaseStatus(raw.LeaseStatus),
		SignedLease:          raw.SignedLease.String(),
		Application:          raw.Application,
		PhotoIDFiles:         orEmpty(raw.PhotoIDFiles),
		IncomeFiles:          orEmpty(raw.IncomeFiles),
		BackgroundCheckFiles: orEmpty(raw.BackgroundCheckFiles),
	}
}

// ParseAmount coerces a numeric-like string to a float64, defaulting to 0 on
// missing or unparsable input. Balance is display-only on this side; the
// backend owns the authoritative value.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func orEmpty(files []FileRef) []FileRef {
	if files == nil {
		return []FileRef{}
	}
	return files
}
