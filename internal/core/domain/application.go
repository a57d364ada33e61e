package domain

import "time"

// ApplicationForm is the in-progress guest application draft. It lives only
// in the portal's draft store and is destroyed on successful submission or an
// explicit clear.
type ApplicationForm struct {
	// Property preferences
	PropertyAddress string `json:"property_address,omitempty"`

	// Personal information
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	DateOfBirth    string `json:"date_of_birth,omitempty"`
	CurrentAddress string `json:"current_address,omitempty"`

	// Occupants
	OtherOccupants string `json:"other_occupants,omitempty"`
	HasOtherAdults bool   `json:"has_other_adults,omitempty"`

	// Employment / income
	CurrentEmployer string `json:"current_employer,omitempty"`
	MonthlyIncome   string `json:"monthly_income,omitempty"`

	// Rental history
	HasRentedRecently bool   `json:"has_rented_recently,omitempty"`
	PreviousLandlord  string `json:"previous_landlord_info,omitempty"`
	HasEvictionStory  bool   `json:"has_eviction_or_felony,omitempty"`
	EvictionStory     string `json:"eviction_felony_explanation,omitempty"`

	// Policies & agreement
	AgreesToPolicy   bool   `json:"agrees_to_policy"`
	DesiredMoveIn    string `json:"desired_move_in_date,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
	AdditionalNotes  string `json:"additional_notes,omitempty"`
	CertificationOK  bool   `json:"certification_agreed"`

	References []Reference `json:"references,omitempty"`

	// Attachments uploaded before submission
	PhotoIDFiles        []FileRef `json:"photo_id_files,omitempty"`
	IncomeFiles         []FileRef `json:"income_verification_files,omitempty"`
	BackgroundCheckFile *FileRef  `json:"background_check_file,omitempty"`
}

// TenantApplication is the create-tenant payload built from a validated form
// plus the listing it targets.
type TenantApplication struct {
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Status       TenantStatus    `json:"status"`
	PropertyUnit string          `json:"property_unit"`
	RentAmount   float64         `json:"rent_amount"`
	Deposit      float64         `json:"deposit"`
	Application  ApplicationData `json:"application_data"`

	PhotoIDFiles        []FileRef `json:"photo_id_files,omitempty"`
	IncomeFiles         []FileRef `json:"income_verification_files,omitempty"`
	BackgroundCheckFile *FileRef  `json:"background_check_file,omitempty"`
}

const (
	defaultRentAmount = 1000
	defaultDeposit    = 500
)

// BuildApplication shapes a form into the backend create payload. Rent comes
// from the listing price when it carries one; deposit starts at the standard
// placeholder and is adjusted by staff later.
func BuildApplication(form ApplicationForm, listing Listing) TenantApplication {
	rent := listing.Price
	if rent <= 0 {
		rent = defaultRentAmount
	}
	unit := listing.Title
	if unit == "" {
		unit = listing.Address
	}
	if unit == "" {
		unit = "Property Application"
	}

	return TenantApplication{
		Name:         form.FirstName + " " + form.LastName,
		Email:        form.Email,
		Phone:        form.Phone,
		Status:       TenantApplicant,
		PropertyUnit: unit,
		RentAmount:   rent,
		Deposit:      defaultDeposit,
		Application: ApplicationData{
			SubmissionDate:     time.Now().UTC().Format(time.RFC3339),
			FirstName:          form.FirstName,
			LastName:           form.LastName,
			DateOfBirth:        form.DateOfBirth,
			CurrentAddress:     form.CurrentAddress,
			OtherOccupants:     form.OtherOccupants,
			HasOtherAdults:     form.HasOtherAdults,
			CurrentEmployer:    form.CurrentEmployer,
			MonthlyIncome:      ParseAmount(form.MonthlyIncome),
			HasRentedRecently:  form.HasRentedRecently,
			PreviousLandlord:   form.PreviousLandlord,
			HasEvictionOrStory: form.HasEvictionStory,
			EvictionStory:      form.EvictionStory,
			AgreesToPolicy:     form.AgreesToPolicy,
			DesiredMoveIn:      form.DesiredMoveIn,
			EmergencyContact:   form.EmergencyContact,
			AdditionalNotes:    form.AdditionalNotes,
			CertificationOK:    form.CertificationOK,
			References:         form.References,
		},
		PhotoIDFiles:        form.PhotoIDFiles,
		IncomeFiles:         form.IncomeFiles,
		BackgroundCheckFile: form.BackgroundCheckFile,
	}
}
