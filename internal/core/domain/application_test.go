package domain

import (
	"strings"
	"testing"
)

func TestBuildApplicationUsesListingDetails(t *testing.T) {
	form := ApplicationForm{
		FirstName:     "Jordan",
		LastName:      "Reed",
		Email:         "jordan@example.com",
		Phone:         "555-0101",
		MonthlyIncome: "4200",
	}
	listing := Listing{Title: "Oakwood 4B", Address: "12 Oak St, Austin, TX", Price: 1450}

	app := BuildApplication(form, listing)

	if app.Name != "Jordan Reed" {
		t.Errorf("Name = %q", app.Name)
	}
	if app.Status != TenantApplicant {
		t.Errorf("Status = %q, want Applicant", app.Status)
	}
	if app.PropertyUnit != "Oakwood 4B" {
		t.Errorf("PropertyUnit = %q, want listing title", app.PropertyUnit)
	}
	if app.RentAmount != 1450 {
		t.Errorf("RentAmount = %v, want listing price", app.RentAmount)
	}
	if app.Deposit != defaultDeposit {
		t.Errorf("Deposit = %v, want default", app.Deposit)
	}
	if app.Application.MonthlyIncome != 4200 {
		t.Errorf("MonthlyIncome = %v, want 4200", app.Application.MonthlyIncome)
	}
	if app.Application.SubmissionDate == "" {
		t.Error("SubmissionDate should be stamped")
	}
}

func TestBuildApplicationFallbacks(t *testing.T) {
	app := BuildApplication(ApplicationForm{FirstName: "A", LastName: "B"}, Listing{})

	if app.RentAmount != defaultRentAmount {
		t.Errorf("RentAmount = %v, want default when listing has no price", app.RentAmount)
	}
	if app.PropertyUnit != "Property Application" {
		t.Errorf("PropertyUnit = %q, want generic fallback", app.PropertyUnit)
	}

	withAddr := BuildApplication(ApplicationForm{}, Listing{Address: "12 Oak St"})
	if withAddr.PropertyUnit != "12 Oak St" {
		t.Errorf("PropertyUnit = %q, want listing address fallback", withAddr.PropertyUnit)
	}
}

func TestListingFromProperty(t *testing.T) {
	p := Property{
		ID:      "3",
		Name:    "Oakwood",
		Address: "12 Oak St",
		City:    "Austin",
		State:   "TX",
		Units:   1,
		Price:   1450,
	}

	l := ListingFromProperty(p)

	if l.Address != "12 Oak St, Austin, TX" {
		t.Errorf("Address = %q", l.Address)
	}
	if !strings.Contains(l.Description, "1 unit available") {
		t.Errorf("Description = %q, want singular unit wording", l.Description)
	}
}

func TestMapPropertyImagePrecedence(t *testing.T) {
	tests := []struct {
		name string
		raw  RawProperty
		want string
	}{
		{"display image wins", RawProperty{DisplayImage: "a", Image: "b", ImageURL: "c"}, "a"},
		{"image next", RawProperty{Image: "b", ImageURL: "c"}, "b"},
		{"image url last", RawProperty{ImageURL: "c"}, "c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapProperty(tt.raw).Image; got != tt.want {
				t.Errorf("Image = %q, want %q", got, tt.want)
			}
		})
	}
}
