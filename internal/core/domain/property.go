package domain

import "fmt"

// Property is a public rental property record.
type Property struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	Units      int     `json:"units"`
	Price      float64 `json:"price,omitempty"`
	Bedrooms   int     `json:"bedrooms,omitempty"`
	Bathrooms  int     `json:"bathrooms,omitempty"`
	SquareFeet int     `json:"square_footage,omitempty"`
	Image      string  `json:"image,omitempty"`
	CreatedAt  string  `json:"created_at,omitempty"`
	UpdatedAt  string  `json:"updated_at,omitempty"`
}

// Listing is the projection of a property shown on the public listings view
// and attached to a new application.
type Listing struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Address     string  `json:"address"`
	Price       float64 `json:"price"`
	Beds        int     `json:"beds"`
	Baths       int     `json:"baths"`
	SquareFeet  int     `json:"sqft"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

type RawProperty struct {
	ID            FlexString `json:"id"`
	Name          string     `json:"name"`
	Address       string     `json:"address"`
	City          string     `json:"city"`
	State         string     `json:"state"`
	Units         int        `json:"units"`
	Price         FlexString `json:"price"`
	Bedrooms      int        `json:"bedrooms"`
	Bathrooms     int        `json:"bathrooms"`
	SquareFootage int        `json:"square_footage"`
	DisplayImage  string     `json:"display_image"`
	Image         string     `json:"image"`
	ImageURL      string     `json:"image_url"`
	CreatedAt     string     `json:"created_at"`
	UpdatedAt     string     `json:"updated_at"`
}

func MapProperty(raw RawProperty) Property {
	image := raw.DisplayImage
	if image == "" {
		image = raw.Image
	}
	if image == "" {
		image = raw.ImageURL
	}
	return Property{
		ID:         raw.ID.String(),
		Name:       raw.Name,
		Address:    raw.Address,
		City:       raw.City,
		State:      raw.State,
		Units:      raw.Units,
		Price:      ParseAmount(raw.Price.String()),
		Bedrooms:   raw.Bedrooms,
		Bathrooms:  raw.Bathrooms,
		SquareFeet: raw.SquareFootage,
		Image:      image,
		CreatedAt:  raw.CreatedAt,
		UpdatedAt:  raw.UpdatedAt,
	}
}

// ListingFromProperty shapes a property into its listings-view projection.
func ListingFromProperty(p Property) Listing {
	unitWord := "units"
	if p.Units == 1 {
		unitWord = "unit"
	}
	return Listing{
		ID:          p.ID,
		Title:       p.Name,
		Address:     fmt.Sprintf("%s, %s, %s", p.Address, p.City, p.State),
		Price:       p.Price,
		Beds:        p.Bedrooms,
		Baths:       p.Bathrooms,
		SquareFeet:  p.SquareFeet,
		Image:       p.Image,
		Description: fmt.Sprintf("%s located in %s, %s. %d %s available.", p.Name, p.City, p.State, p.Units, unitWord),
	}
}
