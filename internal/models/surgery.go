package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Surgery is a procedure record discriminated by Type: a spine surgery
// carries an anatomical place and a pain location, a non-spine surgery
// carries a free-form name. The opposite variant's fields are rejected
// outright by the validation schemas.
type Surgery struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type           string             `bson:"type" json:"type"`
	Name           string             `bson:"name,omitempty" json:"name,omitempty"`
	Place          string             `bson:"place,omitempty" json:"place,omitempty"`
	PainPlace      string             `bson:"painPlace,omitempty" json:"painPlace,omitempty"`
	Combinations   bool               `bson:"combinations" json:"combinations"`
	GetBetter      string             `bson:"getBetter" json:"getBetter"`
	Surgeon        string             `bson:"surgeon" json:"surgeon"`
	Country        string             `bson:"country" json:"country"`
	Pain           bool               `bson:"pain" json:"pain"`
	Status         string             `bson:"status" json:"status"`
	Date           time.Time          `bson:"date" json:"date"`
	Details        string             `bson:"details,omitempty" json:"details,omitempty"`
	Patient        primitive.ObjectID `bson:"patient" json:"patient"`
	PatientDetails *PatientSummary    `bson:"patientDetails,omitempty" json:"patientDetails,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SurgeryCreateRequest is the surgeryCreationSchema payload. The
// discriminated Name/Place/PainPlace rules live in a struct-level
// validation; everything else is declarative.
type SurgeryCreateRequest struct {
	Type         string `json:"type" validate:"required,surgerytype"`
	Name         string `json:"name"`
	Place        string `json:"place" validate:"omitempty,spineplace"`
	PainPlace    string `json:"painPlace" validate:"omitempty,painplace"`
	Combinations *bool  `json:"combinations"`
	GetBetter    string `json:"getBetter" validate:"omitempty,getbetter"`
	Surgeon      string `json:"surgeon" validate:"omitempty,surgeon"`
	Country      string `json:"country" validate:"omitempty,surgerycountry"`
	Pain         *bool  `json:"pain"`
	Status       string `json:"status" validate:"omitempty,status"`
	Date         *Date  `json:"date" validate:"required"`
	Details      string `json:"details"`
	Patient      string `json:"patient" validate:"required,objectid"`
}

// ToSurgery builds the persistable record, applying defaults.
func (r *SurgeryCreateRequest) ToSurgery() *Surgery {
	s := &Surgery{
		Type:      r.Type,
		Name:      r.Name,
		Place:     r.Place,
		PainPlace: r.PainPlace,
		GetBetter: r.GetBetter,
		Surgeon:   r.Surgeon,
		Country:   r.Country,
		Status:    r.Status,
		Date:      r.Date.Time,
		Details:   r.Details,
	}
	if id, err := primitive.ObjectIDFromHex(r.Patient); err == nil {
		s.Patient = id
	}
	if r.Combinations != nil {
		s.Combinations = *r.Combinations
	}
	if r.Pain != nil {
		s.Pain = *r.Pain
	}
	if s.GetBetter == "" {
		s.GetBetter = "Maybe"
	}
	if s.Surgeon == "" {
		s.Surgeon = "Other"
	}
	if s.Country == "" {
		s.Country = "Egypt"
	}
	if s.Status == "" {
		s.Status = "pending"
	}
	return s
}

// SurgeryUpdateRequest is the surgeryUpdateSchema payload. Changing any of
// the discriminated fields requires restating the type.
type SurgeryUpdateRequest struct {
	Type         *string `json:"type" validate:"omitempty,surgerytype"`
	Name         *string `json:"name"`
	Place        *string `json:"place" validate:"omitempty,spineplace"`
	PainPlace    *string `json:"painPlace" validate:"omitempty,painplace"`
	Combinations *bool   `json:"combinations"`
	GetBetter    *string `json:"getBetter" validate:"omitempty,getbetter"`
	Surgeon      *string `json:"surgeon" validate:"omitempty,surgeon"`
	Country      *string `json:"country" validate:"omitempty,surgerycountry"`
	Pain         *bool   `json:"pain"`
	Status       *string `json:"status" validate:"omitempty,status"`
	Date         *Date   `json:"date"`
	Details      *string `json:"details"`
	Patient      *string `json:"patient" validate:"omitempty,objectid"`
}

// Fields returns the partial update as a $set document.
func (r *SurgeryUpdateRequest) Fields() bson.M {
	set := bson.M{}
	if r.Type != nil {
		set["type"] = *r.Type
	}
	if r.Name != nil {
		set["name"] = *r.Name
	}
	if r.Place != nil {
		set["place"] = *r.Place
	}
	if r.PainPlace != nil {
		set["painPlace"] = *r.PainPlace
	}
	if r.Combinations != nil {
		set["combinations"] = *r.Combinations
	}
	if r.GetBetter != nil {
		set["getBetter"] = *r.GetBetter
	}
	if r.Surgeon != nil {
		set["surgeon"] = *r.Surgeon
	}
	if r.Country != nil {
		set["country"] = *r.Country
	}
	if r.Pain != nil {
		set["pain"] = *r.Pain
	}
	if r.Status != nil {
		set["status"] = *r.Status
	}
	if r.Date != nil {
		set["date"] = r.Date.Time
	}
	if r.Details != nil {
		set["details"] = *r.Details
	}
	if r.Patient != nil {
		if id, err := primitive.ObjectIDFromHex(*r.Patient); err == nil {
			set["patient"] = id
		}
	}
	return set
}
