package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking is an appointment record. The patient reference is optional: a
// walk-in booking can precede the patient record and be linked later.
type Booking struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	BookingName     string              `bson:"bookingName" json:"bookingName"`
	PhoneNumbers    []string            `bson:"phoneNumbers" json:"phoneNumbers"`
	DateOfBooking   time.Time           `bson:"dateOfBooking" json:"dateOfBooking"`
	TypeOfBooking   string              `bson:"typeOfBooking" json:"typeOfBooking"`
	SourceOfBooking string              `bson:"sourceOfBooking,omitempty" json:"sourceOfBooking,omitempty"`
	WhereOfBooking  string              `bson:"whereOfBooking" json:"whereOfBooking"`
	IsConfirmed     bool                `bson:"isConfirmed" json:"isConfirmed"`
	Status          string              `bson:"status" json:"status"`
	Patient         *primitive.ObjectID `bson:"patient,omitempty" json:"patient,omitempty"`
	PatientDetails  *PatientSummary     `bson:"patientDetails,omitempty" json:"patientDetails,omitempty"`
	CreatedAt       time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// BookingCreateRequest is the bookingCreationSchema payload.
type BookingCreateRequest struct {
	BookingName     string   `json:"bookingName" validate:"required,min=3"`
	PhoneNumbers    []string `json:"phoneNumbers" validate:"required,min=1,max=3,dive,required"`
	DateOfBooking   *Date    `json:"dateOfBooking" validate:"required"`
	TypeOfBooking   string   `json:"typeOfBooking" validate:"required,bookingtype"`
	Patient         string   `json:"patient" validate:"omitempty,objectid"`
	SourceOfBooking string   `json:"sourceOfBooking" validate:"omitempty,bookingsource"`
	WhereOfBooking  string   `json:"whereOfBooking" validate:"omitempty,bookingwhere"`
	IsConfirmed     *bool    `json:"isConfirmed"`
	Status          string   `json:"status" validate:"omitempty,status"`
}

// ToBooking builds the persistable record, applying defaults.
func (r *BookingCreateRequest) ToBooking() *Booking {
	b := &Booking{
		BookingName:     r.BookingName,
		PhoneNumbers:    r.PhoneNumbers,
		DateOfBooking:   r.DateOfBooking.Time,
		TypeOfBooking:   r.TypeOfBooking,
		SourceOfBooking: r.SourceOfBooking,
		WhereOfBooking:  r.WhereOfBooking,
		Status:          r.Status,
	}
	if r.Patient != "" {
		id, err := primitive.ObjectIDFromHex(r.Patient)
		if err == nil {
			b.Patient = &id
		}
	}
	if r.IsConfirmed != nil {
		b.IsConfirmed = *r.IsConfirmed
	}
	if b.WhereOfBooking == "" {
		b.WhereOfBooking = "inclinic"
	}
	if b.Status == "" {
		b.Status = "pending"
	}
	return b
}

// BookingUpdateRequest is the bookingUpdateSchema payload.
type BookingUpdateRequest struct {
	BookingName     *string  `json:"bookingName" validate:"omitempty,min=3"`
	PhoneNumbers    []string `json:"phoneNumbers" validate:"omitempty,min=1,max=3,dive,required"`
	DateOfBooking   *Date    `json:"dateOfBooking"`
	TypeOfBooking   *string  `json:"typeOfBooking" validate:"omitempty,bookingtype"`
	Patient         *string  `json:"patient" validate:"omitempty,objectid"`
	SourceOfBooking *string  `json:"sourceOfBooking" validate:"omitempty,bookingsource"`
	WhereOfBooking  *string  `json:"whereOfBooking" validate:"omitempty,bookingwhere"`
	IsConfirmed     *bool    `json:"isConfirmed"`
	Status          *string  `json:"status" validate:"omitempty,status"`
}

// Fields returns the partial update as a $set document.
func (r *BookingUpdateRequest) Fields() bson.M {
	set := bson.M{}
	if r.BookingName != nil {
		set["bookingName"] = *r.BookingName
	}
	if r.PhoneNumbers != nil {
		set["phoneNumbers"] = r.PhoneNumbers
	}
	if r.DateOfBooking != nil {
		set["dateOfBooking"] = r.DateOfBooking.Time
	}
	if r.TypeOfBooking != nil {
		set["typeOfBooking"] = *r.TypeOfBooking
	}
	if r.Patient != nil {
		if id, err := primitive.ObjectIDFromHex(*r.Patient); err == nil {
			set["patient"] = id
		}
	}
	if r.SourceOfBooking != nil {
		set["sourceOfBooking"] = *r.SourceOfBooking
	}
	if r.WhereOfBooking != nil {
		set["whereOfBooking"] = *r.WhereOfBooking
	}
	if r.IsConfirmed != nil {
		set["isConfirmed"] = *r.IsConfirmed
	}
	if r.Status != nil {
		set["status"] = *r.Status
	}
	return set
}
