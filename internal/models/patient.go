package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultAvatar is stored whenever a patient is created without one.
const DefaultAvatar = "https://res.cloudinary.com/deuxt0stn/image/upload/v1754918464/download_vggpl3.png"

// AddressPart is one half of a patient address. Governrate is only
// mandatory for Egyptian addresses, enforced by a struct-level rule.
type AddressPart struct {
	Country    string `bson:"country" json:"country" validate:"required"`
	Governrate string `bson:"governrate,omitempty" json:"governrate,omitempty"`
	City       string `bson:"city" json:"city" validate:"required"`
}

// Address groups a patient's primary and secondary addresses.
type Address struct {
	Primary   *AddressPart `bson:"primary,omitempty" json:"primary,omitempty"`
	Secondary *AddressPart `bson:"secondary,omitempty" json:"secondary,omitempty"`
}

// Pregnancy is the obstetric sub-record, permitted only for female patients.
type Pregnancy struct {
	NumberOfPregnancies *int `bson:"numberOfPregnancies,omitempty" json:"numberOfPregnancies,omitempty" validate:"omitempty,min=0"`
	NumberOfBirths      *int `bson:"numberOfBirths,omitempty" json:"numberOfBirths,omitempty" validate:"omitempty,min=0"`
	LivingChildren      *int `bson:"livingChildren,omitempty" json:"livingChildren,omitempty" validate:"omitempty,min=0"`
}

// Patient is a clinical subject profile.
type Patient struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName              string             `bson:"fullName" json:"fullName"`
	PhoneNumbers          []string           `bson:"phoneNumbers" json:"phoneNumbers"`
	TitleJob              string             `bson:"titleJob,omitempty" json:"titleJob,omitempty"`
	DateOfBirth           *time.Time         `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	Gender                string             `bson:"gender,omitempty" json:"gender,omitempty"`
	MaterialStatus        string             `bson:"materialStatus,omitempty" json:"materialStatus,omitempty"`
	Nationality           string             `bson:"nationality,omitempty" json:"nationality,omitempty"`
	Address               *Address           `bson:"address,omitempty" json:"address,omitempty"`
	Email                 string             `bson:"email,omitempty" json:"email,omitempty"`
	Pregnancy             *Pregnancy         `bson:"pregnancy,omitempty" json:"pregnancy,omitempty"`
	MenstrualPeriodStatus string             `bson:"menstrualPeriodStatus,omitempty" json:"menstrualPeriodStatus,omitempty"`
	Stature               string             `bson:"stature,omitempty" json:"stature,omitempty"`
	BodyWeight            string             `bson:"bodyWeight,omitempty" json:"bodyWeight,omitempty"`
	BodyBuild             string             `bson:"bodyBuild,omitempty" json:"bodyBuild,omitempty"`
	GeneralHealth         string             `bson:"generalHealth,omitempty" json:"generalHealth,omitempty"`
	PhysiologicalStatus   []string           `bson:"physiologicalStatus,omitempty" json:"physiologicalStatus,omitempty"`
	Avatar                string             `bson:"avatar" json:"avatar"`
	CreatedAt             time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AgeAt computes the patient's age in whole calendar years at the given
// instant, or nil when no birth date is recorded. Age is derived on read
// and never stored.
func (p *Patient) AgeAt(now time.Time) *int {
	if p.DateOfBirth == nil {
		return nil
	}
	birth := *p.DateOfBirth
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return &age
}

// MarshalJSON adds the derived age field to the wire representation.
func (p Patient) MarshalJSON() ([]byte, error) {
	type patientAlias Patient
	return json.Marshal(struct {
		patientAlias
		Age *int `json:"age"`
	}{
		patientAlias: patientAlias(p),
		Age:          p.AgeAt(time.Now()),
	})
}

// PatientSummary is the slice of a patient embedded into bookings and
// surgeries when the reference is expanded at read time.
type PatientSummary struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	FullName     string             `bson:"fullName" json:"fullName"`
	PhoneNumbers []string           `bson:"phoneNumbers" json:"phoneNumbers"`
}

// PatientCreateRequest is the patientCreationSchema payload.
type PatientCreateRequest struct {
	FullName              string     `json:"fullName" validate:"required,min=10"`
	PhoneNumbers          []string   `json:"phoneNumbers" validate:"required,min=1,max=3,dive,required"`
	TitleJob              string     `json:"titleJob" validate:"omitempty,titlejob"`
	DateOfBirth           *Date      `json:"dateOfBirth"`
	Gender                string     `json:"gender" validate:"omitempty,gender"`
	MaterialStatus        string     `json:"materialStatus" validate:"omitempty,materialstatus"`
	Nationality           string     `json:"nationality"`
	Address               *Address   `json:"address"`
	Email                 string     `json:"email" validate:"omitempty,email"`
	Pregnancy             *Pregnancy `json:"pregnancy"`
	MenstrualPeriodStatus string     `json:"menstrualPeriodStatus" validate:"omitempty,menstrual"`
	Stature               string     `json:"stature" validate:"omitempty,stature"`
	BodyWeight            string     `json:"bodyWeight" validate:"omitempty,bodyweight"`
	BodyBuild             string     `json:"bodyBuild" validate:"omitempty,bodybuild"`
	GeneralHealth         string     `json:"generalHealth" validate:"omitempty,generalhealth"`
	PhysiologicalStatus   []string   `json:"physiologicalStatus" validate:"omitempty,dive,psychological"`
	Avatar                string     `json:"avatar" validate:"omitempty,url"`
}

// ToPatient builds the persistable record, applying defaults.
func (r *PatientCreateRequest) ToPatient() *Patient {
	p := &Patient{
		FullName:              r.FullName,
		PhoneNumbers:          r.PhoneNumbers,
		TitleJob:              r.TitleJob,
		Gender:                r.Gender,
		MaterialStatus:        r.MaterialStatus,
		Nationality:           r.Nationality,
		Address:               r.Address,
		Email:                 r.Email,
		Pregnancy:             r.Pregnancy,
		MenstrualPeriodStatus: r.MenstrualPeriodStatus,
		Stature:               r.Stature,
		BodyWeight:            r.BodyWeight,
		BodyBuild:             r.BodyBuild,
		GeneralHealth:         r.GeneralHealth,
		PhysiologicalStatus:   r.PhysiologicalStatus,
		Avatar:                r.Avatar,
	}
	if r.DateOfBirth != nil {
		dob := r.DateOfBirth.Time
		p.DateOfBirth = &dob
	}
	if p.Avatar == "" {
		p.Avatar = DefaultAvatar
	}
	return p
}

// PatientUpdateRequest is the patientUpdateSchema payload: every field
// optional, constraints still enforced on fields that are present. Unknown
// fields in the body are ignored by the JSON decoder.
type PatientUpdateRequest struct {
	FullName              *string    `json:"fullName" validate:"omitempty,min=10"`
	PhoneNumbers          []string   `json:"phoneNumbers" validate:"omitempty,min=1,max=3,dive,required"`
	TitleJob              *string    `json:"titleJob" validate:"omitempty,titlejob"`
	DateOfBirth           *Date      `json:"dateOfBirth"`
	Gender                *string    `json:"gender" validate:"omitempty,gender"`
	MaterialStatus        *string    `json:"materialStatus" validate:"omitempty,materialstatus"`
	Nationality           *string    `json:"nationality"`
	Address               *Address   `json:"address"`
	Email                 *string    `json:"email" validate:"omitempty,email"`
	Pregnancy             *Pregnancy `json:"pregnancy"`
	MenstrualPeriodStatus *string    `json:"menstrualPeriodStatus" validate:"omitempty,menstrual"`
	Stature               *string    `json:"stature" validate:"omitempty,stature"`
	BodyWeight            *string    `json:"bodyWeight" validate:"omitempty,bodyweight"`
	BodyBuild             *string    `json:"bodyBuild" validate:"omitempty,bodybuild"`
	GeneralHealth         *string    `json:"generalHealth" validate:"omitempty,generalhealth"`
	PhysiologicalStatus   []string   `json:"physiologicalStatus" validate:"omitempty,dive,psychological"`
	Avatar                *string    `json:"avatar" validate:"omitempty,url"`
}

// Fields returns the partial update as a $set document containing only the
// fields present in the payload.
func (r *PatientUpdateRequest) Fields() bson.M {
	set := bson.M{}
	if r.FullName != nil {
		set["fullName"] = *r.FullName
	}
	if r.PhoneNumbers != nil {
		set["phoneNumbers"] = r.PhoneNumbers
	}
	if r.TitleJob != nil {
		set["titleJob"] = *r.TitleJob
	}
	if r.DateOfBirth != nil {
		set["dateOfBirth"] = r.DateOfBirth.Time
	}
	if r.Gender != nil {
		set["gender"] = *r.Gender
	}
	if r.MaterialStatus != nil {
		set["materialStatus"] = *r.MaterialStatus
	}
	if r.Nationality != nil {
		set["nationality"] = *r.Nationality
	}
	if r.Address != nil {
		set["address"] = r.Address
	}
	if r.Email != nil {
		set["email"] = *r.Email
	}
	if r.Pregnancy != nil {
		set["pregnancy"] = r.Pregnancy
	}
	if r.MenstrualPeriodStatus != nil {
		set["menstrualPeriodStatus"] = *r.MenstrualPeriodStatus
	}
	if r.Stature != nil {
		set["stature"] = *r.Stature
	}
	if r.BodyWeight != nil {
		set["bodyWeight"] = *r.BodyWeight
	}
	if r.BodyBuild != nil {
		set["bodyBuild"] = *r.BodyBuild
	}
	if r.GeneralHealth != nil {
		set["generalHealth"] = *r.GeneralHealth
	}
	if r.PhysiologicalStatus != nil {
		set["physiologicalStatus"] = r.PhysiologicalStatus
	}
	if r.Avatar != nil {
		set["avatar"] = *r.Avatar
	}
	return set
}
