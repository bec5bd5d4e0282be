// Package validation applies the per-resource, per-operation schemas to
// request payloads. Declarative rules live in struct tags; the conditional
// rules whose outcome depends on a sibling field (the surgery discriminator,
// the pregnancy block, Egyptian addresses) are struct-level validations.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/clinicdesk/clinic-api/internal/models"
)

// enumRules maps a validation tag to its allowed value set.
var enumRules = map[string]models.Enum{
	"titlejob":       models.TitleJobEnum,
	"gender":         models.GenderEnum,
	"materialstatus": models.MaterialStatusEnum,
	"menstrual":      models.MenstrualEnum,
	"stature":        models.StatureEnum,
	"bodyweight":     models.BodyWeightEnum,
	"bodybuild":      models.BodyBuildEnum,
	"generalhealth":  models.GeneralHealthEnum,
	"psychological":  models.PhysiologicalStatusEnum,
	"bookingtype":    models.BookingTypeEnum,
	"bookingsource":  models.BookingSourceEnum,
	"bookingwhere":   models.BookingWhereEnum,
	"status":         models.StatusEnum,
	"surgerytype":    models.SurgeryTypeEnum,
	"spineplace":     models.SpinePlaceEnum,
	"painplace":      models.PainPlaceEnum,
	"getbetter":      models.GetBetterEnum,
	"surgeon":        models.SurgeonEnum,
	"surgerycountry": models.SurgeryCountryEnum,
	"role":           models.RoleEnum,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields under their wire names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	for tag, enum := range enumRules {
		allowed := enum
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return allowed.Contains(fl.Field().String())
		}); err != nil {
			panic(err)
		}
	}

	if err := v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		_, err := primitive.ObjectIDFromHex(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}

	v.RegisterStructValidation(patientCreateRules, models.PatientCreateRequest{})
	v.RegisterStructValidation(patientUpdateRules, models.PatientUpdateRequest{})
	v.RegisterStructValidation(addressPartRules, models.AddressPart{})
	v.RegisterStructValidation(surgeryCreateRules, models.SurgeryCreateRequest{})
	v.RegisterStructValidation(surgeryUpdateRules, models.SurgeryUpdateRequest{})

	return v
}

// The pregnancy sub-record is rejected, not merely ignored, unless the same
// payload identifies the patient as female.
func patientCreateRules(sl validator.StructLevel) {
	r := sl.Current().Interface().(models.PatientCreateRequest)
	if r.Pregnancy != nil && r.Gender != "female" {
		sl.ReportError(r.Pregnancy, "pregnancy", "Pregnancy", "forbidden_gender", "")
	}
}

func patientUpdateRules(sl validator.StructLevel) {
	r := sl.Current().Interface().(models.PatientUpdateRequest)
	if r.Pregnancy != nil && (r.Gender == nil || *r.Gender != "female") {
		sl.ReportError(r.Pregnancy, "pregnancy", "Pregnancy", "forbidden_gender", "")
	}
}

func addressPartRules(sl validator.StructLevel) {
	a := sl.Current().Interface().(models.AddressPart)
	if a.Country == "egypt" && a.Governrate == "" {
		sl.ReportError(a.Governrate, "governrate", "Governrate", "required_egypt", "")
	}
}

// Surgery discriminator: Spine Surgery requires place and painPlace and
// forbids name; Non-Spine Surgery requires name (min 3) and forbids both
// place fields.
func surgeryCreateRules(sl validator.StructLevel) {
	r := sl.Current().Interface().(models.SurgeryCreateRequest)
	switch r.Type {
	case "Spine Surgery":
		if r.Place == "" {
			sl.ReportError(r.Place, "place", "Place", "required_spine", "")
		}
		if r.PainPlace == "" {
			sl.ReportError(r.PainPlace, "painPlace", "PainPlace", "required_spine", "")
		}
		if r.Name != "" {
			sl.ReportError(r.Name, "name", "Name", "forbidden_spine", "")
		}
	case "Non-Spine Surgery":
		if r.Name == "" {
			sl.ReportError(r.Name, "name", "Name", "required_nonspine", "")
		} else if len(r.Name) < 3 {
			sl.ReportError(r.Name, "name", "Name", "min", "3")
		}
		if r.Place != "" {
			sl.ReportError(r.Place, "place", "Place", "forbidden_nonspine", "")
		}
		if r.PainPlace != "" {
			sl.ReportError(r.PainPlace, "painPlace", "PainPlace", "forbidden_nonspine", "")
		}
	}
}

// On update every field is optional, but touching a discriminated field
// without restating a matching type is rejected.
func surgeryUpdateRules(sl validator.StructLevel) {
	r := sl.Current().Interface().(models.SurgeryUpdateRequest)
	typ := ""
	if r.Type != nil {
		typ = *r.Type
	}
	if typ != "Non-Spine Surgery" && r.Name != nil {
		sl.ReportError(r.Name, "name", "Name", "forbidden_spine", "")
	}
	if typ != "Spine Surgery" {
		if r.Place != nil {
			sl.ReportError(r.Place, "place", "Place", "forbidden_nonspine", "")
		}
		if r.PainPlace != nil {
			sl.ReportError(r.PainPlace, "painPlace", "PainPlace", "forbidden_nonspine", "")
		}
	}
	if typ == "Non-Spine Surgery" && r.Name != nil && len(*r.Name) < 3 {
		sl.ReportError(r.Name, "name", "Name", "min", "3")
	}
}

// Error is a single schema violation: the first offending field and a
// human-readable reason.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Message }

// Struct validates a payload against its schema and returns the first
// violation, or nil.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &Error{Field: fe.Field(), Message: messageFor(fe)}
	}
	return err
}

// overrides carries the messages the API has always used for specific
// field violations.
var overrides = map[string]string{
	"fullName.required":     "Full name is required.",
	"fullName.min":          "Full name must be at least 10 characters long.",
	"phoneNumbers.required": "Phone numbers array is required.",
	"phoneNumbers.min":      "At least one phone number is required.",
	"phoneNumbers.max":      "Phone numbers must be an array of 1 to 3 numbers.",
	"patient.required":      "Patient ID is required",
	"patient.objectid":      "Patient must be a valid MongoDB ObjectId",
	"email.email":           "Please enter a Valid Email Address",
}

func messageFor(fe validator.FieldError) string {
	if msg, ok := overrides[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}

	if enum, ok := enumRules[fe.Tag()]; ok {
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), enum.String())
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "required_spine":
		return fmt.Sprintf("%s is required when type is Spine Surgery", fe.Field())
	case "required_nonspine":
		return fmt.Sprintf("%s is required when type is Non-Spine Surgery", fe.Field())
	case "required_egypt":
		return fmt.Sprintf("%s is required when country is egypt", fe.Field())
	case "forbidden_spine":
		return fmt.Sprintf("%s is not allowed unless type is Non-Spine Surgery", fe.Field())
	case "forbidden_nonspine":
		return fmt.Sprintf("%s is not allowed unless type is Spine Surgery", fe.Field())
	case "forbidden_gender":
		return fmt.Sprintf("%s is not allowed unless gender is female", fe.Field())
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("%s must contain at least %s items", fe.Field(), fe.Param())
		default:
			return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
		}
	case "max":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("%s must contain at most %s items", fe.Field(), fe.Param())
		default:
			return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
		}
	case "email":
		return "Please enter a Valid Email Address"
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "objectid":
		return fmt.Sprintf("%s must be a valid MongoDB ObjectId", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
