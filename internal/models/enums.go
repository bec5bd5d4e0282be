package models

import "strings"

// Enum is a fixed set of permitted string values for a field. The sets are
// package-level constants in spirit: shared by reference, never mutated.
type Enum []string

// Contains reports whether v is one of the allowed values.
func (e Enum) Contains(v string) bool {
	for _, allowed := range e {
		if allowed == v {
			return true
		}
	}
	return false
}

// String joins the allowed values for use in validation messages.
func (e Enum) String() string {
	return strings.Join(e, ", ")
}

// Patient enums.
var (
	TitleJobEnum       = Enum{"doctor", "engineer", "student"}
	GenderEnum         = Enum{"male", "female"}
	MaterialStatusEnum = Enum{"single", "married", "divorced", "widow"}
	MenstrualEnum      = Enum{"regular", "nonRegular"}

	StatureEnum = Enum{
		"Dwarf stature (--)",
		"Short stature (-)",
		"Average stature",
		"Tall stature (+)",
		"Giant stature (++)",
	}
	BodyWeightEnum = Enum{
		"Skinny Thin (--)",
		"Under weight (-)",
		"Average weight",
		"Over weight (+)",
		"Obese / Fat (++)",
		"Morbid Obesity (+++)",
	}
	BodyBuildEnum = Enum{
		"Meager body build (--)",
		"Weak body build (-)",
		"Average body build",
		"Firm body build (+)",
		"Athlete body build (++)",
	}
	GeneralHealthEnum = Enum{
		"Cachectic health (--)",
		"Sick health (-)",
		"Average health",
		"Vital & Active health (+)",
	}
	PhysiologicalStatusEnum = Enum{
		"Arrogant",
		"Bipolar Manic",
		"Confident",
		"Depressed",
		"Diffident",
		"Hesitant",
		"Obsessed (OCD)",
	}
)

// Booking enums.
var (
	BookingTypeEnum   = Enum{"checkup", "consultation", "follow up"}
	BookingSourceEnum = Enum{"Vezeeta", "Friend Recommendation", "Facebook", "Other"}
	BookingWhereEnum  = Enum{"inclinic", "online"}
	StatusEnum        = Enum{"pending", "completed", "cancelled"}
)

// Surgery enums.
var (
	SurgeryTypeEnum = Enum{"Spine Surgery", "Non-Spine Surgery"}
	SpinePlaceEnum  = Enum{"Cervical", "Thoracic", "Lumbar", "Sacral", "Coccyx"}
	PainPlaceEnum   = Enum{
		"Neck",
		"Upper Back",
		"Lower Back",
		"Left Arm",
		"Right Arm",
		"Left Leg",
		"Right Leg",
	}
	GetBetterEnum      = Enum{"Yes", "No", "Maybe"}
	SurgeonEnum        = Enum{"Professor", "Consultant", "Specialist", "Other"}
	SurgeryCountryEnum = Enum{"Egypt", "Saudi Arabia", "UAE", "Kuwait", "Other"}
)

// User enums.
var (
	RoleEnum = Enum{"superAdmin", "admin", "assistant"}
)
