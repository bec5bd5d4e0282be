package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/clinicdesk/clinic-api/internal/models"
)

func TestBookingsWorkbook(t *testing.T) {
	patientID := primitive.NewObjectID()
	bookings := []models.Booking{
		{
			ID:             primitive.NewObjectID(),
			BookingName:    "Omar Khaled",
			PhoneNumbers:   []string{"01007654321", "01111111111"},
			DateOfBooking:  time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC),
			TypeOfBooking:  "checkup",
			WhereOfBooking: "inclinic",
			Status:         "pending",
			Patient:        &patientID,
			PatientDetails: &models.PatientSummary{ID: patientID, FullName: "Ahmed Mohamed Mostafa"},
		},
	}

	f, err := BookingsWorkbook(bookings)
	require.NoError(t, err)
	defer f.Close()

	head, err := f.GetCellValue("Sheet1", "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", head)

	name, err := f.GetCellValue("Sheet1", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Omar Khaled", name)

	phones, err := f.GetCellValue("Sheet1", "C2")
	require.NoError(t, err)
	assert.Equal(t, "01007654321, 01111111111", phones)

	// An expanded patient exports the name, not the raw identifier.
	patient, err := f.GetCellValue("Sheet1", "J2")
	require.NoError(t, err)
	assert.Equal(t, "Ahmed Mohamed Mostafa", patient)
}

func TestPatientsWorkbook(t *testing.T) {
	dob := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
	patients := []models.Patient{
		{
			ID:           primitive.NewObjectID(),
			FullName:     "Ahmed Mohamed Mostafa",
			PhoneNumbers: []string{"01001234567"},
			Gender:       "male",
			DateOfBirth:  &dob,
		},
	}

	f, err := PatientsWorkbook(patients)
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("Sheet1", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Ahmed Mohamed Mostafa", name)

	birth, err := f.GetCellValue("Sheet1", "E2")
	require.NoError(t, err)
	assert.Equal(t, "1990-06-15", birth)
}

func TestWorkbooksHandleEmptyInput(t *testing.T) {
	f, err := BookingsWorkbook(nil)
	require.NoError(t, err)
	f.Close()

	f, err = PatientsWorkbook(nil)
	require.NoError(t, err)
	f.Close()
}
