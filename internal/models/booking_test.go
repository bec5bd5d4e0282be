package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingCreateDefaults(t *testing.T) {
	d, err := ParseDate("2024-01-05T09:00")
	require.NoError(t, err)

	req := BookingCreateRequest{
		BookingName:   "Omar Khaled",
		PhoneNumbers:  []string{"01007654321"},
		DateOfBooking: &d,
		TypeOfBooking: "checkup",
	}
	b := req.ToBooking()

	assert.Equal(t, "inclinic", b.WhereOfBooking)
	assert.Equal(t, "pending", b.Status)
	assert.False(t, b.IsConfirmed)
	assert.Nil(t, b.Patient)

	confirmed := true
	req.IsConfirmed = &confirmed
	req.WhereOfBooking = "online"
	req.Patient = "64a1f0c2e1b2c3d4e5f60718"
	b = req.ToBooking()
	assert.True(t, b.IsConfirmed)
	assert.Equal(t, "online", b.WhereOfBooking)
	require.NotNil(t, b.Patient)
	assert.Equal(t, "64a1f0c2e1b2c3d4e5f60718", b.Patient.Hex())
}

func TestSurgeryCreateDefaults(t *testing.T) {
	d, err := ParseDate("2024-03-10")
	require.NoError(t, err)

	req := SurgeryCreateRequest{
		Type:      "Spine Surgery",
		Place:     "Lumbar",
		PainPlace: "Lower Back",
		Date:      &d,
		Patient:   "64a1f0c2e1b2c3d4e5f60718",
	}
	s := req.ToSurgery()

	assert.Equal(t, "Maybe", s.GetBetter)
	assert.Equal(t, "Other", s.Surgeon)
	assert.Equal(t, "Egypt", s.Country)
	assert.Equal(t, "pending", s.Status)
	assert.False(t, s.Combinations)
	assert.False(t, s.Pain)
	assert.Equal(t, "64a1f0c2e1b2c3d4e5f60718", s.Patient.Hex())
}
