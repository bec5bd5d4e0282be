// Package export renders entity listings as Excel workbooks for the
// protected download routes.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/clinicdesk/clinic-api/internal/models"
)

const sheet = "Sheet1"

func writeRows(f *excelize.File, header []interface{}, rows [][]interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// BookingsWorkbook builds a workbook with one row per booking.
func BookingsWorkbook(bookings []models.Booking) (*excelize.File, error) {
	f := excelize.NewFile()

	header := []interface{}{
		"ID", "Name", "Phone Numbers", "Date", "Type", "Source",
		"Location", "Confirmed", "Status", "Patient",
	}
	rows := make([][]interface{}, 0, len(bookings))
	for _, b := range bookings {
		patient := ""
		if b.PatientDetails != nil {
			patient = b.PatientDetails.FullName
		} else if b.Patient != nil {
			patient = b.Patient.Hex()
		}
		rows = append(rows, []interface{}{
			b.ID.Hex(),
			b.BookingName,
			strings.Join(b.PhoneNumbers, ", "),
			b.DateOfBooking.Format(time.RFC3339),
			b.TypeOfBooking,
			b.SourceOfBooking,
			b.WhereOfBooking,
			b.IsConfirmed,
			b.Status,
			patient,
		})
	}

	if err := writeRows(f, header, rows); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// PatientsWorkbook builds a workbook with one row per patient.
func PatientsWorkbook(patients []models.Patient) (*excelize.File, error) {
	f := excelize.NewFile()

	header := []interface{}{
		"ID", "Full Name", "Phone Numbers", "Gender", "Date of Birth",
		"Nationality", "Email", "Created At",
	}
	rows := make([][]interface{}, 0, len(patients))
	for _, p := range patients {
		dob := ""
		if p.DateOfBirth != nil {
			dob = p.DateOfBirth.Format("2006-01-02")
		}
		rows = append(rows, []interface{}{
			p.ID.Hex(),
			p.FullName,
			strings.Join(p.PhoneNumbers, ", "),
			p.Gender,
			dob,
			p.Nationality,
			p.Email,
			p.CreatedAt.Format(time.RFC3339),
		})
	}

	if err := writeRows(f, header, rows); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}
