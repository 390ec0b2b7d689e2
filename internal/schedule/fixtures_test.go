package schedule

import "github.com/equinoterapia/clinica-api/internal/models"

func testRegistry() Registry {
	return Registry{
		Patients: []models.Patient{
			{ID: 1, Name: "Juan", LastName: "Pérez"},
			{ID: 2, Name: "María", LastName: "González"},
			{ID: 3, Name: "Diego", LastName: "Martínez"},
		},
		Professionals: []models.Professional{
			{ID: 1, Name: "Ana", LastName: "Silva"},
			{ID: 2, Name: "Carlos", LastName: "Rodríguez"},
		},
		Horses: []models.Horse{
			{ID: 1, Name: "Luna", Availability: true},
			{ID: 2, Name: "Trueno", Availability: true},
			{ID: 3, Name: "Estrella", Availability: true},
			{ID: 4, Name: "Relámpago", Availability: false},
		},
	}
}

func testSession(id int, date, timeSlot string, patientID, professionalID, horseID int) models.Session {
	return models.Session{
		ID:             id,
		Date:           models.Day(date),
		Time:           timeSlot,
		PatientID:      patientID,
		ProfessionalID: professionalID,
		HorseID:        horseID,
	}
}
