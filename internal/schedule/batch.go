package schedule

import "github.com/equinoterapia/clinica-api/internal/models"

// BatchEntry is one row of a bulk scheduling form. All entries in a batch
// share a single date.
type BatchEntry struct {
	PatientID      string
	ProfessionalID string
	HorseID        string
	Time           string
}

// BatchResult reports what a batch pass produced.
type BatchResult struct {
	Created []models.Session
	Skipped int
}

// BatchAdd validates and materialises a set of same-day candidates in one
// transaction-like pass. Each entry runs through the full validator against
// the store snapshot plus the entries already accepted earlier in the
// batch, so a batch cannot conflict with itself. Failing entries are
// skipped rather than aborting the pass; ids are assigned sequentially in
// input order of the accepted entries.
func BatchAdd(reg Registry, sessions []models.Session, date models.Day, entries []BatchEntry, dailyCap int) BatchResult {
	// Full slice expression so appends never scribble on the caller's
	// backing array.
	working := sessions[:len(sessions):len(sessions)]

	result := BatchResult{}
	for _, entry := range entries {
		cand := Candidate{
			PatientID:      entry.PatientID,
			ProfessionalID: entry.ProfessionalID,
			HorseID:        entry.HorseID,
			Date:           date,
			Time:           entry.Time,
		}
		if err := Validate(reg, working, cand, dailyCap, 0); err != nil {
			result.Skipped++
			continue
		}
		sess := BuildSession(reg, working, cand, 0)
		if sess == nil {
			result.Skipped++
			continue
		}
		result.Created = append(result.Created, *sess)
		working = append(working, *sess)
	}
	return result
}
