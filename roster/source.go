// Package roster wires the engine together: it pulls teacher and class
// records through the read-through cache, runs aggregation and prediction
// per student, computes the class snapshot once, and classifies every
// student against it.
package roster

import (
	"context"

	"github.com/google/uuid"
	"github.com/smartgrades/gradecore/gradebook"
)

// Teacher is one teacher record as supplied by the record store.
type Teacher struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email,omitempty"`
}

// Student is one enrolled student together with the assessment rows the
// engine aggregates. EnrollmentID identifies the (class, student) pair — a
// student enrolled in two classes appears as two independent records.
type Student struct {
	EnrollmentID uuid.UUID              `json:"enrollment_id"`
	StudentID    string                 `json:"student_id"`
	FirstName    string                 `json:"first_name"`
	LastName     string                 `json:"last_name"`
	Assessments  []gradebook.Assessment `json:"assessments"`
}

// Source is the external record-retrieval collaborator. Implementations
// live outside this module (a database layer, an HTTP client, a fixture in
// tests); the engine only ever reads through it.
type Source interface {
	// Teachers returns the full teacher roster.
	Teachers(ctx context.Context) ([]Teacher, error)

	// ClassRoster returns every student enrolled in a class, each carrying
	// their assessment rows for that class.
	ClassRoster(ctx context.Context, classID uuid.UUID) ([]Student, error)
}
