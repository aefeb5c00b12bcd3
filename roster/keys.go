package roster

import (
	"fmt"

	"github.com/google/uuid"
)

// Cache keys are independent per entity: invalidating one class roster
// never touches the teacher roster or any other class.

// TeacherRosterKey returns the cache key for the full teacher roster.
func TeacherRosterKey() string {
	return "roster:teachers"
}

// ClassRosterKey returns the cache key for one class's student roster.
func ClassRosterKey(classID uuid.UUID) string {
	return fmt.Sprintf("roster:class:%s", classID)
}
