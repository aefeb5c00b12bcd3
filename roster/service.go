package roster

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/smartgrades/gradecore/cache"
	"github.com/smartgrades/gradecore/gradebook"
	"github.com/smartgrades/gradecore/grading"
	"github.com/smartgrades/gradecore/predict"
)

// Row is one student's fully computed line on a class sheet.
type Row struct {
	Student

	Aggregate  gradebook.StudentAggregate `json:"aggregate"`
	Prediction predict.Result             `json:"prediction"`
	Letter     grading.Letter             `json:"letter"`
	Band       grading.Band               `json:"band"`
	// ZScore is the display-formatted z-score ("1.22"), or "n/a" for
	// rosters with fewer than two students.
	ZScore string `json:"z_score"`
}

// Sheet is the computed view of one class roster: a row per student plus
// the class-wide analytics the rows were classified against. The embedded
// snapshot belongs to this sheet only; it is recomputed on every build and
// must not be reused once any score changes.
type Sheet struct {
	ClassID uuid.UUID         `json:"class_id"`
	Mode    grading.Mode      `json:"mode"`
	Rows    []Row             `json:"rows"`
	Class   grading.Analytics `json:"class"`
}

// Service owns the read path of the engine. It is explicitly constructed
// with its collaborators — no package-level state — so tests can run
// isolated instances with their own caches and clocks.
type Service struct {
	source   Source
	teachers cache.Store[[]Teacher]
	rosters  cache.Store[[]Student]
	target   float64
	log      zerolog.Logger
}

// NewService builds a Service. target is the default final percentage used
// for required-average scenarios; pass predict.DefaultTarget unless the
// deployment overrides it.
func NewService(
	source Source,
	teachers cache.Store[[]Teacher],
	rosters cache.Store[[]Student],
	target float64,
	log zerolog.Logger,
) *Service {
	return &Service{
		source:   source,
		teachers: teachers,
		rosters:  rosters,
		target:   target,
		log:      log.With().Str("component", "roster_service").Logger(),
	}
}

// Teachers returns the teacher roster, served from cache when fresh.
func (s *Service) Teachers(ctx context.Context) ([]Teacher, error) {
	return s.teachers.Get(ctx, TeacherRosterKey(), s.source.Teachers)
}

// ClassRoster returns the raw student roster for a class, served from cache
// when fresh.
func (s *Service) ClassRoster(ctx context.Context, classID uuid.UUID) ([]Student, error) {
	return s.rosters.Get(ctx, ClassRosterKey(classID), func(ctx context.Context) ([]Student, error) {
		return s.source.ClassRoster(ctx, classID)
	})
}

// ClassSheet builds the computed sheet for one class under the given
// grading mode: aggregate and predict per student, one statistics pass over
// the whole roster, then letter, band and z-score per student against that
// single snapshot.
func (s *Service) ClassSheet(ctx context.Context, classID uuid.UUID, mode grading.Mode) (*Sheet, error) {
	students, err := s.ClassRoster(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("load class roster: %w", err)
	}

	rows := make([]Row, len(students))
	predicted := make([]float64, len(students))

	for i, st := range students {
		agg := gradebook.Aggregate(st.Assessments)
		rows[i] = Row{
			Student:    st,
			Aggregate:  agg,
			Prediction: predict.Predict(agg, s.target),
		}
		predicted[i] = rows[i].Prediction.Predicted
	}

	analytics := grading.Analyze(predicted)
	policy := grading.SelectPolicy(mode, &analytics.Snapshot)

	for i := range rows {
		p := rows[i].Prediction.Predicted
		rows[i].Letter = policy.Classify(p)
		rows[i].Band = grading.ToBand(p)
		rows[i].ZScore = grading.FormatZScore(p, analytics.Snapshot)
	}

	s.log.Debug().
		Stringer("class_id", classID).
		Str("mode", string(mode)).
		Int("students", len(rows)).
		Msg("class sheet built")

	return &Sheet{
		ClassID: classID,
		Mode:    mode,
		Rows:    rows,
		Class:   analytics,
	}, nil
}

// InvalidateTeachers drops the cached teacher roster. Call it after any
// teacher create, update or delete.
func (s *Service) InvalidateTeachers(ctx context.Context) error {
	return s.teachers.Invalidate(ctx, TeacherRosterKey())
}

// InvalidateClass drops one class's cached roster. Call it after any
// mutation of the class, its enrollments, assessments or grades.
func (s *Service) InvalidateClass(ctx context.Context, classID uuid.UUID) error {
	return s.rosters.Invalidate(ctx, ClassRosterKey(classID))
}

// InvalidateAll drops every cached roster.
func (s *Service) InvalidateAll(ctx context.Context) error {
	if err := s.teachers.InvalidateAll(ctx); err != nil {
		return err
	}
	return s.rosters.InvalidateAll(ctx)
}
