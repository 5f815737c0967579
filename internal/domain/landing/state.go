package landing

import (
	"github.com/learnify/learnify-ui/internal/domain/course"
	"github.com/learnify/learnify-ui/internal/domain/session"
)

// State is the per-page-load view state: the session flag and the course snapshot.
// Both are rebuilt from scratch on every load.
type State struct {
	Session session.Context
	Courses []course.Course
}
