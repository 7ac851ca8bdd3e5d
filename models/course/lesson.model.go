package course

import "gorm.io/gorm"

// Lesson content types.
const (
	LessonVideo = "VIDEO"
	LessonPDF   = "PDF"
	LessonLink  = "LINK"
)

// Lesson represents one unit of content within a module. Lesson IDs are the
// keys that progress records are stored against, so they stay stable across
// course edits.
type Lesson struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"index;not null"`
	ModuleID   uint   `json:"module_id" gorm:"index;not null"`
	Title      string `json:"title"`
	Type       string `json:"type" gorm:"default:'VIDEO'"` // VIDEO, PDF, LINK
	ContentURL string `json:"content_url"`
	Duration   int    `json:"duration" gorm:"default:0"` // duration in minutes
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `json:"-" gorm:"default:false"`
}
