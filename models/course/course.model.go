package course

import "gorm.io/gorm"

// Course statuses. Only published courses accept enrollments.
const (
	CourseDraft     = "DRAFT"
	CoursePublished = "PUBLISHED"
)

// Course represents a learning course
type Course struct {
	gorm.Model
	Title        string `json:"title"`
	Description  string `json:"description"`
	OwnerID      uint   `json:"owner_id" gorm:"index;not null"`  // trainer who authored the course
	Status       string `json:"status" gorm:"default:'DRAFT'"`   // DRAFT, PUBLISHED
	Duration     int64  `json:"duration" gorm:"default:0"`       // duration in hours
	ThumbnailURL string `json:"thumbnail_url"`
	IsDeleted    bool   `json:"-" gorm:"default:false"`
}
