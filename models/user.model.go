package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ProfileImage string     `json:"profile_image" gorm:"default:''"`
	Name         string     `json:"name" gorm:"default:''"`
	Email        string     `json:"email" gorm:"unique;not null"`
	Mobile       string     `json:"mobile" gorm:"default:''"`
	Role         string     `json:"role" gorm:"default:'LEARNER'"` // LEARNER, TRAINER, ADMIN, SUPER-ADMIN
	Password     string     `json:"-" gorm:"not null"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	LastLogin    *time.Time `json:"last_login"`
	IsDeleted    bool       `json:"-" gorm:"default:false"`
}
