package model

import "time"

type Teacher struct {
	ID                uint   `gorm:"primarykey" json:"id"`
	Name              string `json:"name" gorm:"not null"`
	Email             string `json:"email" gorm:"not null;uniqueIndex"`
	Password          string `json:"-" gorm:"not null"`
	Qualifications    string `json:"qualifications" gorm:"not null"`
	Availability      string `json:"availability" gorm:"not null"`
	YearsOfExperience int    `json:"years_of_experience" gorm:"not null"`
	Contact           string `json:"contact" gorm:"not null"` // 10 digits
	Place             string `json:"place" gorm:"not null"`
	Photo             string `json:"photo" gorm:"default:'default.jpg'"`
	Status            string `json:"status" gorm:"default:'Active'"`

	Courses []Course `json:"courses,omitempty" gorm:"many2many:teacher_courses"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
