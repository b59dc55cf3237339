package model

import "time"

type Course struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	Name        string     `json:"name" gorm:"not null;uniqueIndex"`
	Description string     `json:"description,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`

	Teachers []Teacher `json:"teachers,omitempty" gorm:"many2many:teacher_courses"`
	Students []Student `json:"students,omitempty" gorm:"many2many:student_courses"`

	Materials       []StudyMaterial `json:"materials,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	RecordedClasses []RecordedClass `json:"recorded_classes,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	LiveClasses     []LiveClass     `json:"live_classes,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Exams           []Exam          `json:"exams,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
