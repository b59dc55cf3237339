package service

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/trannghia/learnhub/internal/dto"
	"github.com/trannghia/learnhub/internal/model"
	"github.com/trannghia/learnhub/internal/repository"
	"gorm.io/gorm"
)

type AttendanceService interface {
	// MarkToday records today's status for each listed student. Marking a
	// student twice on the same day overwrites the earlier status.
	MarkToday(teacherID uint, req dto.AttendanceMarkRequest) error
	Summary(studentID uint) (*dto.AttendanceSummaryResponse, error)
}

type attendanceService struct {
	attendanceRepo repository.AttendanceRepository
	studentRepo    repository.StudentRepository
}

func NewAttendanceService(attendanceRepo repository.AttendanceRepository, studentRepo repository.StudentRepository) AttendanceService {
	return &attendanceService{attendanceRepo: attendanceRepo, studentRepo: studentRepo}
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *attendanceService) MarkToday(teacherID uint, req dto.AttendanceMarkRequest) error {
	date := today()
	for _, entry := range req.Entries {
		if _, err := s.studentRepo.FindByID(entry.StudentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Warn().Uint("student_id", entry.StudentID).Msg("Attendance entry for unknown student; skipping")
				continue
			}
			return fmt.Errorf("failed to load student %d: %w", entry.StudentID, err)
		}

		existing, err := s.attendanceRepo.FindByStudentAndDate(entry.StudentID, date)
		switch {
		case err == nil:
			existing.Status = entry.Status
			existing.TeacherID = teacherID
			if err := s.attendanceRepo.Update(existing); err != nil {
				log.Error().Err(err).Uint("student_id", entry.StudentID).Msg("Failed to update attendance")
				return fmt.Errorf("failed to update attendance: %w", err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			record := model.Attendance{
				StudentID: entry.StudentID,
				TeacherID: teacherID,
				Date:      date,
				Status:    entry.Status,
			}
			if err := s.attendanceRepo.Create(&record); err != nil {
				log.Error().Err(err).Uint("student_id", entry.StudentID).Msg("Failed to create attendance")
				return fmt.Errorf("failed to create attendance: %w", err)
			}
		default:
			return fmt.Errorf("failed to look up attendance: %w", err)
		}
	}
	log.Info().Uint("teacher_id", teacherID).Int("entries", len(req.Entries)).Msg("Attendance marked")
	return nil
}

// Summary reports the full attendance history plus the percentage of days
// marked present. No rows yields 0 percent, not a division by zero.
func (s *attendanceService) Summary(studentID uint) (*dto.AttendanceSummaryResponse, error) {
	records, err := s.attendanceRepo.FindByStudent(studentID)
	if err != nil {
		log.Error().Err(err).Uint("student_id", studentID).Msg("Failed to load attendance")
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}

	resp := dto.AttendanceSummaryResponse{
		Records:   make([]dto.AttendanceRecord, 0, len(records)),
		TotalDays: len(records),
	}
	present := 0
	for _, r := range records {
		if strings.EqualFold(r.Status, "present") {
			present++
		}
		resp.Records = append(resp.Records, dto.AttendanceRecord{
			Date:   r.Date.Format("02-01-2006"),
			Status: r.Status,
		})
	}
	if len(records) > 0 {
		resp.Percentage = math.Round(float64(present)/float64(len(records))*100*100) / 100
	}
	return &resp, nil
}
