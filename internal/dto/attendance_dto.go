package dto

type AttendanceEntry struct {
	StudentID uint   `json:"student_id" binding:"required"`
	Status    string `json:"status" binding:"required"`
}

type AttendanceMarkRequest struct {
	Entries []AttendanceEntry `json:"entries" binding:"required,min=1,dive"`
}

type AttendanceRecord struct {
	Date   string `json:"date"` // "02-01-2006"
	Status string `json:"status"`
}

type AttendanceSummaryResponse struct {
	Records    []AttendanceRecord `json:"records"`
	TotalDays  int                `json:"total_days"`
	Percentage float64            `json:"percentage"` // 0..100, two decimals
}
