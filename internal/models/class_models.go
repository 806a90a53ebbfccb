package models

// Class is a scheduled offering taught by a trainer over a date range.
type Class struct {
	ID          int64     `json:"classId" db:"id"`
	TrainerID   int64     `json:"trainerId" db:"trainer_id"`
	ClassType   string    `json:"classType" db:"class_type" binding:"required"`
	Title       string    `json:"title" db:"title" binding:"required"`
	Description string    `json:"description" db:"description" binding:"required"`
	Location    string    `json:"location" db:"location" binding:"required"`
	StartTime   TimeOfDay `json:"startTime" db:"start_time"`
	EndTime     TimeOfDay `json:"endTime" db:"end_time"`
	StartDate   Date      `json:"startDate" db:"start_date"`
	EndDate     Date      `json:"endDate" db:"end_date"`
	MaxCapacity int       `json:"maxCapacity" db:"max_capacity"`
	Price       float64   `json:"price" db:"price"`
	Category    *string   `json:"category" db:"category"`
}
