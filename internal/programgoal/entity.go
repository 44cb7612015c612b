package programgoal

import "time"

// ProgramGoal is the single program-wide target. At most one row exists;
// when none does, the service answers with the default goal instead. The
// target date is stored exactly as entered, the same as on terms.
type ProgramGoal struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	TargetDate  string    `gorm:"type:text" json:"target_date"`
	TargetGrade float64   `gorm:"not null" json:"target_grade"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
