package term

import (
	"time"

	"github.com/google/uuid"

	"github.com/FelixFel1x/Notendashboard/internal/unit"
	util "github.com/FelixFel1x/Notendashboard/internal/utils"
)

// Term is an academic period grouping gradable units. TargetDate is kept as
// the raw string entered by the student so that an invalid value survives a
// round trip and can be reported during evaluation instead of being lost.
type Term struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string          `gorm:"type:text;not null" json:"name"`
	StartDate   *util.LocalDate `gorm:"type:date" json:"start_date,omitempty"`
	TargetDate  string          `gorm:"type:text" json:"target_date"`
	TargetGrade float64         `gorm:"not null" json:"target_grade"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	Units []unit.Unit `gorm:"foreignKey:TermID;constraint:OnDelete:CASCADE" json:"units"`
}
