package unit

import (
	"time"

	"github.com/google/uuid"

	util "github.com/FelixFel1x/Notendashboard/internal/utils"
)

// Grade scale bounds. Lower is better: 1.0 is the best possible grade,
// 6.0 the worst.
const (
	GradeBest  = 1.0
	GradeWorst = 6.0
)

// Unit is a gradable course component (a module in ECTS terms). A nil Grade
// means the unit has not been graded yet; it then carries no weight in any
// average.
type Unit struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TermID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"term_id"`
	Name        string          `gorm:"type:text;not null" json:"name"`
	Credits     int             `gorm:"not null" json:"credits"`
	Grade       *float64        `json:"grade"`
	CompletedOn *util.LocalDate `gorm:"type:date" json:"completed_on,omitempty"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
