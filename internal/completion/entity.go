package completion

import (
	"time"

	"github.com/google/uuid"
)

// TermCompletion records that a term's completion notification has been
// raised. The flag is terminal: it is set once and only removed when the
// term itself is deleted.
type TermCompletion struct {
	TermID      uuid.UUID  `gorm:"type:uuid;primaryKey" json:"term_id"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
}
