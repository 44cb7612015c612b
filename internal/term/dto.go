package term

import (
	util "github.com/FelixFel1x/Notendashboard/internal/utils"
)

type CreateTermDTO struct {
	Name        string          `json:"name"`
	StartDate   *util.LocalDate `json:"start_date"`
	TargetDate  *string         `json:"target_date"`
	TargetGrade *float64        `json:"target_grade"`
}

type UpdateTermDTO struct {
	Name      *string         `json:"name"`
	StartDate *util.LocalDate `json:"start_date"`
}

type UpdateTermTargetsDTO struct {
	TargetDate  string  `json:"target_date"`
	TargetGrade float64 `json:"target_grade"`
}
