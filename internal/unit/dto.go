package unit

import (
	util "github.com/FelixFel1x/Notendashboard/internal/utils"
)

type CreateUnitDTO struct {
	Name        string          `json:"name"`
	Credits     int             `json:"credits"`
	Grade       *float64        `json:"grade"`
	CompletedOn *util.LocalDate `json:"completed_on"`
}

type UpdateUnitDTO struct {
	Name        *string         `json:"name"`
	Credits     *int            `json:"credits"`
	Grade       *float64        `json:"grade"`
	ClearGrade  bool            `json:"clear_grade"`
	CompletedOn *util.LocalDate `json:"completed_on"`
}
