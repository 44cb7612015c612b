package programgoal

type UpdateProgramGoalDTO struct {
	TargetDate  string  `json:"target_date"`
	TargetGrade float64 `json:"target_grade"`
}
