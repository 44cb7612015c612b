package evaluation

import "time"

// Assumed durations of the windows ending at the respective target dates.
const (
	termWindow    = 180 * 24 * time.Hour
	programWindow = 3 * 365 * 24 * time.Hour
)

const (
	msgTermNoGrades   = "There are no grades recorded in this term yet."
	msgTermOnTrack    = "You are well on your way to reaching your goal!"
	msgTermEffort     = "You will need to put in more effort to reach your target grade."
	msgTermTimeUp     = "Attention: time for this term is running out!"
	msgProgramNoGrade = "There are no grades yet to compute your overall progress."
	msgProgramOnTrack = "You are well on your way to reaching your overall goal!"
	msgProgramEffort  = "You will need to put in more effort to reach your overall target grade."
	msgProgramTimeUp  = "Attention: time for your program is running out!"
	msgTimeCheckError = "The time progress could not be computed from the target date."
)

type TermAnnotation struct {
	Average        *float64       `json:"average"`
	Message        string         `json:"message"`
	Classification Classification `json:"classification"`
	Color          string         `json:"color"`
}

type ProgramAnnotation struct {
	Average         *float64       `json:"average"`
	Message         string         `json:"message"`
	Classification  Classification `json:"classification"`
	Color           string         `json:"color"`
	PercentComplete int            `json:"percent_complete"`
}

// EvaluateTerm derives the goal verdict for one term from its weighted
// average. The time check only applies once at least one grade exists.
func EvaluateTerm(term Term, average *float64, now time.Time) TermAnnotation {
	var message string
	var class Classification

	if average == nil {
		class = AT_RISK
		message = msgTermNoGrades
	} else {
		if *average <= term.TargetGrade {
			class = ACHIEVED
			message = msgTermOnTrack
		} else {
			class = AT_RISK
			message = msgTermEffort
		}
		message, class = applyTimeCheck(message, class, term.TargetDate, termWindow, now, msgTermTimeUp)
	}

	return TermAnnotation{
		Average:        average,
		Message:        message,
		Classification: class,
		Color:          class.Color(),
	}
}

// EvaluateProgram derives the verdict against the program-wide goal. The
// percentage is a grade ratio (target over actual), not a time ratio: it
// expresses how close the current average is to the target grade.
func EvaluateProgram(goal ProgramGoal, average *float64, now time.Time) ProgramAnnotation {
	var message string
	var class Classification
	percent := 0

	if average == nil {
		class = AT_RISK
		message = msgProgramNoGrade
	} else {
		if *average <= goal.TargetGrade {
			class = ACHIEVED
			message = msgProgramOnTrack
			percent = 100
		} else {
			class = AT_RISK
			message = msgProgramEffort
			if *average > 0 {
				percent = int(goal.TargetGrade / *average * 100)
			}
		}
		message, class = applyTimeCheck(message, class, goal.TargetDate, programWindow, now, msgProgramTimeUp)
	}

	return ProgramAnnotation{
		Average:         average,
		Message:         message,
		Classification:  class,
		Color:           class.Color(),
		PercentComplete: percent,
	}
}

// applyTimeCheck escalates the verdict to MISSED once more than the whole
// window has elapsed, the window being assumed to end at the target date.
// A malformed date also escalates, but is reported as such; an absent date
// imposes no time constraint.
func applyTimeCheck(message string, class Classification, target Date, window time.Duration, now time.Time, warning string) (string, Classification) {
	if target.Malformed {
		return message + " " + msgTimeCheckError, MISSED
	}
	if !target.Valid {
		return message, class
	}

	start := target.Time.Add(-window)
	if now.Sub(start) > window {
		return message + " " + warning, MISSED
	}
	return message, class
}
