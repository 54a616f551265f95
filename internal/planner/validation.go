package planner

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/Tiliavir/study-time-planner/internal/apperrors"
)

const (
	msgDateFormat = "Date must be in YYYY-MM-DD format with 2 digits for month and day"
	msgTimes      = "Times must be in HH:MM format and end time must be after start time"
	msgDuration   = "Duration and break time must be positive numbers"
	msgDayLength  = "Duration and break time cannot exceed 24 hours"
)

// fieldMessages maps input struct fields to the message shown when their
// validation fails.
var fieldMessages = map[string]string{
	"Name":            "Subject name is required",
	"ExamDate":        msgDateFormat,
	"Difficulty":      "Difficulty must be a number between 1 and 5",
	"PastScore":       "Past score must be a number between 0-100",
	"DailyStudyHours": "Daily study hours must be a positive number",
	"Subject":         "Subject is required",
	"Date":            msgDateFormat,
	"Start":           msgTimes,
	"End":             msgTimes,
	"WindowStart":     msgTimes,
	"WindowEnd":       msgTimes,
	"SessionHours":    msgDuration,
	"BreakHours":      msgDuration,
}

// check validates an input struct and converts the first failure into an
// ErrValidation with a readable message.
func (p *Planner) check(in any) error {
	err := p.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if verrs[0].Tag() == "lte" && fieldMessages[verrs[0].Field()] == msgDuration {
			return apperrors.Clone(apperrors.ErrValidation, msgDayLength)
		}
		if msg, ok := fieldMessages[verrs[0].Field()]; ok {
			return apperrors.Clone(apperrors.ErrValidation, msg)
		}
	}
	return apperrors.Wrap(err, apperrors.ErrValidation.Code, apperrors.ErrValidation.Message)
}

func invalid(msg string) error {
	return apperrors.Clone(apperrors.ErrValidation, msg)
}
