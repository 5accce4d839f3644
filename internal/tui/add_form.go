package tui

import (
	"errors"

	"github.com/colonyops/taskdash/internal/core/task"
	"github.com/colonyops/taskdash/internal/core/validate"
	"github.com/colonyops/taskdash/internal/tui/components/form"
)

// Add task form field keys. The time keys match task.TimeError.Field.
const (
	fieldName              = "name"
	fieldPriority          = "priority"
	fieldStartTime         = task.FieldStartTime
	fieldEndTime           = task.FieldEndTime
	fieldPeople            = "people"
	fieldTools             = "tools"
	fieldResources         = "resources"
	fieldResearchTime      = "research_time"
	fieldResearchSources   = "research_sources"
	fieldResearchCompleted = "research_completed"
	fieldResearchNeeded    = "research_needed"
	fieldRoadblockTime     = "roadblock_time"
	fieldRoadblocks        = "roadblocks"
	fieldAccomplishments   = "accomplishments"
	fieldErrorRecognition  = "error_recognition"
	fieldAdditionalTasks   = "additional_tasks"
	fieldExpenses          = "expenses"
)

// newAddTaskDialog builds the task entry form with defaultPriority preselected.
func newAddTaskDialog(defaultPriority task.Priority) *form.Dialog {
	timeRule := form.FieldValidation{Check: validate.TimeOfDay}

	fields := []form.Field{
		form.NewTextField(fieldName, "Task Name", "What did you work on?", "").
			WithValidation(form.FieldValidation{Required: true, Check: validate.TaskName}),
		form.NewSelectFormField(fieldPriority, "Priority", task.PriorityNames(), defaultPriority.String()),
		form.NewTextField(fieldStartTime, "Start Time", "HH:MM", "").WithValidation(timeRule),
		form.NewTextField(fieldEndTime, "End Time", "HH:MM", "").WithValidation(timeRule),
		form.NewTextAreaField(fieldPeople, "People Involved", "", ""),
		form.NewTextAreaField(fieldTools, "Tools Used", "", ""),
		form.NewTextAreaField(fieldResources, "Resources", "", ""),
		form.NewTextAreaField(fieldResearchTime, "Research Time", "", ""),
		form.NewTextAreaField(fieldResearchSources, "Research Sources", "", ""),
		form.NewTextAreaField(fieldResearchCompleted, "Research Completed", "", ""),
		form.NewTextAreaField(fieldResearchNeeded, "Research Needed", "", ""),
		form.NewTextAreaField(fieldRoadblockTime, "Roadblock Time", "", ""),
		form.NewTextAreaField(fieldRoadblocks, "Roadblocks", "", ""),
		form.NewTextAreaField(fieldAccomplishments, "Accomplishments", "", ""),
		form.NewTextAreaField(fieldErrorRecognition, "Error Recognition", "", ""),
		form.NewTextAreaField(fieldAdditionalTasks, "Additional Tasks", "", ""),
		form.NewTextAreaField(fieldExpenses, "Itemized Expenses (One per line)", "", ""),
	}

	return form.NewDialog("Add Task", fields)
}

// inputFromDialog snapshots the form into a fresh task.Input.
func inputFromDialog(d *form.Dialog) task.Input {
	return task.Input{
		Name:              d.String(fieldName),
		Priority:          d.String(fieldPriority),
		StartTime:         d.String(fieldStartTime),
		EndTime:           d.String(fieldEndTime),
		ResearchTime:      d.String(fieldResearchTime),
		RoadblockTime:     d.String(fieldRoadblockTime),
		People:            d.String(fieldPeople),
		Tools:             d.String(fieldTools),
		Resources:         d.String(fieldResources),
		ResearchSources:   d.String(fieldResearchSources),
		Roadblocks:        d.String(fieldRoadblocks),
		ResearchCompleted: d.String(fieldResearchCompleted),
		ResearchNeeded:    d.String(fieldResearchNeeded),
		Accomplishments:   d.String(fieldAccomplishments),
		ErrorRecognition:  d.String(fieldErrorRecognition),
		AdditionalTasks:   d.String(fieldAdditionalTasks),
		Expenses:          d.String(fieldExpenses),
	}
}

// showSubmitError places a rejected submission's error under the field that
// caused it. It reports false when err does not belong to a field.
func showSubmitError(d *form.Dialog, err error) bool {
	var timeErr *task.TimeError
	switch {
	case errors.As(err, &timeErr):
		msg := "required"
		if timeErr.Value != "" {
			msg = "use HH:MM"
		}
		return d.SetFieldError(timeErr.Field, msg)
	case errors.Is(err, task.ErrNameRequired):
		return d.SetFieldError(fieldName, "required")
	case errors.Is(err, task.ErrInvalidPriority):
		return d.SetFieldError(fieldPriority, err.Error())
	default:
		return false
	}
}
