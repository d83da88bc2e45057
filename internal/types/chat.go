package types

import "time"

type EditVerb string

const (
	EditVerbReplace EditVerb = "replace"
	EditVerbAdd     EditVerb = "add"
	EditVerbRemove  EditVerb = "remove"
	EditVerbEnhance EditVerb = "enhance"
	EditVerbModify  EditVerb = "modify"
)

// ChatIntent is the parsed form of a free-text edit request.
type ChatIntent struct {
	DayNumber       *int     `json:"dayNumber"`
	Verb            EditVerb `json:"intent"`
	Categories      []string `json:"categories"`
	OriginalMessage string   `json:"originalMessage"`
}

type ChatRequest struct {
	Message  string    `json:"message" validate:"required,min=1,max=1000" example:"Make day 2 more cultural"`
	TripData *TripPlan `json:"tripData" validate:"required"`
}

// TripChatRequest is the body of a chat edit bound to a stored trip.
type TripChatRequest struct {
	Message string `json:"message" validate:"required,min=1,max=1000" example:"Add food experiences to day 1"`
}

// ChatResult is what the interpreter returns for one message.
type ChatResult struct {
	Response          string     `json:"response"`
	DayModified       *int       `json:"dayModified"`
	UpdatedActivities []Activity `json:"updatedActivities"`
}

type ChatResponse struct {
	Success bool `json:"success"`
	ChatResult
	Trip      *Trip     `json:"trip,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
