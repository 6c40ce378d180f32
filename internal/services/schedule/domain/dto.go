package domain

// Instants on the wire are naive wall clock values, 2006-01-02T15:04:05
// Inputs also accept a space separator, minute precision and RFC 3339 offsets

// ConflictInput asks whether any user is busy during [start, end)
// start and end are not format checked here, unparseable bounds yield an
// unchecked report
type ConflictInput struct {
	UserIDs []UserID `json:"user_ids" validate:"max=100" swaggertype:"array,string" example:"42,17"`
	Start   string   `json:"start" example:"2025-01-01T10:30:00"`
	End     string   `json:"end" example:"2025-01-01T11:30:00"`
}

// Span is a half open [start, end) interval on the wire
type Span struct {
	Start string `json:"start" example:"2025-01-01T10:00:00"`
	End   string `json:"end" example:"2025-01-01T11:00:00"`
}

// Conflict is one occurrence that overlaps the candidate
type Conflict struct {
	UserID  UserID `json:"user_id" swaggertype:"string" example:"42"`
	EventID int64  `json:"event_id" example:"1001"`
	Span
}

// ConflictReport answers a ConflictInput
// Checked is false when the candidate could not be evaluated, callers must
// not read an unchecked report as free
type ConflictReport struct {
	Checked   bool       `json:"checked" example:"true"`
	Busy      bool       `json:"busy" example:"true"`
	Conflicts []Conflict `json:"conflicts"`
}

// AvailabilityInput asks for common bookable slots
type AvailabilityInput struct {
	UserIDs         []UserID `json:"user_ids" validate:"required,min=1,max=100,dive,required" swaggertype:"array,string" example:"42,17"`
	DurationMinutes int      `json:"duration_minutes" validate:"required,min=1,max=10080" example:"30"`
	Start           string   `json:"start" validate:"required,instant" example:"2025-01-06T09:00:00"`
	End             string   `json:"end" validate:"required,instant" example:"2025-01-06T17:00:00"`
	Mode            string   `json:"mode,omitempty" validate:"omitempty,oneof=earliest packed" example:"earliest"`
}

// AvailabilityReport lists candidate slots in chronological order
// Truncated means packed output hit the slot cap and later slots were dropped
type AvailabilityReport struct {
	Mode      string `json:"mode" example:"earliest"`
	Slots     []Span `json:"slots"`
	Truncated bool   `json:"truncated" example:"false"`
}

// BusyInput asks for merged busy and free windows per user
type BusyInput struct {
	UserIDs []UserID `json:"user_ids" validate:"required,min=1,max=100,dive,required" swaggertype:"array,string" example:"42,17"`
	Start   string   `json:"start" validate:"required,instant" example:"2025-01-06T00:00:00"`
	End     string   `json:"end" validate:"required,instant" example:"2025-01-13T00:00:00"`
}

// UserBusy is the free/busy view of one user
type UserBusy struct {
	UserID UserID `json:"user_id" swaggertype:"string" example:"42"`
	Busy   []Span `json:"busy"`
	Free   []Span `json:"free"`
}

// WindowQuery is a query string window for per user reads
type WindowQuery struct {
	Start string `json:"start" validate:"required,instant" example:"2025-01-01T00:00:00"`
	End   string `json:"end" validate:"required,instant" example:"2025-02-01T00:00:00"`
}

// OccurrenceRow is one expanded occurrence
type OccurrenceRow struct {
	EventID int64 `json:"event_id" example:"1001"`
	Span
}

// OccurrenceReport lists a user's occurrences in a window
// Truncated is set when a series hit the expansion cap before the window end
type OccurrenceReport struct {
	UserID      UserID          `json:"user_id" swaggertype:"string" example:"42"`
	Occurrences []OccurrenceRow `json:"occurrences"`
	Truncated   bool            `json:"truncated" example:"false"`
}
