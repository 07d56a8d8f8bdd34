package models

// Filter defaults mirror the search form's neutral values: the budget ceiling
// rarely excludes anyone and the time range spans the full playable day.
const (
	DefaultBudget   = 200.0
	MinBudget       = 30.0
	BudgetStep      = 10.0
	DefaultTimeFrom = 7
	DefaultTimeTo   = 22
)

// FilterOptions is one user-supplied search configuration.
// Zero values are neutral: empty name/locations/level and empty date do not
// restrict; Budget and the time range are always applied.
type FilterOptions struct {
	InstructorName string   `json:"instructor_name" validate:"max=100"`
	Locations      []string `json:"location" validate:"dive,min=1"`
	Budget         float64  `json:"budget" validate:"gte=0"`
	Level          string   `json:"level"`
	NeedsCourt     bool     `json:"needs_court"`
	Date           string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	TimeFrom       int      `json:"time_from" validate:"gte=0,lte=23"`
	TimeTo         int      `json:"time_to" validate:"gte=0,lte=23,gtefield=TimeFrom"`
}

// DefaultFilter returns the neutral filter configuration.
func DefaultFilter() FilterOptions {
	return FilterOptions{
		Budget:   DefaultBudget,
		TimeFrom: DefaultTimeFrom,
		TimeTo:   DefaultTimeTo,
	}
}

// SortMode selects the active ranking key.
type SortMode string

const (
	SortByTime    SortMode = "time"
	SortByPrice   SortMode = "price"
	SortCombined  SortMode = "combined"
	SortOrderAsc           = "asc"
	SortOrderDesc          = "desc"
)

// SortOptions configures result ordering.
type SortOptions struct {
	Mode       SortMode `json:"mode"`
	Descending bool     `json:"descending"`
}

// InstructorSummary is the instructor projection embedded in search results.
type InstructorSummary struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Image            string   `json:"image"`
	Fee              float64  `json:"fee"`
	Rating           float64  `json:"rating"`
	Levels           []string `json:"levels"`
	ProvidesOwnCourt bool     `json:"provides_own_court"`
	Specialization   string   `json:"specialization,omitempty"`
}

// SearchResult pairs an instructor with one matching time slot.
// IsAvailable reflects live bookability; with no booking backend it is the
// negation of the slot's static booked flag.
type SearchResult struct {
	Instructor  InstructorSummary `json:"instructor"`
	Slot        TimeSlot          `json:"slot"`
	IsAvailable bool              `json:"is_available"`
	ContactLink string            `json:"contact_link,omitempty"`
}

// Pagination describes the slice of the result set being returned.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}

// FilterMetadata feeds the search form: available choices and slider bounds.
type FilterMetadata struct {
	NeighborhoodsByRegion map[string][]string `json:"neighborhoods_by_region"`
	Levels                []string            `json:"levels"`
	Budget                RangeMetadata       `json:"budget"`
	TimeRange             RangeMetadata       `json:"time_range"`
}

// RangeMetadata describes slider bounds for a numeric filter dimension.
type RangeMetadata struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step,omitempty"`
}
