package models

// Instructor represents a bookable tennis coach and their offered schedule.
type Instructor struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Image            string     `json:"image"`
	Locations        []string   `json:"location"`
	Fee              float64    `json:"fee"`
	Levels           []string   `json:"levels"`
	ProvidesOwnCourt bool       `json:"provides_own_court"`
	Bio              string     `json:"bio"`
	Phone            string     `json:"phone"`
	Rating           float64    `json:"rating"`
	Specialization   string     `json:"specialization,omitempty"`
	ClassSizes       []int      `json:"class_sizes,omitempty"`
	Reviews          []Review   `json:"reviews"`
	Availability     []TimeSlot `json:"availability"`
}

// Review is a single customer review attached to an instructor.
type Review struct {
	ID       string  `json:"id"`
	UserID   string  `json:"user_id"`
	UserName string  `json:"user_name"`
	Rating   float64 `json:"rating"`
	Comment  string  `json:"comment"`
	Date     string  `json:"date"`
}

// TimeSlot is one bookable one-hour interval belonging to an instructor.
// Date is canonical YYYY-MM-DD; StartTime and EndTime are zero-padded HH:MM.
type TimeSlot struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Location  string `json:"location"`
	Booked    bool   `json:"booked"`
}

// DefaultRosterPageSize is the page size used when a roster listing does not
// request one.
const DefaultRosterPageSize = 20

// RosterFilter captures options for listing the instructor roster.
type RosterFilter struct {
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

// NeighborhoodsByRegion groups the serviceable neighborhoods by region.
var NeighborhoodsByRegion = map[string][]string{
	"North":      {"Ang Mo Kio", "Woodlands", "Sembawang", "Yishun"},
	"North-east": {"Hougang", "Punggol", "Sengkang", "Serangoon"},
	"East":       {"Bedok", "Geylang", "Kallang", "Marine Parade", "Pasir Ris", "Tampines"},
	"Central":    {"Central Area", "Bishan", "Toa Payoh"},
	"South":      {"Bukit Merah", "Queenstown", "Bukit Timah"},
	"West":       {"Bukit Batok", "Bukit Panjang", "Choa Chu Kang", "Clementi", "Jurong East", "Jurong West", "Tengah"},
}

// Levels enumerates the coaching levels offered across the roster.
var Levels = []string{"Beginner", "Intermediate"}

// Specializations is the pool used to backfill instructors missing one.
var Specializations = []string{"Serve technique", "Footwork", "Match strategy", "Junior development", "Doubles play"}
