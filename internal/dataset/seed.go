package dataset

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/courtside-sg/courtside-api/internal/models"
)

// roster is the fixed instructor list; availability is generated per load.
func roster() []models.Instructor {
	return []models.Instructor{
		{
			ID:               "1",
			Name:             "James Wong",
			Image:            "https://images.unsplash.com/photo-1581092795360-fd1ca04f0952",
			Locations:        []string{"Kallang", "Tampines"},
			Fee:              70,
			Levels:           []string{"Beginner", "Intermediate"},
			ProvidesOwnCourt: false,
			Bio:              "Former national player with 10+ years of coaching experience. Specializes in developing fundamentals and building confidence in new players.",
			Phone:            "6591234567",
			Rating:           4.8,
			Specialization:   "Junior development",
			ClassSizes:       []int{1, 2},
			Reviews: []models.Review{
				{ID: "r1-1", UserID: "u1", UserName: "Sarah T.", Rating: 5, Comment: "Patient and skilled at breaking down technique for beginners.", Date: "2024-04-15"},
				{ID: "r1-2", UserID: "u2", UserName: "Michael L.", Rating: 4.5, Comment: "My kids improved tremendously under Coach James.", Date: "2024-04-02"},
			},
		},
		{
			ID:               "2",
			Name:             "Michelle Tan",
			Image:            "https://images.unsplash.com/photo-1649972904349-6e44c42644a7",
			Locations:        []string{"Bishan", "Toa Payoh"},
			Fee:              90,
			Levels:           []string{"Intermediate"},
			ProvidesOwnCourt: true,
			Bio:              "ITF-certified coach focused on competitive play and tournament preparation.",
			Phone:            "6592345678",
			Rating:           4.9,
			ClassSizes:       []int{1},
			Reviews: []models.Review{
				{ID: "r2-1", UserID: "u3", UserName: "Daniel C.", Rating: 5, Comment: "Sharpened my match play within a month.", Date: "2024-03-28"},
			},
		},
		{
			ID:               "3",
			Name:             "Ravi Kumar",
			Image:            "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158",
			Locations:        []string{"Jurong East", "Clementi", "Bukit Batok"},
			Fee:              55,
			Levels:           []string{"Beginner"},
			ProvidesOwnCourt: false,
			Bio:              "Friendly coach for first-timers and casual players. Lessons emphasize enjoyment and steady progress.",
			Phone:            "6593456789",
			Rating:           4.5,
			Reviews: []models.Review{
				{ID: "r3-1", UserID: "u4", UserName: "Aisha R.", Rating: 4.5, Comment: "Great with absolute beginners, very encouraging.", Date: "2024-04-20"},
			},
		},
		{
			ID:               "4",
			Name:             "Jennifer Lim",
			Image:            "https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d",
			Locations:        []string{"Bedok", "Marine Parade", "Pasir Ris"},
			Fee:              120,
			Levels:           []string{"Intermediate"},
			ProvidesOwnCourt: true,
			Bio:              "Former WTA tour player offering high-performance coaching on private courts in the East.",
			Phone:            "6594567890",
			Rating:           5.0,
			Specialization:   "Match strategy",
			ClassSizes:       []int{1, 2, 4},
			Reviews: []models.Review{
				{ID: "r4-1", UserID: "u5", UserName: "Marcus O.", Rating: 5, Comment: "World-class coaching, worth every dollar.", Date: "2024-04-11"},
			},
		},
		{
			ID:               "5",
			Name:             "Ahmad Faisal",
			Image:            "https://images.unsplash.com/photo-1488590528505-98d2b5aba04b",
			Locations:        []string{"Woodlands", "Yishun", "Sembawang"},
			Fee:              60,
			Levels:           []string{"Beginner", "Intermediate"},
			ProvidesOwnCourt: false,
			Bio:              "Northside coach with a decade of club experience. Strong focus on footwork and consistency drills.",
			Phone:            "6595678901",
			Rating:           4.6,
			Reviews: []models.Review{
				{ID: "r5-1", UserID: "u6", UserName: "Wei Ling", Rating: 4.5, Comment: "Drills are tough but my rallies got much longer.", Date: "2024-03-19"},
			},
		},
		{
			ID:               "6",
			Name:             "Grace Chua",
			Image:            "https://images.unsplash.com/photo-1531297484001-80022131f5a1",
			Locations:        []string{"Queenstown", "Bukit Merah", "Bukit Timah"},
			Fee:              85,
			Levels:           []string{"Beginner", "Intermediate"},
			ProvidesOwnCourt: true,
			Bio:              "Patient, detail-oriented coach. Video analysis included in every lesson.",
			Phone:            "6596789012",
			Rating:           4.7,
			Reviews: []models.Review{
				{ID: "r6-1", UserID: "u7", UserName: "Priya N.", Rating: 5, Comment: "The video breakdowns fixed my serve toss in two sessions.", Date: "2024-04-25"},
			},
		},
	}
}

// generateAvailability seeds days of one-hour sessions starting from baseDate:
// two to six slots per day between 08:00 and 19:00, roughly one in five already
// booked, each at one of the instructor's neighborhoods.
func generateAvailability(rng *rand.Rand, instructorID string, baseDate time.Time, locations []string, days int) []models.TimeSlot {
	var slots []models.TimeSlot
	for day := 0; day < days; day++ {
		date := baseDate.AddDate(0, 0, day)
		dateStr := date.Format("2006-01-02")

		count := rng.Intn(5) + 2
		seen := make(map[int]bool, count)
		for i := 0; i < count; i++ {
			startHour := rng.Intn(12) + 8
			if seen[startHour] {
				continue
			}
			seen[startHour] = true

			slots = append(slots, models.TimeSlot{
				ID:        fmt.Sprintf("%s-%s-%d", instructorID, dateStr, startHour),
				Date:      dateStr,
				StartTime: fmt.Sprintf("%02d:00", startHour),
				EndTime:   fmt.Sprintf("%02d:00", startHour+1),
				Location:  locations[rng.Intn(len(locations))],
				Booked:    rng.Float64() > 0.8,
			})
		}
	}
	return slots
}
