package content

import "leximax/models"

// Badge ids referenced by the award rules.
const (
	BadgeLatinLover    = "badge1"
	BadgeStreakMaster  = "badge2"
	BadgeMaximExplorer = "badge3"
	BadgeLegalEagle    = "badge4"
	BadgeJurisDoctor   = "badge5"
)

var badges = []models.Badge{
	{ID: BadgeLatinLover, Name: "Latin Lover", Description: "Completed your first Latin maxim", ImageURL: "/badges/latin-lover.png"},
	{ID: BadgeStreakMaster, Name: "Streak Master", Description: "Maintained a 7-day streak", ImageURL: "/badges/streak-master.png"},
	{ID: BadgeMaximExplorer, Name: "Maxim Explorer", Description: "Completed maxims from 3 different categories", ImageURL: "/badges/maxim-explorer.png"},
	{ID: BadgeLegalEagle, Name: "Legal Eagle", Description: "Achieved 90% accuracy on 10 quizzes", ImageURL: "/badges/legal-eagle.png"},
	{ID: BadgeJurisDoctor, Name: "Juris Doctor", Description: "Reached Level 5", ImageURL: "/badges/juris-doctor.png"},
}
