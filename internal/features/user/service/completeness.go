package service

import "community-portal-backend/internal/features/user/models"

// Field weights for the profile completeness score. Contact details weigh
// more than free-text sections; the total is 100.
var completenessWeights = []struct {
	weight  int
	present func(*models.User) bool
}{
	{20, func(u *models.User) bool { return u.Email != "" }},
	{15, func(u *models.User) bool { return u.Phone != "" }},
	{15, func(u *models.User) bool { return u.PhotoURL != "" }},
	{10, func(u *models.User) bool { return u.City != "" }},
	{15, func(u *models.User) bool { return u.Occupation != "" }},
	{15, func(u *models.User) bool { return u.Education != "" }},
	{10, func(u *models.User) bool { return u.About != "" }},
}

// Completeness returns the weighted field-presence score in [0, 100].
func Completeness(u *models.User) int {
	score := 0
	for _, w := range completenessWeights {
		if w.present(u) {
			score += w.weight
		}
	}
	return score
}
