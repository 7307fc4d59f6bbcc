package footballdata

import "football-fan-service/internal/domain"

type competitionsResponse struct {
	Competitions []domain.Competition `json:"competitions"`
}

type matchesResponse struct {
	Matches []domain.Match `json:"matches"`
}
