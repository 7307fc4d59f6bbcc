package espn

import (
	"fmt"
	"strings"
)

// teamIDs maps normalized team names to ESPN team ids for the Brazilian
// Série A clubs the service covers.
var teamIDs = map[string]int{
	"FLAMENGO":      819,
	"PALMEIRAS":     2029,
	"CRUZEIRO":      2022,
	"MIRASSOL":      9169,
	"BAHIA":         9967,
	"BOTAFOGO":      6086,
	"SAO_PAULO":     2026,
	"BRAGANTINO":    6079,
	"CORINTHIANS":   874,
	"FLUMINENSE":    3445,
	"INTERNACIONAL": 1936,
	"CEARA":         9969,
	"GREMIO":        6273,
	"ATLETICO_MG":   7632,
	"VASCO":         3454,
	"SANTOS":        2674,
	"VITORIA":       3457,
	"JUVENTUDE":     6270,
	"FORTALEZA":     6272,
	"SPORT":         7631,
}

// NormalizeTeam maps a user-supplied team name to the id table's key form.
func NormalizeTeam(team string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(team)), " ", "_")
}

// KnownTeams returns the normalized names present in the id table.
func KnownTeams() []string {
	teams := make([]string, 0, len(teamIDs))
	for name := range teamIDs {
		teams = append(teams, name)
	}
	return teams
}

func (c *Client) websiteURL(team string) string {
	id, ok := teamIDs[NormalizeTeam(team)]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s/soccer/team/fixtures/_/id/%d/%s", c.baseURL, id, NormalizeTeam(team))
}

func (c *Client) apiURL(team string) string {
	id, ok := teamIDs[NormalizeTeam(team)]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s/soccer/bra.1/teams/%d/schedule", c.apiBaseURL, id)
}
