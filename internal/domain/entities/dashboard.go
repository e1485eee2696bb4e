package entities

// DashboardStats is the admin analytics snapshot
type DashboardStats struct {
	TotalUsers          int64                       `json:"totalUsers"`
	TotalStudents       int64                       `json:"totalStudents"`
	TotalMentors        int64                       `json:"totalMentors"`
	TotalTeams          int64                       `json:"totalTeams"`
	TotalCompetitions   int64                       `json:"totalCompetitions"`
	CompetitionsByState map[CompetitionStatus]int64 `json:"competitionsByState"`
	TeamsByStatus       map[TeamStatus]int64        `json:"teamsByStatus"`
	ApplicationsByState map[RequestStatus]int64     `json:"applicationsByState"`
	SDGDistribution     map[int]int64               `json:"sdgDistribution"`
}
