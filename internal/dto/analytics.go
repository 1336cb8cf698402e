package dto

// AnalyticsSummaryResponse carries the dashboard's derived spending figures
// plus the financial health score.
type AnalyticsSummaryResponse struct {
	WeeklySpend        float64 `json:"weeklySpend"`
	AvgDailySpend      float64 `json:"avgDailySpend"`
	MostSpentCategory  string  `json:"mostSpentCategory"`
	HighestSpendingDay string  `json:"highestSpendingDay"`
	ActiveGoals        int     `json:"activeGoals"`
	HealthScore        int     `json:"healthScore"`
}

// ScholarshipResponse is a single scholarship directory entry
type ScholarshipResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Provider   string   `json:"provider"`
	Amount     string   `json:"amount"`
	Deadline   string   `json:"deadline"`
	States     []string `json:"states"`
	Categories []string `json:"categories"`
	Income     string   `json:"income,omitempty"`
	Link       string   `json:"link"`
}

// ListScholarshipsResponse wraps a filtered scholarship listing
type ListScholarshipsResponse struct {
	Scholarships []ScholarshipResponse `json:"scholarships"`
}
