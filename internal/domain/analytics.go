package domain

type Statistics struct {
	TotalCases         int64   `json:"total_cases" db:"total_cases"`
	ActiveMissing      int64   `json:"active_missing" db:"active_missing"`
	FoundCases         int64   `json:"found_cases" db:"found_cases"`
	UnderInvestigation int64   `json:"under_investigation" db:"under_investigation"`
	ClosedCases        int64   `json:"closed_cases" db:"closed_cases"`
	CriticalCases      int64   `json:"critical_cases" db:"critical_cases"`
	HighPriorityCases  int64   `json:"high_priority_cases" db:"high_priority_cases"`
	AvgDaysToFind      float64 `json:"avg_days_to_find" db:"avg_days_to_find"`
}

type StatusCount struct {
	Status string `json:"status" db:"status"`
	Count  int64  `json:"count" db:"count"`
}

type MonthlyTrend struct {
	Month   string `json:"month" db:"month"`
	Missing int64  `json:"missing" db:"missing"`
	Found   int64  `json:"found" db:"found"`
}

type AgeGroupCount struct {
	AgeGroup string `json:"age_group" db:"age_group"`
	Count    int64  `json:"count" db:"count"`
}

type GenderCount struct {
	Gender string `json:"gender" db:"gender"`
	Count  int64  `json:"count" db:"count"`
}

type PriorityCount struct {
	Priority string `json:"priority" db:"priority"`
	Count    int64  `json:"count" db:"count"`
}

type DashboardStats struct {
	Statistics           Statistics      `json:"statistics"`
	RecentCases          []MissingPerson `json:"recentCases"`
	StatusDistribution   []StatusCount   `json:"statusDistribution"`
	MonthlyTrends        []MonthlyTrend  `json:"monthlyTrends"`
	AgeDistribution      []AgeGroupCount `json:"ageDistribution"`
	GenderDistribution   []GenderCount   `json:"genderDistribution"`
	PriorityDistribution []PriorityCount `json:"priorityDistribution"`
}
