package analysis

// RevenueStage is one bar of the daily revenue comparison.
type RevenueStage struct {
	Name         string  `json:"name"`
	DailyRevenue float64 `json:"daily_revenue"`
}

// RevenueStages are the case-study daily revenue estimates ($) per rollout stage.
func RevenueStages() []RevenueStage {
	return []RevenueStage{
		{Name: "Baseline", DailyRevenue: 18000},
		{Name: "TOU Implementation", DailyRevenue: 19500},
		{Name: "VPP Integration", DailyRevenue: 20200},
		{Name: "Full Optimization", DailyRevenue: 22500},
	}
}
