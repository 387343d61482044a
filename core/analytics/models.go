package analytics

type (
	Overview struct {
		TotalStudents       int    `json:"total_students" yaml:"totalStudents"`
		ActiveStudents      int    `json:"active_students" yaml:"activeStudents"`
		CompletedActivities int    `json:"completed_activities" yaml:"completedActivities"`
		AverageEngagement   int    `json:"average_engagement" yaml:"averageEngagement"`
		TopPerformer        string `json:"top_performer" yaml:"topPerformer"`
		ImprovementRate     int    `json:"improvement_rate" yaml:"improvementRate"`
	}

	Engagement struct {
		Date       string `json:"date" yaml:"date"`
		Logins     int    `json:"logins" yaml:"logins"`
		Activities int    `json:"activities" yaml:"activities"`
		AvgTime    int    `json:"avg_time" yaml:"avgTime"` // minutes
	}

	AgeGroupPerformance struct {
		Group      string `json:"group" yaml:"group"`
		AvgScore   int    `json:"avg_score" yaml:"avgScore"`
		Completion int    `json:"completion" yaml:"completion"`
		Engagement int    `json:"engagement" yaml:"engagement"`
	}

	TopicPerformance struct {
		Topic    string `json:"topic" yaml:"topic"`
		AvgScore int    `json:"avg_score" yaml:"avgScore"`
		Attempts int    `json:"attempts" yaml:"attempts"`
	}

	Performance struct {
		ByAgeGroup []AgeGroupPerformance `json:"by_age_group" yaml:"byAgeGroup"`
		ByTopic    []TopicPerformance    `json:"by_topic" yaml:"byTopic"`
	}

	StudentProgress struct {
		Student     string `json:"student" yaml:"student"`
		Level       int    `json:"level" yaml:"level"`
		XP          int    `json:"xp" yaml:"xp"`
		Improvement string `json:"improvement" yaml:"improvement"`
		LastActive  string `json:"last_active" yaml:"lastActive"`
	}

	// Data is the class analytics data set.
	Data struct {
		Overview    Overview          `json:"overview" yaml:"overview"`
		Engagement  []Engagement      `json:"engagement" yaml:"engagement"`
		Performance Performance       `json:"performance" yaml:"performance"`
		Progress    []StudentProgress `json:"progress" yaml:"progress"`
	}

	Report struct {
		TimeRange string `json:"time_range"`
		Data
	}

	// ExportPayload is what the analytics export file contains.
	ExportPayload struct {
		Timestamp string `json:"timestamp"`
		TimeRange string `json:"time_range"`
		Data
	}

	TimeRange struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
)

const DefaultTimeRange = "month"

var TimeRanges = []TimeRange{
	{ID: "week", Name: "This Week"},
	{ID: "month", Name: "This Month"},
	{ID: "quarter", Name: "This Quarter"},
	{ID: "year", Name: "This Year"},
}

// Grade buckets a score the way the performance bars are coloured.
func Grade(score int) string {
	switch {
	case score >= 90:
		return "excellent"
	case score >= 80:
		return "good"
	case score >= 70:
		return "fair"
	default:
		return "poor"
	}
}
