package models

import "time"

// UserRole is the closed set of roles a team member can hold.
type UserRole string

const (
	RoleSuperAdmin     UserRole = "super-admin"
	RoleAgencyAdmin    UserRole = "agency-admin"
	RoleProjectManager UserRole = "project-manager"
	RoleTeamMember     UserRole = "team-member"
	RoleClient         UserRole = "client"
)

// TeamMember is the assignment-time view of a person on the team. It is
// supplied by the caller and read-only to the engine.
type TeamMember struct {
	ID              string                `json:"id" validate:"required"`
	Name            string                `json:"name" validate:"required"`
	Email           string                `json:"email,omitempty" validate:"omitempty,email"`
	Role            UserRole              `json:"role" validate:"required,oneof=super-admin agency-admin project-manager team-member client"`
	Skills          []string              `json:"skills"`
	CurrentWorkload WorkloadData          `json:"currentWorkload"`
	Availability    []AvailabilityWindow  `json:"availability"`
	Preferences     AssignmentPreferences `json:"preferences"`
	Performance     PerformanceMetrics    `json:"performance"`
}

// WorkloadData describes a member's committed work. UtilizationPercentage is
// authoritative as supplied; it is not recomputed from hours and capacity,
// and it may exceed 100.
type WorkloadData struct {
	ActiveTasks           int     `json:"activeTasks"`
	TotalEstimatedHours   float64 `json:"totalEstimatedHours"`
	WeeklyCapacity        float64 `json:"weeklyCapacity"`
	UtilizationPercentage float64 `json:"utilizationPercentage"`
	OverdueTasks          int     `json:"overdueTasks"`
	UrgentTasks           int     `json:"urgentTasks"`
	AverageTaskCompletion float64 `json:"averageTaskCompletion"` // days
}

// AvailabilityWindow is a span during which a member is available at a given
// daily-hours rate.
type AvailabilityWindow struct {
	StartDate        time.Time `json:"startDate"`
	EndDate          time.Time `json:"endDate"`
	HoursPerDay      float64   `json:"hoursPerDay"`
	IsFullyAvailable bool      `json:"isFullyAvailable"`
}

// AssignmentPreferences captures what kinds of work a member prefers.
type AssignmentPreferences struct {
	PreferredTaskTypes     []string       `json:"preferredTaskTypes"`
	ProjectTypes           []string       `json:"projectTypes"`
	MaxConcurrentTasks     int            `json:"maxConcurrentTasks"`
	PreferredUrgencyLevels []TaskPriority `json:"preferredUrgencyLevels"`
}

// PerformanceMetrics holds historical delivery metrics for a member.
type PerformanceMetrics struct {
	TaskCompletionRate      float64 `json:"taskCompletionRate" validate:"gte=0,lte=1"`
	AverageTimeToComplete   float64 `json:"averageTimeToComplete"` // days
	QualityScore            float64 `json:"qualityScore" validate:"gte=0,lte=10"`
	ClientSatisfactionScore float64 `json:"clientSatisfactionScore" validate:"gte=0,lte=10"`
	OnTimeDeliveryRate      float64 `json:"onTimeDeliveryRate" validate:"gte=0,lte=1"`
	CollaborationScore      float64 `json:"collaborationScore" validate:"gte=0,lte=10"`
}

// TaskComplexity is the closed set of complexity levels for a requirement.
type TaskComplexity string

const (
	ComplexitySimple  TaskComplexity = "simple"
	ComplexityMedium  TaskComplexity = "medium"
	ComplexityComplex TaskComplexity = "complex"
)

// TaskRequirements is the assignment-time view of a task.
type TaskRequirements struct {
	Title                 string         `json:"title" validate:"required"`
	Description           string         `json:"description,omitempty"`
	SkillsRequired        []string       `json:"skillsRequired"`
	RoleRequired          UserRole       `json:"roleRequired,omitempty" validate:"omitempty,oneof=super-admin agency-admin project-manager team-member client"`
	Priority              TaskPriority   `json:"priority" validate:"required,oneof=low medium high urgent"`
	EstimatedHours        float64        `json:"estimatedHours" validate:"gte=0"`
	Deadline              *time.Time     `json:"deadline,omitempty"`
	ProjectID             string         `json:"projectId,omitempty"`
	Complexity            TaskComplexity `json:"complexity" validate:"omitempty,oneof=simple medium complex"`
	RequiresCollaboration bool           `json:"requiresCollaboration"`
	ClientFacing          bool           `json:"clientFacing"`
}

// AlternativeOption is a runner-up candidate attached to a recommendation.
type AlternativeOption struct {
	MemberID   string  `json:"memberId"`
	MemberName string  `json:"memberName"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}

// WorkloadImpact projects the effect of assigning the task to a member.
type WorkloadImpact struct {
	NewUtilization        float64   `json:"newUtilization"`
	TaskLoadIncrease      float64   `json:"taskLoadIncrease"`
	EstimatedDeliveryDate time.Time `json:"estimatedDeliveryDate"`
}

// AssignmentRecommendation is an auditable recommendation for one member.
// AlternativeOptions never includes the primary member's own id.
type AssignmentRecommendation struct {
	MemberID           string              `json:"memberId"`
	MemberName         string              `json:"memberName"`
	Confidence         float64             `json:"confidence" validate:"gte=0,lte=1"`
	Reasoning          []string            `json:"reasoning"`
	RiskFactors        []string            `json:"riskFactors"`
	AlternativeOptions []AlternativeOption `json:"alternativeOptions"`
	WorkloadImpact     WorkloadImpact      `json:"workloadImpact"`
}

// MemberStatus labels a member's utilization band.
type MemberStatus string

const (
	StatusAvailable  MemberStatus = "available"
	StatusOptimal    MemberStatus = "optimal"
	StatusBusy       MemberStatus = "busy"
	StatusOverloaded MemberStatus = "overloaded"
)

// MemberWorkloadSummary is one member's row in the team summary.
type MemberWorkloadSummary struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Utilization float64      `json:"utilization"`
	ActiveTasks int          `json:"activeTasks"`
	Status      MemberStatus `json:"status"`
}

// WorkloadSummary aggregates team-wide utilization for dashboards.
type WorkloadSummary struct {
	TotalMembers       int                     `json:"totalMembers"`
	AverageUtilization float64                 `json:"averageUtilization"`
	OverloadedMembers  int                     `json:"overloadedMembers"`
	AvailableCapacity  float64                 `json:"availableCapacity"`
	UrgentTasksCount   int                     `json:"urgentTasksCount"`
	MemberSummaries    []MemberWorkloadSummary `json:"memberSummaries"`
}
