package assign

import (
	"errors"
	"testing"
	"time"

	"github.com/josephgoksu/CrewWing/models"
)

var assignNow = time.Date(2024, 1, 17, 10, 0, 0, 0, time.UTC)

func newTestEngine() *Engine {
	return NewEngine(WithClock(func() time.Time { return assignNow }))
}

// fullAvailability spans well past any test deadline.
func fullAvailability(hoursPerDay float64) []models.AvailabilityWindow {
	return []models.AvailabilityWindow{{
		StartDate:        assignNow.AddDate(0, -1, 0),
		EndDate:          assignNow.AddDate(0, 3, 0),
		HoursPerDay:      hoursPerDay,
		IsFullyAvailable: true,
	}}
}

func testMember(id, name string, utilization float64, skills ...string) models.TeamMember {
	return models.TeamMember{
		ID:     id,
		Name:   name,
		Role:   models.RoleTeamMember,
		Skills: skills,
		CurrentWorkload: models.WorkloadData{
			ActiveTasks:           3,
			WeeklyCapacity:        40,
			UtilizationPercentage: utilization,
		},
		Availability: fullAvailability(8),
		Preferences: models.AssignmentPreferences{
			MaxConcurrentTasks: 5,
		},
		Performance: models.PerformanceMetrics{
			TaskCompletionRate:      0.9,
			QualityScore:            8,
			ClientSatisfactionScore: 8,
			OnTimeDeliveryRate:      0.85,
			CollaborationScore:      7,
		},
	}
}

func designTask() models.TaskRequirements {
	return models.TaskRequirements{
		Title:          "Design new landing page",
		Description:    "Produce figma mockups for the landing page",
		SkillsRequired: []string{"figma"},
		Priority:       models.PriorityMedium,
		EstimatedHours: 8,
		Complexity:     models.ComplexityMedium,
	}
}

func TestGetAssignmentRecommendations_EmptyRoster(t *testing.T) {
	_, err := newTestEngine().GetAssignmentRecommendations(designTask(), nil)
	if !errors.Is(err, ErrNoEligibleMembers) {
		t.Fatalf("err = %v, want ErrNoEligibleMembers", err)
	}
}

func TestGetAssignmentRecommendations_AllIneligible(t *testing.T) {
	roster := []models.TeamMember{
		testMember("m1", "Overloaded", 112, "figma"),
		testMember("m2", "Wrong skills", 50, "copywriting"),
	}
	_, err := newTestEngine().GetAssignmentRecommendations(designTask(), roster)
	if !errors.Is(err, ErrNoEligibleMembers) {
		t.Fatalf("err = %v, want ErrNoEligibleMembers", err)
	}
}

func TestGetAssignmentRecommendations_RanksAndExplains(t *testing.T) {
	roster := []models.TeamMember{
		testMember("m1", "Sarah Chen", 80, "figma", "branding"),
		testMember("m2", "Mike Jones", 40, "figma"),
		testMember("m3", "Ana Silva", 90, "figma design"),
		testMember("m4", "Over Cap", 112, "figma"),
	}

	recs, err := newTestEngine().GetAssignmentRecommendations(designTask(), roster)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(recs))
	}

	for _, rec := range recs {
		if rec.MemberID == "m4" {
			t.Error("member above 95% utilization must not be recommended")
		}
		if rec.Confidence < 0 || rec.Confidence > 1 {
			t.Errorf("confidence %v out of [0,1]", rec.Confidence)
		}
		if len(rec.AlternativeOptions) > 2 {
			t.Errorf("got %d alternatives, want at most 2", len(rec.AlternativeOptions))
		}
		for _, alt := range rec.AlternativeOptions {
			if alt.MemberID == rec.MemberID {
				t.Error("alternatives must not include the primary member")
			}
		}
	}

	// Ordering is best-first.
	for i := 1; i < len(recs); i++ {
		if recs[i].Confidence > recs[i-1].Confidence {
			t.Errorf("recommendations not sorted: %v before %v", recs[i-1].Confidence, recs[i].Confidence)
		}
	}

	// Sarah sits in the optimal utilization band with a full skill match;
	// she should lead and her reasoning should say why.
	if recs[0].MemberID != "m1" {
		t.Errorf("top recommendation = %s, want m1", recs[0].MemberID)
	}
	foundSkill := false
	for _, r := range recs[0].Reasoning {
		if r == "Excellent skill match (100% alignment)" {
			foundSkill = true
		}
	}
	if !foundSkill {
		t.Errorf("reasoning %v missing skill match line", recs[0].Reasoning)
	}
}

func TestGetAssignmentRecommendations_RoleRequirement(t *testing.T) {
	pm := testMember("m1", "PM", 50)
	pm.Role = models.RoleProjectManager
	dev := testMember("m2", "Dev", 50)

	task := designTask()
	task.SkillsRequired = nil
	task.RoleRequired = models.RoleProjectManager

	recs, err := newTestEngine().GetAssignmentRecommendations(task, []models.TeamMember{pm, dev})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].MemberID != "m1" {
		t.Fatalf("recs = %+v, want only m1", recs)
	}
}

func TestGetAssignmentRecommendations_RiskFactors(t *testing.T) {
	member := testMember("m1", "Busy Bee", 90, "figma")
	member.CurrentWorkload.OverdueTasks = 2

	recs, err := newTestEngine().GetAssignmentRecommendations(designTask(), []models.TeamMember{member})
	if err != nil {
		t.Fatal(err)
	}

	wantRisks := map[string]bool{
		"High current workload (90% utilized)": false,
		"Has 2 overdue task(s)":                false,
	}
	for _, risk := range recs[0].RiskFactors {
		if _, ok := wantRisks[risk]; ok {
			wantRisks[risk] = true
		}
	}
	for risk, found := range wantRisks {
		if !found {
			t.Errorf("risk factors %v missing %q", recs[0].RiskFactors, risk)
		}
	}
}

func TestGetAssignmentRecommendations_WorkloadImpact(t *testing.T) {
	member := testMember("m1", "Sarah Chen", 80, "figma")

	recs, err := newTestEngine().GetAssignmentRecommendations(designTask(), []models.TeamMember{member})
	if err != nil {
		t.Fatal(err)
	}

	impact := recs[0].WorkloadImpact
	// 8h on a 40h week adds 20 points.
	if impact.NewUtilization != 100 {
		t.Errorf("newUtilization = %v, want 100", impact.NewUtilization)
	}
	if impact.TaskLoadIncrease != 20 {
		t.Errorf("taskLoadIncrease = %v, want 20", impact.TaskLoadIncrease)
	}
	// 8h at 8h/day lands in one day.
	wantDelivery := assignNow.AddDate(0, 0, 1)
	if !impact.EstimatedDeliveryDate.Equal(wantDelivery) {
		t.Errorf("estimatedDeliveryDate = %v, want %v", impact.EstimatedDeliveryDate, wantDelivery)
	}
}

func TestGetAssignmentRecommendations_NoAvailabilityWindow(t *testing.T) {
	member := testMember("m1", "Ghost", 50, "figma")
	member.Availability = nil

	_, err := newTestEngine().GetAssignmentRecommendations(designTask(), []models.TeamMember{member})
	if !errors.Is(err, ErrNoEligibleMembers) {
		t.Fatalf("err = %v, want ErrNoEligibleMembers", err)
	}
}

func TestGetAssignmentRecommendations_PartialAvailabilityWindowExcluded(t *testing.T) {
	member := testMember("m1", "Part Timer", 50, "figma")
	member.Availability[0].IsFullyAvailable = false

	_, err := newTestEngine().GetAssignmentRecommendations(designTask(), []models.TeamMember{member})
	if !errors.Is(err, ErrNoEligibleMembers) {
		t.Fatalf("err = %v, want ErrNoEligibleMembers", err)
	}
}
