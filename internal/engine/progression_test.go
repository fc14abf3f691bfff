package engine

import (
	"testing"

	"routinegen/internal/models"
)

func TestResolveStrategy(t *testing.T) {
	tests := []struct {
		name  string
		style models.ProgressionStyle
		level models.ExperienceLevel
		want  models.ProgressionStrategy
	}{
		{"explicit linear", models.ProgressionLinear, models.ExpAdvanced, models.StrategyLinear},
		{"explicit block", models.ProgressionBlock, models.ExpBeginner, models.StrategyBlock},
		{"explicit periodized", models.ProgressionPeriodized, models.ExpBeginner, models.StrategyPeriodized},
		{"auto beginner", models.ProgressionAuto, models.ExpBeginner, models.StrategyLinear},
		{"auto intermediate", models.ProgressionAuto, models.ExpIntermediate, models.StrategyBlock},
		{"auto advanced", models.ProgressionAuto, models.ExpAdvanced, models.StrategyPeriodized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := models.ProgressionPreferences{Style: tt.style}
			if got := resolveStrategy(&prefs, tt.level); got != tt.want {
				t.Errorf("resolveStrategy = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDeloadScheduling(t *testing.T) {
	e := seedEngine()
	req := gymRequest(models.ExpIntermediate)
	req.Progression = models.ProgressionPreferences{
		Style:           models.ProgressionLinear,
		TotalWeeks:      12,
		DeloadFrequency: 4,
	}

	plan := e.buildProgression(req)
	if plan.TotalWeeks != 12 || len(plan.Weeks) != 12 {
		t.Fatalf("expected 12 weeks, got %d", len(plan.Weeks))
	}

	for _, week := range plan.Weeks {
		wantDeload := week.WeekNumber%4 == 0 && week.WeekNumber != 12
		if week.IsDeload != wantDeload {
			t.Errorf("week %d deload = %v, want %v", week.WeekNumber, week.IsDeload, wantDeload)
		}
		if week.IsDeload {
			if week.Adjustments["carga"] != "reducción del 40-50%" {
				t.Errorf("week %d deload load adjustment = %q", week.WeekNumber, week.Adjustments["carga"])
			}
		}
	}
}

func TestDeloadFrequencyDefaults(t *testing.T) {
	tests := []struct {
		level models.ExperienceLevel
		want  int
	}{
		{models.ExpBeginner, 6},
		{models.ExpIntermediate, 5},
		{models.ExpAdvanced, 4},
	}
	for _, tt := range tests {
		prefs := models.ProgressionPreferences{}
		if got := deloadFrequency(&prefs, tt.level); got != tt.want {
			t.Errorf("deloadFrequency(%s) = %d, want %d", tt.level, got, tt.want)
		}
	}

	prefs := models.ProgressionPreferences{DeloadFrequency: 9}
	if got := deloadFrequency(&prefs, models.ExpIntermediate); got != 5 {
		t.Errorf("out-of-range frequency should fall back, got %d", got)
	}
}

func TestBlockPhases(t *testing.T) {
	e := seedEngine()
	req := gymRequest(models.ExpIntermediate)
	req.Progression = models.ProgressionPreferences{
		Style:         models.ProgressionBlock,
		TotalWeeks:    9,
		WeeksPerPhase: 3,
	}

	plan := e.buildProgression(req)
	if plan.Strategy != models.StrategyBlock {
		t.Fatalf("strategy %s", plan.Strategy)
	}
	wantFocus := map[int]string{1: "Acumulación", 4: "Intensificación", 7: "Realización"}
	for week, want := range wantFocus {
		got := plan.Weeks[week-1]
		if got.IsDeload {
			continue
		}
		if got.Focus != want {
			t.Errorf("week %d focus = %s, want %s", week, got.Focus, want)
		}
	}
}

func TestProgressionMilestones(t *testing.T) {
	e := seedEngine()
	req := gymRequest(models.ExpBeginner)
	req.Progression.TotalWeeks = 8

	plan := e.buildProgression(req)
	if len(plan.Milestones) != 2 {
		t.Fatalf("expected 2 milestones, got %d", len(plan.Milestones))
	}
	if plan.Milestones[0].TargetWeek != 4 || plan.Milestones[1].TargetWeek != 8 {
		t.Errorf("milestone weeks %d, %d", plan.Milestones[0].TargetWeek, plan.Milestones[1].TargetWeek)
	}
	for _, m := range plan.Milestones {
		if len(m.SuccessCriteria) == 0 {
			t.Errorf("milestone %s has no success criteria", m.Name)
		}
	}
}
