package engine

import (
	"testing"

	"routinegen/internal/models"
)

func TestWarmupDurationByAge(t *testing.T) {
	tests := []struct {
		name    string
		age     int
		level   models.ExperienceLevel
		limited bool
		want    int
	}{
		{"young beginner", 25, models.ExpBeginner, false, 8},
		{"young advanced", 25, models.ExpAdvanced, false, 6},
		{"over fifty", 55, models.ExpIntermediate, false, 9},
		{"over sixty five", 68, models.ExpBeginner, false, 11},
		{"over sixty five with limitations", 68, models.ExpBeginner, true, 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := models.UserProfile{Age: tt.age, Experience: tt.level}
			if tt.limited {
				profile.Limitations = []models.PhysicalLimitation{
					{Description: "dolor lumbar", BodyZone: models.ZoneLowerBack},
				}
			}
			got, _ := warmupDuration(&profile)
			if got != tt.want {
				t.Errorf("warmupDuration = %d, want %d", got, tt.want)
			}
			if got > 15 {
				t.Errorf("duration %d exceeds the 15 minute cap", got)
			}
		})
	}
}

func TestWarmupOlderUserLongerThanYounger(t *testing.T) {
	e := seedEngine()

	young := gymRequest(models.ExpIntermediate)
	young.Profile.Age = 25
	old := gymRequest(models.ExpIntermediate)
	old.Profile.Age = 68

	youngWarmup := e.buildWarmup(young, nil)
	oldWarmup := e.buildWarmup(old, nil)

	if oldWarmup.DurationMin <= youngWarmup.DurationMin {
		t.Errorf("older user warmup %d should exceed younger %d",
			oldWarmup.DurationMin, youngWarmup.DurationMin)
	}
	if oldWarmup.PersonalizationReason == "" {
		t.Error("extended warmup should explain itself")
	}
}

func TestWarmupPhases(t *testing.T) {
	e := seedEngine()
	req := gymRequest(models.ExpIntermediate)
	req.Preferences.MuscleFocus = []models.MuscleGroup{models.MusclePecho, models.MusclePiernas}

	res, err := e.filterCandidates(req)
	if err != nil {
		t.Fatal(err)
	}
	scored := e.scoreCandidates(req, res.candidates)
	blocks, _ := e.buildWorkout(req, scored, testRng())

	warmup := e.buildWarmup(req, blocks)
	wantPhases := []string{"Activación General", "Movilidad Dinámica", "Preparación Específica"}
	if len(warmup.Phases) != len(wantPhases) {
		t.Fatalf("got %d phases", len(warmup.Phases))
	}
	for i, want := range wantPhases {
		if warmup.Phases[i].Name != want {
			t.Errorf("phase %d = %s, want %s", i, warmup.Phases[i].Name, want)
		}
	}

	var phaseSum int
	for _, phase := range warmup.Phases {
		phaseSum += phase.DurationMin
	}
	if phaseSum != warmup.DurationMin {
		t.Errorf("phase durations sum %d, warmup says %d", phaseSum, warmup.DurationMin)
	}
}

func TestCooldownPhases(t *testing.T) {
	e := seedEngine()
	req := gymRequest(models.ExpIntermediate)

	res, err := e.filterCandidates(req)
	if err != nil {
		t.Fatal(err)
	}
	scored := e.scoreCandidates(req, res.candidates)
	blocks, _ := e.buildWorkout(req, scored, testRng())

	cooldown := e.buildCooldown(req, blocks)
	wantPhases := []string{"Recuperación Activa", "Estiramientos", "Relajación"}
	if len(cooldown.Phases) != len(wantPhases) {
		t.Fatalf("got %d phases", len(cooldown.Phases))
	}
	for i, want := range wantPhases {
		if cooldown.Phases[i].Name != want {
			t.Errorf("phase %d = %s, want %s", i, cooldown.Phases[i].Name, want)
		}
	}
	if len(cooldown.RecoveryTips) != 0 {
		t.Errorf("risk-free profile should get no recovery tips, got %v", cooldown.RecoveryTips)
	}

	stretch := cooldown.Phases[1]
	if len(stretch.Exercises) == 0 {
		t.Error("expected stretches for the worked muscles")
	}
}

func TestRecoveryTipsRiskTriggered(t *testing.T) {
	e := seedEngine()

	young := gymRequest(models.ExpIntermediate)
	young.Profile.Age = 25
	old := gymRequest(models.ExpBeginner)
	old.Profile.Age = 68
	old.Environment = models.EnvironmentConstraints{
		Location:           models.LocationCasa,
		AvailableEquipment: []models.EquipmentType{models.EquipSilla},
	}

	youngTips := e.buildCooldown(young, nil).RecoveryTips
	oldTips := e.buildCooldown(old, nil).RecoveryTips

	if len(youngTips) != 0 {
		t.Errorf("25 year old without risk factors got tips: %v", youngTips)
	}
	if len(oldTips) <= len(youngTips) {
		t.Errorf("68 year old got %d tips, expected more than the %d for a 25 year old",
			len(oldTips), len(youngTips))
	}
}

func TestWarmupConsiderationsRiskTriggered(t *testing.T) {
	plain := models.UserProfile{Age: 30, Experience: models.ExpIntermediate}
	if got := warmupConsiderations(&plain); len(got) != 0 {
		t.Errorf("risk-free profile got considerations: %v", got)
	}

	injured := models.UserProfile{
		Age:           30,
		Experience:    models.ExpIntermediate,
		InjuryHistory: []string{"lesión de rodilla 2023"},
	}
	if got := warmupConsiderations(&injured); len(got) == 0 {
		t.Error("injury history should trigger a warmup consideration")
	}
}

func TestCooldownFlexibilityEmphasis(t *testing.T) {
	e := seedEngine()
	plain := gymRequest(models.ExpIntermediate)
	flexible := gymRequest(models.ExpIntermediate)
	flexible.Preferences.WantsFlexibility = true

	plainCooldown := e.buildCooldown(plain, nil)
	flexCooldown := e.buildCooldown(flexible, nil)

	if flexCooldown.DurationMin <= plainCooldown.DurationMin {
		t.Errorf("flexibility preference should extend the cooldown: %d vs %d",
			flexCooldown.DurationMin, plainCooldown.DurationMin)
	}
	if flexCooldown.Phases[1].DurationMin <= plainCooldown.Phases[1].DurationMin {
		t.Errorf("stretch phase %d min should exceed the default %d min",
			flexCooldown.Phases[1].DurationMin, plainCooldown.Phases[1].DurationMin)
	}
	if flexCooldown.PersonalizationReason == "" {
		t.Error("extended stretching should explain itself")
	}
}

func TestCooldownExtendedWithLimitations(t *testing.T) {
	e := seedEngine()
	plain := gymRequest(models.ExpIntermediate)
	limited := gymRequest(models.ExpIntermediate)
	limited.Profile.Limitations = []models.PhysicalLimitation{
		{Description: "tendinitis de hombro", BodyZone: models.ZoneShoulder},
	}

	if e.buildCooldown(limited, nil).DurationMin <= e.buildCooldown(plain, nil).DurationMin {
		t.Error("limitations should extend the cooldown")
	}
}
