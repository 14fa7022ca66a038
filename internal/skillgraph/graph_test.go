package skillgraph

import (
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/skillforge/internal/catalog"
)

func sk(id string, prereqs ...string) catalog.Skill {
	return catalog.Skill{
		ID:               id,
		CategoryID:       "cat",
		Name:             id,
		XPReward:         50,
		MasteryThreshold: 80,
		Active:           true,
		Prerequisites:    prereqs,
	}
}

func mustBuild(t *testing.T, skills ...catalog.Skill) *Graph {
	t.Helper()
	g, err := Build(skills)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return g
}

func TestBuild_RejectsDuplicateIDs(t *testing.T) {
	_, err := Build([]catalog.Skill{sk("a"), sk("a")})
	if err == nil {
		t.Fatal("expected error for duplicate IDs, got nil")
	}
	var ie *IntegrityError
	if !errors.As(err, &ie) {
		t.Fatalf("error type = %T, want *IntegrityError", err)
	}
	if ie.Kind != IntegrityDuplicate {
		t.Errorf("Kind = %s, want %s", ie.Kind, IntegrityDuplicate)
	}
}

func TestTiers_PartitionsEverySkillOnce(t *testing.T) {
	g := mustBuild(t,
		sk("a"),
		sk("b"),
		sk("c", "a"),
		sk("d", "a", "b"),
		sk("e", "c", "d"),
	)

	tiers, err := g.Tiers()
	if err != nil {
		t.Fatalf("Tiers: %v", err)
	}

	tierOf := make(map[string]int)
	total := 0
	for i, tier := range tiers {
		for _, s := range tier {
			if _, seen := tierOf[s.ID]; seen {
				t.Errorf("skill %q appears in more than one tier", s.ID)
			}
			tierOf[s.ID] = i
			total++
		}
	}
	if total != 5 {
		t.Fatalf("partitioned %d skills, want 5", total)
	}

	// Every skill sits strictly above all of its prerequisites.
	for _, s := range g.Skills() {
		for _, p := range s.Prerequisites {
			if tierOf[s.ID] <= tierOf[p] {
				t.Errorf("skill %q in tier %d, prerequisite %q in tier %d", s.ID, tierOf[s.ID], p, tierOf[p])
			}
		}
	}

	if tierOf["a"] != 0 || tierOf["b"] != 0 {
		t.Errorf("roots should be tier 0, got a=%d b=%d", tierOf["a"], tierOf["b"])
	}
	if tierOf["e"] != 2 {
		t.Errorf("tier of e = %d, want 2", tierOf["e"])
	}
}

func TestTiers_CycleIsAnError(t *testing.T) {
	g := mustBuild(t,
		sk("root"),
		sk("a", "b"),
		sk("b", "a"),
	)

	_, err := g.Tiers()
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}
	var ie *IntegrityError
	if !errors.As(err, &ie) {
		t.Fatalf("error type = %T, want *IntegrityError", err)
	}
	if ie.Kind != IntegrityCycle {
		t.Errorf("Kind = %s, want %s", ie.Kind, IntegrityCycle)
	}
	if len(ie.SkillIDs) != 2 {
		t.Errorf("SkillIDs = %v, want the two cyclic skills", ie.SkillIDs)
	}
}

func TestTiers_DanglingPrerequisiteIsAnError(t *testing.T) {
	g := mustBuild(t, sk("a"), sk("b", "ghost"))

	_, err := g.Tiers()
	if err == nil {
		t.Fatal("expected error for dangling prerequisite, got nil")
	}
	var ie *IntegrityError
	if !errors.As(err, &ie) {
		t.Fatalf("error type = %T, want *IntegrityError", err)
	}
	if ie.Kind != IntegrityDangling {
		t.Errorf("Kind = %s, want %s", ie.Kind, IntegrityDangling)
	}
}

func TestIsUnlockable_NoPrerequisites(t *testing.T) {
	g := mustBuild(t, sk("a"))
	if !g.IsUnlockable("a", nil, "") {
		t.Error("skill with no prerequisites should always be unlockable")
	}
}

func TestIsUnlockable_RequiresAllPrerequisites(t *testing.T) {
	g := mustBuild(t, sk("a"), sk("b"), sk("c", "a", "b"))

	if g.IsUnlockable("c", map[string]bool{"a": true}, "") {
		t.Error("c should stay locked with only one of two prerequisites mastered")
	}
	if !g.IsUnlockable("c", map[string]bool{"a": true, "b": true}, "") {
		t.Error("c should unlock with both prerequisites mastered")
	}
}

func TestIsUnlockable_MasteredOverride(t *testing.T) {
	g := mustBuild(t, sk("a"), sk("b", "a"))

	// "a" is not yet committed as mastered, but the override counts it.
	if g.IsUnlockable("b", nil, "") {
		t.Error("b should be locked without the override")
	}
	if !g.IsUnlockable("b", nil, "a") {
		t.Error("b should be unlockable with masteredOverride=a")
	}
}

func TestIsUnlockable_InactiveSkill(t *testing.T) {
	inactive := sk("a")
	inactive.Active = false
	g := mustBuild(t, inactive)

	if g.IsUnlockable("a", nil, "") {
		t.Error("inactive skill should not be unlockable")
	}
}

func TestIsUnlockable_UnknownSkill(t *testing.T) {
	g := mustBuild(t, sk("a"))
	if g.IsUnlockable("nope", nil, "") {
		t.Error("unknown skill should not be unlockable")
	}
}

func TestDependents(t *testing.T) {
	g := mustBuild(t, sk("a"), sk("b", "a"), sk("c", "a"), sk("d", "b"))

	deps := g.Dependents("a")
	if len(deps) != 2 {
		t.Fatalf("Dependents(a) = %d skills, want 2", len(deps))
	}
	if deps[0].ID != "b" || deps[1].ID != "c" {
		t.Errorf("Dependents(a) = %s,%s, want b,c", deps[0].ID, deps[1].ID)
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	bad := sk("b", "ghost")
	bad.MasteryThreshold = 150
	g := mustBuild(t, sk("a"), bad)

	err := g.Validate()
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	for _, want := range []string{"ghost", "threshold"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %q, got: %v", want, err)
		}
	}
}

func TestValidate_SelfPrerequisite(t *testing.T) {
	g := mustBuild(t, sk("a"), sk("loop", "loop"))
	err := g.Validate()
	if err == nil {
		t.Fatal("expected error for self-prerequisite, got nil")
	}
	if !strings.Contains(err.Error(), "itself") {
		t.Errorf("error should mention self-reference, got: %v", err)
	}
}

func TestValidate_CleanGraphPasses(t *testing.T) {
	g := mustBuild(t, sk("a"), sk("b", "a"))
	if err := g.Validate(); err != nil {
		t.Fatalf("clean graph should validate: %v", err)
	}
}
