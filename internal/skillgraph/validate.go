package skillgraph

import (
	"fmt"
	"strings"

	"github.com/abhisek/skillforge/internal/catalog"
)

// Validate performs every structural check on the graph's skill set and
// returns a combined error describing all problems found, or nil.
// Unlike Tiers, which stops at the first integrity class it hits, this
// is the full catalog health report used by the CLI.
func (g *Graph) Validate() error {
	return validateSkills(g.skills)
}

func validateSkills(skills []catalog.Skill) error {
	var errs []string

	idSet := make(map[string]bool, len(skills))
	for _, s := range skills {
		if idSet[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate skill ID: %q", s.ID))
		}
		idSet[s.ID] = true
	}

	for _, s := range skills {
		for _, prereqID := range s.Prerequisites {
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("skill %q references nonexistent prerequisite %q", s.ID, prereqID))
			}
			if prereqID == s.ID {
				errs = append(errs, fmt.Sprintf("skill %q lists itself as a prerequisite", s.ID))
			}
		}
	}

	// Cycle check via Kahn's algorithm over the valid edge set.
	inDegree := make(map[string]int, len(skills))
	forward := make(map[string][]string)
	for _, s := range skills {
		for _, prereqID := range s.Prerequisites {
			if !idSet[prereqID] {
				continue
			}
			inDegree[s.ID]++
			forward[prereqID] = append(forward[prereqID], s.ID)
		}
	}

	var queue []string
	for _, s := range skills {
		if inDegree[s.ID] == 0 {
			queue = append(queue, s.ID)
		}
	}
	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range forward[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}
	if visited < len(skills) {
		var cyclic []string
		for _, s := range skills {
			if inDegree[s.ID] > 0 {
				cyclic = append(cyclic, s.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving skills: %s", strings.Join(cyclic, ", ")))
	}

	hasRoot := false
	for _, s := range skills {
		if len(s.Prerequisites) == 0 {
			hasRoot = true
			break
		}
	}
	if len(skills) > 0 && !hasRoot {
		errs = append(errs, "no root skills found (at least one skill must have no prerequisites)")
	}

	for _, s := range skills {
		if s.MasteryThreshold <= 0 || s.MasteryThreshold > 100 {
			errs = append(errs, fmt.Sprintf("skill %q: mastery threshold must be in (0, 100], got %d", s.ID, s.MasteryThreshold))
		}
		if s.XPReward < 0 {
			errs = append(errs, fmt.Sprintf("skill %q: XP reward must be >= 0, got %d", s.ID, s.XPReward))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("skill graph validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
