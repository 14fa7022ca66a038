// Package skillgraph resolves the skill prerequisite DAG: unlock
// eligibility, topological tier partitioning, and structural validation.
// It is a pure in-memory pass over a loaded catalog; no store access.
package skillgraph

import (
	"fmt"
	"slices"
	"sort"

	"github.com/abhisek/skillforge/internal/catalog"
)

// Graph holds the skill DAG with precomputed indices. Build once from
// the catalog and share; Graph is immutable after construction.
type Graph struct {
	skills     []catalog.Skill
	byID       map[string]*catalog.Skill
	dependents map[string][]string
}

// Build constructs a Graph from a slice of skills. Duplicate IDs are a
// data-integrity error; dangling prerequisites and cycles are tolerated
// here so that per-skill queries still work, and are surfaced by Tiers
// and Validate.
func Build(skills []catalog.Skill) (*Graph, error) {
	g := &Graph{
		skills:     slices.Clone(skills),
		byID:       make(map[string]*catalog.Skill, len(skills)),
		dependents: make(map[string][]string),
	}

	var dupes []string
	for i := range g.skills {
		id := g.skills[i].ID
		if _, seen := g.byID[id]; seen {
			dupes = append(dupes, id)
			continue
		}
		g.byID[id] = &g.skills[i]
	}
	if len(dupes) > 0 {
		return nil, &IntegrityError{Kind: IntegrityDuplicate, SkillIDs: dedupe(dupes)}
	}

	for i := range g.skills {
		for _, prereqID := range g.skills[i].Prerequisites {
			g.dependents[prereqID] = append(g.dependents[prereqID], g.skills[i].ID)
		}
	}
	for id := range g.dependents {
		sort.Strings(g.dependents[id])
	}

	return g, nil
}

// Skill returns a skill by ID.
func (g *Graph) Skill(id string) (catalog.Skill, error) {
	s, ok := g.byID[id]
	if !ok {
		return catalog.Skill{}, fmt.Errorf("skill not found: %q", id)
	}
	return *s, nil
}

// Skills returns all skills in the graph.
func (g *Graph) Skills() []catalog.Skill {
	return slices.Clone(g.skills)
}

// Dependents returns the skills whose prerequisite set includes id.
func (g *Graph) Dependents(id string) []catalog.Skill {
	depIDs := g.dependents[id]
	result := make([]catalog.Skill, 0, len(depIDs))
	for _, depID := range depIDs {
		if s, ok := g.byID[depID]; ok {
			result = append(result, *s)
		}
	}
	return result
}

// IsUnlockable reports whether every prerequisite of the skill is in the
// mastered set. A skill with no prerequisites is always unlockable.
// Inactive skills are never unlockable. masteredOverride names a skill
// to count as mastered before its progress record is committed, which
// lets cascading unlocks run without a read-after-write race; pass ""
// for none.
func (g *Graph) IsUnlockable(id string, mastered map[string]bool, masteredOverride string) bool {
	s, ok := g.byID[id]
	if !ok || !s.Active {
		return false
	}
	for _, prereqID := range s.Prerequisites {
		if prereqID == masteredOverride {
			continue
		}
		if !mastered[prereqID] {
			return false
		}
	}
	return true
}

// Tiers partitions the graph into topological layers using Kahn's
// algorithm: tier 0 is every skill with no prerequisites, tier N+1 is
// every skill whose prerequisites all sit in tiers <= N. Skills left
// unresolved after the peel — members of a cycle, or referencing a
// prerequisite that does not exist — are a data-integrity error, not a
// trailing catch-all tier.
func (g *Graph) Tiers() ([][]catalog.Skill, error) {
	inDegree := make(map[string]int, len(g.skills))
	var dangling []string
	for i := range g.skills {
		s := &g.skills[i]
		inDegree[s.ID] = len(s.Prerequisites)
		for _, prereqID := range s.Prerequisites {
			if _, ok := g.byID[prereqID]; !ok {
				dangling = append(dangling, s.ID)
			}
		}
	}
	if len(dangling) > 0 {
		return nil, &IntegrityError{Kind: IntegrityDangling, SkillIDs: dedupe(dangling)}
	}

	var frontier []string
	for id, deg := range inDegree {
		if deg == 0 {
			frontier = append(frontier, id)
		}
	}
	sort.Strings(frontier)

	var tiers [][]catalog.Skill
	resolved := 0
	for len(frontier) > 0 {
		tier := make([]catalog.Skill, 0, len(frontier))
		var next []string
		for _, id := range frontier {
			tier = append(tier, *g.byID[id])
			resolved++
			for _, depID := range g.dependents[id] {
				inDegree[depID]--
				if inDegree[depID] == 0 {
					next = append(next, depID)
				}
			}
		}
		sort.Strings(next)
		tiers = append(tiers, tier)
		frontier = next
	}

	if resolved < len(g.skills) {
		var cyclic []string
		for id, deg := range inDegree {
			if deg > 0 {
				cyclic = append(cyclic, id)
			}
		}
		sort.Strings(cyclic)
		return nil, &IntegrityError{Kind: IntegrityCycle, SkillIDs: cyclic}
	}

	return tiers, nil
}

func dedupe(ids []string) []string {
	sort.Strings(ids)
	return slices.Compact(ids)
}
