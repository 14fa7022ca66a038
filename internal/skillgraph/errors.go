package skillgraph

import (
	"fmt"
	"strings"
)

// IntegrityKind classifies a structural defect in the skill graph.
type IntegrityKind string

const (
	IntegrityCycle     IntegrityKind = "cycle"
	IntegrityDangling  IntegrityKind = "dangling-prerequisite"
	IntegrityDuplicate IntegrityKind = "duplicate-id"
)

// IntegrityError reports a structural defect in the prerequisite graph.
// It is fatal to tier computation for the affected subgraph and must be
// repaired in the catalog, not worked around.
type IntegrityError struct {
	Kind     IntegrityKind
	SkillIDs []string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("skill graph integrity: %s involving %s",
		e.Kind, strings.Join(e.SkillIDs, ", "))
}
