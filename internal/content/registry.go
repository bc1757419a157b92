package content

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// registry holds the skill set with precomputed indices.
type registry struct {
	skills     []Skill
	byID       map[string]*Skill
	byStrand   map[Strand][]Skill
	dependents map[string][]string
	topoOrder  []Skill
	topoIndex  map[string]int
}

// reg is the package-level registry singleton, set by init() in seed.go.
var reg *registry

// buildRegistry constructs the registry from a slice of skills, including
// a deterministic topological order (Kahn's algorithm).
func buildRegistry(skills []Skill) *registry {
	r := &registry{
		skills:     skills,
		byID:       make(map[string]*Skill, len(skills)),
		byStrand:   make(map[Strand][]Skill),
		dependents: make(map[string][]string),
		topoIndex:  make(map[string]int, len(skills)),
	}

	for i := range r.skills {
		r.byID[r.skills[i].ID] = &r.skills[i]
	}

	for i := range r.skills {
		for _, prereqID := range r.skills[i].Prerequisites {
			r.dependents[prereqID] = append(r.dependents[prereqID], r.skills[i].ID)
		}
	}

	inDegree := make(map[string]int, len(skills))
	for i := range skills {
		inDegree[skills[i].ID] = len(skills[i].Prerequisites)
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	var topoOrder []Skill
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		skill := r.byID[id]
		topoOrder = append(topoOrder, *skill)

		deps := slices.Clone(r.dependents[id])
		sort.Strings(deps)
		for _, depID := range deps {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	r.topoOrder = topoOrder
	for i, s := range r.topoOrder {
		r.topoIndex[s.ID] = i
	}

	for _, s := range topoOrder {
		r.byStrand[s.Strand] = append(r.byStrand[s.Strand], s)
	}

	return r
}

// GetSkill returns the skill with the given ID.
func GetSkill(id string) (Skill, error) {
	s, ok := reg.byID[id]
	if !ok {
		return Skill{}, fmt.Errorf("unknown skill: %q", id)
	}
	return *s, nil
}

// KnownSkill reports whether the ID is in the registry.
func KnownSkill(id string) bool {
	_, ok := reg.byID[id]
	return ok
}

// AllSkills returns every skill in topological order.
func AllSkills() []Skill {
	return slices.Clone(reg.topoOrder)
}

// SkillsByStrand returns the skills in a strand, topologically ordered.
func SkillsByStrand(s Strand) []Skill {
	return slices.Clone(reg.byStrand[s])
}

// Dependents returns the IDs of skills that list the given skill as a
// prerequisite.
func Dependents(id string) []string {
	return slices.Clone(reg.dependents[id])
}

// ValidateSkills performs structural checks on a skill set: duplicate IDs,
// dangling prerequisites, and prerequisite cycles.
func ValidateSkills(skills []Skill) error {
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
		}
	}

	// Cycle check via Kahn's algorithm.
	inDegree := make(map[string]int, len(skills))
	adj := make(map[string][]string)
	for _, s := range skills {
		inDegree[s.ID] = len(s.Prerequisites)
		for _, prereqID := range s.Prerequisites {
			adj[prereqID] = append(adj[prereqID], s.ID)
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
		for _, depID := range adj[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}
	if visited != len(skills) {
		errs = append(errs, "prerequisite cycle detected")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid skill set:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
