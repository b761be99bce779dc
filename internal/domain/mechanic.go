package domain

import "strconv"

// Mechanic is a mechanic's identity. Skills, cost and avoidance are all
// looked up by this id; Mechanic itself carries no other attributes.
type Mechanic int

func (m Mechanic) String() string { return strconv.Itoa(int(m)) }

// BaseID identifies a maintenance facility. The display letter
// (A/B/C) is derived via BaseDisplayLetter, never stored on the id.
type BaseID int

func (b BaseID) String() string { return strconv.Itoa(int(b)) }

// PeriodID is a rotation-cycle index (spec.md Glossary: Group/Period).
type PeriodID int

func (p PeriodID) String() string { return strconv.Itoa(int(p)) }

// ShiftID is 1 (Day) or 2 (Night); the name is presentation-only.
type ShiftID int

func (s ShiftID) String() string { return strconv.Itoa(int(s)) }

// Skill is a (aircraft, discipline) pair, optionally qualified as an
// inspector skill rather than a regular skill.
type Skill struct {
	Aircraft    AircraftType
	Discipline  SkillDiscipline
	IsInspector bool
}

// Name returns the input-column name this skill is encoded as.
func (s Skill) Name() string {
	if s.IsInspector {
		return InspectorSkillName(s.Aircraft, s.Discipline)
	}
	return SkillName(s.Aircraft, s.Discipline)
}

// SkillSet splits a mechanic's certifications into regular and
// inspector sub-maps, keyed by the input column name. A missing key
// means the mechanic does not hold that skill (spec.md §3:
// "Missing column ⇒ 0").
type SkillSet struct {
	Regular   map[string]bool
	Inspector map[string]bool
}

// NewSkillSet returns an empty SkillSet ready for population.
func NewSkillSet() SkillSet {
	return SkillSet{
		Regular:   make(map[string]bool),
		Inspector: make(map[string]bool),
	}
}

// HasRegular reports whether the set holds the regular skill named col.
func (s SkillSet) HasRegular(col string) bool { return s.Regular[col] }

// HasInspector reports whether the set holds the inspector skill named col.
func (s SkillSet) HasInspector(col string) bool { return s.Inspector[col] }
