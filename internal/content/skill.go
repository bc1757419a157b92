package content

// Strand groups skills into a syllabus content strand.
type Strand string

const (
	StrandBusinessFinance  Strand = "business-finance"
	StrandMarketing        Strand = "marketing"
	StrandProduction       Strand = "production"
	StrandEconomicSystems  Strand = "economic-systems"
	StrandEntrepreneurship Strand = "entrepreneurship"
)

// AllStrands returns all strands in display order.
func AllStrands() []Strand {
	return []Strand{
		StrandEconomicSystems,
		StrandBusinessFinance,
		StrandMarketing,
		StrandProduction,
		StrandEntrepreneurship,
	}
}

// StrandDisplayName returns a human-readable name for a strand.
func StrandDisplayName(s Strand) string {
	switch s {
	case StrandBusinessFinance:
		return "Business Finance"
	case StrandMarketing:
		return "Marketing"
	case StrandProduction:
		return "Production"
	case StrandEconomicSystems:
		return "Economic Systems"
	case StrandEntrepreneurship:
		return "Entrepreneurship"
	default:
		return string(s)
	}
}

// Skill is a fine-grained syllabus skill tracked by the engine.
type Skill struct {
	ID            string
	Name          string
	Description   string
	Strand        Strand
	ObjectiveID   string
	Keywords      []string
	Prerequisites []string
}
