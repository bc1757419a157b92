package content

// seedSkills defines the CSEC Principles of Business skill set.
// IDs are stable and referenced by catalogue items and persisted state;
// never reuse or rename an ID.
var seedSkills = []Skill{
	{
		ID:          "pob.nature-of-business",
		Name:        "Nature of Business",
		Description: "Identify the purpose of business activity and the parties involved",
		Strand:      StrandEconomicSystems,
		ObjectiveID: "POB-00101",
		Keywords:    []string{"business", "trade", "exchange", "barter"},
	},
	{
		ID:            "pob.economic-systems",
		Name:          "Economic Systems",
		Description:   "Distinguish planned, free and mixed economies",
		Strand:        StrandEconomicSystems,
		ObjectiveID:   "POB-00102",
		Keywords:      []string{"economy", "planned", "market", "mixed"},
		Prerequisites: []string{"pob.nature-of-business"},
	},
	{
		ID:            "pob.demand-supply",
		Name:          "Demand and Supply",
		Description:   "Interpret demand and supply schedules and equilibrium price",
		Strand:        StrandEconomicSystems,
		ObjectiveID:   "POB-00103",
		Keywords:      []string{"demand", "supply", "equilibrium", "price"},
		Prerequisites: []string{"pob.economic-systems"},
	},
	{
		ID:          "pob.revenue-vs-costs",
		Name:        "Revenue and Costs",
		Description: "Distinguish revenue, fixed costs and variable costs",
		Strand:      StrandBusinessFinance,
		ObjectiveID: "POB-00201",
		Keywords:    []string{"revenue", "cost", "fixed", "variable"},
	},
	{
		ID:            "pob.profit-calculation",
		Name:          "Profit Calculation",
		Description:   "Calculate gross and net profit from trading figures",
		Strand:        StrandBusinessFinance,
		ObjectiveID:   "POB-00202",
		Keywords:      []string{"profit", "gross", "net", "margin"},
		Prerequisites: []string{"pob.revenue-vs-costs"},
	},
	{
		ID:            "pob.balance-sheet",
		Name:          "Balance Sheet",
		Description:   "Classify assets, liabilities and capital on a balance sheet",
		Strand:        StrandBusinessFinance,
		ObjectiveID:   "POB-00203",
		Keywords:      []string{"asset", "liability", "capital", "equity"},
		Prerequisites: []string{"pob.profit-calculation"},
	},
	{
		ID:            "pob.cash-flow",
		Name:          "Cash Flow",
		Description:   "Prepare and interpret a simple cash flow forecast",
		Strand:        StrandBusinessFinance,
		ObjectiveID:   "POB-00204",
		Keywords:      []string{"cash", "inflow", "outflow", "forecast"},
		Prerequisites: []string{"pob.revenue-vs-costs"},
	},
	{
		ID:          "pob.market-research",
		Name:        "Market Research",
		Description: "Select appropriate primary and secondary research methods",
		Strand:      StrandMarketing,
		ObjectiveID: "POB-00301",
		Keywords:    []string{"research", "survey", "primary", "secondary"},
	},
	{
		ID:            "pob.marketing-mix",
		Name:          "Marketing Mix",
		Description:   "Apply the four Ps to a product launch decision",
		Strand:        StrandMarketing,
		ObjectiveID:   "POB-00302",
		Keywords:      []string{"product", "price", "promotion", "place"},
		Prerequisites: []string{"pob.market-research"},
	},
	{
		ID:            "pob.pricing-strategies",
		Name:          "Pricing Strategies",
		Description:   "Choose between penetration, skimming and cost-plus pricing",
		Strand:        StrandMarketing,
		ObjectiveID:   "POB-00303",
		Keywords:      []string{"penetration", "skimming", "cost-plus", "pricing"},
		Prerequisites: []string{"pob.marketing-mix", "pob.revenue-vs-costs"},
	},
	{
		ID:          "pob.factors-of-production",
		Name:        "Factors of Production",
		Description: "Identify land, labour, capital and enterprise in scenarios",
		Strand:      StrandProduction,
		ObjectiveID: "POB-00401",
		Keywords:    []string{"land", "labour", "capital", "enterprise"},
	},
	{
		ID:            "pob.production-levels",
		Name:          "Levels of Production",
		Description:   "Distinguish subsistence, domestic and export production",
		Strand:        StrandProduction,
		ObjectiveID:   "POB-00402",
		Keywords:      []string{"subsistence", "domestic", "export", "surplus"},
		Prerequisites: []string{"pob.factors-of-production"},
	},
	{
		ID:            "pob.economies-of-scale",
		Name:          "Economies of Scale",
		Description:   "Explain internal and external economies of scale",
		Strand:        StrandProduction,
		ObjectiveID:   "POB-00403",
		Keywords:      []string{"scale", "internal", "external", "unit cost"},
		Prerequisites: []string{"pob.production-levels", "pob.revenue-vs-costs"},
	},
	{
		ID:          "pob.entrepreneur-role",
		Name:        "Role of the Entrepreneur",
		Description: "Describe the functions and characteristics of an entrepreneur",
		Strand:      StrandEntrepreneurship,
		ObjectiveID: "POB-00501",
		Keywords:    []string{"entrepreneur", "risk", "innovation", "organisation"},
	},
	{
		ID:            "pob.business-plan",
		Name:          "The Business Plan",
		Description:   "Identify the components and purpose of a business plan",
		Strand:        StrandEntrepreneurship,
		ObjectiveID:   "POB-00502",
		Keywords:      []string{"plan", "executive summary", "operations", "finance"},
		Prerequisites: []string{"pob.entrepreneur-role", "pob.cash-flow"},
	},
	{
		ID:            "pob.business-organisation",
		Name:          "Forms of Business Organisation",
		Description:   "Compare sole traders, partnerships and limited companies",
		Strand:        StrandEntrepreneurship,
		ObjectiveID:   "POB-00503",
		Keywords:      []string{"sole trader", "partnership", "company", "liability"},
		Prerequisites: []string{"pob.entrepreneur-role"},
	},
}

func init() {
	if err := ValidateSkills(seedSkills); err != nil {
		panic(err)
	}
	reg = buildRegistry(seedSkills)
}
