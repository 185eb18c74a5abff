// Package prompt holds industry pitch templates and prompt construction
// for the generation endpoints.
package prompt

import (
	"sort"
	"strings"
)

// SlideTemplate outlines one slide of an industry template.
type SlideTemplate struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tips    []string `json:"tips"`
}

// IndustryTemplate bundles the metrics, focus areas, and slide outline
// investors expect for a given industry.
type IndustryTemplate struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	KeyMetrics  []string        `json:"keyMetrics"`
	FocusAreas  []string        `json:"focusAreas"`
	Slides      []SlideTemplate `json:"slides"`
}

// IndustryInfo is the listing entry for an industry template.
type IndustryInfo struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var industryTemplates = map[string]IndustryTemplate{
	"saas": {
		Name:        "SaaS & Software",
		Description: "Software as a Service and B2B software companies",
		KeyMetrics:  []string{"MRR/ARR", "Churn Rate", "CAC/LTV", "Net Revenue Retention", "Product-Market Fit"},
		FocusAreas:  []string{"Recurring Revenue", "Scalability", "Customer Success", "Product Stickiness"},
		Slides: []SlideTemplate{
			{
				Title:   "Company Overview",
				Content: "We're building [Company Name], a [specific SaaS solution] that helps [target customer] achieve [key outcome] through [unique approach].",
				Tips:    []string{"Lead with the outcome you deliver", "Be specific about your target market", "Highlight your unique approach"},
			},
			{
				Title:   "Problem",
				Content: "[Target customers] struggle with [specific pain point] which costs them [quantified impact] in [time/money/efficiency]. Current solutions are [limitation 1], [limitation 2], and [limitation 3].",
				Tips:    []string{"Quantify the pain with real numbers", "Show you understand the market deeply", "Highlight gaps in existing solutions"},
			},
			{
				Title:   "Solution",
				Content: "Our platform solves this by [core functionality] that enables [key benefits]. Unlike alternatives, we [unique differentiator] resulting in [measurable outcome].",
				Tips:    []string{"Focus on outcomes, not features", "Clearly state your differentiation", "Use customer language, not tech jargon"},
			},
			{
				Title:   "Market Opportunity",
				Content: "The [specific market segment] market is worth $[TAM] and growing at [growth rate]%. Our serviceable addressable market (SAM) is $[SAM] with [number] potential customers.",
				Tips:    []string{"Use bottom-up market sizing", "Show market growth trends", "Be realistic about your addressable market"},
			},
			{
				Title:   "Product Demo",
				Content: "Our platform includes: [Feature 1] - [benefit], [Feature 2] - [benefit], [Feature 3] - [benefit]. The user workflow is: [step 1] → [step 2] → [outcome].",
				Tips:    []string{"Show, don't just tell", "Focus on user workflow", "Highlight key differentiating features"},
			},
			{
				Title:   "Business Model",
				Content: "We operate on a [subscription model] with pricing tiers: [Tier 1] at $[price], [Tier 2] at $[price]. Average customer pays $[ARPU] with [contract length] contracts.",
				Tips:    []string{"Show clear pricing strategy", "Demonstrate unit economics", "Explain expansion revenue opportunities"},
			},
			{
				Title:   "Traction & Metrics",
				Content: "Current metrics: $[MRR] MRR growing [growth rate]% monthly, [number] customers, [churn rate]% monthly churn, $[CAC] CAC with $[LTV] LTV ([LTV:CAC ratio] ratio).",
				Tips:    []string{"Lead with revenue metrics", "Show consistent growth", "Prove strong unit economics"},
			},
			{
				Title:   "Competition",
				Content: "We compete with [Competitor 1] (limited by [weakness]), [Competitor 2] (lacks [capability]), and internal solutions (time-consuming). Our advantage: [key differentiator].",
				Tips:    []string{"Acknowledge real competition", "Show clear differentiation", "Position against status quo"},
			},
			{
				Title:   "Go-to-Market Strategy",
				Content: "We acquire customers through [Channel 1] (cost: $[CAC], conversion: [rate]%), [Channel 2] (cost: $[CAC], conversion: [rate]%). Sales cycle: [duration] with [close rate]% close rate.",
				Tips:    []string{"Show proven acquisition channels", "Include specific metrics", "Demonstrate scalable processes"},
			},
			{
				Title:   "Team",
				Content: "Led by [Founder] ([background in relevant area]), [CTO] ([technical expertise]), [VP Sales] ([sales track record]). Combined [years] years in [industry] with [relevant achievements].",
				Tips:    []string{"Highlight relevant experience", "Show complementary skills", "Include notable achievements"},
			},
			{
				Title:   "Financial Projections",
				Content: "Projecting $[revenue] revenue by Year 3 with [margin]% gross margins. Key assumptions: [customers] customers at $[ARPU] ARPU with [churn]% annual churn.",
				Tips:    []string{"Show realistic growth trajectory", "Include key assumptions", "Demonstrate path to profitability"},
			},
			{
				Title:   "Funding Ask",
				Content: "Raising $[amount] to achieve [milestone 1], [milestone 2], and [milestone 3]. Use of funds: [%] product development, [%] sales & marketing, [%] team expansion.",
				Tips:    []string{"Be specific about use of funds", "Tie to clear milestones", "Show how funding accelerates growth"},
			},
		},
	},

	"fintech": {
		Name:        "Fintech & Financial Services",
		Description: "Financial technology and financial services companies",
		KeyMetrics:  []string{"Transaction Volume", "Take Rate", "AUM", "Regulatory Compliance", "Security Metrics"},
		FocusAreas:  []string{"Regulatory Compliance", "Security", "Trust", "Network Effects", "Financial Metrics"},
		Slides: []SlideTemplate{
			{
				Title:   "Company Overview",
				Content: "We're revolutionizing [financial service area] by providing [target customers] with [key value proposition] that [outcome achieved].",
				Tips:    []string{"Emphasize trust and reliability", "Highlight regulatory compliance", "Show deep financial expertise"},
			},
			{
				Title:   "Problem",
				Content: "Traditional [financial service] is broken: [pain point 1] costs users $[amount], [pain point 2] creates [friction], and [pain point 3] excludes [underserved population].",
				Tips:    []string{"Quantify financial impact", "Show regulatory gaps", "Highlight underserved markets"},
			},
			{
				Title:   "Solution",
				Content: "Our platform enables [core functionality] through [technology/approach] that reduces costs by [%], improves [metric] by [amount], and serves [previously excluded group].",
				Tips:    []string{"Emphasize cost savings", "Show improved user experience", "Highlight inclusion benefits"},
			},
			{
				Title:   "Market Opportunity",
				Content: "The [financial sector] processes $[volume] annually. Our target segment represents $[TAM] with [growth rate]% annual growth driven by [trend 1] and [trend 2].",
				Tips:    []string{"Use transaction volume data", "Show regulatory tailwinds", "Highlight demographic shifts"},
			},
			{
				Title:   "Product & Technology",
				Content: "Built on [technology stack] with [security features]. Core capabilities: [feature 1], [feature 2], [feature 3]. API-first architecture enables [integration benefits].",
				Tips:    []string{"Emphasize security and compliance", "Show technical differentiation", "Highlight integration capabilities"},
			},
			{
				Title:   "Business Model",
				Content: "Revenue streams: [%] transaction fees ([rate]% take rate), [%] subscription fees ($[amount] per user), [%] interchange/spread ([basis points]).",
				Tips:    []string{"Show multiple revenue streams", "Include take rates and spreads", "Demonstrate scalable economics"},
			},
			{
				Title:   "Regulatory & Compliance",
				Content: "Licensed as [license type] in [jurisdictions]. Compliant with [regulation 1], [regulation 2]. Partnerships with [regulated entity] for [compliance area].",
				Tips:    []string{"Show regulatory readiness", "Highlight compliance investments", "Demonstrate regulatory relationships"},
			},
			{
				Title:   "Traction & Metrics",
				Content: "Processing $[volume] monthly volume, [number] active users, [%] month-over-month growth. Key metrics: [take rate]% take rate, $[CAC] CAC, [retention]% user retention.",
				Tips:    []string{"Lead with transaction volume", "Show user growth", "Include financial efficiency metrics"},
			},
			{
				Title:   "Partnerships & Distribution",
				Content: "Strategic partnerships with [Partner 1] ([benefit]), [Partner 2] ([distribution channel]). Integration with [Platform] reaches [number] potential users.",
				Tips:    []string{"Show strategic partnerships", "Highlight distribution advantages", "Demonstrate network effects"},
			},
			{
				Title:   "Security & Risk Management",
				Content: "Security: [encryption standard], [compliance certification], [security measures]. Risk management: [risk controls], [monitoring systems], [insurance coverage].",
				Tips:    []string{"Emphasize security measures", "Show risk mitigation", "Highlight insurance and compliance"},
			},
			{
				Title:   "Financial Projections",
				Content: "Projecting $[revenue] revenue by Year 3 processing $[volume] in transactions. Unit economics: $[CAC] CAC, $[LTV] LTV, [months] payback period.",
				Tips:    []string{"Show transaction volume growth", "Include unit economics", "Demonstrate scalable margins"},
			},
			{
				Title:   "Funding Ask",
				Content: "Raising $[amount] for [regulatory expansion], [product development], and [market expansion]. Funds enable processing $[volume] and serving [customers] by [timeline].",
				Tips:    []string{"Tie to regulatory milestones", "Show capital efficiency", "Highlight growth acceleration"},
			},
		},
	},

	"healthcare": {
		Name:        "Healthcare & Biotech",
		Description: "Healthcare technology, medical devices, and biotechnology companies",
		KeyMetrics:  []string{"Clinical Outcomes", "Regulatory Milestones", "Patient Adoption", "Cost Savings", "Safety Profile"},
		FocusAreas:  []string{"Clinical Evidence", "Regulatory Pathway", "Patient Outcomes", "Healthcare Economics", "Safety"},
		Slides: []SlideTemplate{
			{
				Title:   "Company Overview",
				Content: "We're developing [medical solution] to treat [condition/problem] affecting [patient population]. Our approach [unique methodology] has shown [key clinical outcome].",
				Tips:    []string{"Lead with patient impact", "Highlight clinical evidence", "Show clear medical need"},
			},
			{
				Title:   "Medical Problem",
				Content: "[Condition] affects [number] patients globally, costing healthcare systems $[amount] annually. Current treatments have [limitation 1], [limitation 2], with [%] of patients experiencing [adverse outcome].",
				Tips:    []string{"Quantify patient impact", "Show healthcare economic burden", "Highlight treatment gaps"},
			},
			{
				Title:   "Solution & Mechanism",
				Content: "Our [solution type] works by [mechanism of action] to achieve [therapeutic outcome]. Unlike existing treatments, we [differentiation] resulting in [improved outcome].",
				Tips:    []string{"Explain mechanism clearly", "Show clinical differentiation", "Use accessible language"},
			},
			{
				Title:   "Clinical Evidence",
				Content: "Clinical results: [primary endpoint] improved by [%], [secondary endpoint] showed [result]. Safety profile: [adverse events rate]% vs [comparator rate]% for standard care.",
				Tips:    []string{"Lead with primary endpoints", "Show statistical significance", "Highlight safety advantages"},
			},
			{
				Title:   "Market Opportunity",
				Content: "Target market: [patient population] patients with $[market size] annual treatment costs. Market growing [%] annually due to [demographic trend] and [clinical trend].",
				Tips:    []string{"Size by patient population", "Include treatment costs", "Show market growth drivers"},
			},
			{
				Title:   "Regulatory Pathway",
				Content: "Regulatory strategy: [pathway] designation with [regulatory body]. Timeline: [Phase] completion by [date], [submission type] filing [date], approval expected [timeframe].",
				Tips:    []string{"Show clear regulatory path", "Include realistic timelines", "Highlight regulatory advantages"},
			},
			{
				Title:   "Competitive Landscape",
				Content: "Current standard of care: [treatment] with [limitations]. Pipeline competitors: [Competitor 1] ([stage], [limitation]), [Competitor 2] ([differentiation]).",
				Tips:    []string{"Compare to standard of care", "Show competitive advantages", "Include pipeline analysis"},
			},
			{
				Title:   "Business Model",
				Content: "Revenue model: [pricing strategy] at $[price] per [unit]. Target customers: [payers/providers] with [reimbursement strategy]. Market access through [channels].",
				Tips:    []string{"Show clear pricing rationale", "Address reimbursement", "Demonstrate market access"},
			},
			{
				Title:   "Development Timeline",
				Content: "Milestones: [Current phase] completion [date], [Next phase] initiation [date], [Regulatory milestone] [date], commercial launch [timeframe].",
				Tips:    []string{"Show realistic timelines", "Include key milestones", "Highlight de-risking events"},
			},
			{
				Title:   "Team & Advisors",
				Content: "Led by [Founder] ([medical/scientific background]), [CMO] ([clinical expertise]), [CRO] ([regulatory experience]). Advisory board includes [Key Advisor] ([credentials]).",
				Tips:    []string{"Highlight medical expertise", "Show regulatory experience", "Include key opinion leaders"},
			},
			{
				Title:   "Financial Projections",
				Content: "Peak sales projection: $[revenue] by Year [X] treating [%] of addressable patients. Development costs: $[amount] to approval, commercial launch requires $[amount].",
				Tips:    []string{"Show peak sales potential", "Include development costs", "Demonstrate commercial viability"},
			},
			{
				Title:   "Funding Ask",
				Content: "Raising $[amount] to complete [clinical milestone], advance [development activity], and prepare for [next phase]. Funding takes us to [value inflection point].",
				Tips:    []string{"Tie to clinical milestones", "Show value inflection", "Include risk mitigation"},
			},
		},
	},

	"ecommerce": {
		Name:        "E-commerce & Retail",
		Description: "E-commerce platforms, retail technology, and consumer brands",
		KeyMetrics:  []string{"GMV", "Conversion Rate", "AOV", "Customer Acquisition Cost", "Inventory Turnover"},
		FocusAreas:  []string{"Customer Experience", "Supply Chain", "Brand Building", "Unit Economics", "Market Expansion"},
		Slides: []SlideTemplate{
			{
				Title:   "Company Overview",
				Content: "We're building [brand/platform] that serves [target customers] with [product category] through [unique approach]. We've achieved [key traction metric] in [timeframe].",
				Tips:    []string{"Define your category clearly", "Show customer focus", "Highlight early traction"},
			},
			{
				Title:   "Market Problem",
				Content: "Customers in [category] face [pain point 1] leading to [consequence], [pain point 2] causing [friction], and [pain point 3] resulting in [dissatisfaction].",
				Tips:    []string{"Focus on customer pain points", "Show market inefficiencies", "Quantify customer impact"},
			},
			{
				Title:   "Solution & Value Proposition",
				Content: "We solve this through [approach] that delivers [benefit 1], [benefit 2], and [benefit 3]. Our unique advantage is [differentiation] enabling [customer outcome].",
				Tips:    []string{"Lead with customer benefits", "Show clear differentiation", "Focus on customer outcomes"},
			},
			{
				Title:   "Market Opportunity",
				Content: "The [product category] market is $[size] growing [%] annually. Our target segment represents $[TAM] with [trend 1] and [trend 2] driving growth.",
				Tips:    []string{"Size the category market", "Show growth trends", "Identify market drivers"},
			},
			{
				Title:   "Product & Customer Experience",
				Content: "Our platform offers [core features] with [unique capabilities]. Customer journey: [discovery] → [consideration] → [purchase] → [retention] with [conversion rates] at each stage.",
				Tips:    []string{"Show customer journey", "Highlight unique features", "Include conversion metrics"},
			},
			{
				Title:   "Business Model & Unit Economics",
				Content: "Revenue streams: [%] product sales (margin: [%]), [%] marketplace fees ([%] take rate). Unit economics: $[AOV] AOV, $[CAC] CAC, $[LTV] LTV ([ratio] LTV:CAC).",
				Tips:    []string{"Show multiple revenue streams", "Include unit economics", "Demonstrate profitability path"},
			},
			{
				Title:   "Supply Chain & Operations",
				Content: "Supply chain: [sourcing strategy] with [number] suppliers in [regions]. Fulfillment: [approach] with [delivery time] average delivery and [%] on-time rate.",
				Tips:    []string{"Show supply chain advantages", "Highlight operational efficiency", "Include delivery metrics"},
			},
			{
				Title:   "Traction & Growth Metrics",
				Content: "Current metrics: $[GMV] monthly GMV, [number] customers, [%] repeat purchase rate, [%] monthly growth. Customer metrics: $[AOV] AOV, [frequency] purchase frequency.",
				Tips:    []string{"Lead with GMV growth", "Show customer retention", "Include engagement metrics"},
			},
			{
				Title:   "Marketing & Customer Acquisition",
				Content: "Acquisition channels: [Channel 1] ($[CAC], [%] of customers), [Channel 2] ($[CAC], [%] of customers). Brand building through [strategy] with [engagement metrics].",
				Tips:    []string{"Show diversified acquisition", "Include channel economics", "Highlight brand building"},
			},
			{
				Title:   "Competition & Differentiation",
				Content: "We compete with [Competitor 1] ([weakness]), [Competitor 2] ([limitation]), and traditional retail ([disadvantage]). Our moat: [sustainable advantage].",
				Tips:    []string{"Show competitive positioning", "Highlight sustainable advantages", "Address traditional retail"},
			},
			{
				Title:   "Financial Projections",
				Content: "Projecting $[revenue] revenue by Year 3 with [%] gross margins. Growth drivers: [customers] customers at $[AOV] AOV with [%] repeat rate.",
				Tips:    []string{"Show realistic growth", "Include margin expansion", "Highlight growth drivers"},
			},
			{
				Title:   "Funding Ask",
				Content: "Raising $[amount] for [inventory/working capital], [marketing/customer acquisition], and [geographic/category expansion]. Target: $[GMV] GMV and [customers] customers by [timeline].",
				Tips:    []string{"Show capital efficiency", "Tie to growth milestones", "Include expansion plans"},
			},
		},
	},

	"ai": {
		Name:        "AI & Machine Learning",
		Description: "Artificial intelligence, machine learning, and data science companies",
		KeyMetrics:  []string{"Model Performance", "Data Quality", "Inference Speed", "Training Costs", "Accuracy Metrics"},
		FocusAreas:  []string{"Technical Differentiation", "Data Advantage", "Model Performance", "Scalability", "AI Ethics"},
		Slides: []SlideTemplate{
			{
				Title:   "Company Overview",
				Content: "We're building AI-powered [solution] that enables [target users] to [key capability] with [performance metric] accuracy/speed/efficiency improvement over current methods.",
				Tips:    []string{"Lead with AI capability", "Quantify performance gains", "Show clear use case"},
			},
			{
				Title:   "Problem & AI Opportunity",
				Content: "Current [process/decision] relies on [manual/legacy approach] resulting in [inefficiency/error rate]. AI can solve this by [capability] but existing solutions lack [limitation].",
				Tips:    []string{"Show AI-solvable problem", "Highlight current limitations", "Demonstrate AI advantage"},
			},
			{
				Title:   "AI Solution & Technology",
				Content: "Our [AI approach] uses [technical method] trained on [data description] to achieve [performance metric]. Key innovations: [innovation 1], [innovation 2], [innovation 3].",
				Tips:    []string{"Explain AI approach clearly", "Highlight technical innovations", "Show performance metrics"},
			},
			{
				Title:   "Data Advantage",
				Content: "Our dataset: [size/quality] of [data type] with [unique characteristics]. Data sources: [source 1], [source 2]. Data moat: [competitive advantage] creates [barrier to entry].",
				Tips:    []string{"Show data quality and size", "Highlight unique data sources", "Explain data moat"},
			},
			{
				Title:   "Model Performance",
				Content: "Performance metrics: [accuracy]% accuracy ([benchmark] baseline), [speed] inference time, [cost] per prediction. Validation: [validation method] on [test set description].",
				Tips:    []string{"Include key performance metrics", "Compare to benchmarks", "Show validation rigor"},
			},
			{
				Title:   "Market Opportunity",
				Content: "AI in [industry] market: $[size] growing [%] annually. Our addressable market: [use cases] representing $[TAM] opportunity driven by [adoption trend].",
				Tips:    []string{"Size AI market opportunity", "Show adoption trends", "Identify specific use cases"},
			},
			{
				Title:   "Product & Integration",
				Content: "Deployment options: [API/SDK/Platform] with [integration method]. User workflow: [input] → [AI processing] → [output/action]. Performance: [latency] response time.",
				Tips:    []string{"Show integration simplicity", "Highlight user workflow", "Include performance specs"},
			},
			{
				Title:   "Business Model",
				Content: "Pricing: $[price] per [unit/prediction/user] with [pricing tiers]. Revenue streams: [%] usage-based, [%] subscription, [%] professional services.",
				Tips:    []string{"Show scalable pricing model", "Include multiple revenue streams", "Demonstrate unit economics"},
			},
			{
				Title:   "Traction & Validation",
				Content: "Current traction: [customers] customers, [usage metric] monthly predictions/users, [growth rate]% monthly growth. Customer results: [outcome 1], [outcome 2].",
				Tips:    []string{"Show usage metrics", "Include customer outcomes", "Highlight growth trajectory"},
			},
			{
				Title:   "AI Ethics & Governance",
				Content: "AI governance: [bias mitigation], [explainability features], [privacy protection]. Compliance: [regulations] compliant with [audit/certification] validation.",
				Tips:    []string{"Address AI ethics proactively", "Show bias mitigation", "Highlight compliance measures"},
			},
			{
				Title:   "Technical Roadmap",
				Content: "Roadmap: [capability 1] by [timeline], [capability 2] by [timeline]. R&D focus: [research area 1], [research area 2]. Technical milestones: [milestone] by [date].",
				Tips:    []string{"Show technical evolution", "Highlight R&D priorities", "Include realistic timelines"},
			},
			{
				Title:   "Funding Ask",
				Content: "Raising $[amount] for [R&D/talent], [data acquisition], and [infrastructure scaling]. Goals: [performance improvement], [market expansion], [technical milestone].",
				Tips:    []string{"Show R&D investment needs", "Tie to technical milestones", "Highlight talent requirements"},
			},
		},
	},
}

// GetIndustryTemplate returns the template for an industry, defaulting to
// saas when the industry is unknown.
func GetIndustryTemplate(industry string) IndustryTemplate {
	if tpl, ok := industryTemplates[strings.ToLower(industry)]; ok {
		return tpl
	}
	return industryTemplates["saas"]
}

// LookupIndustryTemplate returns the template for an industry without the
// saas default.
func LookupIndustryTemplate(industry string) (IndustryTemplate, bool) {
	tpl, ok := industryTemplates[strings.ToLower(industry)]
	return tpl, ok
}

// IndustryList returns the available industry templates sorted by key.
func IndustryList() []IndustryInfo {
	keys := make([]string, 0, len(industryTemplates))
	for key := range industryTemplates {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	list := make([]IndustryInfo, 0, len(keys))
	for _, key := range keys {
		tpl := industryTemplates[key]
		list = append(list, IndustryInfo{Key: key, Name: tpl.Name, Description: tpl.Description})
	}
	return list
}
