package content

// Classic returns the original RepoAnalyst page. No Cognitive Layer,
// diagnostics-first branding.
func Classic() Page {
	return Page{
		Revision: RevisionClassic,
		Brand: Brand{
			Name:    "RepoAnalyst",
			Tagline: "Structural risk analysis for source repositories",
		},
		Nav: []string{"Overview", "Methodology", "Proof", "Access"},
		Hero: Hero{
			Eyebrow:  "REPOSITORY DIAGNOSTICS",
			Title:    "Know where your codebase will break",
			Subtitle: "RepoAnalyst reads commit history, ownership, and dependency graphs to map the structural and social risks hiding in your repository.",
			Launch:   "Start Analysis",
		},
		Features: methodologyCards(),
		Proofs:   proofGrid(),
		CTA: CTA{
			Title:  "Put your repository under the lens",
			Body:   "Connect a repository and get a ranked risk map of its hotspots, ownership gaps, and fragile dependencies.",
			Launch: "Initialize System",
		},
		Footer: Footer{
			Columns: footerColumns(),
			Launch:  "Launch RepoAnalyst",
			Legal:   "© 2026 RepoAnalyst Labs. Metrics shown are illustrative.",
		},
	}
}

// Cognitive returns the later RiskSurface page: reworked branding plus the
// Cognitive Layer section.
func Cognitive() Page {
	return Page{
		Revision: RevisionCognitive,
		Brand: Brand{
			Name:    "RiskSurface",
			Tagline: "See the risk surface of every repository",
		},
		Nav: []string{"Overview", "Methodology", "Analyst", "Proof", "Access"},
		Hero: Hero{
			Eyebrow:  "COGNITIVE REPOSITORY ANALYSIS",
			Title:    "Your repository has a risk surface. Map it.",
			Subtitle: "RiskSurface combines churn, bus-factor, and dependency signals with an AI analyst that explains what the numbers mean for your team.",
			Launch:   "Start Analysis",
		},
		Features:  methodologyCards(),
		Cognitive: cognitivePanel(),
		Proofs:    proofGrid(),
		CTA: CTA{
			Title:  "Let the analyst read your repository",
			Body:   "Connect a repository and the cognitive layer turns raw structural signals into a narrative your whole team can act on.",
			Launch: "Initialize System",
		},
		Footer: Footer{
			Columns: footerColumns(),
			Launch:  "Launch RiskSurface",
			Legal:   "© 2026 RiskSurface Labs. Metrics shown are illustrative.",
		},
	}
}

// methodologyCards returns the shared methodology grid. Both revisions
// claim the same three signal families.
func methodologyCards() []Feature {
	return []Feature{
		{
			Icon:        "●",
			Title:       "Code Churn Mapping",
			Description: "Tracks which files change together and how often, surfacing the hotspots where defects cluster long before they page anyone.",
			Stat:        "38% of defects traced to 4% of files",
		},
		{
			Icon:        "◆",
			Title:       "Bus Factor Detection",
			Description: "Measures ownership concentration per subsystem. A payments module with a bus factor of 4 reads very differently from one carried by a single maintainer.",
			Stat:        "bus factor of 4 on critical paths",
		},
		{
			Icon:        "▲",
			Title:       "Dependency Fragility",
			Description: "Scores every third-party dependency by release cadence, maintainer depth, and how far behind upstream you have drifted.",
			Stat:        "97 transitive dependencies scored",
		},
	}
}

// cognitivePanel returns the AI Analyst section, present only in the
// cognitive revision.
func cognitivePanel() *CognitivePanel {
	return &CognitivePanel{
		Title: "Cognitive Layer",
		Intro: "The analyst reads every structural signal and writes the finding a staff engineer would.",
		Narrative: "Churn in checkout-service concentrates around two files owned by a single engineer. " +
			"If that engineer rotates off, review latency on the payment path roughly doubles.",
		Findings: []string{
			"Ownership gap forming in checkout-service",
			"Upgrade lag on 3 security-sensitive dependencies",
			"Review load imbalanced 7:1 across the platform team",
		},
		Confidence: 0.94,
	}
}

// proofGrid returns the shared proof meters.
func proofGrid() []Proof {
	return []Proof{
		{Label: "Signal confidence on flagged hotspots", Value: "94%", Ratio: 0.94},
		{Label: "Hotspots confirmed by postmortems", Value: "87%", Ratio: 0.87},
		{Label: "Critical-path coverage per scan", Value: "91%", Ratio: 0.91},
		{Label: "Findings accepted by maintainers", Value: "89%", Ratio: 0.89},
	}
}

func footerColumns() []FooterColumn {
	return []FooterColumn{
		{Title: "Product", Links: []string{"Overview", "Methodology", "Pricing"}},
		{Title: "Company", Links: []string{"About", "Careers", "Contact"}},
		{Title: "Resources", Links: []string{"Docs", "Changelog", "Status"}},
	}
}
