// Package content holds the static copy rendered by the tour.
//
// Everything here is authored configuration data: no computation, no state.
// Two revisions of the page exist and differ only in branding and in whether
// the Cognitive Layer section is present. The statistics quoted in the copy
// ("bus factor of 4", "94% confidence") are illustrative, not measured.
package content

import (
	"github.com/risksurface/risksurface/internal/errors"
)

// Revision identifies one authored variant of the page.
type Revision string

const (
	// RevisionClassic is the original RepoAnalyst page, without the
	// Cognitive Layer section.
	RevisionClassic Revision = "classic"
	// RevisionCognitive is the later RiskSurface page, which adds the
	// Cognitive Layer section and reworks the branding copy.
	RevisionCognitive Revision = "cognitive"
)

// ParseRevision converts a config string into a Revision.
func ParseRevision(s string) (Revision, error) {
	switch Revision(s) {
	case RevisionClassic:
		return RevisionClassic, nil
	case RevisionCognitive:
		return RevisionCognitive, nil
	default:
		return "", errors.Wrapf(errors.ErrUnknownRevision, "revision %q", s)
	}
}

// Valid reports whether the revision names an authored variant.
func (r Revision) Valid() bool {
	return r == RevisionClassic || r == RevisionCognitive
}

// Brand is the product identity shown in the navbar and hero.
type Brand struct {
	Name    string
	Tagline string
}

// Hero is the opening section copy.
type Hero struct {
	Eyebrow  string
	Title    string
	Subtitle string
	// Launch is the label of the hero's launch control ("Start Analysis").
	Launch string
}

// Feature is one methodology card: what the analyzer claims to measure.
type Feature struct {
	Icon        string
	Title       string
	Description string
	// Stat is the illustrative number quoted on the card.
	Stat string
}

// CognitivePanel is the AI Analyst narrative panel. Present only in the
// cognitive revision.
type CognitivePanel struct {
	Title     string
	Intro     string
	Narrative string
	Findings  []string
	// Confidence is the illustrative confidence ratio quoted by the
	// narrative (0.94 renders as "94% confidence").
	Confidence float64
}

// Proof is one entry in the proof grid, rendered as a labelled meter.
type Proof struct {
	Label string
	Value string
	// Ratio in [0,1] drives the meter fill.
	Ratio float64
}

// CTA is the closing call-to-action copy.
type CTA struct {
	Title string
	Body  string
	// Launch is the label of the CTA's launch control ("Initialize System").
	Launch string
}

// FooterColumn is one link column in the footer.
type FooterColumn struct {
	Title string
	Links []string
}

// Footer is the closing section: link columns plus the footer launch control.
type Footer struct {
	Columns []FooterColumn
	// Launch is the label of the footer's launch control.
	Launch string
	Legal  string
}

// Page is the complete authored content for one revision. The section
// order is fixed: hero, methodology, cognitive (when present), proof,
// call-to-action, footer.
type Page struct {
	Revision Revision
	Brand    Brand
	// Nav lists the navbar labels in order. Lower-casing a label yields
	// the identifier of the section it scrolls to.
	Nav       []string
	Hero      Hero
	Features  []Feature
	Cognitive *CognitivePanel
	Proofs    []Proof
	CTA       CTA
	Footer    Footer
}

// HasCognitive reports whether the page includes the Cognitive Layer section.
func (p Page) HasCognitive() bool {
	return p.Cognitive != nil
}

// ForRevision returns the authored page for the given revision.
// Unknown revisions fall back to the cognitive page, matching the
// config default.
func ForRevision(r Revision) Page {
	if r == RevisionClassic {
		return Classic()
	}
	return Cognitive()
}
