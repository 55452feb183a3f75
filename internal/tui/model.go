package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/hdbplan/hdbplan/internal/calculation"
	"github.com/hdbplan/hdbplan/internal/config"
	"github.com/hdbplan/hdbplan/internal/domain"
	"github.com/hdbplan/hdbplan/internal/tui/components"
)

// Model is the full explorer state. Slider values are the working copy
// of the household; the loaded profile stays untouched so reset can
// return to it.
type Model struct {
	currentScene  Scene
	previousScene Scene

	width  int
	height int

	policyPath  string
	profilePath string

	keys KeyMap

	calc      *calculation.Calculator
	household *domain.Household

	// Slider layout: one income slider per applicant, one savings
	// slider per applicant, then commitments, target price, tenure.
	sliders []*components.Slider
	focused int

	plan     *domain.PurchasePlan
	tenureAt domain.TenureAnalysis

	now func() time.Time

	err     error
	loading bool
}

// NewModel creates the explorer for the given policy and profile
// paths. Empty paths use the built-in defaults.
func NewModel(policyPath, profilePath string) Model {
	return Model{
		currentScene: SceneExplorer,
		policyPath:   policyPath,
		profilePath:  profilePath,
		keys:         DefaultKeyMap(),
		now:          time.Now,
		width:        80,
		height:       24,
		loading:      true,
	}
}

// Init kicks off the profile load (required by tea.Model)
func (m Model) Init() tea.Cmd {
	return loadProfileCmd(m.policyPath, m.profilePath)
}

// loadProfileCmd returns a command that loads the policy and household
func loadProfileCmd(policyPath, profilePath string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()

		policy := config.DefaultPolicy()
		if policyPath != "" {
			loaded, err := parser.LoadPolicy(policyPath)
			if err != nil {
				return ErrorMsg{Err: err}
			}
			policy = loaded
		}

		household := config.DefaultHousehold()
		if profilePath != "" {
			loaded, err := parser.LoadHousehold(profilePath)
			if err != nil {
				return ErrorMsg{Err: err}
			}
			household = loaded
		}

		return ProfileLoadedMsg{Policy: policy, Household: household}
	}
}

// buildSliders populates the parameter sliders from the loaded profile
func (m *Model) buildSliders() {
	if m.calc == nil || m.household == nil {
		return
	}

	ceiling := m.calc.Policy.Loan.IncomeCeiling.InexactFloat64()
	m.sliders = nil

	for i, applicant := range m.household.Applicants {
		m.sliders = append(m.sliders, components.NewSlider(
			fmt.Sprintf("%s income $/mo", applicantLabel(applicant, i)),
			applicant.GrossIncome.InexactFloat64(), 0, ceiling, 100))
	}
	for i, applicant := range m.household.Applicants {
		m.sliders = append(m.sliders, components.NewSlider(
			fmt.Sprintf("%s savings $/mo", applicantLabel(applicant, i)),
			applicant.MonthlyCashSavings.InexactFloat64(), 0, 5000, 50))
	}

	m.sliders = append(m.sliders, components.NewSlider(
		"Monthly commitments $", m.household.Commitments.Total().InexactFloat64(), 0, 5000, 50))
	m.sliders = append(m.sliders, components.NewSlider(
		"Target flat price $", m.household.TargetPrice.InexactFloat64(), 200000, 1000000, 10000))

	minTenure := float64(m.calc.Policy.Loan.MinTenureYears)
	maxTenure := float64(m.calc.Policy.Loan.MaxTenureYears)
	m.sliders = append(m.sliders, components.NewSlider(
		"Loan tenure", maxTenure, minTenure, maxTenure, 1).WithUnit(" years"))

	m.focused = 0
	m.sliders[0].SetFocused(true)
}

func applicantLabel(applicant domain.Applicant, index int) string {
	if applicant.Name != "" {
		return applicant.Name
	}
	return fmt.Sprintf("Applicant %d", index+1)
}

// Slider index helpers; see the layout note on Model.sliders.
func (m *Model) idxCommitments() int { return 2 * len(m.household.Applicants) }
func (m *Model) idxPrice() int       { return 2*len(m.household.Applicants) + 1 }
func (m *Model) idxTenure() int      { return 2*len(m.household.Applicants) + 2 }

// recompute rebuilds the plan from the current slider values
func (m *Model) recompute() {
	if m.calc == nil || m.household == nil || len(m.sliders) == 0 {
		return
	}

	n := len(m.household.Applicants)
	work := domain.Household{
		Applicants:     make([]domain.Applicant, n),
		CompletionDate: m.household.CompletionDate,
	}
	copy(work.Applicants, m.household.Applicants)

	for i := range work.Applicants {
		work.Applicants[i].GrossIncome = decimal.NewFromFloat(m.sliders[i].Value)
		work.Applicants[i].MonthlyCashSavings = decimal.NewFromFloat(m.sliders[n+i].Value)
	}
	work.Commitments = domain.Commitments{
		OtherLoans: decimal.NewFromFloat(m.sliders[m.idxCommitments()].Value),
	}
	work.TargetPrice = decimal.NewFromFloat(m.sliders[m.idxPrice()].Value)

	m.plan = m.calc.BuildPlan(&work, m.now())
	m.tenureAt = m.calc.AnalyzeTenure(
		m.plan.Affordability.LoanAmount,
		int(m.sliders[m.idxTenure()].Value),
		m.plan.Eligibility.MaxMonthlyInstallment,
		m.calc.Policy.Loan.InterestRate,
	)
}

// String returns a human-readable scene name
func (s Scene) String() string {
	switch s {
	case SceneExplorer:
		return "Explorer"
	case SceneTenures:
		return "Tenures"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
