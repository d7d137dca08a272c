package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "gooze.dev/pkg/mutanalysis/internal/model"
	"golang.org/x/term"
)

// Lines outside the table: title box, score, findings, help.
const reservedLines = 10

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("63"))
	goodScoreStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	badScoreStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	helpStyle      = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
	config StartConfig
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start records the display mode.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.config = newStartConfig(options...)

	return nil
}

// Close finalizes the UI.
func (p *TUI) Close(_ context.Context) {}

// Wait returns immediately; interactive views block inside DisplayAnalysis.
func (p *TUI) Wait(_ context.Context) {}

// DisplayReports shows the number of reports about to be analysed.
func (p *TUI) DisplayReports(ctx context.Context, reports []m.ReportFile) {
	if err := ctx.Err(); err != nil {
		return
	}

	_, _ = fmt.Fprintf(p.output, "  📄 Analyzing %d report(s)\n", len(reports))
}

// DisplayAnalysis shows the analysis. Results that fit the terminal, and every
// result in watch mode, are printed once; larger ones open a scrollable table.
func (p *TUI) DisplayAnalysis(ctx context.Context, analysis m.Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newAnalysisModel(analysis)

	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model = model.resize(width, height)
		}
	}

	if p.config.mode == ModeWatch || !model.needsPagination() {
		_, err := fmt.Fprint(p.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayOperators prints the operator catalog.
func (p *TUI) DisplayOperators(ctx context.Context, operators []*m.MutationOperator) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprint(p.output, renderOperatorsTable(operators))

	return err
}

// DisplayRules prints the rule profile.
func (p *TUI) DisplayRules(ctx context.Context, rules []m.Rule) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprint(p.output, renderRulesTable(rules))

	return err
}

// DisplayWatchEvent shows a changed report.
func (p *TUI) DisplayWatchEvent(ctx context.Context, report m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	_, _ = fmt.Fprintf(p.output, "  🔄 Report changed: %s\n", report)
}

// analysisModel is the Bubble Tea model for browsing per-file results.
type analysisModel struct {
	analysis m.Analysis
	table    table.Model
	height   int
	width    int
	quitting bool
}

func newAnalysisModel(analysis m.Analysis) analysisModel {
	columns := []table.Column{
		{Title: "Path", Width: pathColumnWidth(analysis.Aggregate.Files)},
		{Title: "Killed", Width: 8},
		{Title: "Survived", Width: 8},
		{Title: "No Cov", Width: 8},
		{Title: "Timeout", Width: 8},
		{Title: "Memory", Width: 8},
		{Title: "Unknown", Width: 8},
		{Title: "Score", Width: 8},
	}

	rows := make([]table.Row, 0, len(analysis.Aggregate.Files))
	for _, file := range analysis.Aggregate.Files {
		rows = append(rows, append(table.Row{file.Path}, statsColumns(file.Stats, file.Score)...))
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+2),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return analysisModel{analysis: analysis, table: t}
}

func pathColumnWidth(files []m.FileStats) int {
	width := len("Path")
	for _, file := range files {
		width = max(width, len(file.Path))
	}

	return min(width, 80)
}

func (am analysisModel) resize(width, height int) analysisModel {
	am.width = width
	am.height = height

	if am.needsPagination() {
		am.table.SetHeight(am.itemsPerPage())
	}

	return am
}

func (am analysisModel) itemsPerPage() int {
	if am.height == 0 {
		return len(am.analysis.Aggregate.Files)
	}

	return max(am.height-reservedLines, 1)
}

func (am analysisModel) needsPagination() bool {
	return am.height > 0 && len(am.analysis.Aggregate.Files) > am.itemsPerPage()
}

func (am analysisModel) Init() tea.Cmd {
	return nil
}

func (am analysisModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return am.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		//nolint:exhaustive // Only quit keys are handled here
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			am.quitting = true
			return am, tea.Quit
		default:
		}

		if msg.String() == "q" {
			am.quitting = true
			return am, tea.Quit
		}
	}

	var cmd tea.Cmd
	am.table, cmd = am.table.Update(msg)

	return am, cmd
}

func (am analysisModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Mutation Analysis"))
	b.WriteString("\n")

	if len(am.analysis.Aggregate.Files) == 0 {
		b.WriteString("  📭 No mutants found\n")
		return b.String()
	}

	b.WriteString(am.table.View())
	b.WriteString("\n\n")

	scoreStyle := goodScoreStyle
	if am.analysis.Aggregate.Score < 0.5 {
		scoreStyle = badScoreStyle
	}

	total := am.analysis.Aggregate.Total
	fmt.Fprintf(&b, "  📊 Score: %s | Files: %d | Mutants: %d | Detected: %d | Alive: %d\n",
		scoreStyle.Render(formatScore(am.analysis.Aggregate.Score)),
		len(am.analysis.Aggregate.Files), total.Total(), total.Detected(), total.Alive())

	if n := len(am.analysis.Findings); n > 0 {
		fmt.Fprintf(&b, "  ⚠️  Findings: %s\n", strconv.Itoa(n))
	}

	if am.needsPagination() {
		b.WriteString(helpStyle.Render("  ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit"))
		b.WriteString("\n")
	}

	return b.String()
}
