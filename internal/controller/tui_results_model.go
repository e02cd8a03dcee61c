package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	m "github.com/mouse-blink/slugline/internal/model"
)

// Rows taken by everything but the list:
// title (2) + summary (2) + footer (1) + border (2) + header (2).
const resultsChromeHeight = 9

const outcomeColumnWidth = 10

type resultDelegate struct{}

func (d resultDelegate) Height() int  { return 1 }
func (d resultDelegate) Spacing() int { return 0 }
func (d resultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d resultDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	result, ok := item.(resultItem)
	if !ok {
		return
	}

	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	style, _ := outcomeStyle(result.outcome)
	outStyle := style.Width(outcomeColumnWidth)

	if index == lm.Index() {
		nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		outStyle = nameStyle.Width(outcomeColumnWidth)
	}

	name := truncateToWidth(result.name, lm.Width()-outcomeColumnWidth-2)

	_, _ = fmt.Fprintf(w, "%s  %s",
		outStyle.Render(result.outcome.String()),
		nameStyle.Render(name),
	)
}

// truncateToWidth cuts text to width cells, ending in an ellipsis when cut.
func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	return ansi.Truncate(text, width, "…")
}

// resultsModel shows the outcome of every file, paged when interactive.
type resultsModel struct {
	width    int
	height   int
	fileList list.Model
	total    int
	changes  int
	paged    bool
}

func newResultsModel(results []m.ChangeResult, changes int) resultsModel {
	items := make([]list.Item, 0, len(results))
	for _, r := range results {
		items = append(items, resultItem{name: r.Name, outcome: r.Outcome})
	}

	fileList := list.New(items, resultDelegate{}, 80, len(items))
	fileList.SetShowPagination(false)
	fileList.SetShowHelp(false)
	fileList.SetShowTitle(false)
	fileList.SetShowStatusBar(false)
	fileList.SetFilteringEnabled(false)

	return resultsModel{
		fileList: fileList,
		total:    len(results),
		changes:  changes,
	}
}

// needsPaging reports whether the view is taller than the known terminal.
func (r resultsModel) needsPaging() bool {
	return r.height > 0 && r.total+resultsChromeHeight > r.height
}

// interactive switches the model to paged mode with filtering.
func (r resultsModel) interactive() resultsModel {
	r.paged = true
	r.fileList.SetFilteringEnabled(true)
	r.fileList.SetShowFilter(true)
	r.fileList.FilterInput.Placeholder = "Filter by file…"

	return r
}

func (r resultsModel) Init() tea.Cmd {
	return nil
}

func (r resultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		r.fileList.SetWidth(r.width)

	case tea.KeyMsg:
		if r.fileList.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "ctrl+c", "esc":
				return r, tea.Quit
			}
		}

		r.fileList, cmd = r.fileList.Update(msg)
	}

	return r, cmd
}

func (r resultsModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryTextStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("Slug lines")

	summary := summaryTextStyle.Render(fmt.Sprintf(
		"Files: %s   Pending changes: %s",
		accentStyle.Render(fmt.Sprintf("%d", r.total)),
		accentStyle.Render(fmt.Sprintf("%d", r.changes)),
	))

	sections := []string{title, summary, r.renderTable()}

	if r.paged {
		footerStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Align(lipgloss.Center).
			Width(r.width)

		sections = append(sections, footerStyle.Render("↑/k up • ↓/j down • / filter • q quit"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (r resultsModel) renderTable() string {
	listHeight := r.total
	if r.paged {
		listHeight = max(r.height-resultsChromeHeight, 5)
	}

	width := r.width
	if width <= 0 {
		width = 80
	}

	// margin (2) + border (2) + padding (2)
	listWidth := width - 6

	r.fileList.SetHeight(listHeight)
	r.fileList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-*s  %s", outcomeColumnWidth, "Outcome", "File"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			r.fileList.View(),
		),
	)
}
