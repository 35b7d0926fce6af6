package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/llm4s/szmigrate/internal/model"
)

const (
	defaultListWidth  = 80
	defaultListHeight = 20
)

// fileItem is one scanned file in the estimation list.
type fileItem struct {
	path     string
	category string
	count    int
}

func (f fileItem) FilterValue() string {
	return f.path
}

// estimateDelegate renders fileItems one line each.
type estimateDelegate struct{}

func (d estimateDelegate) Height() int  { return 1 }
func (d estimateDelegate) Spacing() int { return 0 }
func (d estimateDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d estimateDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	file, ok := item.(fileItem)
	if !ok {
		return
	}

	line := formatEstimateLine(file, lm.Width())

	if index == lm.Index() {
		line = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Render(line)
	}

	_, _ = fmt.Fprint(w, line)
}

func formatEstimateLine(file fileItem, width int) string {
	hits := "-"
	if file.count > 0 {
		hits = fmt.Sprintf("%d", file.count)
	}

	countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Width(6).Align(lipgloss.Right)
	catStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Width(13)

	pathWidth := width - 21 // count (6) + category (13) + spacing
	if pathWidth < 10 {
		pathWidth = 10
	}

	return fmt.Sprintf("%s  %s %s",
		countStyle.Render(hits),
		catStyle.Render(file.category),
		pathStyle.Render(truncateToWidth(file.path, pathWidth)),
	)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))

	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// estimateModel drives the interactive estimation list.
type estimateModel struct {
	list  list.Model
	items []fileItem
}

func newEstimateModel(reports []m.FileReport) estimateModel {
	items := make([]list.Item, 0, len(reports))
	files := make([]fileItem, 0, len(reports))

	for _, report := range reports {
		file := fileItem{
			path:     string(report.Path),
			category: string(report.Category),
			count:    report.LegacyHits,
		}
		items = append(items, file)
		files = append(files, file)
	}

	lm := list.New(items, estimateDelegate{}, defaultListWidth, defaultListHeight)
	lm.Title = "Legacy error signatures"
	lm.SetShowStatusBar(false)
	lm.SetFilteringEnabled(false)

	return estimateModel{list: lm, items: files}
}

func (em estimateModel) Init() tea.Cmd {
	return nil
}

func (em estimateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		em.list.SetSize(msg.Width, msg.Height)
		return em, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return em, tea.Quit
		}
	}

	var cmd tea.Cmd
	em.list, cmd = em.list.Update(msg)

	return em, cmd
}

func (em estimateModel) View() string {
	return em.list.View()
}

// needsPagination reports whether the list overflows a default screen.
func (em estimateModel) needsPagination() bool {
	return len(em.items) > defaultListHeight
}

// staticView renders all items without starting a program.
func (em estimateModel) staticView() string {
	var sb strings.Builder

	for _, file := range em.items {
		sb.WriteString(formatEstimateLine(file, defaultListWidth))
		sb.WriteString("\n")
	}

	return sb.String()
}
