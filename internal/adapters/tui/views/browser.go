package views

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"filesum/internal/adapters/tui/styles"
	"filesum/internal/application/commands"
	"filesum/internal/domain"
	"filesum/internal/ports"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Enter    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Expand   key.Binding
	Reload   key.Binding
	Copy     key.Binding
	Edit     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "toggle"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "page down"),
	),
	Expand: key.NewBinding(
		key.WithKeys("*"),
		key.WithHelp("*", "expand all"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy total"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Rows taken by the title, subtitle, message and help line
const browserChrome = 8

// BrowserModel shows the resolution tree of one root file
type BrowserModel struct {
	ViewState

	resolver  ports.SumResolver
	path      string
	root      *domain.SumNode
	flatNodes []*domain.SumNode
	pager     *Paginator
	copy      func(string) error
}

// NewBrowserModel creates a browser for the file at path
func NewBrowserModel(resolver ports.SumResolver, path string) *BrowserModel {
	return &BrowserModel{
		resolver: resolver,
		path:     path,
		pager:    NewPaginator(20),
		copy:     clipboard.WriteAll,
	}
}

// Init loads the tree
func (m *BrowserModel) Init() tea.Cmd {
	return m.loadTree
}

func (m *BrowserModel) loadTree() tea.Msg {
	root, err := commands.NewTreeCommand(m.resolver, m.path).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return treeLoadedMsg{root}
}

type treeLoadedMsg struct {
	root *domain.SumNode
}

type errMsg struct {
	err error
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case treeLoadedMsg:
		m.root = msg.root
		m.root.Expand()
		m.refreshFlatNodes()
		m.SetMessage(fmt.Sprintf("Total %s", domain.FormatTotal(m.root.Total)), false)
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			m.pager.CursorUp()
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			m.pager.CursorDown()
			return m, nil

		case key.Matches(msg, BrowserKeys.PageUp):
			m.pager.PrevPage()
			return m, nil

		case key.Matches(msg, BrowserKeys.PageDown):
			m.pager.NextPage()
			return m, nil

		case key.Matches(msg, BrowserKeys.Left):
			if node := m.selectedNode(); node != nil {
				if node.IsExpanded && !node.IsLeaf() {
					node.Collapse()
					m.refreshFlatNodes()
				} else if node.Parent != nil {
					m.selectNode(node.Parent)
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Right):
			if node := m.selectedNode(); node != nil && !node.IsLeaf() {
				node.Expand()
				m.refreshFlatNodes()
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Enter):
			if node := m.selectedNode(); node != nil && !node.IsLeaf() {
				node.Toggle()
				m.refreshFlatNodes()
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Expand):
			if node := m.selectedNode(); node != nil {
				node.ExpandAll()
				m.refreshFlatNodes()
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Reload):
			return m, m.Reload()

		case key.Matches(msg, BrowserKeys.Copy):
			if node := m.selectedNode(); node != nil {
				total := domain.FormatTotal(node.Total)
				if err := m.copy(total); err != nil {
					m.SetMessage(fmt.Sprintf("Copy failed: %v", err), true)
				} else {
					m.SetMessage(fmt.Sprintf("Copied %s", total), false)
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Edit):
			if node := m.selectedNode(); node != nil {
				return m, func() tea.Msg {
					return OpenEditorMsg{Path: node.Path}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *BrowserModel) selectedNode() *domain.SumNode {
	cursor := m.pager.Cursor()
	if cursor >= 0 && cursor < len(m.flatNodes) {
		return m.flatNodes[cursor]
	}
	return nil
}

func (m *BrowserModel) selectNode(target *domain.SumNode) {
	for i, n := range m.flatNodes {
		if n == target {
			m.pager.SetCursor(i)
			return
		}
	}
}

func (m *BrowserModel) refreshFlatNodes() {
	if m.root == nil {
		return
	}
	m.flatNodes = m.root.Flatten()
	m.pager.SetTotal(len(m.flatNodes))
}

// View renders the browser
func (m *BrowserModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("filesum"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(m.path))
	b.WriteString("\n\n")

	if m.root == nil {
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString("Loading...")
		}
		return styles.App.Render(b.String())
	}

	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		b.WriteString(m.renderNode(m.flatNodes[i], i == m.pager.Cursor()))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func (m *BrowserModel) renderNode(node *domain.SumNode, selected bool) string {
	indent := strings.Repeat("  ", node.Depth())

	var prefix string
	switch {
	case node.IsLeaf():
		prefix = styles.TreeLeaf
	case node.IsExpanded:
		prefix = styles.TreeExpanded
	default:
		prefix = styles.TreeCollapsed
	}

	name := node.Path
	if node.Parent != nil {
		name = relativeName(node.Parent.Path, node.Path)
	}

	var text string
	switch {
	case selected:
		text = styles.NodeSelected.Render(name)
	case !node.Exists:
		text = styles.NodeMissing.Render(name + " (missing)")
	case node.Parent == nil:
		text = styles.NodeRoot.Render(name)
	default:
		text = styles.NodeFile.Render(name)
	}

	total := styles.TotalStyle(node.Total).Render(domain.FormatTotal(node.Total))
	detail := ""
	if !node.IsLeaf() {
		detail = " " + styles.Literal.Render(fmt.Sprintf("(own %s)", domain.FormatTotal(node.Literal)))
	}

	return fmt.Sprintf("%s%s%s  %s%s", indent, styles.TreeBranch.Render(prefix), text, total, detail)
}

func (m *BrowserModel) renderHelpLine() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"j/k", "navigate"},
		{"h/l", "collapse/expand"},
		{"c", "copy"},
		{"e", "edit"},
		{"r", "reload"},
		{"?", "help"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(k.key),
			styles.HelpDesc.Render(k.desc),
		))
	}

	return strings.Join(parts, styles.HelpSeparator.String())
}

// SetSize updates the view dimensions and the visible window
func (m *BrowserModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.pager.SetPageSize(height - browserChrome)
}

// Reload resolves the root file again
func (m *BrowserModel) Reload() tea.Cmd {
	m.root = nil
	m.flatNodes = nil
	m.pager.Reset()
	return m.loadTree
}

// Selected returns the node under the cursor
func (m *BrowserModel) Selected() *domain.SumNode {
	return m.selectedNode()
}

// relativeName shows a child path relative to its parent's directory when it
// lives below it
func relativeName(parentPath, childPath string) string {
	rel, err := filepath.Rel(filepath.Dir(parentPath), childPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return childPath
	}
	return rel
}
