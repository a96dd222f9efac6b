// Package tui implements the interactive terminal interface: main menu,
// weapon/module search with suggestions, detail tables, cache refresh and
// CSV export.
package tui

import (
	"context"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tfdsearch/internal/catalog"
	"tfdsearch/internal/meta"
	"tfdsearch/internal/render"
	"tfdsearch/internal/store"
)

// state identifies the active screen.
type state int

const (
	stateMenu state = iota
	stateSearch
	statePickResult
	statePickRange
	stateDetail
	stateExportDir
	stateExportName
	stateRefreshing
	stateStatus
)

// searchKind distinguishes the two searchable catalogs.
type searchKind string

const (
	kindWeapons searchKind = "weapons"
	kindModules searchKind = "modules"
)

const suggestionLimit = 8

// menu entries, in display order.
const (
	menuSearchWeapons = "Search Weapons"
	menuSearchModules = "Search Modules"
	menuRefreshCache  = "Refresh Cache"
	menuCacheStatus   = "Cache Status"
	menuExit          = "Exit"

	choiceReturn = "Return to main menu"
	choiceExport = "Output to CSV"
)

// item is a plain list entry.
type item string

func (i item) Title() string       { return string(i) }
func (i item) Description() string { return "" }
func (i item) FilterValue() string { return string(i) }

// Messages produced by background commands.
type (
	refreshDoneMsg struct {
		catalog *meta.Catalog
		err     error
	}
	exportDoneMsg struct {
		path string
		err  error
	}
)

// Model is the bubbletea model for the whole interface.
type Model struct {
	state state
	kind  searchKind

	catalog *meta.Catalog
	svc     *catalog.Service
	store   *store.Store
	styles  render.Styles

	menu      list.Model
	picker    list.Model
	rangePick list.Model
	postPick  list.Model

	input       textinput.Model
	nameInput   textinput.Model
	suggestions []string
	recent      []string

	fp        filepicker.Model
	exportDir string

	spin spinner.Model

	matchWeapons []meta.Weapon
	matchModules []meta.Module
	weapon       meta.Weapon
	module       meta.Module
	rng          meta.LevelRange
	detail       string

	statusText string
	flash      string
	errText    string

	width  int
	height int
}

// New builds the initial model. exportDir seeds the filepicker (empty
// means the working directory).
func New(c *meta.Catalog, svc *catalog.Service, st *store.Store, exportDir string) Model {
	styles := render.DefaultStyles()

	menu := newChoiceList("The First Descendant - Metadata Search", []string{
		menuSearchWeapons, menuSearchModules, menuRefreshCache, menuCacheStatus, menuExit,
	})

	input := textinput.New()
	input.Placeholder = "weapon name"
	input.CharLimit = 64
	input.Width = 40

	nameInput := textinput.New()
	nameInput.Placeholder = "file name (without extension)"
	nameInput.CharLimit = 64
	nameInput.Width = 40

	fp := filepicker.New()
	fp.DirAllowed = true
	fp.FileAllowed = false
	if exportDir == "" {
		if wd, err := os.Getwd(); err == nil {
			exportDir = wd
		}
	}
	fp.CurrentDirectory = exportDir

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Accent

	return Model{
		state:     stateMenu,
		catalog:   c,
		svc:       svc,
		store:     st,
		styles:    styles,
		menu:      menu,
		input:     input,
		nameInput: nameInput,
		fp:        fp,
		spin:      sp,
		rng:       meta.DefaultLevelRange,
		exportDir: exportDir,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// newChoiceList builds a compact single-column list.
func newChoiceList(title string, choices []string) list.Model {
	items := make([]list.Item, 0, len(choices))
	for _, c := range choices {
		items = append(items, item(c))
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(items, delegate, 48, len(choices)+6)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.Styles.Title = lipgloss.NewStyle().Bold(true)
	return l
}

// selected returns the highlighted choice of a list.
func selected(l list.Model) string {
	if it, ok := l.SelectedItem().(item); ok {
		return string(it)
	}
	return ""
}

// refreshCmd runs the full refresh and catalog reload off the UI loop.
func (m Model) refreshCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		ctx := context.Background()
		if err := svc.Refresh(ctx, nil); err != nil {
			return refreshDoneMsg{err: err}
		}
		c, err := svc.Load(ctx)
		return refreshDoneMsg{catalog: c, err: err}
	}
}

// names returns the autocomplete corpus for the active kind.
func (m Model) names() []string {
	if m.kind == kindModules {
		return m.catalog.ModuleNames
	}
	return m.catalog.WeaponNames
}
