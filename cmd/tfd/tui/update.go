package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tfdsearch/internal/export"
	"tfdsearch/internal/meta"
	"tfdsearch/internal/render"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.fp.Height = msg.Height - 6
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEsc:
			if m.state != stateMenu && m.state != stateRefreshing {
				return m.back(), nil
			}
		}

	case refreshDoneMsg:
		if msg.err != nil {
			m.errText = fmt.Sprintf("Refresh failed: %v", msg.err)
		} else {
			m.catalog = msg.catalog
			m.flash = fmt.Sprintf("Cache refreshed: %d weapons, %d modules.",
				len(m.catalog.Weapons), len(m.catalog.Modules))
		}
		m.state = stateMenu
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.errText = fmt.Sprintf("Failed to export data to CSV: %v", msg.err)
		} else {
			m.flash = fmt.Sprintf("Data successfully exported to %s.", msg.path)
		}
		m.state = stateMenu
		return m, nil
	}

	switch m.state {
	case stateMenu:
		return m.updateMenu(msg)
	case stateSearch:
		return m.updateSearch(msg)
	case statePickResult:
		return m.updatePickResult(msg)
	case statePickRange:
		return m.updatePickRange(msg)
	case stateDetail:
		return m.updateDetail(msg)
	case stateExportDir:
		return m.updateExportDir(msg)
	case stateExportName:
		return m.updateExportName(msg)
	case stateRefreshing:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case stateStatus:
		if _, ok := msg.(tea.KeyMsg); ok {
			m.state = stateMenu
		}
		return m, nil
	}
	return m, nil
}

// back pops one screen.
func (m Model) back() Model {
	switch m.state {
	case statePickRange:
		if len(m.matchWeapons) > 1 {
			m.state = statePickResult
			return m
		}
		m.state = stateSearch
	case statePickResult:
		m.state = stateSearch
	case stateExportName:
		m.state = stateExportDir
	case stateExportDir:
		m.state = stateDetail
	default:
		m.state = stateMenu
	}
	m.errText = ""
	return m
}

func (m Model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		m.flash = ""
		m.errText = ""
		switch selected(m.menu) {
		case menuSearchWeapons:
			return m.startSearch(kindWeapons), textinput.Blink
		case menuSearchModules:
			return m.startSearch(kindModules), textinput.Blink
		case menuRefreshCache:
			m.state = stateRefreshing
			return m, tea.Batch(m.spin.Tick, m.refreshCmd())
		case menuCacheStatus:
			m.statusText = m.cacheStatus()
			m.state = stateStatus
			return m, nil
		case menuExit:
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

// startSearch switches into search mode for a kind.
func (m Model) startSearch(kind searchKind) Model {
	m.kind = kind
	m.state = stateSearch
	m.input.Reset()
	if kind == kindModules {
		m.input.Placeholder = "module name"
	} else {
		m.input.Placeholder = "weapon name"
	}
	m.input.Focus()
	m.suggestions = nil
	m.recent, _ = m.store.RecentSearches(string(kind), suggestionLimit)
	return m
}

func (m Model) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			return m.runSearch(m.input.Value())
		case tea.KeyTab:
			if len(m.suggestions) > 0 {
				m.input.SetValue(m.suggestions[0])
				m.input.CursorEnd()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.suggestions = meta.Suggest(m.names(), m.input.Value(), suggestionLimit)
	return m, cmd
}

// runSearch filters the catalog and routes on the match count, mirroring
// the classic flow: none = stay with a message, one = straight to detail,
// many = pick from a list.
func (m Model) runSearch(term string) (tea.Model, tea.Cmd) {
	term = strings.TrimSpace(term)
	m.errText = ""

	var names []string
	var err error
	if m.kind == kindModules {
		m.matchModules, err = meta.FilterModules(m.catalog.Modules, term)
		for _, mod := range m.matchModules {
			names = append(names, mod.ModuleName)
		}
	} else {
		m.matchWeapons, err = meta.FilterWeapons(m.catalog.Weapons, term)
		for _, w := range m.matchWeapons {
			names = append(names, w.WeaponName)
		}
	}
	if err != nil {
		m.errText = "Search term cannot be empty. Please try again."
		return m, nil
	}

	// History feeds future suggestions; a failure here never blocks search.
	_ = m.store.RecordSearch(string(m.kind), term, len(names))

	switch len(names) {
	case 0:
		m.errText = fmt.Sprintf("No %s found matching '%s'.", m.kind, term)
		return m, nil
	case 1:
		return m.choose(names[0])
	default:
		title := "Multiple weapons found. Please select one:"
		if m.kind == kindModules {
			title = "Multiple modules found. Please select one:"
		}
		m.picker = newChoiceList(title, names)
		m.state = statePickResult
		return m, nil
	}
}

func (m Model) updatePickResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		return m.choose(selected(m.picker))
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

// choose resolves a picked name and advances: weapons go through the level
// range picker, modules straight to detail.
func (m Model) choose(name string) (tea.Model, tea.Cmd) {
	if m.kind == kindModules {
		mod, ok := m.catalog.ModuleByName(name)
		if !ok {
			m.errText = fmt.Sprintf("No modules found matching '%s'.", name)
			return m, nil
		}
		m.module = mod
		m.detail = render.ModuleStatsTable(mod, m.styles)
		return m.showDetail(), nil
	}

	w, ok := m.catalog.WeaponByName(name)
	if !ok {
		m.errText = fmt.Sprintf("No weapons found matching '%s'.", name)
		return m, nil
	}
	m.weapon = w

	ranges := make([]string, 0, len(meta.LevelRanges))
	defaultIdx := 0
	for i, r := range meta.LevelRanges {
		ranges = append(ranges, r.String())
		if r == meta.DefaultLevelRange {
			defaultIdx = i
		}
	}
	m.rangePick = newChoiceList("Choose the range of firearm attack levels to display:", ranges)
	m.rangePick.Select(defaultIdx)
	m.state = statePickRange
	return m, nil
}

func (m Model) updatePickRange(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		r, err := meta.ParseLevelRange(selected(m.rangePick))
		if err != nil {
			r = meta.DefaultLevelRange
		}
		m.rng = r
		m.detail = render.WeaponDetail(m.weapon, m.catalog.Stats, r, m.styles)
		return m.showDetail(), nil
	}
	var cmd tea.Cmd
	m.rangePick, cmd = m.rangePick.Update(msg)
	return m, cmd
}

// showDetail enters the detail screen with the post-detail menu armed.
func (m Model) showDetail() Model {
	m.postPick = newChoiceList("What would you like to do next?", []string{choiceReturn, choiceExport})
	m.state = stateDetail
	return m
}

func (m Model) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		switch selected(m.postPick) {
		case choiceExport:
			m.state = stateExportDir
			return m, m.fp.Init()
		default:
			m.state = stateMenu
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.postPick, cmd = m.postPick.Update(msg)
	return m, cmd
}

func (m Model) updateExportDir(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.fp, cmd = m.fp.Update(msg)

	if ok, path := m.fp.DidSelectFile(msg); ok {
		m.exportDir = path
		m.nameInput.Reset()
		m.nameInput.Focus()
		m.state = stateExportName
		return m, textinput.Blink
	}
	return m, cmd
}

func (m Model) updateExportName(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			m.errText = "Invalid file name. Returning to main menu."
			m.state = stateMenu
			return m, nil
		}
		return m, m.exportCmd(export.FilePath(m.exportDir, name))
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// exportCmd writes the selected entry off the UI loop.
func (m Model) exportCmd(path string) tea.Cmd {
	var rows [][]string
	if m.kind == kindModules {
		rows = export.ModuleRows(m.module)
	} else {
		rows = export.WeaponRows(m.weapon, m.catalog.Stats)
	}
	return func() tea.Msg {
		err := export.WriteCSV(path, rows)
		return exportDoneMsg{path: path, err: err}
	}
}

// cacheStatus renders the manifest table, or a hint when empty.
func (m Model) cacheStatus() string {
	manifests, err := m.store.AllManifests()
	if err != nil {
		return m.styles.Error.Render(fmt.Sprintf("Could not read cache status: %v", err))
	}
	if len(manifests) == 0 {
		return m.styles.Muted.Render("Nothing cached yet. Run Refresh Cache first.")
	}
	return render.CacheStatusTable(manifests, m.styles)
}
