package tui

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/blackwell-systems/avex/internal/backup"
	"github.com/blackwell-systems/avex/internal/catalog"
	"github.com/blackwell-systems/avex/internal/explorer"
	"github.com/blackwell-systems/avex/internal/i18n"
	"github.com/blackwell-systems/avex/internal/listing"
	"github.com/blackwell-systems/avex/internal/logging"
	"github.com/blackwell-systems/avex/internal/navigator"
	"github.com/blackwell-systems/avex/internal/tui/picker"
)

const paneCount = int(explorer.PaneMain) + 1

// labelRefresh is how often the backup label is recomputed.
const labelRefresh = 30 * time.Second

// Options configures the explorer view.
type Options struct {
	Session *explorer.Session
	// Output must be the renderer the session was created with.
	Output *explorer.Capture
	// Backup is optional; nil hides the backup label.
	Backup *backup.Scheduler
	Log    *logrus.Entry
}

type phase int

const (
	phaseBrowse phase = iota
	phaseSearch
	phaseActions
	phaseConfirmDelete
	phaseEdit
)

type deleteStep int

const (
	askDelete deleteStep = iota
	askSupported
	askGroups
)

// pendingDelete walks the delete confirmation questions.
type pendingDelete struct {
	item   catalog.Item
	refs   []string
	groups []string
	step   deleteStep
	opts   catalog.DeleteOptions
}

type backupTickMsg time.Time

// Model is the bubbletea model of the explorer.
type Model struct {
	session *explorer.Session
	out     *explorer.Capture
	sched   *backup.Scheduler
	log     *logrus.Entry
	keys    ExplorerKeys
	thumbs  *thumbnails

	panes  [paneCount]list.Model
	focus  explorer.Pane
	search textinput.Model
	phase  phase
	menu   *picker.Menu
	form   *itemForm
	del    *pendingDelete

	breadcrumb  string
	resultText  string
	status      string
	statusErr   bool
	backupLabel string

	width     int
	height    int
	activeCmd string
	quitting  bool
}

// NewModel builds the explorer over a session that has already rendered
// into opts.Output.
func NewModel(opts Options) Model {
	log := opts.Log
	if log == nil {
		log = logging.Discard()
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "words, Author=…, Category=…, Avatar=…"
	search.CharLimit = 256

	m := Model{
		session: opts.Session,
		out:     opts.Output,
		sched:   opts.Backup,
		log:     log,
		keys:    NewExplorerKeys(),
		thumbs:  newThumbnails(DetectImageProtocol()),
		focus:   explorer.PaneAvatars,
		search:  search,
	}
	titles := [paneCount]string{"Avatars", "Authors", "Categories", "Items"}
	for i := range m.panes {
		m.panes[i] = newPaneList(titles[i])
	}
	m.layout()
	m.sync()
	m.updateBackupLabel(time.Now())
	return m
}

func (m Model) Init() tea.Cmd {
	if m.sched == nil {
		return nil
	}
	return backupTick()
}

func backupTick() tea.Cmd {
	return tea.Tick(labelRefresh, func(t time.Time) tea.Msg {
		return backupTickMsg(t)
	})
}

func (m *Model) updateBackupLabel(now time.Time) {
	if m.sched == nil {
		m.backupLabel = ""
		return
	}
	m.backupLabel = m.sched.Status().Label(m.session.Language(), now)
}

// sync copies the latest session output into the panes. The main pane
// cursor returns to the top whenever its content changes context.
func (m *Model) sync() {
	for i := range m.panes {
		rows := m.out.Rows[explorer.Pane(i)]
		if explorer.Pane(i) == explorer.PaneAvatars {
			rows = append(slices.Clip(rows), m.allAvatarsRow())
		}
		idx := m.panes[i].Index()
		m.panes[i].SetItems(toItems(rows))
		if idx >= len(rows) {
			idx = len(rows) - 1
		}
		if idx >= 0 {
			m.panes[i].Select(idx)
		}
	}
	if m.out.Breadcrumb != m.breadcrumb || m.out.ResultText != m.resultText {
		m.panes[explorer.PaneMain].ResetSelected()
	}
	m.breadcrumb = m.out.Breadcrumb
	m.resultText = m.out.ResultText
	m.panes[explorer.PaneMain].Title = m.mainTitle()
}

// allAvatarsRow lists items for any avatar.
func (m Model) allAvatarsRow() listing.Row {
	return listing.Row{
		Title:   m.session.Language().T(i18n.KeyAllAvatars),
		Command: listing.SelectAllAvatars{},
	}
}

func (m Model) mainTitle() string {
	if m.breadcrumb == "" {
		return "Items"
	}
	return singleLine(m.breadcrumb)
}

func (m *Model) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusErr = false
}

func (m *Model) setError(err error) {
	if err == nil {
		return
	}
	m.log.WithError(err).Warn("explorer command failed")
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) selectedRow() (listing.Row, bool) {
	ri, ok := m.panes[m.focus].SelectedItem().(rowItem)
	return ri.row, ok
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case ClearActiveCmdMsg:
		m.activeCmd = ""
		if m.form != nil {
			m.form.activeCmd = ""
		}
		return m, nil

	case backupTickMsg:
		m.updateBackupLabel(time.Time(msg))
		return m, backupTick()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.phase {
		case phaseSearch:
			return m.updateSearch(msg)
		case phaseActions:
			return m.updateMenu(msg)
		case phaseConfirmDelete:
			return m.updateDelete(msg)
		case phaseEdit:
			return m.updateForm(msg)
		}
		return m.updateBrowse(msg)
	}

	switch m.phase {
	case phaseSearch:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	case phaseEdit:
		_, cmd := m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		m.phase = phaseSearch
		m.search.SetValue(m.session.SearchText())
		m.search.CursorEnd()
		m.activeCmd = "/"
		focus := m.search.Focus()
		return m, tea.Batch(focus, HighlightCmd())

	case key.Matches(msg, m.keys.NextPane):
		m.focus = explorer.Pane((int(m.focus) + 1) % paneCount)
		return m, nil

	case key.Matches(msg, m.keys.PrevPane):
		m.focus = explorer.Pane((int(m.focus) + paneCount - 1) % paneCount)
		return m, nil

	case key.Matches(msg, m.keys.Select):
		m.activate()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.back()
		return m, nil

	case key.Matches(msg, m.keys.Actions):
		row, ok := m.selectedRow()
		if !ok || len(row.Actions) == 0 {
			return m, nil
		}
		m.menu = newActionMenu(row)
		m.menu.SetSize(menuWidth(row), len(row.Actions)+6)
		m.phase = phaseActions
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		m.activeCmd = "e"
		return m.runMatching(is[listing.EditItem])

	case key.Matches(msg, m.keys.Delete):
		m.activeCmd = "d"
		return m.runMatching(is[listing.DeleteItem])

	case key.Matches(msg, m.keys.Copy):
		m.activeCmd = "c"
		return m.runMatching(is[listing.CopyBoothLink])

	case key.Matches(msg, m.keys.Open):
		m.activeCmd = "o"
		if row, ok := m.selectedRow(); ok {
			if c, isFile := row.Command.(listing.OpenFile); isFile {
				m.setError(m.session.Dispatch(c))
				return m, HighlightCmd()
			}
		}
		return m.runMatching(is[listing.OpenFolder])

	case key.Matches(msg, m.keys.Sort):
		next := listing.SortAuthor
		if m.session.Sort() == listing.SortAuthor {
			next = listing.SortTitle
		}
		m.session.SetSort(next)
		m.sync()
		m.setStatus("Sorted by %s", next)
		m.activeCmd = "s"
		return m, HighlightCmd()

	case key.Matches(msg, m.keys.Language):
		m.session.SetLanguage(nextLanguage(m.session.Language()))
		m.sync()
		m.updateBackupLabel(time.Now())
		return m, nil
	}

	var cmd tea.Cmd
	m.panes[m.focus], cmd = m.panes[m.focus].Update(msg)
	return m, cmd
}

func nextLanguage(cur i18n.Lang) i18n.Lang {
	for i, l := range i18n.Supported {
		if l == cur {
			return i18n.Supported[(i+1)%len(i18n.Supported)]
		}
	}
	return i18n.Default
}

// activate runs the selected row's own command.
func (m *Model) activate() {
	row, ok := m.selectedRow()
	if !ok || row.Command == nil {
		return
	}
	if err := m.session.Dispatch(row.Command); err != nil {
		m.setError(err)
		m.sync()
		return
	}
	m.sync()
	if _, isFile := row.Command.(listing.OpenFile); !isFile {
		m.focus = explorer.PaneMain
	}
}

func (m *Model) back() {
	res, err := m.session.Back()
	if errors.Is(err, navigator.ErrNothingToUndo) {
		return
	}
	if err != nil {
		m.setError(err)
		return
	}
	if res == navigator.BackExitedSearch {
		m.search.SetValue("")
	}
	m.sync()
}

func is[T listing.Command](c listing.Command) bool {
	_, ok := c.(T)
	return ok
}

// runMatching runs the first action of the selected row whose command
// satisfies match.
func (m Model) runMatching(match func(listing.Command) bool) (tea.Model, tea.Cmd) {
	row, ok := m.selectedRow()
	if !ok {
		return m, nil
	}
	for _, a := range row.Actions {
		if match(a.Command) {
			return m.runAction(a)
		}
	}
	return m, nil
}

func (m Model) runAction(a listing.Action) (tea.Model, tea.Cmd) {
	switch c := a.Command.(type) {
	case listing.EditItem:
		it, ok := m.session.Item(c.Path)
		if !ok {
			m.setError(fmt.Errorf("%s: %w", c.Path, catalog.ErrNotFound))
			return m, nil
		}
		_, _, custom := m.session.Snapshot()
		m.form = newItemForm(it, custom)
		m.phase = phaseEdit
		return m, tea.Batch(textinput.Blink, HighlightCmd())

	case listing.DeleteItem:
		it, ok := m.session.Item(c.Path)
		if !ok {
			m.setError(fmt.Errorf("%s: %w", c.Path, catalog.ErrNotFound))
			return m, nil
		}
		refs, groups := m.session.References(c.Path)
		m.del = &pendingDelete{item: it, refs: refs, groups: groups}
		m.phase = phaseConfirmDelete
		return m, HighlightCmd()
	}

	if err := m.session.Dispatch(a.Command); err != nil {
		m.setError(err)
		return m, HighlightCmd()
	}
	switch c := a.Command.(type) {
	case listing.CopyBoothLink:
		m.setStatus("Copied %s", m.session.BoothURL(c.ID))
	case listing.OpenBoothLink:
		m.setStatus("Opened %s", m.session.BoothURL(c.ID))
	case listing.ShowAuthorItems:
		m.focus = explorer.PaneMain
	}
	m.sync()
	return m, HighlightCmd()
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.session.Search(m.search.Value())
		m.search.Blur()
		m.phase = phaseBrowse
		m.focus = explorer.PaneMain
		m.sync()
		return m, nil
	case "esc":
		m.search.Blur()
		m.phase = phaseBrowse
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	outcome, cmd := m.menu.Update(msg)
	switch outcome {
	case picker.Chosen:
		a, ok := chosenAction(m.menu)
		m.menu = nil
		m.phase = phaseBrowse
		if !ok {
			return m, nil
		}
		return m.runAction(a)
	case picker.Dismissed:
		m.menu = nil
		m.phase = phaseBrowse
		return m, nil
	}
	return m, cmd
}

// updateDelete answers the current delete question. Enter takes the
// default: no for the deletion itself, yes for the repairs.
func (m Model) updateDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var yes bool
	switch msg.String() {
	case "y", "Y":
		yes = true
	case "n", "N", "esc":
		yes = false
	case "enter":
		yes = m.del.step != askDelete
	default:
		return m, nil
	}

	d := m.del
	switch d.step {
	case askDelete:
		if !yes {
			m.del = nil
			m.phase = phaseBrowse
			m.setStatus("Cancelled")
			return m, nil
		}
	case askSupported:
		d.opts.StripSupported = yes
	case askGroups:
		d.opts.StripGroups = yes
	}

	if d.step < askSupported && len(d.refs) > 0 {
		d.step = askSupported
		return m, nil
	}
	if d.step < askGroups && len(d.groups) > 0 {
		d.step = askGroups
		return m, nil
	}

	m.del = nil
	m.phase = phaseBrowse
	if err := m.session.DeleteItem(d.item.ItemPath, d.opts); err != nil {
		m.setError(err)
	} else {
		m.setStatus("Deleted %q", d.item.Title)
	}
	m.sync()
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	outcome, cmd := m.form.Update(msg)
	switch outcome {
	case formSubmitted:
		oldPath, edited := m.form.original.ItemPath, m.form.result
		m.form = nil
		m.phase = phaseBrowse
		if err := m.session.EditItem(oldPath, edited); err != nil {
			m.setError(err)
		} else {
			m.setStatus("Saved %q", edited.Title)
		}
		m.sync()
		return m, nil
	case formCancelled:
		m.form = nil
		m.phase = phaseBrowse
		return m, nil
	}
	return m, cmd
}

// RunExplorer renders the session and runs the interactive explorer
// until the user quits.
func RunExplorer(opts Options) error {
	opts.Session.Refresh()
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running explorer: %w", err)
	}
	return nil
}
