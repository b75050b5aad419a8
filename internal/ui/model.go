package ui

import (
	"context"
	"reflect"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mbwilding/steam-achievement-manager/internal/achievement"
	"github.com/mbwilding/steam-achievement-manager/internal/catalog"
	"github.com/mbwilding/steam-achievement-manager/internal/diff"
	"github.com/mbwilding/steam-achievement-manager/internal/logging"
	"github.com/mbwilding/steam-achievement-manager/internal/logging/events"
	"github.com/mbwilding/steam-achievement-manager/internal/prefs"
	"github.com/mbwilding/steam-achievement-manager/internal/theme"
	"github.com/mbwilding/steam-achievement-manager/internal/ui/state"
)

type Mode int

const (
	ModeBrowsing Mode = iota
	ModeEditingAppID
	ModeSearching
)

func (m Mode) String() string {
	switch m {
	case ModeEditingAppID:
		return "editing-app-id"
	case ModeSearching:
		return "searching"
	default:
		return "browsing"
	}
}

const maxAppIDDigits = 10

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	// Context is handed to every catalog call. Defaults to Background.
	Context    context.Context
	AppID      uint32
	Catalog    catalog.Client
	Prefs      prefs.Store
	ShowFooter bool
	Width      int
	Height     int
}

// Model implements the Bubble Tea model for the achievement manager.
type Model struct {
	ctx     context.Context
	catalog catalog.Client
	engine  *diff.Engine
	prefs   prefs.Store
	sort    achievement.SortConfig

	list       *state.List
	mode       Mode
	appIDInput string
	editStatus state.Status

	search       textinput.Model
	searchOrigin int

	browse browseKeys
	edit   editKeys
	find   searchKeys
	help   help.Model

	width      int
	height     int
	fixedSize  bool
	showFooter bool
	quitting   bool

	handlers map[reflect.Type]msgHandler
}

// NewModel loads the sort preference and, when an app id is given, the
// initial list. Without an app id, or when that load fails, the model starts
// at the app id prompt.
func NewModel(opts Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	store := opts.Prefs
	if store == nil {
		store = &prefs.Memory{}
	}
	m := &Model{
		ctx:        ctx,
		catalog:    opts.Catalog,
		engine:     diff.New(opts.Catalog),
		prefs:      store,
		sort:       store.Load(),
		mode:       ModeEditingAppID,
		browse:     newBrowseKeys(),
		edit:       newEditKeys(),
		find:       newSearchKeys(),
		help:       newHelp(),
		search:     newSearchInput(),
		showFooter: opts.ShowFooter,
	}
	if opts.Width > 0 || opts.Height > 0 {
		m.width = opts.Width
		m.height = opts.Height
		m.fixedSize = true
		m.help.Width = opts.Width
	}
	if opts.AppID != 0 {
		if err := m.load(opts.AppID); err != nil {
			m.editStatus = state.Status{Level: state.Error, Text: err.Error()}
		} else {
			m.mode = ModeBrowsing
		}
	}
	m.registerHandlers()
	return m
}

func newHelp() help.Model {
	h := help.New()
	h.ShortSeparator = "  "
	h.Styles.ShortKey = *styles.FooterKey
	h.Styles.ShortDesc = *styles.FooterDesc
	h.Styles.FullKey = *styles.FooterKey
	h.Styles.FullDesc = *styles.FooterDesc
	return h
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search achievements"
	ti.CharLimit = 128
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	events.UI.Key(m.mode.String(), keyMsg.String())
	switch m.mode {
	case ModeEditingAppID:
		return m.handleEditKey(keyMsg)
	case ModeSearching:
		return m.handleSearchKey(keyMsg)
	default:
		return m.handleBrowseKey(keyMsg)
	}
}

func (m *Model) setMode(mode Mode) {
	if m.mode == mode {
		return
	}
	events.UI.Mode(m.mode.String(), mode.String())
	m.mode = mode
}

func (m *Model) quit(reason string) tea.Cmd {
	events.UI.Quit(reason)
	m.quitting = true
	return tea.Quit
}

// load fetches appID and replaces the list. The sort preference carries over.
func (m *Model) load(appID uint32) error {
	snap, err := m.catalog.Fetch(m.ctx, appID)
	events.Catalog.Fetch(appID, snap.Len(), err)
	if err != nil {
		logging.Error(err)
		return err
	}
	m.list = state.NewList(appID, snap, m.sort, m.prefs)
	m.syncViewport()
	return nil
}

// Mode reports the current input mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// List exposes the loaded selection model, or nil before the first load.
func (m *Model) List() *state.List {
	return m.list
}

// AppIDInput returns the digits typed at the app id prompt.
func (m *Model) AppIDInput() string {
	return m.appIDInput
}

// Status returns the status line currently on screen.
func (m *Model) Status() state.Status {
	if m.mode == ModeEditingAppID || m.list == nil {
		return m.editStatus
	}
	return m.list.Status
}

// Quitting reports whether the model asked the program to exit.
func (m *Model) Quitting() bool {
	return m.quitting
}
