package tui

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"eventpass-tui/booking"
	"eventpass-tui/catalog"
	"eventpass-tui/model"
	"eventpass-tui/store"
	"eventpass-tui/ticketing"
)

type appState int

const (
	stateBrowseEvents appState = iota
	stateSelectCategory
	stateEventDetails
	stateSelectSeats
	statePayment
	stateTickets
	stateProfile
	stateError
)

type appModel struct {
	state     appState
	lastState appState
	err       error

	width  int
	height int

	eventList    list.Model
	categoryList list.Model
	ticketList   list.Model

	category  string
	event     model.Event
	favorites map[string]bool
	recents   []store.RecentEvent

	session    *booking.Session
	order      *booking.Order
	cursorRow  int
	cursorCol  int
	promoInput textinput.Model

	ledger        *ticketing.Ledger
	ticketStatus  model.TicketStatus
	sortAscending bool

	nameInput    textinput.Model
	emailInput   textinput.Model
	profileField int

	statusNote string
}

type errMsg struct {
	err error
}

type exportDoneMsg struct {
	path string
	err  error
}

func New() tea.Model {
	m := appModel{
		state:  stateBrowseEvents,
		ledger: ticketing.NewLedger(catalog.SeedTickets()),
	}

	m.eventList = newList("Browse Events")
	m.categoryList = newList("Select Category")
	m.ticketList = newList("My Tickets")

	m.favorites, _ = store.LoadFavorites()
	if m.favorites == nil {
		m.favorites = map[string]bool{}
	}
	m.recents, _ = store.LoadRecentEvents()

	if prefs, err := store.LoadTicketPrefs(); err == nil {
		m.ticketStatus = model.TicketStatus(prefs.Status)
		m.sortAscending = prefs.SortAscending
	}

	m.promoInput = textinput.New()
	m.promoInput.Placeholder = "Promo code"
	m.promoInput.CharLimit = 24
	m.promoInput.Width = 20

	profile, _ := store.LoadProfile()
	m.nameInput = textinput.New()
	m.nameInput.Placeholder = "Name"
	m.nameInput.CharLimit = 64
	m.nameInput.Width = 32
	m.nameInput.SetValue(profile.Name)
	m.emailInput = textinput.New()
	m.emailInput.Placeholder = "Email"
	m.emailInput.CharLimit = 64
	m.emailInput.Width = 32
	m.emailInput.SetValue(profile.Email)

	m.refreshEventList()
	m.categoryList.SetItems(buildCategoryItems(catalog.Events(), catalog.Categories()))
	m.refreshTicketList()

	if id := strings.TrimSpace(os.Getenv("EVENTPASS_EVENT")); id != "" {
		if ev, err := catalog.FindEvent(id); err == nil {
			m.openDetails(ev)
			m.startCheckout()
		}
	}

	return m
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if m.state == stateSelectSeats && m.promoInput.Focused() {
			return m.updatePromoInput(msg)
		}
		if m.state == stateProfile {
			return m.updateProfileForm(msg)
		}
		if m.handleFilterInput(msg) {
			return m, nil
		}
		var handled bool
		m, cmd, handled := m.handleKey(msg)
		if handled {
			return m, cmd
		}
		// fallthrough to component update

	case errMsg:
		m.err = msg.err
		m.lastState = m.state
		m.state = stateError
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			return m, errCmd(msg.err)
		}
		m.statusNote = "Exported " + msg.path
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case stateBrowseEvents:
		m.eventList, cmd = m.eventList.Update(msg)
	case stateSelectCategory:
		m.categoryList, cmd = m.categoryList.Update(msg)
	case stateTickets:
		m.ticketList, cmd = m.ticketList.Update(msg)
	}
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	m.statusNote = ""

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit, true
	case "esc":
		if listPtr := m.activeList(); listPtr != nil {
			if listPtr.SettingFilter() || listPtr.IsFiltered() {
				listPtr.ResetFilter()
				return m, nil, true
			}
		}
		m.goBack()
		return m, nil, true
	case "ctrl+f":
		if m.state == stateBrowseEvents {
			m.state = stateSelectCategory
			return m, nil, true
		}
		if m.state == stateTickets {
			m.cycleTicketStatus()
			return m, nil, true
		}
	case "ctrl+t":
		if m.state == stateBrowseEvents || m.state == stateEventDetails {
			m.state = stateTickets
			return m, nil, true
		}
	case "ctrl+p":
		if m.state == stateBrowseEvents {
			m.state = stateProfile
			m.profileField = 0
			return m, m.focusProfileField(), true
		}
	case "p":
		if m.state == stateSelectSeats && !m.order.PromoApplied() {
			return m, m.promoInput.Focus(), true
		}
	case "f":
		if m.state == stateEventDetails {
			return m.toggleFavorite()
		}
	case "t":
		if m.state == stateEventDetails {
			m.state = stateTickets
			return m, nil, true
		}
	case "ctrl+s":
		if m.state == stateTickets {
			m.sortAscending = !m.sortAscending
			m.saveTicketPrefs()
			m.refreshTicketList()
			return m, nil, true
		}
	case "ctrl+e":
		if m.state == stateTickets {
			return m.exportSelectedTicket()
		}
	case "up", "k":
		if m.state == stateSelectSeats {
			m.moveCursor(-1, 0)
			return m, nil, true
		}
	case "down", "j":
		if m.state == stateSelectSeats {
			m.moveCursor(1, 0)
			return m, nil, true
		}
	case "left", "h":
		if m.state == stateSelectSeats {
			m.moveCursor(0, -1)
			return m, nil, true
		}
	case "right", "l":
		if m.state == stateSelectSeats {
			m.moveCursor(0, 1)
			return m, nil, true
		}
	case " ":
		if m.state == stateSelectSeats {
			m.toggleSeatUnderCursor()
			return m, nil, true
		}
	}

	if msg.Type == tea.KeyEnter {
		switch m.state {
		case stateBrowseEvents:
			item, ok := m.eventList.SelectedItem().(eventItem)
			if !ok {
				return m, nil, true
			}
			m.openDetails(item.event)
			return m, nil, true
		case stateSelectCategory:
			item, ok := m.categoryList.SelectedItem().(categoryItem)
			if !ok {
				return m, nil, true
			}
			m.category = item.name
			m.refreshEventList()
			m.eventList.Select(0)
			m.state = stateBrowseEvents
			return m, nil, true
		case stateEventDetails:
			m.startCheckout()
			return m, nil, true
		case stateSelectSeats:
			// Checkout gate: ignored while nothing is selected.
			if m.order.CanCheckout() {
				m.state = statePayment
			}
			return m, nil, true
		case statePayment:
			m.confirmPurchase()
			return m, nil, true
		}
	}
	return m, nil, false
}

func (m *appModel) goBack() {
	switch m.state {
	case stateSelectCategory, stateEventDetails, stateTickets, stateProfile:
		m.state = stateBrowseEvents
	case stateSelectSeats:
		// Leaving seat selection discards the inventory and the order.
		m.session = nil
		m.order = nil
		m.promoInput.Reset()
		m.state = stateEventDetails
	case statePayment:
		m.state = stateSelectSeats
	case stateError:
		m.state = m.lastState
	}
	m.statusNote = ""
}

func (m *appModel) openDetails(ev model.Event) {
	m.event = ev
	m.state = stateEventDetails
	_ = store.RememberEvent(ev)
	m.recents, _ = store.LoadRecentEvents()
	m.refreshEventList()
}

func (m *appModel) startCheckout() {
	m.session = booking.NewSession(sessionRand())
	m.order = booking.NewOrder()
	m.cursorRow, m.cursorCol = 0, 0
	m.promoInput.Reset()
	m.promoInput.Blur()
	m.state = stateSelectSeats
}

func (m *appModel) confirmPurchase() {
	selected := m.order.SelectedSeats()
	tickets := ticketing.Issue(m.event, selected, time.Now())
	m.ledger.Add(tickets...)

	m.session = nil
	m.order = nil
	m.promoInput.Reset()

	m.refreshTicketList()
	m.statusNote = fmt.Sprintf("Purchase complete: %d ticket(s) issued", len(tickets))
	m.state = stateTickets
}

func (m appModel) toggleFavorite() (appModel, tea.Cmd, bool) {
	liked := !m.favorites[m.event.Id]
	if err := store.SetFavorite(m.event.Id, liked); err != nil {
		return m, errCmd(err), true
	}
	if liked {
		m.favorites[m.event.Id] = true
	} else {
		delete(m.favorites, m.event.Id)
	}
	m.refreshEventList()
	return m, nil, true
}

func (m *appModel) cycleTicketStatus() {
	switch m.ticketStatus {
	case "":
		m.ticketStatus = model.TicketValid
	case model.TicketValid:
		m.ticketStatus = model.TicketUsed
	case model.TicketUsed:
		m.ticketStatus = model.TicketCancelled
	default:
		m.ticketStatus = ""
	}
	m.saveTicketPrefs()
	m.refreshTicketList()
	m.ticketList.Select(0)
}

func (m *appModel) saveTicketPrefs() {
	_ = store.SaveTicketPrefs(store.TicketPrefs{
		Status:        string(m.ticketStatus),
		SortAscending: m.sortAscending,
	})
}

func (m appModel) exportSelectedTicket() (appModel, tea.Cmd, bool) {
	item, ok := m.ticketList.SelectedItem().(ticketItem)
	if !ok {
		return m, nil, true
	}
	ticket := item.ticket
	return m, func() tea.Msg {
		path, err := ticketing.ExportPDF(ticket, ticketing.ExportFileName(ticket))
		return exportDoneMsg{path: path, err: err}
	}, true
}

func (m appModel) updatePromoInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.promoInput.Blur()
		return m, nil
	case tea.KeyEnter:
		raw := m.promoInput.Value()
		// Apply is unavailable on empty input or once a code is applied.
		if strings.TrimSpace(raw) == "" || m.order.PromoApplied() {
			return m, nil
		}
		if m.order.ApplyPromo(raw) {
			m.statusNote = "Promo code applied! 15% discount."
			m.promoInput.Blur()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.promoInput, cmd = m.promoInput.Update(msg)
	return m, cmd
}

func (m appModel) updateProfileForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.nameInput.Blur()
		m.emailInput.Blur()
		m.goBack()
		return m, nil
	case "tab", "shift+tab", "up", "down":
		m.profileField = 1 - m.profileField
		return m, m.focusProfileField()
	case "enter":
		profile := model.Profile{
			Name:  strings.TrimSpace(m.nameInput.Value()),
			Email: strings.TrimSpace(m.emailInput.Value()),
		}
		if err := store.SaveProfile(profile); err != nil {
			return m, errCmd(err)
		}
		m.statusNote = "Profile saved"
		return m, nil
	}

	var cmd tea.Cmd
	if m.profileField == 0 {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.emailInput, cmd = m.emailInput.Update(msg)
	}
	return m, cmd
}

func (m *appModel) focusProfileField() tea.Cmd {
	if m.profileField == 0 {
		m.emailInput.Blur()
		return m.nameInput.Focus()
	}
	m.nameInput.Blur()
	return m.emailInput.Focus()
}

func (m *appModel) refreshEventList() {
	events := catalog.EventsByCategory(m.category)
	m.eventList.SetItems(buildEventItems(events, m.favorites, m.recents))
	if m.category == "" {
		m.eventList.Title = "Browse Events"
	} else {
		m.eventList.Title = "Browse Events • " + m.category
	}
}

func (m *appModel) refreshTicketList() {
	tickets := ticketing.SortByDate(m.ledger.Filter(m.ticketStatus), m.sortAscending)
	m.ticketList.SetItems(buildTicketItems(tickets))
	if m.ticketStatus == "" {
		m.ticketList.Title = "My Tickets"
	} else {
		m.ticketList.Title = "My Tickets • " + string(m.ticketStatus)
	}
}

func (m *appModel) handleFilterInput(msg tea.KeyMsg) bool {
	listPtr := m.activeList()
	if listPtr == nil {
		return false
	}
	if !listPtr.FilteringEnabled() {
		return false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return false
		}
		m.appendFilter(listPtr, string(msg.Runes))
		return true
	case tea.KeySpace:
		m.appendFilter(listPtr, " ")
		return true
	case tea.KeyBackspace, tea.KeyDelete:
		if listPtr.FilterValue() == "" {
			return false
		}
		m.popFilter(listPtr)
		return true
	default:
		return false
	}
}

func (m *appModel) appendFilter(listPtr *list.Model, value string) {
	if value == "" {
		return
	}
	current := listPtr.FilterValue()
	listPtr.SetFilterText(current + value)
}

func (m *appModel) popFilter(listPtr *list.Model) {
	value := listPtr.FilterValue()
	if value == "" {
		return
	}
	value = trimLastRune(value)
	if value == "" {
		listPtr.ResetFilter()
		return
	}
	listPtr.SetFilterText(value)
}

func trimLastRune(value string) string {
	runes := []rune(value)
	if len(runes) <= 1 {
		return ""
	}
	return string(runes[:len(runes)-1])
}

func (m *appModel) activeList() *list.Model {
	switch m.state {
	case stateBrowseEvents:
		return &m.eventList
	case stateSelectCategory:
		return &m.categoryList
	case stateTickets:
		return &m.ticketList
	default:
		return nil
	}
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 6
	if h < 6 {
		h = 6
	}
	m.eventList.SetSize(m.width, h)
	m.categoryList.SetSize(m.width, h)
	m.ticketList.SetSize(m.width, h)
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.Filter = caseInsensitiveFilter
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func caseInsensitiveFilter(term string, targets []string) []list.Rank {
	term = strings.ToLower(term)
	lower := make([]string, len(targets))
	for i, t := range targets {
		lower[i] = strings.ToLower(t)
	}
	return list.DefaultFilter(term, lower)
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func errCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return errMsg{err: err}
	}
}

func formatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

// sessionRand honors EVENTPASS_SEED for reproducible seat inventories; the
// default is a fresh time-seeded source per session.
func sessionRand() *rand.Rand {
	raw := strings.TrimSpace(os.Getenv("EVENTPASS_SEED"))
	if raw == "" {
		return nil
	}
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return rand.New(rand.NewSource(seed))
}
