package session

import (
	"sync"
	"time"

	"github.com/stockpulse-app/stockpulse-backend/internal/inventory"
	"github.com/stockpulse-app/stockpulse-backend/internal/navigation"
	"github.com/stockpulse-app/stockpulse-backend/internal/rbac"
	"github.com/stockpulse-app/stockpulse-backend/internal/search"
	"github.com/stockpulse-app/stockpulse-backend/internal/workflow"
	"github.com/stockpulse-app/stockpulse-backend/pkg/enums"
	pkgerrors "github.com/stockpulse-app/stockpulse-backend/pkg/errors"
)

// Session is the single logical application session: it owns the entity
// state, the navigation stack and the acting role, and serializes every
// mutation so the event-at-a-time model survives a concurrent listener.
type Session struct {
	mu sync.Mutex

	role       enums.Role
	logoutRole enums.Role
	nav        *navigation.Stack
	state      *inventory.State
	engine     *workflow.Engine
	index      *search.Index
	now        func() time.Time
}

// Options configures a session. Zero-value fields fall back to demo
// defaults: ADMIN acting role, seeded fixtures, wall clock.
type Options struct {
	DefaultRole    enums.Role
	LogoutRole     enums.Role
	State          *inventory.State
	MinQueryLength int
	Clock          func() time.Time
}

func New(opts Options) *Session {
	if opts.DefaultRole == "" {
		opts.DefaultRole = enums.RoleAdmin
	}
	if opts.LogoutRole == "" {
		opts.LogoutRole = enums.RoleStoreManager
	}
	if opts.State == nil {
		opts.State = inventory.NewSeededState()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Session{
		role:       opts.DefaultRole,
		logoutRole: opts.LogoutRole,
		nav:        navigation.NewStack(),
		state:      opts.State,
		engine:     workflow.NewEngine(opts.State),
		index:      search.NewIndex(opts.MinQueryLength),
		now:        opts.Clock,
	}
}

// Role returns the acting role.
func (s *Session) Role() enums.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.role
}

// Permissions returns the acting role's capability record.
func (s *Session) Permissions() rbac.Permissions {
	s.mu.Lock()
	defer s.mu.Unlock()
	return rbac.PermissionsFor(s.role)
}

// ActorName resolves the acting role to its display name.
func (s *Session) ActorName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ActorName(s.role)
}

// SwitchRole changes the acting role and resets navigation to the
// default screen with empty history. Stands in for login.
func (s *Session) SwitchRole(role enums.Role) error {
	if !role.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown role")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.role = role
	s.nav.Reset()
	return nil
}

// Logout switches back to the configured post-logout role.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.role = s.logoutRole
	s.nav.Reset()
}

// AllowedScreens lists the top-level screens the acting role's navbar
// shows. Gating mirrors the permission matrix; detail screens follow
// their parent list.
func (s *Session) AllowedScreens() []enums.Screen {
	s.mu.Lock()
	defer s.mu.Unlock()

	perms := rbac.PermissionsFor(s.role)
	screens := []enums.Screen{}
	if perms.CanViewDashboard {
		screens = append(screens, enums.ScreenDashboard)
	}
	if perms.CanManageStock || perms.CanViewAllOrders {
		screens = append(screens, enums.ScreenStockItems)
	}
	if perms.CanManageStock {
		screens = append(screens, enums.ScreenLocations)
	}
	if perms.CanViewAllOrders || perms.CanApproveOrders {
		screens = append(screens, enums.ScreenOrders)
	}
	if perms.CanExportReports {
		screens = append(screens, enums.ScreenReports)
	}
	return screens
}

// View is the renderable routing snapshot. NotFound is set when a detail
// screen's record is missing or unresolvable; the client keeps its back
// path, nothing crashes.
type View struct {
	Screen   enums.Screen       `json:"screen"`
	Params   map[string]string  `json:"params"`
	History  []navigation.Entry `json:"history"`
	NotFound bool               `json:"notFound,omitempty"`
}

// CurrentView resolves the active screen against the entity state.
func (s *Session) CurrentView() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buildView()
}

func (s *Session) buildView() View {
	current := s.nav.Current()
	view := View{
		Screen:  current.Screen,
		Params:  current.Params,
		History: s.nav.History(),
	}
	if param := current.Screen.DetailParam(); param != "" {
		view.NotFound = !s.resolveDetail(current.Screen, current.Params[param])
	}
	return view
}

func (s *Session) resolveDetail(screen enums.Screen, id string) bool {
	if id == "" {
		return false
	}
	switch screen {
	case enums.ScreenStockItemDetail:
		return s.state.StockItem(id) != nil
	case enums.ScreenLocationDetail:
		return s.state.Location(id) != nil
	case enums.ScreenOrderDetail:
		return s.state.Order(id) != nil
	default:
		return true
	}
}

// Navigate moves to the target screen and returns the resolved view.
func (s *Session) Navigate(screen enums.Screen, params map[string]string) (View, error) {
	if !screen.IsValid() {
		return View{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown screen")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav.Navigate(screen, params)
	return s.buildView(), nil
}

// GoBack pops one history entry, or resets to the default screen.
func (s *Session) GoBack() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav.GoBack()
	return s.buildView()
}

// JumpToHistory is the breadcrumb jump.
func (s *Session) JumpToHistory(i int) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.nav.JumpToHistory(i); err != nil {
		return View{}, err
	}
	return s.buildView(), nil
}

// Search runs the linear entity scan under the session lock.
func (s *Session) Search(query string) []search.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.Search(s.state, query)
}

// StockItems returns the current stock item snapshot.
func (s *Session) StockItems() []inventory.StockItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]inventory.StockItem, len(s.state.StockItems))
	for i, item := range s.state.StockItems {
		out[i] = *item
	}
	return out
}

// StockItem resolves one item by id.
func (s *Session) StockItem(id string) (inventory.StockItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item := s.state.StockItem(id); item != nil {
		return *item, nil
	}
	return inventory.StockItem{}, pkgerrors.New(pkgerrors.CodeNotFound, "stock item not found")
}

// Locations returns the current location snapshot.
func (s *Session) Locations() []inventory.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]inventory.Location, len(s.state.Locations))
	for i, loc := range s.state.Locations {
		out[i] = *loc
	}
	return out
}

// Location resolves one location by id.
func (s *Session) Location(id string) (inventory.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if loc := s.state.Location(id); loc != nil {
		return *loc, nil
	}
	return inventory.Location{}, pkgerrors.New(pkgerrors.CodeNotFound, "location not found")
}

// Orders returns the current order snapshot.
func (s *Session) Orders() []inventory.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]inventory.Order, len(s.state.Orders))
	for i, order := range s.state.Orders {
		out[i] = *order
	}
	return out
}

// Order resolves one order by id.
func (s *Session) Order(id string) (inventory.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order := s.state.Order(id); order != nil {
		return *order, nil
	}
	return inventory.Order{}, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
}

// Users returns the sample user roster.
func (s *Session) Users() []inventory.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]inventory.User, len(s.state.Users))
	copy(out, s.state.Users)
	return out
}

// Now exposes the session clock, for SLA derivation at the API edge.
func (s *Session) Now() time.Time {
	return s.now()
}

// SubmitStockItem upserts a stock item via the generic submission path.
func (s *Session) SubmitStockItem(form inventory.StockItemForm) inventory.StockItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.state.SubmitStockItem(form, s.now())
}

// SubmitLocation upserts a location via the generic submission path.
func (s *Session) SubmitLocation(form inventory.LocationForm) inventory.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.state.SubmitLocation(form, s.now())
}

// SubmitOrder upserts an order, attributing history to the acting user.
func (s *Session) SubmitOrder(form inventory.OrderForm) inventory.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.state.SubmitOrder(form, s.state.ActorName(s.role), s.now())
}

func (s *Session) actor() workflow.Actor {
	return workflow.Actor{Role: s.role, Name: s.state.ActorName(s.role)}
}

// ApproveOrder runs the PENDING_REVIEW to APPROVED transition.
func (s *Session) ApproveOrder(orderID string) (inventory.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, err := s.engine.Approve(orderID, s.actor(), s.now())
	if err != nil {
		return inventory.Order{}, err
	}
	return *order, nil
}

// RejectOrder runs the PENDING_REVIEW to REJECTED transition.
func (s *Session) RejectOrder(orderID, reason string) (inventory.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, err := s.engine.Reject(orderID, reason, s.actor(), s.now())
	if err != nil {
		return inventory.Order{}, err
	}
	return *order, nil
}

// MarkOrderOrdered runs the APPROVED to ORDERED transition.
func (s *Session) MarkOrderOrdered(orderID string) (inventory.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, err := s.engine.MarkOrdered(orderID, s.actor(), s.now())
	if err != nil {
		return inventory.Order{}, err
	}
	return *order, nil
}

// MarkOrderReceived runs the ORDERED to RECEIVED transition, booking
// stock onto the linked item.
func (s *Session) MarkOrderReceived(orderID string) (inventory.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, err := s.engine.MarkReceived(orderID, s.actor(), s.now())
	if err != nil {
		return inventory.Order{}, err
	}
	return *order, nil
}
