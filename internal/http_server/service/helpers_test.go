package service

import (
	"context"
	"fmt"
	"html/template"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/half-nothing/airport-booking/internal/database"
	c "github.com/half-nothing/airport-booking/internal/interfaces/config"
	"github.com/half-nothing/airport-booking/internal/interfaces/global"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"github.com/half-nothing/airport-booking/internal/interfaces/operation"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
)

func ptr[T any](value T) *T { return &value }

// memoryCache is a map backed flight cache counting invalidations, the invalidation count is
// the generation
type memoryCache struct {
	mu            sync.Mutex
	pages         map[string]*PageResponse[FlightListItem]
	invalidations int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{pages: map[string]*PageResponse[FlightListItem]{}}
}

func (cache *memoryCache) GetFlightPage(key string) (*PageResponse[FlightListItem], int64, bool) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	page, ok := cache.pages[key]
	return page, int64(cache.invalidations), ok
}

func (cache *memoryCache) SetFlightPage(key string, generation int64, page *PageResponse[FlightListItem]) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	if generation != int64(cache.invalidations) {
		return
	}
	cache.pages[key] = page
}

func (cache *memoryCache) Invalidate() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.invalidations++
	cache.pages = map[string]*PageResponse[FlightListItem]{}
}

type publishedEvent struct {
	event   string
	key     string
	payload interface{}
}

type recordingPublisher struct {
	events []publishedEvent
}

func (publisher *recordingPublisher) Publish(event string, key string, payload interface{}) {
	publisher.events = append(publisher.events, publishedEvent{event: event, key: key, payload: payload})
}

func (publisher *recordingPublisher) ShutdownCallback() global.Callable {
	return global.CallableFunc(func(context.Context) error { return nil })
}

type recordingEmail struct {
	sent []uint
	err  error
}

func (email *recordingEmail) RenderTemplate(*template.Template, interface{}) (string, error) {
	return "", nil
}

func (email *recordingEmail) SendOrderConfirmation(_ *operation.User, order *operation.Order) error {
	email.sent = append(email.sent, order.ID)
	return email.err
}

type testEnv struct {
	ops       *operation.DatabaseOperations
	logger    log.LoggerInterface
	limits    *c.HttpServerLimit
	cache     *memoryCache
	publisher *recordingPublisher
	email     *recordingEmail
	admin     JwtHeader
	user      JwtHeader
	otherUser JwtHeader
	client    ClientInfo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.OpenDatabase(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)), false, false)
	require.NoError(t, err)
	pool, err := db.DB()
	require.NoError(t, err)
	pool.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = pool.Close() })

	env := &testEnv{
		ops:    database.NewOperations(db, 5*time.Second, &c.GeneralConfig{BcryptCost: bcrypt.MinCost}),
		logger: log.NewNullLogger(),
		limits: &c.HttpServerLimit{
			EmailLengthMin:    4,
			EmailLengthMax:    128,
			PasswordLengthMin: 5,
			PasswordLengthMax: 64,
			DefaultPageSize:   20,
			MaxPageSize:       100,
		},
		cache:     newMemoryCache(),
		publisher: &recordingPublisher{},
		email:     &recordingEmail{},
		client:    ClientInfo{Ip: "127.0.0.1", UserAgent: "test"},
	}
	env.admin = env.addUser(t, "admin@example.com", true)
	env.user = env.addUser(t, "passenger@example.com", false)
	env.otherUser = env.addUser(t, "other@example.com", false)
	return env
}

func (env *testEnv) addUser(t *testing.T, email string, staff bool) JwtHeader {
	t.Helper()
	user, err := env.ops.UserOperation().NewUser(email, "secret123", staff)
	require.NoError(t, err)
	require.NoError(t, env.ops.UserOperation().AddUser(user))
	return JwtHeader{Uid: user.ID, IsStaff: staff, Authenticated: true}
}

func (env *testEnv) auditCount(t *testing.T, eventType operation.EventType) int64 {
	t.Helper()
	_, total, err := env.ops.AuditLogOperation().GetAuditLogs(&operation.AuditLogFilter{
		Pagination: operation.Pagination{Page: 1, PageSize: 100},
		EventType:  eventType,
	})
	require.NoError(t, err)
	return total
}

// network is the reference data a flight needs
type network struct {
	route      *operation.Route
	airplane   *operation.Airplane
	airplane2  *operation.Airplane
	pilot      *operation.Crew
	pilot2     *operation.Crew
	stewardess *operation.Crew
	steward2   *operation.Crew
	departure  time.Time
}

func (env *testEnv) seedNetwork(t *testing.T) *network {
	t.Helper()
	ops := env.ops
	country := ops.CountryOperation().NewCountry("Ukraine", "UKR")
	require.NoError(t, ops.CountryOperation().AddCountry(country))
	city := ops.CityOperation().NewCity("Kyiv", country.ID)
	require.NoError(t, ops.CityOperation().AddCity(city))
	source := ops.AirportOperation().NewAirport("Boryspil", city.ID)
	require.NoError(t, ops.AirportOperation().AddAirport(source))
	destination := ops.AirportOperation().NewAirport("Zhuliany", city.ID)
	require.NoError(t, ops.AirportOperation().AddAirport(destination))

	n := &network{departure: time.Now().UTC().Add(72 * time.Hour).Truncate(time.Hour)}
	n.route = ops.RouteOperation().NewRoute(source.ID, destination.ID, 35)
	require.NoError(t, ops.RouteOperation().AddRoute(n.route))
	planeType := ops.AirplaneTypeOperation().NewAirplaneType("Airbus A320")
	require.NoError(t, ops.AirplaneTypeOperation().AddAirplaneType(planeType))
	n.airplane = ops.AirplaneOperation().NewAirplane("UR-AAA", 2, 2, planeType.ID)
	require.NoError(t, ops.AirplaneOperation().AddAirplane(n.airplane))
	n.airplane2 = ops.AirplaneOperation().NewAirplane("UR-AAB", 30, 6, planeType.ID)
	require.NoError(t, ops.AirplaneOperation().AddAirplane(n.airplane2))

	n.pilot = ops.CrewOperation().NewCrew("Anna", "Kovacs", operation.MainPilot)
	n.pilot2 = ops.CrewOperation().NewCrew("Petro", "Bilyk", operation.MainPilot)
	n.stewardess = ops.CrewOperation().NewCrew("Mira", "Lenz", operation.Stewardess)
	n.steward2 = ops.CrewOperation().NewCrew("Olha", "Shevchenko", operation.Stewardess)
	for _, member := range []*operation.Crew{n.pilot, n.pilot2, n.stewardess, n.steward2} {
		require.NoError(t, ops.CrewOperation().AddCrew(member))
	}
	return n
}

func (n *network) at(hours int) *time.Time {
	value := n.departure.Add(time.Duration(hours) * time.Hour)
	return &value
}

func (env *testEnv) flightService() *FlightService {
	return NewFlightService(env.logger, env.limits, env.ops.FlightOperation(), env.ops.AuditLogOperation(), env.cache, env.publisher)
}

func (env *testEnv) scheduleRequest(n *network, airplane *operation.Airplane, from, to int, crew ...*operation.Crew) *RequestSaveFlight {
	ids := make([]uint, 0, len(crew))
	for _, member := range crew {
		ids = append(ids, member.ID)
	}
	return &RequestSaveFlight{
		JwtHeader:     env.admin,
		ClientInfo:    env.client,
		Route:         &n.route.ID,
		Airplane:      &airplane.ID,
		DepartureTime: n.at(from),
		ArrivalTime:   n.at(to),
		Crew:          ids,
	}
}
