package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contactbook/contact"
	"contactbook/group"
	"contactbook/httpserver"
	"contactbook/pkg/config"
	"contactbook/report"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) AddContact(ctx context.Context, c contact.Contact) (contact.Contact, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(contact.Contact), args.Error(1)
}

func (m *MockContactService) ListContacts(ctx context.Context, p contact.Page) ([]contact.Contact, error) {
	args := m.Called(ctx, p)
	return args.Get(0).([]contact.Contact), args.Error(1)
}

func (m *MockContactService) GetContact(ctx context.Context, id int64) (contact.Contact, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(contact.Contact), args.Error(1)
}

func (m *MockContactService) UpdateContact(ctx context.Context, id int64, p contact.Patch) (contact.Contact, error) {
	args := m.Called(ctx, id, p)
	return args.Get(0).(contact.Contact), args.Error(1)
}

func (m *MockContactService) DeleteContact(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockGroupService struct {
	mock.Mock
}

func (m *MockGroupService) AddGroup(ctx context.Context, g group.Group) (group.Group, error) {
	args := m.Called(ctx, g)
	return args.Get(0).(group.Group), args.Error(1)
}

func (m *MockGroupService) ListGroups(ctx context.Context) ([]group.Group, error) {
	args := m.Called(ctx)
	return args.Get(0).([]group.Group), args.Error(1)
}

func (m *MockGroupService) GetGroup(ctx context.Context, id int64) (group.Group, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(group.Group), args.Error(1)
}

func (m *MockGroupService) RenameGroup(ctx context.Context, id int64, name string) (group.Group, error) {
	args := m.Called(ctx, id, name)
	return args.Get(0).(group.Group), args.Error(1)
}

func (m *MockGroupService) DeleteGroup(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGroupService) ListMembers(ctx context.Context, id int64) ([]contact.Contact, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]contact.Contact), args.Error(1)
}

func (m *MockGroupService) AddMember(ctx context.Context, cg group.ContactGroup) (group.ContactGroup, error) {
	args := m.Called(ctx, cg)
	return args.Get(0).(group.ContactGroup), args.Error(1)
}

func (m *MockGroupService) RemoveMember(ctx context.Context, cg group.ContactGroup) error {
	args := m.Called(ctx, cg)
	return args.Error(0)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) ContactsPerGroup(ctx context.Context) ([]report.Entry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]report.Entry), args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{AppEnv: "test"}
}

func mustNewServer(t testing.TB, options ...httpserver.Options) *httpserver.Server {
	t.Helper()
	server, err := httpserver.New(append([]httpserver.Options{httpserver.WithConfig(testConfig())}, options...)...)
	require.NoError(t, err)
	return server
}

// testResponse mirrors APIResponse with a raw result for typed decoding.
type testResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Result  json.RawMessage   `json:"result"`
	Errors  map[string]string `json:"errors"`
}

func decodeAPIResponse(t testing.TB, rec *httptest.ResponseRecorder) testResponse {
	t.Helper()
	var resp testResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	return resp
}

func decodeAPIResult(t testing.TB, raw json.RawMessage, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, v))
}

func decodeList[T any](t testing.TB, rec *httptest.ResponseRecorder) []T {
	t.Helper()
	var result struct {
		Data []T `json:"data"`
	}
	decodeAPIResult(t, decodeAPIResponse(t, rec).Result, &result)
	return result.Data
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(server *httpserver.Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	server.Router.ServeHTTP(rec, req)
	return rec
}
