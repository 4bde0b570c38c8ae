package echoapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/trezcool/studentmarks/apps/api/echo"
	"github.com/trezcool/studentmarks/core"
	"github.com/trezcool/studentmarks/core/student"
	"github.com/trezcool/studentmarks/services/logger"
	"github.com/trezcool/studentmarks/storage/database/dummy"
	"github.com/trezcool/studentmarks/tests"
)

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

func newServer(t *testing.T, rows ...student.Student) (*Server, *dummydb.DB) {
	t.Helper()
	store, db := testutil.NewDummyStore(t, rows...)
	_, translator := student.NewValidator()
	srv := NewServer(ServerDeps{
		Conf: &core.Config{
			AppName:  "Student Marks",
			TestMode: true,
			Server:   core.ServerConfig{DisableReqLogs: true},
		},
		Logger:     logsvc.NewNopZapLogger(),
		Store:      store,
		Translator: translator,
	})
	return srv, db
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marshalObj(t *testing.T, obj interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(obj)
	require.NoError(t, err)
	return data
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, tt.wantCode, rec.Code)
	if tt.wantData != nil {
		assert.JSONEq(t, string(tt.wantData), rec.Body.String())
	}
}

func runHttpTests(t *testing.T, srv *Server, tests []httpTest) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			srv.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
