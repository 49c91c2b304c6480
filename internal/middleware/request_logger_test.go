package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"rest-boilerplate/internal/logging"
)

func doRequest(t *testing.T, log *logging.FakeLogger, body string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(http.MethodPost, "/auth/login?next=home", reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, RequestLogger(log)(h)(c))
	return rec
}

func argValue(args []any, key string) (any, bool) {
	for i := 0; i+1 < len(args); i += 2 {
		if args[i] == key {
			return args[i+1], true
		}
	}
	return nil, false
}

func TestRequestLoggerSuccess(t *testing.T) {
	log := &logging.FakeLogger{}
	doRequest(t, log, `{"email":"a@b.c"}`, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "1"})
	})

	records := log.Records()
	require.Len(t, records, 1)
	require.Equal(t, "info", records[0].Level)
	require.Equal(t, "HTTP request", records[0].Msg)

	method, _ := argValue(records[0].Args, "method")
	require.Equal(t, http.MethodPost, method)
	path, _ := argValue(records[0].Args, "path")
	require.Equal(t, "/auth/login", path)
	query, _ := argValue(records[0].Args, "query")
	require.Equal(t, "next=home", query)
	status, _ := argValue(records[0].Args, "status_code")
	require.Equal(t, http.StatusOK, status)
	_, hasDuration := argValue(records[0].Args, "duration_ms")
	require.True(t, hasDuration)

	// 成功時不紀錄本文
	_, hasBody := argValue(records[0].Args, "request_body")
	require.False(t, hasBody)
}

func TestRequestLoggerBodyReplay(t *testing.T) {
	log := &logging.FakeLogger{}
	const body = `{"email":"a@b.c","password":"Secret123!"}`
	var seen []byte
	doRequest(t, log, body, func(c echo.Context) error {
		b, err := io.ReadAll(c.Request().Body)
		require.NoError(t, err)
		seen = b
		return c.JSON(http.StatusOK, map[string]string{})
	})

	// 緩衝後下游讀到的本文與原始內容逐位元組相同
	require.Equal(t, body, string(seen))
}

func TestRequestLoggerClientError(t *testing.T) {
	log := &logging.FakeLogger{}
	doRequest(t, log, `{"email":"a@b.c","password":"Secret123!"}`, func(c echo.Context) error {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid Password"})
	})

	records := log.Records()
	require.Len(t, records, 1)
	require.Equal(t, "warn", records[0].Level)
	require.Equal(t, "HTTP client error", records[0].Msg)

	raw, ok := argValue(records[0].Args, "request_body")
	require.True(t, ok)
	parsed, ok := raw.(map[string]any)
	require.True(t, ok)
	require.Equal(t, "a@b.c", parsed["email"])
	// 明文密碼不得進入日誌
	require.Equal(t, "[REDACTED]", parsed["password"])
}

func TestRequestLoggerNonJSONBody(t *testing.T) {
	log := &logging.FakeLogger{}
	doRequest(t, log, "not json at all", func(c echo.Context) error {
		return c.JSON(http.StatusBadRequest, map[string]string{})
	})

	records := log.Records()
	require.Len(t, records, 1)
	raw, ok := argValue(records[0].Args, "request_body")
	require.True(t, ok)
	require.Equal(t, "not json at all", raw)
}

func TestRequestLoggerServerError(t *testing.T) {
	log := &logging.FakeLogger{}
	doRequest(t, log, "", func(c echo.Context) error {
		return c.JSON(http.StatusInternalServerError, map[string]string{})
	})

	records := log.Records()
	require.Len(t, records, 1)
	require.Equal(t, "error", records[0].Level)
	require.Equal(t, "HTTP server error", records[0].Msg)
}

func TestRequestLoggerPanic(t *testing.T) {
	log := &logging.FakeLogger{}
	rec := doRequest(t, log, `{"a":1}`, func(echo.Context) error {
		panic("boom")
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, float64(http.StatusInternalServerError), resp["status"])
	require.Equal(t, "An internal server error occurred.", resp["message"])

	// panic 路徑也恰好輸出一筆紀錄，含堆疊
	records := log.Records()
	require.Len(t, records, 1)
	require.Equal(t, "error", records[0].Level)
	require.Equal(t, "Unhandled server error", records[0].Msg)
	pv, _ := argValue(records[0].Args, "panic")
	require.Equal(t, "boom", pv)
	stack, ok := argValue(records[0].Args, "stack")
	require.True(t, ok)
	require.NotEmpty(t, stack)
}

func TestRequestLoggerHTTPError(t *testing.T) {
	log := &logging.FakeLogger{}
	rec := doRequest(t, log, "", func(echo.Context) error {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	})

	// handler 回傳的錯誤被轉為統一信封
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "missing token", resp["message"])

	records := log.Records()
	require.Len(t, records, 1)
	require.Equal(t, "warn", records[0].Level)
}

func TestRequestLoggerPlainError(t *testing.T) {
	log := &logging.FakeLogger{}
	rec := doRequest(t, log, "", func(echo.Context) error {
		return errors.New("database exploded")
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	// 原始錯誤內容不回傳給客戶端
	require.Equal(t, "An internal server error occurred.", resp["message"])

	records := log.Records()
	require.Len(t, records, 1)
	require.Equal(t, "error", records[0].Level)
	errArg, ok := argValue(records[0].Args, "error")
	require.True(t, ok)
	require.Equal(t, "database exploded", errArg)
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("read: connection reset") }

func TestRequestLoggerBodyReadError(t *testing.T) {
	log := &logging.FakeLogger{}
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", brokenReader{})
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handlerCalled := false
	err := RequestLogger(log)(func(echo.Context) error {
		handlerCalled = true
		return nil
	})(c)
	require.NoError(t, err)

	// 殘缺的本文不交給下游 handler
	require.False(t, handlerCalled)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "failed to read request body", resp["message"])

	records := log.Records()
	require.Len(t, records, 1)
	require.Equal(t, "warn", records[0].Level)
	errArg, ok := argValue(records[0].Args, "error")
	require.True(t, ok)
	require.Contains(t, errArg.(string), "connection reset")
}
