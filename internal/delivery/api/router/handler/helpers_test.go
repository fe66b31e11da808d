package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	apimiddleware "novelhub/internal/delivery/api/middleware"
	"novelhub/internal/delivery/api/validator"
	deliverycontext "novelhub/internal/delivery/context"
	"novelhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.DiscardHandler)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(discardLogger).HandleHTTPError

	return e
}

// asReader attaches identity to every request; nil keeps the request anonymous.
func asReader(identity *entity.Identity) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if identity != nil {
				deliverycontext.SetIdentity(c, identity)
			}

			return next(c)
		}
	}
}

func testIdentity() *entity.Identity {
	return &entity.Identity{UserID: uuid.New(), Email: "reader@example.com"}
}

func serve(t *testing.T, e *echo.Echo, method, target string, headers map[string]string) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(body, &env), string(body))

	return rec.Code, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))

	return out
}

