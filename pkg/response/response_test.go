package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	appErrors "github.com/empowerher/empowerher/pkg/errors"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	return ctx, rec
}

func TestSuccessEnvelope(t *testing.T) {
	ctx, rec := testContext(t)

	Success(ctx, http.StatusOK, map[string]string{"status": "draft"})

	require.Equal(t, http.StatusOK, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.Nil(t, body.Error)
}

func TestSuccessWithMetaCarriesTotal(t *testing.T) {
	ctx, rec := testContext(t)

	SuccessWithMeta(ctx, http.StatusOK, []string{"a", "b"}, &Meta{Total: 2})

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.NotNil(t, body.Meta)
	require.Equal(t, 2, body.Meta.Total)
}

func TestErrorRendersAppError(t *testing.T) {
	ctx, rec := testContext(t)

	Error(ctx, appErrors.ErrPremiumRequired)

	require.Equal(t, http.StatusPaymentRequired, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.False(t, body.Success)
	require.Equal(t, "PREMIUM_REQUIRED", body.Error.Code)
}

func TestErrorMasksUnknownErrors(t *testing.T) {
	ctx, rec := testContext(t)

	Error(ctx, errors.New("sqlite disk I/O error"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "INTERNAL_SERVER_ERROR", body.Error.Code)
	require.NotContains(t, body.Error.Message, "sqlite")
}
