package requests

import (
	"bytes"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonContext(t *testing.T, body string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestValidateGuestSave(t *testing.T) {
	c := jsonContext(t, `{"name":"João Silva","spouse":"Maria","children":["Pedro"],"companions":[]}`)

	req, err := ValidateGuestSave(c)
	require.NoError(t, err)
	assert.Equal(t, "João Silva", req.Name)
	assert.Equal(t, "Maria", req.Spouse)
	assert.Equal(t, []string{"Pedro"}, req.Children)
}

func TestValidateGuestSaveRequiresName(t *testing.T) {
	c := jsonContext(t, `{"spouse":"Maria"}`)

	_, err := ValidateGuestSave(c)
	require.Error(t, err)

	var ve ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors["name"])
}

func TestValidateGuestSaveRejectsMalformedJSON(t *testing.T) {
	c := jsonContext(t, `{"name":`)

	_, err := ValidateGuestSave(c)
	require.Error(t, err)

	var ve ValidationError
	assert.False(t, errors.As(err, &ve), "bad JSON is not a validation error")
}

func TestValidateMessageCreate(t *testing.T) {
	c := jsonContext(t, `{"name":"Ana","content":"Felicidades aos noivos!"}`)

	req, err := ValidateMessageCreate(c)
	require.NoError(t, err)
	assert.Equal(t, "Ana", req.Name)
	assert.Empty(t, req.Email, "email is optional")
}

func TestValidateMessageCreateRequiresContent(t *testing.T) {
	c := jsonContext(t, `{"name":"Ana","content":""}`)

	_, err := ValidateMessageCreate(c)
	var ve ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors["content"])
}

func TestValidatePixKeySaveChecksKeyValue(t *testing.T) {
	c := jsonContext(t, `{"name":"Conta do casal","key_value":"11144477734","key_type":"CPF"}`)

	_, err := ValidatePixKeySave(c)
	var ve ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors["key_value"])
}

func TestValidatePixKeySaveAcceptsValidKey(t *testing.T) {
	c := jsonContext(t, `{"name":"Conta do casal","key_value":"noivos@example.com","key_type":"EMAIL"}`)

	req, err := ValidatePixKeySave(c)
	require.NoError(t, err)
	assert.Equal(t, "EMAIL", req.KeyType)
}

func TestValidateUserCreateRejectsShortPassword(t *testing.T) {
	c := jsonContext(t, `{"name":"Ana","email":"ana@example.com","password":"1234567","role":"planner"}`)

	_, err := ValidateUserCreate(c)
	var ve ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors["password"])
}

func TestValidateUserCreateRejectsUnknownRole(t *testing.T) {
	c := jsonContext(t, `{"name":"Ana","email":"ana@example.com","password":"12345678","role":"root"}`)

	_, err := ValidateUserCreate(c)
	var ve ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors["role"])
}
