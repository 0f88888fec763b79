// Package response provides the unified HTTP response envelope.
//
// Client-facing messages are in Portuguese; raw error details only travel in
// the "error" field and stack traces never leave the server.
package response

import (
	"net/http"

	"casamento/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Response statuses.
const (
	Success = "success"
	Error   = "error"
)

/* Standard envelope:
{
    "status": "success",
    "data": {},     // payload on success
    "error": "",    // machine detail on failure
    "message": "",  // human message
}
*/

// Response is the unified response body.
type Response struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ------------------ success responses ------------------

// Data responds 200 with a payload.
func Data(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Status: Success,
		Data:   data,
	})
}

// JSON responds 200 with a raw body, no envelope.
func JSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created responds 201 with a payload.
func Created(c *gin.Context, data interface{}, msg ...string) {
	c.JSON(http.StatusCreated, Response{
		Status:  Success,
		Message: getMsg("Criado com sucesso", msg...),
		Data:    data,
	})
}

// ------------------ error responses ------------------

// Abort400 responds 400.
func Abort400(c *gin.Context, msg ...string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Response{
		Status:  Error,
		Message: getMsg("Parâmetros da requisição inválidos", msg...),
	})
}

// Abort401 responds 401.
func Abort401(c *gin.Context, msg ...string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Response{
		Status:  Error,
		Message: getMsg("Sessão inválida ou expirada, faça login novamente", msg...),
	})
}

// Abort403 responds 403.
func Abort403(c *gin.Context, msg ...string) {
	c.AbortWithStatusJSON(http.StatusForbidden, Response{
		Status:  Error,
		Message: getMsg("Você não tem permissão para executar esta ação", msg...),
	})
}

// Abort404 responds 404.
func Abort404(c *gin.Context, msg ...string) {
	c.AbortWithStatusJSON(http.StatusNotFound, Response{
		Status:  Error,
		Message: getMsg("Registro não encontrado", msg...),
	})
}

// Abort409 responds 409, used for uniqueness conflicts.
func Abort409(c *gin.Context, msg ...string) {
	c.AbortWithStatusJSON(http.StatusConflict, Response{
		Status:  Error,
		Message: getMsg("Registro duplicado", msg...),
	})
}

// Abort500 responds 500.
func Abort500(c *gin.Context, msg ...string) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, Response{
		Status:  Error,
		Message: getMsg("Erro interno do servidor", msg...),
	})
}

// BadRequest responds 400 carrying the validation error detail.
func BadRequest(c *gin.Context, err error, msg ...string) {
	logger.LogWarnIf(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, Response{
		Status:  Error,
		Message: getMsg("Requisição mal formada", msg...),
		Error:   err.Error(),
	})
}

// ServerError responds 500 and logs the cause.
func ServerError(c *gin.Context, err error, msg ...string) {
	logger.LogIf(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, Response{
		Status:  Error,
		Message: getMsg("Erro interno do servidor", msg...),
		Error:   err.Error(),
	})
}

// ValidationError responds 422 with the per-field validation messages.
func ValidationError(c *gin.Context, errors map[string][]string) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, Response{
		Status:  Error,
		Message: "Falha na validação do formulário",
		Data:    errors,
	})
}

func getMsg(defaultMsg string, msg ...string) string {
	if len(msg) > 0 {
		return msg[0]
	}
	return defaultMsg
}
