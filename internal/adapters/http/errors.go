package http

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/favqs-quotes/internal/adapters/http/dto"
)

// RespondWithErrorCode writes the error envelope for code with the trace ID
// of the request. The status follows dto.HTTPStatusFromCode.
func RespondWithErrorCode(c *gin.Context, code, message string) {
	errResp := dto.NewErrorResponse(code, message).WithTraceID(dto.GetTraceID(c))
	c.AbortWithStatusJSON(dto.HTTPStatusFromCode(code), errResp)
}

func noRoute(c *gin.Context) {
	RespondWithErrorCode(c, dto.ErrorCodeNotFound, "no route for "+c.Request.URL.Path)
}

func noMethod(c *gin.Context) {
	RespondWithErrorCode(c, dto.ErrorCodeMethodNotAllowed, c.Request.Method+" is not allowed on "+c.Request.URL.Path)
}
