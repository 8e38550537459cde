package response

import "github.com/gin-gonic/gin"

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}

// RespondError writes an error response carrying a machine-readable code so
// clients can branch on the failure kind (e.g. SEATS_TAKEN forces the user
// back to seat selection, NO_DRAFT redirects to the catalog).
func RespondError(c *gin.Context, httpCode int, errCode, message string, errors interface{}) {
	c.JSON(httpCode, StandardApiResponse{
		Status:     "error",
		StatusCode: httpCode,
		Message:    message,
		Code:       errCode,
		Errors:     errors,
	})
}
