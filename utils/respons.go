package utils

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// RespondError renders the error envelope. The manager and customer pages
// only read the "message" field.
func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, ErrorResponse{
		Status:  false,
		Message: err.Error(),
	})
}

// FormatRupee formats an amount for log lines, e.g. ₹1,250.00.
func FormatRupee(amount float64) string {
	formatted := fmt.Sprintf("%.2f", amount)

	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	var result []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		result = append([]string{integerPart[start:i]}, result...)
	}

	return "₹" + strings.Join(result, ",") + "." + decimalPart
}
