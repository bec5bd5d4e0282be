package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Docs handles GET /docs/:token: a machine-readable index of the API,
// served only to superAdmin tokens.
func (h *Handler) Docs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "clinic-api",
		"version": "v1",
		"baseUrl": "/api/v1",
		"endpoints": []gin.H{
			{"method": "POST", "path": "/patients"},
			{"method": "GET", "path": "/patients"},
			{"method": "GET", "path": "/patients/:id"},
			{"method": "PATCH", "path": "/patients/:id"},
			{"method": "DELETE", "path": "/patients/:id"},
			{"method": "POST", "path": "/bookings"},
			{"method": "GET", "path": "/bookings"},
			{"method": "POST", "path": "/bookings/date"},
			{"method": "GET", "path": "/bookings/:id"},
			{"method": "PATCH", "path": "/bookings/:id"},
			{"method": "DELETE", "path": "/bookings/:id"},
			{"method": "POST", "path": "/surgery"},
			{"method": "GET", "path": "/surgery"},
			{"method": "GET", "path": "/surgery/patient/:patientId"},
			{"method": "GET", "path": "/surgery/:id"},
			{"method": "PATCH", "path": "/surgery/:id"},
			{"method": "DELETE", "path": "/surgery/:id"},
			{"method": "POST", "path": "/user/login"},
			{"method": "POST", "path": "/user/register"},
			{"method": "POST", "path": "/user/logout"},
			{"method": "PATCH", "path": "/user/:id"},
		},
	})
}
