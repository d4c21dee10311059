package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wavecrest/services/catalog"
)

// ListServices returns the full service catalog in display order.
func ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": catalog.ListServices()})
}

// GetService returns one catalog entry.
func GetService(c *gin.Context) {
	svc, ok := catalog.GetService(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// GetPackages returns the packages under a service option. Flat
// services yield an empty list.
func GetPackages(c *gin.Context) {
	packages := catalog.GetPackagesFor(c.Param("id"), c.Param("option"))
	resp := gin.H{"packages": packages}
	if img, ok := catalog.PreviewImage(c.Param("option")); ok {
		resp["previewImage"] = img
	}
	c.JSON(http.StatusOK, resp)
}
