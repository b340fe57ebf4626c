package api

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed endpoints.json
var endpointsJSON []byte

// endpointsCatalog is served verbatim by GET /api
var endpointsCatalog = json.RawMessage(endpointsJSON)

func listEndpoints(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"endpoints": endpointsCatalog})
}
