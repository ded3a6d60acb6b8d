package httpserver

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// mountSingleton wires GET/PUT for a singleton content record. The GET
// returns the documented default when nothing was ever saved.
func mountSingleton[T any](rg *gin.RouterGroup, logger *log.Logger, name string, get func(context.Context) (T, error), save func(context.Context, T) error) {
	rg.GET("/"+name, func(c *gin.Context) {
		v, err := get(c.Request.Context())
		if err != nil {
			logger.Printf("get %s: %v", name, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, v)
	})

	rg.PUT("/"+name, func(c *gin.Context) {
		var v T
		if err := c.ShouldBindJSON(&v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := save(c.Request.Context(), v); err != nil {
			logger.Printf("save %s: %v", name, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, v)
	})
}
