package httpserver

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"atelier-cms/internal/content"
	"atelier-cms/internal/domain"
)

// collection wires the five admin routes for one content collection. All
// mutation logic lives here, in the caller of the content store: handlers
// read the whole collection, apply the change in memory and save the whole
// collection back. The store itself never merges or validates, so every save
// must carry the full intended final collection.
type collection[T content.Entity] struct {
	name  string
	list  func(context.Context) ([]T, error)
	save  func(context.Context, []T) error
	setID func(*T, string)
	// onCreate optionally stamps creation-time fields after the id is set.
	onCreate func(*T)
}

func (cl collection[T]) mount(rg *gin.RouterGroup, logger *log.Logger) {
	rg.GET("/"+cl.name, cl.handleList(logger))
	rg.PUT("/"+cl.name, cl.handleReplaceAll(logger))
	rg.POST("/"+cl.name, cl.handleCreate(logger))
	rg.PUT("/"+cl.name+"/:id", cl.handleUpdate(logger))
	rg.DELETE("/"+cl.name+"/:id", cl.handleDelete(logger))
}

func (cl collection[T]) handleList(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := cl.list(c.Request.Context())
		if err != nil {
			logger.Printf("list %s: %v", cl.name, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func (cl collection[T]) handleReplaceAll(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []T
		if err := c.ShouldBindJSON(&items); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if items == nil {
			items = []T{}
		}
		if err := cl.save(c.Request.Context(), items); err != nil {
			logger.Printf("replace %s: %v", cl.name, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func (cl collection[T]) handleCreate(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var v T
		if err := c.ShouldBindJSON(&v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		cl.setID(&v, content.NewID())
		if cl.onCreate != nil {
			cl.onCreate(&v)
		}

		items, err := cl.list(c.Request.Context())
		if err != nil {
			logger.Printf("create %s: %v", cl.name, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		items = append(items, v)
		if err := cl.save(c.Request.Context(), items); err != nil {
			logger.Printf("create %s: %v", cl.name, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, v)
	}
}

func (cl collection[T]) handleUpdate(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var v T
		if err := c.ShouldBindJSON(&v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		cl.setID(&v, c.Param("id"))

		items, err := cl.list(c.Request.Context())
		if err != nil {
			logger.Printf("update %s: %v", cl.name, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		items, found := content.Replace(items, v)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrNotFound.Error()})
			return
		}
		if err := cl.save(c.Request.Context(), items); err != nil {
			logger.Printf("update %s: %v", cl.name, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, v)
	}
}

func (cl collection[T]) handleDelete(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := cl.list(c.Request.Context())
		if err != nil {
			logger.Printf("delete %s: %v", cl.name, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		items, found := content.Remove(items, c.Param("id"))
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrNotFound.Error()})
			return
		}
		if err := cl.save(c.Request.Context(), items); err != nil {
			logger.Printf("delete %s: %v", cl.name, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
