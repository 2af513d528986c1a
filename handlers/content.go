package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"akplaw/models"
	"akplaw/services/content"
	"akplaw/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContentHandler serves the public site content and its admin CRUD.
type ContentHandler struct {
	ContentSvc content.ContentService
}

// GetHeroHandler handles GET /api/content/hero.
func (h *ContentHandler) GetHeroHandler(c *gin.Context) {
	hero, err := h.ContentSvc.GetHero()
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "hero content not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, hero)
}

// SetHeroHandler handles PUT /api/admin/content/hero.
func (h *ContentHandler) SetHeroHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var hero models.HeroContent
	if err := c.ShouldBindJSON(&hero); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.ContentSvc.SetHero(hero)
	if err != nil {
		logger.Error("Failed to update hero content", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ListInsightsHandler handles GET /api/content/insights with optional
// type, category, featured, hero, and latest query filters.
func (h *ContentHandler) ListInsightsHandler(c *gin.Context) {
	q := content.InsightQuery{
		Type:     c.Query("type"),
		Category: c.Query("category"),
		Featured: c.Query("featured") == "true",
		HeroOnly: c.Query("hero") == "true",
	}
	if latest := c.Query("latest"); latest != "" {
		if n, err := strconv.ParseInt(latest, 10, 64); err == nil && n > 0 {
			q.Latest = n
		}
	}
	items, err := h.ContentSvc.ListInsights(q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetInsightHandler handles GET /api/content/insights/:id. The path segment
// may be a record ID or a title slug; slugs are resolved server-side.
func (h *ContentHandler) GetInsightHandler(c *gin.Context) {
	key := c.Param("id")
	ins, err := h.ContentSvc.GetInsight(key)
	if err != nil {
		ins, err = h.ContentSvc.GetInsightBySlug(key)
	}
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "insight not found"})
		return
	}
	c.JSON(http.StatusOK, ins)
}

// CreateInsightHandler handles POST /api/admin/content/insights.
func (h *ContentHandler) CreateInsightHandler(c *gin.Context) {
	var ins models.Insight
	if err := c.ShouldBindJSON(&ins); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.ContentSvc.CreateInsight(ins)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateInsightHandler handles PUT /api/admin/content/insights/:id.
func (h *ContentHandler) UpdateInsightHandler(c *gin.Context) {
	var ins models.Insight
	if err := c.ShouldBindJSON(&ins); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ins.ID = c.Param("id")
	updated, err := h.ContentSvc.UpdateInsight(ins)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteInsightHandler handles DELETE /api/admin/content/insights/:id.
func (h *ContentHandler) DeleteInsightHandler(c *gin.Context) {
	if err := h.ContentSvc.DeleteInsight(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Insight deleted"})
}

// ListAuthorsHandler handles GET /api/content/authors.
func (h *ContentHandler) ListAuthorsHandler(c *gin.Context) {
	authors, err := h.ContentSvc.ListAuthors()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, authors)
}

// GetAuthorHandler handles GET /api/content/authors/:id.
func (h *ContentHandler) GetAuthorHandler(c *gin.Context) {
	author, err := h.ContentSvc.GetAuthor(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "author not found"})
		return
	}
	c.JSON(http.StatusOK, author)
}

// CreateAuthorHandler handles POST /api/admin/content/authors.
func (h *ContentHandler) CreateAuthorHandler(c *gin.Context) {
	var a models.Author
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.ContentSvc.CreateAuthor(a)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateAuthorHandler handles PUT /api/admin/content/authors/:id.
func (h *ContentHandler) UpdateAuthorHandler(c *gin.Context) {
	var a models.Author
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a.ID = c.Param("id")
	updated, err := h.ContentSvc.UpdateAuthor(a)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteAuthorHandler handles DELETE /api/admin/content/authors/:id.
func (h *ContentHandler) DeleteAuthorHandler(c *gin.Context) {
	if err := h.ContentSvc.DeleteAuthor(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Author deleted"})
}

// ListOfficesHandler handles GET /api/content/offices.
func (h *ContentHandler) ListOfficesHandler(c *gin.Context) {
	offices, err := h.ContentSvc.ListOffices()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, offices)
}

// CreateOfficeHandler handles POST /api/admin/content/offices.
func (h *ContentHandler) CreateOfficeHandler(c *gin.Context) {
	var o models.OfficeLocation
	if err := c.ShouldBindJSON(&o); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.ContentSvc.CreateOffice(o)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateOfficeHandler handles PUT /api/admin/content/offices/:id.
func (h *ContentHandler) UpdateOfficeHandler(c *gin.Context) {
	var o models.OfficeLocation
	if err := c.ShouldBindJSON(&o); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	o.ID = c.Param("id")
	updated, err := h.ContentSvc.UpdateOffice(o)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteOfficeHandler handles DELETE /api/admin/content/offices/:id.
func (h *ContentHandler) DeleteOfficeHandler(c *gin.Context) {
	if err := h.ContentSvc.DeleteOffice(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Office deleted"})
}
