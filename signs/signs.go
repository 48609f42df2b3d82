package signs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quill/models"
)

// SignsModule serves the reader signature gallery: an append-only list
// of small SVG sketches per post. Payloads are stored verbatim; the
// front end embeds them raw, which is a documented trust boundary.
type SignsModule struct {
	db *gorm.DB
}

func NewSignsModule(db *gorm.DB) *SignsModule {
	return &SignsModule{db: db}
}

func (m *SignsModule) RegisterRoutes(router gin.IRouter) {
	router.POST("/sign", m.create)
	router.GET("/sign", m.list)
}

type createRequest struct {
	SvgText string `json:"svgText" binding:"required"`
	ID      string `json:"id" binding:"required"`
}

type signResponse struct {
	SvgText string `json:"svgText"`
	ID      string `json:"id"`
}

func (m *SignsModule) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sign := models.Sign{
		ID:      uuid.NewString(),
		PostID:  req.ID,
		SvgText: req.SvgText,
	}
	if err := m.db.Create(&sign).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully added sign", "id": sign.ID})
}

func (m *SignsModule) list(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing id parameter"})
		return
	}

	var signs []models.Sign
	if err := m.db.Where("post_id = ?", id).Order("created_at ASC").Find(&signs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// distinguish "never signed" from store failure by status, not
	// payload shape
	if len(signs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No signs found for this post ID"})
		return
	}

	out := make([]signResponse, 0, len(signs))
	for _, s := range signs {
		out = append(out, signResponse{SvgText: s.SvgText, ID: s.ID})
	}
	c.JSON(http.StatusOK, out)
}
