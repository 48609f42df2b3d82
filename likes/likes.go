package likes

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quill/models"
)

// LikesModule serves the like counter endpoints. Counter mutations are
// single atomic SQL statements; many concurrent likes on one post must
// not lose updates.
type LikesModule struct {
	db *gorm.DB
}

func NewLikesModule(db *gorm.DB) *LikesModule {
	return &LikesModule{db: db}
}

func (m *LikesModule) RegisterRoutes(router gin.IRouter) {
	router.POST("/like", m.update)
	router.GET("/like", m.count)
}

type updateRequest struct {
	Action string `json:"action" binding:"required,oneof=increment decrement"`
	ID     string `json:"id" binding:"required"`
}

func (m *LikesModule) update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var err error
	switch req.Action {
	case "increment":
		err = m.Increment(req.ID)
	case "decrement":
		err = m.Decrement(req.ID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Successfully %sed like", req.Action)})
}

func (m *LikesModule) count(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing id parameter"})
		return
	}

	count, err := m.Count(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// Increment bumps the post's counter in one upsert statement.
func (m *LikesModule) Increment(id string) error {
	return m.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "post_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("count + 1")}),
	}).Create(&models.Like{PostID: id, Count: 1}).Error
}

// Decrement lowers the post's counter in one upsert statement, clamped
// at zero in SQL so the count can never go negative.
func (m *LikesModule) Decrement(id string) error {
	return m.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "post_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("MAX(count - 1, 0)")}),
	}).Create(&models.Like{PostID: id, Count: 0}).Error
}

// Count reads the current counter; a post with no row yet reads as
// zero, not as an error.
func (m *LikesModule) Count(id string) (int, error) {
	var like models.Like
	err := m.db.Where("post_id = ?", id).First(&like).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return like.Count, nil
}
