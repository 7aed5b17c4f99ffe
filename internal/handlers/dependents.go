package handlers

import (
	"healthform-server/internal/middleware"
	"healthform-server/internal/models"
	"healthform-server/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DependentHandler handles dependent link requests.
type DependentHandler struct {
	DB *gorm.DB
}

// NewDependentHandler creates a new DependentHandler.
func NewDependentHandler(db *gorm.DB) *DependentHandler {
	return &DependentHandler{DB: db}
}

// RequestDependentRequest represents the request body for creating a
// dependent link. The link stays unconfirmed until the dependent accepts it.
type RequestDependentRequest struct {
	DependentEmail string `json:"dependentEmail" binding:"required,email"`
}

// RequestDependent handles creating a dependent link from the authenticated
// user to another account, identified by email.
func (h *DependentHandler) RequestDependent(c *gin.Context) {
	var req RequestDependentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User ID not found in token")
		return
	}

	var dependent models.User
	if err := h.DB.Where("email = ?", req.DependentEmail).First(&dependent).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "No user found with this email")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if dependent.ID == userID {
		utils.BadRequest(c, "You cannot add yourself as a dependent")
		return
	}

	var existing models.Dependent
	if err := h.DB.Where("user_id = ? AND dependent_id = ?", userID, dependent.ID).First(&existing).Error; err == nil {
		utils.BadRequest(c, "This dependent link already exists")
		return
	} else if err != gorm.ErrRecordNotFound {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}

	link := models.Dependent{
		UserID:      userID,
		DependentID: dependent.ID,
		Confirmed:   false,
	}
	if err := h.DB.Create(&link).Error; err != nil {
		utils.InternalServerError(c, "Failed to create dependent link: "+err.Error())
		return
	}

	utils.Created(c, "Dependent link requested. Waiting for confirmation.", link)
}

// ConfirmDependent handles confirming a pending dependent link. Only the
// dependent side of the link may confirm it.
func (h *DependentHandler) ConfirmDependent(c *gin.Context) {
	linkIDStr := c.Param("id")
	if _, err := uuid.Parse(linkIDStr); err != nil {
		utils.BadRequest(c, "Invalid link ID format: "+linkIDStr)
		return
	}

	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User ID not found in token")
		return
	}

	var link models.Dependent
	if err := h.DB.First(&link, "id = ?", linkIDStr).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Dependent link not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if link.DependentID != userID {
		utils.Forbidden(c, "Only the dependent can confirm this link")
		return
	}
	if link.Confirmed {
		utils.Success(c, "Dependent link already confirmed", link)
		return
	}

	link.Confirmed = true
	if err := h.DB.Save(&link).Error; err != nil {
		utils.InternalServerError(c, "Failed to confirm dependent link: "+err.Error())
		return
	}

	utils.Success(c, "Dependent link confirmed", link)
}

// DependentView is a dependent link joined with the linked user's details.
type DependentView struct {
	ID        string               `json:"id"`
	Confirmed bool                 `json:"confirmed"`
	User      models.UserSanitized `json:"user"`
}

// ListDependents handles fetching the authenticated user's dependent links in
// both directions: accounts they manage and accounts that manage them.
func (h *DependentHandler) ListDependents(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User ID not found in token")
		return
	}

	var managed []models.Dependent
	if err := h.DB.Preload("DependentUser").Where("user_id = ?", userID).Find(&managed).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch dependents: "+err.Error())
		return
	}

	var managedBy []models.Dependent
	if err := h.DB.Preload("User").Where("dependent_id = ?", userID).Find(&managedBy).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch guardians: "+err.Error())
		return
	}

	dependents := make([]DependentView, len(managed))
	for i, link := range managed {
		dependents[i] = DependentView{ID: link.ID, Confirmed: link.Confirmed, User: link.DependentUser.Sanitize()}
	}
	guardians := make([]DependentView, len(managedBy))
	for i, link := range managedBy {
		guardians[i] = DependentView{ID: link.ID, Confirmed: link.Confirmed, User: link.User.Sanitize()}
	}

	utils.Success(c, "Dependent links fetched successfully", gin.H{
		"dependents": dependents,
		"guardians":  guardians,
	})
}
