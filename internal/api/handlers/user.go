package handlers

import (
	"net/http"

	"berkconnect-backend/internal/auth"
	"berkconnect-backend/internal/service"
	"berkconnect-backend/internal/teachercheck"

	"github.com/gin-gonic/gin"
)

// UserHandler handles user identity and role endpoints
type UserHandler struct {
	roleService service.RoleServiceInterface
	teachers    *teachercheck.Verifier
}

// NewUserHandler creates a new user handler
func NewUserHandler(roleService service.RoleServiceInterface, teachers *teachercheck.Verifier) *UserHandler {
	return &UserHandler{
		roleService: roleService,
		teachers:    teachers,
	}
}

// CheckTeacher reports whether the acting user is a verified teacher
// @Summary Check teacher status
// @Description Check whether the authenticated user's email is on the verified teacher list
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Teacher status"
// @Security BearerAuth
// @Router /users/check-teacher [get]
func (h *UserHandler) CheckTeacher(c *gin.Context) {
	email, ok := auth.GetUserEmail(c)
	if !ok || email == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	respondData(c, gin.H{"is_teacher": h.teachers.IsTeacherEmail(email)})
}

// GetUserRoles returns the role snapshot for a user
// @Summary Get user roles
// @Description Get the full role snapshot for a user: coordinator, sponsor, president, and officer standing with club ids. Role lookups fail closed, so a degraded database yields an empty snapshot rather than an error.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} service.RoleSnapshot "Role snapshot"
// @Security BearerAuth
// @Router /users/{id}/roles [get]
func (h *UserHandler) GetUserRoles(c *gin.Context) {
	userID := c.Param("id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "User ID is required"})
		return
	}

	respondData(c, h.roleService.GetUserRoles(userID))
}
