package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"litrevu/internal/application/follow/usecases"
	"litrevu/internal/shared/logger"
	"litrevu/internal/shared/utils"
)

type FollowHandler struct {
	followUserUseCase   *usecases.FollowUserUseCase
	unfollowUserUseCase *usecases.UnfollowUserUseCase
	listFollowsUseCase  *usecases.ListFollowsUseCase
	dto                 *DTOBuilder
	logger              logger.Interface
}

func NewFollowHandler(
	followUC *usecases.FollowUserUseCase,
	unfollowUC *usecases.UnfollowUserUseCase,
	listUC *usecases.ListFollowsUseCase,
	dto *DTOBuilder,
	logger logger.Interface,
) *FollowHandler {
	return &FollowHandler{
		followUserUseCase:   followUC,
		unfollowUserUseCase: unfollowUC,
		listFollowsUseCase:  listUC,
		dto:                 dto,
		logger:              logger,
	}
}

type FollowRequest struct {
	Username string `json:"username" binding:"required" validate:"required"`
}

// List handles GET /follows.
func (h *FollowHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	result, err := h.listFollowsUseCase.Execute(c.Request.Context(), usecases.ListFollowsCommand{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	following := make([]*UserResponse, 0, len(result.Following))
	for _, u := range result.Following {
		following = append(following, h.dto.User(u))
	}
	followers := make([]*UserResponse, 0, len(result.Followers))
	for _, u := range result.Followers {
		followers = append(followers, h.dto.User(u))
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"following": following,
		"followers": followers,
	})
}

// Follow handles POST /follower/add. The target is named, not numbered, to
// match the subscription form where users type a username.
func (h *FollowHandler) Follow(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.followUserUseCase.Execute(c.Request.Context(), usecases.FollowUserCommand{
		FollowerID: userID,
		Username:   req.Username,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, h.dto.User(result.Followed), "now following")
}

// Unfollow handles POST /follower/:id/delete.
func (h *FollowHandler) Unfollow(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	followedID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.unfollowUserUseCase.Execute(c.Request.Context(), usecases.UnfollowUserCommand{
		FollowerID: userID,
		FollowedID: followedID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
