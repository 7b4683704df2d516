package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"litrevu/internal/application/feed/usecases"
	"litrevu/internal/shared/logger"
	"litrevu/internal/shared/utils"
)

type FeedHandler struct {
	getFeedUseCase     *usecases.GetFeedUseCase
	getOwnPostsUseCase *usecases.GetOwnPostsUseCase
	dto                *DTOBuilder
	logger             logger.Interface
}

func NewFeedHandler(
	getFeedUC *usecases.GetFeedUseCase,
	getOwnPostsUC *usecases.GetOwnPostsUseCase,
	dto *DTOBuilder,
	logger logger.Interface,
) *FeedHandler {
	return &FeedHandler{
		getFeedUseCase:     getFeedUC,
		getOwnPostsUseCase: getOwnPostsUC,
		dto:                dto,
		logger:             logger,
	}
}

// Feed handles GET /: tickets and reviews from the user and everyone
// they follow, newest first.
func (h *FeedHandler) Feed(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	result, err := h.getFeedUseCase.Execute(c.Request.Context(), usecases.GetFeedCommand{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"posts": h.dto.Posts(result.Posts, result.Users, result.Tickets),
	})
}

// OwnPosts handles GET /posts: the user's own tickets and reviews.
func (h *FeedHandler) OwnPosts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	result, err := h.getOwnPostsUseCase.Execute(c.Request.Context(), usecases.GetOwnPostsCommand{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"posts": h.dto.Posts(result.Posts, result.Users, result.Tickets),
	})
}
