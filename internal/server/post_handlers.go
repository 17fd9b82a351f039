package server

import (
	"postboard/internal/models"
	"postboard/internal/service"
	"postboard/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type createPostRequest struct {
	UserID  any `json:"userId"`
	Content any `json:"content"`
}

// CreatePost handles POST /api/posts
// @Summary Create post
// @Description Create a post for an existing user. userId may be a number or a numeric string; 0 counts as missing.
// @Tags posts
// @Accept json
// @Produce json
// @Param request body object{userId=integer,content=string} true "Post"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Failure 429 {object} models.Response
// @Failure 500 {object} models.Response
// @Router /posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req createPostRequest
	if err := decodeBody(c, &req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	content, hasContent := requiredText(req.Content)
	if validation.IsFalsy(req.UserID) || !hasContent {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(models.MsgUserContentRequired))
	}

	if _, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		UserID:  validation.LooseID(req.UserID),
		Content: content,
	}); err != nil {
		return respondServiceError(c, err)
	}

	return models.RespondWithMessage(c, fiber.StatusOK, models.MsgPostCreated)
}

// DeletePost handles DELETE /api/deletepost/:postId
// @Summary Delete post
// @Tags posts
// @Produce json
// @Param postId path string true "Post ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.Response
// @Failure 500 {object} models.Response
// @Router /deletepost/{postId} [delete]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID := validation.ParseLooseID(c.Params("postId"))

	if err := s.postService.DeletePost(c.UserContext(), postID); err != nil {
		return respondServiceError(c, err)
	}

	return models.RespondWithMessage(c, fiber.StatusOK, models.MsgPostDeleted)
}

// GetUserPosts handles GET /api/posts/:userId
// @Summary List a user's posts
// @Description A user with no posts yields 404.
// @Tags posts
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.Response
// @Failure 500 {object} models.Response
// @Router /posts/{userId} [get]
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	userID := validation.ParseLooseID(c.Params("userId"))

	posts, err := s.postService.ListUserPosts(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.Response{
		Status: fiber.StatusOK,
		Posts:  posts,
	})
}
