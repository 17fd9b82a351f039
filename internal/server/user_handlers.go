package server

import (
	"postboard/internal/models"
	"postboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

type signupRequest struct {
	Name  any `json:"name"`
	Email any `json:"email"`
}

// Signup handles POST /api/signup
// @Summary User sign-up
// @Description Register a user by name and email. The new id is not returned.
// @Tags users
// @Accept json
// @Produce json
// @Param request body object{name=string,email=string} true "Sign-up request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.Response
// @Failure 429 {object} models.Response
// @Failure 500 {object} models.Response
// @Router /signup [post]
func (s *Server) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := decodeBody(c, &req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	name, hasName := requiredText(req.Name)
	email, hasEmail := requiredText(req.Email)
	if !hasName || !hasEmail {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(models.MsgNameEmailRequired))
	}

	if _, err := s.userService.SignUp(c.UserContext(), service.SignUpInput{
		Name:  name,
		Email: email,
	}); err != nil {
		return respondServiceError(c, err)
	}

	return models.RespondWithMessage(c, fiber.StatusOK, models.MsgSignupSuccess)
}

// Root handles GET /
func (s *Server) Root(c *fiber.Ctx) error {
	return c.SendString(models.MsgWelcome)
}
