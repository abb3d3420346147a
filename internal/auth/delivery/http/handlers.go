package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"library-assistant/internal/auth"
	"library-assistant/pkg/response"
)

// --- DTOs ---

type loginReq struct {
	Cardnumber string `json:"cardnumber" binding:"required"`
	Password   string `json:"password"   binding:"required"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{
		Cardnumber: r.Cardnumber,
		Password:   r.Password,
	}
}

type loginResp struct {
	Token      string `json:"token"`
	Cardnumber string `json:"cardnumber"`
	Username   string `json:"username"`
}

// Login godoc
// @Summary     Log in with library card credentials
// @Description Verifies the cardnumber/password pair and returns a bearer token for the chat endpoints.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} loginResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Invalid Credentials"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, response.NewHTTPError(400, "cardnumber and password are required"))
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			response.Error(c, response.NewHTTPError(401, "invalid credentials"))
			return
		}
		h.l.Errorf(ctx, "uc.Login: %v", err)
		response.Error(c, response.NewHTTPError(500, "internal server error"))
		return
	}

	response.OK(c, loginResp{
		Token:      output.Token,
		Cardnumber: output.Cardnumber,
		Username:   output.Username,
	})
}
