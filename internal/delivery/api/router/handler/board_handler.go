package handler

import (
	"net/http"

	"community/internal/delivery/api/response"
	"community/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// BoardHandler serves the provider-only boards.
type BoardHandler struct{}

// NewBoardHandler is the constructor for BoardHandler.
func NewBoardHandler() *BoardHandler {
	return &BoardHandler{}
}

type boardResponse struct {
	Board     string `json:"board"`
	Authority string `json:"authority"`
}

// Board returns the handler for the board of socialType.
func (h *BoardHandler) Board(socialType entity.SocialType) echo.HandlerFunc {
	return func(c echo.Context) error {
		return response.Success(c, http.StatusOK, boardResponse{
			Board:     socialType.String(),
			Authority: socialType.Authority().String(),
		})
	}
}
