package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	memberuc "sacco-backend/internal/usecase/member"
)

type MemberHandler struct{ uc *memberuc.Usecase }

func NewMemberHandler(uc *memberuc.Usecase) *MemberHandler { return &MemberHandler{uc: uc} }

type createMemberReq struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Role  string `json:"role"  validate:"omitempty,oneof=member admin"`
}

func (h *MemberHandler) CreateMember(c echo.Context) error {
	var req createMemberReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), memberuc.CreateMemberInput(req))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *MemberHandler) GetMember(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("member_uid"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
