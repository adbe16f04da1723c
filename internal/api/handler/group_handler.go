package handler

import (
	"yatube/internal/api/dto"
	"yatube/internal/pkg/response"
	"yatube/internal/pkg/util"
	"yatube/internal/service"

	"github.com/gin-gonic/gin"
)

type GroupHandler struct {
	groupSvc service.GroupService
}

func NewGroupHandler(groupSvc service.GroupService) *GroupHandler {
	return &GroupHandler{
		groupSvc: groupSvc,
	}
}

func (s *GroupHandler) ListGroups(c *gin.Context) {
	groups, err := s.groupSvc.ListGroups(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, groups)
}

func (s *GroupHandler) CreateGroup(c *gin.Context) {
	var req dto.GroupBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	groupID, err := s.groupSvc.CreateGroup(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"id": groupID})
}
