package service

import (
	"context"
	"errors"

	"yatube/internal/api/dto"
	"yatube/internal/model"
	"yatube/internal/repository"

	"github.com/go-sql-driver/mysql"
	"github.com/jinzhu/copier"
)

type GroupService interface {
	ListGroups(ctx context.Context) ([]*dto.GroupDTO, error)
	CreateGroup(ctx context.Context, groupDTO *dto.GroupBaseDTO) (uint64, error)
}

type GroupServiceImpl struct {
	groupRepo repository.GroupRepo
}

func NewGroupService(groupRepo repository.GroupRepo) GroupService {
	return &GroupServiceImpl{groupRepo: groupRepo}
}

func (s *GroupServiceImpl) ListGroups(ctx context.Context) ([]*dto.GroupDTO, error) {
	groups, err := s.groupRepo.ListGroups(ctx)
	if err != nil {
		return nil, err
	}

	groupDTOs := make([]*dto.GroupDTO, 0, len(groups))
	for _, group := range groups {
		groupDTO := &dto.GroupDTO{}
		_ = copier.Copy(groupDTO, group)
		groupDTOs = append(groupDTOs, groupDTO)
	}
	return groupDTOs, nil
}

func (s *GroupServiceImpl) CreateGroup(ctx context.Context, groupDTO *dto.GroupBaseDTO) (uint64, error) {
	findGroup, err := s.groupRepo.GetGroupBySlug(ctx, groupDTO.Slug)
	if err != nil {
		return 0, err
	}
	if findGroup != nil {
		return 0, ErrGroupSlugExist
	}

	group := &model.Group{
		Title:       groupDTO.Title,
		Slug:        groupDTO.Slug,
		Description: groupDTO.Description,
	}

	if err = s.groupRepo.CreateGroup(ctx, group); err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return 0, ErrGroupSlugExist
		}
		return 0, err
	}
	return group.ID, nil
}
