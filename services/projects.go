package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"taskflow/model"
)

type ProjectStore interface {
	GetProject(ctx context.Context, id string) (model.Project, error)
	CreateProject(ctx context.Context, p model.Project) (string, error)
	UpdateProject(ctx context.Context, id string, fields map[string]interface{}) error
}

type ProjectService struct {
	store ProjectStore
	log   *zap.Logger
}

func NewProjectService(store ProjectStore, log *zap.Logger) *ProjectService {
	return &ProjectService{store: store, log: log}
}

// Create makes a new project with the creator as its only member.
func (s *ProjectService) Create(ctx context.Context, name string, owner model.User) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", NewError(KindValidation, "project name is required")
	}
	project := model.Project{
		Name:      name,
		IsShared:  false,
		Members:   []model.User{owner},
		MemberIDs: []string{owner.UID},
	}
	id, err := s.store.CreateProject(ctx, project)
	if err != nil {
		return "", FromBackend(err)
	}
	s.log.Info("project created", zap.String("project", id), zap.String("uid", owner.UID))
	return id, nil
}

// Get loads one project document, for the invite/join landing view.
func (s *ProjectService) Get(ctx context.Context, id string) (model.Project, error) {
	project, err := s.store.GetProject(ctx, id)
	if err != nil {
		if KindOf(err) == KindNotFound {
			return model.Project{}, NewError(KindNotFound, "this project doesn't exist or has been deleted")
		}
		return model.Project{}, FromBackend(err)
	}
	return project, nil
}

// UpdateSettings renames a project and/or replaces its description.
func (s *ProjectService) UpdateSettings(ctx context.Context, id, name, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return NewError(KindValidation, "project name is required")
	}
	fields := map[string]interface{}{
		"name":        name,
		"description": description,
	}
	if err := s.store.UpdateProject(ctx, id, fields); err != nil {
		return FromBackend(err)
	}
	return nil
}
