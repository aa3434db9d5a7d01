package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"taskflow/model"
)

// MembershipStore is the slice of the document store membership needs.
// AddMember must apply the memberIds append, the members snapshot append and
// the isShared flag in one write, so a partial membership state cannot be
// observed or persisted.
type MembershipStore interface {
	GetProject(ctx context.Context, id string) (model.Project, error)
	AddMember(ctx context.Context, projectID string, member model.User) error
	FindUserByEmail(ctx context.Context, email string) (model.User, error)
}

// MembershipService grows a project's membership. There is no remove
// operation; membership only ever grows.
type MembershipService struct {
	store MembershipStore
	log   *zap.Logger
}

func NewMembershipService(store MembershipStore, log *zap.Logger) *MembershipService {
	return &MembershipService{store: store, log: log}
}

// LookupUserByEmail resolves an email to a profile with a case-normalized
// exact match. A PermissionDenied from the backend is surfaced with an
// actionable message rather than folded into a generic failure, because
// security rules may forbid cross-user queries entirely.
func (s *MembershipService) LookupUserByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return model.User{}, NewError(KindValidation, "email is required")
	}
	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		switch KindOf(err) {
		case KindNotFound:
			return model.User{}, NewError(KindNotFound, "no user with that email address exists")
		case KindPermissionDenied:
			return model.User{}, WrapError(KindPermissionDenied,
				"cannot look up users by email; ask them to sign up first, then invite again", err)
		default:
			return model.User{}, FromBackend(err)
		}
	}
	return user, nil
}

// InviteMember resolves the email and adds the user to the project. The
// lookup and the write are separate requests; if the write fails the
// membership arrays are untouched because the write itself is atomic.
func (s *MembershipService) InviteMember(ctx context.Context, projectID, email string) (model.User, error) {
	user, err := s.LookupUserByEmail(ctx, email)
	if err != nil {
		return model.User{}, err
	}

	project, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return model.User{}, FromBackend(err)
	}
	if project.HasMember(user.UID) {
		return model.User{}, NewError(KindAlreadyMember, "this user is already a member of the project")
	}

	if err := s.store.AddMember(ctx, projectID, user); err != nil {
		return model.User{}, FromBackend(err)
	}
	s.log.Info("member invited",
		zap.String("project", projectID),
		zap.String("uid", user.UID))
	return user, nil
}

// JoinViaLink adds the identity to the project it was linked to. Joining a
// project the identity already belongs to is a success, reported through the
// returned flag so callers can still navigate to the project.
func (s *MembershipService) JoinViaLink(ctx context.Context, projectID string, identity model.User) (alreadyMember bool, err error) {
	project, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return false, FromBackend(err)
	}
	if project.HasMember(identity.UID) {
		return true, nil
	}
	if err := s.store.AddMember(ctx, projectID, identity); err != nil {
		return false, FromBackend(err)
	}
	s.log.Info("member joined via link",
		zap.String("project", projectID),
		zap.String("uid", identity.UID))
	return false, nil
}
