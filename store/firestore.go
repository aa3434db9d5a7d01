// Package store is the Firestore adapter behind every service and the
// subscription manager. Collection layout:
//
//	users/{uid}                       public profiles
//	accounts/{uid}                    credential records
//	refreshTokens/{uid}               hashed refresh tokens
//	projects/{id}                     project documents
//	projects/{id}/tasks/{taskId}      task sub-collection
//	projects/{id}/statusUpdates/{id}  append-only status feed
package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"taskflow/model"
	"taskflow/services"
)

const (
	colUsers         = "users"
	colAccounts      = "accounts"
	colRefreshTokens = "refreshTokens"
	colProjects      = "projects"
	colTasks         = "tasks"
	colStatusUpdates = "statusUpdates"
)

type FirestoreStore struct {
	client *firestore.Client
	log    *zap.Logger
}

func NewFirestoreStore(client *firestore.Client, log *zap.Logger) *FirestoreStore {
	return &FirestoreStore{client: client, log: log}
}

// --- users and accounts ---

func (s *FirestoreStore) CreateUser(ctx context.Context, u model.User) error {
	_, err := s.client.Collection(colUsers).Doc(u.UID).Set(ctx, u)
	return services.FromBackend(err)
}

func (s *FirestoreStore) GetUser(ctx context.Context, uid string) (model.User, error) {
	snap, err := s.client.Collection(colUsers).Doc(uid).Get(ctx)
	if err != nil {
		return model.User{}, services.FromBackend(err)
	}
	var user model.User
	if err := snap.DataTo(&user); err != nil {
		return model.User{}, services.WrapError(services.KindUnknown, "failed to decode user", err)
	}
	user.UID = snap.Ref.ID
	return user, nil
}

func (s *FirestoreStore) FindUserByEmail(ctx context.Context, email string) (model.User, error) {
	docs, err := s.client.Collection(colUsers).
		Where("email", "==", email).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return model.User{}, services.FromBackend(err)
	}
	if len(docs) == 0 {
		return model.User{}, services.NewError(services.KindNotFound, "user not found")
	}
	var user model.User
	if err := docs[0].DataTo(&user); err != nil {
		return model.User{}, services.WrapError(services.KindUnknown, "failed to decode user", err)
	}
	user.UID = docs[0].Ref.ID
	return user, nil
}

func (s *FirestoreStore) UpdateUserName(ctx context.Context, uid, name string) error {
	_, err := s.client.Collection(colUsers).Doc(uid).Update(ctx, []firestore.Update{
		{Path: "name", Value: name},
	})
	return services.FromBackend(err)
}

func (s *FirestoreStore) SaveAccount(ctx context.Context, a model.Account) error {
	_, err := s.client.Collection(colAccounts).Doc(a.UID).Set(ctx, a)
	return services.FromBackend(err)
}

func (s *FirestoreStore) GetAccount(ctx context.Context, uid string) (model.Account, error) {
	snap, err := s.client.Collection(colAccounts).Doc(uid).Get(ctx)
	if err != nil {
		return model.Account{}, services.FromBackend(err)
	}
	var account model.Account
	if err := snap.DataTo(&account); err != nil {
		return model.Account{}, services.WrapError(services.KindUnknown, "failed to decode account", err)
	}
	return account, nil
}

func (s *FirestoreStore) SaveRefreshToken(ctx context.Context, rec model.RefreshTokenRecord) error {
	_, err := s.client.Collection(colRefreshTokens).Doc(rec.UserID).Set(ctx, rec)
	return services.FromBackend(err)
}

func (s *FirestoreStore) DeleteRefreshToken(ctx context.Context, uid string) error {
	_, err := s.client.Collection(colRefreshTokens).Doc(uid).Delete(ctx)
	return services.FromBackend(err)
}

// --- projects ---

func (s *FirestoreStore) CreateProject(ctx context.Context, p model.Project) (string, error) {
	ref, _, err := s.client.Collection(colProjects).Add(ctx, p)
	if err != nil {
		return "", services.FromBackend(err)
	}
	return ref.ID, nil
}

func (s *FirestoreStore) GetProject(ctx context.Context, id string) (model.Project, error) {
	snap, err := s.client.Collection(colProjects).Doc(id).Get(ctx)
	if err != nil {
		return model.Project{}, services.FromBackend(err)
	}
	return decodeProject(snap)
}

func (s *FirestoreStore) UpdateProject(ctx context.Context, id string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields)+1)
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp})
	_, err := s.client.Collection(colProjects).Doc(id).Update(ctx, updates)
	return services.FromBackend(err)
}

// AddMember appends the uid to memberIds and the profile snapshot to
// members, and flips isShared, all in a single update so the two
// projections cannot diverge on a partial failure.
func (s *FirestoreStore) AddMember(ctx context.Context, projectID string, member model.User) error {
	_, err := s.client.Collection(colProjects).Doc(projectID).Update(ctx, []firestore.Update{
		{Path: "memberIds", Value: firestore.ArrayUnion(member.UID)},
		{Path: "members", Value: firestore.ArrayUnion(member)},
		{Path: "isShared", Value: true},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	return services.FromBackend(err)
}

// --- tasks ---

func (s *FirestoreStore) CreateTask(ctx context.Context, projectID string, t model.Task) (string, error) {
	ref, _, err := s.tasksCol(projectID).Add(ctx, t)
	if err != nil {
		return "", services.FromBackend(err)
	}
	return ref.ID, nil
}

// UpdateTask merges the fields and stamps updatedAt with server time in the
// same write.
func (s *FirestoreStore) UpdateTask(ctx context.Context, projectID, taskID string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields)+1)
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp})
	_, err := s.tasksCol(projectID).Doc(taskID).Update(ctx, updates)
	return services.FromBackend(err)
}

func (s *FirestoreStore) DeleteTask(ctx context.Context, projectID, taskID string) error {
	_, err := s.tasksCol(projectID).Doc(taskID).Delete(ctx)
	return services.FromBackend(err)
}

// --- status updates ---

func (s *FirestoreStore) CreateStatusUpdate(ctx context.Context, projectID string, u model.StatusUpdate) (string, error) {
	ref, _, err := s.updatesCol(projectID).Add(ctx, u)
	if err != nil {
		return "", services.FromBackend(err)
	}
	return ref.ID, nil
}

func (s *FirestoreStore) LatestStatusUpdates(ctx context.Context, projectID string, limit int) ([]model.StatusUpdate, error) {
	docs, err := s.updatesCol(projectID).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, services.FromBackend(err)
	}
	updates := make([]model.StatusUpdate, 0, len(docs))
	for _, doc := range docs {
		u, err := decodeStatusUpdate(doc)
		if err != nil {
			s.log.Warn("skipping undecodable status update", zap.String("doc", doc.Ref.ID), zap.Error(err))
			continue
		}
		updates = append(updates, u)
	}
	return updates, nil
}

// --- helpers ---

func (s *FirestoreStore) tasksCol(projectID string) *firestore.CollectionRef {
	return s.client.Collection(colProjects).Doc(projectID).Collection(colTasks)
}

func (s *FirestoreStore) updatesCol(projectID string) *firestore.CollectionRef {
	return s.client.Collection(colProjects).Doc(projectID).Collection(colStatusUpdates)
}

func decodeProject(snap *firestore.DocumentSnapshot) (model.Project, error) {
	var p model.Project
	if err := snap.DataTo(&p); err != nil {
		return model.Project{}, services.WrapError(services.KindUnknown, "failed to decode project", err)
	}
	p.ID = snap.Ref.ID
	return p, nil
}

func decodeTask(snap *firestore.DocumentSnapshot) (model.Task, error) {
	var t model.Task
	if err := snap.DataTo(&t); err != nil {
		return model.Task{}, services.WrapError(services.KindUnknown, "failed to decode task", err)
	}
	t.ID = snap.Ref.ID
	return t, nil
}

func decodeStatusUpdate(snap *firestore.DocumentSnapshot) (model.StatusUpdate, error) {
	var u model.StatusUpdate
	if err := snap.DataTo(&u); err != nil {
		return model.StatusUpdate{}, services.WrapError(services.KindUnknown, "failed to decode status update", err)
	}
	u.ID = snap.Ref.ID
	return u, nil
}

func isCanceled(err error) bool {
	return status.Code(err) == codes.Canceled || err == context.Canceled
}
