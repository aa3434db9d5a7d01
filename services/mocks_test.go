package services

import (
	"context"
	"fmt"
	"time"

	"taskflow/model"
)

// fakeStore is an in-memory stand-in for the Firestore adapter. Error
// fields inject failures per operation.
type fakeStore struct {
	users    map[string]model.User // keyed by uid
	accounts map[string]model.Account
	tokens   map[string]model.RefreshTokenRecord
	projects map[string]model.Project
	tasks    map[string]map[string]model.Task // projectID -> taskID -> task
	updates  map[string][]model.StatusUpdate

	nextID int

	findUserErr  error
	addMemberErr error
	writeErr     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    map[string]model.User{},
		accounts: map[string]model.Account{},
		tokens:   map[string]model.RefreshTokenRecord{},
		projects: map[string]model.Project{},
		tasks:    map[string]map[string]model.Task{},
		updates:  map[string][]model.StatusUpdate{},
	}
}

func (f *fakeStore) genID() string {
	f.nextID++
	return fmt.Sprintf("id-%d", f.nextID)
}

func (f *fakeStore) CreateUser(ctx context.Context, u model.User) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.users[u.UID] = u
	return nil
}

func (f *fakeStore) GetUser(ctx context.Context, uid string) (model.User, error) {
	u, ok := f.users[uid]
	if !ok {
		return model.User{}, NewError(KindNotFound, "user not found")
	}
	return u, nil
}

func (f *fakeStore) FindUserByEmail(ctx context.Context, email string) (model.User, error) {
	if f.findUserErr != nil {
		return model.User{}, f.findUserErr
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, NewError(KindNotFound, "user not found")
}

func (f *fakeStore) UpdateUserName(ctx context.Context, uid, name string) error {
	u, ok := f.users[uid]
	if !ok {
		return NewError(KindNotFound, "user not found")
	}
	u.Name = name
	f.users[uid] = u
	return nil
}

func (f *fakeStore) SaveAccount(ctx context.Context, a model.Account) error {
	f.accounts[a.UID] = a
	return nil
}

func (f *fakeStore) GetAccount(ctx context.Context, uid string) (model.Account, error) {
	a, ok := f.accounts[uid]
	if !ok {
		return model.Account{}, NewError(KindNotFound, "account not found")
	}
	return a, nil
}

func (f *fakeStore) SaveRefreshToken(ctx context.Context, rec model.RefreshTokenRecord) error {
	f.tokens[rec.UserID] = rec
	return nil
}

func (f *fakeStore) DeleteRefreshToken(ctx context.Context, uid string) error {
	delete(f.tokens, uid)
	return nil
}

func (f *fakeStore) CreateProject(ctx context.Context, p model.Project) (string, error) {
	if f.writeErr != nil {
		return "", f.writeErr
	}
	p.ID = f.genID()
	p.CreatedAt = time.Now()
	f.projects[p.ID] = p
	return p.ID, nil
}

func (f *fakeStore) GetProject(ctx context.Context, id string) (model.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return model.Project{}, NewError(KindNotFound, "project not found")
	}
	return p, nil
}

func (f *fakeStore) UpdateProject(ctx context.Context, id string, fields map[string]interface{}) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	p, ok := f.projects[id]
	if !ok {
		return NewError(KindNotFound, "project not found")
	}
	if name, ok := fields["name"].(string); ok {
		p.Name = name
	}
	if description, ok := fields["description"].(string); ok {
		p.Description = description
	}
	p.UpdatedAt = time.Now()
	f.projects[id] = p
	return nil
}

// AddMember mirrors the single atomic write: both projections and the
// shared flag change together or not at all.
func (f *fakeStore) AddMember(ctx context.Context, projectID string, member model.User) error {
	if f.addMemberErr != nil {
		return f.addMemberErr
	}
	p, ok := f.projects[projectID]
	if !ok {
		return NewError(KindNotFound, "project not found")
	}
	for _, id := range p.MemberIDs {
		if id == member.UID {
			return nil // ArrayUnion is a set add
		}
	}
	p.MemberIDs = append(p.MemberIDs, member.UID)
	p.Members = append(p.Members, member)
	p.IsShared = true
	p.UpdatedAt = time.Now()
	f.projects[projectID] = p
	return nil
}

func (f *fakeStore) CreateTask(ctx context.Context, projectID string, t model.Task) (string, error) {
	if f.writeErr != nil {
		return "", f.writeErr
	}
	t.ID = f.genID()
	t.CreatedAt = time.Now()
	if f.tasks[projectID] == nil {
		f.tasks[projectID] = map[string]model.Task{}
	}
	f.tasks[projectID][t.ID] = t
	return t.ID, nil
}

func (f *fakeStore) UpdateTask(ctx context.Context, projectID, taskID string, fields map[string]interface{}) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	t, ok := f.tasks[projectID][taskID]
	if !ok {
		return NewError(KindNotFound, "task not found")
	}
	if content, ok := fields["content"].(string); ok {
		t.Content = content
	}
	if status, ok := fields["status"].(string); ok {
		t.Status = status
	}
	if priority, ok := fields["priority"].(string); ok {
		t.Priority = priority
	}
	if dueDate, ok := fields["dueDate"].(string); ok {
		t.DueDate = dueDate
	}
	t.UpdatedAt = time.Now() // server timestamp stand-in
	f.tasks[projectID][taskID] = t
	return nil
}

func (f *fakeStore) DeleteTask(ctx context.Context, projectID, taskID string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	delete(f.tasks[projectID], taskID)
	return nil
}

func (f *fakeStore) CreateStatusUpdate(ctx context.Context, projectID string, u model.StatusUpdate) (string, error) {
	if f.writeErr != nil {
		return "", f.writeErr
	}
	u.ID = f.genID()
	u.CreatedAt = time.Now()
	f.updates[projectID] = append([]model.StatusUpdate{u}, f.updates[projectID]...)
	return u.ID, nil
}

func (f *fakeStore) LatestStatusUpdates(ctx context.Context, projectID string, limit int) ([]model.StatusUpdate, error) {
	updates := f.updates[projectID]
	if len(updates) > limit {
		updates = updates[:limit]
	}
	return updates, nil
}
