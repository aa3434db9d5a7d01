package subscription

import (
	"context"
	"sync"

	"taskflow/model"
)

// fakeWatcher lets tests drive every stream by hand. Emit* methods fan an
// event out to all currently open subscriptions of that stream; channels
// close when their context ends, the way the Firestore adapter behaves.
type fakeWatcher struct {
	mu         sync.Mutex
	projectChs []chan ProjectsEvent
	taskChs    map[string][]chan TasksEvent
	updateChs  map[string][]chan UpdatesEvent
}

func newFakeWatcher() *fakeWatcher {
	return &fakeWatcher{
		taskChs:   map[string][]chan TasksEvent{},
		updateChs: map[string][]chan UpdatesEvent{},
	}
}

func (f *fakeWatcher) WatchProjects(ctx context.Context, uid string) <-chan ProjectsEvent {
	ch := make(chan ProjectsEvent, 16)
	f.mu.Lock()
	f.projectChs = append(f.projectChs, ch)
	f.mu.Unlock()
	go func() {
		<-ctx.Done()
		f.mu.Lock()
		defer f.mu.Unlock()
		for i, c := range f.projectChs {
			if c == ch {
				f.projectChs = append(f.projectChs[:i], f.projectChs[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch
}

func (f *fakeWatcher) WatchTasks(ctx context.Context, projectID string) <-chan TasksEvent {
	ch := make(chan TasksEvent, 16)
	f.mu.Lock()
	f.taskChs[projectID] = append(f.taskChs[projectID], ch)
	f.mu.Unlock()
	go func() {
		<-ctx.Done()
		f.mu.Lock()
		defer f.mu.Unlock()
		chs := f.taskChs[projectID]
		for i, c := range chs {
			if c == ch {
				f.taskChs[projectID] = append(chs[:i], chs[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch
}

func (f *fakeWatcher) WatchStatusUpdates(ctx context.Context, projectID string, limit int) <-chan UpdatesEvent {
	ch := make(chan UpdatesEvent, 16)
	f.mu.Lock()
	f.updateChs[projectID] = append(f.updateChs[projectID], ch)
	f.mu.Unlock()
	go func() {
		<-ctx.Done()
		f.mu.Lock()
		defer f.mu.Unlock()
		chs := f.updateChs[projectID]
		for i, c := range chs {
			if c == ch {
				f.updateChs[projectID] = append(chs[:i], chs[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch
}

func (f *fakeWatcher) emitProjects(ev ProjectsEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.projectChs {
		ch <- ev
	}
}

func (f *fakeWatcher) emitTasks(projectID string, ev TasksEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.taskChs[projectID] {
		ch <- ev
	}
}

func (f *fakeWatcher) emitUpdates(projectID string, ev UpdatesEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.updateChs[projectID] {
		ch <- ev
	}
}

func (f *fakeWatcher) openTaskStreams(projectID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.taskChs[projectID])
}

func (f *fakeWatcher) openUpdateStreams(projectID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.updateChs[projectID])
}

func project(id, name string, memberIDs ...string) model.Project {
	members := make([]model.User, 0, len(memberIDs))
	for _, uid := range memberIDs {
		members = append(members, model.User{UID: uid})
	}
	return model.Project{
		ID:        id,
		Name:      name,
		MemberIDs: memberIDs,
		Members:   members,
		IsShared:  len(memberIDs) > 1,
	}
}
