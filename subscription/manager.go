package subscription

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"taskflow/model"
)

// DefaultUpdateLimit caps the live status feed per project.
const DefaultUpdateLimit = 10

// Manager owns every live query for one identity: the projects-by-membership
// stream, plus a task stream and a status update stream per visible project.
// It merges their snapshots into one Aggregate keyed by project id and
// republishes the latest aggregate on the channel returned by Start.
//
// Snapshots from different streams arrive in no particular relative order.
// Task and update snapshots are kept even when the parent project is not
// (or no longer) visible; they simply stay out of the aggregate until the
// project snapshot that introduces the project arrives.
type Manager struct {
	watcher Watcher
	log     *zap.Logger

	mu        sync.Mutex
	cancel    context.CancelFunc
	order     []string
	projects  map[string]model.Project
	tasks     map[string][]model.Task
	updates   map[string][]model.StatusUpdate
	taskErr   map[string]error
	updateErr map[string]error
	cancels   map[string]context.CancelFunc
	projErr   error

	out       chan Aggregate
	wg        sync.WaitGroup
	closeOnce sync.Once
}

func NewManager(watcher Watcher, log *zap.Logger) *Manager {
	return &Manager{
		watcher:   watcher,
		log:       log,
		projects:  map[string]model.Project{},
		tasks:     map[string][]model.Task{},
		updates:   map[string][]model.StatusUpdate{},
		taskErr:   map[string]error{},
		updateErr: map[string]error{},
		cancels:   map[string]context.CancelFunc{},
		out:       make(chan Aggregate, 1),
	}
}

// Start opens the project stream for uid and returns the aggregate channel.
// The channel is conflated: it always holds the most recent aggregate, so a
// slow reader only ever misses intermediate states, never the latest one.
// Call Stop (or cancel ctx) to tear every stream down.
func (m *Manager) Start(ctx context.Context, uid string) <-chan Aggregate {
	runCtx, cancel := context.WithCancel(ctx)
	m.mu.Lock()
	m.cancel = cancel
	m.mu.Unlock()

	ch := m.watcher.WatchProjects(runCtx, uid)
	m.wg.Add(1)
	go m.runProjects(runCtx, ch)
	m.log.Info("subscriptions opened", zap.String("uid", uid))
	return m.out
}

// Stop cancels every live query and closes the aggregate channel once all
// stream goroutines have drained.
func (m *Manager) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
	m.closeOnce.Do(func() { close(m.out) })
}

// Aggregate returns a copy of the current view-model.
func (m *Manager) Aggregate() Aggregate {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.composeLocked()
}

// LatestUpdates is the live status feed for one project, newest first.
// Unknown project ids yield an empty feed.
func (m *Manager) LatestUpdates(projectID string) []model.StatusUpdate {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.projects[projectID]; !ok {
		return []model.StatusUpdate{}
	}
	out := make([]model.StatusUpdate, len(m.updates[projectID]))
	copy(out, m.updates[projectID])
	return out
}

func (m *Manager) runProjects(ctx context.Context, ch <-chan ProjectsEvent) {
	defer m.wg.Done()
	for ev := range ch {
		if ev.Err != nil {
			m.log.Warn("project stream failed", zap.Error(ev.Err))
			m.mu.Lock()
			m.projErr = ev.Err
			m.mu.Unlock()
			m.publish()
			continue
		}
		m.applyProjects(ctx, ev.Projects)
		m.publish()
	}
}

// applyProjects replaces the visible project set, opening sub-streams for
// projects that appeared and tearing down those for projects that left the
// membership query (the identity can no longer see them).
func (m *Manager) applyProjects(ctx context.Context, projects []model.Project) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.projErr = nil
	seen := make(map[string]bool, len(projects))
	order := make([]string, 0, len(projects))
	for _, p := range projects {
		seen[p.ID] = true
		order = append(order, p.ID)
		m.projects[p.ID] = p
		if _, open := m.cancels[p.ID]; !open {
			m.openProjectStreamsLocked(ctx, p.ID)
		}
	}
	m.order = order

	for id, cancel := range m.cancels {
		if seen[id] {
			continue
		}
		cancel()
		delete(m.cancels, id)
		delete(m.projects, id)
		delete(m.tasks, id)
		delete(m.updates, id)
		delete(m.taskErr, id)
		delete(m.updateErr, id)
		m.log.Info("project left view, streams closed", zap.String("project", id))
	}
}

// openProjectStreamsLocked must be called with the lock held.
func (m *Manager) openProjectStreamsLocked(ctx context.Context, projectID string) {
	pctx, cancel := context.WithCancel(ctx)
	m.cancels[projectID] = cancel

	taskCh := m.watcher.WatchTasks(pctx, projectID)
	updateCh := m.watcher.WatchStatusUpdates(pctx, projectID, DefaultUpdateLimit)
	m.wg.Add(2)
	go m.runTasks(projectID, taskCh)
	go m.runUpdates(projectID, updateCh)
}

func (m *Manager) runTasks(projectID string, ch <-chan TasksEvent) {
	defer m.wg.Done()
	for ev := range ch {
		m.mu.Lock()
		if ev.Err != nil {
			m.taskErr[projectID] = ev.Err
		} else {
			m.tasks[projectID] = ev.Tasks
			delete(m.taskErr, projectID)
		}
		m.mu.Unlock()
		m.publish()
	}
}

func (m *Manager) runUpdates(projectID string, ch <-chan UpdatesEvent) {
	defer m.wg.Done()
	for ev := range ch {
		m.mu.Lock()
		if ev.Err != nil {
			m.updateErr[projectID] = ev.Err
		} else {
			m.updates[projectID] = ev.Updates
			delete(m.updateErr, projectID)
		}
		m.mu.Unlock()
		m.publish()
	}
}

// publish replaces whatever the out channel currently holds with the latest
// aggregate.
func (m *Manager) publish() {
	m.mu.Lock()
	agg := m.composeLocked()
	m.mu.Unlock()
	for {
		select {
		case m.out <- agg:
			return
		default:
			select {
			case <-m.out:
			default:
			}
		}
	}
}

// composeLocked must be called with the lock held. Only projects present in
// the latest project snapshot are visible; orphan task or update data for
// other ids is excluded.
func (m *Manager) composeLocked() Aggregate {
	agg := Aggregate{Projects: make([]ProjectView, 0, len(m.order))}
	if m.projErr != nil {
		agg.Err = m.projErr.Error()
	}
	for _, id := range m.order {
		p, ok := m.projects[id]
		if !ok {
			continue
		}
		view := ProjectView{
			Project: p,
			Tasks:   append([]model.Task{}, m.tasks[id]...),
			Updates: append([]model.StatusUpdate{}, m.updates[id]...),
		}
		view.Stats = model.CountTasks(view.Tasks)
		if err := m.taskErr[id]; err != nil {
			view.TasksErr = err.Error()
		}
		if err := m.updateErr[id]; err != nil {
			view.UpdatesErr = err.Error()
		}
		agg.Projects = append(agg.Projects, view)
	}
	return agg
}
