package session

import (
	"context"
	"path/filepath"

	"bookmystars_client/internal/logger"

	"github.com/fsnotify/fsnotify"
)

// Watch reports session-file changes made by another process (another CLI
// invocation, a second "tab"). Each write or removal of the session file
// delivers the freshly re-read session on the returned channel; nil means
// the session is gone. The watcher stops when ctx is cancelled.
func (s *Store) Watch(ctx context.Context) (<-chan *State, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory: editors and atomic writers replace the file,
	// which would silently detach a file-level watch.
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		watcher.Close()
		return nil, err
	}

	updates := make(chan *State, 1)

	go func() {
		defer watcher.Close()
		defer close(updates)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != s.path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				select {
				case updates <- s.snapshot():
				default:
					// Drop intermediate updates; the latest read wins.
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.WithError(err).Warn("session watcher error")
			}
		}
	}()

	return updates, nil
}

func (s *Store) snapshot() *State {
	sess := s.GetUserSession()
	if sess == nil {
		return nil
	}
	return &State{
		LoggedIn:               s.IsLoggedIn(),
		ProfessionalsID:        sess.User.ProfessionalsID,
		ProfessionalsProfileID: sess.ProfessionalsProfileID,
	}
}

// State is the watcher's view of the stored record: enough for a caller
// to react to login/logout without re-reading the file itself.
type State struct {
	LoggedIn               bool
	ProfessionalsID        int
	ProfessionalsProfileID int
}
