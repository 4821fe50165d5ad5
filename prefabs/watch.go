package prefabs

import (
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultQuiet is how long a file must stay untouched before its change is
// reported.
const DefaultQuiet = 100 * time.Millisecond

type ChangeKind int

const (
	ChangeConfig ChangeKind = iota
	ChangeScript
)

func (k ChangeKind) String() string {
	if k == ChangeScript {
		return "script"
	}
	return "config"
}

// Change is one settled edit to a simulation config or scenario script.
type Change struct {
	Path string
	Kind ChangeKind
}

func (c Change) String() string {
	return c.Kind.String() + ":" + filepath.Base(c.Path)
}

// Affects reports whether the change touches the config file named config
// or the scenario script spec runs.
func (c Change) Affects(config string, spec SimSpec) bool {
	base := filepath.Base(c.Path)
	switch c.Kind {
	case ChangeConfig:
		if config == "" {
			config = DefaultSimFile
		}
		return base == path.Base(cleanConfigPath(config))
	case ChangeScript:
		return spec.Scenario.Script != "" && base == path.Base(cleanScriptPath(spec.Scenario.Script))
	}
	return false
}

// Watcher turns fsnotify traffic under the prefabs directories into settled
// Changes. Every write to a file restarts its quiet period, so an editor's
// save burst yields one Change once the file has been still for the quiet
// period. The viewer polls Drain once per frame and never blocks on it.
type Watcher struct {
	fs      *fsnotify.Watcher
	quiet   time.Duration
	changes chan Change
	errs    chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	return newWatcher(DefaultQuiet, dirs...)
}

func newWatcher(quiet time.Duration, dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fw,
		quiet:   quiet,
		changes: make(chan Change, 16),
		errs:    make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Errors holds at most one unread watcher failure. Later failures are
// dropped until it is read.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fs.Close()
		<-w.done
		close(w.changes)
	})
	return err
}

// Drain returns the settled changes waiting so far, one per path, without
// blocking.
func (w *Watcher) Drain() []Change {
	var out []Change
	seen := make(map[string]bool)
	for {
		select {
		case c, ok := <-w.changes:
			if !ok {
				return out
			}
			if !seen[c.Path] {
				seen[c.Path] = true
				out = append(out, c)
			}
		default:
			return out
		}
	}
}

func (w *Watcher) run() {
	defer close(w.done)

	pending := make(map[string]Change)
	timer := time.NewTimer(w.quiet)
	timer.Stop()
	defer timer.Stop()
	var settle <-chan time.Time

	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			c, ok := classify(event)
			if !ok {
				continue
			}
			pending[c.Path] = c
			timer.Reset(w.quiet)
			settle = timer.C
		case <-settle:
			settle = nil
			for _, c := range sortedChanges(pending) {
				select {
				case w.changes <- c:
				case <-w.closeCh:
					return
				}
			}
			clear(pending)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func classify(event fsnotify.Event) (Change, bool) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return Change{}, false
	}
	switch {
	case isConfigFile(event.Name):
		return Change{Path: event.Name, Kind: ChangeConfig}, true
	case isScriptFile(event.Name):
		return Change{Path: event.Name, Kind: ChangeScript}, true
	}
	return Change{}, false
}

func sortedChanges(pending map[string]Change) []Change {
	out := make([]Change, 0, len(pending))
	for _, c := range pending {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

func isConfigFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(name string) bool {
	return strings.ToLower(filepath.Ext(name)) == ".tengo"
}
