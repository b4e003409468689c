package internal

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	tt "github.com/formalverse/sequin/internal/types"
)

// Watcher re-checks proof files whenever they change on disk.
type Watcher struct {
	engine    *Engine
	watcher   *fsnotify.Watcher
	isRunning bool
}

// NewWatcher creates a watcher over the given files and directories.
func NewWatcher(engine *Engine, paths []string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating watcher: %w", err)
	}

	w := &Watcher{engine: engine, watcher: fsw}
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("error accessing %s: %w", path, err)
		}
		if !info.IsDir() {
			if err := fsw.Add(path); err != nil {
				fsw.Close()
				return nil, err
			}
			continue
		}
		err = filepath.Walk(path, func(p string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if fi.IsDir() {
				return w.watcher.Add(p)
			}
			return nil
		})
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}
	return w, nil
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() error {
	if w.isRunning {
		return fmt.Errorf("already watching")
	}
	w.isRunning = true
	go w.watchLoop()
	return nil
}

// Stop ends the watch loop and releases the underlying watcher.
func (w *Watcher) Stop() error {
	if !w.isRunning {
		log.Println("not watching")
	}
	w.isRunning = false
	return w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	for w.isRunning {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFileEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("error: %v", err)
		}
	}
}

func (w *Watcher) handleFileEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	if !hasProofExtension(event.Name) {
		return
	}
	// wait for a while after file change to consider multiple changes as one
	time.Sleep(100 * time.Millisecond)
	issues, err := w.engine.Run(event.Name)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	w.reportIssues(event.Name, issues)
}

func (w *Watcher) reportIssues(filename string, issues []tt.Issue) {
	if len(issues) == 0 {
		log.Printf("proof accepted: %s", filename)
		return
	}

	log.Printf("found %d invalid inference(s) in %s", len(issues), filename)
	for _, issue := range issues {
		log.Printf("- %s at %s: %s", issue.Rule, issue.Path, issue.Message)
	}
}

func hasProofExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
