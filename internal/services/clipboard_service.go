// internal/services/clipboard_service.go
package services

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Clipboard is the clipboard collaborator boundary. Writes are
// fire-and-forget: failures are logged and never surfaced to the
// transition logic.
type Clipboard interface {
	Write(text string) error
}

// ClipboardService is the process-local clipboard used when no system
// integration is wired. It remembers the last written value.
type ClipboardService struct {
	mu   sync.Mutex
	last string
}

var _ Clipboard = (*ClipboardService)(nil)

func NewClipboardService() *ClipboardService {
	return &ClipboardService{}
}

func (s *ClipboardService) Write(text string) error {
	s.mu.Lock()
	s.last = text
	s.mu.Unlock()

	logrus.WithField("length", len(text)).Debug("Clipboard write")
	return nil
}

// Last returns the most recently written value.
func (s *ClipboardService) Last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}
