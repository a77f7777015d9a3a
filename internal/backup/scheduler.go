package backup

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/blackwell-systems/avex/internal/i18n"
	"github.com/blackwell-systems/avex/internal/logging"
)

// DefaultInterval is the automatic snapshot period.
const DefaultInterval = 5 * time.Minute

// Status is the outcome of the most recent automatic backups.
type Status struct {
	// Last is the time of the last successful snapshot, zero if none.
	Last time.Time
	// Failed is set when the most recent attempt failed.
	Failed bool
}

// Label renders the status line shown next to the title.
func (s Status) Label(tr i18n.Translator, now time.Time) string {
	if s.Last.IsZero() {
		if s.Failed {
			return tr.T(i18n.KeyBackupFailed)
		}
		return tr.T(i18n.KeyBackupNever)
	}
	label := fmt.Sprintf(tr.T(i18n.KeyBackupAgo), int(now.Sub(s.Last).Minutes()))
	if s.Failed {
		label += " - " + tr.T(i18n.KeyBackupFailed)
	}
	return label
}

// Scheduler takes automatic snapshots of a data directory.
type Scheduler struct {
	DataDir   string
	BackupDir string
	Interval  time.Duration
	Log       *logrus.Entry
	Now       func() time.Time
	// Flush, when set, runs before each snapshot.
	Flush Checkpointer

	mu     sync.Mutex
	status Status
}

// NewScheduler returns a scheduler with the default interval.
func NewScheduler(dataDir, backupDir string, log *logrus.Entry) *Scheduler {
	if log == nil {
		log = logging.Discard()
	}
	return &Scheduler{
		DataDir:   dataDir,
		BackupDir: backupDir,
		Interval:  DefaultInterval,
		Log:       log,
		Now:       time.Now,
	}
}

// Status returns the current backup status.
func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// RunOnce takes one snapshot and records the outcome.
func (s *Scheduler) RunOnce() (Result, error) {
	now := s.Now()
	var res Result
	err := s.flush()
	if err == nil {
		res, err = Snapshot(s.DataDir, s.BackupDir, now)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status.Failed = true
		s.Log.WithError(err).Error("automatic backup failed")
		return res, err
	}
	s.status = Status{Last: now}
	s.Log.WithFields(logrus.Fields{"path": res.Path, "unchanged": res.Unchanged}).Debug("automatic backup")
	return res, nil
}

func (s *Scheduler) flush() error {
	if s.Flush == nil {
		return nil
	}
	return s.Flush.Checkpoint()
}

// Run snapshots immediately and then every Interval until ctx is done.
func (s *Scheduler) Run(ctx context.Context) error {
	_, _ = s.RunOnce()
	interval := s.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			_, _ = s.RunOnce()
		}
	}
}
