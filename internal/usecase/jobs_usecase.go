package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"pix_checkout/internal/usecase/interfaces"
)

var ErrJobAlreadyRunning = errors.New("job already running")

const (
	JobSync           = "sync"
	JobRecoveryEmails = "recovery-emails"
)

// CronReport is the combined output of a scheduled run.
type CronReport struct {
	Sync          *SyncReport     `json:"sync,omitempty"`
	SyncError     string          `json:"sync_error,omitempty"`
	Recovery      *RecoveryReport `json:"recovery,omitempty"`
	RecoveryError string          `json:"recovery_error,omitempty"`
}

//go:generate mockgen -source=jobs_usecase.go -destination=../adapter/http/handlers/mocks/mock_jobs_usecase.go -package=mocks

// IJobsUseCase runs background jobs once, guarded by a lock so that
// overlapping cron invocations do not double-send.
type IJobsUseCase interface {
	RunSync(ctx context.Context) (SyncReport, error)
	RunRecoveryEmails(ctx context.Context) (RecoveryReport, error)
	RunAll(ctx context.Context) (CronReport, error)
}

type JobsUseCase struct {
	sync     ISyncUseCase
	recovery IRecoveryEmailUseCase
	locker   interfaces.IJobLocker
	lockTTL  time.Duration
}

var _ IJobsUseCase = (*JobsUseCase)(nil)

func NewJobsUseCase(sync ISyncUseCase, recovery IRecoveryEmailUseCase, locker interfaces.IJobLocker, lockTTL time.Duration) *JobsUseCase {
	return &JobsUseCase{sync: sync, recovery: recovery, locker: locker, lockTTL: lockTTL}
}

func (u *JobsUseCase) RunSync(ctx context.Context) (SyncReport, error) {
	var report SyncReport
	err := u.withLock(ctx, JobSync, func() error {
		var err error
		report, err = u.sync.Run(ctx)
		return err
	})
	return report, err
}

func (u *JobsUseCase) RunRecoveryEmails(ctx context.Context) (RecoveryReport, error) {
	var report RecoveryReport
	err := u.withLock(ctx, JobRecoveryEmails, func() error {
		var err error
		report, err = u.recovery.Run(ctx, time.Now().UTC())
		return err
	})
	return report, err
}

// RunAll runs sync and then recovery emails. A failing sync does not
// prevent the recovery job from running.
func (u *JobsUseCase) RunAll(ctx context.Context) (CronReport, error) {
	var out CronReport

	syncReport, err := u.RunSync(ctx)
	if errors.Is(err, ErrJobAlreadyRunning) {
		out.SyncError = err.Error()
	} else {
		out.Sync = &syncReport
		if err != nil {
			out.SyncError = err.Error()
		}
	}

	recReport, recErr := u.RunRecoveryEmails(ctx)
	if errors.Is(recErr, ErrJobAlreadyRunning) {
		out.RecoveryError = recErr.Error()
	} else {
		out.Recovery = &recReport
		if recErr != nil {
			out.RecoveryError = recErr.Error()
		}
	}

	if err != nil && recErr != nil {
		return out, errors.Join(err, recErr)
	}
	return out, nil
}

func (u *JobsUseCase) withLock(ctx context.Context, job string, fn func() error) error {
	if u.locker == nil {
		return fn()
	}
	release, ok, err := u.locker.Acquire(ctx, job, u.lockTTL)
	if err != nil {
		log.Printf("[jobs][usecase] lock error job=%s err=%v", job, err)
	}
	if !ok {
		log.Printf("[jobs][usecase] skipped job=%s reason=locked", job)
		return ErrJobAlreadyRunning
	}
	if release != nil {
		defer release()
	}
	log.Printf("[jobs][usecase] start job=%s", job)
	err = fn()
	log.Printf("[jobs][usecase] done job=%s err=%v", job, err)
	return err
}
