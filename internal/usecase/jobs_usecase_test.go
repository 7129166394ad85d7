package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	mock_interfaces "pix_checkout/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type stubSync struct {
	report SyncReport
	err    error
	calls  int
}

func (s *stubSync) Run(context.Context) (SyncReport, error) {
	s.calls++
	return s.report, s.err
}

type stubRecovery struct {
	report RecoveryReport
	err    error
	calls  int
}

func (s *stubRecovery) Run(context.Context, time.Time) (RecoveryReport, error) {
	s.calls++
	return s.report, s.err
}

func TestJobsUseCase_RunSync_Locked(t *testing.T) {
	ctrl := gomock.NewController(t)
	locker := mock_interfaces.NewMockIJobLocker(ctrl)
	sync := &stubSync{}
	uc := NewJobsUseCase(sync, &stubRecovery{}, locker, time.Minute)

	locker.EXPECT().Acquire(gomock.Any(), JobSync, time.Minute).Return(func() {}, false, nil)

	if _, err := uc.RunSync(context.Background()); !errors.Is(err, ErrJobAlreadyRunning) {
		t.Fatalf("expected ErrJobAlreadyRunning, got %v", err)
	}
	if sync.calls != 0 {
		t.Fatalf("sync must not run while locked")
	}
}

func TestJobsUseCase_RunAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	locker := mock_interfaces.NewMockIJobLocker(ctrl)
	sync := &stubSync{err: errors.New("db")}
	recovery := &stubRecovery{report: RecoveryReport{Sent: 2}}
	uc := NewJobsUseCase(sync, recovery, locker, time.Minute)

	released := 0
	release := func() { released++ }
	gomock.InOrder(
		locker.EXPECT().Acquire(gomock.Any(), JobSync, time.Minute).Return(release, true, nil),
		locker.EXPECT().Acquire(gomock.Any(), JobRecoveryEmails, time.Minute).Return(release, true, nil),
	)

	out, err := uc.RunAll(context.Background())
	if err != nil {
		t.Fatalf("a single failing job must not fail the run: %v", err)
	}
	if out.SyncError != "db" || out.Recovery == nil || out.Recovery.Sent != 2 {
		t.Fatalf("unexpected report: %+v", out)
	}
	if released != 2 || recovery.calls != 1 {
		t.Fatalf("expected both locks released and recovery run, released=%d calls=%d", released, recovery.calls)
	}
}

func TestJobsUseCase_WithoutLocker(t *testing.T) {
	recovery := &stubRecovery{}
	uc := NewJobsUseCase(&stubSync{}, recovery, nil, time.Minute)
	if _, err := uc.RunRecoveryEmails(context.Background()); err != nil || recovery.calls != 1 {
		t.Fatalf("unexpected err=%v calls=%d", err, recovery.calls)
	}
}
