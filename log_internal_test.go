package trainlog

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/trainlog-io/trainlog/backend"
	"github.com/trainlog-io/trainlog/common"
)

// mockLog builds a log over a mocked backend with the status record
// already holding the given iteration counter.
func mockLog(t *testing.T, ctrl *gomock.Controller, iterationsDone int) (*Log, *backend.MockBackend) {
	t.Helper()
	mock := backend.NewMockBackend(ctrl)

	status := backend.NewMockEntry(ctrl)
	status.EXPECT().Snapshot().Return(map[string]any{
		IterationsDone: iterationsDone,
		EpochsDone:     0,
	}, nil)

	mock.EXPECT().Status().Return(status)
	record, err := newStatusRecord(mock.Status(), nil)
	if err != nil {
		t.Fatalf("failed to attach status record: %v", err)
	}
	run, err := common.NewRunID()
	if err != nil {
		t.Fatalf("failed to generate run id: %v", err)
	}
	return &Log{Status: record, run: run, backend: mock}, mock
}

func TestLog_CurrentEntryDelegatesToTheBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log, mock := mockLog(t, ctrl, 5)
	entry := backend.NewMockEntry(ctrl)
	mock.EXPECT().Entry(uint64(5)).Return(entry)

	got, err := log.CurrentEntry()
	if err != nil {
		t.Fatalf("failed to get current entry: %v", err)
	}
	if got != entry {
		t.Errorf("a different entry was returned")
	}
}

func TestLog_PreviousEntryDelegatesToTheBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log, mock := mockLog(t, ctrl, 5)
	entry := backend.NewMockEntry(ctrl)
	mock.EXPECT().Entry(uint64(4)).Return(entry)

	if _, err := log.PreviousEntry(); err != nil {
		t.Fatalf("failed to get previous entry: %v", err)
	}
}

func TestLog_LenAndStepsDelegateToTheBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log, mock := mockLog(t, ctrl, 0)
	mock.EXPECT().Count().Return(uint64(7), nil)
	mock.EXPECT().Steps().Return([]uint64{0, 1, 2}, nil)

	if count, err := log.Len(); err != nil || count != 7 {
		t.Errorf("got %d, %v; want 7", count, err)
	}
	if steps, err := log.Steps(); err != nil || len(steps) != 3 {
		t.Errorf("got %v, %v; want three steps", steps, err)
	}
}

func TestStatusRecord_WritesThroughToTheBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := backend.NewMockEntry(ctrl)
	store.EXPECT().Snapshot().Return(map[string]any{}, nil)
	// seeding the base counters and the explicit update below
	store.EXPECT().Set(IterationsDone, 0).Return(nil)
	store.EXPECT().Set(EpochsDone, 0).Return(nil)
	store.EXPECT().Set(IterationsDone, 3).Return(nil)

	record, err := newStatusRecord(store, nil)
	if err != nil {
		t.Fatalf("failed to attach status record: %v", err)
	}
	if err := record.Set(IterationsDone, 3); err != nil {
		t.Fatalf("failed to set counter: %v", err)
	}
	if done, err := record.Int(IterationsDone); err != nil || done != 3 {
		t.Errorf("got %d, %v; want 3", done, err)
	}
}

func TestStatusRecord_ResumesPersistedValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := backend.NewMockEntry(ctrl)
	// a previous process left counters behind; they must not be reset
	store.EXPECT().Snapshot().Return(map[string]any{
		IterationsDone: int64(40),
		EpochsDone:     int64(2),
	}, nil)

	record, err := newStatusRecord(store, nil)
	if err != nil {
		t.Fatalf("failed to attach status record: %v", err)
	}
	if done, err := record.Int(IterationsDone); err != nil || done != 40 {
		t.Errorf("got %d, %v; want the resumed 40", done, err)
	}
}
