package delete_job

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jobstorage "github.com/m04kA/SMC-WorkshopScheduler/internal/infra/storage/job"
)

type mockJobRepo struct {
	existing   map[int64]bool
	deletedIDs []int64
}

func (m *mockJobRepo) Delete(_ context.Context, id int64) error {
	if !m.existing[id] {
		return jobstorage.ErrJobNotFound
	}
	m.deletedIDs = append(m.deletedIDs, id)
	return nil
}

type mockAppointmentRepo struct {
	deletedJobIDs []int64
}

func (m *mockAppointmentRepo) DeleteByJobID(_ context.Context, jobID int64) error {
	m.deletedJobIDs = append(m.deletedJobIDs, jobID)
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestExecute_DeletesJobAndAppointment(t *testing.T) {
	jobRepo := &mockJobRepo{existing: map[int64]bool{1: true}}
	aptRepo := &mockAppointmentRepo{}

	uc := NewUseCase(jobRepo, aptRepo, passthroughTxManager{}, noopLogger{})

	err := uc.Execute(context.Background(), &Request{JobID: 1})
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, jobRepo.deletedIDs)
	assert.Equal(t, []int64{1}, aptRepo.deletedJobIDs)
}

func TestExecute_JobNotFound(t *testing.T) {
	jobRepo := &mockJobRepo{existing: map[int64]bool{}}
	uc := NewUseCase(jobRepo, &mockAppointmentRepo{}, passthroughTxManager{}, noopLogger{})

	err := uc.Execute(context.Background(), &Request{JobID: 42})
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&mockJobRepo{}, &mockAppointmentRepo{}, passthroughTxManager{}, noopLogger{})

	err := uc.Execute(context.Background(), &Request{JobID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
