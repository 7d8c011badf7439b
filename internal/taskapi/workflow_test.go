package taskapi

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/clive/todo-tui/internal/storetest"
	"github.com/clive/todo-tui/internal/task"
)

type WorkflowTestSuite struct {
	suite.Suite
	store  *storetest.Store
	client *Client
	ctx    context.Context
}

func (s *WorkflowTestSuite) SetupTest() {
	s.store = storetest.Start(nil)
	s.store.UseSequentialIDs()
	s.client = NewClient(s.store.URL(), 5*time.Second)
	s.ctx = context.Background()
}

func (s *WorkflowTestSuite) TearDownTest() {
	s.store.Close()
}

func (s *WorkflowTestSuite) TestFullTaskWorkflow() {
	created, err := s.client.CreateTask(s.ctx, "Integration test task")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "1", created.ID)
	assert.Equal(s.T(), "Integration test task", created.Description)

	tasks, err := s.client.ListTasks(s.ctx)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []task.Task{created}, tasks)

	require.NoError(s.T(), s.client.DeleteTask(s.ctx, created.ID))

	tasks, err = s.client.ListTasks(s.ctx)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), tasks)
}

func (s *WorkflowTestSuite) TestDeleteAllTasks() {
	s.store.Seed("one", "two", "three")

	require.NoError(s.T(), s.client.DeleteAllTasks(s.ctx))
	assert.Empty(s.T(), s.store.Tasks())
}

func (s *WorkflowTestSuite) TestDeleteMissingTaskIsRejected() {
	err := s.client.DeleteTask(s.ctx, "404")
	require.Error(s.T(), err)
	assert.Equal(s.T(), task.KindDeleteOneFailed, task.KindOf(err))
}

func (s *WorkflowTestSuite) TestInjectedCreateFailureStoresNothing() {
	s.store.FailWith(storetest.RouteCreate, http.StatusInternalServerError)

	_, err := s.client.CreateTask(s.ctx, "never stored")
	require.Error(s.T(), err)
	assert.Equal(s.T(), task.KindCreateFailed, task.KindOf(err))
	assert.Empty(s.T(), s.store.Tasks())

	s.store.FailWith(storetest.RouteCreate, 0)
	_, err = s.client.CreateTask(s.ctx, "stored")
	assert.NoError(s.T(), err)
}

func (s *WorkflowTestSuite) TestRequestsHitContractPaths() {
	created, err := s.client.CreateTask(s.ctx, "x")
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.client.DeleteTask(s.ctx, created.ID))
	require.NoError(s.T(), s.client.DeleteAllTasks(s.ctx))
	_, err = s.client.ListTasks(s.ctx)
	require.NoError(s.T(), err)

	assert.Equal(s.T(), []string{
		"POST /api/task",
		"DELETE /api/task/1",
		"DELETE /api/tasks",
		"GET /api/tasks",
	}, s.store.Requests())
}

func TestWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(WorkflowTestSuite))
}
