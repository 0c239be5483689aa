package saga

import (
	"sync"
	"time"
)

//noinspection ALL
const (
	LogTypeStartSaga SagaState = iota
	LogTypeSagaStepExec
	LogTypeSagaAbort
	LogTypeSagaStepCompensate
	LogTypeSagaComplete
)

type SagaState int

func (st SagaState) ToString() string {
	var data = []string{"LogTypeStartSaga", "LogTypeSagaStepExec", "LogTypeSagaAbort", "LogTypeSagaStepCompensate", "LogTypeSagaComplete"}
	return data[st]
}

type Log struct {
	ExecutionID string        `json:"execution_id"`
	SagaName    string        `json:"saga_name"`
	State       SagaState     `json:"state"`
	Time        time.Time     `json:"time"`
	StepNumber  int           `json:"step_number"`
	StepName    string        `json:"step_name,omitempty"`
	StepError   string        `json:"step_error,omitempty"`
	Duration    time.Duration `json:"duration,omitempty"`
}

// Sink receives every saga log entry as it is written.
type Sink interface {
	Append(log *Log)
}

// Store keeps saga logs queryable by execution id.
type Store interface {
	Sink
	ByExecution(id string) []*Log
}

type memoryStore struct {
	mu   sync.RWMutex
	logs map[string][]*Log
}

func New() Store {
	return &memoryStore{logs: map[string][]*Log{}}
}

func (m *memoryStore) Append(log *Log) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logs[log.ExecutionID] = append(m.logs[log.ExecutionID], log)
}

func (m *memoryStore) ByExecution(id string) []*Log {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.logs[id]
}
