package tasks

import (
	"medscribe.com/mre/redis"
	"medscribe.com/mre/utils/maps"
)

const TranscriptsDB redis.DB = 2

type TaskStatus string

const (
	TaskStatusProcessing       TaskStatus = "processing"
	TaskStatusSubmitted        TaskStatus = "submitted"
	TaskStatusStarted          TaskStatus = "started"
	TaskStatusFailed           TaskStatus = "failed"
	TaskStatusCompletedSuccess TaskStatus = "completed - success"
	TaskStatusCompletedFailure TaskStatus = "completed - failure"
	TaskStatusCanceled         TaskStatus = "canceled"
)

func (s TaskStatus) Complete() bool {
	return s == TaskStatusCompletedSuccess || s == TaskStatusCompletedFailure || s == TaskStatusCanceled
}

func (s TaskStatus) Submitted() bool {
	return s == TaskStatusSubmitted || s == TaskStatusStarted || s == TaskStatusProcessing
}

// TranscriptTask is the shared task document for one transcript of a
// document. Only the fields this worker touches are declared; the rest of
// the document survives updates untouched.
type TranscriptTask struct {
	maps.BaseDocument
	DocID        string                 `json:"document_id"`
	JobID        string                 `json:"job_id"`
	TextFileKey  string                 `json:"text_file_key"`
	TaskStatuses TranscriptTaskStatuses `json:"task_statuses"`
}

type TranscriptTaskStatuses struct {
	MRE TranscriptTaskInfo `json:"mre"`
}

type TranscriptTaskInfo struct {
	ResultsFileKey    string     `json:"results_file_key"`
	StartedAt         *string    `json:"started_at"`
	CompletedAt       *string    `json:"completed_at"`
	Attempts          int        `json:"attempts"`
	Status            TaskStatus `json:"status"`
	Dependencies      []string   `json:"dependencies"`
	ModelDependencies []float64  `json:"model_dependencies"`
	ErrorMessages     []string   `json:"error_messages"`
}

type TranscriptTasks struct {
	client redis.Client
}

func (tasks TranscriptTasks) Get(redisKey string) (*TranscriptTask, error) {
	var task TranscriptTask
	err := tasks.client.GetPartialDocument(redisKey, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (tasks TranscriptTasks) Update(redisKey string, updateFunc func(task *TranscriptTask)) error {
	var task TranscriptTask
	return tasks.client.UpdatePartialDocument(redisKey, &task, updateFunc)
}
