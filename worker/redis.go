package worker

import (
	"fmt"
	"medscribe.com/mre/tasks"
)

type redisTransactions interface {
	getTranscriptTask(redisKey string) (*tasks.TranscriptTask, error)
	getJobTask(task *Task) (*tasks.JobTask, error)
	getDocTask(task *Task) (*tasks.DocumentTaskCached, error)
	onTaskStarted(task *Task) error
	onTaskCancelled(task *Task, errorMessages ...string) error
	onTaskExceededRetries(task *Task, maxRetries int) error
	onTaskFailedWithError(task *Task, err error) error
	onTaskComplete(task *Task) error
	close()
}

type redisClientWrapper struct {
	tasksClient *tasks.Client
}

func (wrapper *redisClientWrapper) close() {
	wrapper.tasksClient.Close()
}

func (wrapper *redisClientWrapper) onTaskStarted(task *Task) error {
	err := wrapper.tasksClient.Transcripts.Update(task.redisKey, func(task *tasks.TranscriptTask) {
		task.TaskStatuses.MRE.Status = tasks.TaskStatusStarted
		task.TaskStatuses.MRE.Attempts += 1
		task.TaskStatuses.MRE.StartedAt = getFormattedNow()
		task.TaskStatuses.MRE.CompletedAt = nil
	})
	return err
}

func (wrapper *redisClientWrapper) onTaskCancelled(task *Task, errorMessages ...string) error {
	err := wrapper.tasksClient.Transcripts.Update(task.redisKey, func(transcriptTask *tasks.TranscriptTask) {
		transcriptTask.TaskStatuses.MRE.Status = tasks.TaskStatusCanceled
		transcriptTask.TaskStatuses.MRE.StartedAt = getFormattedNow()
		transcriptTask.TaskStatuses.MRE.CompletedAt = getFormattedNow()
		transcriptTask.TaskStatuses.MRE.Attempts += 1
		transcriptTask.TaskStatuses.MRE.ErrorMessages = append(
			transcriptTask.TaskStatuses.MRE.ErrorMessages,
			errorMessages...,
		)
	})
	return err
}

func (wrapper *redisClientWrapper) onTaskExceededRetries(task *Task, maxRetries int) error {
	err := wrapper.tasksClient.Documents.Update(task.transcriptTask.DocID, func(docTask *tasks.DocumentTask) {
		docTask.FailedTasks = append(docTask.FailedTasks, "mre")
		docTask.FailedTranscripts[task.redisKey] = append(docTask.FailedTranscripts[task.redisKey], "mre")
	})
	if err != nil {
		return err
	}
	err = wrapper.tasksClient.Transcripts.Update(task.redisKey, func(transcriptTask *tasks.TranscriptTask) {
		transcriptTask.TaskStatuses.MRE.Status = tasks.TaskStatusCompletedFailure
		transcriptTask.TaskStatuses.MRE.StartedAt = getFormattedNow()
		transcriptTask.TaskStatuses.MRE.CompletedAt = getFormattedNow()
		transcriptTask.TaskStatuses.MRE.Attempts += 1
		transcriptTask.TaskStatuses.MRE.ErrorMessages = append(
			transcriptTask.TaskStatuses.MRE.ErrorMessages,
			fmt.Sprintf(
				"Task has exceeded retries. (Attempts: %d, max retries: %d )",
				transcriptTask.TaskStatuses.MRE.Attempts,
				maxRetries,
			),
		)
	})
	return err
}

func (wrapper *redisClientWrapper) onTaskFailedWithError(task *Task, err error) error {
	return wrapper.tasksClient.Transcripts.Update(task.redisKey, func(transcriptTask *tasks.TranscriptTask) {
		transcriptTask.TaskStatuses.MRE.Status = tasks.TaskStatusFailed
		transcriptTask.TaskStatuses.MRE.CompletedAt = getFormattedNow()
		transcriptTask.TaskStatuses.MRE.ErrorMessages = append(transcriptTask.TaskStatuses.MRE.ErrorMessages, err.Error())
	})
}

func (wrapper *redisClientWrapper) onTaskComplete(task *Task) error {
	return wrapper.tasksClient.Transcripts.Update(task.redisKey, func(transcriptTask *tasks.TranscriptTask) {
		if !transcriptTask.TaskStatuses.MRE.Status.Complete() {
			transcriptTask.TaskStatuses.MRE.Status = tasks.TaskStatusCompletedSuccess
		}
		transcriptTask.TaskStatuses.MRE.CompletedAt = getFormattedNow()
		transcriptTask.TaskStatuses.MRE.ResultsFileKey = getResultsFileKey(task)
	})
}

func (wrapper *redisClientWrapper) getTranscriptTask(redisKey string) (*tasks.TranscriptTask, error) {
	return wrapper.tasksClient.Transcripts.Get(redisKey)
}

func (wrapper *redisClientWrapper) getJobTask(task *Task) (*tasks.JobTask, error) {
	return wrapper.tasksClient.Jobs.GetCached(task.transcriptTask.JobID)
}

func (wrapper *redisClientWrapper) getDocTask(task *Task) (*tasks.DocumentTaskCached, error) {
	return wrapper.tasksClient.Documents.GetCached(task.transcriptTask.DocID)
}
