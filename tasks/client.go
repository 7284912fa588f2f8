package tasks

import (
	"medscribe.com/mre/redis"
	"fmt"
)

type Client struct {
	Documents   DocumentTasks
	Transcripts TranscriptTasks
	Jobs        JobTasks
}

// NewClient is a preferred way for working with TaskInfos
func NewClient() (Client, error) {
	docRedisClient, err := redis.NewClient(DocumentsDB)
	if err != nil {
		return Client{}, err
	}
	jobsRedisClient, err := redis.NewClient(JobsDB)
	if err != nil {
		return Client{}, err
	}
	transcriptsRedisClient, err := redis.NewClient(TranscriptsDB)
	if err != nil {
		return Client{}, err
	}
	return Client{
		Documents:   DocumentTasks{client: docRedisClient},
		Jobs:        JobTasks{client: jobsRedisClient},
		Transcripts: TranscriptTasks{client: transcriptsRedisClient},
	}, nil
}

func (client *Client) Close() {
	_ = client.Transcripts.client.Close()
	_ = client.Documents.client.Close()
	_ = client.Jobs.client.Close()
}
func cachedPropertiesKey(redisKey string) string {
	return fmt.Sprintf("%s-cached-properties", redisKey)
}
