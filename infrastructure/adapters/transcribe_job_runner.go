package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/transcribeservice"
	"github.com/aws/aws-sdk-go/service/transcribeservice/transcribeserviceiface"
	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/saransathish/Video-language-converter/application/ports/outbound"
	"github.com/saransathish/Video-language-converter/config"
	"github.com/saransathish/Video-language-converter/domain"
)

var errJobStillRunning = errors.New("transcription job still running")

// transcriptDocument is the shape of the JSON document Amazon Transcribe
// writes to the TranscriptFileUri location.
type transcriptDocument struct {
	Results struct {
		Transcripts []struct {
			Transcript string `json:"transcript"`
		} `json:"transcripts"`
	} `json:"results"`
}

type transcribeJobRunner struct {
	transcribeSvc    transcribeserviceiface.TranscribeServiceAPI
	fetcher          ContentFetcher
	transcribeConfig *config.TranscribeConfig
	logger           outbound.LoggerPort
}

func NewTranscribeJobRunner(transcribeSvc transcribeserviceiface.TranscribeServiceAPI, fetcher ContentFetcher,
	transcribeConfig *config.TranscribeConfig, logger outbound.LoggerPort) outbound.TranscriberPort {
	return &transcribeJobRunner{
		transcribeSvc:    transcribeSvc,
		fetcher:          fetcher,
		transcribeConfig: transcribeConfig,
		logger:           logger,
	}
}

// Transcribe submits an asynchronous transcription job for the stored media,
// waits for it to reach a terminal state and returns the transcript text.
func (t *transcribeJobRunner) Transcribe(ctx context.Context, params outbound.TranscribeParams) (string, error) {
	jobName := "dub-" + uuid.NewString()

	_, err := t.transcribeSvc.StartTranscriptionJobWithContext(ctx, &transcribeservice.StartTranscriptionJobInput{
		TranscriptionJobName: aws.String(jobName),
		Media: &transcribeservice.Media{
			MediaFileUri: aws.String(params.Media.URI()),
		},
		MediaFormat:  aws.String(mediaFormatForKey(params.Media.Key)),
		LanguageCode: aws.String(params.LanguageCode),
	})
	if err != nil {
		t.logger.ErrorWithFields(err, "Failed to start transcription job", map[string]interface{}{
			"jobName": jobName,
			"media":   params.Media.URI(),
		})
		return "", err
	}

	t.logger.InfoWithFields("Started transcription job", map[string]interface{}{
		"jobName": jobName,
		"media":   params.Media.URI(),
	})

	job, err := t.awaitJob(ctx, jobName)
	if err != nil {
		return "", err
	}

	if job.Status == domain.JobFailed {
		t.logger.ErrorWithFields(nil, "Transcription job failed", map[string]interface{}{
			"jobName": jobName,
			"reason":  job.FailureReason,
		})
		return "", fmt.Errorf("%w: %s", domain.ErrTranscriptionFailed, job.FailureReason)
	}

	return t.fetchTranscript(ctx, job.TranscriptURI)
}

// awaitJob polls the job at a fixed interval until it reaches a terminal
// state or the poll budget runs out. Transient poll errors consume budget but
// do not abort: the job keeps running server-side.
func (t *transcribeJobRunner) awaitJob(ctx context.Context, jobName string) (domain.TranscriptionJob, error) {
	job := domain.TranscriptionJob{Name: jobName, Status: domain.JobSubmitted}

	poll := func() error {
		out, err := t.transcribeSvc.GetTranscriptionJobWithContext(ctx, &transcribeservice.GetTranscriptionJobInput{
			TranscriptionJobName: aws.String(jobName),
		})
		if err != nil {
			t.logger.WarnWithFields("Transcription status check failed, will poll again", map[string]interface{}{
				"jobName": jobName,
				"error":   err.Error(),
			})
			return err
		}

		job = jobFromSDK(out.TranscriptionJob)
		if job.Status.Terminal() {
			return nil
		}

		t.logger.Debug("Waiting for transcription to complete...")
		return errJobStillRunning
	}

	budget := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(t.transcribeConfig.PollInterval), uint64(t.transcribeConfig.MaxPolls-1)),
		ctx)

	if err := backoff.Retry(poll, budget); err != nil {
		if ctx.Err() != nil {
			return job, ctx.Err()
		}
		return job, fmt.Errorf("%w: job %s after %d polls", domain.ErrTranscriptionTimeout, jobName, t.transcribeConfig.MaxPolls)
	}

	return job, nil
}

func (t *transcribeJobRunner) fetchTranscript(ctx context.Context, transcriptURI string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, transcriptURI, nil)
	if err != nil {
		t.logger.ErrorWithFields(err, "Failed to create the transcript request", map[string]interface{}{
			"URL": transcriptURI,
		})
		return "", err
	}

	payload, err := t.fetcher.FetchContent(req)
	if err != nil {
		return "", err
	}

	var doc transcriptDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		t.logger.Error(err, "Failed to parse the transcript document")
		return "", err
	}

	if len(doc.Results.Transcripts) == 0 {
		return "", fmt.Errorf("transcript document contains no transcripts")
	}

	return doc.Results.Transcripts[0].Transcript, nil
}

func jobFromSDK(sdkJob *transcribeservice.TranscriptionJob) domain.TranscriptionJob {
	job := domain.TranscriptionJob{
		Name:          aws.StringValue(sdkJob.TranscriptionJobName),
		FailureReason: aws.StringValue(sdkJob.FailureReason),
	}

	switch aws.StringValue(sdkJob.TranscriptionJobStatus) {
	case transcribeservice.TranscriptionJobStatusCompleted:
		job.Status = domain.JobCompleted
		if sdkJob.Transcript != nil {
			job.TranscriptURI = aws.StringValue(sdkJob.Transcript.TranscriptFileUri)
		}
	case transcribeservice.TranscriptionJobStatusFailed:
		job.Status = domain.JobFailed
	case transcribeservice.TranscriptionJobStatusInProgress:
		job.Status = domain.JobInProgress
	default:
		job.Status = domain.JobSubmitted
	}

	return job
}

func mediaFormatForKey(key string) string {
	switch format := strings.TrimPrefix(strings.ToLower(filepath.Ext(key)), "."); format {
	case "mp3", "mp4", "wav", "flac", "ogg", "webm", "amr":
		return format
	default:
		return "mp4"
	}
}
