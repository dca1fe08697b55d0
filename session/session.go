package session

import (
	"context"

	"ewintr.nl/baitbiter/fetcher"
	"ewintr.nl/baitbiter/model"
	"ewintr.nl/baitbiter/process"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// CompletionClient sends a prompt to a text-completion model and returns the
// generated text verbatim.
type CompletionClient interface {
	Complete(ctx context.Context, modelName, prompt string, maxTokens int) (string, error)
}

type Config struct {
	URL           string
	Mode          model.TranscriptMode
	QuestionModel string
	AnswerModel   string
}

// Session is one clickbait video turned into a question and, on demand,
// answers to it. Identifier, title, transcript and question are populated
// once during New and never change afterwards.
type Session struct {
	id          uuid.UUID
	videoID     model.YoutubeVideoID
	mode        model.TranscriptMode
	title       string
	transcript  string
	question    string
	answerModel string
	completions CompletionClient
	logger      *slog.Logger
}

// New builds a session from a video URL: derive the identifier, fetch the
// title, fetch the transcript (normalized if the mode says so) and turn the
// title into a question. All or nothing: the first failing stage aborts
// construction, later stages are not attempted.
func New(ctx context.Context, cfg Config, titles fetcher.TitleSource, transcripts fetcher.TranscriptSource, completions CompletionClient, logger *slog.Logger) (*Session, error) {
	questionModel := cfg.QuestionModel
	if questionModel == "" {
		questionModel = model.DefaultQuestionModel
	}
	answerModel := cfg.AnswerModel
	if answerModel == "" {
		answerModel = model.AnswerModelFor(cfg.Mode)
	}

	s := &Session{
		id:          uuid.New(),
		mode:        cfg.Mode,
		answerModel: answerModel,
		completions: completions,
		logger:      logger,
	}

	videoID, err := fetcher.ExtractVideoID(cfg.URL)
	if err != nil {
		return nil, err
	}
	s.videoID = videoID
	s.logger.Info("starting session", slog.String("session", s.id.String()), slog.String("video", string(videoID)))

	title, err := titles.Title(ctx, videoID)
	if err != nil {
		return nil, err
	}
	s.title = title
	s.logger.Info("fetched title", slog.String("session", s.id.String()), slog.String("title", title))

	transcript, err := transcripts.Transcript(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if s.mode == model.TranscriptNormalized {
		transcript = process.Normalize(transcript)
	}
	s.transcript = transcript
	s.logger.Info("fetched transcript", slog.String("session", s.id.String()), slog.Int("length", len(transcript)))

	question, err := completions.Complete(ctx, questionModel, QuestionPrompt(title), questionMaxTokens)
	if err != nil {
		return nil, err
	}
	s.question = question
	s.logger.Info("generated question", slog.String("session", s.id.String()), slog.String("question", question))

	return s, nil
}

// Answer answers the session's question using only the transcript as source
// material. Every call issues a fresh completion request, results are not
// memoized and may differ between calls.
func (s *Session) Answer(ctx context.Context) (string, error) {
	answer, err := s.completions.Complete(ctx, s.answerModel, AnswerPrompt(s.transcript, s.question), answerMaxTokens)
	if err != nil {
		return "", err
	}
	s.logger.Info("generated answer", slog.String("session", s.id.String()))

	return answer, nil
}

func (s *Session) VideoID() model.YoutubeVideoID { return s.videoID }

func (s *Session) Title() string { return s.title }

func (s *Session) Transcript() string { return s.transcript }

func (s *Session) Question() string { return s.question }
