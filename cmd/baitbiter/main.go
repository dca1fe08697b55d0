package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"ewintr.nl/baitbiter/fetcher"
	"ewintr.nl/baitbiter/model"
	"ewintr.nl/baitbiter/session"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

var (
	normalize     bool
	questionModel string
	answerModel   string
	lang          string
)

var rootCmd = &cobra.Command{
	Use:   "baitbiter [url]",
	Short: "Answer the question a clickbait YouTube title dangles in front of you",
	Example: `  baitbiter "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
  baitbiter --normalize "https://youtu.be/dQw4w9WgXcQ"`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

		apiKey := getParam("OPENAI_API_KEY", "")
		if apiKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is not set")
		}

		var titles fetcher.TitleSource = fetcher.NewOEmbed(http.DefaultClient)
		if ytKey := getParam("YOUTUBE_API_KEY", ""); ytKey != "" {
			ytClient, err := youtube.NewService(ctx, option.WithAPIKey(ytKey))
			if err != nil {
				return fmt.Errorf("unable to create youtube service: %w", err)
			}
			titles = fetcher.NewDataAPI(ytClient)
		}

		mode := model.TranscriptRaw
		if normalize {
			mode = model.TranscriptNormalized
		}

		s, err := session.New(ctx, session.Config{
			URL:           args[0],
			Mode:          mode,
			QuestionModel: questionModel,
			AnswerModel:   answerModel,
		}, titles, fetcher.NewCaptions(lang), session.NewOpenAI(apiKey), logger)
		if err != nil {
			return err
		}

		answer, err := s.Answer(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Q: %s\nA: %s\n", strings.TrimSpace(s.Question()), strings.TrimSpace(answer))

		return nil
	},
}

func main() {
	godotenv.Load()

	rootCmd.Flags().BoolVar(&normalize, "normalize", false, "stem the transcript and strip stopwords before prompting")
	rootCmd.Flags().StringVar(&questionModel, "question-model", "", "completion model for the question (default "+model.DefaultQuestionModel+")")
	rootCmd.Flags().StringVar(&answerModel, "answer-model", "", "completion model for the answer (default depends on --normalize)")
	rootCmd.Flags().StringVar(&lang, "lang", "en", "preferred caption track language")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func getParam(param, def string) string {
	if val, ok := os.LookupEnv(param); ok {
		return val
	}

	return def
}
