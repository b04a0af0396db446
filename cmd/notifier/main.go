// cmd/notifier/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/catalog"
	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/common/aws"
	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/common/config"
	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/common/logger"
	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/common/observability"
	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/models"
	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/notify"
	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/render"
	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/store"
)

// eventEnvelope is the JSON shape the job layer hands to the notifier. The
// current question and response are referenced by id against the thread.
type eventEnvelope struct {
	Kind     string `json:"kind"`
	Audience string `json:"audience"`

	Submission         models.SubmittedSubmission `json:"submission"`
	StateAnalystEmails []string                   `json:"stateAnalystEmails,omitempty"`

	Questions         []models.Question `json:"questions,omitempty"`
	CurrentQuestionID string            `json:"currentQuestionId,omitempty"`
	CurrentResponseID string            `json:"currentResponseId,omitempty"`

	RateID     string    `json:"rateId,omitempty"`
	RateName   string    `json:"rateName,omitempty"`
	UpdatedBy  string    `json:"updatedBy,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

func main() {
	configPath := flag.String("config", "", "path to config file (defaults to ./configs/config.yaml)")
	eventPath := flag.String("event", "", "path to the event envelope JSON, or - for stdin")
	send := flag.Bool("send", false, "hand the built notification to SES instead of only printing it")
	flag.Parse()

	zapLog := logger.New("info", "json")
	defer zapLog.Sync()
	log := logger.NewStructured("info", "json")

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("notifier")
	defer obs.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	env, err := readEnvelope(*eventPath)
	if err != nil {
		zapLog.Fatal("event envelope load failed", zap.Error(err))
	}

	cat, err := catalog.Load()
	if err != nil {
		zapLog.Fatal("catalog load failed", zap.Error(err))
	}

	analysts := env.StateAnalystEmails
	if analysts == nil && cfg.Database.Postgres.Host != "" {
		analysts, err = lookupAnalysts(ctx, cfg, log, env.Submission.StateCode())
		if err != nil {
			zapLog.Fatal("analyst lookup failed", zap.Error(err))
		}
	}

	ev, err := toEvent(env, analysts)
	if err != nil {
		zapLog.Fatal("invalid event envelope", zap.Error(err))
	}

	assembler := notify.NewAssembler(&cfg.Notifications, cat, render.New(log), log)

	buildStart := time.Now()
	email, err := assembler.Build(ctx, ev)
	status := "ok"
	if err != nil {
		status = "error"
	}
	obs.RecordBuild(ctx, string(ev.Kind), status)
	obs.RecordBuildDuration(ctx, time.Since(buildStart), string(ev.Kind))
	if err != nil {
		zapLog.Fatal("notification build failed", zap.Error(err))
	}

	out, err := json.MarshalIndent(email, "", "  ")
	if err != nil {
		zapLog.Fatal("marshal output failed", zap.Error(err))
	}
	fmt.Println(string(out))

	if *send {
		if !cfg.AWS.SES.Enabled {
			zapLog.Fatal("ses is disabled in config; refusing to send")
		}
		mailer, err := aws.NewSESMailer(ctx, cfg.AWS.Region, log)
		if err != nil {
			zapLog.Fatal("ses mailer init failed", zap.Error(err))
		}
		if err := mailer.Send(ctx, email); err != nil {
			zapLog.Fatal("send failed", zap.Error(err))
		}
	}
}

func readEnvelope(path string) (*eventEnvelope, error) {
	if path == "" {
		return nil, fmt.Errorf("-event is required")
	}

	var raw []byte
	var err error
	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading event envelope: %w", err)
	}

	var env eventEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("parsing event envelope: %w", err)
	}
	return &env, nil
}

func lookupAnalysts(ctx context.Context, cfg *config.Config, log logger.Logger, stateCode string) ([]string, error) {
	db, err := store.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rdb := store.NewRedis(cfg.Database.Redis)
	defer rdb.Close()

	return store.NewAnalystStore(db, rdb, log).EmailsForState(ctx, stateCode)
}

func toEvent(env *eventEnvelope, analysts []string) (*notify.Event, error) {
	ev := &notify.Event{
		Kind:               notify.EventKind(env.Kind),
		Audience:           notify.Audience(env.Audience),
		Submission:         &env.Submission,
		StateAnalystEmails: analysts,
		Questions:          env.Questions,
		RateID:             env.RateID,
		RateName:           env.RateName,
		UpdatedBy:          env.UpdatedBy,
		Reason:             env.Reason,
		OccurredAt:         env.OccurredAt,
	}

	if env.CurrentQuestionID != "" {
		for i := range env.Questions {
			if env.Questions[i].ID == env.CurrentQuestionID {
				ev.CurrentQuestion = &env.Questions[i]
				break
			}
		}
		if ev.CurrentQuestion == nil {
			return nil, fmt.Errorf("current question %s not in thread", env.CurrentQuestionID)
		}
	}

	if env.CurrentResponseID != "" && ev.CurrentQuestion != nil {
		for i := range ev.CurrentQuestion.Responses {
			if ev.CurrentQuestion.Responses[i].ID == env.CurrentResponseID {
				ev.CurrentResponse = &ev.CurrentQuestion.Responses[i]
				break
			}
		}
		if ev.CurrentResponse == nil {
			return nil, fmt.Errorf("current response %s not on question %s", env.CurrentResponseID, env.CurrentQuestionID)
		}
	}

	return ev, nil
}
