// internal/notify/assembler.go
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/catalog"
	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/common/config"
	apperrors "github.com/Enterprise-CMCS/managed-care-review-sub006/internal/common/errors"
	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/common/logger"
	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/common/metrics"
	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/models"
	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/render"
	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/routing"
	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/urls"
)

// Notification timestamps are displayed in the CMS review team's timezone.
var easternTime = mustLoadLocation("America/New_York")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

func formatDate(t time.Time) string {
	return t.In(easternTime).Format("01/02/2006")
}

// Assembler builds one outbound email per event. It holds no per-build
// state; a single instance serves concurrent builds.
type Assembler struct {
	cfg      *config.NotificationConfig
	catalog  *catalog.Catalog
	renderer *render.Renderer
	urls     *urls.Builder
	logger   logger.Logger
}

func NewAssembler(cfg *config.NotificationConfig, cat *catalog.Catalog, renderer *render.Renderer, log logger.Logger) *Assembler {
	return &Assembler{
		cfg:      cfg,
		catalog:  cat,
		renderer: renderer,
		urls:     urls.NewBuilder(cfg.BaseURL),
		logger:   log.WithFields(map[string]interface{}{"component": "assembler"}),
	}
}

type dispatchKey struct {
	Kind     EventKind
	Audience Audience
}

type eventSpec struct {
	templateName  string
	subjectFormat string
	recipients    func(a *Assembler, ev *Event) ([]string, error)
	data          func(a *Assembler, ev *Event, packageName string, programs []models.Program) (map[string]interface{}, error)
}

// dispatch is the single table keyed by event kind and audience. Adding an
// event means adding rows here, not writing another wrapper function.
var dispatch = map[dispatchKey]eventSpec{
	{EventNewSubmission, AudienceCMS}: {
		templateName:  "newSubmissionCMS",
		subjectFormat: "New Managed Care Submission: %s",
		recipients:    reviewerRecipients,
		data:          newSubmissionCMSData,
	},
	{EventNewSubmission, AudienceState}: {
		templateName:  "newSubmissionState",
		subjectFormat: "%s was sent to CMS",
		recipients:    stateRecipients,
		data:          newSubmissionStateData,
	},
	{EventResubmission, AudienceCMS}: {
		templateName:  "resubmittedCMS",
		subjectFormat: "%s was resubmitted",
		recipients:    reviewerRecipients,
		data:          resubmittedData,
	},
	{EventResubmission, AudienceState}: {
		templateName:  "resubmittedState",
		subjectFormat: "%s was resubmitted",
		recipients:    stateRecipients,
		data:          resubmittedData,
	},
	{EventUnlock, AudienceCMS}: {
		templateName:  "unlockedCMS",
		subjectFormat: "%s was unlocked",
		recipients:    reviewerRecipients,
		data:          unlockedData,
	},
	{EventUnlock, AudienceState}: {
		templateName:  "unlockedState",
		subjectFormat: "%s was unlocked by CMS",
		recipients:    stateRecipients,
		data:          unlockedData,
	},
	{EventNewQuestion, AudienceCMS}: {
		templateName:  "newQuestionCMS",
		subjectFormat: "Questions sent for %s",
		recipients:    questionRecipients,
		data:          newQuestionData,
	},
	{EventNewQuestion, AudienceState}: {
		templateName:  "newQuestionState",
		subjectFormat: "New questions about %s",
		recipients:    stateQuestionRecipients,
		data:          newQuestionData,
	},
	{EventNewResponse, AudienceCMS}: {
		templateName:  "newResponseCMS",
		subjectFormat: "New Responses for %s",
		recipients:    questionRecipients,
		data:          newResponseData,
	},
	{EventNewResponse, AudienceState}: {
		templateName:  "newResponseState",
		subjectFormat: "Response submitted to CMS for %s",
		recipients:    stateQuestionRecipients,
		data:          newResponseData,
	},
	{EventRateWithdrawn, AudienceCMS}: {
		templateName:  "rateWithdrawnCMS",
		subjectFormat: "A rate was withdrawn from %s",
		recipients:    reviewerRecipients,
		data:          rateWithdrawnData,
	},
	{EventRateWithdrawn, AudienceState}: {
		templateName:  "rateWithdrawnState",
		subjectFormat: "CMS withdrew a rate from %s",
		recipients:    stateRecipients,
		data:          rateWithdrawnData,
	},
	{EventUndoRateWithdrawn, AudienceCMS}: {
		templateName:  "undoRateWithdrawnCMS",
		subjectFormat: "A rate withdrawal was undone for %s",
		recipients:    reviewerRecipients,
		data:          undoRateWithdrawnData,
	},
	{EventUndoRateWithdrawn, AudienceState}: {
		templateName:  "undoRateWithdrawnState",
		subjectFormat: "CMS undid a rate withdrawal for %s",
		recipients:    stateRecipients,
		data:          undoRateWithdrawnData,
	},
}

// Build validates the event's submission against the state catalog, resolves
// recipients, renders the body, and returns a ready-to-send message. It
// short-circuits on the first error and returns it unchanged.
func (a *Assembler) Build(ctx context.Context, ev *Event) (*models.EmailData, error) {
	start := time.Now()
	kind := string(ev.Kind)

	email, err := a.build(ctx, ev)
	if err != nil {
		metrics.NotificationBuildFailures.WithLabelValues(kind, string(apperrors.CodeOf(err))).Inc()
		a.logger.Error("notification build failed", map[string]interface{}{
			"eventKind":    kind,
			"audience":     string(ev.Audience),
			"submissionId": ev.Submission.ID(),
			"error":        err.Error(),
		})
		return nil, err
	}

	metrics.NotificationsBuilt.WithLabelValues(kind).Inc()
	metrics.NotificationBuildDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	a.logger.Info("notification built", map[string]interface{}{
		"eventKind":      kind,
		"audience":       string(ev.Audience),
		"submissionId":   ev.Submission.ID(),
		"notificationId": email.NotificationID,
		"recipients":     len(email.ToAddresses),
	})
	return email, nil
}

func (a *Assembler) build(_ context.Context, ev *Event) (*models.EmailData, error) {
	spec, ok := dispatch[dispatchKey{ev.Kind, ev.Audience}]
	if !ok {
		return nil, apperrors.NewUnsupportedEventError(string(ev.Kind), string(ev.Audience))
	}

	sub := ev.Submission
	statePrograms, ok := a.catalog.ForState(sub.StateCode())
	if !ok {
		return nil, apperrors.NewProgramCatalogError(sub.StateCode(), sub.ProgramIDs())
	}

	programs, err := routing.ValidatePrograms(sub.StateCode(), sub.ProgramIDs(), statePrograms)
	if err != nil {
		return nil, err
	}
	packageName := routing.PackageName(sub.StateCode(), sub.StateNumber(), programs)

	recipients, err := spec.recipients(a, ev)
	if err != nil {
		return nil, err
	}

	data, err := spec.data(a, ev, packageName, programs)
	if err != nil {
		return nil, err
	}

	htmlBody, err := a.renderer.Render(spec.templateName, data)
	if err != nil {
		return nil, err
	}

	subject := fmt.Sprintf(spec.subjectFormat, packageName)
	if a.cfg.Stage != "prod" {
		subject = fmt.Sprintf("[%s] %s", a.cfg.Stage, subject)
	}

	return &models.EmailData{
		NotificationID:   uuid.NewString(),
		ToAddresses:      recipients,
		ReplyToAddresses: a.cfg.ReplyToEmails,
		SourceEmail:      a.cfg.EmailSource,
		Subject:          subject,
		BodyText:         render.HTMLToText(htmlBody),
		BodyHTML:         htmlBody,
	}, nil
}

// ==========================
// Recipient functions
// ==========================

func reviewerRecipients(a *Assembler, ev *Event) ([]string, error) {
	return routing.ReviewerEmails(ev.Submission, a.cfg, ev.StateAnalystEmails)
}

func stateRecipients(_ *Assembler, ev *Event) ([]string, error) {
	return routing.StateRecipients(ev.Submission), nil
}

func questionRecipients(a *Assembler, ev *Event) ([]string, error) {
	if ev.CurrentQuestion == nil {
		return nil, apperrors.NewQuestionNotFoundError("")
	}
	return routing.QuestionRecipients(
		ev.CurrentQuestion.Division,
		a.cfg,
		ev.StateAnalystEmails,
		ev.Submission.RiskBasedContract(),
	), nil
}

// State-facing question and response mail keeps the CMS review base and
// additionally unions in the submission's state contacts and submitters.
func stateQuestionRecipients(a *Assembler, ev *Event) ([]string, error) {
	base, err := questionRecipients(a, ev)
	if err != nil {
		return nil, err
	}
	return routing.DedupeAddresses(append(base, routing.StateRecipients(ev.Submission)...)), nil
}

// ==========================
// Data functions
// ==========================

func (a *Assembler) qaURL(ev *Event) string {
	if ev.RateID != "" {
		return a.urls.RateQAURL(ev.Submission.ID(), ev.RateID)
	}
	return a.urls.SubmissionQAURL(ev.Submission.ID())
}

func newSubmissionCMSData(a *Assembler, ev *Event, packageName string, _ []models.Program) (map[string]interface{}, error) {
	rateNames := make([]string, 0, len(ev.Submission.RateRevisions()))
	for _, rev := range ev.Submission.RateRevisions() {
		rateNames = append(rateNames, rev.RateCertificationName)
	}

	return map[string]interface{}{
		"packageName":    packageName,
		"stateName":      a.catalog.StateName(ev.Submission.StateCode()),
		"submissionType": string(ev.Submission.SubmissionType()),
		"submissionDate": formatDate(ev.OccurredAt),
		"submissionURL":  a.urls.SubmissionSummaryURL(ev.Submission.ID()),
		"rateNames":      rateNames,
	}, nil
}

func newSubmissionStateData(a *Assembler, ev *Event, packageName string, _ []models.Program) (map[string]interface{}, error) {
	return map[string]interface{}{
		"packageName":        packageName,
		"submissionDate":     formatDate(ev.OccurredAt),
		"submissionURL":      a.urls.SubmissionSummaryURL(ev.Submission.ID()),
		"cmsReviewHelpEmail": a.cfg.CMSReviewHelpEmailAddress,
		"helpDeskEmail":      a.cfg.HelpDeskEmail,
	}, nil
}

func resubmittedData(a *Assembler, ev *Event, packageName string, _ []models.Program) (map[string]interface{}, error) {
	return map[string]interface{}{
		"packageName":   packageName,
		"submissionURL": a.urls.SubmissionSummaryURL(ev.Submission.ID()),
		"updatedBy":     ev.UpdatedBy,
		"updatedOn":     formatDate(ev.OccurredAt),
		"changesMade":   ev.Reason,
	}, nil
}

func unlockedData(a *Assembler, ev *Event, packageName string, _ []models.Program) (map[string]interface{}, error) {
	return map[string]interface{}{
		"packageName":        packageName,
		"unlockedBy":         ev.UpdatedBy,
		"unlockedOn":         formatDate(ev.OccurredAt),
		"reason":             ev.Reason,
		"reviewAndSubmitURL": a.urls.ReviewAndSubmitURL(ev.Submission.ID()),
	}, nil
}

func newQuestionData(a *Assembler, ev *Event, packageName string, _ []models.Program) (map[string]interface{}, error) {
	if ev.CurrentQuestion == nil {
		return nil, apperrors.NewQuestionNotFoundError("")
	}
	round, err := routing.QuestionRound(ev.Questions, *ev.CurrentQuestion)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"packageName":  packageName,
		"division":     string(ev.CurrentQuestion.Division),
		"round":        round,
		"askedBy":      ev.CurrentQuestion.AddedBy.Email,
		"questionDate": formatDate(ev.CurrentQuestion.CreatedAt),
		"qaURL":        a.qaURL(ev),
	}, nil
}

func newResponseData(a *Assembler, ev *Event, packageName string, _ []models.Program) (map[string]interface{}, error) {
	if ev.CurrentQuestion == nil {
		return nil, apperrors.NewQuestionNotFoundError("")
	}
	if ev.CurrentResponse == nil {
		return nil, apperrors.NewQuestionNotFoundError(ev.CurrentQuestion.ID)
	}
	round, err := routing.QuestionRound(ev.Questions, *ev.CurrentQuestion)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"packageName":  packageName,
		"division":     string(ev.CurrentQuestion.Division),
		"round":        round,
		"respondedBy":  ev.CurrentResponse.AddedBy.Email,
		"responseDate": formatDate(ev.CurrentResponse.CreatedAt),
		"qaURL":        a.qaURL(ev),
	}, nil
}

func rateWithdrawnData(a *Assembler, ev *Event, packageName string, _ []models.Program) (map[string]interface{}, error) {
	data := map[string]interface{}{
		"packageName": packageName,
		"rateName":    ev.RateName,
		"updatedBy":   ev.UpdatedBy,
		"updatedOn":   formatDate(ev.OccurredAt),
		"reason":      ev.Reason,
	}
	if ev.RateID != "" {
		data["rateURL"] = a.urls.RateSummaryURL(ev.Submission.ID(), ev.RateID)
	}
	return data, nil
}

func undoRateWithdrawnData(a *Assembler, ev *Event, packageName string, _ []models.Program) (map[string]interface{}, error) {
	data := map[string]interface{}{
		"packageName": packageName,
		"rateName":    ev.RateName,
		"updatedBy":   ev.UpdatedBy,
		"updatedOn":   formatDate(ev.OccurredAt),
	}
	if ev.RateID != "" {
		data["rateURL"] = a.urls.RateSummaryURL(ev.Submission.ID(), ev.RateID)
	}
	return data, nil
}
