// internal/render/schemas.go
package render

// templateSchemas declares the minimum data each template needs. Validation
// runs before execution so a missing field fails the build instead of
// mailing a notification with blank spots.
var templateSchemas = map[string]map[string]interface{}{
	"newSubmissionCMS": {
		"type":     "object",
		"required": []string{"packageName", "submissionURL", "submissionDate", "stateName", "submissionType"},
	},
	"newSubmissionState": {
		"type":     "object",
		"required": []string{"packageName", "submissionURL", "submissionDate", "cmsReviewHelpEmail"},
	},
	"resubmittedCMS": {
		"type":     "object",
		"required": []string{"packageName", "submissionURL", "updatedBy", "updatedOn", "changesMade"},
	},
	"resubmittedState": {
		"type":     "object",
		"required": []string{"packageName", "submissionURL", "updatedBy", "updatedOn", "changesMade"},
	},
	"unlockedCMS": {
		"type":     "object",
		"required": []string{"packageName", "unlockedBy", "unlockedOn", "reason"},
	},
	"unlockedState": {
		"type":     "object",
		"required": []string{"packageName", "unlockedBy", "unlockedOn", "reason", "reviewAndSubmitURL"},
	},
	"newQuestionCMS": {
		"type":     "object",
		"required": []string{"packageName", "division", "round", "askedBy", "questionDate", "qaURL"},
	},
	"newQuestionState": {
		"type":     "object",
		"required": []string{"packageName", "round", "questionDate", "qaURL"},
	},
	"newResponseCMS": {
		"type":     "object",
		"required": []string{"packageName", "division", "round", "respondedBy", "responseDate", "qaURL"},
	},
	"newResponseState": {
		"type":     "object",
		"required": []string{"packageName", "round", "respondedBy", "responseDate", "qaURL"},
	},
	"rateWithdrawnCMS": {
		"type":     "object",
		"required": []string{"packageName", "rateName", "updatedBy", "updatedOn", "reason"},
	},
	"rateWithdrawnState": {
		"type":     "object",
		"required": []string{"packageName", "rateName", "updatedBy", "updatedOn", "reason"},
	},
	"undoRateWithdrawnCMS": {
		"type":     "object",
		"required": []string{"packageName", "rateName", "updatedBy", "updatedOn"},
	},
	"undoRateWithdrawnState": {
		"type":     "object",
		"required": []string{"packageName", "rateName", "updatedBy", "updatedOn"},
	},
}
