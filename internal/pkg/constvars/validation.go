package constvars

// CustomValidationErrorMessages maps validator tags to client wording.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email address",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"gt":       "must be greater than %s",
	"gte":      "must be at least %s",
	"oneof":    "must be one of: %s",
	"datetime": "must match the format %s",
}

// TagsWithParams lists tags whose message carries the tag parameter.
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"gt":       true,
	"gte":      true,
	"oneof":    true,
	"datetime": true,
}
