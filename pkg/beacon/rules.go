package beacon

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// knownMetaFields lists every meta field name the format defines.
var knownMetaFields = map[string]bool{
	// link construction
	FieldPrefix: true, FieldTarget: true, FieldMessage: true, FieldRelation: true, FieldAnnotation: true,
	// link dump description
	FieldDescription: true, FieldCreator: true, FieldContact: true, FieldHomepage: true,
	FieldFeed: true, FieldTimestamp: true, FieldUpdate: true,
	// datasets
	FieldSourceSet: true, FieldTargetSet: true, FieldName: true, FieldInstitution: true,
}

// uriMetaFields must hold absolute URIs.
var uriMetaFields = []string{FieldHomepage, FieldFeed, FieldSourceSet, FieldTargetSet}

// recommendedMetaFields are reported as info when missing.
var recommendedMetaFields = []string{FieldDescription, FieldCreator}

// UpdateFrequencies are the values allowed in the UPDATE field.
var UpdateFrequencies = []string{"always", "hourly", "daily", "weekly", "monthly", "yearly", "never"}

// IsKnownMetaField reports whether name is a meta field defined by the format.
func IsKnownMetaField(name string) bool {
	return knownMetaFields[strings.ToUpper(name)]
}

type timestampShape struct {
	pattern *regexp.Regexp
	layout  string
}

var timestampShapes = []timestampShape{
	{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), "2006-01-02"},
	{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}[+-]\d{2}:\d{2}$`), time.RFC3339},
	{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`), time.RFC3339},
	{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}$`), "2006-01-02T15:04:05"},
}

var (
	errNotURI       = errors.New("must be an absolute URI")
	errNotTimestamp = errors.New("must be an ISO 8601 date or datetime")
	errNotEmail     = errors.New("must be an email address")
)

var (
	uriRule = validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if !IsValidURI(s) {
			return errNotURI
		}
		return nil
	})

	relationRule = validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if !IsValidURI(s) && !IsURIPattern(s) {
			return errNotURI
		}
		return nil
	})

	// timestampRule accepts the four supported shapes, each of which must
	// also name a real calendar date and time.
	timestampRule = validation.By(func(value interface{}) error {
		s, _ := value.(string)
		for _, shape := range timestampShapes {
			if !shape.pattern.MatchString(s) {
				continue
			}
			if _, err := time.Parse(shape.layout, s); err == nil {
				return nil
			}
		}
		return errNotTimestamp
	})

	// contactRule accepts a bare address or a "Name <address>" mailbox.
	contactRule = validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if validation.Validate(s, is.EmailFormat) == nil {
			return nil
		}
		if _, err := mail.ParseAddress(s); err == nil {
			return nil
		}
		return errNotEmail
	})
)

func updateFrequencyRule() validation.Rule {
	allowed := make([]interface{}, len(UpdateFrequencies))
	for i, f := range UpdateFrequencies {
		allowed[i] = f
	}
	return validation.In(allowed...)
}

// Empty values are skipped by ozzo rules, so every field check is paired
// with Required.
func checkURIField(value string) error {
	return validation.Validate(value, validation.Required, uriRule)
}

func checkRelation(value string) error {
	return validation.Validate(value, validation.Required, relationRule)
}

func checkTimestamp(value string) error {
	return validation.Validate(value, validation.Required, timestampRule)
}

func checkUpdate(value string) error {
	return validation.Validate(value, validation.Required, updateFrequencyRule())
}

func checkContact(value string) error {
	return validation.Validate(value, validation.Required, contactRule)
}
