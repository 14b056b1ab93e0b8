package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"msgtags/internal/common"
)

const maxBodyBytes = 1 << 20

type SendMessageRequest struct {
	ConversationID string   `json:"conversationId" validate:"required,mongodb"`
	SenderID       string   `json:"senderId" validate:"required,mongodb"`
	Text           string   `json:"text"`
	Tags           []string `json:"tags" validate:"omitempty,dive,required"`
}

// TagRequest is the body of both tag add and tag remove.
type TagRequest struct {
	Tag     string `json:"tag" validate:"required"`
	ActorID string `json:"actorId" validate:"required,mongodb"`
}

// GroupedByTagsRequest lists must be present but may be empty, which
// yields an empty result.
type GroupedByTagsRequest struct {
	ConversationIDs []string `json:"conversationIds" validate:"required,dive,required,mongodb"`
	Tags            []string `json:"tags" validate:"required,dive,required"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func requestValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// decodeAndValidate reads a JSON body into v and runs the struct tags.
// Every failure comes back as a common.InvalidInputError.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return common.NewInvalidInputError("body", err.Error())
	}

	if err := requestValidator().Struct(v); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return common.NewInvalidInputError(fieldPath(fe.Namespace()), validationMessage(fe))
		}
		return common.NewInvalidInputError("body", err.Error())
	}
	return nil
}

// fieldPath drops the struct name: "TagRequest.actorId" -> "actorId".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "mongodb":
		return "must be a 24 character hex object id"
	default:
		return fmt.Sprintf("failed validation: %s", fe.Tag())
	}
}
