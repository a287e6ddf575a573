package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rpupo63/ideaboard-backend/errs"
	"github.com/rpupo63/ideaboard-backend/models"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodePayload reads a JSON body into payload and runs its validation tags
func decodePayload(w http.ResponseWriter, r *http.Request, logger zerolog.Logger, payloadType string, payload any) error {
	bodyBytes, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.Warn().Int64("limit", tooLarge.Limit).Msgf("Rejected oversized %s request body", payloadType)
			return errs.NewMaxBodySizeExceededError(tooLarge.Limit)
		}
		logger.Error().Err(err).Msg("Failed to read request body")
		return errs.NewBadRequestError("failed to read request body")
	}

	if err := json.Unmarshal(bodyBytes, payload); err != nil {
		logger.Warn().Err(err).Str("body", string(bodyBytes)).Msgf("Failed to decode %s request body", payloadType)
		return errs.NewMalformedPayloadError(payloadType, err)
	}

	if err := validate.Struct(payload); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fieldError(verrs[0].Field(), verrs[0])
		}
		return errs.NewBadRequestError(err.Error())
	}
	return nil
}

func validationError(field string, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fieldError(field, verrs[0])
	}
	return errs.NewInvalidFieldError(field, err.Error())
}

func fieldError(field string, fe validator.FieldError) error {
	switch fe.Tag() {
	case "required":
		return errs.NewMissingRequiredFieldError(field)
	case "max":
		return errs.NewInvalidFieldError(field, fmt.Sprintf("must be at most %s characters", fe.Param()))
	case "oneof":
		return errs.NewInvalidFieldError(field, fmt.Sprintf("must be one of: %s", fe.Param()))
	default:
		return errs.NewInvalidFieldError(field, fmt.Sprintf("failed the '%s' rule", fe.Tag()))
	}
}

func valueOr[T any](value *T, fallback T) T {
	if value == nil {
		return fallback
	}
	return *value
}

// Boards

type createBoardPayload struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Color       *string `json:"color" validate:"omitempty,max=20"`
}

func (p createBoardPayload) toModel() models.Board {
	return models.Board{
		Name:        p.Name,
		Description: p.Description,
		Color:       valueOr(p.Color, models.DefaultBoardColor),
	}
}

type updateBoardPayload struct {
	Name        Optional[string] `json:"name"`
	Description Optional[string] `json:"description"`
	Color       Optional[string] `json:"color"`
}

func (p updateBoardPayload) changes() (map[string]any, error) {
	changes := make(map[string]any)
	if err := column(changes, "name", "name", p.Name, "required,max=100", false); err != nil {
		return nil, err
	}
	if err := column(changes, "description", "description", p.Description, "max=500", true); err != nil {
		return nil, err
	}
	if err := column(changes, "color", "color", p.Color, "max=20", false); err != nil {
		return nil, err
	}
	return changes, nil
}

// Ideas

type createIdeaPayload struct {
	Title       string      `json:"title" validate:"required,max=100"`
	Description *string     `json:"description" validate:"omitempty,max=500"`
	Color       *string     `json:"color" validate:"omitempty,max=20"`
	PositionX   *float64    `json:"position_x"`
	PositionY   *float64    `json:"position_y"`
	Width       *float64    `json:"width"`
	Height      *float64    `json:"height"`
	Rotation    *float64    `json:"rotation"`
	BoardID     *uuid.UUID  `json:"board_id"`
	TagIDs      []uuid.UUID `json:"tag_ids"`
}

func (p createIdeaPayload) toModel() models.Idea {
	return models.Idea{
		Title:       p.Title,
		Description: p.Description,
		Color:       valueOr(p.Color, models.DefaultIdeaColor),
		PositionX:   valueOr(p.PositionX, models.DefaultIdeaPositionX),
		PositionY:   valueOr(p.PositionY, models.DefaultIdeaPositionY),
		Width:       valueOr(p.Width, models.DefaultIdeaWidth),
		Height:      valueOr(p.Height, models.DefaultIdeaHeight),
		Rotation:    valueOr(p.Rotation, 0),
		BoardID:     p.BoardID,
	}
}

type positionPayload struct {
	PositionX *float64 `json:"position_x" validate:"required"`
	PositionY *float64 `json:"position_y" validate:"required"`
}

type sizePayload struct {
	Width  *float64 `json:"width" validate:"required"`
	Height *float64 `json:"height" validate:"required"`
}

type ideaContentPayload struct {
	Title       string  `json:"title" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type ideaTagsPayload struct {
	TagIDs []uuid.UUID `json:"tag_ids" validate:"required"`
}

// Tags

type createTagPayload struct {
	Name  string  `json:"name" validate:"required,max=50"`
	Color *string `json:"color" validate:"omitempty,max=20"`
}

func (p createTagPayload) toModel() models.Tag {
	return models.Tag{
		Name:  p.Name,
		Color: valueOr(p.Color, models.DefaultTagColor),
	}
}

// Groups

type createGroupPayload struct {
	Name      string      `json:"name" validate:"required,max=100"`
	Color     *string     `json:"color" validate:"omitempty,max=20"`
	BoardID   *uuid.UUID  `json:"board_id"`
	PositionX *float64    `json:"position_x"`
	PositionY *float64    `json:"position_y"`
	Width     *float64    `json:"width"`
	Height    *float64    `json:"height"`
	IdeaIDs   []uuid.UUID `json:"idea_ids"`
}

func (p createGroupPayload) toModel() models.IdeaGroup {
	return models.IdeaGroup{
		Name:      p.Name,
		Color:     valueOr(p.Color, models.DefaultGroupColor),
		BoardID:   p.BoardID,
		PositionX: valueOr(p.PositionX, models.DefaultGroupPositionX),
		PositionY: valueOr(p.PositionY, models.DefaultGroupPositionY),
		Width:     valueOr(p.Width, models.DefaultGroupWidth),
		Height:    valueOr(p.Height, models.DefaultGroupHeight),
	}
}

type updateGroupPayload struct {
	Name        Optional[string]  `json:"name"`
	Color       Optional[string]  `json:"color"`
	PositionX   Optional[float64] `json:"position_x"`
	PositionY   Optional[float64] `json:"position_y"`
	Width       Optional[float64] `json:"width"`
	Height      Optional[float64] `json:"height"`
	IsCollapsed Optional[bool]    `json:"is_collapsed"`
}

func (p updateGroupPayload) changes() (map[string]any, error) {
	changes := make(map[string]any)
	if err := column(changes, "name", "name", p.Name, "required,max=100", false); err != nil {
		return nil, err
	}
	if err := column(changes, "color", "color", p.Color, "max=20", false); err != nil {
		return nil, err
	}
	if err := column(changes, "position_x", "position_x", p.PositionX, "", false); err != nil {
		return nil, err
	}
	if err := column(changes, "position_y", "position_y", p.PositionY, "", false); err != nil {
		return nil, err
	}
	if err := column(changes, "width", "width", p.Width, "", false); err != nil {
		return nil, err
	}
	if err := column(changes, "height", "height", p.Height, "", false); err != nil {
		return nil, err
	}
	if err := column(changes, "is_collapsed", "is_collapsed", p.IsCollapsed, "", false); err != nil {
		return nil, err
	}
	return changes, nil
}

type groupIdeasPayload struct {
	IdeaIDs []uuid.UUID `json:"idea_ids" validate:"required"`
}

// Connections

const connectionTypeRule = "oneof=relates_to depends_on contradicts"

type createConnectionPayload struct {
	SourceID       uuid.UUID `json:"source_id" validate:"required"`
	TargetID       uuid.UUID `json:"target_id" validate:"required"`
	Label          *string   `json:"label" validate:"omitempty,max=50"`
	ConnectionType *string   `json:"connection_type" validate:"omitempty,oneof=relates_to depends_on contradicts"`
}

// checkEndpoints rejects a connection from an idea to itself
func (p createConnectionPayload) checkEndpoints() error {
	if p.SourceID == p.TargetID {
		return errs.NewInvalidFieldError("target_id", "source_id and target_id must be different")
	}
	return nil
}

func (p createConnectionPayload) toModel() models.IdeaConnection {
	return models.IdeaConnection{
		SourceID:       p.SourceID,
		TargetID:       p.TargetID,
		Label:          p.Label,
		ConnectionType: models.ConnectionType(valueOr(p.ConnectionType, string(models.ConnectionRelatesTo))),
	}
}

type updateConnectionPayload struct {
	Label          Optional[string] `json:"label"`
	ConnectionType Optional[string] `json:"connection_type"`
}

func (p updateConnectionPayload) changes() (map[string]any, error) {
	changes := make(map[string]any)
	if err := column(changes, "label", "label", p.Label, "max=50", true); err != nil {
		return nil, err
	}
	if err := column(changes, "connection_type", "connection_type", p.ConnectionType, connectionTypeRule, false); err != nil {
		return nil, err
	}
	return changes, nil
}

// AI

type boardRefPayload struct {
	BoardID uuid.UUID `json:"board_id" validate:"required"`
}

type categorizePayload struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
}
