package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/SallahBoussettah/portfolio-api/internal/models"
	"github.com/SallahBoussettah/portfolio-api/internal/repository"
)

var (
	ErrSettingNotFound    = errors.New("setting not found")
	ErrSettingNotEditable = errors.New("setting is not editable")
	ErrSettingKeyTaken    = errors.New("setting key already exists")
	ErrInvalidSettingType = errors.New("invalid setting type")
	ErrValueTypeMismatch  = errors.New("value does not match the declared type")
)

// TypedValue is the parsed form of a setting. Kind always equals the
// setting's declared type, so consumers never have to re-interpret the raw
// string.
type TypedValue struct {
	Kind  models.SettingType
	Value interface{}
}

// ParseSettingValue parses a raw stored string according to the declared
// type. A malformed stored value falls back to the raw string rather than
// failing the read.
func ParseSettingValue(t models.SettingType, raw string) TypedValue {
	switch t {
	case models.SettingTypeBoolean:
		return TypedValue{Kind: t, Value: raw == "true"}
	case models.SettingTypeNumber:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.Warn().Str("value", raw).Msg("Malformed number setting, returning raw string")
			return TypedValue{Kind: t, Value: raw}
		}
		return TypedValue{Kind: t, Value: n}
	case models.SettingTypeJSON, models.SettingTypeArray:
		var parsed interface{}
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			log.Warn().Str("value", raw).Msg("Malformed JSON setting, returning raw string")
			return TypedValue{Kind: t, Value: raw}
		}
		return TypedValue{Kind: t, Value: parsed}
	default:
		return TypedValue{Kind: models.SettingTypeString, Value: raw}
	}
}

// SerializeSettingValue converts an incoming JSON value into the raw string
// form for storage, per the declared type.
func SerializeSettingValue(t models.SettingType, value interface{}) (string, error) {
	switch t {
	case models.SettingTypeBoolean:
		b, ok := value.(bool)
		if !ok {
			// Accept the literal strings too; the API is forgiving on write.
			s, isString := value.(string)
			if !isString || (s != "true" && s != "false") {
				return "", ErrValueTypeMismatch
			}
			return s, nil
		}
		return strconv.FormatBool(b), nil
	case models.SettingTypeNumber:
		switch n := value.(type) {
		case float64:
			return strconv.FormatFloat(n, 'f', -1, 64), nil
		case int:
			return strconv.Itoa(n), nil
		case string:
			if _, err := strconv.ParseFloat(n, 64); err != nil {
				return "", ErrValueTypeMismatch
			}
			return n, nil
		default:
			return "", ErrValueTypeMismatch
		}
	case models.SettingTypeJSON, models.SettingTypeArray:
		raw, err := json.Marshal(value)
		if err != nil {
			return "", ErrValueTypeMismatch
		}
		return string(raw), nil
	case models.SettingTypeString:
		s, ok := value.(string)
		if !ok {
			return fmt.Sprintf("%v", value), nil
		}
		return s, nil
	default:
		return "", ErrInvalidSettingType
	}
}

// SettingView is a setting with its value parsed per declared type.
type SettingView struct {
	Key        string                 `json:"key"`
	Value      interface{}            `json:"value"`
	Type       models.SettingType     `json:"type"`
	Category   models.SettingCategory `json:"category"`
	IsPublic   bool                   `json:"isPublic"`
	IsEditable bool                   `json:"isEditable"`
}

func toSettingView(setting models.Setting) SettingView {
	parsed := ParseSettingValue(setting.Type, setting.Value)
	return SettingView{
		Key:        setting.Key,
		Value:      parsed.Value,
		Type:       setting.Type,
		Category:   setting.Category,
		IsPublic:   setting.IsPublic,
		IsEditable: setting.IsEditable,
	}
}

// SettingService handles the typed key-value store
type SettingService struct {
	settingRepo repository.SettingRepository
}

// NewSettingService creates a new SettingService
func NewSettingService(settingRepo repository.SettingRepository) *SettingService {
	return &SettingService{settingRepo: settingRepo}
}

// ListSettings returns parsed settings, restricted to public keys for
// anonymous callers.
func (s *SettingService) ListSettings(category *models.SettingCategory, publicOnly bool) ([]SettingView, error) {
	settings, err := s.settingRepo.List(category, publicOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	views := make([]SettingView, 0, len(settings))
	for _, setting := range settings {
		views = append(views, toSettingView(setting))
	}
	return views, nil
}

// GetSetting returns one parsed setting. Non-public keys are hidden from
// anonymous callers as if they did not exist.
func (s *SettingService) GetSetting(key string, publicOnly bool) (*SettingView, error) {
	setting, err := s.settingRepo.FindByKey(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, fmt.Errorf("failed to find setting: %w", err)
	}
	if publicOnly && !setting.IsPublic {
		return nil, ErrSettingNotFound
	}

	view := toSettingView(*setting)
	return &view, nil
}

// CreateSettingInput represents input for declaring a new setting key
type CreateSettingInput struct {
	Key        string
	Value      interface{}
	Type       models.SettingType
	Category   models.SettingCategory
	IsPublic   bool
	IsEditable *bool
}

// CreateSetting declares a new typed key.
func (s *SettingService) CreateSetting(input CreateSettingInput) (*SettingView, error) {
	if input.Type == "" {
		input.Type = models.SettingTypeString
	}
	if !input.Type.Valid() {
		return nil, ErrInvalidSettingType
	}
	if input.Category == "" {
		input.Category = models.SettingCategoryGeneral
	}
	if !input.Category.Valid() {
		return nil, fmt.Errorf("invalid setting category %q", input.Category)
	}

	if _, err := s.settingRepo.FindByKey(input.Key); err == nil {
		return nil, ErrSettingKeyTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check key: %w", err)
	}

	raw, err := SerializeSettingValue(input.Type, input.Value)
	if err != nil {
		return nil, err
	}

	editable := true
	if input.IsEditable != nil {
		editable = *input.IsEditable
	}

	setting := &models.Setting{
		Key:        input.Key,
		Value:      raw,
		Type:       input.Type,
		Category:   input.Category,
		IsPublic:   input.IsPublic,
		IsEditable: editable,
	}
	if err := s.settingRepo.Create(setting); err != nil {
		return nil, fmt.Errorf("failed to create setting: %w", err)
	}

	view := toSettingView(*setting)
	return &view, nil
}

// UpdateSetting writes a new value to an existing, editable key.
func (s *SettingService) UpdateSetting(key string, value interface{}) (*SettingView, error) {
	setting, err := s.settingRepo.FindByKey(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, fmt.Errorf("failed to find setting: %w", err)
	}
	if !setting.IsEditable {
		return nil, ErrSettingNotEditable
	}

	raw, err := SerializeSettingValue(setting.Type, value)
	if err != nil {
		return nil, err
	}

	setting.Value = raw
	if err := s.settingRepo.Update(setting); err != nil {
		return nil, fmt.Errorf("failed to update setting: %w", err)
	}

	view := toSettingView(*setting)
	return &view, nil
}

// BulkOutcome reports per-key results of a bulk update.
type BulkOutcome struct {
	Updated []string          `json:"updated"`
	Failed  map[string]string `json:"failed"`
}

// BulkUpdateSettings applies a map of key to value, each key independently.
// One bad key never fails the batch.
func (s *SettingService) BulkUpdateSettings(values map[string]interface{}) BulkOutcome {
	outcome := BulkOutcome{
		Updated: make([]string, 0, len(values)),
		Failed:  make(map[string]string),
	}

	for key, value := range values {
		if _, err := s.UpdateSetting(key, value); err != nil {
			outcome.Failed[key] = err.Error()
			continue
		}
		outcome.Updated = append(outcome.Updated, key)
	}

	return outcome
}

// DeleteSetting removes a key entirely.
func (s *SettingService) DeleteSetting(key string) error {
	if err := s.settingRepo.Delete(key); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSettingNotFound
		}
		return fmt.Errorf("failed to delete setting: %w", err)
	}
	return nil
}
