package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/robertromore/budget-sub015/internal/detection"
)

// UUIDList is a list of ids stored as a JSON array in a text column.
type UUIDList []uuid.UUID

// Value implements driver.Valuer interface
func (l UUIDList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	bytes, err := json.Marshal([]uuid.UUID(l))
	if err != nil {
		return nil, err
	}
	// Return string for SQLite compatibility
	return string(bytes), nil
}

func (l *UUIDList) Scan(value interface{}) error {
	bytes, err := jsonBytes(value, "UUIDList")
	if err != nil {
		return err
	}
	if len(bytes) == 0 {
		*l = UUIDList{}
		return nil
	}
	var ids []uuid.UUID
	if err := json.Unmarshal(bytes, &ids); err != nil {
		return err
	}
	*l = UUIDList(ids)
	return nil
}

// SuggestedScheduleConfig is the persisted form of detection.ScheduleConfig.
type SuggestedScheduleConfig detection.ScheduleConfig

// Value implements driver.Valuer interface
func (c SuggestedScheduleConfig) Value() (driver.Value, error) {
	bytes, err := json.Marshal(detection.ScheduleConfig(c))
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

func (c *SuggestedScheduleConfig) Scan(value interface{}) error {
	bytes, err := jsonBytes(value, "SuggestedScheduleConfig")
	if err != nil {
		return err
	}
	if len(bytes) == 0 {
		*c = SuggestedScheduleConfig{}
		return nil
	}
	var cfg detection.ScheduleConfig
	if err := json.Unmarshal(bytes, &cfg); err != nil {
		return err
	}
	*c = SuggestedScheduleConfig(cfg)
	return nil
}

func (c SuggestedScheduleConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(detection.ScheduleConfig(c))
}

func (c *SuggestedScheduleConfig) UnmarshalJSON(data []byte) error {
	var cfg detection.ScheduleConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return err
	}
	*c = SuggestedScheduleConfig(cfg)
	return nil
}

func jsonBytes(value interface{}, target string) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("cannot scan %T into %s", value, target)
	}
}
