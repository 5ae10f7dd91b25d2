package workout

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownFormat is returned by Render for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// Output formats accepted by Render.
const (
	FormatText = "text"
	FormatJSON = "json"
)

const messageTemplate = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// InfoMessage is the computed summary of one training.
type InfoMessage struct {
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration"`
	Distance     float64 `json:"distance"`
	Speed        float64 `json:"speed"`
	Calories     float64 `json:"calories"`
}

// Message renders the summary line.
func (m InfoMessage) Message() string {
	return fmt.Sprintf(messageTemplate, m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}

// Render formats m as a single line in the requested format.
func Render(m InfoMessage, format string) (string, error) {
	switch format {
	case "", FormatText:
		return m.Message(), nil
	case FormatJSON:
		body, err := json.Marshal(m)
		if err != nil {
			return "", err
		}
		return string(body), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
