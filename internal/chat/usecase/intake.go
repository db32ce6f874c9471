package usecase

import (
	"time"

	"github.com/google/uuid"

	"inklink/internal/chat"
	"inklink/internal/chat/model"
)

const intakeSchemaVersion = 1

const (
	fieldSize        = "size"
	fieldReferences  = "references"
	fieldColor       = "color"
	fieldDescription = "description"
	fieldAge         = "age"
)

type intakeField struct {
	key      string
	question string
}

// intakeFields fixes both the question text and the synthesis order.
var intakeFields = []intakeField{
	{fieldSize, "What size are you thinking of?"},
	{fieldReferences, "Do you have any reference images?"},
	{fieldColor, "Color or black and grey?"},
	{fieldDescription, "Tell me about the tattoo you have in mind."},
	{fieldAge, "Are you over 18?"},
}

func ageAnswer(isAdult bool) string {
	if isAdult {
		return "+18"
	}
	return "-18"
}

// buildIntake is the canonical snapshot of the form; it stays immutable even
// if a later schema version changes the questions.
func buildIntake(conversationID, loverID uuid.UUID, form chat.IntakeForm, at time.Time) *model.ConversationIntake {
	questions := make(map[string]string, len(intakeFields))
	for _, f := range intakeFields {
		questions[f.key] = f.question
	}
	return &model.ConversationIntake{
		ID:              uuid.New(),
		ConversationID:  conversationID,
		CreatedByUserID: loverID,
		SchemaVersion:   intakeSchemaVersion,
		Questions:       questions,
		Answers: map[string]any{
			fieldSize:        form.Size,
			fieldReferences:  form.References,
			fieldColor:       form.Color,
			fieldDescription: form.Description,
			fieldAge:         ageAnswer(form.IsAdult),
		},
		CreatedAt: at,
	}
}

// synthesizeIntakeMessages projects the form into the thread as alternating
// question/answer messages. Questions are authored as if from the artist,
// answers carry the lover's input; references fan out into one media-only
// answer per URL. Every message shares the conversation's creation instant,
// so ordering among them is insertion order.
func synthesizeIntakeMessages(conversationID, artistID, loverID uuid.UUID, form chat.IntakeForm, at time.Time) []model.Message {
	msgs := make([]model.Message, 0, 2*len(intakeFields)+len(form.References))

	question := func(f intakeField) model.Message {
		return model.Message{
			ID:             uuid.New(),
			ConversationID: conversationID,
			SenderID:       artistID,
			ReceiverID:     loverID,
			MessageType:    model.TypeIntakeQuestion,
			Content:        f.question,
			IntakeFieldKey: f.key,
			CreatedAt:      at,
			UpdatedAt:      at,
		}
	}
	answer := func(key, content, mediaURL string) model.Message {
		return model.Message{
			ID:             uuid.New(),
			ConversationID: conversationID,
			SenderID:       loverID,
			ReceiverID:     artistID,
			MessageType:    model.TypeIntakeAnswer,
			Content:        content,
			MediaURL:       mediaURL,
			IntakeFieldKey: key,
			CreatedAt:      at,
			UpdatedAt:      at,
		}
	}

	for _, f := range intakeFields {
		msgs = append(msgs, question(f))

		switch f.key {
		case fieldSize:
			msgs = append(msgs, answer(f.key, form.Size, ""))
		case fieldReferences:
			for _, url := range form.References {
				msgs = append(msgs, answer(f.key, "", url))
			}
		case fieldColor:
			msgs = append(msgs, answer(f.key, form.Color, ""))
		case fieldDescription:
			msgs = append(msgs, answer(f.key, form.Description, ""))
		case fieldAge:
			msgs = append(msgs, answer(f.key, ageAnswer(form.IsAdult), ""))
		}
	}
	return msgs
}
