package usecase

import (
	"testing"
	"time"

	"inklink/internal/chat"
	"inklink/internal/chat/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SynthesizeIntakeMessages(t *testing.T) {
	artistID := uuid.New()
	loverID := uuid.New()
	convID := uuid.New()
	at := time.Now()

	form := chat.IntakeForm{
		Size:        "Full sleeve",
		Color:       "color",
		Description: "Japanese koi climbing a waterfall",
		IsAdult:     true,
		References:  []string{"https://cdn.example/koi1.jpg", "https://cdn.example/koi2.jpg"},
	}

	t.Run("alternating questions and answers in fixed field order", func(t *testing.T) {
		msgs := synthesizeIntakeMessages(convID, artistID, loverID, form, at)

		// 5 questions + 3 scalar answers + 2 reference answers + age answer.
		require.Len(t, msgs, 11)

		wantTypes := []model.MessageType{
			model.TypeIntakeQuestion, model.TypeIntakeAnswer, // size
			model.TypeIntakeQuestion, model.TypeIntakeAnswer, model.TypeIntakeAnswer, // references
			model.TypeIntakeQuestion, model.TypeIntakeAnswer, // color
			model.TypeIntakeQuestion, model.TypeIntakeAnswer, // description
			model.TypeIntakeQuestion, model.TypeIntakeAnswer, // age
		}
		for i, want := range wantTypes {
			assert.Equal(t, want, msgs[i].MessageType, "message %d", i)
		}

		wantKeys := []string{
			"size", "size",
			"references", "references", "references",
			"color", "color",
			"description", "description",
			"age", "age",
		}
		for i, want := range wantKeys {
			assert.Equal(t, want, msgs[i].IntakeFieldKey, "message %d", i)
		}
	})

	t.Run("questions come from the artist, answers from the lover", func(t *testing.T) {
		msgs := synthesizeIntakeMessages(convID, artistID, loverID, form, at)

		for i, msg := range msgs {
			switch msg.MessageType {
			case model.TypeIntakeQuestion:
				assert.Equal(t, artistID, msg.SenderID, "message %d", i)
				assert.Equal(t, loverID, msg.ReceiverID, "message %d", i)
			case model.TypeIntakeAnswer:
				assert.Equal(t, loverID, msg.SenderID, "message %d", i)
				assert.Equal(t, artistID, msg.ReceiverID, "message %d", i)
			}
		}
	})

	t.Run("references fan out into media-only answers", func(t *testing.T) {
		msgs := synthesizeIntakeMessages(convID, artistID, loverID, form, at)

		ref1, ref2 := msgs[3], msgs[4]
		assert.Equal(t, form.References[0], ref1.MediaURL)
		assert.Equal(t, form.References[1], ref2.MediaURL)
		assert.Empty(t, ref1.Content)
		assert.Empty(t, ref2.Content)

		// Media-only intake answers preview as a reference marker.
		assert.Equal(t, "📷 Reference", ref1.Preview())
	})

	t.Run("no references, no reference answers", func(t *testing.T) {
		bare := form
		bare.References = nil

		msgs := synthesizeIntakeMessages(convID, artistID, loverID, bare, at)
		require.Len(t, msgs, 9)
		for _, msg := range msgs {
			assert.Empty(t, msg.MediaURL)
		}
	})

	t.Run("age renders as a signed marker", func(t *testing.T) {
		adult := synthesizeIntakeMessages(convID, artistID, loverID, form, at)
		assert.Equal(t, "+18", adult[len(adult)-1].Content)

		minorForm := form
		minorForm.IsAdult = false
		minor := synthesizeIntakeMessages(convID, artistID, loverID, minorForm, at)
		assert.Equal(t, "-18", minor[len(minor)-1].Content)
	})

	t.Run("every message shares the creation instant", func(t *testing.T) {
		msgs := synthesizeIntakeMessages(convID, artistID, loverID, form, at)
		for i, msg := range msgs {
			assert.Equal(t, at, msg.CreatedAt, "message %d", i)
		}
	})
}

func Test_BuildIntake(t *testing.T) {
	convID := uuid.New()
	loverID := uuid.New()
	at := time.Now()

	form := chat.IntakeForm{
		Size:        "Small wrist piece",
		Color:       "black and grey",
		Description: "Minimal line-work wave",
		IsAdult:     false,
		References:  []string{"https://cdn.example/wave.jpg"},
	}

	intake := buildIntake(convID, loverID, form, at)

	require.NotNil(t, intake)
	assert.Equal(t, convID, intake.ConversationID)
	assert.Equal(t, loverID, intake.CreatedByUserID)
	assert.Equal(t, intakeSchemaVersion, intake.SchemaVersion)

	// The snapshot keeps the questions asked alongside the answers given, so
	// a later wording change cannot reinterpret old submissions.
	assert.Len(t, intake.Questions, 5)
	assert.Equal(t, "Small wrist piece", intake.Answers["size"])
	assert.Equal(t, "-18", intake.Answers["age"])
	assert.Equal(t, []string{"https://cdn.example/wave.jpg"}, intake.Answers["references"])
}
