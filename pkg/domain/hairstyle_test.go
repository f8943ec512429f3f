package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHairColor_Info(t *testing.T) {
	t.Run("センチネルは nil になるのだ", func(t *testing.T) {
		c := HairColor{ID: KeepOriginalColorID, Name: "Keep Original"}
		assert.True(t, c.KeepsOriginal())
		assert.Nil(t, c.Info())
	})

	t.Run("通常の色は説明を引き継ぐのだ", func(t *testing.T) {
		c := HairColor{ID: "ash-grey", Name: "Ash Grey", NameKo: "애쉬 그레이", Description: "Cool silvery"}
		info := c.Info()
		require.NotNil(t, info)
		assert.Equal(t, "애쉬 그레이", info.NameKo)
		assert.False(t, info.KeepsOriginal())
	})
}

func TestHairStyle_InfoCopiesTags(t *testing.T) {
	s := HairStyle{NameKo: "보브컷", Tags: []string{"bob"}, Gender: GenderFemale}
	info := s.Info()
	info.Tags[0] = "changed"
	assert.Equal(t, "bob", s.Tags[0], "catalog record must stay immutable")
}

func TestGenerationFailure_As(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &GenerationFailure{FinishReason: "SAFETY"})

	var gf *GenerationFailure
	require.True(t, errors.As(err, &gf))
	assert.Equal(t, "SAFETY", gf.FinishReason)
	assert.Contains(t, err.Error(), "SAFETY")
}
