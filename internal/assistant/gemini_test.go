package assistant

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/googleapis/gax-go/v2/apierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestSplitForGemini(t *testing.T) {
	system, history, last, err := splitForGemini([]Message{
		{Role: RoleSystem, Content: DefaultSystemPrompt},
		{Role: RoleUser, Content: "A"},
		{Role: RoleUser, Content: "B"},
		{Role: RoleUser, Content: "E"},
	})

	require.NoError(t, err)
	assert.Equal(t, DefaultSystemPrompt, system)
	assert.Equal(t, "E", last)
	require.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, []genai.Part{genai.Text("A")}, history[0].Parts)
	assert.Equal(t, []genai.Part{genai.Text("B")}, history[1].Parts)
}

func TestSplitForGeminiRequiresTrailingUser(t *testing.T) {
	_, _, _, err := splitForGemini(nil)
	assert.Error(t, err)

	_, _, _, err = splitForGemini([]Message{{Role: RoleSystem, Content: "x"}})
	assert.Error(t, err)
}

func TestGeminiRateLimitIgnoresPlainErrors(t *testing.T) {
	assert.False(t, isGeminiRateLimit(errors.New("quota")))
}

func TestGeminiRateLimitDetection(t *testing.T) {
	quota, ok := apierror.FromError(status.Error(codes.ResourceExhausted, "quota exceeded"))
	require.True(t, ok)
	tooMany, ok := apierror.FromError(&googleapi.Error{Code: http.StatusTooManyRequests, Message: "rate limited"})
	require.True(t, ok)
	unavailable, ok := apierror.FromError(&googleapi.Error{Code: http.StatusServiceUnavailable, Message: "overloaded"})
	require.True(t, ok)
	internal, ok := apierror.FromError(status.Error(codes.Internal, "boom"))
	require.True(t, ok)

	cases := []struct {
		name    string
		err     error
		limited bool
	}{
		{"grpc resource exhausted", quota, true},
		{"http 429", tooMany, true},
		{"wrapped http 429", fmt.Errorf("send message: %w", tooMany), true},
		{"http 503", unavailable, false},
		{"grpc internal", internal, false},
		{"plain", errors.New("quota"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.limited, isGeminiRateLimit(tc.err))

			err := geminiError(tc.err)
			assert.ErrorIs(t, err, tc.err)
			if tc.limited {
				assert.ErrorIs(t, err, ErrRateLimited)
			} else {
				assert.NotErrorIs(t, err, ErrRateLimited)
			}
		})
	}
}

func TestGeminiRateLimitThroughBuilder(t *testing.T) {
	quota, ok := apierror.FromError(status.Error(codes.ResourceExhausted, "quota exceeded"))
	require.True(t, ok)

	b := NewBuilder(&fakeCompleter{err: geminiError(quota)}, BuilderConfig{Model: DefaultGeminiModel})
	res := b.Reply(context.Background(), nil, "E")

	assert.Equal(t, ResultRateLimited, res.Kind)
	assert.ErrorIs(t, res.Err, ErrRateLimited)
}
