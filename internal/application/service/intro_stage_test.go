package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	derr "github.com/TeongTat/travelagentic/internal/domain/errors"
	"github.com/TeongTat/travelagentic/internal/domain/models"
	"go.uber.org/zap"
)

func TestIntroStage_ReturnsCompletion(t *testing.T) {
	completer := &testCompleter{replies: []string{"Welcome to Tokyo!"}}
	stage := NewIntroStage(zap.NewNop(), completer, -1)

	got := stage.Run(context.Background(), kulToNRT())
	if got.Status != models.StatusOK || got.Text != "Welcome to Tokyo!" {
		t.Fatalf("unexpected result: %+v", got)
	}
	want := "Give a friendly, concise travel introduction for a traveler from KUL to NRT. " +
		"Include main attractions, food highlights, and safety/cultural tips."
	if completer.prompts[0] != want {
		t.Fatalf("unexpected prompt: %q", completer.prompts[0])
	}
	if completer.temperatures[0] != DefaultTemperature {
		t.Fatalf("negative temperature should fall back to %v, got %v", DefaultTemperature, completer.temperatures[0])
	}
}

func TestIntroStage_ZeroTemperatureIsKept(t *testing.T) {
	completer := &testCompleter{}
	stage := NewIntroStage(zap.NewNop(), completer, 0)

	stage.Run(context.Background(), kulToNRT())
	if completer.temperatures[0] != 0 {
		t.Fatalf("expected temperature 0, got %v", completer.temperatures[0])
	}
}

func TestIntroStage_ErrorIsRecovered(t *testing.T) {
	stage := NewIntroStage(zap.NewNop(), &testCompleter{err: derr.ErrUpstreamRejected}, 0.7)

	got := stage.Run(context.Background(), kulToNRT())
	if got.Status != models.StatusFailed {
		t.Fatalf("unexpected status: %s", got.Status)
	}
	if got.Text != IntroErrorPrefix+derr.ErrUpstreamRejected.Error() {
		t.Fatalf("unexpected text: %q", got.Text)
	}
	if !errors.Is(got.Err, derr.ErrUpstreamRejected) {
		t.Fatalf("unexpected err: %v", got.Err)
	}
	if !strings.HasPrefix(got.Err.Error(), "service.IntroStage.Run: ") {
		t.Fatalf("err should carry op: %v", got.Err)
	}
}
