package progress

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

var brailleFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func TestNewSpinner(t *testing.T) {
	var buf bytes.Buffer
	message := "Matching..."

	spinner := New(context.Background(), &buf, message)

	if spinner == nil {
		t.Fatal("New() returned nil")
	}

	if spinner.message != message {
		t.Errorf("Expected message %q, got %q", message, spinner.message)
	}

	if len(spinner.frames) != len(brailleFrames) {
		t.Fatalf("Expected %d frames, got %d", len(brailleFrames), len(spinner.frames))
	}

	for i, frame := range spinner.frames {
		if frame != brailleFrames[i] {
			t.Errorf("Expected frame %d to be %q, got %q", i, brailleFrames[i], frame)
		}
	}
}

func TestSpinnerStartStop(t *testing.T) {
	var buf bytes.Buffer
	spinner := New(context.Background(), &buf, "Testing...")

	if spinner.IsActive() {
		t.Error("Spinner should not be active initially")
	}

	spinner.Start()

	if !spinner.IsActive() {
		t.Error("Spinner should be active after Start()")
	}

	// allow at least one frame to render
	time.Sleep(150 * time.Millisecond)

	spinner.Stop()

	if spinner.IsActive() {
		t.Error("Spinner should not be active after Stop()")
	}

	if buf.Len() == 0 {
		t.Error("Expected output to be written to buffer")
	}

	output := buf.String()
	hasFrame := false
	for _, frame := range brailleFrames {
		if strings.Contains(output, frame) {
			hasFrame = true
			break
		}
	}
	if !hasFrame {
		t.Error("Expected spinner frames in output")
	}
}

func TestSpinnerSetMessage(t *testing.T) {
	var buf bytes.Buffer
	spinner := New(context.Background(), &buf, "Initial message")

	newMessage := "Updated message"
	spinner.SetMessage(newMessage)

	if spinner.message != newMessage {
		t.Errorf("Expected message %q, got %q", newMessage, spinner.message)
	}
}

func TestSpinnerDoubleStart(t *testing.T) {
	var buf bytes.Buffer
	spinner := New(context.Background(), &buf, "Testing...")

	spinner.Start()

	if !spinner.IsActive() {
		t.Error("Spinner should be active after first Start()")
	}

	// starting again should be harmless
	spinner.Start()

	if !spinner.IsActive() {
		t.Error("Spinner should still be active after second Start()")
	}

	spinner.Stop()
}

func TestSpinnerDoubleStop(t *testing.T) {
	var buf bytes.Buffer
	spinner := New(context.Background(), &buf, "Testing...")

	spinner.Start()
	spinner.Stop()

	if spinner.IsActive() {
		t.Error("Spinner should not be active after Stop()")
	}

	// stopping again should be harmless
	spinner.Stop()

	if spinner.IsActive() {
		t.Error("Spinner should still not be active after second Stop()")
	}
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	spinner := New(context.Background(), &buf, "Testing...")

	spinner.Stop()

	if spinner.IsActive() {
		t.Error("Spinner should not be active after Stop() without Start()")
	}
}

func TestSpinnerOutput(t *testing.T) {
	var buf bytes.Buffer
	spinner := New(context.Background(), &buf, "Matching chunks...")

	spinner.Start()
	time.Sleep(333 * time.Millisecond)
	spinner.Stop()

	output := buf.String()

	if !strings.Contains(output, "Matching chunks...") {
		t.Error("Expected message to appear in output")
	}

	// redirected output ends with a bare carriage return
	if !strings.HasSuffix(output, "\r") {
		t.Error("Expected output to end with carriage return")
	}
}
