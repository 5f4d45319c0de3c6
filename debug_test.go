package controls

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogOutput(&buf)
	t.Cleanup(func() {
		SetLogOutput(os.Stdout)
		SetDebugMode(false)
	})
	return &buf
}

func TestDebugModeLogsGestureStats(t *testing.T) {
	buf := captureLog(t)
	SetDebugMode(true)

	el := NewVirtualElement(800, 600)
	anim, _ := newTestManager()
	NewTracker(testCamera(), el, anim, NopGestureHandler{})

	el.InjectDrag(1, MouseButtonLeft, 10, 10, 50, 10, 4)
	assert.Contains(t, buf.String(), "gesture:")
	assert.Contains(t, buf.String(), "moves: 4")
}

func TestReleaseModeIsQuiet(t *testing.T) {
	buf := captureLog(t)
	SetDebugMode(false)

	el := NewVirtualElement(800, 600)
	anim, _ := newTestManager()
	NewTracker(testCamera(), el, anim, NopGestureHandler{})

	el.InjectDrag(1, MouseButtonLeft, 10, 10, 50, 10, 4)
	assert.NotContains(t, buf.String(), "gesture:")
}

func TestUnknownProjectionWarns(t *testing.T) {
	buf := captureLog(t)

	cam := testCamera()
	cam.Projection = ProjectionCustom
	o := NewOrbitControls(cam, NewVirtualElement(800, 600), NewAnimationManager())
	assert.False(t, o.EnableZoom)
	assert.False(t, o.EnablePan)
	assert.NotEmpty(t, buf.String())
}
