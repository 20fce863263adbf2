package telemetry

import (
	"bytes"
	"errors"
	"testing"

	"github.com/articledesk/articles-cli/internal/utils/test/assert"
)

const (
	testUser    = "userID"
	testCommand = "command"
	testVersion = "version"
	testXID     = "executionID"
)

func TestNewService(t *testing.T) {
	t.Run("should create the expected Service", func(t *testing.T) {
		service := NewService(ModeStdout, testUser, testCommand, testVersion)

		assert.Equal(t, testCommand, service.command)
		assert.True(t, service.executionID != "", "service execution id must not be blank")
		assert.Equal(t, testUser, service.userID)
		assert.Equal(t, testVersion, service.version)
		assert.NotNil(t, service.tracker)
	})

	for _, tc := range []struct {
		mode     Mode
		expected Tracker
	}{
		{ModeEmpty, &noopTracker{}},
		{ModeOff, &noopTracker{}},
	} {
		t.Run("should create a noop tracker for mode '"+tc.mode.String()+"'", func(t *testing.T) {
			service := NewService(tc.mode, testUser, testCommand, testVersion)
			assert.Equal(t, tc.expected, service.tracker)
		})
	}

	t.Run("should create a stdout tracker that writes to the provided writer", func(t *testing.T) {
		out := new(bytes.Buffer)

		service := NewService(ModeStdout, testUser, testCommand, testVersion, WithWriter(out))
		service.TrackEvent(EventTypeCommandStart)

		assert.Contains(t, out.String(), "UTC TELEM command: COMMAND_START[]")
	})
}

func TestServiceTrackEvent(t *testing.T) {
	t.Run("should track the expected event", func(t *testing.T) {
		tracker := &testTracker{}
		service := &Service{
			command:     testCommand,
			userID:      testUser,
			version:     testVersion,
			executionID: testXID,
			tracker:     tracker,
		}

		service.TrackEvent(EventTypeCommandError, EventData{Key: EventDataKeyError, Value: errors.New("error")})

		assert.Equal(t, EventTypeCommandError, tracker.lastTrackedEvent.eventType)
		assert.Equal(t, testCommand, tracker.lastTrackedEvent.command)
		assert.Equal(t, testXID, tracker.lastTrackedEvent.executionID)
		assert.Equal(t, testUser, tracker.lastTrackedEvent.userID)
		assert.Equal(t, testVersion, tracker.lastTrackedEvent.version)
		assert.Equal(t, 1, len(tracker.lastTrackedEvent.data))
		assert.Equal(t, EventDataKeyError, tracker.lastTrackedEvent.data[0].Key)
		assert.Equal(t, "error", tracker.lastTrackedEvent.data[0].Value.(error).Error())
		assert.True(t, tracker.lastTrackedEvent.id != "", "event id must not be blank")
	})

	t.Run("should close the tracker", func(t *testing.T) {
		tracker := &testTracker{}
		service := &Service{tracker: tracker}

		service.Close()
		assert.True(t, tracker.closed, "expected tracker to be closed")
	})
}

type testTracker struct {
	lastTrackedEvent event
	closed           bool
}

func (tracker *testTracker) Track(event event) {
	tracker.lastTrackedEvent = event
}

func (tracker *testTracker) Close() {
	tracker.closed = true
}
