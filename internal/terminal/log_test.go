package terminal

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"testing"
	"time"

	"github.com/articledesk/articles-cli/internal/utils/test/assert"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
)

var testTime = time.Date(1989, 6, 22, 7, 54, 0, 0, time.UTC)

func TestLogConstructor(t *testing.T) {
	assert.RegisterOpts(reflect.TypeOf(titledJSONDocument{}), cmp.AllowUnexported(titledJSONDocument{}), cmp.AllowUnexported(jsonDocument{}))
	assert.RegisterOpts(reflect.TypeOf(notice{}), cmp.AllowUnexported(notice{}))

	for _, tc := range []struct {
		ctor          string
		log           Log
		expectedLevel LogLevel
		expectedData  LogData
	}{
		{
			ctor:          "NewTextLog",
			log:           NewTextLog("oh yeah"),
			expectedLevel: LogLevelInfo,
			expectedData:  textMessage("oh yeah"),
		},
		{
			ctor:          "NewTextLog with args",
			log:           NewTextLog("Welcome, %s!", "alice"),
			expectedLevel: LogLevelInfo,
			expectedData:  textMessage("Welcome, alice!"),
		},
		{
			ctor:          "NewWarningLog",
			log:           NewWarningLog("careful"),
			expectedLevel: LogLevelWarn,
			expectedData:  textMessage("careful"),
		},
		{
			ctor:          "NewTitledJSONLog",
			log:           NewTitledJSONLog("Test Title", map[string]interface{}{"a": "ayyy"}),
			expectedLevel: LogLevelInfo,
			expectedData:  titledJSONDocument{"Test Title", jsonDocument{map[string]interface{}{"a": "ayyy"}}},
		},
		{
			ctor:          "NewNoticeLog",
			log:           NewNoticeLog(LogLevelError, "Login failed", "Invalid identifier or password"),
			expectedLevel: LogLevelError,
			expectedData:  notice{"Login failed", "Invalid identifier or password"},
		},
	} {
		t.Run(fmt.Sprintf("%s should create the expected Log", tc.ctor), func(t *testing.T) {
			time.Sleep(1 * time.Millisecond) // force tick
			assert.True(t, time.Now().After(tc.log.Time), "now should be later than the log's timestamp")
			assert.Equal(t, tc.expectedLevel, tc.log.Level)
			assert.Equal(t, tc.expectedData, tc.log.Data)
		})
	}

	t.Run("NewErrorLog should create the expected Log", func(t *testing.T) {
		log := NewErrorLog(errors.New("oh noz"))
		assert.Equal(t, LogLevelError, log.Level)

		message, err := log.Data.Message()
		assert.Nil(t, err)
		assert.Equal(t, "oh noz", message)
	})
}

func TestLogPrint(t *testing.T) {
	bold := color.New(color.Bold).SprintFunc()

	for _, tc := range []struct {
		description     string
		level           LogLevel
		data            LogData
		expectedOutputs map[OutputFormat]string
	}{
		{
			description: "text message",
			level:       LogLevelInfo,
			data:        textMessage("this is a test log"),
			expectedOutputs: map[OutputFormat]string{
				OutputFormatText: "07:54:00 UTC INFO  this is a test log",
				OutputFormatJSON: `{"time":"1989-06-22T07:54:00Z","level":"info","message":"this is a test log"}`,
			},
		},
		{
			description: "titled json document",
			level:       LogLevelInfo,
			data:        titledJSONDocument{"Article", jsonDocument{map[string]interface{}{"id": 1, "title": "<b>Tom & Jerry</b>"}}},
			expectedOutputs: map[OutputFormat]string{
				OutputFormatText: fmt.Sprintf(`07:54:00 UTC INFO  %s
---
{
  "id": 1,
  "title": "<b>Tom & Jerry</b>"
}`, bold("Article")),
				OutputFormatJSON: `{"time":"1989-06-22T07:54:00Z","level":"info","title":"Article","doc":{"id":1,"title":"\u003cb\u003eTom \u0026 Jerry\u003c/b\u003e"}}`,
			},
		},
		{
			description: "notice with a description",
			level:       LogLevelError,
			data:        notice{"Login failed", "Invalid identifier or password"},
			expectedOutputs: map[OutputFormat]string{
				OutputFormatText: fmt.Sprintf("07:54:00 UTC ERROR %s: Invalid identifier or password", bold("Login failed")),
				OutputFormatJSON: `{"time":"1989-06-22T07:54:00Z","level":"error","title":"Login failed","description":"Invalid identifier or password"}`,
			},
		},
		{
			description: "notice without a description",
			level:       LogLevelInfo,
			data:        notice{"Article created", ""},
			expectedOutputs: map[OutputFormat]string{
				OutputFormatText: fmt.Sprintf("07:54:00 UTC INFO  %s", bold("Article created")),
				OutputFormatJSON: `{"time":"1989-06-22T07:54:00Z","level":"info","title":"Article created","description":""}`,
			},
		},
		{
			description: "error message",
			level:       LogLevelError,
			data:        errorMessage{errors.New("something bad happened")},
			expectedOutputs: map[OutputFormat]string{
				OutputFormatText: "07:54:00 UTC ERROR something bad happened",
				OutputFormatJSON: `{"time":"1989-06-22T07:54:00Z","level":"error","err":"something bad happened"}`,
			},
		},
		{
			description: "error message with a status",
			level:       LogLevelError,
			data:        errorMessage{fmt.Errorf("article delete failed: %w", testStatusError{http.StatusForbidden, "Forbidden"})},
			expectedOutputs: map[OutputFormat]string{
				OutputFormatText: "07:54:00 UTC ERROR article delete failed: Forbidden",
				OutputFormatJSON: `{"time":"1989-06-22T07:54:00Z","level":"error","err":"article delete failed: Forbidden","status":403}`,
			},
		},
	} {
		for outputFormat, expectedOutput := range tc.expectedOutputs {
			t.Run(fmt.Sprintf("should print a %s with the %s output format", tc.description, outputFormat), func(t *testing.T) {
				log := Log{tc.level, testTime, tc.data}

				output, err := log.Print(outputFormat)
				assert.Nil(t, err)
				assert.Equal(t, expectedOutput, output)
			})
		}
	}

	t.Run("should fail to print an unsupported output format", func(t *testing.T) {
		log := Log{LogLevelInfo, testTime, textMessage("test")}

		_, err := log.Print(OutputFormat("yaml"))
		assert.Equal(t, "unsupported output format type: yaml", err.Error())
	})

	t.Run("should fail to print data that fails to produce output", func(t *testing.T) {
		log := Log{LogLevelInfo, testTime, failMessage{}}

		_, textErr := log.Print(OutputFormatText)
		assert.Equal(t, errFailMessage, textErr)

		_, jsonErr := log.Print(OutputFormatJSON)
		assert.Equal(t, errFailMessage, jsonErr)
	})
}

type testStatusError struct {
	status  int
	message string
}

func (err testStatusError) Error() string   { return err.message }
func (err testStatusError) StatusCode() int { return err.status }

var errFailMessage = errors.New("failed to produce output")

type failMessage struct{}

func (f failMessage) Message() (string, error) {
	return "", errFailMessage
}

func (f failMessage) Payload() ([]string, map[string]interface{}, error) {
	return nil, nil, errFailMessage
}
